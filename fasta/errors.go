package fasta

import "fmt"

// A FormatError reports malformed FASTA structure: content before the
// first header, a record with no sequence data, or an invalid residue
// character.
type FormatError struct {
	Line   int    // line number where the problem was detected
	Header string // header of the record in progress, if any
	Msg    string
	Err    error // underlying cause, if any
}

func (e *FormatError) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("fasta: line %d (record %q): %s", e.Line, e.Header, e.Msg)
	}
	return fmt.Sprintf("fasta: line %d: %s", e.Line, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }

// A NotFoundError reports that no record matched the requested
// identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fasta: no sequence with id %q", e.ID)
}
