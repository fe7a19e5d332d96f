package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bioseqio/fastio/seq"
)

// Marker is the character that begins every FASTA header line.
const Marker = '>'

// A Reader streams sequences from FASTA encoded input.
//
// If TrustSequences is true, then sequence data will not be checked
// against the accepted character set and lower case residues are kept as
// given. If you trust the data, this may improve performance. This may
// be set at any time.
type Reader struct {
	// When set to true, the sequences will not be checked for errors.
	TrustSequences bool

	buf            *bufio.Reader
	line           int // number of the line about to be read
	nextHeader     []byte
	nextHeaderLine int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		buf:  bufio.NewReader(r),
		line: 1,
	}
}

// Read returns the next sequence in the input, or io.EOF after the last
// record.
//
// The format corresponds to that described by NCBI:
// http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml
//
// A record is a single header line whose first character is '>' followed
// by sequence data wrapped across any number of lines; the wrapping is
// removed. Blank lines and leading and trailing whitespace per line are
// ignored wherever they occur. The only characters allowed in the
// sequence section are a-z, A-Z, * and -; lower case letters are folded
// to upper case.
//
// Malformed input fails at the point of detection: non-blank content
// before the first header line, an invalid residue character (reported
// with its line number), or a record that ends with no sequence data.
// Errors are never deferred to the end of the stream.
//
// It is NOT safe to call this function from multiple goroutines.
func (r *Reader) Read() (seq.Sequence, error) {
	var header string
	var residues []byte
	headerLine := 0
	seenHeader := false

	// The header may have been scanned already, as the line that
	// terminated the previous record.
	if r.nextHeader != nil {
		header = headerText(r.nextHeader)
		headerLine = r.nextHeaderLine
		r.nextHeader = nil
		seenHeader = true
		if strings.ContainsRune(header, Marker) {
			return seq.Sequence{}, &FormatError{Line: headerLine, Msg: "header contains '>'"}
		}
	}
	for {
		line, err := r.buf.ReadBytes('\n')
		atEOF := err == io.EOF
		if err != nil && !atEOF {
			return seq.Sequence{}, fmt.Errorf("fasta: read: %w", err)
		}
		line = bytes.TrimSpace(line)

		if len(line) == 0 {
			if atEOF {
				if !seenHeader {
					return seq.Sequence{}, io.EOF
				}
				return r.emit(header, residues, headerLine)
			}
			r.line++
			continue
		}

		if line[0] == Marker {
			if seenHeader {
				// This line begins the next record. Stash it for the
				// following call and emit the record in progress.
				r.nextHeader = line
				r.nextHeaderLine = r.line
				r.line++
				return r.emit(header, residues, headerLine)
			}
			header = headerText(line)
			headerLine = r.line
			seenHeader = true
			if strings.ContainsRune(header, Marker) {
				return seq.Sequence{}, &FormatError{Line: headerLine, Msg: "header contains '>'"}
			}
			r.line++
			if atEOF {
				return r.emit(header, residues, headerLine)
			}
			continue
		}

		if !seenHeader {
			return seq.Sequence{}, &FormatError{Line: r.line, Msg: "no header found"}
		}

		if !r.TrustSequences {
			for _, b := range line {
				if !accepted(b) {
					return seq.Sequence{}, &FormatError{
						Line:   r.line,
						Header: header,
						Msg:    fmt.Sprintf("invalid residue character %q", b),
					}
				}
			}
		}
		if residues == nil {
			residues = make([]byte, 0, 60)
		}
		residues = append(residues, line...)
		r.line++
		if atEOF {
			return r.emit(header, residues, headerLine)
		}
	}
}

// ReadAll will read all sequences in the FASTA input and return them as
// a slice. If an error is encountered, processing is stopped, and the
// error is returned.
func (r *Reader) ReadAll() ([]seq.Sequence, error) {
	var seqs []seq.Sequence
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

// emit validates the assembled record and turns it into a sequence.
func (r *Reader) emit(header string, residues []byte, headerLine int) (seq.Sequence, error) {
	if len(residues) == 0 {
		return seq.Sequence{}, &FormatError{
			Line:   headerLine,
			Header: header,
			Msg:    "record has no sequence data",
		}
	}
	var s seq.Sequence
	var err error
	if r.TrustSequences {
		s, err = seq.NewTrusted(string(residues), header)
	} else {
		s, err = seq.New(string(residues), header)
	}
	if err != nil {
		return seq.Sequence{}, &FormatError{
			Line:   headerLine,
			Header: header,
			Msg:    "invalid record",
			Err:    err,
		}
	}
	return s, nil
}

func accepted(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
	case b >= 'A' && b <= 'Z':
	case b == '*':
	case b == '-':
	default:
		return false
	}
	return true
}

// headerText strips exactly the structural marker from a header line.
// Further markers in the text are malformed and left for the caller to
// reject.
func headerText(line []byte) string {
	return string(bytes.TrimSpace(line[1:]))
}

// A Writer writes sequences to a FASTA encoded file.
//
// Columns is the number of columns at which sequence data is wrapped.
// By default it is 60. A value <= 0 will result in no wrapping. Header
// text is never wrapped.
type Writer struct {
	Columns int
	buf     *bufio.Writer
}

// NewWriter creates a new FASTA writer that can write sequences to an
// io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Columns: 60,
		buf:     bufio.NewWriter(w),
	}
}

// Write writes a single sequence to the underlying io.Writer.
//
// You may need to call Flush in order for the changes to be written.
func (w *Writer) Write(s seq.Sequence) error {
	_, err := w.buf.WriteString(s.StringCols(w.Columns) + "\n")
	return err
}

// WriteAll writes a slice of sequences to the underlying io.Writer, and
// calls Flush.
func (w *Writer) WriteAll(seqs []seq.Sequence) error {
	for _, s := range seqs {
		if err := w.Write(s); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
