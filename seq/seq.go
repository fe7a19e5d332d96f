package seq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySequence is returned when a sequence is constructed from empty
// residue text, and by operations that are undefined on the zero value.
var ErrEmptySequence = errors.New("seq: empty sequence")

// ErrMarkerInHeader is returned when header text contains the FASTA
// record marker '>' after the leading marker has been trimmed.
var ErrMarkerInHeader = errors.New("seq: header contains the record marker '>'")

// An InvalidResidueError reports a residue character outside the accepted
// set.
type InvalidResidueError struct {
	Residue byte
	Pos     int // offset into the residue text
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("seq: invalid residue character %q at position %d",
		e.Residue, e.Pos)
}

// An AlphabetError reports a nucleotide-only operation applied to a
// sequence that is neither DNA nor RNA.
type AlphabetError struct {
	Op       string
	Alphabet Alphabet
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("seq: %s requires a DNA or RNA sequence, have %s",
		e.Op, e.Alphabet)
}

// A Sequence is a single biological sequence together with its header.
// The zero value is the empty sequence. Sequences are immutable and
// comparable with ==.
type Sequence struct {
	header   string
	residues string
	alpha    Alphabet
}

// New builds a Sequence from residue and header text.
//
// Residue characters must be letters, '*' or '-'; lower case letters are
// folded to upper case. Empty residue text is ErrEmptySequence and an
// unaccepted character is an *InvalidResidueError. At most one leading
// '>' and surrounding whitespace are trimmed from the header; any '>'
// remaining after that is ErrMarkerInHeader.
func New(residues, header string) (Sequence, error) {
	if len(residues) == 0 {
		return Sequence{}, ErrEmptySequence
	}
	norm := make([]byte, len(residues))
	for i := 0; i < len(residues); i++ {
		b := residues[i]
		switch {
		case b >= 'a' && b <= 'z':
			b -= 'a' - 'A'
		case b >= 'A' && b <= 'Z', b == '*', b == '-':
		default:
			return Sequence{}, &InvalidResidueError{Residue: b, Pos: i}
		}
		norm[i] = b
	}
	header, err := trimHeader(header)
	if err != nil {
		return Sequence{}, err
	}
	r := string(norm)
	return Sequence{header: header, residues: r, alpha: classify(r)}, nil
}

// NewTrusted is like New but skips residue validation and case folding.
// It is meant for readers that have already checked the data; handing it
// unchecked text may misclassify the sequence.
func NewTrusted(residues, header string) (Sequence, error) {
	if len(residues) == 0 {
		return Sequence{}, ErrEmptySequence
	}
	header, err := trimHeader(header)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{header: header, residues: residues, alpha: classify(residues)}, nil
}

func trimHeader(header string) (string, error) {
	header = strings.TrimSpace(header)
	header = strings.TrimSpace(strings.TrimPrefix(header, ">"))
	if strings.ContainsRune(header, '>') {
		return "", ErrMarkerInHeader
	}
	return header, nil
}

// Header returns the header text, without the leading record marker.
func (s Sequence) Header() string { return s.header }

// ID returns the identifier of the sequence: the header token up to the
// first whitespace.
func (s Sequence) ID() string {
	fields := strings.Fields(s.header)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Residues returns the residue text.
func (s Sequence) Residues() string { return s.residues }

// Len returns the number of residues.
func (s Sequence) Len() int { return len(s.residues) }

// Alphabet returns the classification of the sequence.
func (s Sequence) Alphabet() Alphabet { return s.alpha }

// GC returns the percentage of residues that are G or C. It is
// ErrEmptySequence on a sequence with no residues.
func (s Sequence) GC() (float64, error) {
	if len(s.residues) == 0 {
		return 0, ErrEmptySequence
	}
	gc := 0
	for i := 0; i < len(s.residues); i++ {
		if b := s.residues[i]; b == 'G' || b == 'C' {
			gc++
		}
	}
	return 100 * float64(gc) / float64(len(s.residues)), nil
}

// Composition returns the occurrence count of each distinct residue.
// The counts sum to Len.
func (s Sequence) Composition() map[byte]int {
	comp := make(map[byte]int)
	for i := 0; i < len(s.residues); i++ {
		comp[s.residues[i]]++
	}
	return comp
}

// ReverseComplement returns the sequence reversed with every base
// replaced by its Watson-Crick complement: A-T for DNA, A-U for RNA, C-G
// for both, and the IUPAC ambiguity pairings R-Y, K-M, B-V and D-H
// (S, W, N and the gap are their own complements). It is an
// *AlphabetError on a sequence that is neither DNA nor RNA.
func (s Sequence) ReverseComplement() (Sequence, error) {
	var tbl *[256]byte
	switch s.alpha {
	case DNA:
		tbl = &dnaComplement
	case RNA:
		tbl = &rnaComplement
	default:
		return Sequence{}, &AlphabetError{Op: "reverse complement", Alphabet: s.alpha}
	}
	n := len(s.residues)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = tbl[s.residues[n-1-i]]
	}
	return Sequence{header: s.header, residues: string(out), alpha: s.alpha}, nil
}

// String renders the sequence in FASTA format with the residues wrapped
// at 60 columns.
func (s Sequence) String() string {
	return s.StringCols(60)
}

// StringCols renders the sequence in FASTA format with the residues
// wrapped at the given number of columns. If cols is <= 0, no wrapping
// is done. The header line is never wrapped.
func (s Sequence) StringCols(cols int) string {
	if cols <= 0 || len(s.residues) == 0 {
		return fmt.Sprintf(">%s\n%s", s.header, s.residues)
	}
	wrapped := make([]string, 1+(len(s.residues)-1)/cols)
	for i := range wrapped {
		start := cols * i
		end := min(start+cols, len(s.residues))
		wrapped[i] = s.residues[start:end]
	}
	return fmt.Sprintf(">%s\n%s", s.header, strings.Join(wrapped, "\n"))
}
