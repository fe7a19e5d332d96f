package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/charmbracelet/log"

	"github.com/bioseqio/fastio/seq"
)

// A File is a FASTA file on disk.
//
// Every operation scans the file from the beginning with its own handle,
// so nothing is cached between calls, iteration is restartable, and
// concurrent operations on one File are safe.
//
// Logger receives per-operation diagnostics. It discards them by
// default; replace it to observe scans.
type File struct {
	path   string
	Logger *log.Logger
}

// Open returns a File for path. The file must exist when Open is called;
// the error wraps the underlying os error, so a missing file satisfies
// errors.Is(err, fs.ErrNotExist).
func Open(path string) (*File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: open: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("fasta: open %s: is a directory", path)
	}
	return &File{path: path, Logger: log.New(io.Discard)}, nil
}

// Path returns the path the File was opened with.
func (f *File) Path() string { return f.path }

// Sequences returns a lazy iterator over the records of the file, in
// file order. Each range over it re-opens the file and scans from the
// start; the handle is released when the consumer stops, whether by
// exhausting the input, breaking out, or hitting an error.
//
// A failure mid-stream is yielded as the second value and ends the
// iteration; a clean end of input just stops it. Consumers therefore
// distinguish the two by checking the error at every step.
func (f *File) Sequences() iter.Seq2[seq.Sequence, error] {
	return func(yield func(seq.Sequence, error) bool) {
		fh, err := os.Open(f.path)
		if err != nil {
			yield(seq.Sequence{}, fmt.Errorf("fasta: open: %w", err))
			return
		}
		defer fh.Close()

		f.Logger.Debug("scan started", "path", f.path)
		r := NewReader(fh)
		n := 0
		for {
			s, err := r.Read()
			if err == io.EOF {
				f.Logger.Debug("scan finished", "path", f.path, "records", n)
				return
			}
			if err != nil {
				f.Logger.Debug("scan failed", "path", f.path, "records", n, "err", err)
				yield(seq.Sequence{}, err)
				return
			}
			n++
			if !yield(s, nil) {
				return
			}
		}
	}
}

// ReadAll reads every record in the file into a slice.
func (f *File) ReadAll() ([]seq.Sequence, error) {
	var seqs []seq.Sequence
	for s, err := range f.Sequences() {
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

// Stats aggregates a full pass over a FASTA file.
type Stats struct {
	Sequences int
	Residues  int
	MinLen    int
	MaxLen    int
	MeanLen   float64
	Alphabets map[seq.Alphabet]int
}

// Stats scans the whole file and returns its aggregate statistics. The
// result is recomputed on every call. A file with no records yields the
// zero counts with an empty Alphabets map.
func (f *File) Stats() (Stats, error) {
	st := Stats{Alphabets: make(map[seq.Alphabet]int)}
	for s, err := range f.Sequences() {
		if err != nil {
			return Stats{}, err
		}
		n := s.Len()
		if st.Sequences == 0 || n < st.MinLen {
			st.MinLen = n
		}
		if n > st.MaxLen {
			st.MaxLen = n
		}
		st.Sequences++
		st.Residues += n
		st.Alphabets[s.Alphabet()]++
	}
	if st.Sequences > 0 {
		st.MeanLen = float64(st.Residues) / float64(st.Sequences)
	}
	f.Logger.Debug("stats computed", "path", f.path,
		"records", st.Sequences, "residues", st.Residues)
	return st, nil
}

// SequenceByID scans for the first record whose identifier (the header
// token up to the first whitespace) equals id and returns it; the scan
// stops at the match, so later records sharing the identifier are never
// reached. If no record matches, the error is a *NotFoundError.
func (f *File) SequenceByID(id string) (seq.Sequence, error) {
	for s, err := range f.Sequences() {
		if err != nil {
			return seq.Sequence{}, err
		}
		if s.ID() == id {
			return s, nil
		}
	}
	return seq.Sequence{}, &NotFoundError{ID: id}
}

// ByAlphabet returns the records of the file whose sequences classify as
// a. It is a filtered view of Sequences and shares its semantics.
func (f *File) ByAlphabet(a seq.Alphabet) iter.Seq2[seq.Sequence, error] {
	return func(yield func(seq.Sequence, error) bool) {
		for s, err := range f.Sequences() {
			if err != nil {
				yield(seq.Sequence{}, err)
				return
			}
			if s.Alphabet() != a {
				continue
			}
			if !yield(s, nil) {
				return
			}
		}
	}
}

// WriteFiltered writes the records that satisfy keep to dest in FASTA
// format, wrapped at 60 columns, and returns the number of records
// written. dest is created, or truncated if it exists. Writing is best
// effort: output already written when an error occurs is left in place.
//
// Predicates needing extra parameters capture them in a closure.
func (f *File) WriteFiltered(dest string, keep func(seq.Sequence) bool) (int, error) {
	out, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("fasta: create %s: %w", dest, err)
	}
	w := NewWriter(out)
	n := 0
	for s, err := range f.Sequences() {
		if err != nil {
			out.Close()
			return n, err
		}
		if !keep(s) {
			continue
		}
		if err := w.Write(s); err != nil {
			out.Close()
			return n, fmt.Errorf("fasta: write %s: %w", dest, err)
		}
		n++
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return n, fmt.Errorf("fasta: write %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("fasta: write %s: %w", dest, err)
	}
	f.Logger.Debug("filtered export", "path", f.path, "dest", dest, "written", n)
	return n, nil
}

// Count reports the number of records in the file without assembling
// them: it counts header lines. It is much cheaper than a full scan and
// performs no validation beyond finding the markers.
func (f *File) Count() (int, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return 0, fmt.Errorf("fasta: open: %w", err)
	}
	defer fh.Close()

	n := 0
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) > 0 && line[0] == Marker {
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("fasta: read: %w", err)
	}
	return n, nil
}

// IsFasta reports whether the file looks like FASTA: its first non-blank
// line is a header line. An unreadable or empty file is not FASTA.
func (f *File) IsFasta() bool {
	fh, err := os.Open(f.path)
	if err != nil {
		return false
	}
	defer fh.Close()

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		return line[0] == Marker
	}
	return false
}
