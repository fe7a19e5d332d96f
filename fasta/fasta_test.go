package fasta

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bioseqio/fastio/seq"
)

func TestReadMultiLineRecord(t *testing.T) {
	in := ">seq1 first test sequence\nATGCGT\nAGCTAG\nCCGTA\n"
	r := NewReader(strings.NewReader(in))
	s, err := r.Read()
	if err != nil {
		t.Fatalf("Read: %s", err)
	}
	if s.Header() != "seq1 first test sequence" {
		t.Fatalf("header = %q", s.Header())
	}
	if s.Residues() != "ATGCGTAGCTAGCCGTA" {
		t.Fatalf("wrapped lines not folded: %q", s.Residues())
	}
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestReadAll(t *testing.T) {
	in := ">a\nATGC\n>b some description\nggtt\naacc\n>c\nMKAILVVLLYTRI\n"
	seqs, err := NewReader(strings.NewReader(in)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %s", err)
	}
	if len(seqs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(seqs))
	}
	if seqs[1].Header() != "b some description" {
		t.Fatalf("unexpected second header: %q", seqs[1].Header())
	}
	if seqs[1].Residues() != "GGTTAACC" {
		t.Fatalf("lower case input not folded: %q", seqs[1].Residues())
	}
	if seqs[2].Alphabet() != seq.Protein {
		t.Fatalf("third record classified %s, want Protein", seqs[2].Alphabet())
	}
}

func TestBlankLinesIgnored(t *testing.T) {
	plain := ">a\nATGC\n>b\nGGTT\n"
	padded := "\n\n>a\nATGC\n\n\n>b\n\nGGTT\n\n"

	want, err := NewReader(strings.NewReader(plain)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %s", err)
	}
	got, err := NewReader(strings.NewReader(padded)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll with blank lines: %s", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d differs: %v vs %v", i, got[i], want[i])
		}
	}
}

func TestNoTrailingNewline(t *testing.T) {
	r := NewReader(strings.NewReader(">a\nATGC"))
	s, err := r.Read()
	if err != nil {
		t.Fatalf("Read: %s", err)
	}
	if s.Residues() != "ATGC" {
		t.Fatalf("residues = %q", s.Residues())
	}
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestContentBeforeFirstHeader(t *testing.T) {
	_, err := NewReader(strings.NewReader("ATGC\n>a\nATGC\n")).Read()
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if fe.Line != 1 {
		t.Fatalf("error on line %d, want 1", fe.Line)
	}
	if !strings.Contains(fe.Error(), "no header") {
		t.Fatalf("unexpected message: %s", fe)
	}
}

func TestEmptyRecord(t *testing.T) {
	r := NewReader(strings.NewReader(">a\n>b\nATGC\n"))
	_, err := r.Read()
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if fe.Header != "a" || fe.Line != 1 {
		t.Fatalf("error blames %q line %d, want %q line 1", fe.Header, fe.Line, "a")
	}

	// Same failure when the empty record is last.
	r = NewReader(strings.NewReader(">a\nATGC\n>b\n"))
	if _, err := r.Read(); err != nil {
		t.Fatalf("Read: %s", err)
	}
	_, err = r.Read()
	if !errors.As(err, &fe) || fe.Header != "b" {
		t.Fatalf("expected FormatError for record b, got %v", err)
	}
}

func TestInvalidResidue(t *testing.T) {
	r := NewReader(strings.NewReader(">a\nATGC\nAT!C\n"))
	_, err := r.Read()
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if fe.Line != 3 {
		t.Fatalf("error on line %d, want 3", fe.Line)
	}
	if !strings.Contains(fe.Error(), "'!'") {
		t.Fatalf("message does not cite the character: %s", fe)
	}
}

func TestDoubledMarkerHeader(t *testing.T) {
	r := NewReader(strings.NewReader(">>a\nATGC\n"))
	_, err := r.Read()
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if fe.Line != 1 {
		t.Fatalf("error on line %d, want 1", fe.Line)
	}

	// Same failure when the malformed header terminates an earlier record.
	r = NewReader(strings.NewReader(">a\nATGC\n>>b\nGGTT\n"))
	if _, err := r.Read(); err != nil {
		t.Fatalf("Read: %s", err)
	}
	_, err = r.Read()
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if fe.Line != 3 {
		t.Fatalf("error on line %d, want 3", fe.Line)
	}
}

func TestTrustSequences(t *testing.T) {
	r := NewReader(strings.NewReader(">a\natgc\n"))
	r.TrustSequences = true
	s, err := r.Read()
	if err != nil {
		t.Fatalf("Read: %s", err)
	}
	// Trusted data is taken as given, without case folding.
	if s.Residues() != "atgc" {
		t.Fatalf("residues = %q, want %q", s.Residues(), "atgc")
	}
}

func TestWriterWraps(t *testing.T) {
	s, err := seq.New(strings.Repeat("ACGT", 25), "long")
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	var buf bytes.Buffer
	if err := NewWriter(&buf).WriteAll([]seq.Sequence{s}); err != nil {
		t.Fatalf("WriteAll: %s", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if len(lines[1]) != 60 || len(lines[2]) != 40 {
		t.Fatalf("line lengths %d and %d, want 60 and 40", len(lines[1]), len(lines[2]))
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	in := ">a one\nATGCGTAGCTAG\n>b two\nMKAILVVLLYTRI\n"
	seqs, err := NewReader(strings.NewReader(in)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %s", err)
	}

	var buf bytes.Buffer
	if err := NewWriter(&buf).WriteAll(seqs); err != nil {
		t.Fatalf("WriteAll: %s", err)
	}

	again, err := NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll of written output: %s", err)
	}
	if len(again) != len(seqs) {
		t.Fatalf("round trip changed record count: %d vs %d", len(again), len(seqs))
	}
	for i := range seqs {
		if again[i] != seqs[i] {
			t.Fatalf("record %d changed: %v vs %v", i, again[i], seqs[i])
		}
	}
}
