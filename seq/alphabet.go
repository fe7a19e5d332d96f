package seq

// An Alphabet is the classification of a sequence by its residue
// composition.
type Alphabet int

const (
	Unknown Alphabet = iota
	DNA
	RNA
	Protein
)

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Protein:
		return "Protein"
	}
	return "Unknown"
}

// Residue sets for classification. The nucleotide sets carry the IUPAC
// ambiguity codes and the gap character; the protein set carries the
// standard twenty amino acids plus the B/X/Z/J ambiguity codes, the stop
// symbol and the gap character. Selenocysteine (U) and pyrrolysine (O)
// are deliberately absent from the protein set so that a string mixing T
// and U classifies as Unknown rather than protein.
var (
	dnaSet     [256]bool
	rnaSet     [256]bool
	proteinSet [256]bool
)

// Complement tables for ReverseComplement. A zero entry means the residue
// has no complement.
var (
	dnaComplement [256]byte
	rnaComplement [256]byte
)

func init() {
	for _, r := range []byte("ACGTNRYSWKMBDHV-") {
		dnaSet[r] = true
	}
	for _, r := range []byte("ACGUNRYSWKMBDHV-") {
		rnaSet[r] = true
	}
	for _, r := range []byte("ACDEFGHIKLMNPQRSTVWYBXZJ*-") {
		proteinSet[r] = true
	}

	for _, p := range []string{"AT", "CG", "RY", "KM", "BV", "DH"} {
		dnaComplement[p[0]], dnaComplement[p[1]] = p[1], p[0]
	}
	for _, r := range []byte("SWN-") {
		dnaComplement[r] = r
	}
	rnaComplement = dnaComplement
	rnaComplement['A'], rnaComplement['U'] = 'U', 'A'
	rnaComplement['T'] = 0
}

// classify returns the alphabet of residues. The precedence is fixed:
// DNA is checked before RNA, RNA before protein. In particular a
// nucleotide string containing T but not U is DNA, one containing U but
// not T is RNA, and one containing neither matches the DNA set first and
// is DNA. A string with both fits no set and is Unknown.
func classify(residues string) Alphabet {
	switch {
	case matches(residues, &dnaSet):
		return DNA
	case matches(residues, &rnaSet):
		return RNA
	case matches(residues, &proteinSet):
		return Protein
	}
	return Unknown
}

func matches(residues string, set *[256]bool) bool {
	for i := 0; i < len(residues); i++ {
		if !set[residues[i]] {
			return false
		}
	}
	return true
}
