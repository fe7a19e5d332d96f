package seq

import (
	"errors"
	"strings"
)

// ErrNoCompleteCodon is returned by Translate when the sequence is
// shorter than a single codon.
var ErrNoCompleteCodon = errors.New("seq: sequence shorter than one codon")

// geneticCode is the standard genetic code (NCBI translation table 1),
// keyed by DNA codon. '*' is a stop.
var geneticCode = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',

	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',

	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',

	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Translate maps consecutive, non-overlapping codons starting at the
// first residue to amino acids under the standard genetic code and
// returns the protein sequence along with the number of trailing bases
// that did not fill a codon and were dropped. RNA is translated by
// reading U as T. Codons carrying ambiguity codes or gaps translate
// to 'X'.
//
// Translating a sequence that is neither DNA nor RNA is an
// *AlphabetError; translating one shorter than a full codon is
// ErrNoCompleteCodon, with the dropped count still reported.
func (s Sequence) Translate() (Sequence, int, error) {
	if s.alpha != DNA && s.alpha != RNA {
		return Sequence{}, 0, &AlphabetError{Op: "translate", Alphabet: s.alpha}
	}
	res := s.residues
	if s.alpha == RNA {
		res = strings.ReplaceAll(res, "U", "T")
	}
	dropped := len(res) % 3
	if len(res) < 3 {
		return Sequence{}, dropped, ErrNoCompleteCodon
	}
	aa := make([]byte, 0, len(res)/3)
	for i := 0; i+3 <= len(res); i += 3 {
		r, ok := geneticCode[res[i:i+3]]
		if !ok {
			r = 'X'
		}
		aa = append(aa, r)
	}
	prot := string(aa)
	return Sequence{header: s.header, residues: prot, alpha: classify(prot)}, dropped, nil
}
