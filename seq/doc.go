/*
Package seq provides a value type for single biological sequences along
with composition analysis and the common nucleotide transformations.

A Sequence pairs a header with its residue text and is immutable once
constructed. Residues are folded to upper case and checked against the
accepted character set: the letters a-z and A-Z, '*' for a stop and '-'
for a gap. The alphabet of a sequence (DNA, RNA, protein or unknown) is
classified from its residue composition; classification precedence and
the exact residue sets are documented on Alphabet.

Transformations never mutate: ReverseComplement and Translate return new
Sequence values. Both are defined for nucleotide sequences only and fail
with an AlphabetError otherwise.
*/
package seq
