/*
Package fasta provides routines for reading, writing and analyzing FASTA
files.

The format used is the one described by NCBI:
http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml

A record is a header line beginning with '>' followed by sequence data
that may wrap across any number of lines. By default, sequences are
checked to make sure they contain only valid characters: a-z, A-Z, * and
-. All lower case letters are translated to their upper case equivalent.

Reader and Writer stream records over plain io.Reader and io.Writer
values. File wraps a path on disk and adds whole-file operations:
restartable lazy iteration, aggregate statistics, lookup by record
identifier and filtered export. Sequence data written by this package is
wrapped at 60 columns unless configured otherwise.
*/
package fasta
