// Package alignment holds a nucleotide multiple sequence alignment
// and writes it in fasta or nexus format.
package alignment

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cymon/locus/codon"
	"github.com/mingzhi/biogo/seq"
)

// Alignment is a set of equal-length aligned sequences.
type Alignment struct {
	Name string // source file name.
	Seqs []*seq.Sequence
}

// Read loads a fasta alignment. Residues are lower-cased and all
// sequences must have the same length.
func Read(fileName string) (*Alignment, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := seq.NewFastaReader(f)
	seqs, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("alignment: read %s: %v", fileName, err)
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("alignment: %s contains no sequences", fileName)
	}

	for _, s := range seqs {
		s.Seq = bytes.ToLower(s.Seq)
		if len(s.Seq) != len(seqs[0].Seq) {
			return nil, fmt.Errorf("alignment: %s: sequence %s has length %d, expected %d",
				fileName, s.Id, len(s.Seq), len(seqs[0].Seq))
		}
	}

	return &Alignment{Name: fileName, Seqs: seqs}, nil
}

// NSeq is the number of sequences.
func (a *Alignment) NSeq() int {
	return len(a.Seqs)
}

// NChar is the alignment length.
func (a *Alignment) NChar() int {
	if len(a.Seqs) == 0 {
		return 0
	}
	return len(a.Seqs[0].Seq)
}

// Sites cuts the alignment into in-frame codon sites. The alignment
// length must be a non-zero multiple of three.
func (a *Alignment) Sites() ([]codon.Site, error) {
	if a.NChar() == 0 || a.NChar()%3 != 0 {
		return nil, fmt.Errorf("alignment: length %d is not exactly divisible by 3; in-frame codons assumed", a.NChar())
	}
	codonsBySeq := make([][]string, a.NSeq())
	for i, s := range a.Seqs {
		codonsBySeq[i] = codon.Split(s.Seq)
	}
	return codon.Sites(codonsBySeq), nil
}

// SetSequences replaces the sequence data, keeping labels. The
// replacement must cover every sequence with one common length.
func (a *Alignment) SetSequences(seqs [][]byte) error {
	if len(seqs) != a.NSeq() {
		return fmt.Errorf("alignment: %d replacement sequences for %d taxa", len(seqs), a.NSeq())
	}
	for _, s := range seqs {
		if len(s) != len(seqs[0]) {
			return fmt.Errorf("alignment: replacement sequences differ in length")
		}
	}
	for i, s := range seqs {
		a.Seqs[i].Seq = s
	}
	return nil
}
