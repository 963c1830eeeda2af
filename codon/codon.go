// Package codon models in-frame codon sites of a nucleotide alignment
// and removes sites containing gaps, ambiguities or stop codons.
package codon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mingzhi/ncbiftp/taxonomy"
)

// A Site is the homologous in-frame codon across all sequences at one
// codon position of an alignment.
type Site []string

// Split cuts a sequence into in-frame codons. The length must be a
// multiple of three.
func Split(s []byte) []string {
	codons := make([]string, 0, len(s)/3)
	for i := 0; i+3 <= len(s); i += 3 {
		codons = append(codons, string(s[i:i+3]))
	}
	return codons
}

// Sites transposes per-sequence codons into per-position sites.
// All sequences must have the same number of codons.
func Sites(codonsBySeq [][]string) []Site {
	if len(codonsBySeq) == 0 {
		return nil
	}
	n := len(codonsBySeq[0])
	sites := make([]Site, n)
	for i := 0; i < n; i++ {
		site := make(Site, len(codonsBySeq))
		for j, codons := range codonsBySeq {
			site[j] = codons[i]
		}
		sites[i] = site
	}
	return sites
}

// Sequences rebuilds one sequence per taxon from the kept sites,
// the inverse of Sites.
func Sequences(sites []Site, ntax int) [][]byte {
	seqs := make([][]byte, ntax)
	for i := range seqs {
		seqs[i] = make([]byte, 0, len(sites)*3)
	}
	for _, site := range sites {
		for j, c := range site {
			seqs[j] = append(seqs[j], c...)
		}
	}
	return seqs
}

// ContainsGap reports whether any position of the codon is a gap.
func ContainsGap(codon string) bool {
	return strings.ContainsRune(codon, '-')
}

// ContainsAmbig reports whether any position of the codon is an
// ambiguity code. Gaps are not ambiguities.
func ContainsAmbig(codon string) bool {
	for i := 0; i < len(codon); i++ {
		switch codon[i] | 0x20 {
		case 'a', 'c', 'g', 't', '-':
		default:
			return true
		}
	}
	return false
}

func isATGC(b byte) bool {
	switch b | 0x20 {
	case 'a', 't', 'g', 'c':
		return true
	}
	return false
}

// IsStop reports whether the codon is a stop codon of the genetic
// code.
func IsStop(codon string, gc *taxonomy.GeneticCode) bool {
	for i := 0; i < len(codon); i++ {
		if !isATGC(codon[i]) {
			return false
		}
	}
	return gc.Table[strings.ToUpper(codon)] == '*'
}

// Table returns the genetic code for a NCBI transl_table id.
func Table(id int) (*taxonomy.GeneticCode, error) {
	gc, found := taxonomy.GeneticCodes()[strconv.Itoa(id)]
	if !found {
		return nil, fmt.Errorf("codon: unknown genetic code table %d", id)
	}
	return gc, nil
}
