// Package locus sorts assembled transcriptome experiments into
// per-locus sequence files and prepares them for phylogenetic
// analysis: loci are aligned with TranslatorX (mafft + Gblocks) and
// cleaned of gapped, ambiguous and stop codon sites.
//
// Published as part of manuscript:
// Almeida et al. A low-latitude species pump: Peripheral isolation,
// parapatric speciation and mating-system evolution converge in a
// marine radiation. Molecular Ecology.
package locus

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Loggers. The command line program replaces them.
var (
	Info *log.Logger = log.New(io.Discard, "", 0)
	Warn *log.Logger = log.New(io.Discard, "", 0)
)

// Record is one sequence entry from a transcriptome experiment.
// Records are labeled ">identifier|locus": the identifier carries the
// experiment labels needed downstream, the locus names the putative
// homolog shared across experiments.
type Record struct {
	Identifier string // experiment identifier.
	Locus      string // locus name.
	Seq        []byte // nucleotide sequence.
}

// Id returns the full record label, identifier|locus.
func (r Record) Id() string {
	return r.Identifier + "|" + r.Locus
}

// ParseHeader splits a record label of the form identifier|locus.
// The locus is everything after the first "|".
func ParseHeader(id string) (identifier, locusName string, err error) {
	i := strings.Index(id, "|")
	if i < 0 {
		return "", "", fmt.Errorf("locus: record label %q has no locus field", id)
	}
	return id[:i], id[i+1:], nil
}

// SafeName converts a locus name into a usable file name.
// Locus names from assemblers can contain "/", which breaks file
// naming; they become "-". Downstream steps must use the same mapping.
func SafeName(locusName string) string {
	return strings.Replace(locusName, "/", "-", -1)
}
