package alignment

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// WriteFasta writes the alignment in fasta format.
func (a *Alignment) WriteFasta(w io.Writer) error {
	for _, s := range a.Seqs {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", s.Id, s.Seq); err != nil {
			return err
		}
	}
	return nil
}

// WriteNexus writes the alignment as a nexus data block.
func (a *Alignment) WriteNexus(w io.Writer) error {
	width := 0
	names := make([]string, a.NSeq())
	for i, s := range a.Seqs {
		names[i] = nexusName(s.Id)
		if len(names[i]) > width {
			width = len(names[i])
		}
	}

	if _, err := fmt.Fprintf(w, "#NEXUS\n\nbegin data;\n  dimensions ntax=%d nchar=%d;\n  format datatype=dna gap=- missing=?;\n  matrix\n",
		a.NSeq(), a.NChar()); err != nil {
		return err
	}
	for i, s := range a.Seqs {
		if _, err := fmt.Fprintf(w, "    %-*s  %s\n", width, names[i], s.Seq); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "  ;\nend;\n")
	return err
}

// nexusName quotes taxon labels that nexus would otherwise split or
// misread, such as the | in identifier|locus labels.
func nexusName(name string) string {
	if name == "" {
		return "''"
	}
	plain := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '.' || c == '-':
		default:
			plain = false
		}
	}
	if plain {
		return name
	}
	return "'" + strings.Replace(name, "'", "''", -1) + "'"
}

// CleanedName names the cleaned output next to the input alignment:
// stem_cleaned plus the format extension.
func CleanedName(fileName, ext string) string {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return stem + "_cleaned." + ext
}
