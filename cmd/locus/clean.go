package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cymon/locus/alignment"
	"github.com/cymon/locus/codon"
)

// Command for removing gapped, ambiguous and stop codon sites from an
// in-frame codon alignment.
type cmdClean struct {
	code     *int    // NCBI transl_table id.
	ambigs   *bool   // remove (only) ambiguous codon sites.
	gaps     *bool   // remove (only) gapped codon sites.
	stops    *bool   // remove (only) stop codon sites.
	constant *bool   // remove only when all sequences carry the target.
	format   *string // output format: nex or fasta.
	quiet    *bool
}

// Register flags.
func (cmd *cmdClean) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.code = fs.Int("t", 1, "NCBI genetic code translation table")
	cmd.ambigs = fs.Bool("a", false, "remove (only) codon sites with ambiguities")
	cmd.gaps = fs.Bool("g", false, "remove (only) gapped codon sites")
	cmd.stops = fs.Bool("s", false, "remove (only) codon sites with stop codons")
	cmd.constant = fs.Bool("c", false, "only remove a site if all sequences have the target")
	cmd.format = fs.String("f", "nex", "output format: nex or fasta")
	cmd.quiet = fs.Bool("q", false, "quiet - do not write progress")
	return fs
}

// Run expects one argument: an in-frame codon alignment in fasta
// format.
func (cmd *cmdClean) Run(args []string) {
	registerLogger()
	if len(args) != 1 {
		ERROR.Fatalln("usage: locus clean [options] <alignment>")
	}

	f := codon.Filter{
		Ambigs:   *cmd.ambigs,
		Gaps:     *cmd.gaps,
		Stops:    *cmd.stops,
		Constant: *cmd.constant,
	}
	if err := cleanAlignment(args[0], *cmd.code, f, *cmd.format, *cmd.quiet); err != nil {
		ERROR.Fatalln(err)
	}
}

// cleanAlignment removes the selected codon sites from one alignment
// file and writes the cleaned alignment next to it.
func cleanAlignment(fileName string, code int, f codon.Filter, format string, quiet bool) error {
	if format != "nex" && format != "fasta" {
		return fmt.Errorf("unknown output format %q (nex or fasta)", format)
	}

	gc, err := codon.Table(code)
	if err != nil {
		return err
	}
	f.Code = gc

	aln, err := alignment.Read(fileName)
	if err != nil {
		return err
	}
	sites, err := aln.Sites()
	if err != nil {
		return err
	}

	if !quiet {
		INFO.Printf("alignment has %d characters and %d codon sites\n", aln.NChar(), len(sites))
		if f.Constant {
			INFO.Println("only removing codon sites if all sequences contain target")
		} else {
			INFO.Println("removing codon sites if any sequence has target")
		}
	}

	kept, rep := codon.Clean(sites, f)
	if !quiet {
		INFO.Printf("removed %-3d sites containing ambiguities\n", rep.Ambiguous)
		INFO.Printf("removed %-3d sites containing gaps\n", rep.Gapped)
		INFO.Printf("removed %-3d sites containing stop codons\n", rep.Stopped)
	}

	if len(kept) == 0 {
		INFO.Println("all codon sites removed; no remaining sites - no output")
		return nil
	}

	if err := aln.SetSequences(codon.Sequences(kept, aln.NSeq())); err != nil {
		return err
	}

	outName := alignment.CleanedName(fileName, format)
	w, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer w.Close()

	switch format {
	case "fasta":
		err = aln.WriteFasta(w)
	default:
		err = aln.WriteNexus(w)
	}
	if err != nil {
		return err
	}

	INFO.Printf("written cleaned alignment (%d codons) to: %s\n", len(kept), outName)
	return nil
}
