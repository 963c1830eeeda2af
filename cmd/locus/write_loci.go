package main

import (
	"flag"

	"github.com/cymon/locus"
)

// Command for sorting transcriptome fasta files into per-locus files.
type cmdWriteLoci struct {
	outDir *string // output directory.
	csvLog *bool   // write a csv log.
	quiet  *bool   // suppress progress.
}

// Register flags.
func (cmd *cmdWriteLoci) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.outDir = fs.String("d", "locus_alignments", "output directory name")
	cmd.csvLog = fs.Bool("l", false, "write a csv formatted log file")
	cmd.quiet = fs.Bool("q", false, "quiet - do not write progress")
	return fs
}

// Run expects two arguments: a file listing the fasta data files and a
// file listing the locus names, one per line each.
func (cmd *cmdWriteLoci) Run(args []string) {
	registerLogger()
	if len(args) != 2 {
		ERROR.Fatalln("usage: locus write [options] <data file list> <locus name list>")
	}

	dataFiles, err := locus.ReadListFile(args[0])
	if err != nil {
		ERROR.Fatalln(err)
	}
	loci, err := locus.ReadListFile(args[1])
	if err != nil {
		ERROR.Fatalln(err)
	}
	if !*cmd.quiet {
		INFO.Printf("read %d data files and %d loci\n", len(dataFiles), len(loci))
	}

	stats, err := locus.Extract(dataFiles, loci, *cmd.outDir)
	if err != nil {
		ERROR.Fatalln(err)
	}

	if !*cmd.quiet {
		INFO.Println("locus files (number, and min and max lengths of alleles):")
		for _, st := range stats {
			if st.Alleles == 0 {
				continue
			}
			INFO.Printf("\t%-8s -> %-2d alleles (%-4d - %-4d)\n",
				st.Locus, st.Alleles, st.MinLen, st.MaxLen)
		}
	}

	if *cmd.csvLog {
		if err := locus.WriteCSVLog("locus_log.csv", stats); err != nil {
			ERROR.Fatalln(err)
		}
		INFO.Println("locus statistics were saved to locus_log.csv")
	}
}
