package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/cymon/locus"
	"github.com/cymon/locus/codon"
)

// Command for running the whole pipeline: write the locus data files,
// align each locus with TranslatorX, and clean the codon alignments.
type cmdPipe struct {
	cmdConfig // embedded cmdConfig.

	writeLoci *bool // write the locus data files first.
	quiet     *bool
}

// Register flags.
func (cmd *cmdPipe) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.cmdConfig.Flags(fs)
	cmd.writeLoci = fs.Bool("write", false, "write the locus data files")
	cmd.quiet = fs.Bool("q", false, "quiet - do not show progress")
	return fs
}

func (cmd *cmdPipe) Run(args []string) {
	// Parse configure and settings.
	cmd.ParseConfig()

	dataFiles, err := locus.ReadListFile(cmd.dataFileList)
	if err != nil {
		ERROR.Fatalln(err)
	}
	loci, err := locus.ReadListFile(cmd.locusNameList)
	if err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("read %d data files and %d loci\n", len(dataFiles), len(loci))

	// Step 1: write the individual locus files.
	if *cmd.writeLoci {
		stats, err := locus.Extract(dataFiles, loci, cmd.outDir)
		if err != nil {
			ERROR.Fatalln(err)
		}
		logName := filepath.Join(*cmd.workspace, "locus_log.csv")
		if err := locus.WriteCSVLog(logName, stats); err != nil {
			ERROR.Fatalln(err)
		}
		INFO.Printf("wrote locus data files to %s\n", cmd.outDir)
	} else {
		INFO.Printf("not writing locus data files, expecting them in %s\n", cmd.outDir)
	}

	// Step 2: align every locus with TranslatorX.
	alignLoci(cmd.outDir, loci, cmd.transXCode, cmd.gblocksOpts, *cmd.ncpu, false, *cmd.quiet)

	// Step 3: clean ambiguities, gaps and stop codons out of the
	// aligned loci, removing whole codon sites.
	cleaned := 0
	for _, name := range loci {
		name = locus.SafeName(name)
		target := locus.NtCleanAliFile(cmd.outDir, name)
		if _, err := os.Stat(target); err != nil {
			WARN.Printf("cannot find %s; continuing\n", target)
			continue
		}
		if err := cleanAlignment(target, cmd.cleanCode, codon.Filter{}, "nex", true); err != nil {
			WARN.Printf("clean %s: %v; continuing\n", target, err)
			continue
		}
		cleaned++
	}
	INFO.Printf("cleaned %d locus alignments\n", cleaned)
}
