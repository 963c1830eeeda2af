// Command locus prepares loci from transcriptome data for
// phylogenetic analysis: transcriptome experiments, one fasta file per
// taxon, are sorted into individual locus files, aligned with
// TranslatorX (including Gblocks), and cleaned of gapped, ambiguous
// and stop codon sites.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/cymon/locus"
	"github.com/rakyll/command"
)

var (
	DefaultMaxProcs = runtime.NumCPU()
	INFO            *log.Logger
	WARN            *log.Logger
	ERROR           *log.Logger
)

func main() {
	runtime.GOMAXPROCS(DefaultMaxProcs)
	// Register loggers.
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	WARN = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime)
	ERROR = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
	// Register commands.
	command.On("write", "sort transcriptome records into per-locus fasta files", &cmdWriteLoci{}, []string{})
	command.On("align", "align locus files with TranslatorX (mafft + Gblocks)", &cmdAlign{}, []string{})
	command.On("clean", "remove gapped, ambiguous and stop codon sites from an alignment", &cmdClean{}, []string{})
	command.On("pipe", "run the full pipeline: write, align, clean", &cmdPipe{}, []string{})
	// Parse and run commands.
	command.ParseAndRun()
}

func registerLogger() {
	locus.Info = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	locus.Warn = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime)
}
