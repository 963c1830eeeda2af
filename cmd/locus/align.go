package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cymon/locus"
	"gopkg.in/cheggaaa/pb.v1"
)

// Command for aligning the locus files with TranslatorX.
type cmdAlign struct {
	dir     *string // locus alignment directory.
	ncpu    *int    // number of concurrent TranslatorX runs.
	code    *int    // genetic code for translation.
	gblocks *string // Gblocks options.
	mafft   *bool   // align nucleotides directly with mafft.
	quiet   *bool   // suppress the progress bar.
}

// Register flags.
func (cmd *cmdAlign) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.dir = fs.String("d", "locus_alignments", "directory holding the locus fasta files")
	cmd.ncpu = fs.Int("ncpu", runtime.NumCPU(), "number of CPUs for using")
	cmd.code = fs.Int("t", 1, "NCBI genetic code translation table")
	cmd.gblocks = fs.String("g", "-b5=n", "options passed through to Gblocks")
	cmd.mafft = fs.Bool("m", false, "align nucleotides directly with mafft, skipping TranslatorX")
	cmd.quiet = fs.Bool("q", false, "quiet - do not show progress")
	return fs
}

// Run expects one argument: the file listing locus names.
func (cmd *cmdAlign) Run(args []string) {
	registerLogger()
	if len(args) != 1 {
		ERROR.Fatalln("usage: locus align [options] <locus name list>")
	}
	loci, err := locus.ReadListFile(args[0])
	if err != nil {
		ERROR.Fatalln(err)
	}
	alignLoci(*cmd.dir, loci, *cmd.code, *cmd.gblocks, *cmd.ncpu, *cmd.mafft, *cmd.quiet)
}

// errAlreadyDone marks a locus skipped because its mafft log exists.
var errAlreadyDone = errors.New("already aligned")

type alignResult struct {
	locus string
	err   error
}

// alignLoci runs TranslatorX (or mafft) over every locus on a worker
// pool and tidies up the outputs.
func alignLoci(dir string, loci []string, code int, gblocksOpts string, ncpu int, mafftOnly, quiet bool) {
	jobs := make(chan string)
	go func() {
		for _, name := range loci {
			jobs <- locus.SafeName(name)
		}
		close(jobs)
	}()

	done := make(chan bool)
	results := make(chan alignResult)
	for i := 0; i < ncpu; i++ {
		go func() {
			for name := range jobs {
				if mafftOnly {
					results <- alignResult{locus: name, err: mafftAlign(dir, name)}
					continue
				}
				results <- alignResult{locus: name, err: transXAlign(dir, name, code, gblocksOpts)}
			}
			done <- true
		}()
	}

	go func() {
		for i := 0; i < ncpu; i++ {
			<-done
		}
		close(results)
	}()

	var bar *pb.ProgressBar
	if !quiet {
		bar = pb.StartNew(len(loci))
	}

	failLog := filepath.Join(dir, "transX_stdout.text")
	var aligned, skipped, empty, failed int
	for r := range results {
		switch {
		case r.err == nil:
			aligned++
		case errors.Is(r.err, errAlreadyDone):
			skipped++
		case errors.Is(r.err, locus.ErrNoPositions):
			WARN.Printf("%s: Gblocks alignment:  0 positions\n", r.locus)
			empty++
		default:
			var te *locus.TransXError
			if errors.As(r.err, &te) {
				appendFailLog(failLog, te)
				WARN.Printf("TranslatorX failed for %s - see %s; continuing\n", r.locus, failLog)
			} else {
				WARN.Printf("%s: %v; continuing\n", r.locus, r.err)
			}
			failed++
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	INFO.Printf("aligned %d loci (%d already done, %d with no positions kept, %d failed)\n",
		aligned, skipped, empty, failed)
}

// transXAlign aligns one locus with TranslatorX and removes the
// superfluous outputs.
func transXAlign(dir, name string, code int, gblocksOpts string) error {
	if locus.Aligned(dir, name) {
		return errAlreadyDone
	}
	err := locus.TranslatorX(dir, name, code, gblocksOpts)
	if err == nil {
		return locus.CleanupTranslatorX(dir, name)
	}
	if cerr := locus.CleanupFailedTranslatorX(dir, name); cerr != nil {
		WARN.Println(cerr)
	}
	return err
}

// mafftAlign aligns one locus nucleotide file directly with mafft,
// for loci that are not protein coding.
func mafftAlign(dir, name string) error {
	outName := filepath.Join(dir, name+"_mafft_ali.fasta")
	if _, err := os.Stat(outName); err == nil {
		return errAlreadyDone
	}

	records, err := locus.ReadRecords(filepath.Join(dir, name+".fasta"))
	if err != nil {
		return err
	}
	aln, err := locus.MultiAlign(records, locus.Mafft)
	if err != nil {
		return err
	}

	w, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer w.Close()
	return locus.WriteFasta(w, aln)
}

// appendFailLog collects the output of failed TranslatorX runs in one
// file, as the runs themselves are discarded.
func appendFailLog(fileName string, te *locus.TransXError) {
	f, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		WARN.Println(err)
		return
	}
	defer f.Close()
	f.WriteString(te.Stdout)
	f.WriteString(te.Stderr)
}
