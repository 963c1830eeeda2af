package locus

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/mingzhi/biogo/seq"
)

// ErrNoPositions reports the benign TranslatorX outcome where Gblocks
// keeps no alignment positions for a locus.
var ErrNoPositions = errors.New("Gblocks alignment:  0 positions")

// AlignFunc runs a multiple sequence aligner, reading fasta from stdin
// and writing the alignment to stdout.
type AlignFunc func(stdin io.Reader, stdout, stderr io.Writer, options ...string) error

// Mafft runs mafft. With no options it reads from stdin.
func Mafft(stdin io.Reader, stdout, stderr io.Writer, options ...string) (err error) {
	if len(options) == 0 {
		options = []string{"--auto", "-"}
	}
	cmd := exec.Command("mafft", options...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	err = cmd.Run()
	return
}

// MultiAlign aligns the records with the given aligner and maps the
// aligned sequences back onto the records by label.
func MultiAlign(records []Record, alignFunc AlignFunc, options ...string) ([]Record, error) {
	stdin := new(bytes.Buffer)
	recMap := make(map[string]Record)
	for _, r := range records {
		stdin.WriteString(">" + r.Id() + "\n")
		stdin.Write(r.Seq)
		stdin.WriteString("\n")
		recMap[r.Id()] = r
	}

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	if err := alignFunc(stdin, stdout, stderr, options...); err != nil {
		return nil, fmt.Errorf("locus: aligner: %v\n%s", err, stderr.Bytes())
	}

	fr := seq.NewFastaReader(stdout)
	alns, err := fr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("locus: aligner output: %v\n%s", err, stderr.Bytes())
	}

	alnRecords := []Record{}
	for _, s := range alns {
		if s == nil {
			continue
		}
		r, found := recMap[s.Id]
		if !found {
			continue
		}
		r.Seq = s.Seq
		alnRecords = append(alnRecords, r)
	}

	return alnRecords, nil
}

// back translate amino acid alignment to nucleotide sequences.
func BackTranslate(aa, na []byte) []byte {
	k := 0
	aln := []byte{}
	for i := 0; i < len(aa); i++ {
		if aa[i] == '-' {
			aln = append(aln, []byte{'-', '-', '-'}...)
		} else {
			aln = append(aln, na[k*3:(k+1)*3]...)
			k++
		}
	}
	return aln
}

// TranslatorX output files that carry no information the pipeline
// keeps. The mafft log stays behind as the done marker, the
// nt_cleanali fasta is the product.
var superfluousTransXFiles = []string{
	"%s_transX.aa_ali.fasta",
	"%s_transX.aa_ali.fasta-gb.txts",
	"%s_transX.aa_based_codon_coloured-gb.html",
	"%s_transX.aa_based_codon_coloured.html",
	"%s_transX.aa_cleanali.fasta",
	"%s_transX.aaseqs",
	"%s_transX.aaseqs.fasta",
	"%s_transX.html",
	"%s_transX.nt12_ali.fasta",
	"%s_transX.nt12_cleanali.fasta",
	"%s_transX.nt1_ali.fasta",
	"%s_transX.nt1_cleanali.fasta",
	"%s_transX.nt2_ali.fasta",
	"%s_transX.nt2_cleanali.fasta",
	"%s_transX.nt3_ali.fasta",
	"%s_transX.nt3_cleanali.fasta",
}

// Extra outputs left behind when TranslatorX fails part way.
var failedTransXFiles = []string{
	"%s_transX.aa_ali.fasta-gb.htm",
	"%s_transX.nt_ali.fasta",
	"%s_transX.nt_cleanali.fasta",
}

// TranslatorX aligns one locus fasta file in dir: sequences are
// translated, aligned as proteins with mafft, back translated, and
// trimmed with Gblocks. Outputs are written next to the input with the
// _transX prefix. A run that Gblocks strips to nothing returns
// ErrNoPositions.
func TranslatorX(dir, locusName string, code int, gblocksOpts string) error {
	fastaPath := filepath.Join(dir, locusName+".fasta")
	fi, err := os.Stat(fastaPath)
	if err != nil {
		return fmt.Errorf("locus: cannot find locus data file %s", fastaPath)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("locus: locus file %s has 0 bytes content", fastaPath)
	}

	outBase := filepath.Join(dir, locusName+"_transX")
	cmd := exec.Command("translatorx",
		"-i", fastaPath,
		"-o", outBase,
		"-p", "F",
		"-c", strconv.Itoa(code),
		"-g", gblocksOpts,
	)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		if bytes.Contains(stderr.Bytes(), []byte("Gblocks alignment:  0 positions")) {
			return ErrNoPositions
		}
		return &TransXError{Locus: locusName, Err: err, Stdout: stdout.String(), Stderr: stderr.String()}
	}

	return nil
}

// TransXError carries the captured output of a failed TranslatorX run.
type TransXError struct {
	Locus  string
	Err    error
	Stdout string
	Stderr string
}

func (e *TransXError) Error() string {
	return fmt.Sprintf("locus: TranslatorX failed for %s: %v", e.Locus, e.Err)
}

func (e *TransXError) Unwrap() error { return e.Err }

// Aligned reports whether a locus has already been through
// TranslatorX, marked by its mafft log.
func Aligned(dir, locusName string) bool {
	_, err := os.Stat(MafftLogFile(dir, locusName))
	return err == nil
}

// MafftLogFile is the done marker left by TranslatorX.
func MafftLogFile(dir, locusName string) string {
	return filepath.Join(dir, locusName+"_transX.mafft.log")
}

// NtCleanAliFile is the Gblocks-cleaned nucleotide alignment for a
// locus, the product the clean step consumes.
func NtCleanAliFile(dir, locusName string) string {
	return filepath.Join(dir, locusName+"_transX.nt_cleanali.fasta")
}

// CleanupTranslatorX removes the superfluous TranslatorX outputs for a
// locus. Missing files are ignored.
func CleanupTranslatorX(dir, locusName string) error {
	return removeByPattern(dir, locusName, superfluousTransXFiles)
}

// CleanupFailedTranslatorX removes the partial outputs of a failed
// run, on top of the superfluous set.
func CleanupFailedTranslatorX(dir, locusName string) error {
	if err := removeByPattern(dir, locusName, failedTransXFiles); err != nil {
		return err
	}
	return removeByPattern(dir, locusName, superfluousTransXFiles)
}

func removeByPattern(dir, locusName string, patterns []string) error {
	for _, p := range patterns {
		name := filepath.Join(dir, fmt.Sprintf(p, locusName))
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
