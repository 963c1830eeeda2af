package locus

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/mingzhi/gomath/stat/desc/meanvar"
)

// LocusStat summarizes the alleles gathered for one locus.
type LocusStat struct {
	Locus   string  // locus name as listed.
	Alleles int     // number of sequences found.
	MaxLen  int     // longest allele.
	MinLen  int     // shortest allele.
	MeanLen float64 // mean allele length.
}

// Extract reads every record from the listed transcriptome fasta files
// and writes one fasta file per named locus into outDir. The output
// directory must not already exist. Loci with no records anywhere are
// skipped with a warning and reported with zero alleles.
func Extract(dataFiles, loci []string, outDir string) ([]LocusStat, error) {
	if _, err := os.Stat(outDir); err == nil {
		return nil, fmt.Errorf("locus: output directory %q already present", outDir)
	}

	recMap, err := gatherRecords(dataFiles)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	stats := make([]LocusStat, 0, len(loci))
	for _, locusName := range loci {
		records := recMap[locusName]
		st := LocusStat{Locus: locusName}
		if len(records) == 0 {
			Warn.Printf("unable to find locus %s in any data file\n", locusName)
			stats = append(stats, st)
			continue
		}

		mv := meanvar.New()
		st.Alleles = len(records)
		st.MinLen = len(records[0].Seq)
		for _, r := range records {
			st.MaxLen = maxInt(st.MaxLen, len(r.Seq))
			st.MinLen = minInt(st.MinLen, len(r.Seq))
			mv.Increment(float64(len(r.Seq)))
		}
		st.MeanLen = mv.Mean.GetResult()

		fileName := filepath.Join(outDir, SafeName(locusName)+".fasta")
		if err := writeLocusFile(fileName, records); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}

	return stats, nil
}

// gatherRecords loads all records from all data files concurrently and
// groups them by locus, preserving listed file order and record order
// within each file.
func gatherRecords(dataFiles []string) (map[string][]Record, error) {
	for _, f := range dataFiles {
		if _, err := os.Stat(f); err != nil {
			return nil, fmt.Errorf("locus: cannot find specified data file %s", f)
		}
	}

	type result struct {
		index   int
		records []Record
		err     error
	}

	ncpu := runtime.GOMAXPROCS(0)
	jobs := make(chan int)
	go func() {
		for i := range dataFiles {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan bool)
	results := make(chan result)
	for i := 0; i < ncpu; i++ {
		go func() {
			for i := range jobs {
				records, err := ReadRecords(dataFiles[i])
				results <- result{index: i, records: records, err: err}
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

	byFile := make([][]Record, len(dataFiles))
	var firstErr error
	for r := range results {
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		byFile[r.index] = r.records
	}
	if firstErr != nil {
		return nil, firstErr
	}

	recMap := make(map[string][]Record)
	for _, records := range byFile {
		for _, r := range records {
			recMap[r.Locus] = append(recMap[r.Locus], r)
		}
	}

	return recMap, nil
}

func writeLocusFile(fileName string, records []Record) error {
	w, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer w.Close()
	return WriteFasta(w, records)
}

// WriteCSVLog writes the per-locus allele statistics as csv.
func WriteCSVLog(fileName string, stats []LocusStat) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()

	csvWr := csv.NewWriter(f)
	if err := csvWr.Write([]string{"locus", "#alleles", "max len", "min len", "mean len"}); err != nil {
		return err
	}
	for _, st := range stats {
		row := []string{
			st.Locus,
			strconv.Itoa(st.Alleles),
			strconv.Itoa(st.MaxLen),
			strconv.Itoa(st.MinLen),
			strconv.FormatFloat(st.MeanLen, 'f', 1, 64),
		}
		if err := csvWr.Write(row); err != nil {
			return err
		}
	}
	csvWr.Flush()

	return csvWr.Error()
}
