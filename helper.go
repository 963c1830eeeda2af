package locus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mingzhi/biogo/seq"
)

// Helper functions

// ReadFasta reads all fasta records from a file.
func ReadFasta(fileName string) ([]*seq.Sequence, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := seq.NewFastaReader(f)
	seqs, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("locus: read fasta %s: %v", fileName, err)
	}

	return seqs, nil
}

// ReadRecords reads a transcriptome fasta file into records,
// splitting each label into identifier and locus.
func ReadRecords(fileName string) ([]Record, error) {
	seqs, err := ReadFasta(fileName)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(seqs))
	for _, s := range seqs {
		identifier, locusName, err := ParseHeader(s.Id)
		if err != nil {
			return nil, fmt.Errorf("%v in %s", err, fileName)
		}
		records = append(records, Record{
			Identifier: identifier,
			Locus:      locusName,
			Seq:        s.Seq,
		})
	}

	return records, nil
}

// ReadListFile reads one item per line, skipping blank lines.
// Items must be unique.
func ReadListFile(fileName string) ([]string, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := make(map[string]bool)
	items := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if seen[line] {
			return nil, fmt.Errorf("locus: not all names in %s are unique: %s", fileName, line)
		}
		seen[line] = true
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// WriteFasta writes records in fasta format.
func WriteFasta(w io.Writer, records []Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", r.Id(), r.Seq); err != nil {
			return err
		}
	}
	return nil
}

// return max int
func maxInt(a, b int) int {
	if a > b {
		return a
	} else {
		return b
	}
}

// return min int
func minInt(a, b int) int {
	if a < b {
		return a
	} else {
		return b
	}
}
