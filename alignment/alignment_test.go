package alignment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cymon/locus/codon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAlignment(t *testing.T, data string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "aln.fasta")
	require.NoError(t, os.WriteFile(fileName, []byte(data), 0644))
	return fileName
}

func TestRead(t *testing.T) {
	fileName := writeAlignment(t, ">tax1|NODE_1\nATGAAATGA\n>tax2|NODE_1\natgccctga\n")
	aln, err := Read(fileName)
	require.NoError(t, err)

	assert.Equal(t, 2, aln.NSeq())
	assert.Equal(t, 9, aln.NChar())
	// Residues are lower-cased on reading.
	assert.Equal(t, []byte("atgaaatga"), aln.Seqs[0].Seq)
}

func TestReadUnequalLengths(t *testing.T) {
	fileName := writeAlignment(t, ">tax1\natgaaa\n>tax2\natg\n")
	_, err := Read(fileName)
	assert.ErrorContains(t, err, "length")
}

func TestReadEmpty(t *testing.T) {
	fileName := writeAlignment(t, "")
	_, err := Read(fileName)
	assert.Error(t, err)
}

func TestSites(t *testing.T) {
	fileName := writeAlignment(t, ">tax1\natgaaatga\n>tax2\natgccctga\n")
	aln, err := Read(fileName)
	require.NoError(t, err)

	sites, err := aln.Sites()
	require.NoError(t, err)
	require.Len(t, sites, 3)
	assert.Equal(t, codon.Site{"atg", "atg"}, sites[0])
	assert.Equal(t, codon.Site{"aaa", "ccc"}, sites[1])
	assert.Equal(t, codon.Site{"tga", "tga"}, sites[2])
}

func TestSitesNotInFrame(t *testing.T) {
	fileName := writeAlignment(t, ">tax1\natgaaatg\n>tax2\natgccctg\n")
	aln, err := Read(fileName)
	require.NoError(t, err)

	_, err = aln.Sites()
	assert.ErrorContains(t, err, "not exactly divisible by 3")
}

func TestSetSequences(t *testing.T) {
	fileName := writeAlignment(t, ">tax1\natgaaatga\n>tax2\natgccctga\n")
	aln, err := Read(fileName)
	require.NoError(t, err)

	require.NoError(t, aln.SetSequences([][]byte{[]byte("atgaaa"), []byte("atgccc")}))
	assert.Equal(t, 6, aln.NChar())
	assert.Equal(t, "tax1", aln.Seqs[0].Id)

	assert.Error(t, aln.SetSequences([][]byte{[]byte("atg")}))
	assert.Error(t, aln.SetSequences([][]byte{[]byte("atgatg"), []byte("atg")}))
}
