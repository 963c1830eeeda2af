package codon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"atg", "aaa", "tga"}, Split([]byte("atgaaatga")))
	assert.Empty(t, Split([]byte("at")))
}

func TestSitesAndSequences(t *testing.T) {
	codonsBySeq := [][]string{
		{"atg", "aaa", "tga"},
		{"atg", "ccc", "tga"},
	}
	sites := Sites(codonsBySeq)
	require.Len(t, sites, 3)
	assert.Equal(t, Site{"atg", "atg"}, sites[0])
	assert.Equal(t, Site{"aaa", "ccc"}, sites[1])

	seqs := Sequences(sites, 2)
	require.Len(t, seqs, 2)
	assert.Equal(t, []byte("atgaaatga"), seqs[0])
	assert.Equal(t, []byte("atgccctga"), seqs[1])
}

func TestContainsGap(t *testing.T) {
	assert.True(t, ContainsGap("a-g"))
	assert.True(t, ContainsGap("---"))
	assert.False(t, ContainsGap("atg"))
}

func TestContainsAmbig(t *testing.T) {
	assert.True(t, ContainsAmbig("atn"))
	assert.True(t, ContainsAmbig("ryw"))
	assert.True(t, ContainsAmbig("ATN"))
	// Gaps are not ambiguities.
	assert.False(t, ContainsAmbig("a-g"))
	assert.False(t, ContainsAmbig("atg"))
	assert.False(t, ContainsAmbig("ATG"))
}

func TestIsStop(t *testing.T) {
	gc, err := Table(1)
	require.NoError(t, err)

	for _, c := range []string{"taa", "tag", "tga", "TAA", "TGA"} {
		assert.True(t, IsStop(c, gc), c)
	}
	assert.False(t, IsStop("atg", gc))
	assert.False(t, IsStop("t-a", gc))
	assert.False(t, IsStop("tan", gc))

	// The vertebrate mitochondrial code reassigns tga.
	mito, err := Table(2)
	require.NoError(t, err)
	assert.False(t, IsStop("tga", mito))
	assert.True(t, IsStop("aga", mito))
}

func TestTableUnknown(t *testing.T) {
	_, err := Table(99)
	assert.Error(t, err)
}
