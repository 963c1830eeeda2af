package alignment

import (
	"bytes"
	"testing"

	"github.com/mingzhi/biogo/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAlignment() *Alignment {
	return &Alignment{
		Name: "NODE_1_transX.nt_cleanali.fasta",
		Seqs: []*seq.Sequence{
			{Id: "tax1|NODE_1", Seq: []byte("atgaaa")},
			{Id: "long_name_tax2", Seq: []byte("atgccc")},
		},
	}
}

func TestWriteFasta(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, testAlignment().WriteFasta(buf))
	assert.Equal(t, ">tax1|NODE_1\natgaaa\n>long_name_tax2\natgccc\n", buf.String())
}

func TestWriteNexus(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, testAlignment().WriteNexus(buf))

	want := "#NEXUS\n" +
		"\n" +
		"begin data;\n" +
		"  dimensions ntax=2 nchar=6;\n" +
		"  format datatype=dna gap=- missing=?;\n" +
		"  matrix\n" +
		"    'tax1|NODE_1'   atgaaa\n" +
		"    long_name_tax2  atgccc\n" +
		"  ;\n" +
		"end;\n"
	assert.Equal(t, want, buf.String())
}

func TestNexusName(t *testing.T) {
	assert.Equal(t, "tax1_NODE.1-x", nexusName("tax1_NODE.1-x"))
	assert.Equal(t, "'tax1|NODE_1'", nexusName("tax1|NODE_1"))
	assert.Equal(t, "'it''s'", nexusName("it's"))
	assert.Equal(t, "''", nexusName(""))
}

func TestCleanedName(t *testing.T) {
	assert.Equal(t, "NODE_1_transX.nt_cleanali_cleaned.nex",
		CleanedName("NODE_1_transX.nt_cleanali.fasta", "nex"))
	assert.Equal(t, "dir/aln_cleaned.fasta", CleanedName("dir/aln.fas", "fasta"))
}
