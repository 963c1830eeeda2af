package codon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three sequences, five codon sites: clean, ambiguous in one
// sequence, gapped in one sequence, stop in one sequence, clean.
func testSites() []Site {
	return []Site{
		{"atg", "atg", "atg"},
		{"aan", "aaa", "aaa"},
		{"cc-", "ccc", "ccc"},
		{"taa", "ttc", "ttc"},
		{"gga", "gga", "gga"},
	}
}

func standard(t *testing.T) Filter {
	t.Helper()
	gc, err := Table(1)
	require.NoError(t, err)
	return Filter{Code: gc}
}

func TestCleanDefaultRemovesAll(t *testing.T) {
	f := standard(t)
	kept, rep := Clean(testSites(), f)

	require.Len(t, kept, 2)
	assert.Equal(t, Site{"atg", "atg", "atg"}, kept[0])
	assert.Equal(t, Site{"gga", "gga", "gga"}, kept[1])
	assert.Equal(t, Report{Kept: 2, Ambiguous: 1, Gapped: 1, Stopped: 1}, rep)
	assert.Equal(t, len(testSites()), rep.Total())
}

func TestCleanGapsOnly(t *testing.T) {
	f := standard(t)
	f.Gaps = true
	kept, rep := Clean(testSites(), f)

	require.Len(t, kept, 4)
	assert.Equal(t, Report{Kept: 4, Gapped: 1}, rep)
	// The ambiguous and stop sites stay.
	assert.Equal(t, Site{"aan", "aaa", "aaa"}, kept[1])
	assert.Equal(t, Site{"taa", "ttc", "ttc"}, kept[2])
}

func TestCleanStopsOnly(t *testing.T) {
	f := standard(t)
	f.Stops = true
	kept, rep := Clean(testSites(), f)

	require.Len(t, kept, 4)
	assert.Equal(t, Report{Kept: 4, Stopped: 1}, rep)
}

func TestCleanAmbigsOnly(t *testing.T) {
	f := standard(t)
	f.Ambigs = true
	kept, rep := Clean(testSites(), f)

	require.Len(t, kept, 4)
	assert.Equal(t, Report{Kept: 4, Ambiguous: 1}, rep)
}

func TestCleanConstant(t *testing.T) {
	sites := []Site{
		{"atg", "atg"},
		{"---", "---"}, // gapped in all sequences: removed.
		{"cc-", "ccc"}, // gapped in one: kept in constant mode.
		{"taa", "tga"}, // stops in all sequences: removed.
		{"taa", "ttc"}, // stop in one: kept.
		{"nnn", "rrr"}, // ambiguous in all: removed.
	}

	f := standard(t)
	f.Constant = true
	kept, rep := Clean(sites, f)

	require.Len(t, kept, 3)
	assert.Equal(t, Report{Kept: 3, Ambiguous: 1, Gapped: 1, Stopped: 1}, rep)
}

func TestCleanAllRemoved(t *testing.T) {
	f := standard(t)
	kept, rep := Clean([]Site{{"---", "---"}, {"taa", "taa"}}, f)
	assert.Empty(t, kept)
	assert.Equal(t, 0, rep.Kept)
	assert.Equal(t, 2, rep.Total())
}

func TestCleanPreservesOrder(t *testing.T) {
	sites := []Site{
		{"atg"}, {"taa"}, {"ccc"}, {"n-n"}, {"ggg"},
	}
	f := standard(t)
	kept, _ := Clean(sites, f)
	assert.Equal(t, []Site{{"atg"}, {"ccc"}, {"ggg"}}, kept)
}
