package codon

import "github.com/mingzhi/ncbiftp/taxonomy"

// Filter selects which codon sites to remove. With no category
// enabled, all three are removed. In constant mode a site is removed
// only when every sequence carries the target at that site; otherwise
// one offending sequence is enough.
type Filter struct {
	Gaps     bool
	Ambigs   bool
	Stops    bool
	Constant bool
	Code     *taxonomy.GeneticCode
}

// Report counts the fate of every codon site of an alignment.
// Each removed site is counted once, under the first matching
// category (ambiguous, then gapped, then stop).
type Report struct {
	Kept      int
	Ambiguous int
	Gapped    int
	Stopped   int
}

// Total is the number of sites examined.
func (r Report) Total() int {
	return r.Kept + r.Ambiguous + r.Gapped + r.Stopped
}

// Clean removes the selected codon sites and reports what was removed.
// Site order is preserved.
func Clean(sites []Site, f Filter) ([]Site, Report) {
	if !f.Gaps && !f.Ambigs && !f.Stops {
		f.Gaps, f.Ambigs, f.Stops = true, true, true
	}

	var rep Report
	kept := make([]Site, 0, len(sites))
	for _, site := range sites {
		var removed bool
		if f.Constant {
			removed = removeConstant(site, f, &rep)
		} else {
			removed = removeAny(site, f, &rep)
		}
		if !removed {
			kept = append(kept, site)
			rep.Kept++
		}
	}

	return kept, rep
}

// removeAny drops a site as soon as one sequence carries a target.
func removeAny(site Site, f Filter, rep *Report) bool {
	for _, c := range site {
		if f.Ambigs && ContainsAmbig(c) {
			rep.Ambiguous++
			return true
		}
		if f.Gaps && ContainsGap(c) {
			rep.Gapped++
			return true
		}
		if f.Stops && IsStop(c, f.Code) {
			rep.Stopped++
			return true
		}
	}
	return false
}

// removeConstant drops a site only when all sequences carry the same
// category of target.
func removeConstant(site Site, f Filter, rep *Report) bool {
	if f.Ambigs && all(site, ContainsAmbig) {
		rep.Ambiguous++
		return true
	}
	if f.Gaps && all(site, ContainsGap) {
		rep.Gapped++
		return true
	}
	if f.Stops && all(site, func(c string) bool { return IsStop(c, f.Code) }) {
		rep.Stopped++
		return true
	}
	return false
}

func all(site Site, test func(string) bool) bool {
	for _, c := range site {
		if !test(c) {
			return false
		}
	}
	return true
}
