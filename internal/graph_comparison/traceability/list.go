package traceability

import (
	"sort"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/scoring"
)

// package -> file -> lines
type locationIndex map[string]map[string]map[int]bool

func index(locs []domain.Location) locationIndex {
	idx := locationIndex{}
	for _, l := range locs {
		if !l.Known() {
			continue
		}
		files, ok := idx[l.Package]
		if !ok {
			files = map[string]map[int]bool{}
			idx[l.Package] = files
		}
		if l.File == "" {
			continue
		}
		lines, ok := files[l.File]
		if !ok {
			lines = map[int]bool{}
			files[l.File] = lines
		}
		lines[l.Line] = true
	}
	return idx
}

type counts struct{ expected, predicted, spurious float64 }

func (c counts) f1() float64 { return scoring.F1(c.expected, c.predicted, c.spurious) }

// ListRatio scores a list of Model locations against the Truth list with a
// package, file and line F1 weighted 3:2:1. An empty Model list for a
// non-empty Truth list costs 1.
func ListRatio(truth, model []domain.Location, d *domain.Deltas) float64 {
	if len(truth) == 0 {
		return 0.0
	}
	if len(model) == 0 {
		for _, l := range truth {
			d.Add(Attribute, nil, l)
		}
		return 1.0
	}
	ti, mi := index(truth), index(model)
	var pkg, file, line counts

	for _, p := range sortedKeys(ti) {
		files := ti[p]
		pkg.expected++
		mfiles, ok := mi[p]
		if !ok {
			forEachLine(p, files, func(l domain.Location) { d.Add(Attribute, nil, l) })
			continue
		}
		pkg.predicted++
		for _, f := range sortedKeys(files) {
			file.expected++
			mlines, ok := mfiles[f]
			if !ok {
				for _, n := range sortedLines(files[f]) {
					d.Add(Attribute, domain.Location{Package: p}, domain.Location{Package: p, File: f, Line: n})
				}
				continue
			}
			file.predicted++
			for _, n := range sortedLines(files[f]) {
				line.expected++
				if mlines[n] {
					line.predicted++
					continue
				}
				d.Add(Attribute, domain.Location{Package: p, File: f}, domain.Location{Package: p, File: f, Line: n})
			}
		}
	}

	for _, p := range sortedKeys(mi) {
		mfiles := mi[p]
		files, ok := ti[p]
		if !ok {
			pkg.spurious++
			forEachLine(p, mfiles, func(l domain.Location) { d.Add(Attribute, l, nil) })
			continue
		}
		for _, f := range sortedKeys(mfiles) {
			lines, ok := files[f]
			if !ok {
				file.spurious++
				for _, n := range sortedLines(mfiles[f]) {
					d.Add(Attribute, domain.Location{Package: p, File: f, Line: n}, nil)
				}
				continue
			}
			for _, n := range sortedLines(mfiles[f]) {
				if !lines[n] {
					line.spurious++
					d.Add(Attribute, domain.Location{Package: p, File: f, Line: n}, nil)
				}
			}
		}
	}

	return 1.0 - (3*pkg.f1()+2*file.f1()+line.f1())/6.0
}

// ListUnit is the count-model list comparator. Model locations are taken from
// the most to the least specific and each consumes at most one remaining
// Truth location sharing its known prefix. The result is the missing Truth
// weight plus the spurious Model weight.
func ListUnit(truth, model []domain.Location, d *domain.Deltas) int {
	remaining := make([]domain.Location, 0, len(truth))
	for _, l := range truth {
		if l.Known() {
			remaining = append(remaining, l)
		}
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].Less(remaining[j]) })

	n := CostLocNone * len(remaining)
	p, s := 0, 0
	for _, b := range buckets(model) {
		for _, loc := range b.locs {
			i := sort.Search(len(remaining), func(k int) bool { return loc.Less(remaining[k]) })
			switch {
			case i > 0 && remaining[i-1] == loc:
				i--
			case i < len(remaining) && sharesPrefix(loc, remaining[i], b.depth):
			default:
				s += b.weight
				d.Add(Attribute, loc, nil)
				continue
			}
			p += b.weight
			if remaining[i] != loc {
				d.Add(Attribute, loc, remaining[i])
			}
			remaining = append(remaining[:i], remaining[i+1:]...)
		}
	}
	for _, l := range remaining {
		d.Add(Attribute, nil, l)
	}
	return (n - p) + s
}

// ListSize is the count-model weight of a location list.
func ListSize(locs []domain.Location) int {
	n := 0
	for _, l := range locs {
		if l.Known() {
			n++
		}
	}
	return CostLocNone * n
}

type bucket struct {
	depth  int
	weight int
	locs   []domain.Location
}

func buckets(locs []domain.Location) []bucket {
	out := []bucket{
		{depth: 4, weight: CostLocNone},
		{depth: 3, weight: CostLocNone},
		{depth: 2, weight: CostLocPackage},
		{depth: 1, weight: CostLocFile},
	}
	for _, l := range locs {
		if dep := l.Depth(); dep > 0 {
			out[4-dep].locs = append(out[4-dep].locs, l)
		}
	}
	return out
}

func sharesPrefix(a, b domain.Location, depth int) bool {
	if a.Package != b.Package {
		return false
	}
	if depth >= 2 && a.File != b.File {
		return false
	}
	if depth >= 3 && a.Line != b.Line {
		return false
	}
	return depth < 4 || a.Column == b.Column
}

func forEachLine(p string, files map[string]map[int]bool, fn func(domain.Location)) {
	for _, f := range sortedKeys(files) {
		for _, n := range sortedLines(files[f]) {
			fn(domain.Location{Package: p, File: f, Line: n})
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedLines(m map[int]bool) []int {
	lines := make([]int, 0, len(m))
	for n := range m {
		lines = append(lines, n)
	}
	sort.Ints(lines)
	return lines
}
