// Package extract finds colors used by style sheets, markup and images.
package extract

import (
	"cmp"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"colorkit/colors"
	"colorkit/common"
)

// Finding is a single color found in a source.
type Finding struct {
	Source  string
	Kind    common.SourceKind
	Context string // where in the source color was found
	Raw     string // color as written in the source
	Color   colors.Color
}

// Result accumulates findings for all processed sources.
type Result struct {
	Findings []Finding
	Warnings []string
	Sources  int
}

// Count is a summary entry for a single color.
type Count struct {
	Color   colors.Color
	Count   int
	Sources []string
}

// Summary aggregates findings by color, dropping colors seen less than
// minCount times. Most used colors come first.
func (r *Result) Summary(minCount int) []Count {
	idx := make(map[colors.Color]int)
	seen := make(map[colors.Color]map[string]struct{})

	var res []Count
	for _, f := range r.Findings {
		i, ok := idx[f.Color]
		if !ok {
			i = len(res)
			idx[f.Color] = i
			res = append(res, Count{Color: f.Color})
			seen[f.Color] = make(map[string]struct{})
		}
		res[i].Count++
		if _, ok := seen[f.Color][f.Source]; !ok {
			seen[f.Color][f.Source] = struct{}{}
			res[i].Sources = append(res[i].Sources, f.Source)
		}
	}

	res = slices.DeleteFunc(res, func(c Count) bool { return c.Count < minCount })
	for i := range res {
		sort.Sort(natural.StringSlice(res[i].Sources))
	}
	slices.SortStableFunc(res, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Color.String(), b.Color.String())
	})
	return res
}
