package venn

import (
	"math/bits"
	"sort"
	"strings"
)

// Combination is a bitmask over set indices identifying a diagram region.
// Bit i is set when the region lies inside the i-th input set.
type Combination uint32

// Contains reports whether set index i belongs to the combination
func (c Combination) Contains(i int) bool {
	return c&(1<<uint(i)) != 0
}

// Size returns the number of sets in the combination
func (c Combination) Size() int {
	return bits.OnesCount32(uint32(c))
}

// Region is one cell of the Venn partition: the identifiers that belong to
// every set in the combination and to no other set.
type Region struct {
	Combination Combination
	Labels      []string
	Members     []string
}

// Count returns the number of identifiers in the region
func (r Region) Count() int {
	return len(r.Members)
}

// Options controls region computation.
type Options struct {
	MinSets        int
	MaxSets        int
	AllowEmptySets bool
}

// DefaultOptions returns the engine defaults: two to six sets, empty sets
// permitted.
func DefaultOptions() Options {
	return Options{
		MinSets:        2,
		MaxSets:        6,
		AllowEmptySets: true,
	}
}

// Result is the computed partition for one ordered sequence of named sets.
type Result struct {
	labels    []string
	regions   []Region
	byComb    map[Combination]int
	unionSize int
}

// ComputeRegions partitions the union of the input sets into the 2^N - 1
// possible regions. Every identifier lands in exactly one region: for each
// non-empty subset of set indices, taken in increasing popcount order, the
// region holds the intersection of the subset's sets minus the union of
// all the others. Empty regions are kept so callers see the full table.
func ComputeRegions(sets []NamedSet, opts Options) (*Result, error) {
	n := len(sets)
	if n < opts.MinSets {
		return nil, NewConfigurationError("sets", n, "fewer sets than the configured minimum")
	}
	if opts.MaxSets > 0 && n > opts.MaxSets {
		return nil, NewConfigurationError("sets", n, "more sets than the configured maximum")
	}

	labels := make([]string, n)
	for i, set := range sets {
		labels[i] = set.Label()
		if set.Len() == 0 && !opts.AllowEmptySets {
			return nil, NewDataError(set.Label(), "set is empty after normalization")
		}
	}

	// First-seen display spelling wins across sets.
	display := make(map[string]string)
	keysBySet := make([]map[string]struct{}, n)
	for i, set := range sets {
		keysBySet[i] = set.keys()
		for key, spelling := range set.display {
			if _, seen := display[key]; !seen {
				display[key] = spelling
			}
		}
	}

	result := &Result{
		labels:    labels,
		regions:   make([]Region, 0, (1<<uint(n))-1),
		byComb:    make(map[Combination]int, (1<<uint(n))-1),
		unionSize: len(display),
	}

	for _, comb := range combinationsByPopcount(n) {
		members := regionMembers(comb, keysBySet, display)
		region := Region{
			Combination: comb,
			Labels:      combinationLabels(comb, labels),
			Members:     members,
		}
		result.byComb[comb] = len(result.regions)
		result.regions = append(result.regions, region)
	}

	return result, nil
}

// regionMembers collects sorted display spellings of the identifiers in the
// intersection of the combination's sets minus the union of the rest.
func regionMembers(comb Combination, keysBySet []map[string]struct{}, display map[string]string) []string {
	var base map[string]struct{}
	for i, keys := range keysBySet {
		if comb.Contains(i) && (base == nil || len(keys) < len(base)) {
			base = keys
		}
	}

	members := make([]string, 0)
	for key := range base {
		keep := true
		for i, keys := range keysBySet {
			_, in := keys[key]
			if in != comb.Contains(i) {
				keep = false
				break
			}
		}
		if keep {
			members = append(members, display[key])
		}
	}
	sort.Strings(members)
	return members
}

// combinationsByPopcount lists all non-empty combinations of n sets ordered
// by subset size, then by mask value, giving a stable output ordering of
// singles, pairs and so on.
func combinationsByPopcount(n int) []Combination {
	combs := make([]Combination, 0, (1<<uint(n))-1)
	for mask := Combination(1); mask < 1<<uint(n); mask++ {
		combs = append(combs, mask)
	}
	sort.SliceStable(combs, func(i, j int) bool {
		if combs[i].Size() != combs[j].Size() {
			return combs[i].Size() < combs[j].Size()
		}
		return combs[i] < combs[j]
	})
	return combs
}

func combinationLabels(comb Combination, labels []string) []string {
	selected := make([]string, 0, comb.Size())
	for i, label := range labels {
		if comb.Contains(i) {
			selected = append(selected, label)
		}
	}
	return selected
}

// N returns the number of input sets
func (r *Result) N() int {
	return len(r.labels)
}

// Labels returns the set labels in input order
func (r *Result) Labels() []string {
	labels := make([]string, len(r.labels))
	copy(labels, r.labels)
	return labels
}

// Regions returns all regions in popcount order, empty regions included
func (r *Result) Regions() []Region {
	regions := make([]Region, len(r.regions))
	copy(regions, r.regions)
	return regions
}

// Region looks up a single region by its combination
func (r *Result) Region(comb Combination) (Region, bool) {
	idx, ok := r.byComb[comb]
	if !ok {
		return Region{}, false
	}
	return r.regions[idx], true
}

// UnionSize returns the number of distinct identifiers across all sets.
// It always equals the sum of all region counts.
func (r *Result) UnionSize() int {
	return r.unionSize
}

// CombinationTitle renders a human-readable region name: "Unique to X" for
// a single set, "Shared" for the full intersection, and the joined labels
// otherwise. These are the column headers of the exported results table.
func (r *Result) CombinationTitle(comb Combination) string {
	labels := combinationLabels(comb, r.labels)
	switch {
	case len(labels) == 1:
		return "Unique to " + labels[0]
	case len(labels) == len(r.labels):
		return "Shared"
	default:
		return strings.Join(labels, " ∩ ")
	}
}
