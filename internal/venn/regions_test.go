package venn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedSets(caseSensitive bool, sets ...[]string) []NamedSet {
	labels := []string{"A", "B", "C", "D", "E", "F"}
	out := make([]NamedSet, len(sets))
	for i, ids := range sets {
		out[i] = NewNamedSet(labels[i], ids, caseSensitive)
	}
	return out
}

func TestComputeRegionsTwoSets(t *testing.T) {
	sets := namedSets(false,
		[]string{"g1", "g2", "g3"},
		[]string{"g2", "g3", "g4"},
	)

	result, err := ComputeRegions(sets, DefaultOptions())
	require.NoError(t, err)

	onlyA, ok := result.Region(0b01)
	require.True(t, ok)
	assert.Equal(t, []string{"g1"}, onlyA.Members)

	onlyB, ok := result.Region(0b10)
	require.True(t, ok)
	assert.Equal(t, []string{"g4"}, onlyB.Members)

	shared, ok := result.Region(0b11)
	require.True(t, ok)
	assert.Equal(t, []string{"g2", "g3"}, shared.Members)

	assert.Equal(t, 4, result.UnionSize())
	assert.Equal(t, []string{"A", "B"}, result.Labels())
}

func TestComputeRegionsTripleIdentical(t *testing.T) {
	sets := namedSets(false,
		[]string{"g1"},
		[]string{"g1"},
		[]string{"g1"},
	)

	result, err := ComputeRegions(sets, DefaultOptions())
	require.NoError(t, err)

	for _, region := range result.Regions() {
		if region.Combination == 0b111 {
			assert.Equal(t, []string{"g1"}, region.Members)
		} else {
			assert.Empty(t, region.Members, "combination %b should be empty", region.Combination)
		}
	}
	assert.Equal(t, 1, result.UnionSize())
}

func TestComputeRegionsEmptySet(t *testing.T) {
	sets := namedSets(false, nil, []string{"g1"})

	result, err := ComputeRegions(sets, DefaultOptions())
	require.NoError(t, err)

	onlyA, _ := result.Region(0b01)
	assert.Empty(t, onlyA.Members)
	onlyB, _ := result.Region(0b10)
	assert.Equal(t, []string{"g1"}, onlyB.Members)
}

func TestComputeRegionsEmptySetRejected(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowEmptySets = false

	sets := namedSets(false, nil, []string{"g1"})
	_, err := ComputeRegions(sets, opts)

	require.Error(t, err)
	assert.True(t, IsDataError(err))
}

func TestComputeRegionsSetCountBounds(t *testing.T) {
	opts := DefaultOptions()

	_, err := ComputeRegions(namedSets(false, []string{"g1"}), opts)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	opts.MaxSets = 3
	_, err = ComputeRegions(namedSets(false,
		[]string{"a"}, []string{"b"}, []string{"c"}, []string{"d"},
	), opts)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

// Every identifier must land in exactly one region and the counts must sum
// to the union size.
func TestComputeRegionsPartition(t *testing.T) {
	sets := namedSets(false,
		[]string{"g1", "g2", "g3", "g4", "g5"},
		[]string{"g3", "g4", "g5", "g6"},
		[]string{"g1", "g5", "g6", "g7", "g8"},
	)

	result, err := ComputeRegions(sets, DefaultOptions())
	require.NoError(t, err)

	seen := make(map[string]int)
	total := 0
	for _, region := range result.Regions() {
		total += region.Count()
		for _, member := range region.Members {
			seen[member]++
		}
	}

	assert.Equal(t, result.UnionSize(), total)
	assert.Len(t, seen, result.UnionSize())
	for member, occurrences := range seen {
		assert.Equal(t, 1, occurrences, "identifier %s appears in more than one region", member)
	}
}

// Reordering the inputs must relabel regions without changing their
// membership.
func TestComputeRegionsPermutationEquivariance(t *testing.T) {
	first := []string{"g1", "g2", "g3"}
	second := []string{"g2", "g4"}

	forward, err := ComputeRegions([]NamedSet{
		NewNamedSet("A", first, false),
		NewNamedSet("B", second, false),
	}, DefaultOptions())
	require.NoError(t, err)

	reversed, err := ComputeRegions([]NamedSet{
		NewNamedSet("B", second, false),
		NewNamedSet("A", first, false),
	}, DefaultOptions())
	require.NoError(t, err)

	onlyAForward, _ := forward.Region(0b01)
	onlyAReversed, _ := reversed.Region(0b10)
	assert.Equal(t, onlyAForward.Members, onlyAReversed.Members)

	sharedForward, _ := forward.Region(0b11)
	sharedReversed, _ := reversed.Region(0b11)
	assert.Equal(t, sharedForward.Members, sharedReversed.Members)
}

func TestComputeRegionsIdempotent(t *testing.T) {
	sets := namedSets(false,
		[]string{"g1", "g2"},
		[]string{"g2", "g3"},
	)

	first, err := ComputeRegions(sets, DefaultOptions())
	require.NoError(t, err)
	second, err := ComputeRegions(sets, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first.Regions(), second.Regions())
}

func TestComputeRegionsCaseFolding(t *testing.T) {
	sets := []NamedSet{
		NewNamedSet("A", []string{"Brca1", "tp53"}, false),
		NewNamedSet("B", []string{"BRCA1"}, false),
	}

	result, err := ComputeRegions(sets, DefaultOptions())
	require.NoError(t, err)

	shared, _ := result.Region(0b11)
	// First-seen spelling wins.
	assert.Equal(t, []string{"Brca1"}, shared.Members)
	assert.Equal(t, 2, result.UnionSize())
}

func TestRegionOrderingByPopcount(t *testing.T) {
	sets := namedSets(false, []string{"a"}, []string{"b"}, []string{"c"})

	result, err := ComputeRegions(sets, DefaultOptions())
	require.NoError(t, err)

	regions := result.Regions()
	require.Len(t, regions, 7)
	previous := 0
	for _, region := range regions {
		assert.GreaterOrEqual(t, region.Combination.Size(), previous)
		previous = region.Combination.Size()
	}
	assert.Equal(t, Combination(0b111), regions[6].Combination)
}

func TestCombinationTitle(t *testing.T) {
	sets := namedSets(false, []string{"a"}, []string{"b"}, []string{"c"})
	result, err := ComputeRegions(sets, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "Unique to A", result.CombinationTitle(0b001))
	assert.Equal(t, "A ∩ C", result.CombinationTitle(0b101))
	assert.Equal(t, "Shared", result.CombinationTitle(0b111))
}
