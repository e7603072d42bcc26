package venn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignLayoutTwoSets(t *testing.T) {
	spec, err := AssignLayout(2, LayoutExact)
	require.NoError(t, err)

	assert.Equal(t, 2, spec.N)
	assert.Equal(t, ShapeCircle, spec.Kind)
	assert.True(t, spec.Exact)
	require.Len(t, spec.Shapes, 2)

	left, right := spec.Shapes[0], spec.Shapes[1]
	assert.InDelta(t, -0.9, left.Center.X, 1e-9)
	assert.InDelta(t, 0.9, right.Center.X, 1e-9)
	assert.InDelta(t, 1.5, left.RadiusX, 1e-9)
	assert.Equal(t, left.RadiusX, left.RadiusY)

	// Cosmetic overlap: the circles intersect regardless of data.
	assert.Less(t, right.Center.X-left.Center.X, left.RadiusX+right.RadiusX)
}

func TestAssignLayoutThreeSets(t *testing.T) {
	spec, err := AssignLayout(3, LayoutReject)
	require.NoError(t, err, "policy only applies above three sets")

	require.Len(t, spec.Shapes, 3)
	assert.True(t, spec.Exact)

	// Symmetric: all centers equidistant from the centroid, 120° apart.
	distance := math.Hypot(spec.Shapes[0].Center.X, spec.Shapes[0].Center.Y)
	for _, shape := range spec.Shapes {
		assert.InDelta(t, distance, math.Hypot(shape.Center.X, shape.Center.Y), 1e-9)
		assert.Equal(t, spec.Shapes[0].RadiusX, shape.RadiusX)
	}

	triple, ok := spec.CountAnchors[0b111]
	require.True(t, ok)
	assert.InDelta(t, 0, triple.X, 1e-9)
	assert.InDelta(t, 0, triple.Y, 1e-9)
}

func TestAssignLayoutAnchorCompleteness(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6} {
		spec, err := AssignLayout(n, LayoutApproximate)
		require.NoError(t, err, "n=%d", n)

		assert.Len(t, spec.Shapes, n)
		assert.Len(t, spec.LabelDirs, n)
		assert.Len(t, spec.CountAnchors, (1<<uint(n))-1, "n=%d", n)
		for mask := Combination(1); mask < 1<<uint(n); mask++ {
			anchor, ok := spec.CountAnchors[mask]
			require.True(t, ok, "n=%d mask=%b", n, mask)
			assert.True(t, anchor.X >= spec.Bounds.XMin && anchor.X <= spec.Bounds.XMax)
			assert.True(t, anchor.Y >= spec.Bounds.YMin && anchor.Y <= spec.Bounds.YMax)
		}
	}
}

func TestAssignLayoutPolicy(t *testing.T) {
	_, err := AssignLayout(4, LayoutReject)
	require.Error(t, err)
	assert.True(t, IsUnsupportedLayout(err))

	_, err = AssignLayout(4, LayoutExact)
	require.Error(t, err)
	assert.True(t, IsUnsupportedLayout(err))

	spec, err := AssignLayout(4, LayoutApproximate)
	require.NoError(t, err)
	assert.Equal(t, ShapeEllipse, spec.Kind)
	assert.False(t, spec.Exact)

	_, err = AssignLayout(7, LayoutApproximate)
	require.Error(t, err)
	assert.True(t, IsUnsupportedLayout(err))

	_, err = AssignLayout(1, LayoutApproximate)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestParseLayoutPolicy(t *testing.T) {
	for _, name := range []string{"exact", "approximate", "reject"} {
		policy, err := ParseLayoutPolicy(name)
		require.NoError(t, err)
		assert.Equal(t, LayoutPolicy(name), policy)
	}

	_, err := ParseLayoutPolicy("proportional")
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestLayoutIsDataIndependent(t *testing.T) {
	first, err := AssignLayout(3, LayoutApproximate)
	require.NoError(t, err)
	second, err := AssignLayout(3, LayoutApproximate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
