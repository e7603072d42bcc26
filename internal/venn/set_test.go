package venn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNamedSetNormalization(t *testing.T) {
	set := NewNamedSet(" Upregulated ", []string{" g1", "g2 ", "", "  ", "g1", "G1"}, false)

	assert.Equal(t, "Upregulated", set.Label())
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"g1", "g2"}, set.Identifiers())
	assert.True(t, set.Contains("G1"))
	assert.True(t, set.Contains(" g2 "))
	assert.False(t, set.Contains("g3"))
}

func TestNewNamedSetCaseSensitive(t *testing.T) {
	set := NewNamedSet("A", []string{"g1", "G1"}, true)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("g1"))
	assert.True(t, set.Contains("G1"))
	assert.False(t, set.Contains("g2"))
}

func TestNewNamedSetEmpty(t *testing.T) {
	set := NewNamedSet("A", nil, false)

	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Identifiers())
}
