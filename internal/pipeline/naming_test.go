package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "safe characters unchanged",
			input:    "Upregulated Genes-v2.final",
			expected: "Upregulated Genes-v2.final",
		},
		{
			name:     "path separators replaced",
			input:    "liver/kidney\\brain",
			expected: "liver_kidney_brain",
		},
		{
			name:     "consecutive unsafe characters collapse",
			input:    "a***b???c",
			expected: "a_b_c",
		},
		{
			name:     "long name capped",
			input:    strings.Repeat("x", 100),
			expected: strings.Repeat("x", 60),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBaseName(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	base := BaseName("Sheet1", []string{"Tumor", "Control"}, at)
	assert.Equal(t, "Sheet1__Tumor_vs_Control_20260314-092653", base)
}

func TestBaseNameSanitizesParts(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	base := BaseName("Liver/Kidney", []string{"Set:A", "Set:B", "Set:C"}, at)
	assert.Equal(t, "Liver_Kidney__Set_A_vs_Set_B_vs_Set_C_20260314-092653", base)
}

func TestTimestampLayout(t *testing.T) {
	at := time.Date(2026, 12, 31, 23, 59, 7, 0, time.UTC)
	assert.Equal(t, "20261231-235907", Timestamp(at))
}
