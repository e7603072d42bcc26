package workbook

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
)

func twoSetResult(t *testing.T) *venn.Result {
	t.Helper()
	result, err := venn.ComputeRegions([]venn.NamedSet{
		venn.NewNamedSet("A", []string{"g1", "g2", "g3"}, false),
		venn.NewNamedSet("B", []string{"g2", "g3", "g4"}, false),
	}, venn.DefaultOptions())
	require.NoError(t, err)
	return result
}

func TestRegionTablePadding(t *testing.T) {
	headers, rows := RegionTable(twoSetResult(t))

	assert.Equal(t, []string{"Unique to A", "Unique to B", "Shared"}, headers)
	require.Len(t, rows, 2, "padded to the longest region")
	assert.Equal(t, []string{"g1", "g4", "g2"}, rows[0])
	assert.Equal(t, []string{"", "", "g3"}, rows[1])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, twoSetResult(t)))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"Unique to A", "Unique to B", "Shared"}, records[0])
	assert.Equal(t, []string{"g1", "g4", "g2"}, records[1])
	assert.Equal(t, []string{"", "", "g3"}, records[2])
}

func TestCombinedWorkbookRoundTrip(t *testing.T) {
	cw, err := NewCombinedWorkbook()
	require.NoError(t, err)

	result := twoSetResult(t)
	require.NoError(t, cw.AddSheet("Comparison 1", result))
	require.NoError(t, cw.AddSheet("Comparison 1", result), "duplicate names must not collide")

	path := filepath.Join(t.TempDir(), "combined.xlsx")
	require.NoError(t, cw.SaveAs(path))
	require.NoError(t, cw.Close())

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	names := file.GetSheetList()
	assert.Contains(t, names, "Summary")
	assert.Contains(t, names, "Comparison 1")
	assert.Contains(t, names, "Comparison 1_2")

	rows, err := file.GetRows("Comparison 1")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Unique to A", "Unique to B", "Shared"}, rows[0])

	summary, err := file.GetRows("Summary")
	require.NoError(t, err)
	require.NotEmpty(t, summary)
	assert.Equal(t, []string{"Sheet", "Region", "Count"}, summary[0])
	// Two result sheets, three regions each.
	assert.Len(t, summary, 7)
}

func TestSanitizeSheetName(t *testing.T) {
	assert.Equal(t, "a_b_c_d", sanitizeSheetName("a:b/c*d"))
	assert.Equal(t, "Sheet", sanitizeSheetName("   "))
	long := strings.Repeat("x", 40)
	assert.Len(t, sanitizeSheetName(long), 31)
}
