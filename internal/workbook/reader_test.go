package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
)

// writeFixture builds an xlsx file with the given sheets, each a row grid.
func writeFixture(t *testing.T, sheets map[string][][]string) string {
	t.Helper()

	file := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, file.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := file.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			values := make([]interface{}, len(row))
			for j, v := range row {
				values[j] = v
			}
			require.NoError(t, file.SetSheetRow(name, cell, &values))
		}
	}

	path := filepath.Join(t.TempDir(), "genes.xlsx")
	require.NoError(t, file.SaveAs(path))
	require.NoError(t, file.Close())
	return path
}

func TestReaderOpen(t *testing.T) {
	path := writeFixture(t, map[string][][]string{
		"Comparison": {
			{"Treated", "Control"},
			{"g1", "g2"},
			{"g2", "g3"},
			{" g4 ", ""},
		},
	})

	wb, err := NewReader(logger.NewNop()).Open(path)
	require.NoError(t, err)

	require.Len(t, wb.Sheets, 1)
	sheet := wb.Sheets[0]
	assert.Equal(t, "Comparison", sheet.Name)
	require.Len(t, sheet.Columns, 2)
	assert.Equal(t, "Treated", sheet.Columns[0].Header)
	assert.Equal(t, []string{"g1", "g2", "g4"}, sheet.Columns[0].Values)
	assert.Equal(t, "Control", sheet.Columns[1].Header)
	assert.Equal(t, []string{"g2", "g3"}, sheet.Columns[1].Values)
}

func TestReaderSkipsNarrowSheets(t *testing.T) {
	path := writeFixture(t, map[string][][]string{
		"Usable": {
			{"A", "B"},
			{"g1", "g2"},
		},
		"TooNarrow": {
			{"Lonely"},
			{"g1"},
		},
	})

	wb, err := NewReader(logger.NewNop()).Open(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Usable"}, wb.SheetNames())
	_, ok := wb.Sheet("TooNarrow")
	assert.False(t, ok)
}

func TestReaderNoUsableSheets(t *testing.T) {
	path := writeFixture(t, map[string][][]string{
		"Narrow": {
			{"Only"},
			{"g1"},
		},
	})

	_, err := NewReader(logger.NewNop()).Open(path)
	require.Error(t, err)
	assert.True(t, venn.IsDataError(err))
}

func TestReaderBlankHeaders(t *testing.T) {
	path := writeFixture(t, map[string][][]string{
		"Data": {
			{"", "Control", ""},
			{"g1", "g2", "g3"},
		},
	})

	wb, err := NewReader(logger.NewNop()).Open(path)
	require.NoError(t, err)

	sheet := wb.Sheets[0]
	require.Len(t, sheet.Columns, 3)
	assert.Equal(t, "Column 1", sheet.Columns[0].Header)
	assert.Equal(t, "Control", sheet.Columns[1].Header)
	assert.Equal(t, "Column 3", sheet.Columns[2].Header)
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(logger.NewNop()).Open(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}
