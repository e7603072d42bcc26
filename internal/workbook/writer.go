package workbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
)

// RegionTable flattens a result into a rectangular table: one column per
// region in popcount order, member lists padded with blanks to equal
// length. This is the layout of the exported per-sheet CSV.
func RegionTable(result *venn.Result) (headers []string, rows [][]string) {
	regions := result.Regions()

	maxLen := 0
	for _, region := range regions {
		headers = append(headers, result.CombinationTitle(region.Combination))
		if region.Count() > maxLen {
			maxLen = region.Count()
		}
	}

	rows = make([][]string, maxLen)
	for i := range rows {
		row := make([]string, len(regions))
		for j, region := range regions {
			if i < region.Count() {
				row[j] = region.Members[i]
			}
		}
		rows[i] = row
	}

	return headers, rows
}

// WriteCSV writes the padded region table for one sheet
func WriteCSV(w io.Writer, result *venn.Result) error {
	headers, rows := RegionTable(result)

	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// CombinedWorkbook accumulates per-sheet results into one Excel file with
// a leading Summary sheet of (sheet, region, count) rows.
type CombinedWorkbook struct {
	file       *excelize.File
	summaryRow int
	usedNames  map[string]int
}

// NewCombinedWorkbook creates an empty combined results workbook
func NewCombinedWorkbook() (*CombinedWorkbook, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", "Summary"); err != nil {
		return nil, fmt.Errorf("failed to prepare summary sheet: %w", err)
	}

	cw := &CombinedWorkbook{
		file:       file,
		summaryRow: 1,
		usedNames:  map[string]int{"Summary": 1},
	}

	if err := cw.appendSummaryRow("Sheet", "Region", "Count"); err != nil {
		return nil, err
	}
	return cw, nil
}

// AddSheet writes one result as a worksheet and extends the summary.
// Sheet names are sanitized to Excel's 31-character limit and deduplicated.
func (cw *CombinedWorkbook) AddSheet(name string, result *venn.Result) error {
	sheetName := cw.claimSheetName(name)
	if _, err := cw.file.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
	}

	headers, rows := RegionTable(result)
	if err := cw.writeRow(sheetName, 1, headers); err != nil {
		return err
	}
	for i, row := range rows {
		if err := cw.writeRow(sheetName, i+2, row); err != nil {
			return err
		}
	}

	for _, region := range result.Regions() {
		title := result.CombinationTitle(region.Combination)
		if err := cw.appendSummaryRow(name, title, fmt.Sprintf("%d", region.Count())); err != nil {
			return err
		}
	}

	return nil
}

// SaveAs writes the combined workbook to disk
func (cw *CombinedWorkbook) SaveAs(path string) error {
	if err := cw.file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save combined workbook: %w", err)
	}
	return nil
}

// Close releases the underlying file resources
func (cw *CombinedWorkbook) Close() error {
	return cw.file.Close()
}

func (cw *CombinedWorkbook) writeRow(sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := cw.file.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func (cw *CombinedWorkbook) appendSummaryRow(values ...string) error {
	if err := cw.writeRow("Summary", cw.summaryRow, values); err != nil {
		return err
	}
	cw.summaryRow++
	return nil
}

// claimSheetName sanitizes a sheet name to Excel's constraints and makes
// it unique within the workbook.
func (cw *CombinedWorkbook) claimSheetName(name string) string {
	sanitized := sanitizeSheetName(name)
	if count, taken := cw.usedNames[sanitized]; taken {
		cw.usedNames[sanitized] = count + 1
		suffix := fmt.Sprintf("_%d", count+1)
		if len(sanitized)+len(suffix) > 31 {
			sanitized = sanitized[:31-len(suffix)]
		}
		sanitized += suffix
	}
	cw.usedNames[sanitized] = 1
	return sanitized
}

// sanitizeSheetName strips characters Excel forbids in sheet names and
// enforces the 31-character limit.
func sanitizeSheetName(name string) string {
	replacer := strings.NewReplacer(
		":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
	)
	sanitized := strings.TrimSpace(replacer.Replace(name))
	if sanitized == "" {
		sanitized = "Sheet"
	}
	if len(sanitized) > 31 {
		sanitized = sanitized[:31]
	}
	return sanitized
}
