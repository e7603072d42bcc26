// Package workbook reads gene-list workbooks and writes the overlap
// results back out as CSV files and combined Excel workbooks.
package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/venn"
)

// Column is one labeled column of identifiers from a sheet.
type Column struct {
	Header string
	Values []string
}

// Sheet is one usable worksheet: at least two populated columns, first row
// treated as headers.
type Sheet struct {
	Name    string
	Columns []Column
}

// Workbook is the parsed input file, reduced to its usable sheets in
// workbook order.
type Workbook struct {
	Path   string
	Sheets []Sheet
}

// SheetNames lists the usable sheet names in order
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.Sheets))
	for i, sheet := range wb.Sheets {
		names[i] = sheet.Name
	}
	return names
}

// Sheet looks up a sheet by name
func (wb *Workbook) Sheet(name string) (Sheet, bool) {
	for _, sheet := range wb.Sheets {
		if sheet.Name == name {
			return sheet, true
		}
	}
	return Sheet{}, false
}

// Reader loads xlsx workbooks.
type Reader struct {
	logger logger.Logger
}

// NewReader creates a workbook reader
func NewReader(log logger.Logger) *Reader {
	return &Reader{logger: log}
}

// Open reads a workbook from disk, keeping only sheets with at least two
// columns. Errors with a DataError when nothing usable remains.
func (r *Reader) Open(path string) (*Workbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer file.Close()

	return r.parse(file, path)
}

// Read parses a workbook from a stream. The name is carried for logging
// and output-path derivation only.
func (r *Reader) Read(src io.Reader, name string) (*Workbook, error) {
	file, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook %s: %w", name, err)
	}
	defer file.Close()

	return r.parse(file, name)
}

func (r *Reader) parse(file *excelize.File, path string) (*Workbook, error) {
	workbook := &Workbook{Path: path}

	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}

		sheet, usable := parseSheet(name, rows)
		if !usable {
			r.logger.Debug("WorkbookReader", "skipping sheet without two columns", map[string]interface{}{
				"sheet": name,
			})
			continue
		}
		workbook.Sheets = append(workbook.Sheets, sheet)
	}

	if len(workbook.Sheets) == 0 {
		return nil, venn.NewDataError("", "no sheets with at least two columns found")
	}

	r.logger.Info("WorkbookReader", "workbook loaded", map[string]interface{}{
		"path":   path,
		"sheets": len(workbook.Sheets),
	})

	return workbook, nil
}

// parseSheet turns the raw row grid into labeled columns. The first row
// supplies headers; blank headers get positional names. Cells are trimmed
// and blanks dropped. Rows may be ragged.
func parseSheet(name string, rows [][]string) (Sheet, bool) {
	if len(rows) == 0 {
		return Sheet{}, false
	}

	columnCount := 0
	for _, row := range rows {
		if len(row) > columnCount {
			columnCount = len(row)
		}
	}
	if columnCount < 2 {
		return Sheet{}, false
	}

	sheet := Sheet{Name: name, Columns: make([]Column, columnCount)}
	for j := 0; j < columnCount; j++ {
		header := ""
		if j < len(rows[0]) {
			header = strings.TrimSpace(rows[0][j])
		}
		if header == "" {
			header = fmt.Sprintf("Column %d", j+1)
		}
		sheet.Columns[j] = Column{Header: header}
	}

	for _, row := range rows[1:] {
		for j, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			sheet.Columns[j].Values = append(sheet.Columns[j].Values, cell)
		}
	}

	return sheet, true
}
