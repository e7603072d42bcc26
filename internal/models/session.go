// Package models holds the session-local state repositories. Everything
// here lives for one run of the application; nothing is persisted.
package models

import (
	"fmt"
	"sync"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/render"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/workbook"
)

// SessionRepository is the single mutable store behind the GUI: the loaded
// workbook, per-sheet editable labels, the current sheet cursor and the
// active diagram style. All access is mutex-guarded; the engine itself
// never sees this state, only immutable snapshots taken from it.
type SessionRepository struct {
	mu       sync.RWMutex
	workbook *workbook.Workbook
	headers  map[string][]string
	labels   map[string][]string
	index    int
	style    render.Style
	maxSets  int
}

// NewSessionRepository creates an empty session with the given style
// defaults and the configured ceiling on sets per diagram.
func NewSessionRepository(style render.Style, maxSets int) *SessionRepository {
	return &SessionRepository{
		headers: make(map[string][]string),
		labels:  make(map[string][]string),
		style:   style,
		maxSets: maxSets,
	}
}

// SetWorkbook installs a freshly loaded workbook, resetting the cursor and
// seeding every sheet's editable labels from its column headers.
func (sr *SessionRepository) SetWorkbook(wb *workbook.Workbook) {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	sr.workbook = wb
	sr.index = 0
	sr.headers = make(map[string][]string, len(wb.Sheets))
	sr.labels = make(map[string][]string, len(wb.Sheets))

	for _, sheet := range wb.Sheets {
		headers := sr.sheetHeaders(sheet)
		sr.headers[sheet.Name] = headers
		sr.labels[sheet.Name] = append([]string(nil), headers...)
	}
}

// sheetHeaders returns the headers of the columns a diagram will use:
// all of them, capped at the configured maximum set count.
func (sr *SessionRepository) sheetHeaders(sheet workbook.Sheet) []string {
	count := len(sheet.Columns)
	if sr.maxSets > 0 && count > sr.maxSets {
		count = sr.maxSets
	}
	headers := make([]string, count)
	for i := 0; i < count; i++ {
		headers[i] = sheet.Columns[i].Header
	}
	return headers
}

// HasData reports whether a workbook is loaded
func (sr *SessionRepository) HasData() bool {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	return sr.workbook != nil && len(sr.workbook.Sheets) > 0
}

// WorkbookPath returns the loaded workbook's path, empty when none
func (sr *SessionRepository) WorkbookPath() string {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	if sr.workbook == nil {
		return ""
	}
	return sr.workbook.Path
}

// Sheets returns the usable sheets of the loaded workbook
func (sr *SessionRepository) Sheets() []workbook.Sheet {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	if sr.workbook == nil {
		return nil
	}
	sheets := make([]workbook.Sheet, len(sr.workbook.Sheets))
	copy(sheets, sr.workbook.Sheets)
	return sheets
}

// CurrentSheet returns the sheet under the cursor
func (sr *SessionRepository) CurrentSheet() (workbook.Sheet, bool) {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	if sr.workbook == nil || len(sr.workbook.Sheets) == 0 {
		return workbook.Sheet{}, false
	}
	return sr.workbook.Sheets[sr.index], true
}

// Position describes the cursor as (index, total, name) for the header
// line of the GUI.
func (sr *SessionRepository) Position() (int, int, string) {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	if sr.workbook == nil || len(sr.workbook.Sheets) == 0 {
		return 0, 0, ""
	}
	return sr.index, len(sr.workbook.Sheets), sr.workbook.Sheets[sr.index].Name
}

// Next advances the cursor with wrap-around
func (sr *SessionRepository) Next() {
	sr.step(1)
}

// Prev moves the cursor back with wrap-around
func (sr *SessionRepository) Prev() {
	sr.step(-1)
}

func (sr *SessionRepository) step(delta int) {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if sr.workbook == nil || len(sr.workbook.Sheets) == 0 {
		return
	}
	count := len(sr.workbook.Sheets)
	sr.index = (sr.index + delta + count) % count
}

// Labels returns the editable labels for a sheet
func (sr *SessionRepository) Labels(sheetName string) []string {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	return append([]string(nil), sr.labels[sheetName]...)
}

// SetLabels replaces a sheet's editable labels. Blank entries fall back to
// the sheet's original headers, mirroring the original tool's behavior.
func (sr *SessionRepository) SetLabels(sheetName string, labels []string) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	headers, known := sr.headers[sheetName]
	if !known {
		return fmt.Errorf("unknown sheet %q", sheetName)
	}
	if len(labels) != len(headers) {
		return fmt.Errorf("sheet %q needs %d labels, got %d", sheetName, len(headers), len(labels))
	}

	cleaned := make([]string, len(labels))
	for i, label := range labels {
		if label == "" {
			label = headers[i]
		}
		cleaned[i] = label
	}
	sr.labels[sheetName] = cleaned
	return nil
}

// ResetLabels restores a sheet's labels to its column headers
func (sr *SessionRepository) ResetLabels(sheetName string) {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if headers, known := sr.headers[sheetName]; known {
		sr.labels[sheetName] = append([]string(nil), headers...)
	}
}

// Style returns the active diagram style
func (sr *SessionRepository) Style() render.Style {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	return sr.style
}

// SetStyle replaces the active diagram style
func (sr *SessionRepository) SetStyle(style render.Style) {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	sr.style = style
}

// Clear drops the loaded workbook and per-sheet state
func (sr *SessionRepository) Clear() {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	sr.workbook = nil
	sr.headers = make(map[string][]string)
	sr.labels = make(map[string][]string)
	sr.index = 0
}

// Shutdown releases session state
func (sr *SessionRepository) Shutdown() {
	sr.Clear()
}
