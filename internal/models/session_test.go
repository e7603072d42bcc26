package models

import (
	"testing"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/render"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/workbook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkbook() *workbook.Workbook {
	return &workbook.Workbook{
		Path: "/data/study.xlsx",
		Sheets: []workbook.Sheet{
			{
				Name: "Liver",
				Columns: []workbook.Column{
					{Header: "Tumor", Values: []string{"TP53"}},
					{Header: "Control", Values: []string{"BRCA1"}},
				},
			},
			{
				Name: "Kidney",
				Columns: []workbook.Column{
					{Header: "A", Values: []string{"KRAS"}},
					{Header: "B", Values: []string{"EGFR"}},
					{Header: "C", Values: []string{"MYC"}},
				},
			},
		},
	}
}

func newTestSession() *SessionRepository {
	return NewSessionRepository(render.Style{}, 6)
}

func TestSessionSeedsLabelsFromHeaders(t *testing.T) {
	session := newTestSession()
	session.SetWorkbook(testWorkbook())

	assert.True(t, session.HasData())
	assert.Equal(t, "/data/study.xlsx", session.WorkbookPath())
	assert.Equal(t, []string{"Tumor", "Control"}, session.Labels("Liver"))
	assert.Equal(t, []string{"A", "B", "C"}, session.Labels("Kidney"))
}

func TestSessionCursorWrapsAround(t *testing.T) {
	session := newTestSession()
	session.SetWorkbook(testWorkbook())

	index, total, name := session.Position()
	assert.Equal(t, 0, index)
	assert.Equal(t, 2, total)
	assert.Equal(t, "Liver", name)

	session.Next()
	_, _, name = session.Position()
	assert.Equal(t, "Kidney", name)

	session.Next()
	_, _, name = session.Position()
	assert.Equal(t, "Liver", name)

	session.Prev()
	_, _, name = session.Position()
	assert.Equal(t, "Kidney", name)
}

func TestSessionLabelEdits(t *testing.T) {
	session := newTestSession()
	session.SetWorkbook(testWorkbook())

	require.NoError(t, session.SetLabels("Liver", []string{"Up", ""}))
	// blank entries fall back to the column header
	assert.Equal(t, []string{"Up", "Control"}, session.Labels("Liver"))

	session.ResetLabels("Liver")
	assert.Equal(t, []string{"Tumor", "Control"}, session.Labels("Liver"))
}

func TestSessionLabelEditsRejectBadShape(t *testing.T) {
	session := newTestSession()
	session.SetWorkbook(testWorkbook())

	assert.Error(t, session.SetLabels("Liver", []string{"only one"}))
	assert.Error(t, session.SetLabels("NoSuchSheet", []string{"A", "B"}))
}

func TestSessionCapsLabelsAtMaxSets(t *testing.T) {
	session := NewSessionRepository(render.Style{}, 2)
	session.SetWorkbook(testWorkbook())

	assert.Equal(t, []string{"A", "B"}, session.Labels("Kidney"))
}

func TestSessionClear(t *testing.T) {
	session := newTestSession()
	session.SetWorkbook(testWorkbook())
	session.Clear()

	assert.False(t, session.HasData())
	_, ok := session.CurrentSheet()
	assert.False(t, ok)
	assert.Empty(t, session.Labels("Liver"))
}
