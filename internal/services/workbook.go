// Package services holds the application services sitting between the GUI
// layer and the engine.
package services

import (
	"context"
	"fmt"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/models"
	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/workbook"

	"fyne.io/fyne/v2"
)

const workbookComponent = "WorkbookService"

// WorkbookService loads workbooks and installs them in the session
type WorkbookService struct {
	reader  *workbook.Reader
	session *models.SessionRepository
	logger  logger.Logger
}

// NewWorkbookService creates a new workbook service
func NewWorkbookService(reader *workbook.Reader, session *models.SessionRepository, log logger.Logger) *WorkbookService {
	return &WorkbookService{
		reader:  reader,
		session: session,
		logger:  log,
	}
}

// LoadFromURI reads a workbook from a file dialog result and makes it the
// session's active workbook.
func (ws *WorkbookService) LoadFromURI(ctx context.Context, reader fyne.URIReadCloser) (*workbook.Workbook, error) {
	defer reader.Close()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path := reader.URI().Path()
	wb, err := ws.reader.Read(reader, path)
	if err != nil {
		return nil, fmt.Errorf("loading workbook: %w", err)
	}

	ws.session.SetWorkbook(wb)
	ws.logger.Info(workbookComponent, "workbook loaded", map[string]interface{}{
		"path":   path,
		"sheets": len(wb.Sheets),
	})
	return wb, nil
}

// LoadFromPath reads a workbook from disk and makes it the session's
// active workbook. Used by the batch command.
func (ws *WorkbookService) LoadFromPath(path string) (*workbook.Workbook, error) {
	wb, err := ws.reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading workbook: %w", err)
	}

	ws.session.SetWorkbook(wb)
	ws.logger.Info(workbookComponent, "workbook loaded", map[string]interface{}{
		"path":   path,
		"sheets": len(wb.Sheets),
	})
	return wb, nil
}

// Cleanup releases session state
func (ws *WorkbookService) Cleanup() {
	if ws.session != nil {
		ws.session.Shutdown()
	}
}
