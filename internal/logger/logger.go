// Package logger provides the component-tagged logging interface used
// across the application, backed by zerolog.
package logger

// Logger is the logging surface handed to every component. The component
// name is carried as a structured field so diagram, workbook and GUI
// events can be filtered apart.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// NopLogger discards everything. Used in tests and headless dry runs.
type NopLogger struct{}

// NewNop creates a logger that drops all events
func NewNop() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(component, message string, fields map[string]interface{})   {}
func (n *NopLogger) Info(component, message string, fields map[string]interface{})    {}
func (n *NopLogger) Warning(component, message string, fields map[string]interface{}) {}
func (n *NopLogger) Error(component string, err error, fields map[string]interface{}) {}
