package venn

import (
	"errors"
	"fmt"
)

// ConfigurationError reports an option value the engine cannot work with,
// such as a set count outside the configured range.
type ConfigurationError struct {
	Field   string
	Value   interface{}
	Message string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field string, value interface{}, message string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Message: message}
}

// Error returns the error message
func (ce *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration '%s' = '%v': %s", ce.Field, ce.Value, ce.Message)
}

// DataError reports malformed input data, such as an empty named set when
// the policy requires non-empty sets.
type DataError struct {
	Label   string
	Message string
}

// NewDataError creates a new data error
func NewDataError(label, message string) *DataError {
	return &DataError{Label: label, Message: message}
}

// Error returns the error message
func (de *DataError) Error() string {
	if de.Label == "" {
		return fmt.Sprintf("bad input data: %s", de.Message)
	}
	return fmt.Sprintf("bad input data in set %q: %s", de.Label, de.Message)
}

// UnsupportedLayoutError reports a set count that has no diagram template
// under the active layout policy.
type UnsupportedLayoutError struct {
	N      int
	Policy LayoutPolicy
}

// Error returns the error message
func (ue *UnsupportedLayoutError) Error() string {
	return fmt.Sprintf("no %s layout available for %d sets", ue.Policy, ue.N)
}

// IsConfigurationError reports whether err is a ConfigurationError
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsDataError reports whether err is a DataError
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}

// IsUnsupportedLayout reports whether err is an UnsupportedLayoutError
func IsUnsupportedLayout(err error) bool {
	var ue *UnsupportedLayoutError
	return errors.As(err, &ue)
}
