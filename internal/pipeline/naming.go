// Package pipeline turns loaded sheets into exported artifacts. It is
// shared by the GUI save actions and the headless batch command.
package pipeline

import (
	"regexp"
	"strings"
	"time"
)

const (
	maxFilenameLength = 60
	timestampLayout   = "20060102-150405"
)

var unsafeFilenameChars = regexp.MustCompile(`[^\w\-. ]+`)

// SanitizeFilename replaces characters unsafe for filenames with
// underscores and caps the result length.
func SanitizeFilename(name string) string {
	cleaned := unsafeFilenameChars.ReplaceAllString(name, "_")
	if len(cleaned) > maxFilenameLength {
		cleaned = cleaned[:maxFilenameLength]
	}
	return cleaned
}

// Timestamp formats a time for use in output filenames
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// BaseName builds the shared stem for a comparison's output files:
// the sheet name, the set labels joined by "_vs_", and a timestamp.
func BaseName(sheetName string, labels []string, t time.Time) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = SanitizeFilename(label)
	}
	stem := SanitizeFilename(sheetName) + "__" + strings.Join(parts, "_vs_")
	return stem + "_" + Timestamp(t)
}
