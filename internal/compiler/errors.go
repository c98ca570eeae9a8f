package compiler

import (
	"fmt"
	"strings"
)

// Position represents a template source location for diagnostics.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Warning is a non-fatal diagnostic recorded while scanning a template.
// Warnings never change what the parser produces.
type Warning struct {
	Pos     Position
	Message string
}

// Error implements the error interface.
func (w *Warning) Error() string {
	var sb strings.Builder
	sb.WriteString(w.Pos.String())
	sb.WriteString(": warning: ")
	sb.WriteString(w.Message)
	return sb.String()
}

// WarningList collects warnings in the order they were found.
type WarningList struct {
	warnings []*Warning
}

// NewWarningList creates an empty warning list.
func NewWarningList() *WarningList {
	return &WarningList{}
}

// Addf creates and adds a warning with a formatted message.
func (wl *WarningList) Addf(pos Position, format string, args ...any) {
	wl.warnings = append(wl.warnings, &Warning{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Len returns the number of warnings.
func (wl *WarningList) Len() int {
	return len(wl.warnings)
}

// truncate drops warnings recorded after the first n.
func (wl *WarningList) truncate(n int) {
	if n < len(wl.warnings) {
		wl.warnings = wl.warnings[:n]
	}
}

// Warnings returns a copy of the warning slice.
func (wl *WarningList) Warnings() []*Warning {
	result := make([]*Warning, len(wl.warnings))
	copy(result, wl.warnings)
	return result
}

// Error implements the error interface, returning all warnings joined by newlines.
func (wl *WarningList) Error() string {
	var sb strings.Builder
	for i, w := range wl.warnings {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(w.Error())
	}
	return sb.String()
}

// Err returns nil if there are no warnings, otherwise the list itself.
func (wl *WarningList) Err() error {
	if len(wl.warnings) == 0 {
		return nil
	}
	return wl
}
