package vdj

import "fmt"

// FormatError reports malformed input: a required column missing from a
// table's header, or a duplicated join key in the clonotype summary.
// Proceeding past one of these would mis-annotate cells, so callers treat it
// as fatal.
type FormatError struct {
	Path   string
	Column string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
	}

	return fmt.Sprintf("%s: column %q: %s", e.Path, e.Column, e.Reason)
}
