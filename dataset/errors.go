package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSourceNotFound marks a missing source file. Fatal for the table;
// nothing depending on it renders.
var ErrSourceNotFound = errors.New("source file not found")

// ParseError reports a present but unreadable source (bad sheet index,
// malformed rows, unsupported structure).
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %s", e.Path, e.Reason)
}

// MissingColumnError reports that no column matches a required role,
// e.g. no "uk share" column in the summary table.
type MissingColumnError struct {
	Group string
	Kind  string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column: no %q column of kind %q", e.Group, e.Kind)
}

// AmbiguousColumnError reports more than one candidate column for a
// role. First-match resolution would silently pick one; we fail instead.
type AmbiguousColumnError struct {
	Group      string
	Kind       string
	Candidates []string
}

func (e *AmbiguousColumnError) Error() string {
	return fmt.Sprintf("ambiguous columns for %q %q: %s",
		e.Group, e.Kind, strings.Join(e.Candidates, ", "))
}

// UnknownCategoryError reports a category request that matched nothing,
// carrying every available category so the caller can surface them.
type UnknownCategoryError struct {
	Requested string
	Available []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q, available: %s",
		e.Requested, strings.Join(e.Available, ", "))
}
