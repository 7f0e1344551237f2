// Package view holds the resolved, immutable rendering configuration for a
// directory listing: which layout to use, which columns to show and how to
// format their values.
package view

// View is everything the printer needs to know about how to lay out a listing.
type View struct {
	Mode       Mode
	Width      TerminalWidth
	FileStyle  FileStyle
	DerefLinks bool
	TotalSize  bool
}

// Mode is one of GridMode, DetailsMode, GridDetailsMode or LinesMode.
type Mode interface {
	Name() string
	mode()
}

// GridMode lays names out in columns that fill the terminal width.
type GridMode struct {
	Grid GridOptions
}

// DetailsMode prints one entry per line with a table of metadata, or a tree.
type DetailsMode struct {
	Details DetailsOptions
}

// GridDetailsMode prints several details tables side by side once there are
// enough rows to make it worthwhile.
type GridDetailsMode struct {
	Details      DetailsOptions
	RowThreshold RowThreshold
}

// LinesMode prints one name per line.
type LinesMode struct{}

func (GridMode) Name() string        { return "grid" }
func (DetailsMode) Name() string     { return "details" }
func (GridDetailsMode) Name() string { return "grid-details" }
func (LinesMode) Name() string       { return "lines" }

func (GridMode) mode()        {}
func (DetailsMode) mode()     {}
func (GridDetailsMode) mode() {}
func (LinesMode) mode()       {}

// GridOptions configures the grid layout.
type GridOptions struct {
	// Across fills rows before columns.
	Across bool
}

// RowThreshold decides when a grid-details view falls back to a single table.
type RowThreshold struct {
	minimum bool
	rows    int
}

// AlwaysGrid uses the grid regardless of how many rows there are.
var AlwaysGrid = RowThreshold{}

// MinimumRows uses the grid only once the listing has at least n rows.
func MinimumRows(n int) RowThreshold {
	return RowThreshold{minimum: true, rows: n}
}

// Rows returns the threshold and whether one is set.
func (r RowThreshold) Rows() (int, bool) {
	return r.rows, r.minimum
}

// UseGrid reports whether a listing of n rows should be shown as a grid.
func (r RowThreshold) UseGrid(n int) bool {
	return !r.minimum || n >= r.rows
}

// TerminalWidth is either an explicit column count or Automatic.
type TerminalWidth struct {
	set  bool
	cols int
}

// Automatic asks the printer to use the detected terminal width.
var Automatic = TerminalWidth{}

// SetWidth fixes the width to n columns.
func SetWidth(n int) TerminalWidth {
	return TerminalWidth{set: true, cols: n}
}

// Columns returns the explicit width and whether one was set.
func (w TerminalWidth) Columns() (int, bool) {
	return w.cols, w.set
}

// Actual resolves the width against the detected terminal width, where
// detected is zero when output is not a terminal.
func (w TerminalWidth) Actual(detected int) (int, bool) {
	if w.set {
		return w.cols, true
	}
	if detected > 0 {
		return detected, true
	}
	return 0, false
}
