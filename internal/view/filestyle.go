package view

import (
	"strings"

	"github.com/michaelscutari/lsview/internal/entry"
	"github.com/michaelscutari/lsview/internal/pathutil"
)

// FileStyle controls how file names are printed.
type FileStyle struct {
	Classify        Classify
	ShowIcons       ShowIcons
	QuoteStyle      QuoteStyle
	EmbedHyperlinks bool
	Absolute        Absolute

	// IsATTY is true when output has a known width, so "auto" settings apply.
	IsATTY bool
}

// Classify decides whether names get a type indicator suffix.
type Classify uint8

const (
	JustFilenames Classify = iota
	AutomaticAddFileIndicators
	AddFileIndicators
)

func (c Classify) String() string {
	switch c {
	case AutomaticAddFileIndicators:
		return "auto"
	case AddFileIndicators:
		return "always"
	default:
		return "never"
	}
}

// When is a never/auto/always switch.
type When uint8

const (
	Never When = iota
	Auto
	Always
)

func (w When) String() string {
	switch w {
	case Auto:
		return "auto"
	case Always:
		return "always"
	default:
		return "never"
	}
}

// ShowIcons decides whether names are prefixed with an icon.
type ShowIcons struct {
	When When
	// Spacing is the number of spaces between icon and name.
	Spacing int
}

// QuoteStyle decides whether names containing spaces are quoted.
type QuoteStyle uint8

const (
	QuoteSpaces QuoteStyle = iota
	NoQuotes
)

// Absolute decides whether names are printed as absolute paths.
type Absolute uint8

const (
	AbsoluteOff Absolute = iota
	AbsoluteOn
	// AbsoluteFollow also resolves symlinks; the printer does the resolving.
	AbsoluteFollow
)

func (a Absolute) String() string {
	switch a {
	case AbsoluteOn:
		return "on"
	case AbsoluteFollow:
		return "follow"
	default:
		return "off"
	}
}

// Indicator returns the suffix to print after a name of the given kind.
func (s FileStyle) Indicator(kind entry.Kind, executable bool) string {
	switch s.Classify {
	case AddFileIndicators:
		return entry.Indicator(kind, executable)
	case AutomaticAddFileIndicators:
		if s.IsATTY {
			return entry.Indicator(kind, executable)
		}
	}
	return ""
}

// Icons reports whether icons should be drawn.
func (s FileStyle) Icons() bool {
	switch s.ShowIcons.When {
	case Always:
		return true
	case Auto:
		return s.IsATTY
	}
	return false
}

// Name returns the printable form of path relative to cwd.
func (s FileStyle) Name(path, cwd string) string {
	if s.Absolute != AbsoluteOff {
		path = pathutil.Absolute(path, cwd)
	}
	if s.QuoteStyle == QuoteSpaces && strings.ContainsAny(path, " \t") {
		return "'" + path + "'"
	}
	return path
}
