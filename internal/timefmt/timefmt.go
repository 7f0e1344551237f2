// Package timefmt describes how timestamp columns are rendered.
package timefmt

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
)

// Style selects one of the built-in timestamp styles.
type Style uint8

const (
	StyleDefault Style = iota
	StyleRelative
	StyleISO
	StyleLongISO
	StyleFullISO
	StyleCustom
)

func (s Style) String() string {
	switch s {
	case StyleRelative:
		return "relative"
	case StyleISO:
		return "iso"
	case StyleLongISO:
		return "long-iso"
	case StyleFullISO:
		return "full-iso"
	case StyleCustom:
		return "custom"
	default:
		return "default"
	}
}

// Strftime layouts for the built-in styles.
const (
	defaultRecent    = "%e %b %H:%M"
	defaultNonRecent = "%e %b  %Y"
	isoRecent        = "%m-%d %H:%M"
	isoNonRecent     = "%Y-%m-%d"
	longISO          = "%Y-%m-%d %H:%M"
	fullISO          = "%Y-%m-%d %H:%M:%S.%f %z"
)

// RecentWindow is how far in the past a timestamp may be and still use the
// recent layout.
const RecentWindow = 182 * 24 * time.Hour

// TimeFormat is a resolved timestamp style. NonRecent and Recent are only
// used by StyleCustom; an empty Recent means the non-recent layout is used
// for every timestamp.
type TimeFormat struct {
	Style     Style
	NonRecent string
	Recent    string
}

var (
	Default  = TimeFormat{Style: StyleDefault}
	Relative = TimeFormat{Style: StyleRelative}
	ISO      = TimeFormat{Style: StyleISO}
	LongISO  = TimeFormat{Style: StyleLongISO}
	FullISO  = TimeFormat{Style: StyleFullISO}
)

// Custom returns a user-supplied strftime format.
func Custom(nonRecent, recent string) TimeFormat {
	return TimeFormat{Style: StyleCustom, NonRecent: nonRecent, Recent: recent}
}

// HasRecent reports whether a custom format carries a separate recent layout.
func (f TimeFormat) HasRecent() bool {
	return f.Style == StyleCustom && f.Recent != ""
}

// IsRecent reports whether t falls within RecentWindow before now.
func IsRecent(t, now time.Time) bool {
	if t.After(now) {
		return false
	}
	return now.Sub(t) < RecentWindow
}

// Format renders t relative to now.
func (f TimeFormat) Format(t, now time.Time) string {
	recent := IsRecent(t, now)

	switch f.Style {
	case StyleRelative:
		return humanize.RelTime(t, now, "ago", "from now")
	case StyleISO:
		if recent {
			return strftime.Format(isoRecent, t)
		}
		return strftime.Format(isoNonRecent, t)
	case StyleLongISO:
		return strftime.Format(longISO, t)
	case StyleFullISO:
		return strftime.Format(fullISO, t)
	case StyleCustom:
		if recent && f.Recent != "" {
			return strftime.Format(f.Recent, t)
		}
		return strftime.Format(f.NonRecent, t)
	default:
		if recent {
			return strftime.Format(defaultRecent, t)
		}
		return strftime.Format(defaultNonRecent, t)
	}
}
