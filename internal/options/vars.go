package options

import "os"

// Environment variable names consulted during resolution. Where two names
// exist for one setting, the EZA_ one is current and the EXA_ one legacy.
const (
	EnvColumns      = "COLUMNS"
	EnvTimeStyle    = "TIME_STYLE"
	EzaGridRows     = "EZA_GRID_ROWS"
	ExaGridRows     = "EXA_GRID_ROWS"
	ExaOverrideGit  = "EXA_OVERRIDE_GIT"
	EzaOverrideGit  = "EZA_OVERRIDE_GIT"
	EzaMinLuminance = "EZA_MIN_LUMINANCE"
	ExaMinLuminance = "EXA_MIN_LUMINANCE"
	EzaIconSpacing  = "EZA_ICON_SPACING"
	ExaIconSpacing  = "EXA_ICON_SPACING"
	EzaStrict       = "EZA_STRICT"
	ExaStrict       = "EXA_STRICT"
)

// Vars is a read-only view of the environment.
type Vars interface {
	// Get returns the value of key and whether it is set.
	Get(key string) (string, bool)

	// GetWithFallback returns primary if set, otherwise secondary.
	GetWithFallback(primary, secondary string) (string, bool)

	// Source returns which of primary and secondary GetWithFallback would
	// read from, for error reporting.
	Source(primary, secondary string) (string, bool)
}

// LookupFunc adapts a lookup function such as os.LookupEnv to Vars.
type LookupFunc func(key string) (string, bool)

// OSVars reads the process environment.
var OSVars Vars = LookupFunc(os.LookupEnv)

func (f LookupFunc) Get(key string) (string, bool) {
	return f(key)
}

func (f LookupFunc) GetWithFallback(primary, secondary string) (string, bool) {
	if v, ok := f(primary); ok {
		return v, true
	}
	return f(secondary)
}

func (f LookupFunc) Source(primary, secondary string) (string, bool) {
	if _, ok := f(primary); ok {
		return primary, true
	}
	if _, ok := f(secondary); ok {
		return secondary, true
	}
	return "", false
}

// MapVars is an in-memory environment.
type MapVars map[string]string

func (m MapVars) lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapVars) Get(key string) (string, bool) {
	return LookupFunc(m.lookup).Get(key)
}

func (m MapVars) GetWithFallback(primary, secondary string) (string, bool) {
	return LookupFunc(m.lookup).GetWithFallback(primary, secondary)
}

func (m MapVars) Source(primary, secondary string) (string, bool) {
	return LookupFunc(m.lookup).Source(primary, secondary)
}
