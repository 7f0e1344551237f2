package options

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an OptionsError.
type ErrorKind uint8

const (
	// KindUseless: a flag has no effect given (or without) another flag.
	KindUseless ErrorKind = iota
	// KindUseless2: a flag has no effect without one of two other flags.
	KindUseless2
	// KindBadArgument: an option's value is not one it understands.
	KindBadArgument
	// KindFailedParse: a number could not be parsed.
	KindFailedParse
	// KindEmptyTimeFormat: a custom time style has an empty line.
	KindEmptyTimeFormat
)

func (k ErrorKind) String() string {
	switch k {
	case KindUseless:
		return "useless"
	case KindUseless2:
		return "useless2"
	case KindBadArgument:
		return "bad-argument"
	case KindFailedParse:
		return "failed-parse"
	case KindEmptyTimeFormat:
		return "empty-time-format"
	default:
		return "unknown"
	}
}

// NumberSource says where an unparsable number came from.
type NumberSource struct {
	// Env is true for an environment variable, false for a flag.
	Env  bool
	Name string
}

// FlagSource is a number given as the argument to --name.
func FlagSource(name string) NumberSource {
	return NumberSource{Name: name}
}

// EnvSource is a number read from the environment variable key.
func EnvSource(key string) NumberSource {
	return NumberSource{Env: true, Name: key}
}

func (s NumberSource) String() string {
	if s.Env {
		return "environment variable " + s.Name
	}
	return "option --" + s.Name
}

// OptionsError is returned when the flags and environment cannot be turned
// into a consistent view.
type OptionsError struct {
	Kind ErrorKind

	// Option is the flag (or option) at fault.
	Option string

	// Context is the flag that makes Option useless. For KindUseless2 it
	// and Alternative are the two flags Option needs.
	Context     string
	Alternative string

	// ImpliesLong distinguishes "useless given --Context" (true) from
	// "useless without --Context" (false).
	ImpliesLong bool

	// Value is the offending raw value.
	Value string

	Source NumberSource
	Cause  error
}

func (e *OptionsError) Error() string {
	switch e.Kind {
	case KindUseless:
		if e.ImpliesLong {
			return fmt.Sprintf("option --%s is useless given option --%s", e.Option, e.Context)
		}
		return fmt.Sprintf("option --%s is useless without option --%s", e.Option, e.Context)
	case KindUseless2:
		return fmt.Sprintf("option --%s is useless without options --%s or --%s", e.Option, e.Context, e.Alternative)
	case KindBadArgument:
		return fmt.Sprintf("option --%s has no %q setting", e.Option, e.Value)
	case KindFailedParse:
		return fmt.Sprintf("value %q not valid for %s: %v", e.Value, e.Source, e.Cause)
	case KindEmptyTimeFormat:
		return fmt.Sprintf("custom timestamp format for %s files is empty: supply a strftime format %s",
			e.Context, e.Value)
	default:
		return "invalid options"
	}
}

func (e *OptionsError) Unwrap() error {
	return e.Cause
}

// Useless reports a flag that does nothing in this context.
func Useless(option string, impliesLong bool, context string) *OptionsError {
	return &OptionsError{Kind: KindUseless, Option: option, ImpliesLong: impliesLong, Context: context}
}

// Useless2 reports a flag that needs one of two other flags.
func Useless2(option, first, second string) *OptionsError {
	return &OptionsError{Kind: KindUseless2, Option: option, Context: first, Alternative: second}
}

// BadArgument reports a value outside an option's vocabulary.
func BadArgument(option, value string) *OptionsError {
	return &OptionsError{Kind: KindBadArgument, Option: option, Value: value}
}

// FailedParse reports a number that did not parse.
func FailedParse(value string, source NumberSource, cause error) *OptionsError {
	return &OptionsError{Kind: KindFailedParse, Value: value, Source: source, Cause: cause}
}

func emptyNonRecentFormat() *OptionsError {
	return &OptionsError{
		Kind:    KindEmptyTimeFormat,
		Option:  "time-style",
		Context: "non-recent",
		Value:   "after the plus sign",
	}
}

func emptyRecentFormat() *OptionsError {
	return &OptionsError{
		Kind:    KindEmptyTimeFormat,
		Option:  "time-style",
		Context: "recent",
		Value:   "on the second line",
	}
}

// AsOptionsError returns the *OptionsError in err's chain, if any.
func AsOptionsError(err error) (*OptionsError, bool) {
	var e *OptionsError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
