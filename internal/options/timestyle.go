package options

import (
	"strings"

	"github.com/michaelscutari/lsview/internal/timefmt"
)

// DeduceTimeFormat resolves the timestamp style from --time-style, then
// TIME_STYLE (ignored when empty), then the default.
func DeduceTimeFormat(o *Opts, vars Vars) (timefmt.TimeFormat, error) {
	s, ok := firstOf(
		flagValue("time-style", o.TimeStyle),
		envNonEmpty(vars, EnvTimeStyle),
	)
	if !ok {
		return timefmt.Default, nil
	}

	switch word := s.value; word {
	case "default":
		return timefmt.Default, nil
	case "relative":
		return timefmt.Relative, nil
	case "iso":
		return timefmt.ISO, nil
	case "long-iso":
		return timefmt.LongISO, nil
	case "full-iso":
		return timefmt.FullISO, nil
	default:
		if custom, found := strings.CutPrefix(word, "+"); found {
			return parseCustomFormat(custom)
		}
		return timefmt.TimeFormat{}, BadArgument("time-style", word)
	}
}

// parseCustomFormat reads the text after the "+": a non-recent format on
// the first line and an optional recent format on the second. Lines past
// the second are ignored.
func parseCustomFormat(text string) (timefmt.TimeFormat, error) {
	lines := splitLines(text)

	if len(lines) == 0 || lines[0] == "" {
		return timefmt.TimeFormat{}, emptyNonRecentFormat()
	}

	var recent string
	if len(lines) > 1 {
		if lines[1] == "" {
			return timefmt.TimeFormat{}, emptyRecentFormat()
		}
		recent = lines[1]
	}

	return timefmt.Custom(lines[0], recent), nil
}

// splitLines splits on "\n", ignoring a single final newline. A "\r" is
// dropped only when it ends a line that a "\n" terminated.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	terminated := len(lines) - 1
	if lines[terminated] == "" {
		lines = lines[:terminated]
	}
	for i := range lines[:terminated] {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
