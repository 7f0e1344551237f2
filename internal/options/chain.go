package options

import "strconv"

// setting is a raw value together with where it came from.
type setting struct {
	value  string
	source NumberSource
}

// lookup is one step in a precedence chain.
type lookup func() (setting, bool)

// firstOf returns the first lookup in chain that yields a value. Chains are
// written highest priority first.
func firstOf(chain ...lookup) (setting, bool) {
	for _, l := range chain {
		if s, ok := l(); ok {
			return s, true
		}
	}
	return setting{}, false
}

// flagValue yields the value of an optional string flag.
func flagValue(name string, v *string) lookup {
	return func() (setting, bool) {
		if v == nil {
			return setting{}, false
		}
		return setting{value: *v, source: FlagSource(name)}, true
	}
}

// envValue yields an environment variable if it is set, even to "".
func envValue(vars Vars, key string) lookup {
	return func() (setting, bool) {
		v, ok := vars.Get(key)
		if !ok {
			return setting{}, false
		}
		return setting{value: v, source: EnvSource(key)}, true
	}
}

// envNonEmpty yields an environment variable unless it is unset or "".
func envNonEmpty(vars Vars, key string) lookup {
	return func() (setting, bool) {
		s, ok := envValue(vars, key)()
		if !ok || s.value == "" {
			return setting{}, false
		}
		return s, true
	}
}

// envPair yields the first set variable of a current/legacy pair.
func envPair(vars Vars, primary, secondary string) lookup {
	return func() (setting, bool) {
		v, ok := vars.GetWithFallback(primary, secondary)
		if !ok {
			return setting{}, false
		}
		key, _ := vars.Source(primary, secondary)
		return setting{value: v, source: EnvSource(key)}, true
	}
}

// parseCount parses a non-negative number, reporting failures against the
// setting's source.
func parseCount(s setting) (int, error) {
	n, err := strconv.ParseUint(s.value, 10, 31)
	if err != nil {
		return 0, FailedParse(s.value, s.source, err)
	}
	return int(n), nil
}

// ParseNumberArg parses the numeric argument of --name.
func ParseNumberArg(name, raw string) (int, error) {
	return parseCount(setting{value: raw, source: FlagSource(name)})
}
