package options

import (
	"strconv"
	"strings"

	"github.com/michaelscutari/lsview/internal/colorscale"
)

// DeduceColorScale resolves the color-scale settings.
//
// The minimum luminance is lenient: an unparsable or out-of-range value
// falls back to the default instead of failing.
func DeduceColorScale(o *Opts, vars Vars) (colorscale.Options, error) {
	options := colorscale.Options{
		Mode:         colorscale.Gradient,
		MinLuminance: colorscale.DefaultLuminance,
	}

	if s, ok := firstOf(envPair(vars, EzaMinLuminance, ExaMinLuminance)); ok {
		if n, err := strconv.Atoi(s.value); err == nil &&
			n >= colorscale.MinLuminance && n <= colorscale.MaxLuminance {
			options.MinLuminance = n
		}
	}

	if o.ColorScaleMode == ScaleFixed {
		options.Mode = colorscale.Fixed
	}

	if o.ColorScale == nil {
		return options, nil
	}

	for _, word := range strings.Split(*o.ColorScale, ",") {
		switch word {
		case "all":
			options.Size = true
			options.Age = true
		case "age":
			options.Age = true
		case "size":
			options.Size = true
		default:
			return colorscale.Options{}, BadArgument("color-scale", word)
		}
	}

	return options, nil
}
