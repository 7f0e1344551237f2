package options

import (
	"github.com/michaelscutari/lsview/internal/view"
)

// DeduceFileStyle resolves how file names are printed. isATTY is true when
// the output width is known, which is what "auto" settings key off.
func DeduceFileStyle(o *Opts, vars Vars, isATTY bool) (view.FileStyle, error) {
	classify, err := DeduceClassify(o)
	if err != nil {
		return view.FileStyle{}, err
	}

	icons, err := DeduceShowIcons(o, vars)
	if err != nil {
		return view.FileStyle{}, err
	}

	absolute, err := DeduceAbsolute(o)
	if err != nil {
		return view.FileStyle{}, err
	}

	quotes := view.QuoteSpaces
	if o.NoQuotes > 0 {
		quotes = view.NoQuotes
	}

	return view.FileStyle{
		Classify:        classify,
		ShowIcons:       icons,
		QuoteStyle:      quotes,
		EmbedHyperlinks: o.Hyperlink > 0,
		Absolute:        absolute,
		IsATTY:          isATTY,
	}, nil
}

// DeduceClassify reads --classify[=WHEN]. The parser fills in "auto" for a
// bare --classify.
func DeduceClassify(o *Opts) (view.Classify, error) {
	if o.Classify == nil {
		return view.JustFilenames, nil
	}
	switch word := *o.Classify; word {
	case "never":
		return view.JustFilenames, nil
	case "auto", "automatic":
		return view.AutomaticAddFileIndicators, nil
	case "always":
		return view.AddFileIndicators, nil
	default:
		return view.JustFilenames, BadArgument("classify", word)
	}
}

// DeduceShowIcons reads --icons[=WHEN] and --no-icons, which wins. The icon
// spacing variable is only read when icons can be shown.
func DeduceShowIcons(o *Opts, vars Vars) (view.ShowIcons, error) {
	if o.NoIcons > 0 || o.Icons == nil {
		return view.ShowIcons{When: view.Never}, nil
	}

	var when view.When
	switch word := *o.Icons; word {
	case "never":
		return view.ShowIcons{When: view.Never}, nil
	case "auto", "automatic":
		when = view.Auto
	case "always":
		when = view.Always
	default:
		return view.ShowIcons{}, BadArgument("icons", word)
	}

	spacing := 1
	if s, ok := firstOf(envPair(vars, EzaIconSpacing, ExaIconSpacing)); ok {
		n, err := parseCount(s)
		if err != nil {
			return view.ShowIcons{}, err
		}
		spacing = n
	}

	return view.ShowIcons{When: when, Spacing: spacing}, nil
}

// DeduceAbsolute reads --absolute[=on|follow|off].
func DeduceAbsolute(o *Opts) (view.Absolute, error) {
	if o.Absolute == nil {
		return view.AbsoluteOff, nil
	}
	switch word := *o.Absolute; word {
	case "on", "yes":
		return view.AbsoluteOn, nil
	case "follow":
		return view.AbsoluteFollow, nil
	case "off", "no":
		return view.AbsoluteOff, nil
	default:
		return view.AbsoluteOff, BadArgument("absolute", word)
	}
}
