package options

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelscutari/lsview/internal/view"
)

func TestDeduceFileStyleDefaults(t *testing.T) {
	got, err := DeduceFileStyle(&Opts{}, noVars, true)
	require.NoError(t, err)
	assert.Equal(t, view.FileStyle{
		Classify:   view.JustFilenames,
		ShowIcons:  view.ShowIcons{When: view.Never},
		QuoteStyle: view.QuoteSpaces,
		Absolute:   view.AbsoluteOff,
		IsATTY:     true,
	}, got)
}

func TestDeduceFileStyleFlags(t *testing.T) {
	o := &Opts{
		Classify:  str("always"),
		Icons:     str("auto"),
		NoQuotes:  1,
		Hyperlink: 1,
		Absolute:  str("follow"),
	}
	got, err := DeduceFileStyle(o, noVars, false)
	require.NoError(t, err)
	assert.Equal(t, view.AddFileIndicators, got.Classify)
	assert.Equal(t, view.ShowIcons{When: view.Auto, Spacing: 1}, got.ShowIcons)
	assert.Equal(t, view.NoQuotes, got.QuoteStyle)
	assert.True(t, got.EmbedHyperlinks)
	assert.Equal(t, view.AbsoluteFollow, got.Absolute)
	assert.False(t, got.IsATTY)
}

func TestDeduceClassify(t *testing.T) {
	tests := map[string]view.Classify{
		"never":     view.JustFilenames,
		"auto":      view.AutomaticAddFileIndicators,
		"automatic": view.AutomaticAddFileIndicators,
		"always":    view.AddFileIndicators,
	}
	for word, want := range tests {
		got, err := DeduceClassify(&Opts{Classify: str(word)})
		require.NoError(t, err, word)
		assert.Equal(t, want, got, word)
	}

	_, err := DeduceClassify(&Opts{Classify: str("sometimes")})
	assert.Equal(t, BadArgument("classify", "sometimes"), err)
}

func TestDeduceShowIcons(t *testing.T) {
	tests := []struct {
		name string
		opts Opts
		vars MapVars
		want view.ShowIcons
	}{
		{"absent", Opts{}, nil, view.ShowIcons{When: view.Never}},
		{"always", Opts{Icons: str("always")}, nil, view.ShowIcons{When: view.Always, Spacing: 1}},
		{"never", Opts{Icons: str("never")}, MapVars{EzaIconSpacing: "bad"}, view.ShowIcons{When: view.Never}},
		{"no-icons wins", Opts{Icons: str("always"), NoIcons: 1}, nil, view.ShowIcons{When: view.Never}},
		{"spacing", Opts{Icons: str("always")}, MapVars{EzaIconSpacing: "3"}, view.ShowIcons{When: view.Always, Spacing: 3}},
		{"legacy spacing", Opts{Icons: str("auto")}, MapVars{ExaIconSpacing: "0"}, view.ShowIcons{When: view.Auto, Spacing: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := tt.vars
			if vars == nil {
				vars = MapVars{}
			}
			got, err := DeduceShowIcons(&tt.opts, vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeduceShowIconsErrors(t *testing.T) {
	_, err := DeduceShowIcons(&Opts{Icons: str("loud")}, noVars)
	assert.Equal(t, BadArgument("icons", "loud"), err)

	_, err = DeduceShowIcons(&Opts{Icons: str("always")}, MapVars{ExaIconSpacing: "wide"})
	oe, ok := AsOptionsError(err)
	require.True(t, ok)
	assert.Equal(t, KindFailedParse, oe.Kind)
	assert.Equal(t, EnvSource(ExaIconSpacing), oe.Source)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestDeduceAbsolute(t *testing.T) {
	tests := map[string]view.Absolute{
		"on":     view.AbsoluteOn,
		"yes":    view.AbsoluteOn,
		"follow": view.AbsoluteFollow,
		"off":    view.AbsoluteOff,
		"no":     view.AbsoluteOff,
	}
	for word, want := range tests {
		got, err := DeduceAbsolute(&Opts{Absolute: str(word)})
		require.NoError(t, err, word)
		assert.Equal(t, want, got, word)
	}

	_, err := DeduceAbsolute(&Opts{Absolute: str("relative")})
	assert.Equal(t, BadArgument("absolute", "relative"), err)
}
