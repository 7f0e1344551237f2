// Package colorscale maps file size or age onto a luminance scale.
package colorscale

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects how a scaled column is colored.
type Mode uint8

const (
	// Gradient varies the luminance of the base color with the value.
	Gradient Mode = iota
	// Fixed keeps the base color for every value.
	Fixed
)

func (m Mode) String() string {
	if m == Fixed {
		return "fixed"
	}
	return "gradient"
}

// Luminance bounds, as percentages.
const (
	MinLuminance     = -100
	MaxLuminance     = 100
	DefaultLuminance = 40
)

// Options is the resolved color-scale configuration.
type Options struct {
	Mode         Mode
	MinLuminance int
	Size         bool
	Age          bool
}

// Default returns a gradient scale with nothing enabled.
func Default() Options {
	return Options{Mode: Gradient, MinLuminance: DefaultLuminance}
}

// Enabled reports whether any dimension uses the scale.
func (o Options) Enabled() bool {
	return o.Size || o.Age
}

// Ratio places value within [lo, hi] as a fraction in [0, 1].
func Ratio(value, lo, hi float64) float64 {
	if hi <= lo {
		return 1
	}
	return clamp((value-lo)/(hi-lo), 0, 1)
}

// Adjust returns base with its luminance set for a position on the scale.
// A ratio of 1 keeps full brightness; lower ratios fade towards MinLuminance.
func (o Options) Adjust(base colorful.Color, ratio float64) colorful.Color {
	if o.Mode == Fixed {
		return base
	}
	h, c, _ := base.Hcl()
	floor := float64(o.MinLuminance) / 100
	l := floor + (1-floor)*math.Exp(-4*(1-clamp(ratio, 0, 1)))
	return colorful.Hcl(h, c, clamp(l, 0, 1)).Clamped()
}

// Style builds a foreground style for a position on the scale.
func (o Options) Style(base colorful.Color, ratio float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(o.Adjust(base, ratio).Hex()))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
