package options

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelscutari/lsview/internal/colorscale"
	"github.com/michaelscutari/lsview/internal/view"
)

func TestDeduceModeGrid(t *testing.T) {
	mode, err := DeduceMode(&Opts{Grid: 1}, noVars, plainCaps, false)
	require.NoError(t, err)
	assert.Equal(t, view.GridMode{Grid: view.GridOptions{Across: false}}, mode)
}

func TestDeduceModeGridAcross(t *testing.T) {
	mode, err := DeduceMode(&Opts{Grid: 1, Across: 1}, noVars, plainCaps, false)
	require.NoError(t, err)
	assert.Equal(t, view.GridMode{Grid: view.GridOptions{Across: true}}, mode)
}

func TestDeduceModeNoModeFlags(t *testing.T) {
	mode, err := DeduceMode(&Opts{}, noVars, plainCaps, false)
	require.NoError(t, err)
	assert.Equal(t, view.GridMode{}, mode)

	mode, err = DeduceMode(&Opts{Across: 1}, noVars, plainCaps, false)
	require.NoError(t, err)
	assert.Equal(t, view.GridMode{Grid: view.GridOptions{Across: true}}, mode)
}

func TestDeduceModeLines(t *testing.T) {
	mode, err := DeduceMode(&Opts{OneLine: 1}, noVars, plainCaps, false)
	require.NoError(t, err)
	assert.Equal(t, view.LinesMode{}, mode)
}

func TestDeduceModeLongWinsOverOneLine(t *testing.T) {
	mode, err := DeduceMode(&Opts{Long: 1, OneLine: 1}, noVars, plainCaps, false)
	require.NoError(t, err)

	details, ok := mode.(view.DetailsMode)
	require.True(t, ok, "expected details mode, got %s", mode.Name())
	require.NotNil(t, details.Details.Table)
}

func TestDeduceModeTreeWinsOverOneLine(t *testing.T) {
	mode, err := DeduceMode(&Opts{Tree: 1, OneLine: 1}, noVars, plainCaps, false)
	require.NoError(t, err)

	details, ok := mode.(view.DetailsMode)
	require.True(t, ok)
	assert.Nil(t, details.Details.Table)
}

func TestDeduceModeLongGrid(t *testing.T) {
	vars := MapVars{EzaGridRows: "5"}
	mode, err := DeduceMode(&Opts{Long: 1, Grid: 1}, vars, plainCaps, false)
	require.NoError(t, err)

	gd, ok := mode.(view.GridDetailsMode)
	require.True(t, ok)
	assert.Equal(t, view.MinimumRows(5), gd.RowThreshold)
	assert.NotNil(t, gd.Details.Table)
}

func TestDeduceModeLongGridBadRows(t *testing.T) {
	vars := MapVars{ExaGridRows: "many"}
	_, err := DeduceMode(&Opts{Long: 1, Grid: 1}, vars, plainCaps, false)

	oe, ok := AsOptionsError(err)
	require.True(t, ok)
	assert.Equal(t, KindFailedParse, oe.Kind)
	assert.Equal(t, EnvSource(ExaGridRows), oe.Source)
}

func TestStrictUselessWithoutLong(t *testing.T) {
	tests := []struct {
		name string
		opts Opts
	}{
		{"binary", Opts{Binary: 1}},
		{"bytes", Opts{Bytes: 1}},
		{"inode", Opts{Inode: 1}},
		{"links", Opts{Links: 1}},
		{"header", Opts{Header: 1}},
		{"blocksize", Opts{Blocksize: 1}},
		{"time", Opts{Time: str("modified")}},
		{"group", Opts{Group: 1}},
		{"numeric", Opts{Numeric: 1}},
		{"mounts", Opts{Mounts: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeduceMode(&tt.opts, noVars, plainCaps, true)
			assert.Equal(t, Useless(tt.name, false, "long"), err)

			mode, err := DeduceMode(&tt.opts, noVars, plainCaps, false)
			require.NoError(t, err)
			assert.IsType(t, view.GridMode{}, mode)
		})
	}
}

func TestStrictReportsFirstUselessFlag(t *testing.T) {
	_, err := DeduceMode(&Opts{Links: 1, Binary: 1}, noVars, plainCaps, true)
	assert.Equal(t, Useless("binary", false, "long"), err)
}

func TestStrictUselessOnOneLine(t *testing.T) {
	_, err := DeduceMode(&Opts{OneLine: 1, Inode: 1}, noVars, plainCaps, true)
	assert.Equal(t, Useless("inode", false, "long"), err)
}

func TestStrictGit(t *testing.T) {
	_, err := DeduceMode(&Opts{Git: 1}, noVars, plainCaps, true)
	assert.Equal(t, Useless("git", false, "long"), err)

	_, err = DeduceMode(&Opts{Git: 1, NoGit: 1}, noVars, plainCaps, true)
	assert.NoError(t, err)
}

func TestStrictLevel(t *testing.T) {
	_, err := DeduceMode(&Opts{Level: num(2)}, noVars, plainCaps, true)
	assert.Equal(t, Useless2("level", "recurse", "tree"), err)

	_, err = DeduceMode(&Opts{Level: num(2), Recurse: 1}, noVars, plainCaps, true)
	assert.NoError(t, err)

	_, err = DeduceMode(&Opts{Level: num(2), Tree: 1}, noVars, plainCaps, true)
	assert.NoError(t, err)
}

func TestStrictLongFlagsAllowedWithLong(t *testing.T) {
	o := &Opts{Long: 1, Binary: 1, Header: 1, Git: 1, Time: str("accessed")}
	mode, err := DeduceMode(o, noVars, plainCaps, true)
	require.NoError(t, err)
	assert.IsType(t, view.DetailsMode{}, mode)
}

func TestDeduceDetailsLongStrictAcross(t *testing.T) {
	_, err := DeduceDetailsLong(&Opts{Long: 1, Across: 1}, noVars, plainCaps, true)
	assert.Equal(t, Useless("across", true, "long"), err)

	_, err = DeduceDetailsLong(&Opts{Long: 1, Across: 1, Grid: 1}, noVars, plainCaps, true)
	assert.NoError(t, err)
}

func TestDeduceDetailsLongStrictOneLine(t *testing.T) {
	_, err := DeduceDetailsLong(&Opts{Long: 1, OneLine: 1}, noVars, plainCaps, true)
	assert.Equal(t, Useless("one-line", true, "long"), err)
}

func TestDeduceDetailsLong(t *testing.T) {
	o := &Opts{Long: 1, Header: 1, Extended: 1, SecurityContext: 1, Mounts: 1}

	details, err := DeduceDetailsLong(o, noVars, xattrCaps, false)
	require.NoError(t, err)
	assert.True(t, details.Header)
	assert.True(t, details.Xattr)
	assert.True(t, details.SecAttr)
	assert.True(t, details.Mounts)
	require.NotNil(t, details.Table)
	assert.True(t, details.Table.Columns.SecurityContext)

	details, err = DeduceDetailsLong(o, noVars, plainCaps, false)
	require.NoError(t, err)
	assert.False(t, details.Xattr)
	assert.False(t, details.SecAttr)
	assert.False(t, details.Table.Columns.SecurityContext)
}

func TestDeduceDetailsLongPropagatesTableErrors(t *testing.T) {
	_, err := DeduceDetailsLong(&Opts{Long: 1, TimeStyle: str("nice")}, noVars, plainCaps, false)
	assert.Equal(t, BadArgument("time-style", "nice"), err)
}

func TestDeduceDetailsTree(t *testing.T) {
	tests := []struct {
		name string
		opts Opts
		caps Capabilities
		want view.DetailsOptions
	}{
		{
			name: "plain",
			opts: Opts{Tree: 1},
			want: view.DetailsOptions{ColorScale: colorscale.Default()},
		},
		{
			name: "mounts",
			opts: Opts{Tree: 1, Mounts: 1},
			want: view.DetailsOptions{Mounts: true, ColorScale: colorscale.Default()},
		},
		{
			name: "xattr supported",
			opts: Opts{Tree: 1, Extended: 1},
			caps: xattrCaps,
			want: view.DetailsOptions{Xattr: true, ColorScale: colorscale.Default()},
		},
		{
			name: "xattr unsupported",
			opts: Opts{Tree: 1, Extended: 1},
			want: view.DetailsOptions{ColorScale: colorscale.Default()},
		},
		{
			name: "secattr",
			opts: Opts{Tree: 1, SecurityContext: 1},
			caps: xattrCaps,
			want: view.DetailsOptions{SecAttr: true, ColorScale: colorscale.Default()},
		},
		{
			name: "header ignored",
			opts: Opts{Tree: 1, Header: 1},
			want: view.DetailsOptions{ColorScale: colorscale.Default()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeduceDetailsTree(&tt.opts, noVars, tt.caps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeduceTerminalWidth(t *testing.T) {
	tests := []struct {
		name string
		opts Opts
		vars MapVars
		want view.TerminalWidth
	}{
		{"automatic", Opts{}, MapVars{}, view.Automatic},
		{"flag", Opts{Width: num(80)}, MapVars{}, view.SetWidth(80)},
		{"zero flag is automatic", Opts{Width: num(0)}, MapVars{}, view.Automatic},
		{"flag beats env", Opts{Width: num(100)}, MapVars{EnvColumns: "80"}, view.SetWidth(100)},
		{"zero flag ignores env", Opts{Width: num(0)}, MapVars{EnvColumns: "bad"}, view.Automatic},
		{"env", Opts{}, MapVars{EnvColumns: "80"}, view.SetWidth(80)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeduceTerminalWidth(&tt.opts, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeduceTerminalWidthBadEnv(t *testing.T) {
	_, err := DeduceTerminalWidth(&Opts{}, MapVars{EnvColumns: "bad"})

	oe, ok := AsOptionsError(err)
	require.True(t, ok)
	assert.Equal(t, KindFailedParse, oe.Kind)
	assert.Equal(t, "bad", oe.Value)
	assert.Equal(t, EnvSource(EnvColumns), oe.Source)

	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
	assert.Equal(t, `value "bad" not valid for environment variable COLUMNS: strconv.ParseUint: parsing "bad": invalid syntax`, err.Error())
}

func TestDeduceRowThreshold(t *testing.T) {
	r, err := DeduceRowThreshold(MapVars{})
	require.NoError(t, err)
	assert.Equal(t, view.AlwaysGrid, r)

	r, err = DeduceRowThreshold(MapVars{ExaGridRows: "3"})
	require.NoError(t, err)
	assert.Equal(t, view.MinimumRows(3), r)

	r, err = DeduceRowThreshold(MapVars{EzaGridRows: "7", ExaGridRows: "3"})
	require.NoError(t, err)
	assert.Equal(t, view.MinimumRows(7), r)

	_, err = DeduceRowThreshold(MapVars{EzaGridRows: "-1"})
	oe, ok := AsOptionsError(err)
	require.True(t, ok)
	assert.Equal(t, EnvSource(EzaGridRows), oe.Source)
}

func TestDeduceView(t *testing.T) {
	o := &Opts{Long: 1, Dereference: 1, TotalSize: 1, Classify: str("auto")}

	v, err := DeduceView(o, MapVars{EnvColumns: "120"}, plainCaps, false)
	require.NoError(t, err)

	assert.IsType(t, view.DetailsMode{}, v.Mode)
	assert.Equal(t, view.SetWidth(120), v.Width)
	assert.True(t, v.DerefLinks)
	assert.True(t, v.TotalSize)
	assert.True(t, v.FileStyle.IsATTY, "an explicit width counts as a terminal")
	assert.Equal(t, view.AutomaticAddFileIndicators, v.FileStyle.Classify)
}

func TestDeduceViewDetectedTerminal(t *testing.T) {
	v, err := DeduceView(&Opts{}, noVars, Capabilities{TerminalWidth: 90}, false)
	require.NoError(t, err)
	assert.Equal(t, view.Automatic, v.Width)
	assert.True(t, v.FileStyle.IsATTY)

	v, err = DeduceView(&Opts{}, noVars, plainCaps, false)
	require.NoError(t, err)
	assert.False(t, v.FileStyle.IsATTY)
}

func TestDeduceViewErrors(t *testing.T) {
	_, err := DeduceView(&Opts{Inode: 1}, noVars, plainCaps, true)
	assert.Equal(t, Useless("inode", false, "long"), err)

	_, err = DeduceView(&Opts{}, MapVars{EnvColumns: "wide"}, plainCaps, false)
	assert.Error(t, err)

	_, err = DeduceView(&Opts{Icons: str("sometimes")}, noVars, plainCaps, false)
	assert.Equal(t, BadArgument("icons", "sometimes"), err)
}

func TestDeduceViewIsIdempotent(t *testing.T) {
	o := &Opts{
		Long:       1,
		Grid:       1,
		Git:        1,
		Time:       str("changed"),
		TimeStyle:  str("+%Y\n%H:%M"),
		ColorScale: str("all"),
	}
	vars := MapVars{EzaGridRows: "4", EzaMinLuminance: "55", EnvColumns: "100"}

	first, err := DeduceView(o, vars, xattrCaps, true)
	require.NoError(t, err)
	second, err := DeduceView(o, vars, xattrCaps, true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
