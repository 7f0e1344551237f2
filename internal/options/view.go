package options

import (
	"runtime"

	"github.com/michaelscutari/lsview/internal/view"
)

// Capabilities describes the platform and terminal the listing is for.
type Capabilities struct {
	// Xattr is true where extended attributes and security contexts can be read.
	Xattr bool

	// TerminalWidth is the detected width of the output, or 0 when output
	// is not a terminal.
	TerminalWidth int
}

// DefaultCapabilities returns the capabilities of the current platform with
// no terminal attached.
func DefaultCapabilities() Capabilities {
	return Capabilities{Xattr: runtime.GOOS == "linux" || runtime.GOOS == "darwin"}
}

// DeduceView resolves the complete view configuration.
func DeduceView(o *Opts, vars Vars, caps Capabilities, strict bool) (view.View, error) {
	mode, err := DeduceMode(o, vars, caps, strict)
	if err != nil {
		return view.View{}, err
	}

	width, err := DeduceTerminalWidth(o, vars)
	if err != nil {
		return view.View{}, err
	}

	_, isATTY := width.Actual(caps.TerminalWidth)
	fileStyle, err := DeduceFileStyle(o, vars, isATTY)
	if err != nil {
		return view.View{}, err
	}

	return view.View{
		Mode:       mode,
		Width:      width,
		FileStyle:  fileStyle,
		DerefLinks: o.Dereference > 0,
		TotalSize:  o.TotalSize > 0,
	}, nil
}

// DeduceMode picks the view mode.
//
// Flags are matched in priority order rather than rejected as conflicts, so
// later flags win the way they do in other ls implementations. --long
// combines with --grid (and with --tree, which the traversal handles), but
// --oneline never combines with anything.
func DeduceMode(o *Opts, vars Vars, caps Capabilities, strict bool) (view.Mode, error) {
	if o.Long == 0 && o.OneLine == 0 && o.Grid == 0 && o.Tree == 0 {
		if strict {
			if err := strictCheckLongFlags(o); err != nil {
				return nil, err
			}
		}
		return view.GridMode{Grid: DeduceGrid(o)}, nil
	}

	if o.Long > 0 {
		details, err := DeduceDetailsLong(o, vars, caps, strict)
		if err != nil {
			return nil, err
		}

		if o.Grid > 0 {
			threshold, err := DeduceRowThreshold(vars)
			if err != nil {
				return nil, err
			}
			return view.GridDetailsMode{Details: details, RowThreshold: threshold}, nil
		}

		return view.DetailsMode{Details: details}, nil
	}

	if strict {
		if err := strictCheckLongFlags(o); err != nil {
			return nil, err
		}
	}

	if o.Tree > 0 {
		details, err := DeduceDetailsTree(o, vars, caps)
		if err != nil {
			return nil, err
		}
		return view.DetailsMode{Details: details}, nil
	}

	if o.OneLine > 0 {
		return view.LinesMode{}, nil
	}

	return view.GridMode{Grid: DeduceGrid(o)}, nil
}

// strictCheckLongFlags rejects flags that only affect the details table
// when no table is going to be drawn.
func strictCheckLongFlags(o *Opts) error {
	for _, f := range []struct {
		set  bool
		name string
	}{
		{o.Binary > 0, "binary"},
		{o.Bytes > 0, "bytes"},
		{o.Inode > 0, "inode"},
		{o.Links > 0, "links"},
		{o.Header > 0, "header"},
		{o.Blocksize > 0, "blocksize"},
		{o.Time != nil, "time"},
		{o.Group > 0, "group"},
		{o.Numeric > 0, "numeric"},
		{o.Mounts > 0, "mounts"},
	} {
		if f.set {
			return Useless(f.name, false, "long")
		}
	}

	if o.Git > 0 && o.NoGit == 0 {
		return Useless("git", false, "long")
	}
	if o.Level != nil && o.Recurse == 0 && o.Tree == 0 {
		return Useless2("level", "recurse", "tree")
	}
	return nil
}

// DeduceGrid resolves the grid layout.
func DeduceGrid(o *Opts) view.GridOptions {
	return view.GridOptions{Across: o.Across > 0}
}

// DeduceDetailsLong resolves the details view for --long.
func DeduceDetailsLong(o *Opts, vars Vars, caps Capabilities, strict bool) (view.DetailsOptions, error) {
	if strict {
		if o.Across > 0 && o.Grid == 0 {
			return view.DetailsOptions{}, Useless("across", true, "long")
		}
		if o.OneLine > 0 {
			return view.DetailsOptions{}, Useless("one-line", true, "long")
		}
	}

	table, err := DeduceTable(o, vars, caps)
	if err != nil {
		return view.DetailsOptions{}, err
	}

	scale, err := DeduceColorScale(o, vars)
	if err != nil {
		return view.DetailsOptions{}, err
	}

	return view.DetailsOptions{
		Table:      &table,
		Header:     o.Header > 0,
		Xattr:      caps.Xattr && o.Extended > 0,
		SecAttr:    caps.Xattr && o.SecurityContext > 0,
		Mounts:     o.Mounts > 0,
		ColorScale: scale,
	}, nil
}

// DeduceDetailsTree resolves the details view for --tree without --long.
func DeduceDetailsTree(o *Opts, vars Vars, caps Capabilities) (view.DetailsOptions, error) {
	scale, err := DeduceColorScale(o, vars)
	if err != nil {
		return view.DetailsOptions{}, err
	}

	return view.DetailsOptions{
		Table:      nil,
		Header:     false,
		Xattr:      caps.Xattr && o.Extended > 0,
		SecAttr:    caps.Xattr && o.SecurityContext > 0,
		Mounts:     o.Mounts > 0,
		ColorScale: scale,
	}, nil
}

// DeduceTerminalWidth resolves the output width. A --width of 0 means
// automatic rather than an error.
func DeduceTerminalWidth(o *Opts, vars Vars) (view.TerminalWidth, error) {
	if o.Width != nil {
		if *o.Width >= 1 {
			return view.SetWidth(*o.Width), nil
		}
		return view.Automatic, nil
	}

	s, ok := firstOf(envValue(vars, EnvColumns))
	if !ok {
		return view.Automatic, nil
	}
	cols, err := parseCount(s)
	if err != nil {
		return view.Automatic, err
	}
	return view.SetWidth(cols), nil
}

// DeduceRowThreshold resolves the minimum rows for a grid-details view.
func DeduceRowThreshold(vars Vars) (view.RowThreshold, error) {
	s, ok := firstOf(envPair(vars, EzaGridRows, ExaGridRows))
	if !ok {
		return view.AlwaysGrid, nil
	}
	rows, err := parseCount(s)
	if err != nil {
		return view.AlwaysGrid, err
	}
	return view.MinimumRows(rows), nil
}
