package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/michaelscutari/lsview/internal/colorscale"
	"github.com/michaelscutari/lsview/internal/entry"
	"github.com/michaelscutari/lsview/internal/view"
)

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Describe the resolved view in words",
		Long: `Print a report of the resolved view and a few sample rows rendered
with its size, time and name formats.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			return explain(cmd.OutOrStdout(), v, a.now())
		},
	}
}

// sampleEntry is a made-up listing row used to show the formats in action.
type sampleEntry struct {
	name  string
	kind  entry.Kind
	exec  bool
	size  int64
	age   time.Duration
	owner string
	group string
}

var sampleEntries = []sampleEntry{
	{"src", entry.KindDir, false, 4096, 2 * time.Hour, "alice", "staff"},
	{"build.sh", entry.KindFile, true, 1843, 3 * 24 * time.Hour, "alice", "alice"},
	{"release notes.txt", entry.KindFile, false, 52_340_112, 400 * 24 * time.Hour, "bob", "staff"},
	{"latest", entry.KindSymlink, false, 9, 30 * time.Minute, "alice", "staff"},
}

// sampleBase is the color the size column is scaled from.
var sampleBase = colorful.Color{R: 0.34, G: 0.71, B: 0.29}

func explain(w io.Writer, v view.View, now time.Time) error {
	fmt.Fprintf(w, "View\n")
	fmt.Fprintf(w, "====\n\n")
	fmt.Fprintf(w, "Mode:         %s\n", v.Mode.Name())
	if cols, ok := v.Width.Columns(); ok {
		fmt.Fprintf(w, "Width:        %d columns\n", cols)
	} else {
		fmt.Fprintf(w, "Width:        automatic\n")
	}

	var details *view.DetailsOptions
	switch m := v.Mode.(type) {
	case view.GridMode:
		if m.Grid.Across {
			fmt.Fprintf(w, "Layout:       grid, filled across\n")
		} else {
			fmt.Fprintf(w, "Layout:       grid, filled downwards\n")
		}
	case view.LinesMode:
		fmt.Fprintf(w, "Layout:       one name per line\n")
	case view.DetailsMode:
		details = &m.Details
		if m.Details.Table == nil {
			fmt.Fprintf(w, "Layout:       tree\n")
		} else {
			fmt.Fprintf(w, "Layout:       table\n")
		}
	case view.GridDetailsMode:
		details = &m.Details
		if rows, ok := m.RowThreshold.Rows(); ok {
			fmt.Fprintf(w, "Layout:       tables side by side from %d rows\n", rows)
		} else {
			fmt.Fprintf(w, "Layout:       tables side by side\n")
		}
	}

	fs := v.FileStyle
	fmt.Fprintf(w, "\nFile names\n")
	fmt.Fprintf(w, "----------\n")
	fmt.Fprintf(w, "Classify:     %s\n", fs.Classify)
	fmt.Fprintf(w, "Icons:        %s\n", fs.ShowIcons.When)
	fmt.Fprintf(w, "Absolute:     %s\n", fs.Absolute)
	fmt.Fprintf(w, "Hyperlinks:   %t\n", fs.EmbedHyperlinks)

	if details != nil {
		fmt.Fprintf(w, "\nDetails\n")
		fmt.Fprintf(w, "-------\n")
		fmt.Fprintf(w, "Header:       %t\n", details.Header)
		fmt.Fprintf(w, "Xattr:        %t\n", details.Xattr)
		fmt.Fprintf(w, "Mounts:       %t\n", details.Mounts)
		if details.ColorScale.Enabled() {
			fmt.Fprintf(w, "Color scale:  %s, min luminance %d%%\n",
				details.ColorScale.Mode, details.ColorScale.MinLuminance)
		}
		if t := details.Table; t != nil {
			fmt.Fprintf(w, "Sizes:        %s\n", t.SizeFormat)
			fmt.Fprintf(w, "Times:        %s\n", t.TimeFormat.Style)
		}
	}

	fmt.Fprintf(w, "\nSample\n")
	fmt.Fprintf(w, "------\n")
	if details == nil || details.Table == nil {
		for _, e := range sampleEntries {
			fmt.Fprintln(w, sampleName(fs, e))
		}
		return nil
	}
	return writeSampleTable(w, fs, *details, now)
}

func sampleName(fs view.FileStyle, e sampleEntry) string {
	return fs.Name(e.name, "/home/alice/project") + fs.Indicator(e.kind, e.exec)
}

func writeSampleTable(w io.Writer, fs view.FileStyle, d view.DetailsOptions, now time.Time) error {
	t := d.Table
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if d.Header {
		fmt.Fprintf(tw, "SIZE\tUSER\tGROUP\tDATE\tNAME\n")
	}

	var largest int64
	for _, e := range sampleEntries {
		largest = max(largest, e.size)
	}

	for _, e := range sampleEntries {
		size := t.SizeFormat.Format(e.size)
		if d.ColorScale.Size {
			ratio := colorscale.Ratio(float64(e.size), 0, float64(largest))
			size = d.ColorScale.Style(sampleBase, ratio).Render(size)
		}

		date := "-"
		if t.Columns.TimeTypes.Any() {
			date = t.TimeFormat.Format(now.Add(-e.age), now)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			size,
			t.UserFormat.Format(1000, e.owner),
			t.GroupFormat.Format(e.group, e.owner),
			date,
			sampleName(fs, e),
		)
	}
	return tw.Flush()
}
