package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/michaelscutari/lsview/internal/view"
)

// viewReport is the serializable form of a resolved view.View.
type viewReport struct {
	Mode         string          `json:"mode" yaml:"mode"`
	Width        string          `json:"width" yaml:"width"`
	Across       bool            `json:"across,omitempty" yaml:"across,omitempty"`
	RowThreshold string          `json:"row_threshold,omitempty" yaml:"row_threshold,omitempty"`
	Details      *detailsReport  `json:"details,omitempty" yaml:"details,omitempty"`
	FileStyle    fileStyleReport `json:"file_style" yaml:"file_style"`
	DerefLinks   bool            `json:"dereference" yaml:"dereference"`
	TotalSize    bool            `json:"total_size" yaml:"total_size"`
}

type detailsReport struct {
	Table      *tableReport     `json:"table,omitempty" yaml:"table,omitempty"`
	Header     bool             `json:"header" yaml:"header"`
	Xattr      bool             `json:"xattr" yaml:"xattr"`
	SecAttr    bool             `json:"secattr" yaml:"secattr"`
	Mounts     bool             `json:"mounts" yaml:"mounts"`
	ColorScale colorScaleReport `json:"color_scale" yaml:"color_scale"`
}

type tableReport struct {
	SizeFormat  string   `json:"size_format" yaml:"size_format"`
	TimeStyle   string   `json:"time_style" yaml:"time_style"`
	NonRecent   string   `json:"non_recent_format,omitempty" yaml:"non_recent_format,omitempty"`
	Recent      string   `json:"recent_format,omitempty" yaml:"recent_format,omitempty"`
	UserFormat  string   `json:"user_format" yaml:"user_format"`
	GroupFormat string   `json:"group_format" yaml:"group_format"`
	FlagsFormat string   `json:"flags_format" yaml:"flags_format"`
	Columns     []string `json:"columns" yaml:"columns"`
}

type colorScaleReport struct {
	Mode         string `json:"mode" yaml:"mode"`
	MinLuminance int    `json:"min_luminance" yaml:"min_luminance"`
	Size         bool   `json:"size" yaml:"size"`
	Age          bool   `json:"age" yaml:"age"`
}

type fileStyleReport struct {
	Classify    string `json:"classify" yaml:"classify"`
	Icons       string `json:"icons" yaml:"icons"`
	IconSpacing int    `json:"icon_spacing" yaml:"icon_spacing"`
	QuoteSpaces bool   `json:"quote_spaces" yaml:"quote_spaces"`
	Hyperlinks  bool   `json:"hyperlinks" yaml:"hyperlinks"`
	Absolute    string `json:"absolute" yaml:"absolute"`
	IsATTY      bool   `json:"tty" yaml:"tty"`
}

func newViewReport(v view.View) viewReport {
	r := viewReport{
		Mode:       v.Mode.Name(),
		Width:      widthString(v.Width),
		DerefLinks: v.DerefLinks,
		TotalSize:  v.TotalSize,
		FileStyle: fileStyleReport{
			Classify:    v.FileStyle.Classify.String(),
			Icons:       v.FileStyle.ShowIcons.When.String(),
			IconSpacing: v.FileStyle.ShowIcons.Spacing,
			QuoteSpaces: v.FileStyle.QuoteStyle == view.QuoteSpaces,
			Hyperlinks:  v.FileStyle.EmbedHyperlinks,
			Absolute:    v.FileStyle.Absolute.String(),
			IsATTY:      v.FileStyle.IsATTY,
		},
	}

	switch m := v.Mode.(type) {
	case view.GridMode:
		r.Across = m.Grid.Across
	case view.DetailsMode:
		r.Details = newDetailsReport(m.Details)
	case view.GridDetailsMode:
		r.Details = newDetailsReport(m.Details)
		r.RowThreshold = "always"
		if rows, ok := m.RowThreshold.Rows(); ok {
			r.RowThreshold = strconv.Itoa(rows)
		}
	}

	return r
}

func newDetailsReport(d view.DetailsOptions) *detailsReport {
	r := &detailsReport{
		Header:  d.Header,
		Xattr:   d.Xattr,
		SecAttr: d.SecAttr,
		Mounts:  d.Mounts,
		ColorScale: colorScaleReport{
			Mode:         d.ColorScale.Mode.String(),
			MinLuminance: d.ColorScale.MinLuminance,
			Size:         d.ColorScale.Size,
			Age:          d.ColorScale.Age,
		},
	}

	if t := d.Table; t != nil {
		r.Table = &tableReport{
			SizeFormat:  t.SizeFormat.String(),
			TimeStyle:   t.TimeFormat.Style.String(),
			NonRecent:   t.TimeFormat.NonRecent,
			Recent:      t.TimeFormat.Recent,
			UserFormat:  t.UserFormat.String(),
			GroupFormat: t.GroupFormat.String(),
			FlagsFormat: t.FlagsFormat.String(),
			Columns:     t.Columns.Headers(),
		}
	}

	return r
}

func widthString(w view.TerminalWidth) string {
	if cols, ok := w.Columns(); ok {
		return strconv.Itoa(cols)
	}
	return "automatic"
}

// writeReport prints r in the given output format.
func writeReport(w io.Writer, r viewReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return writeText(w, r)
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml or json)", format)
	}
}

func writeText(w io.Writer, r viewReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	line := func(key string, value any) {
		fmt.Fprintf(tw, "%s\t%v\n", key, value)
	}

	line("mode", r.Mode)
	line("width", r.Width)
	if r.Across {
		line("across", r.Across)
	}
	if r.RowThreshold != "" {
		line("row threshold", r.RowThreshold)
	}

	if d := r.Details; d != nil {
		if t := d.Table; t != nil {
			line("size format", t.SizeFormat)
			line("time style", t.TimeStyle)
			if t.NonRecent != "" {
				line("non-recent format", t.NonRecent)
			}
			if t.Recent != "" {
				line("recent format", t.Recent)
			}
			line("user format", t.UserFormat)
			line("group format", t.GroupFormat)
			line("flags format", t.FlagsFormat)
			line("columns", fmt.Sprint(t.Columns))
		}
		line("header", d.Header)
		line("xattr", d.Xattr)
		line("secattr", d.SecAttr)
		line("mounts", d.Mounts)
		line("color scale", fmt.Sprintf("%s (min luminance %d, size %t, age %t)",
			d.ColorScale.Mode, d.ColorScale.MinLuminance, d.ColorScale.Size, d.ColorScale.Age))
	}

	fs := r.FileStyle
	line("classify", fs.Classify)
	line("icons", fmt.Sprintf("%s (spacing %d)", fs.Icons, fs.IconSpacing))
	line("quote spaces", fs.QuoteSpaces)
	line("hyperlinks", fs.Hyperlinks)
	line("absolute", fs.Absolute)
	line("tty", fs.IsATTY)
	line("dereference", r.DerefLinks)
	line("total size", r.TotalSize)

	return tw.Flush()
}
