package main

import (
	"github.com/spf13/pflag"

	"github.com/michaelscutari/lsview/internal/options"
)

// viewFlags holds the raw values bound to the listing flags. Optional
// values are only copied into Opts when the flag was given.
type viewFlags struct {
	opts options.Opts

	level          string
	width          string
	time           string
	timeStyle      string
	colorScale     string
	colorScaleMode string
	classify       string
	icons          string
	absolute       string
}

func (f *viewFlags) register(fs *pflag.FlagSet) {
	o := &f.opts

	fs.CountVarP(&o.Long, "long", "l", "Display extended file metadata as a table")
	fs.CountVarP(&o.OneLine, "oneline", "1", "Display one entry per line")
	fs.CountVarP(&o.Grid, "grid", "G", "Display entries as a grid (default)")
	fs.CountVarP(&o.Tree, "tree", "T", "Recurse into directories as a tree")
	fs.CountVarP(&o.Across, "across", "x", "Sort the grid across, rather than downwards")
	fs.CountVarP(&o.Recurse, "recurse", "R", "Recurse into directories")
	fs.StringVarP(&f.level, "level", "L", "", "Limit the depth of recursion")
	fs.StringVarP(&f.width, "width", "w", "", "Set screen width in columns (0 = automatic)")

	fs.CountVarP(&o.Binary, "binary", "b", "List file sizes with binary prefixes")
	fs.CountVarP(&o.Bytes, "bytes", "B", "List file sizes in bytes, without any prefixes")
	fs.CountVarP(&o.Inode, "inode", "i", "List each file's inode number")
	fs.CountVarP(&o.Links, "links", "H", "List each file's number of hard links")
	fs.CountVarP(&o.Header, "header", "h", "Add a header row to each column")
	fs.CountVarP(&o.Blocksize, "blocksize", "S", "Show size of allocated file system blocks")
	fs.CountVarP(&o.Group, "group", "g", "List each file's group")
	fs.CountVarP(&o.Numeric, "numeric", "n", "List numeric user and group IDs")
	fs.CountVar(&o.SmartGroup, "smart-group", "Only show group if it has a different name from owner")
	fs.CountVarP(&o.Mounts, "mounts", "M", "Show mount details")
	fs.CountVarP(&o.Octal, "octal-permissions", "o", "List each file's permission in octal format")
	fs.CountVarP(&o.FileFlags, "flags", "O", "List file flags")
	fs.CountVarP(&o.Extended, "extended", "@", "List each file's extended attributes and sizes")
	fs.CountVarP(&o.SecurityContext, "context", "Z", "List each file's security context")
	fs.CountVar(&o.NoPermissions, "no-permissions", "Suppress the permissions field")
	fs.CountVar(&o.NoFilesize, "no-filesize", "Suppress the filesize field")
	fs.CountVar(&o.NoUser, "no-user", "Suppress the user field")
	fs.CountVar(&o.Git, "git", "List each file's Git status, if tracked or ignored")
	fs.CountVar(&o.NoGit, "no-git", "Suppress Git status")
	fs.CountVar(&o.GitRepos, "git-repos", "List root of git-tree status")
	fs.CountVar(&o.GitReposNoStatus, "git-repos-no-status", "List each git-repos branch name (much faster)")

	fs.StringVarP(&f.time, "time", "t", "", "Which timestamp field to list: modified, changed, accessed, created")
	fs.StringVar(&f.timeStyle, "time-style", "", "How to format timestamps: default, iso, long-iso, full-iso, relative, or +FORMAT")
	fs.CountVar(&o.NoTime, "no-time", "Suppress the time field")
	fs.CountVarP(&o.Modified, "modified", "m", "Use the modified timestamp field")
	fs.CountVar(&o.Changed, "changed", "Use the changed timestamp field")
	fs.CountVarP(&o.Accessed, "accessed", "u", "Use the accessed timestamp field")
	fs.CountVarP(&o.Created, "created", "U", "Use the created timestamp field")

	fs.StringVar(&f.colorScale, "color-scale", "", "Highlight levels of 'field' distinctly: all, age, size")
	fs.Lookup("color-scale").NoOptDefVal = "all"
	fs.StringVar(&f.colorScaleMode, "color-scale-mode", "gradient", "Use gradient or fixed colors in --color-scale")

	fs.StringVarP(&f.classify, "classify", "F", "", "Display type indicator by file names: never, auto, always")
	fs.Lookup("classify").NoOptDefVal = "auto"
	fs.StringVar(&f.icons, "icons", "", "When to display icons: never, auto, always")
	fs.Lookup("icons").NoOptDefVal = "auto"
	fs.CountVar(&o.NoIcons, "no-icons", "Don't display icons (always overrides --icons)")
	fs.CountVarP(&o.NoQuotes, "no-quotes", "N", "Don't quote file names with spaces")
	fs.CountVar(&o.Hyperlink, "hyperlink", "Display entries as hyperlinks")
	fs.StringVarP(&f.absolute, "absolute", "A", "", "Display entries with their absolute path: on, follow, off")
	fs.Lookup("absolute").NoOptDefVal = "on"
	fs.CountVarP(&o.Dereference, "dereference", "X", "Dereference symbolic links when displaying information")
	fs.CountVar(&o.TotalSize, "total-size", "Show the size of a directory as the size of all files inside")
}

// toOpts copies the bound values into an Opts record, using fs to tell
// which optional flags were given.
func (f *viewFlags) toOpts(fs *pflag.FlagSet) (*options.Opts, error) {
	o := f.opts

	optional := func(name, value string) *string {
		if !fs.Changed(name) {
			return nil
		}
		v := value
		return &v
	}

	o.Time = optional("time", f.time)
	o.TimeStyle = optional("time-style", f.timeStyle)
	o.ColorScale = optional("color-scale", f.colorScale)
	o.Classify = optional("classify", f.classify)
	o.Icons = optional("icons", f.icons)
	o.Absolute = optional("absolute", f.absolute)

	switch f.colorScaleMode {
	case "gradient":
		o.ColorScaleMode = options.ScaleGradient
	case "fixed":
		o.ColorScaleMode = options.ScaleFixed
	default:
		return nil, options.BadArgument("color-scale-mode", f.colorScaleMode)
	}

	if fs.Changed("level") {
		n, err := options.ParseNumberArg("level", f.level)
		if err != nil {
			return nil, err
		}
		o.Level = &n
	}

	if fs.Changed("width") {
		n, err := options.ParseNumberArg("width", f.width)
		if err != nil {
			return nil, err
		}
		o.Width = &n
	}

	return &o, nil
}
