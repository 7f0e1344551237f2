// Package options turns parsed command-line flags and environment variables
// into a resolved view.View.
//
// Every Deduce function is pure: it reads an Opts record and a Vars source
// and returns either a value or an *OptionsError. Nothing here touches the
// process environment or the terminal directly; callers inject those
// through Vars and Capabilities.
package options

// ColorScaleModeArg is the parsed value of --color-scale-mode.
type ColorScaleModeArg uint8

const (
	ScaleGradient ColorScaleModeArg = iota
	ScaleFixed
)

// Opts is the flat record produced by the argument parser. Count fields hold
// how many times a flag was given; pointer fields are nil when the option
// was not given at all.
type Opts struct {
	// View mode
	Long    int
	OneLine int
	Grid    int
	Tree    int
	Across  int

	// Recursion
	Recurse int
	Level   *int

	// Table columns and formats
	Binary           int
	Bytes            int
	Inode            int
	Links            int
	Header           int
	Blocksize        int
	Group            int
	Numeric          int
	SmartGroup       int
	Mounts           int
	Octal            int
	FileFlags        int
	Extended         int
	SecurityContext  int
	NoPermissions    int
	NoFilesize       int
	NoUser           int
	Git              int
	NoGit            int
	GitRepos         int
	GitReposNoStatus int

	// Timestamps
	Time      *string
	TimeStyle *string
	NoTime    int
	Modified  int
	Changed   int
	Accessed  int
	Created   int

	// Color scale
	ColorScale     *string
	ColorScaleMode ColorScaleModeArg

	// File names
	Classify  *string
	Icons     *string
	NoIcons   int
	NoQuotes  int
	Hyperlink int
	Absolute  *string

	Width       *int
	Dereference int
	TotalSize   int
}
