package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/michaelscutari/lsview/internal/options"
	"github.com/michaelscutari/lsview/internal/view"
)

var version = "0.1.0"

// Exit codes.
const (
	exitError   = 1
	exitOptions = 3
)

func main() {
	a := &app{
		vars:  options.OSVars,
		xattr: options.DefaultCapabilities().Xattr,
		width: stdoutWidth,
		now:   time.Now,
	}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lsview:", err)
		if _, ok := options.AsOptionsError(err); ok {
			os.Exit(exitOptions)
		}
		os.Exit(exitError)
	}
}

// app carries what the commands read from the outside world, so tests can
// swap it out.
type app struct {
	vars  options.Vars
	xattr bool
	width func() int
	now   func() time.Time

	flags  viewFlags
	strict bool
	debug  bool
	output string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lsview",
		Short: "Resolve how a directory listing would be displayed",
		Long: `lsview reads ls-style flags and environment variables and prints the
view they resolve to: the layout mode, table columns, timestamp and size
formats, color scale and file name style.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.resolve(cmd)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), newViewReport(v), a.output)
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	a.flags.register(pf)
	// -h is --header, so help takes -? as ls-style listers do.
	pf.BoolP("help", "?", false, "Show help for lsview")
	pf.BoolVar(&a.strict, "strict", false, "Reject options that have no effect (also EZA_STRICT)")
	pf.BoolVar(&a.debug, "debug", false, "Log where each setting came from (also LSVIEW_DEBUG)")
	root.Flags().StringVar(&a.output, "output", "text", "Output format: text, yaml, json")

	root.AddCommand(newExplainCmd(a))
	root.AddCommand(newColumnsCmd(a))
	return root
}

// resolve turns the parsed flags and environment into a view.
func (a *app) resolve(cmd *cobra.Command) (view.View, error) {
	logger := a.logger(cmd.ErrOrStderr())

	opts, err := a.flags.toOpts(cmd.Flags())
	if err != nil {
		return view.View{}, err
	}

	strict := a.strict
	if !strict {
		if v, ok := a.vars.GetWithFallback(options.EzaStrict, options.ExaStrict); ok && v != "" {
			strict = true
		}
	}

	caps := options.Capabilities{Xattr: a.xattr, TerminalWidth: a.width()}

	traceSources(logger, cmd, a.vars)
	logger.Debug("resolving view", "strict", strict, "xattr", caps.Xattr, "terminal_width", caps.TerminalWidth)

	v, err := options.DeduceView(opts, a.vars, caps, strict)
	if err != nil {
		return view.View{}, fmt.Errorf("resolving view: %w", err)
	}

	logger.Debug("resolved view", "mode", v.Mode.Name(), "width", widthString(v.Width))
	return v, nil
}

func (a *app) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if a.debug {
		level = slog.LevelDebug
	} else if v, ok := a.vars.Get("LSVIEW_DEBUG"); ok && v != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// traceSources logs every flag that was given and every environment
// variable the resolver may read.
func traceSources(logger *slog.Logger, cmd *cobra.Command, vars options.Vars) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		logger.Debug("flag", "name", f.Name, "value", f.Value.String())
	})

	for _, key := range []string{options.EnvColumns, options.EnvTimeStyle} {
		if v, ok := vars.Get(key); ok {
			logger.Debug("environment", "key", key, "value", v)
		}
	}

	for _, pair := range [][2]string{
		{options.EzaGridRows, options.ExaGridRows},
		{options.ExaOverrideGit, options.EzaOverrideGit},
		{options.EzaMinLuminance, options.ExaMinLuminance},
		{options.EzaIconSpacing, options.ExaIconSpacing},
		{options.EzaStrict, options.ExaStrict},
	} {
		if key, ok := vars.Source(pair[0], pair[1]); ok {
			v, _ := vars.Get(key)
			logger.Debug("environment", "key", key, "value", v)
		}
	}
}

// stdoutWidth returns the width of the terminal on stdout, or 0 when stdout
// is not a terminal.
func stdoutWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
