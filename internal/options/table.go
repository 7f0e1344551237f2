package options

import (
	"github.com/michaelscutari/lsview/internal/view"
)

// DeduceTable resolves the details table from its independent parts.
func DeduceTable(o *Opts, vars Vars, caps Capabilities) (view.TableOptions, error) {
	timeFormat, err := DeduceTimeFormat(o, vars)
	if err != nil {
		return view.TableOptions{}, err
	}

	columns, err := DeduceColumns(o, vars, caps)
	if err != nil {
		return view.TableOptions{}, err
	}

	return view.TableOptions{
		SizeFormat:  DeduceSizeFormat(o),
		TimeFormat:  timeFormat,
		UserFormat:  DeduceUserFormat(o),
		GroupFormat: DeduceGroupFormat(o),
		FlagsFormat: DeduceFlagsFormat(vars),
		Columns:     columns,
	}, nil
}

// DeduceColumns resolves which optional table columns are shown. Setting
// either git override variable, to anything, turns every git column off.
func DeduceColumns(o *Opts, vars Vars, caps Capabilities) (view.Columns, error) {
	timeTypes, err := DeduceTimeTypes(o)
	if err != nil {
		return view.Columns{}, err
	}

	_, gitOverride := vars.GetWithFallback(ExaOverrideGit, EzaOverrideGit)
	gitAllowed := o.NoGit == 0 && !gitOverride

	subdirGitRepos := o.GitRepos > 0 && gitAllowed

	return view.Columns{
		TimeTypes:            timeTypes,
		Inode:                o.Inode > 0,
		Links:                o.Links > 0,
		Blocksize:            o.Blocksize > 0,
		Group:                o.Group > 0,
		Octal:                o.Octal > 0,
		SecurityContext:      caps.Xattr && o.SecurityContext > 0,
		FileFlags:            o.FileFlags > 0,
		Git:                  o.Git > 0 && gitAllowed,
		SubdirGitRepos:       subdirGitRepos,
		SubdirGitReposNoStat: !subdirGitRepos && o.GitReposNoStatus > 0 && gitAllowed,
		Permissions:          o.NoPermissions == 0,
		Filesize:             o.NoFilesize == 0,
		User:                 o.NoUser == 0,
	}, nil
}

// DeduceSizeFormat picks the size units. --binary beats --bytes; the
// default is decimal prefixes.
func DeduceSizeFormat(o *Opts) view.SizeFormat {
	switch {
	case o.Binary > 0:
		return view.BinaryBytes
	case o.Bytes > 0:
		return view.JustBytes
	default:
		return view.DecimalBytes
	}
}

// DeduceUserFormat picks names or numeric ids for the user column.
func DeduceUserFormat(o *Opts) view.UserFormat {
	if o.Numeric > 0 {
		return view.UserNumeric
	}
	return view.UserName
}

// DeduceGroupFormat picks regular or smart display for the group column.
func DeduceGroupFormat(o *Opts) view.GroupFormat {
	if o.SmartGroup > 0 {
		return view.GroupSmart
	}
	return view.GroupRegular
}

// DeduceFlagsFormat picks the file-flags format. Only the short form exists;
// vars is accepted so a long form can read the environment without changing
// callers.
func DeduceFlagsFormat(Vars) view.FlagsFormat {
	return view.FlagsShort
}

// DeduceTimeTypes picks which timestamp columns to show.
//
// They can be picked either with individual flags (--modified, --accessed)
// or with a single --time=WORD, but not both. More than one flag shows more
// than one column; none at all shows the default set.
func DeduceTimeTypes(o *Opts) (view.TimeTypes, error) {
	modified := o.Modified > 0
	changed := o.Changed > 0
	accessed := o.Accessed > 0
	created := o.Created > 0

	if o.NoTime > 0 {
		return view.TimeTypes{}, nil
	}

	if o.Time != nil {
		switch {
		case modified:
			return view.TimeTypes{}, Useless("modified", true, "time")
		case changed:
			return view.TimeTypes{}, Useless("changed", true, "time")
		case accessed:
			return view.TimeTypes{}, Useless("accessed", true, "time")
		case created:
			return view.TimeTypes{}, Useless("created", true, "time")
		}

		switch word := *o.Time; word {
		case "mod", "modified":
			return view.TimeTypes{Modified: true}, nil
		case "ch", "changed":
			return view.TimeTypes{Changed: true}, nil
		case "acc", "accessed":
			return view.TimeTypes{Accessed: true}, nil
		case "cr", "created":
			return view.TimeTypes{Created: true}, nil
		default:
			return view.TimeTypes{}, BadArgument("time", word)
		}
	}

	if modified || changed || accessed || created {
		return view.TimeTypes{
			Modified: modified,
			Changed:  changed,
			Accessed: accessed,
			Created:  created,
		}, nil
	}

	return view.DefaultTimeTypes(), nil
}
