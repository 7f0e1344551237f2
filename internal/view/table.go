package view

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/michaelscutari/lsview/internal/timefmt"
)

// TableOptions bundles everything the details table needs.
type TableOptions struct {
	SizeFormat  SizeFormat
	TimeFormat  timefmt.TimeFormat
	UserFormat  UserFormat
	GroupFormat GroupFormat
	FlagsFormat FlagsFormat
	Columns     Columns
}

// TimeTypes selects which timestamps get a column.
type TimeTypes struct {
	Modified bool
	Changed  bool
	Accessed bool
	Created  bool
}

// DefaultTimeTypes shows only the modification time.
func DefaultTimeTypes() TimeTypes {
	return TimeTypes{Modified: true}
}

// Any reports whether at least one timestamp column is shown.
func (t TimeTypes) Any() bool {
	return t.Modified || t.Changed || t.Accessed || t.Created
}

// Columns is the set of optional columns in the details table.
type Columns struct {
	TimeTypes TimeTypes

	Inode           bool
	Links           bool
	Blocksize       bool
	Group           bool
	Octal           bool
	SecurityContext bool
	FileFlags       bool

	Git                  bool
	SubdirGitRepos       bool
	SubdirGitReposNoStat bool

	// These are on unless switched off with a --no-* flag.
	Permissions bool
	Filesize    bool
	User        bool
}

// Headers returns the names of the enabled columns in display order.
func (c Columns) Headers() []string {
	var headers []string
	add := func(on bool, name string) {
		if on {
			headers = append(headers, name)
		}
	}

	add(c.Inode, "inode")
	add(c.Octal, "Octal")
	add(c.Permissions, "Permissions")
	add(c.FileFlags, "Flags")
	add(c.Links, "Links")
	add(c.Filesize, "Size")
	add(c.Blocksize, "Blocksize")
	add(c.User, "User")
	add(c.Group, "Group")
	add(c.SecurityContext, "Security Context")
	add(c.TimeTypes.Modified, "Date Modified")
	add(c.TimeTypes.Changed, "Date Changed")
	add(c.TimeTypes.Accessed, "Date Accessed")
	add(c.TimeTypes.Created, "Date Created")
	add(c.Git, "Git")
	add(c.SubdirGitRepos || c.SubdirGitReposNoStat, "Repo")
	return headers
}

// SizeFormat picks the units of the size column.
type SizeFormat uint8

const (
	// DecimalBytes uses SI prefixes (kB, MB).
	DecimalBytes SizeFormat = iota
	// BinaryBytes uses IEC prefixes (KiB, MiB).
	BinaryBytes
	// JustBytes prints the exact byte count.
	JustBytes
)

func (f SizeFormat) String() string {
	switch f {
	case BinaryBytes:
		return "binary"
	case JustBytes:
		return "bytes"
	default:
		return "decimal"
	}
}

// Format renders a byte count in this format.
func (f SizeFormat) Format(size int64) string {
	if size < 0 {
		return "-"
	}
	switch f {
	case BinaryBytes:
		return humanize.IBytes(uint64(size))
	case JustBytes:
		return humanize.Comma(size)
	default:
		return humanize.Bytes(uint64(size))
	}
}

// UserFormat picks how file owners are displayed.
type UserFormat uint8

const (
	UserName UserFormat = iota
	UserNumeric
)

func (f UserFormat) String() string {
	if f == UserNumeric {
		return "numeric"
	}
	return "name"
}

// Format renders an owner, falling back to the uid when there is no name.
func (f UserFormat) Format(uid uint32, name string) string {
	if f == UserNumeric || name == "" {
		return strconv.FormatUint(uint64(uid), 10)
	}
	return name
}

// GroupFormat picks how the group column is displayed.
type GroupFormat uint8

const (
	GroupRegular GroupFormat = iota
	// GroupSmart hides the group when it has the same name as the owner.
	GroupSmart
)

func (f GroupFormat) String() string {
	if f == GroupSmart {
		return "smart"
	}
	return "regular"
}

// Format renders a group name given the owning user's name.
func (f GroupFormat) Format(group, owner string) string {
	if f == GroupSmart && group == owner {
		return ""
	}
	return group
}

// FlagsFormat picks how BSD file flags are displayed.
type FlagsFormat uint8

const (
	FlagsShort FlagsFormat = iota
)

func (f FlagsFormat) String() string {
	return "short"
}
