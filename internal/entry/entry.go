package entry

import (
	"os"
)

// Kind represents the type of filesystem entry.
type Kind uint8

const (
	KindFile    Kind = 0
	KindDir     Kind = 1
	KindSymlink Kind = 2
	KindOther   Kind = 3
	KindPipe    Kind = 4
	KindSocket  Kind = 5
	KindDevice  Kind = 6
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	case KindPipe:
		return "pipe"
	case KindSocket:
		return "socket"
	case KindDevice:
		return "device"
	default:
		return "other"
	}
}

// KindFromMode derives the Kind from an os.FileMode.
func KindFromMode(mode os.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode&os.ModeNamedPipe != 0:
		return KindPipe
	case mode&os.ModeSocket != 0:
		return KindSocket
	case mode&os.ModeDevice != 0:
		return KindDevice
	default:
		return KindOther
	}
}

// Executable reports whether any execute bit is set on a regular file.
func Executable(mode os.FileMode) bool {
	return mode.IsRegular() && mode.Perm()&0o111 != 0
}

// Indicator returns the classify suffix for an entry, or "" when none applies.
func Indicator(kind Kind, executable bool) string {
	switch kind {
	case KindDir:
		return "/"
	case KindSymlink:
		return "@"
	case KindPipe:
		return "|"
	case KindSocket:
		return "="
	case KindFile:
		if executable {
			return "*"
		}
	}
	return ""
}
