// Package filter implements pure path predicates and their AND-composition.
package filter

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	hiddenNamePrefix   = "."
	extensionSeparator = "."
)

// Entry is a single filesystem object observed during traversal. Facets are
// derived from stat calls performed at construction time and reflect the
// on-disk state at that moment; an Entry is never cached across traversals.
// Type facets resolve to false when the underlying stat call failed, so
// evaluating filters against an Entry can never raise an error itself.
type Entry struct {
	absolutePath string
	baseName     string
	statMode     fs.FileMode
	lstatMode    fs.FileMode
	statKnown    bool
	lstatKnown   bool
}

// NewEntry constructs an Entry for the provided path, reading its metadata
// fresh from the filesystem. Stat failures are absorbed into false facets.
func NewEntry(path string) Entry {
	absolutePath, absoluteError := filepath.Abs(path)
	if absoluteError != nil {
		absolutePath = filepath.Clean(path)
	}
	entry := Entry{
		absolutePath: absolutePath,
		baseName:     filepath.Base(absolutePath),
	}
	followedInfo, statError := os.Stat(absolutePath)
	if statError == nil {
		entry.statMode = followedInfo.Mode()
		entry.statKnown = true
	}
	linkInfo, lstatError := os.Lstat(absolutePath)
	if lstatError == nil {
		entry.lstatMode = linkInfo.Mode()
		entry.lstatKnown = true
	}
	return entry
}

// AbsolutePath returns the absolute path string of the entry.
func (entry Entry) AbsolutePath() string {
	return entry.absolutePath
}

// Name returns the final path segment of the entry.
func (entry Entry) Name() string {
	return entry.baseName
}

// IsDir reports whether the entry resolves to a directory, following symlinks.
func (entry Entry) IsDir() bool {
	return entry.statKnown && entry.statMode.IsDir()
}

// IsFile reports whether the entry resolves to a regular file, following symlinks.
func (entry Entry) IsFile() bool {
	return entry.statKnown && entry.statMode.IsRegular()
}

// IsSocket reports whether the entry resolves to a Unix domain socket.
func (entry Entry) IsSocket() bool {
	return entry.statKnown && entry.statMode&fs.ModeSocket != 0
}

// IsFifo reports whether the entry resolves to a named pipe.
func (entry Entry) IsFifo() bool {
	return entry.statKnown && entry.statMode&fs.ModeNamedPipe != 0
}

// IsSymlink reports whether the entry itself is a symbolic link. The symlink
// facet is the only one read without following links.
func (entry Entry) IsSymlink() bool {
	return entry.lstatKnown && entry.lstatMode&fs.ModeSymlink != 0
}

// IsHidden reports whether the final path segment begins with a dot.
func (entry Entry) IsHidden() bool {
	return strings.HasPrefix(entry.baseName, hiddenNamePrefix)
}

// Extension returns the suffix after the last dot of the final path segment,
// without the dot. A name whose only dot is the leading one (a dotfile) has
// no extension.
func (entry Entry) Extension() string {
	lastDotIndex := strings.LastIndex(entry.baseName, extensionSeparator)
	if lastDotIndex <= 0 {
		return ""
	}
	return entry.baseName[lastDotIndex+1:]
}
