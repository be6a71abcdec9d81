package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Kind classifies a filesystem node.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymlink
)

// Entry represents a single filesystem node with metadata snapshotted at
// load time. Entries are never mutated after construction; every rebuild
// replaces them wholesale, so only path equality carries identity across
// rebuilds.
type Entry struct {
	Name       string
	Path       string
	Kind       Kind
	Hidden     bool
	Expanded   bool
	Depth      int
	Executable bool
	Size       int64
	Modified   time.Time
	Mode       os.FileMode
}

// IsDir reports whether the entry is a real directory. Symlinks to
// directories report false and never participate in expansion.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// NewEntry stats path and builds an Entry at the given tree depth. The
// symlink check precedes the directory check so a link to a directory is
// classified as a symlink.
func NewEntry(path string, depth int) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, wrapErr("stat", path, err)
	}

	name := filepath.Base(path)

	kind := KindFile
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		kind = KindSymlink
	case info.IsDir():
		kind = KindDirectory
	}

	return Entry{
		Name:       norm.NFC.String(name),
		Path:       path,
		Kind:       kind,
		Hidden:     strings.HasPrefix(name, "."),
		Depth:      depth,
		Executable: kind == KindFile && isExecutable(info.Mode()),
		Size:       info.Size(),
		Modified:   info.ModTime(),
		Mode:       info.Mode(),
	}, nil
}
