package state

import (
	"path/filepath"
	"time"

	fsutil "github.com/kk-code-lab/twig/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Mode is the modal interpretation applied to incoming keys.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeInput
	ModeConfirm
	ModeHelp
)

// InputKind selects what a confirmed text input dispatches.
type InputKind int

const (
	InputCreateFile InputKind = iota
	InputCreateDir
	InputRename
)

// ConfirmKind selects what an accepted confirmation executes.
type ConfirmKind int

const (
	ConfirmDelete ConfirmKind = iota
	ConfirmOverwrite
)

// ClipboardEntry is the single-slot yank/cut holding area. The source path
// is not validated until paste time.
type ClipboardEntry struct {
	Path  string
	IsCut bool
}

// pendingPaste holds an overwrite target between the existence check and
// the user's answer to the confirmation prompt.
type pendingPaste struct {
	src   string
	dst   string
	isCut bool
}

const (
	statusTTL            = 3 * time.Second
	recentChangeDuration = 5 * time.Second
)

// StatusMessage is a one-line notice shown at the bottom of the screen.
// Sticky messages never expire; everything else fades after statusTTL.
type StatusMessage struct {
	Text   string
	SetAt  time.Time
	Sticky bool
}

// AppState is the single source of truth for one explorer session. It is
// owned and mutated exclusively by the application loop goroutine.
type AppState struct {
	RootPath string
	Entries  []FileEntry // flattened visible tree, rebuilt wholesale
	Cursor   int

	Mode        Mode
	InputKind   InputKind
	ConfirmKind ConfirmKind

	ShowHidden bool
	expanded   map[string]bool // the only state that survives a rebuild

	InputBuffer   string
	SearchQuery   string
	SearchResults []int
	SearchIndex   int

	Clipboard *ClipboardEntry
	pending   *pendingPaste

	Status StatusMessage

	// Watcher bookkeeping: paths that changed on disk recently, for the
	// renderer's change highlight.
	RecentChanges map[string]time.Time
	WatcherActive bool

	ScreenWidth  int
	ScreenHeight int
	ScrollOffset int

	// Set by the reducer when a file should open in the external editor;
	// consumed by the application loop, which owns the terminal handoff.
	PendingEditorPath string

	LastError error
}

// NewAppState builds the initial session state rooted at rootPath.
func NewAppState(rootPath string) *AppState {
	return &AppState{
		RootPath:      rootPath,
		Entries:       []FileEntry{},
		expanded:      make(map[string]bool),
		RecentChanges: make(map[string]time.Time),
	}
}

// CurrentEntry returns the entry under the cursor, or nil when the snapshot
// is empty.
func (s *AppState) CurrentEntry() *FileEntry {
	if s.Cursor < 0 || s.Cursor >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.Cursor]
}

// IsExpanded reports whether path is in the expansion set.
func (s *AppState) IsExpanded(path string) bool {
	return s.expanded[path]
}

// WatchDirs returns the root plus every expanded directory, the set of
// directories the filesystem watcher must cover.
func (s *AppState) WatchDirs() []string {
	dirs := make([]string, 0, len(s.expanded)+1)
	dirs = append(dirs, s.RootPath)
	for path, on := range s.expanded {
		if on {
			dirs = append(dirs, path)
		}
	}
	return dirs
}

// targetDir resolves where create and paste operate: inside the directory
// under the cursor, beside a file, or at the root when the tree is empty.
func (s *AppState) targetDir() string {
	entry := s.CurrentEntry()
	if entry == nil {
		return s.RootPath
	}
	if entry.IsDir() {
		return entry.Path
	}
	return filepath.Dir(entry.Path)
}

// cursorPath returns the path under the cursor, or "" for an empty snapshot.
func (s *AppState) cursorPath() string {
	if entry := s.CurrentEntry(); entry != nil {
		return entry.Path
	}
	return ""
}

// retargetCursor points the cursor at path if it is still present in the
// snapshot, otherwise clamps the current index.
func (s *AppState) retargetCursor(path string) {
	if path != "" {
		for i := range s.Entries {
			if s.Entries[i].Path == path {
				s.Cursor = i
				return
			}
		}
	}
	s.clampCursor()
}

func (s *AppState) clampCursor() {
	if len(s.Entries) == 0 {
		s.Cursor = 0
		return
	}
	if s.Cursor >= len(s.Entries) {
		s.Cursor = len(s.Entries) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// ViewportRows is the number of tree rows that fit on screen (header and
// status line excluded).
func (s *AppState) ViewportRows() int {
	rows := s.ScreenHeight - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ensureCursorVisible scrolls the viewport so the cursor row is on screen.
func (s *AppState) ensureCursorVisible() {
	rows := s.ViewportRows()
	if s.Cursor < s.ScrollOffset {
		s.ScrollOffset = s.Cursor
	}
	if s.Cursor >= s.ScrollOffset+rows {
		s.ScrollOffset = s.Cursor - rows + 1
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

func (s *AppState) setStatus(now time.Time, text string) {
	s.Status = StatusMessage{Text: text, SetAt: now}
}

func (s *AppState) setStickyStatus(now time.Time, text string) {
	s.Status = StatusMessage{Text: text, SetAt: now, Sticky: true}
}

// StatusVisible reports whether the status message should still be drawn.
func (s *AppState) StatusVisible(now time.Time) bool {
	if s.Status.Text == "" {
		return false
	}
	if s.Status.Sticky {
		return true
	}
	return now.Sub(s.Status.SetAt) < statusTTL
}

// ClearExpiredStatus drops a faded status message. Returns true when the
// message was removed, so the caller knows a re-render is due.
func (s *AppState) ClearExpiredStatus(now time.Time) bool {
	if s.Status.Text == "" || s.Status.Sticky {
		return false
	}
	if now.Sub(s.Status.SetAt) >= statusTTL {
		s.Status = StatusMessage{}
		return true
	}
	return false
}

// MarkChanged records a watcher-reported change for the renderer highlight.
func (s *AppState) MarkChanged(path string, now time.Time) {
	if s.RecentChanges == nil {
		s.RecentChanges = make(map[string]time.Time)
	}
	s.RecentChanges[path] = now
}

// IsRecentlyChanged reports whether path changed on disk within the
// highlight window.
func (s *AppState) IsRecentlyChanged(path string, now time.Time) bool {
	at, ok := s.RecentChanges[path]
	return ok && now.Sub(at) < recentChangeDuration
}

// PruneRecentChanges drops highlight records older than the window.
// Returns true when anything was removed.
func (s *AppState) PruneRecentChanges(now time.Time) bool {
	changed := false
	for path, at := range s.RecentChanges {
		if now.Sub(at) >= recentChangeDuration {
			delete(s.RecentChanges, path)
			changed = true
		}
	}
	return changed
}
