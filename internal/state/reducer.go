package state

import (
	"fmt"
	"strings"
	"time"

	fsutil "github.com/kk-code-lab/twig/internal/fs"
)

// StateReducer applies actions to AppState. Every filesystem error is
// caught at this boundary and converted to a status message; the previous
// snapshot is never discarded on failure.
type StateReducer struct {
	now func() time.Time
}

// NewStateReducer creates a new reducer.
func NewStateReducer() *StateReducer {
	return &StateReducer{now: time.Now}
}

func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== CURSOR =====

	case CursorUpAction:
		if state.Cursor > 0 {
			state.Cursor--
			state.ensureCursorVisible()
		}
		return state, nil

	case CursorDownAction:
		if state.Cursor < len(state.Entries)-1 {
			state.Cursor++
			state.ensureCursorVisible()
		}
		return state, nil

	case CursorTopAction:
		state.Cursor = 0
		state.ensureCursorVisible()
		return state, nil

	case CursorBottomAction:
		if len(state.Entries) > 0 {
			state.Cursor = len(state.Entries) - 1
		}
		state.ensureCursorVisible()
		return state, nil

	// ===== TREE =====

	case OpenAction:
		entry := state.CurrentEntry()
		if entry == nil {
			return state, nil
		}
		if entry.IsDir() {
			r.toggleExpand(state)
			return state, nil
		}
		// Terminal handoff to the editor happens in the application loop.
		state.PendingEditorPath = entry.Path
		return state, nil

	case ToggleExpandAction:
		r.toggleExpand(state)
		return state, nil

	case CollapseOrParentAction:
		r.collapseOrParent(state)
		return state, nil

	case ExpandAllAction:
		r.expandAll(state)
		return state, nil

	case CollapseAllAction:
		state.expanded = make(map[string]bool)
		if r.rebuild(state, "") {
			state.setStatus(r.now(), "Collapsed all directories")
		}
		return state, nil

	// ===== VIEW =====

	case ToggleHiddenAction:
		state.ShowHidden = !state.ShowHidden
		if r.rebuild(state, state.cursorPath()) {
			if state.ShowHidden {
				state.setStatus(r.now(), "Showing hidden files")
			} else {
				state.setStatus(r.now(), "Hiding hidden files")
			}
		}
		return state, nil

	case RefreshAction:
		if r.rebuild(state, state.cursorPath()) {
			state.setStatus(r.now(), "Refreshed")
		}
		return state, nil

	case FileChangedAction:
		state.MarkChanged(a.Path, r.now())
		r.rebuild(state, state.cursorPath())
		return state, nil

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.ensureCursorVisible()
		return state, nil

	// ===== SEARCH =====

	case SearchStartAction:
		state.Mode = ModeSearch
		state.SearchQuery = ""
		state.SearchResults = state.SearchResults[:0]
		state.SearchIndex = 0
		return state, nil

	case SearchRuneAction:
		state.SearchQuery += string(a.Rune)
		state.recomputeSearch(true)
		return state, nil

	case SearchBackspaceAction:
		if state.SearchQuery != "" {
			runes := []rune(state.SearchQuery)
			state.SearchQuery = string(runes[:len(runes)-1])
		}
		state.recomputeSearch(true)
		return state, nil

	case SearchCancelAction:
		state.Mode = ModeNormal
		state.SearchQuery = ""
		state.SearchResults = state.SearchResults[:0]
		state.SearchIndex = 0
		return state, nil

	case SearchAcceptAction:
		// Query and matches are retained for n/N cycling in normal mode.
		state.Mode = ModeNormal
		return state, nil

	case SearchNextAction:
		if n := len(state.SearchResults); n > 0 {
			state.SearchIndex = (state.SearchIndex + 1) % n
			state.Cursor = state.SearchResults[state.SearchIndex]
			state.ensureCursorVisible()
		}
		return state, nil

	case SearchPrevAction:
		if n := len(state.SearchResults); n > 0 {
			state.SearchIndex = (state.SearchIndex - 1 + n) % n
			state.Cursor = state.SearchResults[state.SearchIndex]
			state.ensureCursorVisible()
		}
		return state, nil

	// ===== INPUT =====

	case InputStartAction:
		if a.Kind == InputRename {
			entry := state.CurrentEntry()
			if entry == nil {
				return state, nil
			}
			state.InputBuffer = entry.Name
		} else {
			state.InputBuffer = ""
		}
		state.Mode = ModeInput
		state.InputKind = a.Kind
		return state, nil

	case InputRuneAction:
		state.InputBuffer += string(a.Rune)
		return state, nil

	case InputBackspaceAction:
		if state.InputBuffer != "" {
			runes := []rune(state.InputBuffer)
			state.InputBuffer = string(runes[:len(runes)-1])
		}
		return state, nil

	case InputCancelAction:
		state.Mode = ModeNormal
		state.InputBuffer = ""
		return state, nil

	case InputAcceptAction:
		name := state.InputBuffer
		kind := state.InputKind
		state.Mode = ModeNormal
		state.InputBuffer = ""
		if name == "" {
			return state, nil
		}
		switch kind {
		case InputCreateFile:
			r.createEntry(state, name, false)
		case InputCreateDir:
			r.createEntry(state, name, true)
		case InputRename:
			r.renameEntry(state, name)
		}
		return state, nil

	// ===== CONFIRM =====

	case DeleteRequestAction:
		if state.CurrentEntry() == nil {
			return state, nil
		}
		state.Mode = ModeConfirm
		state.ConfirmKind = ConfirmDelete
		return state, nil

	case ConfirmAcceptAction:
		kind := state.ConfirmKind
		state.Mode = ModeNormal
		switch kind {
		case ConfirmDelete:
			r.deleteEntry(state)
		case ConfirmOverwrite:
			r.overwritePaste(state)
		}
		return state, nil

	case ConfirmCancelAction:
		kind := state.ConfirmKind
		state.Mode = ModeNormal
		state.pending = nil
		switch kind {
		case ConfirmDelete:
			state.setStatus(r.now(), "Delete cancelled")
		case ConfirmOverwrite:
			state.setStatus(r.now(), "Paste cancelled")
		}
		return state, nil

	// ===== HELP =====

	case HelpShowAction:
		state.Mode = ModeHelp
		return state, nil

	case HelpHideAction:
		state.Mode = ModeNormal
		return state, nil

	// ===== CLIPBOARD =====

	case YankAction:
		r.copyToClipboard(state, false)
		return state, nil

	case CutAction:
		r.copyToClipboard(state, true)
		return state, nil

	case PasteAction:
		r.paste(state)
		return state, nil
	}

	return state, nil
}

// rebuild replaces the snapshot from the current root, expansion set and
// hidden-visibility flag, then re-targets the cursor at target by path.
// On failure the previous snapshot is kept and a status message is set;
// a vanished root gets a sticky message since the view cannot recover on
// its own.
func (r *StateReducer) rebuild(state *AppState, target string) bool {
	entries, err := fsutil.BuildTree(state.RootPath, state.expanded, state.ShowHidden)
	if err != nil {
		state.LastError = err
		if !fsutil.Exists(state.RootPath) {
			state.setStickyStatus(r.now(), fmt.Sprintf("Root directory unavailable: %v", err))
		} else {
			state.setStatus(r.now(), fmt.Sprintf("Refresh failed: %v", err))
		}
		return false
	}

	if state.Status.Sticky {
		state.Status = StatusMessage{}
	}
	state.Entries = entries
	state.retargetCursor(target)
	state.recomputeSearch(false)
	state.ensureCursorVisible()
	return true
}

func (r *StateReducer) toggleExpand(state *AppState) {
	entry := state.CurrentEntry()
	if entry == nil || !entry.IsDir() {
		return
	}
	path := entry.Path
	if state.expanded[path] {
		delete(state.expanded, path)
	} else {
		state.expanded[path] = true
	}
	r.rebuild(state, path)
}

func (r *StateReducer) collapseOrParent(state *AppState) {
	entry := state.CurrentEntry()
	if entry == nil {
		return
	}

	if entry.IsDir() && entry.Expanded {
		delete(state.expanded, entry.Path)
		r.rebuild(state, entry.Path)
		return
	}

	if entry.Depth == 0 {
		return
	}

	// The snapshot carries no parent links; scan backward for the nearest
	// shallower directory.
	for i := state.Cursor - 1; i >= 0; i-- {
		if state.Entries[i].IsDir() && state.Entries[i].Depth < entry.Depth {
			state.Cursor = i
			state.ensureCursorVisible()
			return
		}
	}
}

func (r *StateReducer) expandAll(state *AppState) {
	target := state.cursorPath()
	entries, expanded, err := fsutil.BuildTreeFullyExpanded(state.RootPath, state.ShowHidden)
	if err != nil {
		state.LastError = err
		state.setStatus(r.now(), fmt.Sprintf("Expand all failed: %v", err))
		return
	}

	state.Entries = entries
	state.expanded = expanded
	state.retargetCursor(target)
	state.recomputeSearch(false)
	state.ensureCursorVisible()

	if len(entries) >= fsutil.MaxFullyExpandedEntries {
		state.setStatus(r.now(), fmt.Sprintf("Expanded all (limited to %d entries)", len(entries)))
	} else {
		state.setStatus(r.now(), fmt.Sprintf("Expanded all (%d entries)", len(entries)))
	}
}

// recomputeSearch rebuilds the match list by case-insensitive substring
// containment over entry names, in snapshot order. With jump set, a
// non-empty result moves the cursor to the first match.
func (s *AppState) recomputeSearch(jump bool) {
	s.SearchResults = s.SearchResults[:0]
	if s.SearchQuery == "" {
		s.SearchIndex = 0
		return
	}

	query := strings.ToLower(s.SearchQuery)
	for i := range s.Entries {
		if strings.Contains(strings.ToLower(s.Entries[i].Name), query) {
			s.SearchResults = append(s.SearchResults, i)
		}
	}

	if jump && len(s.SearchResults) > 0 {
		s.SearchIndex = 0
		s.Cursor = s.SearchResults[0]
		s.ensureCursorVisible()
	}
	if s.SearchIndex >= len(s.SearchResults) {
		s.SearchIndex = 0
	}
}
