package state

import (
	"fmt"
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/twig/internal/fs"
)

// Filesystem mutations. Each operation validates, executes the fs wrapper,
// rebuilds the snapshot, and reports through the status line. Failures
// leave the previous snapshot untouched and are never retried.

func (r *StateReducer) createEntry(state *AppState, name string, isDir bool) {
	if err := fsutil.ValidateName(name); err != nil {
		state.LastError = err
		state.setStatus(r.now(), fmt.Sprintf("Invalid name %q", name))
		return
	}

	path := filepath.Join(state.targetDir(), name)

	var err error
	if isDir {
		err = fsutil.CreateDir(path)
	} else {
		err = fsutil.CreateFile(path)
	}
	if err != nil {
		state.LastError = err
		state.setStatus(r.now(), fmt.Sprintf("Create failed: %v", err))
		return
	}

	r.rebuild(state, path)
	if isDir {
		state.setStatus(r.now(), fmt.Sprintf("Created directory: %s", name))
	} else {
		state.setStatus(r.now(), fmt.Sprintf("Created: %s", name))
	}
}

func (r *StateReducer) renameEntry(state *AppState, newName string) {
	entry := state.CurrentEntry()
	if entry == nil {
		return
	}
	if err := fsutil.ValidateName(newName); err != nil {
		state.LastError = err
		state.setStatus(r.now(), fmt.Sprintf("Invalid name %q", newName))
		return
	}

	oldPath := entry.Path
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if newPath == oldPath {
		return
	}

	if err := fsutil.Rename(oldPath, newPath); err != nil {
		state.LastError = err
		state.setStatus(r.now(), fmt.Sprintf("Rename failed: %v", err))
		return
	}

	// Renaming an expanded directory must not lose its expansion state.
	if state.expanded[oldPath] {
		delete(state.expanded, oldPath)
		state.expanded[newPath] = true
	}

	r.rebuild(state, newPath)
	state.setStatus(r.now(), fmt.Sprintf("Renamed to: %s", newName))
}

func (r *StateReducer) deleteEntry(state *AppState) {
	entry := state.CurrentEntry()
	if entry == nil {
		return
	}
	path := entry.Path
	name := entry.Name

	if err := fsutil.Delete(path); err != nil {
		state.LastError = err
		state.setStatus(r.now(), fmt.Sprintf("Delete failed: %v", err))
		return
	}

	delete(state.expanded, path)
	r.rebuild(state, "")
	state.setStatus(r.now(), fmt.Sprintf("Deleted: %s", name))
}

func (r *StateReducer) copyToClipboard(state *AppState, cut bool) {
	entry := state.CurrentEntry()
	if entry == nil {
		return
	}

	// Single-slot clipboard: any previous entry is overwritten.
	state.Clipboard = &ClipboardEntry{Path: entry.Path, IsCut: cut}
	if cut {
		state.setStatus(r.now(), fmt.Sprintf("Cut: %s", entry.Name))
	} else {
		state.setStatus(r.now(), fmt.Sprintf("Copied: %s", entry.Name))
	}
}

func (r *StateReducer) paste(state *AppState) {
	clip := state.Clipboard
	if clip == nil {
		state.setStatus(r.now(), "Clipboard is empty")
		return
	}

	dst := filepath.Join(state.targetDir(), filepath.Base(clip.Path))
	if dst == clip.Path {
		state.setStatus(r.now(), "Source and destination are the same")
		return
	}
	// Copying a directory into its own subtree would recurse into the copy
	// being produced.
	if strings.HasPrefix(dst, clip.Path+string(filepath.Separator)) {
		state.setStatus(r.now(), "Cannot paste a directory into itself")
		return
	}

	if fsutil.Exists(dst) {
		// Route through the overwrite confirmation instead of silently
		// clobbering or hard-failing.
		state.pending = &pendingPaste{src: clip.Path, dst: dst, isCut: clip.IsCut}
		state.Mode = ModeConfirm
		state.ConfirmKind = ConfirmOverwrite
		return
	}

	r.executePaste(state, clip.Path, dst, clip.IsCut)
}

func (r *StateReducer) overwritePaste(state *AppState) {
	pending := state.pending
	state.pending = nil
	if pending == nil {
		return
	}

	if err := fsutil.Delete(pending.dst); err != nil {
		state.LastError = err
		state.setStatus(r.now(), fmt.Sprintf("Overwrite failed: %v", err))
		return
	}
	r.executePaste(state, pending.src, pending.dst, pending.isCut)
}

func (r *StateReducer) executePaste(state *AppState, src, dst string, isCut bool) {
	name := filepath.Base(src)

	srcEntry, err := fsutil.NewEntry(src, 0)
	if err != nil {
		// The clipboard is only validated now, at paste time.
		state.Clipboard = nil
		state.LastError = err
		state.setStatus(r.now(), fmt.Sprintf("Paste failed, source is gone: %s", name))
		return
	}

	if isCut {
		err = fsutil.Move(src, dst)
	} else if srcEntry.IsDir() {
		err = fsutil.CopyDir(src, dst)
	} else {
		err = fsutil.CopyFile(src, dst)
	}
	if err != nil {
		state.LastError = err
		state.setStatus(r.now(), fmt.Sprintf("Paste failed: %v", err))
		return
	}

	if isCut {
		// Moving an expanded directory carries its expansion state along.
		if state.expanded[src] {
			delete(state.expanded, src)
			state.expanded[dst] = true
		}
		state.Clipboard = nil
		r.rebuild(state, dst)
		state.setStatus(r.now(), fmt.Sprintf("Moved: %s", name))
		return
	}

	// Copy retains the clipboard for repeated pastes.
	r.rebuild(state, dst)
	state.setStatus(r.now(), fmt.Sprintf("Pasted: %s", name))
}
