package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func typeInput(t *testing.T, reducer *StateReducer, state *AppState, text string) {
	t.Helper()
	for _, r := range text {
		reduceT(t, reducer, state, InputRuneAction{Rune: r})
	}
}

func TestCreateFileInsideDirectoryUnderCursor(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "A")
	makeTestDir(t, a)

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	moveCursorTo(t, state, "A")
	reduceT(t, reducer, state, ToggleExpandAction{})

	moveCursorTo(t, state, "A")
	reduceT(t, reducer, state, InputStartAction{Kind: InputCreateFile})
	typeInput(t, reducer, state, "x.txt")
	reduceT(t, reducer, state, InputAcceptAction{})

	if state.Mode != ModeNormal {
		t.Errorf("expected ModeNormal after accept, got %v", state.Mode)
	}
	idx := findEntryIndex(state.Entries, "x.txt")
	if idx == -1 {
		t.Fatalf("x.txt should be visible, got %v", snapshotNames(state))
	}
	if state.Entries[idx].Depth != 1 {
		t.Errorf("x.txt should sit at depth 1 inside A, got %d", state.Entries[idx].Depth)
	}
	if !state.Entries[0].Expanded {
		t.Error("A should still be expanded after the create refresh")
	}
}

func TestCreateTargetsParentWhenCursorOnFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "anchor.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	moveCursorTo(t, state, "anchor.txt")
	reduceT(t, reducer, state, InputStartAction{Kind: InputCreateDir})
	typeInput(t, reducer, state, "made")
	reduceT(t, reducer, state, InputAcceptAction{})

	info, err := os.Stat(filepath.Join(tmpDir, "made"))
	if err != nil || !info.IsDir() {
		t.Fatalf("made should exist beside anchor.txt: %v", err)
	}
}

func TestCreateOnEmptySnapshotTargetsRoot(t *testing.T) {
	tmpDir := t.TempDir()
	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	reduceT(t, reducer, state, InputStartAction{Kind: InputCreateFile})
	typeInput(t, reducer, state, "first.txt")
	reduceT(t, reducer, state, InputAcceptAction{})

	if findEntryIndex(state.Entries, "first.txt") == -1 {
		t.Fatalf("first.txt should appear at the root, got %v", snapshotNames(state))
	}
}

func TestCreateExistingSurfacesError(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "taken.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	reduceT(t, reducer, state, InputStartAction{Kind: InputCreateFile})
	typeInput(t, reducer, state, "taken.txt")
	reduceT(t, reducer, state, InputAcceptAction{})

	if !strings.HasPrefix(state.Status.Text, "Create failed") {
		t.Errorf("expected create failure status, got %q", state.Status.Text)
	}
}

func TestCreateRejectsInvalidName(t *testing.T) {
	tmpDir := t.TempDir()
	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	reduceT(t, reducer, state, InputStartAction{Kind: InputCreateFile})
	typeInput(t, reducer, state, "a/b")
	reduceT(t, reducer, state, InputAcceptAction{})

	if !strings.HasPrefix(state.Status.Text, "Invalid name") {
		t.Errorf("expected invalid-name status, got %q", state.Status.Text)
	}
	if len(state.Entries) != 0 {
		t.Errorf("nothing should have been created, got %v", snapshotNames(state))
	}
}

func TestRenameRetargetsCursor(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "old.txt"))
	writeTestFile(t, filepath.Join(tmpDir, "zz.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	moveCursorTo(t, state, "old.txt")
	reduceT(t, reducer, state, InputStartAction{Kind: InputRename})
	if state.InputBuffer != "old.txt" {
		t.Fatalf("rename should pre-fill the buffer, got %q", state.InputBuffer)
	}

	// Replace the buffer wholesale, as a user would after clearing it.
	for range state.InputBuffer {
		reduceT(t, reducer, state, InputBackspaceAction{})
	}
	typeInput(t, reducer, state, "renamed.txt")
	reduceT(t, reducer, state, InputAcceptAction{})

	entry := state.CurrentEntry()
	if entry == nil || entry.Name != "renamed.txt" {
		t.Fatalf("cursor should follow the renamed entry, got %v", entry)
	}
}

func TestRenameCollisionSurfacesError(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "one.txt"))
	writeTestFile(t, filepath.Join(tmpDir, "two.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	moveCursorTo(t, state, "one.txt")
	reduceT(t, reducer, state, InputStartAction{Kind: InputRename})
	for range state.InputBuffer {
		reduceT(t, reducer, state, InputBackspaceAction{})
	}
	typeInput(t, reducer, state, "two.txt")
	reduceT(t, reducer, state, InputAcceptAction{})

	if !strings.HasPrefix(state.Status.Text, "Rename failed") {
		t.Errorf("expected rename failure status, got %q", state.Status.Text)
	}
	if findEntryIndex(state.Entries, "one.txt") == -1 {
		t.Error("one.txt should survive the refused rename")
	}
}

func TestRenameExpandedDirectoryKeepsExpansion(t *testing.T) {
	tmpDir := t.TempDir()
	old := filepath.Join(tmpDir, "oldname")
	makeTestDir(t, old)
	writeTestFile(t, filepath.Join(old, "inner.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	moveCursorTo(t, state, "oldname")
	reduceT(t, reducer, state, ToggleExpandAction{})

	moveCursorTo(t, state, "oldname")
	reduceT(t, reducer, state, InputStartAction{Kind: InputRename})
	for range state.InputBuffer {
		reduceT(t, reducer, state, InputBackspaceAction{})
	}
	typeInput(t, reducer, state, "newname")
	reduceT(t, reducer, state, InputAcceptAction{})

	if findEntryIndex(state.Entries, "inner.txt") == -1 {
		t.Fatalf("renamed dir should stay expanded, got %v", snapshotNames(state))
	}
	entry := state.CurrentEntry()
	if entry == nil || entry.Name != "newname" {
		t.Errorf("cursor should follow the renamed directory, got %v", entry)
	}
}

func TestDeleteRemovesEntryAndClampsCursor(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "a.txt"))
	writeTestFile(t, filepath.Join(tmpDir, "b.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	reduceT(t, reducer, state, CursorBottomAction{})
	reduceT(t, reducer, state, DeleteRequestAction{})
	if state.Mode != ModeConfirm || state.ConfirmKind != ConfirmDelete {
		t.Fatalf("expected delete confirmation, got mode %v", state.Mode)
	}

	reduceT(t, reducer, state, ConfirmAcceptAction{})
	if len(state.Entries) != 1 {
		t.Fatalf("expected one entry left, got %v", snapshotNames(state))
	}
	if state.Cursor != 0 {
		t.Errorf("cursor should clamp to 0, got %d", state.Cursor)
	}
	if state.Mode != ModeNormal {
		t.Errorf("expected ModeNormal after delete, got %v", state.Mode)
	}
}

func TestDeleteDirectoryRecursively(t *testing.T) {
	tmpDir := t.TempDir()
	victim := filepath.Join(tmpDir, "victim")
	makeTestDir(t, victim)
	writeTestFile(t, filepath.Join(victim, "deep.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	moveCursorTo(t, state, "victim")
	reduceT(t, reducer, state, DeleteRequestAction{})
	reduceT(t, reducer, state, ConfirmAcceptAction{})

	if _, err := os.Stat(victim); !os.IsNotExist(err) {
		t.Error("victim directory should be gone from disk")
	}
	if len(state.Entries) != 0 {
		t.Errorf("snapshot should be empty, got %v", snapshotNames(state))
	}
}

func TestDeleteCancelledLeavesFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "keep.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	reduceT(t, reducer, state, DeleteRequestAction{})
	reduceT(t, reducer, state, ConfirmCancelAction{})

	if state.Mode != ModeNormal {
		t.Errorf("expected ModeNormal, got %v", state.Mode)
	}
	if findEntryIndex(state.Entries, "keep.txt") == -1 {
		t.Error("keep.txt should survive a cancelled delete")
	}
	if state.Status.Text != "Delete cancelled" {
		t.Errorf("unexpected status %q", state.Status.Text)
	}
}

func TestEmptyInputBufferAcceptIsNoop(t *testing.T) {
	tmpDir := t.TempDir()
	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	reduceT(t, reducer, state, InputStartAction{Kind: InputCreateFile})
	reduceT(t, reducer, state, InputAcceptAction{})

	if state.Mode != ModeNormal {
		t.Errorf("expected ModeNormal, got %v", state.Mode)
	}
	if len(state.Entries) != 0 {
		t.Errorf("nothing should be created, got %v", snapshotNames(state))
	}
}
