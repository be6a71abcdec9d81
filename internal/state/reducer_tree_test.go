package state

import (
	"path/filepath"
	"testing"
)

func TestToggleExpandShowsChildrenLazily(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "sub")
	makeTestDir(t, sub)
	writeTestFile(t, filepath.Join(sub, "child.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	if len(state.Entries) != 1 {
		t.Fatalf("children must stay hidden until expansion, got %v", snapshotNames(state))
	}

	moveCursorTo(t, state, "sub")
	reduceT(t, reducer, state, ToggleExpandAction{})

	if len(state.Entries) != 2 || state.Entries[1].Name != "child.txt" {
		t.Fatalf("expected [sub child.txt], got %v", snapshotNames(state))
	}
	if state.Entries[1].Depth != 1 {
		t.Errorf("child should be at depth 1, got %d", state.Entries[1].Depth)
	}

	entry := state.CurrentEntry()
	if entry == nil || entry.Name != "sub" {
		t.Fatalf("cursor should stay on sub after expand, got %v", entry)
	}
}

func TestToggleExpandOnFileIsNoop(t *testing.T) {
	state := newTestState(t, scratchTree(t))
	reducer := NewStateReducer()

	moveCursorTo(t, state, "b.txt")
	before := len(state.Entries)
	reduceT(t, reducer, state, ToggleExpandAction{})
	if len(state.Entries) != before {
		t.Errorf("expanding a file must not change the snapshot")
	}
}

func TestToggleExpandPreservesCursorIdentity(t *testing.T) {
	tmpDir := t.TempDir()
	makeTestDir(t, filepath.Join(tmpDir, "aaa"))
	writeTestFile(t, filepath.Join(tmpDir, "aaa", "one.txt"))
	writeTestFile(t, filepath.Join(tmpDir, "target.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	// Expanding aaa shifts target.txt's index; the cursor must follow it.
	moveCursorTo(t, state, "aaa")
	wasTarget := filepath.Join(tmpDir, "aaa")
	reduceT(t, reducer, state, ToggleExpandAction{})
	if got := state.cursorPath(); got != wasTarget {
		t.Errorf("cursor should remain on aaa, got %s", got)
	}
}

func TestNestedExpansionSurvivesRefresh(t *testing.T) {
	tmpDir := t.TempDir()
	outer := filepath.Join(tmpDir, "outer")
	inner := filepath.Join(outer, "inner")
	makeTestDir(t, outer)
	makeTestDir(t, inner)
	writeTestFile(t, filepath.Join(inner, "deep.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	moveCursorTo(t, state, "outer")
	reduceT(t, reducer, state, ToggleExpandAction{})
	moveCursorTo(t, state, "inner")
	reduceT(t, reducer, state, ToggleExpandAction{})

	if len(state.Entries) != 3 {
		t.Fatalf("expected fully expanded chain, got %v", snapshotNames(state))
	}

	reduceT(t, reducer, state, RefreshAction{})
	if len(state.Entries) != 3 {
		t.Fatalf("expansion set must survive refresh, got %v", snapshotNames(state))
	}
	if !state.Entries[0].Expanded || !state.Entries[1].Expanded {
		t.Error("outer and inner should still be marked expanded")
	}
}

func TestExpandAllAndCollapseAll(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a")
	makeTestDir(t, a)
	makeTestDir(t, filepath.Join(a, "b"))
	writeTestFile(t, filepath.Join(a, "b", "leaf.txt"))

	state := newTestState(t, tmpDir)
	reducer := NewStateReducer()

	reduceT(t, reducer, state, ExpandAllAction{})
	if len(state.Entries) != 3 {
		t.Fatalf("expected fully expanded tree, got %v", snapshotNames(state))
	}
	if !state.IsExpanded(a) {
		t.Error("expand-all should populate the expansion set")
	}

	reduceT(t, reducer, state, CollapseAllAction{})
	if len(state.Entries) != 1 {
		t.Fatalf("expected collapsed tree, got %v", snapshotNames(state))
	}
	if state.IsExpanded(a) {
		t.Error("collapse-all should empty the expansion set")
	}
}

func TestOpenActionSplitsOnEntryKind(t *testing.T) {
	state := newTestState(t, scratchTree(t))
	reducer := NewStateReducer()

	// On a file, open queues an editor request for the app loop to pick up.
	moveCursorTo(t, state, "b.txt")
	reduceT(t, reducer, state, OpenAction{})
	if want := filepath.Join(state.RootPath, "b.txt"); state.PendingEditorPath != want {
		t.Fatalf("open on a file should queue %s for the editor, got %q", want, state.PendingEditorPath)
	}

	// On a directory, the same action toggles expansion instead.
	state.PendingEditorPath = ""
	moveCursorTo(t, state, "A")
	reduceT(t, reducer, state, OpenAction{})
	if state.PendingEditorPath != "" {
		t.Errorf("open on a directory must not queue an editor request, got %q", state.PendingEditorPath)
	}
	if !state.IsExpanded(filepath.Join(state.RootPath, "A")) {
		t.Errorf("open on a collapsed directory should expand it")
	}
}
