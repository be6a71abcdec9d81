package state

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestState(t *testing.T, root string) *AppState {
	t.Helper()
	state := NewAppState(root)
	state.ScreenWidth = 80
	state.ScreenHeight = 24
	if err := LoadTree(state); err != nil {
		t.Fatalf("failed to load tree: %v", err)
	}
	return state
}

func reduceT(t *testing.T, r *StateReducer, state *AppState, action Action) {
	t.Helper()
	if _, err := r.Reduce(state, action); err != nil {
		t.Fatalf("reduce %T failed: %v", action, err)
	}
}

func findEntryIndex(entries []FileEntry, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func moveCursorTo(t *testing.T, state *AppState, name string) {
	t.Helper()
	idx := findEntryIndex(state.Entries, name)
	if idx == -1 {
		t.Fatalf("%s not found in snapshot %v", name, snapshotNames(state))
	}
	state.Cursor = idx
}

func snapshotNames(state *AppState) []string {
	names := make([]string, len(state.Entries))
	for i, e := range state.Entries {
		names[i] = e.Name
	}
	return names
}

func writeTestFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func makeTestDir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

// scratchTree builds a small root: b.txt, A/ (empty), .hidden
func scratchTree(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "b.txt"))
	makeTestDir(t, filepath.Join(tmpDir, "A"))
	writeTestFile(t, filepath.Join(tmpDir, ".hidden"))
	return tmpDir
}
