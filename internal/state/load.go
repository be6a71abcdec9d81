package state

import (
	fsutil "github.com/kk-code-lab/twig/internal/fs"
)

// LoadTree performs the initial snapshot build for a fresh session. Unlike
// the reducer's rebuild this propagates the error, since there is no
// previous snapshot to fall back on at startup.
func LoadTree(state *AppState) error {
	entries, err := fsutil.BuildTree(state.RootPath, state.expanded, state.ShowHidden)
	if err != nil {
		return err
	}
	state.Entries = entries
	state.clampCursor()
	return nil
}
