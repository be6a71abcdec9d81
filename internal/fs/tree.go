package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MaxFullyExpandedEntries caps how many rows an expand-all walk will
// materialize so a huge subtree cannot freeze the UI.
const MaxFullyExpandedEntries = 5000

// loadDirectory lists the children of path as entries at the given depth.
// Directories sort before everything else; ties break on a case-insensitive
// name comparison. Entries that vanish between the listing and the stat are
// skipped rather than failing the whole listing.
func loadDirectory(path string, depth int, showHidden bool) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, wrapErr("read", path, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		entry, err := NewEntry(filepath.Join(path, de.Name()), depth)
		if err != nil {
			continue
		}
		if !showHidden && entry.Hidden {
			continue
		}
		entries = append(entries, entry)
	}

	sortEntries(entries)
	return entries, nil
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// BuildTree flattens the visible tree under root in depth-first pre-order.
// Only directories whose path is in expanded are descended into, so children
// of a collapsed directory are never stat'd. Expansion state is recorded on
// the returned entries. An unreadable directory fails the entire build; the
// caller keeps its previous snapshot.
func BuildTree(root string, expanded map[string]bool, showHidden bool) ([]Entry, error) {
	out := make([]Entry, 0, 64)
	if err := appendSubtree(root, 0, expanded, showHidden, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func appendSubtree(path string, depth int, expanded map[string]bool, showHidden bool, out *[]Entry) error {
	children, err := loadDirectory(path, depth, showHidden)
	if err != nil {
		return err
	}

	for _, child := range children {
		child.Expanded = child.IsDir() && expanded[child.Path]
		*out = append(*out, child)

		if child.Expanded {
			if err := appendSubtree(child.Path, depth+1, expanded, showHidden, out); err != nil {
				return err
			}
		}
	}

	return nil
}

// BuildTreeFullyExpanded walks every directory under root, stopping once the
// entry cap is reached. It returns the flattened entries plus the set of
// directories that were actually descended into, so the caller can adopt
// that set as its expansion state.
func BuildTreeFullyExpanded(root string, showHidden bool) ([]Entry, map[string]bool, error) {
	out := make([]Entry, 0, 256)
	expanded := make(map[string]bool)
	if err := appendFullSubtree(root, 0, showHidden, &out, expanded); err != nil {
		return nil, nil, err
	}
	return out, expanded, nil
}

func appendFullSubtree(path string, depth int, showHidden bool, out *[]Entry, expanded map[string]bool) error {
	children, err := loadDirectory(path, depth, showHidden)
	if err != nil {
		return err
	}

	for _, child := range children {
		if len(*out) >= MaxFullyExpandedEntries {
			return nil
		}

		if child.IsDir() {
			child.Expanded = true
			expanded[child.Path] = true
		}
		*out = append(*out, child)

		if child.IsDir() {
			if err := appendFullSubtree(child.Path, depth+1, showHidden, out, expanded); err != nil {
				return err
			}
		}
	}

	return nil
}
