package render

import (
	"path/filepath"
	"strings"
)

const (
	iconDirOpen   = "󰉋 "
	iconDirClosed = "󰉖 "
	iconDefault   = " "
)

// fileIcons maps lowercase file extensions to Nerd Font glyphs.
var fileIcons = map[string]string{
	// Programming languages
	"rs":    " ",
	"py":    " ",
	"js":    " ",
	"ts":    " ",
	"jsx":   " ",
	"tsx":   " ",
	"go":    " ",
	"rb":    " ",
	"php":   " ",
	"java":  " ",
	"c":     " ",
	"cpp":   " ",
	"h":     " ",
	"hpp":   " ",
	"cs":    "󰌛 ",
	"swift": " ",
	"kt":    " ",
	"scala": " ",
	"hs":    " ",
	"lua":   " ",
	"vim":   " ",
	"sh":    " ",
	"bash":  " ",
	"zsh":   " ",
	"fish":  " ",

	// Web
	"html":   " ",
	"css":    " ",
	"scss":   " ",
	"sass":   " ",
	"less":   " ",
	"vue":    " ",
	"svelte": " ",

	// Data/Config
	"json": " ",
	"yaml": " ",
	"yml":  " ",
	"toml": " ",
	"xml":  "󰗀 ",
	"csv":  " ",
	"sql":  " ",

	// Documentation
	"md":   " ",
	"txt":  " ",
	"pdf":  " ",
	"doc":  "󰈬 ",
	"docx": "󰈬 ",

	// Images
	"png":  " ",
	"jpg":  " ",
	"jpeg": " ",
	"gif":  " ",
	"svg":  "󰜡 ",
	"ico":  " ",
	"webp": " ",

	// Archives
	"zip": " ",
	"tar": " ",
	"gz":  " ",
	"rar": " ",
	"7z":  " ",

	// Misc
	"git":        " ",
	"gitignore":  " ",
	"dockerfile": " ",
	"lock":       " ",
	"env":        " ",
	"log":        " ",
}

// IconFor picks the glyph shown next to an entry name. Special filenames
// are matched before the extension lookup.
func IconFor(name string, isDir, expanded bool) string {
	if isDir {
		if expanded {
			return iconDirOpen
		}
		return iconDirClosed
	}

	lower := strings.ToLower(name)
	if lower == "dockerfile" {
		return fileIcons["dockerfile"]
	}
	if strings.Contains(lower, ".git") {
		return fileIcons["git"]
	}
	if strings.HasSuffix(lower, ".lock") {
		return fileIcons["lock"]
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if icon, ok := fileIcons[ext]; ok {
		return icon
	}
	return iconDefault
}
