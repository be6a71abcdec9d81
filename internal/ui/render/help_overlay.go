package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/twig/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines() []string {
	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "j/↓", desc: "Move down"},
				{keys: "k/↑", desc: "Move up"},
				{keys: "h/←", desc: "Collapse / go to parent"},
				{keys: "l/→/↵", desc: "Expand / open file"},
				{keys: "g / G", desc: "Go to top / bottom"},
				{keys: "E / W", desc: "Expand all / collapse all"},
			},
		},
		{
			title: "File Operations",
			entries: []helpOverlayEntry{
				{keys: "a", desc: "Create file"},
				{keys: "A", desc: "Create directory"},
				{keys: "r", desc: "Rename"},
				{keys: "d", desc: "Delete"},
				{keys: "y", desc: "Copy (yank)"},
				{keys: "x", desc: "Cut"},
				{keys: "p", desc: "Paste"},
			},
		},
		{
			title: "Other",
			entries: []helpOverlayEntry{
				{keys: "/", desc: "Search"},
				{keys: "n / N", desc: "Next / previous match"},
				{keys: "H", desc: "Toggle hidden files"},
				{keys: "R", desc: "Refresh tree"},
				{keys: "O", desc: "Open in file manager"},
				{keys: "?", desc: "Show this help"},
				{keys: "q", desc: "Quit"},
			},
		},
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %-10s %s", key, desc)
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	titleStart := 0
	titleWidth := r.measureTextWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	lines := buildHelpOverlayLines()
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = r.truncateTextToWidth(text, w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	footer := "Esc/q/? close"
	if h > 0 {
		footerText := r.truncateTextToWidth(footer, w)
		r.drawTextLine(0, h-1, w, footerText, headerStyle)
	}
}
