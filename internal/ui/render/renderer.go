package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/twig/internal/fs"
	statepkg "github.com/kk-code-lab/twig/internal/state"
	textutil "github.com/kk-code-lab/twig/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	now              func() time.Time
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		now:    time.Now,
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()

	if state.Mode == statepkg.ModeHelp {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawTree(state, w, h)
	r.drawBottomLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with the root path and watcher indicator.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	endX := r.drawTextLine(0, 0, w, " twig ", headerStyle.Bold(true))

	indicator := ""
	if state.WatcherActive {
		indicator = " ● "
	}
	indicatorWidth := r.measureTextWidth(indicator)

	pathText := textutil.SanitizeTerminalText(state.RootPath)
	available := w - endX - indicatorWidth
	if available > 0 {
		pathText = r.truncateTextToWidth(pathText, available)
		endX = r.drawTextLine(endX, 0, available, pathText, headerStyle)
	}

	for x := endX; x < w-indicatorWidth; x++ {
		r.screen.SetContent(x, 0, ' ', nil, headerStyle)
	}
	if indicator != "" {
		r.drawTextLine(w-indicatorWidth, 0, indicatorWidth, indicator, headerStyle.Foreground(r.theme.WatcherFg))
	}
}

// drawTree renders the flattened tree rows between the header and the
// bottom line.
func (r *Renderer) drawTree(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.FileFg)
	now := r.now()

	rows := state.ViewportRows()
	endIndex := state.ScrollOffset + rows
	if endIndex > len(state.Entries) {
		endIndex = len(state.Entries)
	}

	matched := make(map[int]bool, len(state.SearchResults))
	if state.SearchQuery != "" {
		for _, idx := range state.SearchResults {
			matched[idx] = true
		}
	}

	y := 1
	for idx := state.ScrollOffset; idx < endIndex; idx++ {
		entry := &state.Entries[idx]

		rowStyle := r.entryStyle(entry, baseStyle)
		isSelected := idx == state.Cursor
		if isSelected {
			rowStyle = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg).Bold(true)
		}
		if matched[idx] && !isSelected {
			rowStyle = rowStyle.Foreground(r.theme.MatchFg).Bold(true)
		}
		if state.IsRecentlyChanged(entry.Path, now) && !isSelected {
			rowStyle = rowStyle.Foreground(r.theme.ChangedFg)
		}

		marker := ' '
		if state.Clipboard != nil && state.Clipboard.Path == entry.Path {
			if state.Clipboard.IsCut {
				marker = '✂'
			} else {
				marker = '•'
			}
		}

		indent := 2 * entry.Depth
		icon := IconFor(entry.Name, entry.IsDir(), entry.Expanded)

		x := r.drawStyledRune(0, y, w, marker, rowStyle)
		for i := 0; i < indent && x < w; i++ {
			x = r.drawStyledRune(x, y, w, ' ', rowStyle)
		}
		x = r.drawTextLine(x, y, w-x, icon, rowStyle)

		displayName := textutil.SanitizeTerminalText(entry.Name) + entrySuffix(entry)
		if nameWidth := w - x; nameWidth > 0 {
			displayName = r.truncateTextToWidth(displayName, nameWidth)
			x = r.drawTextLine(x, y, nameWidth, displayName, rowStyle)
		}

		for ; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, rowStyle)
		}
		y++
	}

	for ; y < h-1; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}
}

// entrySuffix mirrors ls -F classification marks.
func entrySuffix(entry *statepkg.FileEntry) string {
	switch {
	case entry.IsDir():
		return "/"
	case entry.Kind == fsutil.KindSymlink:
		return "@"
	case entry.Executable:
		return "*"
	default:
		return ""
	}
}

func (r *Renderer) entryStyle(entry *statepkg.FileEntry, base tcell.Style) tcell.Style {
	switch {
	case entry.IsDir():
		return base.Foreground(r.theme.DirectoryFg)
	case entry.Kind == fsutil.KindSymlink:
		return base.Foreground(r.theme.SymlinkFg)
	case entry.Executable:
		return base.Foreground(r.theme.ExecutableFg)
	case entry.Hidden:
		return base.Foreground(r.theme.HiddenFg)
	default:
		return base
	}
}

// drawBottomLine renders the last row: a prompt while a modal interaction
// is in flight, otherwise the status message, otherwise key hints.
func (r *Renderer) drawBottomLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.StatusFg)

	text, kind := bottomLineContent(state, r.now())
	switch kind {
	case bottomPrompt:
		style = style.Foreground(r.theme.PromptFg)
	case bottomConfirm:
		style = style.Foreground(r.theme.ConfirmFg).Bold(true)
	case bottomHint:
		style = style.Foreground(r.theme.HiddenFg)
	}

	text = textutil.SanitizeTerminalText(text)
	endX := r.drawTextLine(0, y, w, text, style)

	// Block cursor after the editable buffer.
	if kind == bottomPrompt && endX < w {
		endX = r.drawStyledRune(endX, y, w, '█', style)
	}

	for x := endX; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

type bottomLineKind int

const (
	bottomHint bottomLineKind = iota
	bottomPrompt
	bottomConfirm
	bottomStatus
)

// bottomLineContent selects what the last row shows for the current mode.
func bottomLineContent(state *statepkg.AppState, now time.Time) (string, bottomLineKind) {
	switch state.Mode {
	case statepkg.ModeInput:
		return inputPromptLabel(state.InputKind) + state.InputBuffer, bottomPrompt

	case statepkg.ModeSearch:
		count := len(state.SearchResults)
		idx := 0
		if count > 0 {
			idx = state.SearchIndex + 1
		}
		return fmt.Sprintf("/%s (%d/%d)", state.SearchQuery, idx, count), bottomPrompt

	case statepkg.ModeConfirm:
		return confirmPrompt(state), bottomConfirm
	}

	if state.StatusVisible(now) {
		return " " + state.Status.Text, bottomStatus
	}
	return " " + normalModeHints(state.ScreenWidth), bottomHint
}

func inputPromptLabel(kind statepkg.InputKind) string {
	switch kind {
	case statepkg.InputCreateDir:
		return "New directory: "
	case statepkg.InputRename:
		return "Rename: "
	default:
		return "New file: "
	}
}

func confirmPrompt(state *statepkg.AppState) string {
	if state.ConfirmKind == statepkg.ConfirmOverwrite {
		return "Target exists. Overwrite? [y/N]"
	}
	name := ""
	if entry := state.CurrentEntry(); entry != nil {
		name = entry.Name
	}
	return fmt.Sprintf("Delete %q? [y/N]", name)
}

// normalModeHints shortens the key hint line to fit narrow terminals.
func normalModeHints(width int) string {
	switch {
	case width >= 95:
		return "[a]dd [A]dir [r]ename [d]el [y]ank [x]cut [p]aste [/]search [H]idden [R]efresh [?]help [q]uit"
	case width >= 70:
		return "[a]dd [A]dir [r]en [d]el [y]ank [x] [p]aste [/] [H] [R]efresh [?] [q]"
	case width >= 50:
		return "a:add A:dir r:ren d:del y/x/p:clip /:search ?:help q:quit"
	default:
		return "?:help q:quit"
	}
}
