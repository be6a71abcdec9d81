package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/twig/internal/state"
)

// InputHandler converts tcell events to Actions. The key a keystroke maps
// to depends on the current mode, so the handler keeps a state reference.
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState
}

// NewInputHandler creates a new input handler.
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking.
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. Returns false when
// the application should exit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	// Ctrl-C exits from any mode.
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	mode := statepkg.ModeNormal
	if ih.state != nil {
		mode = ih.state.Mode
	}

	switch mode {
	case statepkg.ModeSearch:
		return ih.processSearchKey(ev)
	case statepkg.ModeInput:
		return ih.processInputKey(ev)
	case statepkg.ModeConfirm:
		return ih.processConfirmKey(ev)
	case statepkg.ModeHelp:
		return ih.processHelpKey(ev)
	default:
		return ih.processNormalKey(ev)
	}
}

func (ih *InputHandler) processNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		ih.actionChan <- statepkg.CursorUpAction{}
		return true
	case tcell.KeyDown:
		ih.actionChan <- statepkg.CursorDownAction{}
		return true
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.CollapseOrParentAction{}
		return true
	case tcell.KeyRight:
		ih.actionChan <- statepkg.OpenAction{}
		return true
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.OpenAction{}
		return true
	case tcell.KeyHome:
		ih.actionChan <- statepkg.CursorTopAction{}
		return true
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.CursorBottomAction{}
		return true
	case tcell.KeyRune:
		// fallthrough to the rune map below
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'j':
		ih.actionChan <- statepkg.CursorDownAction{}
	case 'k':
		ih.actionChan <- statepkg.CursorUpAction{}
	case 'h':
		ih.actionChan <- statepkg.CollapseOrParentAction{}
	case 'l':
		ih.actionChan <- statepkg.OpenAction{}
	case 'g':
		ih.actionChan <- statepkg.CursorTopAction{}
	case 'G':
		ih.actionChan <- statepkg.CursorBottomAction{}
	case 'H':
		ih.actionChan <- statepkg.ToggleHiddenAction{}
	case 'R':
		ih.actionChan <- statepkg.RefreshAction{}
	case 'E':
		ih.actionChan <- statepkg.ExpandAllAction{}
	case 'W':
		ih.actionChan <- statepkg.CollapseAllAction{}
	case 'O':
		ih.actionChan <- statepkg.OpenFileManagerAction{}
	case '/':
		ih.actionChan <- statepkg.SearchStartAction{}
	case 'n':
		ih.actionChan <- statepkg.SearchNextAction{}
	case 'N':
		ih.actionChan <- statepkg.SearchPrevAction{}
	case 'a':
		ih.actionChan <- statepkg.InputStartAction{Kind: statepkg.InputCreateFile}
	case 'A':
		ih.actionChan <- statepkg.InputStartAction{Kind: statepkg.InputCreateDir}
	case 'r':
		ih.actionChan <- statepkg.InputStartAction{Kind: statepkg.InputRename}
	case 'd':
		ih.actionChan <- statepkg.DeleteRequestAction{}
	case 'y':
		ih.actionChan <- statepkg.YankAction{}
	case 'x':
		ih.actionChan <- statepkg.CutAction{}
	case 'p':
		ih.actionChan <- statepkg.PasteAction{}
	case '?':
		ih.actionChan <- statepkg.HelpShowAction{}
	}
	return true
}

func (ih *InputHandler) processSearchKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.SearchCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.SearchAcceptAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.SearchBackspaceAction{}
	case tcell.KeyDown, tcell.KeyCtrlN:
		ih.actionChan <- statepkg.SearchNextAction{}
	case tcell.KeyUp, tcell.KeyCtrlP:
		ih.actionChan <- statepkg.SearchPrevAction{}
	case tcell.KeyRune:
		// Any printable rune, including n, N, / and q, extends the query.
		ih.actionChan <- statepkg.SearchRuneAction{Rune: ev.Rune()}
	}
	return true
}

func (ih *InputHandler) processInputKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.InputCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.InputAcceptAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.InputBackspaceAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.InputRuneAction{Rune: ev.Rune()}
	}
	return true
}

func (ih *InputHandler) processConfirmKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.ConfirmCancelAction{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			ih.actionChan <- statepkg.ConfirmAcceptAction{}
		case 'n', 'N':
			ih.actionChan <- statepkg.ConfirmCancelAction{}
		}
		// Every other key is ignored while a confirmation is pending.
	}
	return true
}

func (ih *InputHandler) processHelpKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.HelpHideAction{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', '?':
			ih.actionChan <- statepkg.HelpHideAction{}
		}
	}
	return true
}
