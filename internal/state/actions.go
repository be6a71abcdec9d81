package state

// Action is the base interface for all state mutations.
type Action interface{}

// ===== CURSOR ACTIONS =====

type CursorUpAction struct{}
type CursorDownAction struct{}
type CursorTopAction struct{}
type CursorBottomAction struct{}

// ===== TREE ACTIONS =====

// OpenAction expands/collapses a directory or queues a file for the
// external editor.
type OpenAction struct{}
type ToggleExpandAction struct{}
type CollapseOrParentAction struct{}
type ExpandAllAction struct{}
type CollapseAllAction struct{}

// ===== VIEW ACTIONS =====

type ToggleHiddenAction struct{}
type RefreshAction struct{}
type ResizeAction struct {
	Width  int
	Height int
}

// FileChangedAction is dispatched for debounced watcher events.
type FileChangedAction struct {
	Path string
}

// ===== SEARCH ACTIONS =====

type SearchStartAction struct{}
type SearchRuneAction struct {
	Rune rune
}
type SearchBackspaceAction struct{}
type SearchCancelAction struct{}
type SearchAcceptAction struct{}
type SearchNextAction struct{}
type SearchPrevAction struct{}

// ===== INPUT ACTIONS =====

type InputStartAction struct {
	Kind InputKind
}
type InputRuneAction struct {
	Rune rune
}
type InputBackspaceAction struct{}
type InputCancelAction struct{}
type InputAcceptAction struct{}

// ===== CONFIRM ACTIONS =====

type DeleteRequestAction struct{}
type ConfirmAcceptAction struct{}
type ConfirmCancelAction struct{}

// ===== HELP ACTIONS =====

type HelpShowAction struct{}
type HelpHideAction struct{}

// ===== CLIPBOARD ACTIONS =====

type YankAction struct{}
type CutAction struct{}
type PasteAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type OpenFileManagerAction struct{}
