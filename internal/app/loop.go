package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	statepkg "github.com/kk-code-lab/twig/internal/state"
	"github.com/kk-code-lab/twig/internal/ui/input"
	renderui "github.com/kk-code-lab/twig/internal/ui/render"
	watchpkg "github.com/kk-code-lab/twig/internal/watch"
)

const (
	watchDebounce = 200 * time.Millisecond
	tickInterval  = 500 * time.Millisecond
)

// NewApplication initializes the screen and the session state rooted at
// rootPath.
func NewApplication(rootPath string) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	logger := newLogger()

	state := statepkg.NewAppState(rootPath)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)

	reducer := statepkg.NewStateReducer()
	renderer := renderui.NewRenderer(screen)
	inputHandler := input.NewInputHandler(actionCh)

	if err := statepkg.LoadTree(state); err != nil {
		screen.Fini()
		return nil, err
	}

	// A watcher failure degrades to manual refresh, it never blocks startup.
	watcher, err := watchpkg.New(state.WatchDirs(), watchDebounce)
	if err != nil {
		logger.Warn("file watcher unavailable", zap.Error(err))
		watcher = nil
	}
	state.WatcherActive = watcher != nil

	editorCmd, _ := detectEditorCommand()

	app := &Application{
		screen:    screen,
		state:     state,
		reducer:   reducer,
		renderer:  renderer,
		input:     inputHandler,
		actionCh:  actionCh,
		watcher:   watcher,
		logger:    logger,
		editorCmd: editorCmd,
	}

	inputHandler.SetState(state)
	logger.Info("session started", zap.String("root", rootPath))
	return app, nil
}

func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	var watchCh <-chan string
	if app.watcher != nil {
		watchCh = app.watcher.Events()
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case path := <-watchCh:
			if app.handleAction(statepkg.FileChangedAction{Path: path}) {
				renderPending = true
			}
		case now := <-ticker.C:
			if app.state.ClearExpiredStatus(now) {
				renderPending = true
			}
			if app.state.PruneRecentChanges(now) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.OpenFileManagerAction:
		return app.handleOpenFileManager()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.logger.Error("reduce failed", zap.Error(err))
	}

	// The reducer queues editor requests; the terminal handoff happens
	// here, outside the pure state transition.
	if path := app.state.PendingEditorPath; path != "" {
		app.state.PendingEditorPath = ""
		app.handleEditorOpen(path)
	}

	app.resyncWatcher()
	return true
}

// resyncWatcher realigns the watch set with the current expansion set.
// Resync is cheap for an unchanged set, so it runs after every action.
func (app *Application) resyncWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Resync(app.state.WatchDirs()); err != nil {
		app.logger.Warn("watcher resync", zap.Error(err))
	}
}
