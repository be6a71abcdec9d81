package app

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	statepkg "github.com/kk-code-lab/twig/internal/state"
	inputui "github.com/kk-code-lab/twig/internal/ui/input"
	renderui "github.com/kk-code-lab/twig/internal/ui/render"
	watchpkg "github.com/kk-code-lab/twig/internal/watch"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	watcher    *watchpkg.Watcher
	logger     *zap.Logger
	shouldQuit bool
	editorCmd  []string
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	if app.watcher != nil {
		app.watcher.Close()
	}
	if app.logger != nil {
		_ = app.logger.Sync()
	}
	app.screen.Fini()
	return nil
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
