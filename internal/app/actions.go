package app

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"go.uber.org/zap"

	statepkg "github.com/kk-code-lab/twig/internal/state"
)

// handleEditorOpen suspends the screen and runs the configured editor on
// filePath, resuming when the editor exits.
func (app *Application) handleEditorOpen(filePath string) bool {
	if len(app.editorCmd) == 0 {
		app.state.LastError = fmt.Errorf("no editor configured")
		return false
	}

	if err := app.openFileInEditor(filePath); err != nil {
		app.state.LastError = err
		app.logger.Warn("editor failed", zap.String("path", filePath), zap.Error(err))
	}

	// The file may have changed while the editor had the terminal.
	if _, err := app.reducer.Reduce(app.state, statepkg.RefreshAction{}); err != nil {
		app.state.LastError = err
	}
	return true
}

func (app *Application) openFileInEditor(filePath string) error {
	editorArgs := app.editorArgsWithFile(filePath)
	useTTY := runtime.GOOS != "windows"
	var tty *os.File
	var err error

	if useTTY {
		tty, err = os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return app.openFileInEditorFallback(editorArgs)
		}
		defer func() {
			_ = tty.Close()
		}()
	}

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := exec.Command(editorArgs[0], editorArgs[1:]...)
	if useTTY {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()
	return runErr
}

func (app *Application) openFileInEditorFallback(args []string) error {
	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		_ = app.screen.Resume()
		app.screen.Sync()
	}()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (app *Application) editorArgsWithFile(filePath string) []string {
	args := make([]string, len(app.editorCmd)+1)
	copy(args, app.editorCmd)
	args[len(app.editorCmd)] = filePath
	return args
}

// handleOpenFileManager reveals the cursor target in the platform file
// manager. The command runs detached so the session keeps the terminal.
func (app *Application) handleOpenFileManager() bool {
	target := app.state.RootPath
	if entry := app.state.CurrentEntry(); entry != nil {
		if entry.IsDir() {
			target = entry.Path
		} else {
			target = app.state.RootPath
		}
	}

	args := detectFileManagerCommand()
	if len(args) == 0 {
		app.state.LastError = fmt.Errorf("no file manager available")
		return false
	}

	cmd := exec.Command(args[0], append(args[1:], target)...)
	if err := cmd.Start(); err != nil {
		app.state.LastError = err
		app.logger.Warn("file manager failed", zap.Error(err))
		return false
	}
	go func() { _ = cmd.Wait() }()
	return true
}
