//go:build !windows

package app

import (
	"github.com/gdamore/tcell/v2"
)

// resumeAfterStop reclaims the terminal after the process was stopped and
// continued (SIGCONT), for example by shell job control.
func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
	return true
}
