//go:build windows

package app

// On Windows there is no SIGTSTP/SIGCONT; nothing to resume.
func (app *Application) resumeAfterStop() bool {
	return false
}
