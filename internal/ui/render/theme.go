package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background   tcell.Color
	Foreground   tcell.Color
	HeaderBg     tcell.Color
	HeaderFg     tcell.Color
	SelectionBg  tcell.Color
	SelectionFg  tcell.Color
	DirectoryFg  tcell.Color
	SymlinkFg    tcell.Color
	ExecutableFg tcell.Color
	HiddenFg     tcell.Color
	FileFg       tcell.Color
	MatchFg      tcell.Color
	ChangedFg    tcell.Color
	StatusFg     tcell.Color
	PromptFg     tcell.Color
	ConfirmFg    tcell.Color
	WatcherFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:   tcell.ColorDefault,
		Foreground:   tcell.ColorDefault,
		HeaderBg:     tcell.Color236,
		HeaderFg:     tcell.ColorWhite,
		SelectionBg:  tcell.Color33,
		SelectionFg:  tcell.ColorWhite,
		DirectoryFg:  tcell.Color33,
		SymlinkFg:    tcell.Color51,
		ExecutableFg: tcell.ColorGreen,
		HiddenFg:     tcell.ColorLightSlateGray,
		FileFg:       tcell.ColorDefault,
		MatchFg:      tcell.ColorYellow,
		ChangedFg:    tcell.ColorOrange,
		StatusFg:     tcell.ColorGreen,
		PromptFg:     tcell.ColorYellow,
		ConfirmFg:    tcell.ColorRed,
		WatcherFg:    tcell.ColorGreen,
	}
}
