package ui

import "os"

// Theme carries the colors shared by the animated components.
type Theme struct {
	NoColor bool
	Colors  ThemeColors
}

// ThemeColors are hex colors used for gradients and accents.
type ThemeColors struct {
	Primary   string
	Secondary string
}

// NewTheme returns the default theme. NO_COLOR in the environment disables
// colors.
func NewTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{
		NoColor: noColor,
		Colors: ThemeColors{
			Primary:   "#DA7756",
			Secondary: "#10B981",
		},
	}
}
