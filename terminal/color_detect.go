package terminal

import (
	"os"
	"strings"
)

// DetectColorMode picks the color encoding for SNAKE_COLOR=auto from the environment
func DetectColorMode() ColorMode {
	return detectColorMode(os.Getenv)
}

// truecolorPrograms report themselves through TERM_PROGRAM and all accept 24-bit SGR
var truecolorPrograms = map[string]bool{
	"iterm.app": true,
	"wezterm":   true,
	"vscode":    true,
	"ghostty":   true,
}

// detectColorMode prefers 256 colors unless the terminal announces RGB support
// Inside tmux or screen only COLORTERM is trusted, since TERM_PROGRAM leaks in from the outer terminal.
func detectColorMode(getenv func(string) string) ColorMode {
	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}

	term := strings.ToLower(getenv("TERM"))
	if strings.HasSuffix(term, "-direct") || strings.Contains(term, "truecolor") {
		return ColorModeTrueColor
	}

	if strings.HasPrefix(term, "screen") || strings.HasPrefix(term, "tmux") {
		return ColorMode256
	}

	if truecolorPrograms[strings.ToLower(getenv("TERM_PROGRAM"))] {
		return ColorModeTrueColor
	}
	return ColorMode256
}
