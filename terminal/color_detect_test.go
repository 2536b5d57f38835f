package terminal

import "testing"

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"nothing set", nil, ColorMode256},
		{"colorterm truecolor", map[string]string{"COLORTERM": "truecolor"}, ColorModeTrueColor},
		{"colorterm 24bit upper", map[string]string{"COLORTERM": "24BIT"}, ColorModeTrueColor},
		{"direct terminfo", map[string]string{"TERM": "xterm-direct"}, ColorModeTrueColor},
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, ColorMode256},
		{"known program", map[string]string{"TERM": "xterm-256color", "TERM_PROGRAM": "WezTerm"}, ColorModeTrueColor},
		{"tmux ignores outer program", map[string]string{"TERM": "tmux-256color", "TERM_PROGRAM": "iTerm.app"}, ColorMode256},
		{"tmux with colorterm", map[string]string{"TERM": "screen-256color", "COLORTERM": "truecolor"}, ColorModeTrueColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectColorMode(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
