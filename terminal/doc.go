// Package terminal provides direct ANSI terminal control for the game loop.
//
// Features:
//   - Raw mode via golang.org/x/term, input polling via golang.org/x/sys/unix
//   - True color (24-bit) and 256-color palette output
//   - Positioned cell writes through a buffered writer
//   - Non-blocking key reads fed by a background reader goroutine
//   - Alternative tcell-backed implementation (Screen)
//   - Clean terminal restoration on exit/panic
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
