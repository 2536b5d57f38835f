// Package event defines the scene events the game loop hands to the scene manager.
package event

// Type is the outcome of one scene update
type Type int

const (
	// None keeps the current scene
	None Type = iota

	// Start begins a fresh game
	// Trigger: main menu START | Effect: gameplay, score reset
	Start

	// Pause suspends gameplay
	// Trigger: Escape during gameplay | Effect: paused
	Pause

	// Resume returns to the running game
	// Trigger: paused RESUME | Effect: gameplay, state kept
	Resume

	// Restart discards the current game
	// Trigger: paused RESTART, game over RESTART | Effect: gameplay, score reset
	Restart

	// End finishes the game
	// Trigger: collision, paused END | Effect: game_over
	End

	// GoToMenu returns to the title screen
	// Trigger: game over MENU | Effect: main_menu
	GoToMenu

	// Exit quits the process
	// Trigger: main menu EXIT | Effect: loop stops
	Exit
)
