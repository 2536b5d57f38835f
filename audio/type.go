// Package audio synthesizes the game's sound effects with beep and plays them
// through the system speaker, falling back to silence when no device is available.
package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundFruit  SoundType = iota // Fruit eaten
	SoundCrash                   // Snake hit a wall or itself
	SoundSelect                  // Menu selection moved or confirmed
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundFruit:  "fruit",
	SoundCrash:  "crash",
	SoundSelect: "select",
}

// String returns the name used for per-effect volume keys
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Player plays sound effects; Play reports whether the sound was queued
type Player interface {
	Play(SoundType) bool
}

// Nop is a Player that stays silent
type Nop struct{}

func (Nop) Play(SoundType) bool { return false }
