package event

var typeToName = map[Type]string{
	None:     "none",
	Start:    "start",
	Pause:    "pause",
	Resume:   "resume",
	Restart:  "restart",
	End:      "end",
	GoToMenu: "go_to_menu",
	Exit:     "exit",
}

// String returns the canonical event name
func (t Type) String() string {
	if n, ok := typeToName[t]; ok {
		return n
	}
	return "unknown"
}
