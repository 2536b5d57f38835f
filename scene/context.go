package scene

// Context is the gameplay state carried between scenes by value
type Context struct {
	Score        uint32
	StartNewGame bool
}

// NewContext returns the context of a fresh game
func NewContext() Context {
	return Context{Score: 0, StartNewGame: true}
}

// Started clears the new-game flag
func (c Context) Started() Context {
	c.StartNewGame = false
	return c
}

// Scored adds one point
func (c Context) Scored() Context {
	c.Score++
	return c
}
