package grid

// Group is a sparse set of cells an entity or widget owns
// Render copies every entry into a matrix, then drops entries that were Empty,
// so an Empty entry erases its matrix cell exactly once.
type Group struct {
	cells map[Position]Cell
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{cells: make(map[Position]Cell)}
}

// SetCell inserts or overwrites the entry at pos
func (g *Group) SetCell(pos Position, c Cell) {
	g.cells[pos] = c
}

// Cell returns the entry at pos
func (g *Group) Cell(pos Position) (Cell, bool) {
	c, ok := g.cells[pos]
	return c, ok
}

// Len returns the number of entries
func (g *Group) Len() int {
	return len(g.cells)
}

// Clear drops every entry without touching any matrix
func (g *Group) Clear() {
	clear(g.cells)
}

// Erase turns every entry into Empty so the next Render blanks them
func (g *Group) Erase() {
	empty := Empty()
	for pos := range g.cells {
		g.cells[pos] = empty
	}
}

// Render writes all entries into m, then prunes the Empty ones
func (g *Group) Render(m *Matrix) {
	for pos, c := range g.cells {
		m.SetCell(pos, c)
	}
	for pos, c := range g.cells {
		if c.Kind == KindEmpty {
			delete(g.cells, pos)
		}
	}
}
