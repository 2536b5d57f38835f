// Package ui provides the text widgets drawn on scenes: aligned text boxes,
// buttons and a vertical button selector.
package ui

// Anchor picks the reference point of the drawing area a widget aligns to
type Anchor uint8

const (
	TopLeft Anchor = iota
	Top
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	Bottom
	BottomRight
)

// Offset is a signed displacement from the anchored position
type Offset struct {
	X, Y int
}

// place returns the top-left corner of a w x h box anchored inside an areaW x areaH area
func place(anchor Anchor, off Offset, w, h, areaW, areaH int) (int, int) {
	var x, y int

	switch anchor {
	case Top, Center, Bottom:
		x = (areaW - w) / 2
	case TopRight, CenterRight, BottomRight:
		x = areaW - w
	}

	switch anchor {
	case CenterLeft, Center, CenterRight:
		y = (areaH - h) / 2
	case BottomLeft, Bottom, BottomRight:
		y = areaH - h
	}

	return x + off.X, y + off.Y
}
