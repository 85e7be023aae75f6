package entities

// Room is an axis-aligned rectangle of floor in grid units.
// X and Y are the top-left corner.
type Room struct {
	ID     int
	X      int
	Y      int
	Width  int
	Height int

	// Items dropped in this room, in creation order
	Items []Item
}

// NewRoom creates a room with no items
func NewRoom(id, x, y, width, height int) Room {
	return Room{ID: id, X: x, Y: y, Width: width, Height: height}
}

// Right returns x + width
func (r Room) Right() int {
	return r.X + r.Width
}

// Bottom returns y + height
func (r Room) Bottom() int {
	return r.Y + r.Height
}

// Overlaps tests the two bounding boxes with inclusive comparisons on all four edges,
// so rooms that merely touch count as overlapping.
func (r Room) Overlaps(other Room) bool {
	return r.X <= other.Right() &&
		r.Right() >= other.X &&
		r.Y <= other.Bottom() &&
		r.Bottom() >= other.Y
}
