package maze

// Cell is a single grid position together with the direction of the cell it
// was carved from.
type Cell struct {
	Position  Vector // Grid coordinates, fixed at creation
	Direction Vector // Offset to the parent cell; zero while unconnected
}

// Parent returns the position this cell was carved from. For an unconnected
// cell it is the cell's own position.
func (c Cell) Parent() Vector {
	return c.Position.Add(c.Direction)
}

// Connected reports whether the cell has been carved from a neighbour.
func (c Cell) Connected() bool {
	return !c.Direction.IsZero()
}
