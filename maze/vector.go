package maze

// Vector is a 2D integer position or offset on the grid.
type Vector struct {
	X int // Column
	Y int // Row
}

// Offsets of the four axis-aligned neighbours, in the order they are examined.
var (
	East  = Vector{X: 1, Y: 0}
	West  = Vector{X: -1, Y: 0}
	South = Vector{X: 0, Y: 1}
	North = Vector{X: 0, Y: -1}

	neighbourOffsets = [4]Vector{East, West, South, North}
)

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Manhattan returns the taxicab distance between v and o.
func (v Vector) Manhattan(o Vector) int {
	return abs(v.X-o.X) + abs(v.Y-o.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
