package grid

// NewGraph constructs a Graph from a rectangular matrix of free/obstacle
// flags. free[y][x] == true means the cell at (x,y) is traversable.
// Returns ErrEmptyGrid if free has no rows or no columns, and
// ErrNonRectangular if row lengths differ. Node ids are assigned in
// row-major order (y, then x) over traversable cells only, so ids stay
// dense even when a map has obstacles.
//
// Complexity: O(W x H) time and memory.
func NewGraph(free [][]bool) (*Graph, error) {
	if len(free) == 0 || len(free[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(free), len(free[0])
	for _, row := range free {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Graph{
		Width:  w,
		Height: h,
		byPos:  make([][]*Node, h),
	}
	for y := range g.byPos {
		g.byPos[y] = make([]*Node, w)
	}

	// First pass: allocate a dense-id Node per traversable cell.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !free[y][x] {
				continue
			}
			n := &Node{ID: len(g.Nodes), X: x, Y: y}
			g.Nodes = append(g.Nodes, n)
			g.byPos[y][x] = n
		}
	}

	// Second pass: wire the symmetric 4-connected neighbour relation.
	// Both endpoints of a shared edge are traversable nodes already
	// allocated above, so this never needs to revisit node creation.
	for _, n := range g.Nodes {
		for _, d := range cardinalOffsets {
			nx, ny := n.X+d[0], n.Y+d[1]
			if nb, ok := g.GetNode(nx, ny); ok {
				n.neighbours = append(n.neighbours, nb)
			}
		}
	}

	return g, nil
}
