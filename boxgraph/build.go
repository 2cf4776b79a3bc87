// File: build.go
// Role: constructs the box surface graph from (L, H, D).
//
// Layout. Four of the six sub-surfaces form a vertical "spine" that wraps
// fully around the box like a belt: TOP, then FRONT, then BOTTOM, then
// BACK, closing back onto TOP (the top-back seam). The spine is stored as
// one (2D+2H) x L grid, so the three internal seams of the belt
// (top-front, front-bottom, bottom-back) fall out of ordinary row-major
// adjacency with no special-casing. LEFT and RIGHT cap the two ends of
// the belt and are stored as their own H x D grids. The nine remaining
// named seams (top-back, top-left, top-right, bottom-left, bottom-right,
// back-left, back-right, front-left, front-right) are wired explicitly
// below; each was derived from the box's 3D geometry and is reciprocal by
// construction (every call to link sets both endpoints at once).
package boxgraph

// Build constructs the surface adjacency graph of a box of the given
// dimensions. It fails with ErrInvalidDimensions if any dimension is < 1.
func Build(dim Dimensions, opts ...Option) (*Graph, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	g := newLayout(dim)
	g.wireSpineInterior()
	g.wireSideInterior(g.leftOffset)
	g.wireSideInterior(g.rightOffset)
	g.wireSeams()

	graph := &Graph{Dim: dim, Faces: g.faces, Edges: g.edges}

	if cfg.rng != nil {
		graph = randomise(graph, cfg.rng)
	}

	return graph, nil
}

// layout holds the working state of a single Build call: the spine and
// side grids' geometry, plus the faces/edges accumulated so far.
type layout struct {
	dim                     Dimensions
	spineRows, spineCols    int
	leftOffset, rightOffset int
	faces                   []Face
	edges                   []Edge
}

func newLayout(dim Dimensions) *layout {
	spineRows := 2*dim.D + 2*dim.H
	spineCols := dim.L
	spineSize := spineRows * spineCols
	sideSize := dim.H * dim.D

	return &layout{
		dim:         dim,
		spineRows:   spineRows,
		spineCols:   spineCols,
		leftOffset:  spineSize,
		rightOffset: spineSize + sideSize,
		faces:       make([]Face, spineSize+2*sideSize),
		edges:       make([]Edge, 0, dim.Faces()*2),
	}
}

func (g *layout) spineIdx(row, col int) int { return row*g.spineCols + col }
func (g *layout) leftIdx(row, col int) int  { return g.leftOffset + row*g.dim.D + col }
func (g *layout) rightIdx(row, col int) int { return g.rightOffset + row*g.dim.D + col }

// link records that face a's neighbour in direction dirA is face b, and
// face b's neighbour in direction dirB is face a, then appends the
// (a, b) edge. Every physical box edge is linked exactly once.
func (g *layout) link(a, dirA, b, dirB int) {
	g.faces[a].Neighbors[dirA] = b
	g.faces[b].Neighbors[dirB] = a

	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	g.edges = append(g.edges, Edge{A: lo, B: hi})
}

// wireSpineInterior links every in-plane neighbour within the unified
// TOP-FRONT-BOTTOM-BACK belt. This also wires the top-front, front-bottom
// and bottom-back seams, which are simply adjacent rows of the belt.
func (g *layout) wireSpineInterior() {
	for row := 0; row < g.spineRows; row++ {
		for col := 0; col < g.spineCols; col++ {
			idx := g.spineIdx(row, col)
			if col < g.spineCols-1 {
				g.link(idx, Right, g.spineIdx(row, col+1), Left)
			}
			if row < g.spineRows-1 {
				g.link(idx, Down, g.spineIdx(row+1, col), Up)
			}
		}
	}
}

// wireSideInterior links every in-plane neighbour within a LEFT or RIGHT
// H x D grid starting at offset.
func (g *layout) wireSideInterior(offset int) {
	rows, cols := g.dim.H, g.dim.D
	idx := func(row, col int) int { return offset + row*cols + col }

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := idx(row, col)
			if col < cols-1 {
				g.link(i, Right, idx(row, col+1), Left)
			}
			if row < rows-1 {
				g.link(i, Down, idx(row+1, col), Up)
			}
		}
	}
}

// wireSeams links the nine named cross-surface seams. Row offsets into
// the spine for each sub-surface:
//
//	TOP:    rows [0, D)
//	FRONT:  rows [D, D+H)
//	BOTTOM: rows [D+H, 2D+H)
//	BACK:   rows [2D+H, 2D+2H)
func (g *layout) wireSeams() {
	L, H, D := g.dim.L, g.dim.H, g.dim.D
	frontRow := func(r int) int { return D + r }
	bottomRow := func(y int) int { return D + H + y }
	backRow := func(z int) int { return 2*D + H + z }

	// top-back: TOP(row=0,col=x).up <-> BACK(row=last,col=x).down
	for x := 0; x < L; x++ {
		g.link(g.spineIdx(0, x), Up, g.spineIdx(g.spineRows-1, x), Down)
	}

	// top-left: TOP(row=r,col=0).left <-> LEFT(row=0,col=r).up
	for r := 0; r < D; r++ {
		g.link(g.spineIdx(r, 0), Left, g.leftIdx(0, r), Up)
	}

	// top-right: TOP(row=r,col=L-1).right <-> RIGHT(row=0,col=D-1-r).up
	for r := 0; r < D; r++ {
		g.link(g.spineIdx(r, L-1), Right, g.rightIdx(0, D-1-r), Up)
	}

	// bottom-left: BOTTOM(row=y,col=0).left <-> LEFT(row=H-1,col=D-1-y).down
	for y := 0; y < D; y++ {
		g.link(g.spineIdx(bottomRow(y), 0), Left, g.leftIdx(H-1, D-1-y), Down)
	}

	// bottom-right: BOTTOM(row=y,col=L-1).right <-> RIGHT(row=H-1,col=y).down
	for y := 0; y < D; y++ {
		g.link(g.spineIdx(bottomRow(y), L-1), Right, g.rightIdx(H-1, y), Down)
	}

	// back-left: BACK(row=z,col=0).left <-> LEFT(row=H-1-z,col=0).left
	for z := 0; z < H; z++ {
		g.link(g.spineIdx(backRow(z), 0), Left, g.leftIdx(H-1-z, 0), Left)
	}

	// back-right: BACK(row=z,col=L-1).right <-> RIGHT(row=H-1-z,col=D-1).right
	for z := 0; z < H; z++ {
		g.link(g.spineIdx(backRow(z), L-1), Right, g.rightIdx(H-1-z, D-1), Right)
	}

	// front-left: FRONT(row=r,col=0).left <-> LEFT(row=r,col=D-1).right
	for r := 0; r < H; r++ {
		g.link(g.spineIdx(frontRow(r), 0), Left, g.leftIdx(r, D-1), Right)
	}

	// front-right: FRONT(row=r,col=L-1).right <-> RIGHT(row=r,col=0).left
	for r := 0; r < H; r++ {
		g.link(g.spineIdx(frontRow(r), L-1), Right, g.rightIdx(r, 0), Left)
	}
}
