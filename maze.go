package maze3d

import (
	"errors"
	"fmt"
)

// Maze reports which cells of a rectangular grid are walls.
//
// Implementations must treat cells outside the grid as walls.
type Maze interface {
	Rows() int
	Cols() int
	IsWall(row, col int) bool
}

// Grid is a rectangular maze where every cell is either a wall or open floor.
type Grid struct {
	rows, cols int
	cells      []bool // true = wall
}

// NewGrid returns an all-open grid of the given size.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.New("maze3d: grid must have at least one row and one column")
	}
	return &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}, nil
}

// ParseGrid builds a grid from text rows.
// '#' is a wall, '.' or ' ' is open floor. All rows must have the same length.
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, errors.New("maze3d: empty grid")
	}
	g, err := NewGrid(len(lines), len(lines[0]))
	if err != nil {
		return nil, err
	}
	for row, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("maze3d: row %d has %d cells, want %d", row, len(line), g.cols)
		}
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case '#':
				g.cells[row*g.cols+col] = true
			case '.', ' ':
			default:
				return nil, fmt.Errorf("maze3d: invalid cell %q at row %d col %d", line[col], row, col)
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// IsWall reports whether the cell at (row, col) is a wall.
// Cells outside the grid are walls.
func (g *Grid) IsWall(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return true
	}
	return g.cells[row*g.cols+col]
}

// SetWall marks the cell at (row, col) as a wall or as open floor.
// Cells outside the grid are ignored.
func (g *Grid) SetWall(row, col int, wall bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row*g.cols+col] = wall
}

// String renders the grid back into the text form accepted by ParseGrid.
func (g *Grid) String() string {
	b := make([]byte, 0, g.rows*(g.cols+1))
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b = append(b, '\n')
		}
		for col := 0; col < g.cols; col++ {
			if g.cells[row*g.cols+col] {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}

// Heading is the direction the player faces.
// Rows grow towards the south and columns towards the east.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// String returns the compass letter of the heading.
func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
}

// Valid reports whether h is one of the four compass headings.
func (h Heading) Valid() bool {
	return h <= West
}

// Ahead returns the row and column offset of one step forward.
func (h Heading) Ahead() (dRow, dCol int) {
	switch h {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	}
	return 0, 0
}

// Left returns the row and column offset of one step to the left.
func (h Heading) Left() (dRow, dCol int) {
	return ((h + 3) % 4).Ahead()
}

// Right returns the row and column offset of one step to the right.
func (h Heading) Right() (dRow, dCol int) {
	return ((h + 1) % 4).Ahead()
}

// View is the player's pose: the cell they stand in and where they look.
type View struct {
	Row, Col int
	Heading  Heading
}

// Walls describes what is visible in one depth layer.
//
// Front and Back close the layer at its near and far plane. The side walls
// either run along the layer (FrontLeft, FrontRight) or, when the side is
// open, face the player at the far plane (BackLeft, BackRight).
type Walls struct {
	FrontLeft  bool
	Front      bool
	FrontRight bool
	BackLeft   bool
	Back       bool
	BackRight  bool
}

// Blocked reports whether nothing behind this layer can be seen.
func (w Walls) Blocked() bool {
	return w.Front || w.Back
}

// Look returns the walls around the cell at (row, col) seen while facing h.
func Look(m Maze, row, col int, h Heading) Walls {
	if !h.Valid() {
		return Walls{}
	}
	ar, ac := h.Ahead()
	lr, lc := h.Left()
	rr, rc := h.Right()
	return Walls{
		Front:      m.IsWall(row, col),
		Back:       m.IsWall(row+ar, col+ac),
		FrontLeft:  m.IsWall(row+lr, col+lc),
		BackLeft:   m.IsWall(row+lr+ar, col+lc+ac),
		FrontRight: m.IsWall(row+rr, col+rc),
		BackRight:  m.IsWall(row+rr+ar, col+rc+ac),
	}
}
