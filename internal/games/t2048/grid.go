package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Grid is the 2048 simulation state for a W x H board.
// Cells are stored row-major; (x, y) lives at index y*width+x and 0 means empty.
type Grid struct {
	width    int
	height   int
	cells    []int
	score    int
	moves    int
	terminal bool
	blocked  [directionCount]bool
	rules    Rules
	rng      RandomSource
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithRandom injects the random source used for spawning.
func WithRandom(src RandomSource) Option {
	return func(g *Grid) {
		g.rng = src
	}
}

// WithRules overrides the spawn rules. Invalid rules are ignored.
func WithRules(r Rules) Option {
	return func(g *Grid) {
		if r.Validate() == nil {
			r.SpawnValues = append([]int(nil), r.SpawnValues...)
			g.rules = r
		}
	}
}

// NewGrid creates a grid and seeds it with its initial tiles.
func NewGrid(width, height int, opts ...Option) *Grid {
	g := &Grid{rules: DefaultRules()}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewSeededSource(0)
	}
	g.Initialize(width, height)
	return g
}

// Initialize rebuilds the grid at the given size and places the starting tiles.
// Dimensions are clamped to the legal range, so any integer is accepted.
func (g *Grid) Initialize(width, height int) {
	g.width = core.ClampBoardDimension(width)
	g.height = core.ClampBoardDimension(height)
	g.cells = make([]int, g.width*g.height)
	g.score = 0
	g.moves = 0
	g.terminal = false
	g.clearBlocked()

	count := g.rules.InitialMin + randInt(g.rng, g.rules.InitialMax-g.rules.InitialMin+1)
	for range count {
		g.spawnTile()
	}

	g.IsTerminal()
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Score returns the accumulated merge score.
func (g *Grid) Score() int {
	return g.score
}

// Moves returns the number of successful moves since initialization.
func (g *Grid) Moves() int {
	return g.moves
}

// Terminal returns the cached terminal flag without recomputing it.
func (g *Grid) Terminal() bool {
	return g.terminal
}

// Blocked reports whether dir is known to produce no change.
func (g *Grid) Blocked(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	return g.blocked[dir]
}

// CellValue returns the value at (x, y), or 0 for out-of-range coordinates.
func (g *Grid) CellValue(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.cells[y*g.width+x]
}

// Values returns a row-major copy of all cell values.
func (g *Grid) Values() []int {
	return append([]int(nil), g.cells...)
}

// MaxTile returns the highest value on the board.
func (g *Grid) MaxTile() int {
	best := 0
	for _, v := range g.cells {
		best = max(best, v)
	}
	return best
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, v := range g.cells {
		if v == 0 {
			n++
		}
	}
	return n
}

// Move slides and merges every row or column toward dir.
// Returns true if any tile moved or merged; in that case one tile is spawned
// and the terminal flag is recomputed. A move that changes nothing marks dir
// as blocked until some other move succeeds.
// Passing an invalid direction is a programming error and panics.
func (g *Grid) Move(dir Direction) bool {
	if !dir.Valid() {
		panic(fmt.Sprintf("t2048: Move called with %v", dir))
	}

	if g.blocked[dir] {
		return false
	}

	changed := false
	gained := 0
	for _, line := range g.lines(dir) {
		lineChanged, lineScore := slideLine(g.cells, line)
		changed = changed || lineChanged
		gained += lineScore
	}

	if !changed {
		g.blocked[dir] = true
		return false
	}

	g.clearBlocked()
	g.score += gained
	g.moves++
	g.spawnTile()
	g.IsTerminal()
	return true
}

// CanMove reports whether a move toward dir would change the board.
// It works on a scratch copy and never mutates the grid.
func (g *Grid) CanMove(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	scratch := g.Values()
	for _, line := range g.lines(dir) {
		if changed, _ := slideLine(scratch, line); changed {
			return true
		}
	}
	return false
}

// IsTerminal recomputes and caches whether no legal move remains:
// the board is full and no two orthogonal neighbours share a value.
func (g *Grid) IsTerminal() bool {
	g.terminal = false
	for y := range g.height {
		for x := range g.width {
			v := g.cells[y*g.width+x]
			if v == 0 {
				return false
			}
			// Right and down neighbours cover every adjacent pair once.
			if x < g.width-1 && g.cells[y*g.width+x+1] == v {
				return false
			}
			if y < g.height-1 && g.cells[(y+1)*g.width+x] == v {
				return false
			}
		}
	}
	g.terminal = true
	return true
}

// spawnTile places one random spawn value on a uniformly chosen empty cell.
// Returns false, leaving the grid untouched, when no cell is empty.
func (g *Grid) spawnTile() bool {
	order := make([]int, len(g.cells))
	for i := range order {
		order[i] = i
	}
	shuffle(g.rng, order)

	value := g.rules.SpawnValues[randInt(g.rng, len(g.rules.SpawnValues))]
	for _, idx := range order {
		if g.cells[idx] == 0 {
			g.cells[idx] = value
			return true
		}
	}
	return false
}

func (g *Grid) clearBlocked() {
	g.blocked = [directionCount]bool{}
}

// lines returns, for each row or column, the cell indices ordered from the
// edge tiles move toward (leading) to the opposite edge (trailing).
func (g *Grid) lines(dir Direction) [][]int {
	var lines [][]int
	switch dir {
	case DirLeft, DirRight:
		lines = make([][]int, g.height)
		for y := range g.height {
			line := make([]int, g.width)
			for i := range g.width {
				x := i
				if dir == DirRight {
					x = g.width - 1 - i
				}
				line[i] = y*g.width + x
			}
			lines[y] = line
		}
	case DirUp, DirDown:
		lines = make([][]int, g.width)
		for x := range g.width {
			line := make([]int, g.height)
			for i := range g.height {
				y := i
				if dir == DirDown {
					y = g.height - 1 - i
				}
				line[i] = y*g.width + x
			}
			lines[x] = line
		}
	}
	return lines
}

// slideLine compacts and merges one line of cells in place.
// line lists indices into cells from the leading edge to the trailing edge.
// Each merge adds the value of the absorbed tile to the returned score,
// and a tile produced by a merge never merges again in the same pass.
func slideLine(cells []int, line []int) (changed bool, score int) {
	cur, next := 0, 1
	for next < len(line) {
		curVal := cells[line[cur]]
		nextVal := cells[line[next]]

		switch {
		case curVal == 0:
			if nextVal != 0 {
				cells[line[cur]] = nextVal
				cells[line[next]] = 0
				changed = true
			}
			next++
			continue
		case nextVal == 0:
			next++
			continue
		case curVal == nextVal:
			cells[line[cur]] = curVal + nextVal
			cells[line[next]] = 0
			score += nextVal
			changed = true
		}

		cur++
		if cur == next {
			next++
		}
	}
	return changed, score
}
