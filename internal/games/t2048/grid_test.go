package t2048

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

// scriptedSource replays a fixed sequence of numbers, then repeats the last one.
type scriptedSource struct {
	values []float64
	next   int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[min(s.next, len(s.values)-1)]
	s.next++
	return v
}

// gridFromRows builds a grid with exact contents, bypassing initial spawns.
func gridFromRows(rows [][]int, src RandomSource) *Grid {
	h := len(rows)
	w := len(rows[0])
	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]int, w*h),
		rules:  DefaultRules(),
		rng:    src,
	}
	for y, row := range rows {
		copy(g.cells[y*w:(y+1)*w], row)
	}
	g.IsTerminal()
	return g
}

func seeded(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// assertAfterSpawn checks the grid equals want except for exactly one cell
// that was empty in want and now holds a spawn value.
func assertAfterSpawn(t *testing.T, g *Grid, want [][]int) {
	t.Helper()
	spawned := 0
	for y, row := range want {
		for x, w := range row {
			got := g.CellValue(x, y)
			if got == w {
				continue
			}
			if w == 0 && slices.Contains(g.rules.SpawnValues, got) {
				spawned++
				continue
			}
			t.Errorf("cell (%d, %d) = %d, want %d", x, y, got, w)
		}
	}
	if spawned != 1 {
		t.Errorf("expected exactly one spawned tile, found %d\ngrid: %v", spawned, g.Values())
	}
}

func countTiles(values []int) int {
	n := 0
	for _, v := range values {
		if v != 0 {
			n++
		}
	}
	return n
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
		changed  bool
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    2,
			changed:  true,
		},
		{
			name:     "three equal tiles merge only the leading pair",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    2,
			changed:  true,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "merged tile does not merge again",
			input:    []int{4, 4, 8, 0},
			expected: []int{8, 8, 0, 0},
			score:    4,
			changed:  true,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
			changed:  false,
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
			score:    2,
			changed:  true,
		},
		{
			name:     "merge across gap",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			score:    2,
			changed:  true,
		},
		{
			name:     "unequal tiles close a gap",
			input:    []int{2, 0, 4, 0},
			expected: []int{2, 4, 0, 0},
			score:    0,
			changed:  true,
		},
		{
			name:     "trailing pair merges after slide",
			input:    []int{4, 0, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    2,
			changed:  true,
		},
		{
			name:     "already compact",
			input:    []int{4, 2, 0, 0},
			expected: []int{4, 2, 0, 0},
			score:    0,
			changed:  false,
		},
		{
			name:     "empty line",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
			changed:  false,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
			changed:  true,
		},
		{
			name:     "two cell line",
			input:    []int{8, 8},
			expected: []int{16, 0},
			score:    8,
			changed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := slices.Clone(tt.input)
			line := make([]int, len(cells))
			for i := range line {
				line[i] = i
			}

			changed, score := slideLine(cells, line)
			if !slices.Equal(cells, tt.expected) {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, cells, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if changed != tt.changed {
				t.Errorf("slideLine(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
		})
	}
}

func TestMoveDirections(t *testing.T) {
	board := [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected [][]int
		score    int
	}{
		{
			dir: DirLeft,
			expected: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 2 + 4 + 2 + 2,
		},
		{
			dir: DirRight,
			expected: [][]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 2 + 4 + 2 + 2,
		},
		{
			dir: DirUp,
			expected: [][]int{
				{2, 4, 4, 4},
				{4, 0, 2, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 2 + 2,
		},
		{
			dir: DirDown,
			expected: [][]int{
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 4, 0},
				{2, 4, 2, 4},
			},
			score: 2 + 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			g := gridFromRows(board, seeded(7))

			if !g.Move(tt.dir) {
				t.Fatalf("Move(%v) should report a change", tt.dir)
			}
			assertAfterSpawn(t, g, tt.expected)
			if g.Score() != tt.score {
				t.Errorf("Move(%v) score = %d, want %d", tt.dir, g.Score(), tt.score)
			}
			if g.Moves() != 1 {
				t.Errorf("Moves() = %d, want 1", g.Moves())
			}
		})
	}
}

func TestMoveTwoByTwoMergesRowPairs(t *testing.T) {
	g := gridFromRows([][]int{
		{2, 2},
		{4, 4},
	}, seeded(1))

	if !g.Move(DirLeft) {
		t.Fatal("Move(Left) should merge both rows")
	}

	assertAfterSpawn(t, g, [][]int{
		{4, 0},
		{8, 0},
	})
	if g.Score() != 6 {
		t.Errorf("Score() = %d, want 6", g.Score())
	}
}

func TestMoveSlidesWithoutMerging(t *testing.T) {
	g := gridFromRows([][]int{
		{2, 4, 0},
		{0, 0, 0},
	}, seeded(3))

	if !g.Move(DirRight) {
		t.Fatal("Move(Right) should slide distinct tiles")
	}

	assertAfterSpawn(t, g, [][]int{
		{0, 2, 4},
		{0, 0, 0},
	})
	if g.Score() != 0 {
		t.Errorf("Score() = %d, want 0", g.Score())
	}
}

func TestThreeEqualTilesNeverProduceEight(t *testing.T) {
	g := gridFromRows([][]int{
		{2, 2, 2, 0},
		{0, 0, 0, 0},
	}, seeded(5))

	g.Move(DirLeft)

	if g.CellValue(0, 0) != 4 || g.CellValue(1, 0) != 2 {
		t.Errorf("row 0 = [%d %d %d %d], want [4 2 _ _]",
			g.CellValue(0, 0), g.CellValue(1, 0), g.CellValue(2, 0), g.CellValue(3, 0))
	}
	if g.Score() != 2 {
		t.Errorf("Score() = %d, want 2", g.Score())
	}
}

func TestPackedBoardIsTerminal(t *testing.T) {
	g := gridFromRows([][]int{
		{2, 4},
		{4, 2},
	}, seeded(9))

	if !g.IsTerminal() {
		t.Fatal("alternating packed board should be terminal")
	}

	before := g.Values()
	for _, dir := range Directions() {
		if g.Move(dir) {
			t.Errorf("Move(%v) on terminal board should return false", dir)
		}
		if !g.Blocked(dir) {
			t.Errorf("Move(%v) should mark the direction blocked", dir)
		}
	}
	if !slices.Equal(g.Values(), before) {
		t.Errorf("terminal board changed: %v -> %v", before, g.Values())
	}
	if g.Score() != 0 || g.Moves() != 0 {
		t.Errorf("terminal board should keep score/moves, got %d/%d", g.Score(), g.Moves())
	}
}

func TestBlockedDirectionIsIdempotent(t *testing.T) {
	g := gridFromRows([][]int{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, seeded(11))

	before := g.Values()
	if g.Move(DirLeft) {
		t.Fatal("Move(Left) on left-aligned board should return false")
	}
	if !g.Blocked(DirLeft) {
		t.Error("Left should be blocked after a no-op move")
	}
	if g.Move(DirLeft) {
		t.Error("second Move(Left) should also return false")
	}
	if !slices.Equal(g.Values(), before) {
		t.Errorf("no-op moves mutated the board: %v -> %v", before, g.Values())
	}
	if countTiles(g.Values()) != 3 {
		t.Error("no-op moves must not spawn")
	}

	if !g.Move(DirRight) {
		t.Fatal("Move(Right) should succeed")
	}
	for _, dir := range Directions() {
		if g.Blocked(dir) {
			t.Errorf("successful move should clear blocked flag for %v", dir)
		}
	}
}

func TestCanMoveDoesNotMutate(t *testing.T) {
	g := gridFromRows([][]int{
		{2, 2, 0},
		{0, 4, 0},
	}, seeded(13))

	before := g.Values()
	if !g.CanMove(DirLeft) {
		t.Error("CanMove(Left) should be true")
	}
	if !g.CanMove(DirDown) {
		t.Error("CanMove(Down) should be true")
	}
	if g.CanMove(Direction(42)) {
		t.Error("CanMove on invalid direction should be false")
	}
	if !slices.Equal(g.Values(), before) {
		t.Errorf("CanMove mutated the board: %v -> %v", before, g.Values())
	}
	if g.Score() != 0 {
		t.Error("CanMove must not change the score")
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]int
		terminal bool
	}{
		{
			name: "one empty cell",
			rows: [][]int{
				{2, 4, 8},
				{4, 8, 2},
				{8, 2, 0},
			},
			terminal: false,
		},
		{
			name: "packed without pairs",
			rows: [][]int{
				{2, 4, 8},
				{4, 8, 2},
				{8, 2, 4},
			},
			terminal: true,
		},
		{
			name: "packed with horizontal pair",
			rows: [][]int{
				{2, 4, 8},
				{4, 8, 2},
				{8, 4, 4},
			},
			terminal: false,
		},
		{
			name: "packed with vertical pair",
			rows: [][]int{
				{2, 4, 8},
				{4, 8, 2},
				{8, 2, 2},
			},
			terminal: false,
		},
		{
			name: "wide board with pair in last column",
			rows: [][]int{
				{2, 4, 2, 4, 16},
				{4, 2, 4, 2, 16},
			},
			terminal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromRows(tt.rows, seeded(1))
			if got := g.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
			if g.Terminal() != tt.terminal {
				t.Errorf("Terminal() cache = %v, want %v", g.Terminal(), tt.terminal)
			}
		})
	}
}

func TestSpawnTile(t *testing.T) {
	t.Run("full grid is a no-op", func(t *testing.T) {
		g := gridFromRows([][]int{
			{2, 4},
			{4, 2},
		}, seeded(1))
		before := g.Values()

		if g.spawnTile() {
			t.Error("spawnTile() on full grid should return false")
		}
		if !slices.Equal(g.Values(), before) {
			t.Error("spawnTile() on full grid must not change cells")
		}
	})

	t.Run("fills the only empty cell", func(t *testing.T) {
		g := gridFromRows([][]int{
			{2, 4},
			{0, 2},
		}, seeded(2))

		if !g.spawnTile() {
			t.Fatal("spawnTile() should succeed")
		}
		if v := g.CellValue(0, 1); !slices.Contains([]int{2, 4, 8}, v) {
			t.Errorf("spawned value = %d, want one of 2, 4, 8", v)
		}
	})

	t.Run("scripted source picks value", func(t *testing.T) {
		// Four shuffle draws, then 0.99 selects the last spawn value.
		src := &scriptedSource{values: []float64{0, 0, 0, 0, 0.99}}
		g := gridFromRows([][]int{
			{0, 0},
			{0, 0},
		}, src)

		g.spawnTile()
		if g.MaxTile() != 8 {
			t.Errorf("spawned value = %d, want 8", g.MaxTile())
		}
		if g.EmptyCount() != 3 {
			t.Errorf("EmptyCount() = %d, want 3", g.EmptyCount())
		}
	})
}

func TestSpawnIsUniformOverEmptyCells(t *testing.T) {
	rng := seeded(99)
	hits := make(map[int]int)
	const rounds = 6000

	for range rounds {
		g := gridFromRows([][]int{
			{2, 0, 4},
			{0, 8, 0},
		}, rng)
		g.spawnTile()
		for i, v := range g.Values() {
			if i != 0 && i != 2 && i != 4 && v != 0 {
				hits[i]++
			}
		}
	}

	if len(hits) != 3 {
		t.Fatalf("expected spawns in 3 distinct cells, got %v", hits)
	}
	for idx, n := range hits {
		if n < rounds/3-300 || n > rounds/3+300 {
			t.Errorf("cell %d hit %d times, expected about %d", idx, n, rounds/3)
		}
	}
}

func TestNewGridInitialTiles(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		g := NewGrid(4, 4, WithRandom(seeded(seed)))

		tiles := countTiles(g.Values())
		if tiles < 2 || tiles > 4 {
			t.Fatalf("seed %d: %d initial tiles, want 2-4", seed, tiles)
		}
		for _, v := range g.Values() {
			if v != 0 && v != 2 && v != 4 && v != 8 {
				t.Fatalf("seed %d: initial value %d not in {2,4,8}", seed, v)
			}
		}
		if g.Score() != 0 || g.Moves() != 0 {
			t.Fatalf("seed %d: fresh grid should have zero score and moves", seed)
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{4, 4, 4, 4},
		{2, 32, 2, 32},
		{1, 100, 4, 32},
		{0, -5, 4, 4},
		{33, 3, 32, 3},
	}

	for _, tt := range tests {
		g := NewGrid(tt.w, tt.h, WithRandom(seeded(1)))
		if g.Width() != tt.wantW || g.Height() != tt.wantH {
			t.Errorf("NewGrid(%d, %d) = %dx%d, want %dx%d", tt.w, tt.h, g.Width(), g.Height(), tt.wantW, tt.wantH)
		}
		if len(g.Values()) != tt.wantW*tt.wantH {
			t.Errorf("NewGrid(%d, %d) has %d cells", tt.w, tt.h, len(g.Values()))
		}
	}
}

func TestInitializeResetsState(t *testing.T) {
	g := gridFromRows([][]int{
		{2, 2, 0},
		{0, 0, 0},
	}, seeded(21))
	g.Move(DirLeft)
	g.Move(DirLeft)

	g.Initialize(5, 3)

	if g.Width() != 5 || g.Height() != 3 {
		t.Errorf("Initialize(5, 3) = %dx%d", g.Width(), g.Height())
	}
	if g.Score() != 0 || g.Moves() != 0 {
		t.Errorf("Initialize should reset score/moves, got %d/%d", g.Score(), g.Moves())
	}
	for _, dir := range Directions() {
		if g.Blocked(dir) {
			t.Errorf("Initialize should clear blocked flag for %v", dir)
		}
	}
}

func TestTwoByTwoTerminalAtBirth(t *testing.T) {
	sawTerminal := false
	for seed := int64(1); seed <= 2000; seed++ {
		g := NewGrid(2, 2, WithRandom(seeded(seed)))

		anyMove := false
		for _, dir := range Directions() {
			if g.CanMove(dir) {
				anyMove = true
			}
		}
		if g.Terminal() == anyMove {
			t.Fatalf("seed %d: Terminal() = %v but CanMove in some direction = %v (%v)",
				seed, g.Terminal(), anyMove, g.Values())
		}
		if g.Terminal() {
			sawTerminal = true
		}
	}
	if !sawTerminal {
		t.Error("expected at least one 2x2 board to be terminal right after initialization")
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	sizes := []struct{ w, h int }{{4, 4}, {3, 5}, {2, 2}, {6, 2}}

	for _, size := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			rng := seeded(seed * 31)
			g := NewGrid(size.w, size.h, WithRandom(seeded(seed)))

			for step := 0; step < 400 && !g.Terminal(); step++ {
				dir := Directions()[randInt(rng, directionCount)]
				before := g.Values()
				scoreBefore := g.Score()

				changed := g.Move(dir)
				after := g.Values()

				if g.Score() < scoreBefore {
					t.Fatalf("score decreased from %d to %d", scoreBefore, g.Score())
				}
				if !changed {
					if !slices.Equal(before, after) || g.Score() != scoreBefore {
						t.Fatalf("failed move mutated state")
					}
					continue
				}

				if countTiles(after) > countTiles(before)+1 {
					t.Fatalf("tile count grew by more than one: %d -> %d", countTiles(before), countTiles(after))
				}
				if spawned := sum(after) - sum(before); !slices.Contains(DefaultRules().SpawnValues, spawned) {
					t.Fatalf("merges must preserve the board sum; delta %d is not a spawn value", spawned)
				}
				for _, v := range after {
					if v != 0 && !isTileValue(v) {
						t.Fatalf("illegal tile value %d", v)
					}
				}

				anyMove := false
				for _, d := range Directions() {
					anyMove = anyMove || g.CanMove(d)
				}
				if g.Terminal() == anyMove {
					t.Fatalf("Terminal() = %v disagrees with CanMove = %v", g.Terminal(), anyMove)
				}
			}

			if g.Terminal() {
				for _, dir := range Directions() {
					if g.Move(dir) {
						t.Fatalf("Move(%v) after terminal should return false", dir)
					}
				}
			}
		}
	}
}

func TestDeterministicGrid(t *testing.T) {
	g1 := NewGrid(5, 4, WithRandom(seeded(12345)))
	g2 := NewGrid(5, 4, WithRandom(seeded(12345)))

	for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft} {
		g1.Move(dir)
		g2.Move(dir)
	}

	if !slices.Equal(g1.Values(), g2.Values()) {
		t.Errorf("same seed should produce same board:\n%v\nvs\n%v", g1.Values(), g2.Values())
	}
	if g1.Score() != g2.Score() {
		t.Errorf("same seed should produce same score: %d vs %d", g1.Score(), g2.Score())
	}
}

func TestMoveInvalidDirectionPanics(t *testing.T) {
	g := NewGrid(4, 4, WithRandom(seeded(1)))

	defer func() {
		if recover() == nil {
			t.Error("Move with invalid direction should panic")
		}
	}()
	g.Move(Direction(-1))
}

func TestWithRules(t *testing.T) {
	rules := Rules{SpawnValues: []int{2}, InitialMin: 1, InitialMax: 1}
	g := NewGrid(3, 3, WithRandom(seeded(4)), WithRules(rules))

	if countTiles(g.Values()) != 1 {
		t.Errorf("expected exactly 1 initial tile, got %d", countTiles(g.Values()))
	}
	for range 5 {
		for _, dir := range Directions() {
			g.Move(dir)
		}
	}
	for _, v := range g.Values() {
		if v != 0 && v != 2 && v != 4 && v != 8 && v != 16 && v != 32 {
			t.Errorf("unexpected value %d with spawn values [2]", v)
		}
	}

	rules.SpawnValues[0] = 1024
	if g.rules.SpawnValues[0] != 2 {
		t.Error("WithRules should copy spawn values")
	}

	bad := NewGrid(3, 3, WithRandom(seeded(4)), WithRules(Rules{SpawnValues: []int{3}}))
	if !slices.Equal(bad.rules.SpawnValues, DefaultRules().SpawnValues) {
		t.Error("invalid rules should fall back to defaults")
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
		ok    bool
	}{
		{"defaults", DefaultRules(), true},
		{"single value", Rules{SpawnValues: []int{4}, InitialMin: 1, InitialMax: 1}, true},
		{"no initial tiles", Rules{SpawnValues: []int{2}, InitialMin: 0, InitialMax: 0}, false},
		{"no values", Rules{InitialMin: 1, InitialMax: 2}, false},
		{"value one", Rules{SpawnValues: []int{1}, InitialMin: 1, InitialMax: 2}, false},
		{"not power of two", Rules{SpawnValues: []int{2, 6}, InitialMin: 1, InitialMax: 2}, false},
		{"inverted range", Rules{SpawnValues: []int{2}, InitialMin: 3, InitialMax: 2}, false},
		{"negative min", Rules{SpawnValues: []int{2}, InitialMin: -1, InitialMax: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidRules) {
				t.Errorf("Validate() = %v, want ErrInvalidRules", err)
			}
		})
	}
}

func TestRandInt(t *testing.T) {
	if got := randInt(&scriptedSource{values: []float64{1.0}}, 3); got != 2 {
		t.Errorf("randInt with 1.0 = %d, want 2", got)
	}
	if got := randInt(&scriptedSource{values: []float64{0.5}}, 3); got != 1 {
		t.Errorf("randInt with 0.5 = %d, want 1", got)
	}
	if got := randInt(&scriptedSource{values: []float64{0.5}}, 0); got != 0 {
		t.Errorf("randInt with n=0 = %d, want 0", got)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7}
	shuffle(seeded(8), values)

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []int{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("shuffle lost or duplicated values: %v", values)
	}
}

func TestCellValueOutOfRange(t *testing.T) {
	g := gridFromRows([][]int{
		{2, 4},
		{8, 16},
	}, seeded(1))

	if g.CellValue(1, 1) != 16 {
		t.Errorf("CellValue(1, 1) = %d, want 16", g.CellValue(1, 1))
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if v := g.CellValue(p[0], p[1]); v != 0 {
			t.Errorf("CellValue(%d, %d) = %d, want 0", p[0], p[1], v)
		}
	}
}
