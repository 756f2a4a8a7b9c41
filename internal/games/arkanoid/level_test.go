package arkanoid

import (
	"testing"

	"github.com/vovakirdan/arkanoid/internal/config"
)

func TestCatalogBrickCounts(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()
	c := NewCatalog(1000, cfg)

	if c.Count() != 3 {
		t.Fatalf("Count() = %d, expected 3", c.Count())
	}

	tests := []struct {
		index    int
		expected int
	}{
		// 6 full rows of 10 + 5 odd rows with 2 side bricks
		{1, 6*10 + 5*2},
		// 6 even rows with 6 bricks + 5 odd rows with 5
		{2, 6*6 + 5*5},
		{3, 100},
	}

	for _, tc := range tests {
		level, ok := c.Level(tc.index)
		if !ok {
			t.Fatalf("Level(%d) missing", tc.index)
		}
		if level.Remaining() != tc.expected {
			t.Errorf("Level(%d).Remaining() = %d, expected %d", tc.index, level.Remaining(), tc.expected)
		}
		if level.Index != tc.index {
			t.Errorf("Level(%d).Index = %d", tc.index, level.Index)
		}
	}
}

func TestCatalogOutOfRange(t *testing.T) {
	c := NewCatalog(1000, config.DefaultArkanoidConfig())

	if _, ok := c.Level(0); ok {
		t.Error("Level(0) should not exist (indices start at 1)")
	}
	if _, ok := c.Level(4); ok {
		t.Error("Level(4) should not exist")
	}
}

func TestBuildLevelPlacement(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()
	level := BuildLevel(3, BuiltinLayouts()[2], 1000, cfg)

	minX, maxX := 1e9, -1e9
	minY := 1e9
	for b := range level.Bricks.Values() {
		minX = min(minX, b.Rect.Left())
		maxX = max(maxX, b.Rect.Right())
		minY = min(minY, b.Rect.Top())

		if b.Rect.W != 90 || b.Rect.H != 20 {
			t.Fatalf("brick size = %vx%v, expected 90x20", b.Rect.W, b.Rect.H)
		}
	}

	// 10 columns of 90 in a 1000 wide field leave 50 on each side
	if minX != 50 || maxX != 950 {
		t.Errorf("bricks span [%v, %v], expected [50, 950]", minX, maxX)
	}
	if minY != 100 {
		t.Errorf("first row at %v, expected 100", minY)
	}
}

func TestBuildLevelNoOverlap(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()
	for i, layout := range BuiltinLayouts() {
		level := BuildLevel(i+1, layout, 1000, cfg)

		seen := make(map[[2]float64]bool)
		for b := range level.Bricks.Values() {
			key := [2]float64{b.Rect.X, b.Rect.Y}
			if seen[key] {
				t.Errorf("level %s has two bricks at %v", layout.ID, key)
			}
			seen[key] = true

			if b.Rect.Left() < 0 || b.Rect.Right() > 1000 {
				t.Errorf("level %s brick outside field: %+v", layout.ID, b.Rect)
			}
		}
	}
}

func TestMinFieldWidth(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()
	if got := MinFieldWidth(cfg); got != 990 {
		t.Errorf("MinFieldWidth() = %v, expected 990 (11 columns)", got)
	}

	cfg.Layout.GapX = 5
	if got := MinFieldWidth(cfg); got != 990+50 {
		t.Errorf("MinFieldWidth() with gaps = %v, expected 1040", got)
	}
}

func TestMinFieldHeight(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()

	// Block level ends at 300, then four balls and the paddle
	if got := MinFieldHeight(cfg); got != 300+4*32+30 {
		t.Errorf("MinFieldHeight() = %v, expected 458", got)
	}
}
