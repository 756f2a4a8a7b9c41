// Package arkanoid implements the Arkanoid paddle-and-ball simulation and
// the adapter that plugs it into the terminal platform.
package arkanoid

import (
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
)

// RowColors cycles brick colors by row.
var RowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Layout is a procedural brick pattern over a rows x cols grid.
type Layout struct {
	ID   string
	Name string
	Rows int
	Cols int
	Top  float64                 // Y of the first brick row
	Has  func(row, col int) bool // Whether a brick sits at (row, col)
}

// BuiltinLayouts returns the campaign layouts in play order.
func BuiltinLayouts() []Layout {
	return []Layout{
		// Level 1: full rows every other line, closed by side columns
		{
			ID: "frame", Name: "Frame",
			Rows: 11, Cols: 10, Top: 50,
			Has: func(row, col int) bool {
				return row%2 == 0 || col == 0 || col == 9
			},
		},

		// Level 2: checkerboard on an odd-width grid
		{
			ID: "checker", Name: "Checkerboard",
			Rows: 11, Cols: 11, Top: 50,
			Has: func(row, col int) bool {
				return col%2 == row%2
			},
		},

		// Level 3: solid block
		{
			ID: "block", Name: "Block",
			Rows: 10, Cols: 10, Top: 100,
			Has: func(int, int) bool { return true },
		},
	}
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(BuiltinLayouts())
}

// MinFieldWidth returns the narrowest field every layout fits into.
func MinFieldWidth(cfg config.ArkanoidConfig) float64 {
	widest := 0.0
	for _, l := range BuiltinLayouts() {
		widest = max(widest, gridWidth(l.Cols, cfg))
	}
	return widest
}

// MinFieldHeight returns the shortest field that leaves room to play under
// the lowest brick row: four ball heights and the paddle.
func MinFieldHeight(cfg config.ArkanoidConfig) float64 {
	lowest := 0.0
	for _, l := range BuiltinLayouts() {
		lowest = max(lowest, l.Top+gridHeight(l.Rows, cfg))
	}
	return lowest + 4*cfg.Sizes.Ball.Height + cfg.Sizes.Paddle.Height
}

// gridWidth is the horizontal span of cols bricks with gaps between them.
func gridWidth(cols int, cfg config.ArkanoidConfig) float64 {
	if cols <= 0 {
		return 0
	}
	return float64(cols)*(cfg.Sizes.Brick.Width+cfg.Layout.GapX) - cfg.Layout.GapX
}

func gridHeight(rows int, cfg config.ArkanoidConfig) float64 {
	if rows <= 0 {
		return 0
	}
	return float64(rows)*(cfg.Sizes.Brick.Height+cfg.Layout.GapY) - cfg.Layout.GapY
}

// Level is one playable brick layout. Bricks are only ever removed.
type Level struct {
	Index  int // 1-based
	ID     string
	Name   string
	Bricks *Arena[*Brick]
}

// Remaining returns the number of bricks left.
func (l *Level) Remaining() int {
	return l.Bricks.Len()
}

// Cleared reports whether every brick is gone.
func (l *Level) Cleared() bool {
	return l.Bricks.Len() == 0
}

// BuildLevel places a layout's bricks horizontally centered in the field.
func BuildLevel(index int, layout Layout, fieldW float64, cfg config.ArkanoidConfig) *Level {
	brick := cfg.Sizes.Brick
	stepX := brick.Width + cfg.Layout.GapX
	stepY := brick.Height + cfg.Layout.GapY
	left := (fieldW - gridWidth(layout.Cols, cfg)) / 2

	level := &Level{
		Index:  index,
		ID:     layout.ID,
		Name:   layout.Name,
		Bricks: NewArena[*Brick](layout.Rows * layout.Cols),
	}

	for row := range layout.Rows {
		for col := range layout.Cols {
			if !layout.Has(row, col) {
				continue
			}
			level.Bricks.Insert(&Brick{
				Rect: core.NewRect(
					left+float64(col)*stepX,
					layout.Top+float64(row)*stepY,
					brick.Width,
					brick.Height,
				),
				Color: RowColors[row%len(RowColors)],
			})
		}
	}

	return level
}

// Catalog holds the levels generated for one session, keyed by 1-based index.
type Catalog struct {
	levels []*Level
}

// NewCatalog generates every built-in level for the given field width.
func NewCatalog(fieldW float64, cfg config.ArkanoidConfig) *Catalog {
	layouts := BuiltinLayouts()
	c := &Catalog{levels: make([]*Level, 0, len(layouts))}
	for i, layout := range layouts {
		c.levels = append(c.levels, BuildLevel(i+1, layout, fieldW, cfg))
	}
	return c
}

// Level returns the level at a 1-based index.
func (c *Catalog) Level(index int) (*Level, bool) {
	if index < 1 || index > len(c.levels) {
		return nil, false
	}
	return c.levels[index-1], true
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.levels)
}
