package arkanoid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
	BulletChar = '|'
	DeadlyChar = '·'
)

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderDeadlyLine(dst)

	for ent := range g.engine.Entities() {
		switch e := ent.(type) {
		case *Brick:
			g.renderBrick(dst, e)
		case *Paddle:
			g.renderPaddle(dst, e)
		case *Ball:
			g.renderBall(dst, e)
		case *Bullet:
			x, y := g.cellOf(e.Rect.CenterX(), e.Rect.CenterY())
			dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
		case *Bonus:
			x, y := g.cellOf(e.Rect.CenterX(), e.Rect.CenterY())
			dst.SetColored(x, y, e.Type.Glyph(), e.Type.Color())
		}
	}

	g.renderOverlay(dst)
}

// cellOf maps a field point to a screen cell. Row 0 belongs to the HUD.
func (g *Game) cellOf(px, py float64) (int, int) {
	x := int(math.Floor(px / g.cfg.Render.CellWidth))
	y := 1 + int(math.Floor(py/g.cfg.Render.CellHeight))
	return x, y
}

// cellSpan maps a horizontal field range to the cells [x0, x1). Edges are
// rounded so neighbours sharing an edge never share a cell.
func (g *Game) cellSpan(left, right float64) (int, int) {
	x0 := int(math.Round(left / g.cfg.Render.CellWidth))
	x1 := int(math.Round(right / g.cfg.Render.CellWidth))
	return x0, max(x1, x0+1)
}

// renderHUD draws score, ammo, lives and level on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	// Score and ammo on left
	scoreText := fmt.Sprintf("Score: %d  Ammo: %d", g.engine.Score(), g.engine.Ammo())
	dst.DrawText(1, 0, scoreText)

	// Lives in center
	livesText := fmt.Sprintf("Lives: %d", g.engine.Lives())
	dst.DrawTextCentered(0, livesText)

	// Level on right
	levelText := fmt.Sprintf("Level: %d/%d", g.engine.Level(), g.engine.LevelCount())
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// renderDeadlyLine marks the height below which the ball is lost.
func (g *Game) renderDeadlyLine(dst *core.Screen) {
	_, y := g.cellOf(0, g.engine.DeadlyHeight())
	dst.DrawHLine(0, y, dst.Width(), DeadlyChar, core.ColorGray)
}

func (g *Game) renderBrick(dst *core.Screen, b *Brick) {
	x0, x1 := g.cellSpan(b.Rect.Left(), b.Rect.Right())
	_, y := g.cellOf(0, b.Rect.Top())

	// Leave the last cell blank so adjacent bricks read as separate
	width := max(x1-x0-1, 1)
	dst.DrawHLine(x0, y, width, BrickChar, b.Color)
}

func (g *Game) renderPaddle(dst *core.Screen, p *Paddle) {
	x0, x1 := g.cellSpan(p.Rect.Left(), p.Rect.Right())
	_, y := g.cellOf(0, p.Rect.Top()+p.Rect.H/2)

	color := core.ColorBrightCyan
	if p.Ammo > 0 {
		color = core.ColorBrightYellow
	}
	dst.DrawHLine(x0, y, x1-x0, PaddleChar, color)
}

func (g *Game) renderBall(dst *core.Screen, b *Ball) {
	// Anchor on the lowest row the ball covers so a caught ball sits
	// right on the paddle.
	x, y := g.cellOf(b.Rect.CenterX(), b.Rect.Bottom()-1)

	color := core.ColorBrightWhite
	if b.State == BallFiery {
		color = core.ColorOrange
	}
	dst.SetColored(x, y, BallChar, color)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.engine.GameOver():
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.engine.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case g.engine.Won():
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.engine.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)

	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case !g.engine.Ball().InFlight():
		title := fmt.Sprintf("Level %d: %s", g.engine.Level(), g.engine.LevelName())
		dst.DrawTextCentered(dst.Height()-4, title)
		dst.DrawTextCentered(dst.Height()-3, "Press SPACE to launch")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
