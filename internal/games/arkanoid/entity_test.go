package arkanoid

import (
	"math"
	"testing"

	"github.com/vovakirdan/arkanoid/internal/core"
)

func TestBodyMoveTruncates(t *testing.T) {
	tests := []struct {
		name   string
		dir    core.Vec
		v      float64
		scale  float64
		dx, dy float64
	}{
		{"horizontal", core.Vec{X: 1, Y: 0}, 30, 1, 30, 0},
		{"reverse", core.Vec{X: 1, Y: 0}, 30, -1, -30, 0},
		{"still", core.Vec{X: 1, Y: 0}, 30, 0, 0, 0},
		{"diagonal", core.VecFromAngle(-math.Pi / 4), 15, 1, 10, -10},
		{"straight up", core.VecFromAngle(-math.Pi / 2), 15, 1, 0, -15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{Rect: core.NewRect(100, 100, 10, 10), Velocity: tc.v, Direction: tc.dir}
			b.Move(tc.scale)

			if b.Rect.X != 100+tc.dx || b.Rect.Y != 100+tc.dy {
				t.Errorf("Move() = (%v, %v), expected (%v, %v)", b.Rect.X, b.Rect.Y, 100+tc.dx, 100+tc.dy)
			}
			if b.Rect.W != 10 || b.Rect.H != 10 {
				t.Error("Move() should not change size")
			}
		})
	}
}

func TestPaddleTakeShot(t *testing.T) {
	p := &Paddle{}

	if p.TakeShot(2) {
		t.Error("TakeShot() = true with no ammo")
	}
	p.GrantAmmo(3)
	if !p.TakeShot(2) {
		t.Fatal("TakeShot() = false with 3 ammo")
	}
	if p.Ammo != 1 {
		t.Errorf("Ammo = %d, expected 1", p.Ammo)
	}
	if p.TakeShot(2) {
		t.Error("TakeShot() = true with 1 ammo")
	}
}

func TestBallStates(t *testing.T) {
	b := &Ball{Body: Body{Velocity: 15}}

	b.Ignite()
	if b.State != BallCaught {
		t.Errorf("Ignite() on a caught ball gave %v", b.State)
	}

	if !b.Release() {
		t.Fatal("Release() = false for a caught ball")
	}
	if !b.InFlight() {
		t.Error("InFlight() = false after Release()")
	}

	b.Ignite()
	if b.State != BallFiery {
		t.Errorf("State = %v, expected fiery", b.State)
	}
	if b.Release() {
		t.Error("Release() = true for a fiery ball")
	}

	b.Accelerate(15, 1.5)
	b.Accelerate(15, 1.5)
	if b.Velocity != 22.5 {
		t.Errorf("Velocity = %v, expected 22.5", b.Velocity)
	}
}

func TestBallFollow(t *testing.T) {
	b := &Ball{Body: Body{Rect: core.NewRect(10, 20, 32, 32)}}
	b.Follow(-5)

	if b.Rect.X != 5 || b.Rect.Y != 20 {
		t.Errorf("Follow(-5) = (%v, %v), expected (5, 20)", b.Rect.X, b.Rect.Y)
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindPaddle, "paddle"},
		{KindBall, "ball"},
		{KindBrick, "brick"},
		{KindBullet, "bullet"},
		{KindBonus, "bonus"},
		{Kind(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", tc.kind, got, tc.expected)
		}
	}
}

func TestPaddleExpandCapped(t *testing.T) {
	p := &Paddle{Body: Body{Rect: core.NewRect(405, 470, 190, 30)}}

	widths := []float64{285, 427.5, 641.25, 961.875, 1000, 1000}
	for i, expected := range widths {
		p.Expand(1000)
		if p.Rect.W != expected {
			t.Errorf("Expand #%d width = %v, expected %v", i+1, p.Rect.W, expected)
		}
		if p.Rect.CenterX() != 500 {
			t.Errorf("Expand #%d center = %v, expected 500", i+1, p.Rect.CenterX())
		}
	}
}
