package arkanoid

import (
	"math"
	"testing"
)

func TestBonusSpawnRate(t *testing.T) {
	rng := newRNG(2024)
	const trials = 200000

	spawned := 0
	var perKind [BonusKindCount]int
	for range trials {
		kind, ok := rollBonus(rng, 0.25)
		if !ok {
			continue
		}
		spawned++
		perKind[kind]++
	}

	rate := float64(spawned) / trials
	if math.Abs(rate-0.25) > 0.01 {
		t.Errorf("spawn rate = %.4f, expected about 0.25", rate)
	}

	// Kinds are uniform
	for k, n := range perKind {
		share := float64(n) / float64(spawned)
		if math.Abs(share-1.0/float64(BonusKindCount)) > 0.01 {
			t.Errorf("%v share = %.4f, expected about %.4f", BonusKind(k), share, 1.0/float64(BonusKindCount))
		}
	}
}

func TestBonusEffects(t *testing.T) {
	tests := []struct {
		kind  BonusKind
		check func(t *testing.T, e *Engine)
	}{
		{BonusShrink, func(t *testing.T, e *Engine) {
			if e.paddle.Rect.W != 95 || e.paddle.Rect.CenterX() != 500 {
				t.Errorf("paddle = %+v, expected width 95 centered on 500", e.paddle.Rect)
			}
		}},
		{BonusExpand, func(t *testing.T, e *Engine) {
			if e.paddle.Rect.W != 285 || e.paddle.Rect.CenterX() != 500 {
				t.Errorf("paddle = %+v, expected width 285 centered on 500", e.paddle.Rect)
			}
		}},
		{BonusAmmo, func(t *testing.T, e *Engine) {
			if e.Ammo() != 12 {
				t.Errorf("Ammo() = %d, expected 12", e.Ammo())
			}
		}},
		{BonusFireBall, func(t *testing.T, e *Engine) {
			if e.ball.State != BallCaught {
				t.Errorf("ball state = %v, expected a caught ball to stay caught", e.ball.State)
			}
		}},
		{BonusFastBall, func(t *testing.T, e *Engine) {
			if e.ball.Velocity != 22.5 {
				t.Errorf("ball velocity = %v, expected 22.5", e.ball.Velocity)
			}
		}},
		{BonusLife, func(t *testing.T, e *Engine) {
			if e.Lives() != 4 {
				t.Errorf("Lives() = %d, expected 4", e.Lives())
			}
		}},
		{BonusDeath, func(t *testing.T, e *Engine) {
			if e.Lives() != 2 {
				t.Errorf("Lives() = %d, expected 2", e.Lives())
			}
		}},
	}

	if len(tests) != int(BonusKindCount) {
		t.Fatalf("covered %d kinds, expected %d", len(tests), BonusKindCount)
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			e := newTestEngine()
			bonusEffects[tc.kind](e)
			tc.check(t, e)
		})
	}
}

func TestFireBallIgnitesFlyingBall(t *testing.T) {
	e := newTestEngine()
	e.ReleaseBall()

	bonusEffects[BonusFireBall](e)

	if e.ball.State != BallFiery {
		t.Errorf("ball state = %v, expected fiery", e.ball.State)
	}
}

func TestFastBallDoesNotCompound(t *testing.T) {
	e := newTestEngine()

	bonusEffects[BonusFastBall](e)
	bonusEffects[BonusFastBall](e)

	if e.ball.Velocity != 22.5 {
		t.Errorf("ball velocity = %v, expected 22.5 after two pickups", e.ball.Velocity)
	}
}

func TestBonusKindGlyphs(t *testing.T) {
	seen := make(map[rune]BonusKind)
	for k := range BonusKindCount {
		g := k.Glyph()
		if g == '?' {
			t.Errorf("%v has no glyph", k)
		}
		if other, dup := seen[g]; dup {
			t.Errorf("%v and %v share glyph %q", k, other, g)
		}
		seen[g] = k
	}
	if BonusKindCount.Glyph() != '?' {
		t.Error("sentinel should not have a glyph")
	}
}
