package game

import (
	"time"

	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

func (t *tick) dropPowerUp(at mathutil.Vector2D, k PowerUpKind) {
	t.w.PowerUps = append(t.w.PowerUps, PowerUp{
		Body: Body{
			ID:     t.nextID("powerup"),
			Pos:    mathutil.Vector2D{X: at.X - PowerUpSize/2, Y: at.Y - PowerUpSize/2},
			Vel:    mathutil.Vector2D{X: 0, Y: PowerUpFall},
			W:      PowerUpSize,
			H:      PowerUpSize,
			Active: true,
		},
		Kind:      k,
		SpawnedAt: t.now,
	})
}

func (t *tick) maybeDrop(chance float64, at *mathutil.Vector2D) {
	if t.rng.Float64() < chance {
		t.dropPowerUp(*at, PowerUpKind(t.rng.Intn(int(powerUpKinds))))
	}
}

// prunePowerUps retires stale collectibles and expired buffs.
func (t *tick) prunePowerUps() {
	t.w.PowerUps = lo.Filter(t.w.PowerUps, func(p PowerUp, _ int) bool {
		return p.Active &&
			t.now.Sub(p.SpawnedAt) <= PowerUpTTL &&
			p.Pos.Y < t.settings.ScreenHeight &&
			!t.behind(&p.Body)
	})
	t.w.ActivePowerUps = lo.Filter(t.w.ActivePowerUps, func(a ActivePowerUp, _ int) bool {
		return a.ExpiresAt.After(t.now)
	})
}

func (t *tick) updatePowerUps() {
	t.w.PowerUps = lo.Map(t.w.PowerUps, func(p PowerUp, _ int) PowerUp {
		if p.Active {
			p.Move()
		}
		return p
	})
}

// Collect grants the buff of kind k. A second pickup of a live kind extends
// the existing entry instead of adding another.
func Collect(actives []ActivePowerUp, k PowerUpKind, now time.Time) []ActivePowerUp {
	expires := now.Add(k.Duration())
	out := append([]ActivePowerUp(nil), actives...)
	_, i, found := lo.FindIndexOf(out, func(a ActivePowerUp) bool { return a.Kind == k })
	if !found {
		return append(out, ActivePowerUp{Kind: k, ExpiresAt: expires})
	}
	if expires.After(out[i].ExpiresAt) {
		out[i].ExpiresAt = expires
	}
	return out
}
