package game

import (
	"math"
	"time"

	"github.com/tsujio/game-util/mathutil"
)

func newCombo() ComboState {
	return ComboState{Multiplier: 1, Timeout: ComboTimeout}
}

// RegisterKill books a kill worth base points at a world position and
// returns the points actually awarded. Kills inside the timeout window grow
// the streak; anything later restarts it at one.
func (w *World) RegisterKill(base int, at mathutil.Vector2D, now time.Time) int {
	c := &w.Combo
	if now.Sub(c.LastKill) <= c.Timeout {
		c.Count++
		c.Multiplier = math.Min(ComboCap, 1+float64(c.Count)*ComboStep)
	} else {
		c.Count = 1
		c.Multiplier = 1
	}
	c.LastKill = now

	score := int(math.Floor(float64(base) * c.Multiplier))
	w.Popups = append(w.Popups, ScorePopup{
		Pos:      at,
		Score:    score,
		Start:    now,
		Duration: PopupDuration,
	})
	return score
}

// decayCombo returns an idle streak to zero so the multiplier drops between
// streaks, not only at the next kill.
func (w *World) decayCombo(now time.Time) {
	c := &w.Combo
	if c.Count > 0 && now.Sub(c.LastKill) > c.Timeout {
		c.Count = 0
		c.Multiplier = 1
	}
}

// award books a kill, doubling the base while doublescore is active.
func (t *tick) award(base int, at *mathutil.Vector2D) {
	if t.w.PowerUpActive(PowerUpDoubleScore) {
		base *= 2
	}
	t.w.Score += t.w.RegisterKill(base, *at, t.now)
}
