// Package sound turns world transitions into sound cues and plays them.
package sound

import (
	"github.com/samber/lo"
	"github.com/tsujio/game-scramble/game"
)

type Cue int

const (
	CueShoot Cue = iota
	CueBomb
	CueExplosion
	CueMegaExplosion
	CueHurt
	CueLifeLost
	CuePowerUp
	CueLevelUp
	CueGameOver
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueBomb:
		return "bomb"
	case CueExplosion:
		return "explosion"
	case CueMegaExplosion:
		return "mega"
	case CueHurt:
		return "hurt"
	case CueLifeLost:
		return "lifelost"
	case CuePowerUp:
		return "powerup"
	case CueLevelUp:
		return "levelup"
	case CueGameOver:
		return "gameover"
	}
	return "unknown"
}

// Diff lists the cues for the step from prev to next, each at most once.
// Staggered bursts sound when they start, not when they are scheduled.
func Diff(prev, next *game.World) []Cue {
	if prev == nil || next == nil || prev == next {
		return nil
	}
	var cues []Cue

	oldShots := lo.Associate(prev.Projectiles, func(p game.Projectile) (string, bool) { return p.ID, true })
	fresh := lo.Filter(next.Projectiles, func(p game.Projectile, _ int) bool { return !oldShots[p.ID] })
	if lo.ContainsBy(fresh, func(p game.Projectile) bool { return p.Kind == game.ProjectileBullet }) {
		cues = append(cues, CueShoot)
	}
	if lo.ContainsBy(fresh, func(p game.Projectile) bool { return p.Kind == game.ProjectileBomb }) {
		cues = append(cues, CueBomb)
	}

	started := func(w *game.World, mega bool) map[string]bool {
		return lo.Associate(lo.Filter(w.Explosions, func(x game.Explosion, _ int) bool {
			return x.Mega == mega && x.Started(w.Now)
		}), func(x game.Explosion) (string, bool) { return x.ID, true })
	}
	for _, mega := range []bool{false, true} {
		before, after := started(prev, mega), started(next, mega)
		if lo.SomeBy(lo.Keys(after), func(id string) bool { return !before[id] }) {
			if mega {
				cues = append(cues, CueMegaExplosion)
			} else {
				cues = append(cues, CueExplosion)
			}
		}
	}

	switch {
	case next.GameOver && !prev.GameOver:
		cues = append(cues, CueGameOver)
	case next.Lives < prev.Lives:
		cues = append(cues, CueLifeLost)
	case next.Ship.Health < prev.Ship.Health:
		cues = append(cues, CueHurt)
	}

	if gained(prev.ActivePowerUps, next.ActivePowerUps) {
		cues = append(cues, CuePowerUp)
	}
	if next.Level > prev.Level {
		cues = append(cues, CueLevelUp)
	}
	return cues
}

// gained reports a new or extended buff.
func gained(prev, next []game.ActivePowerUp) bool {
	return lo.SomeBy(next, func(a game.ActivePowerUp) bool {
		old, ok := lo.Find(prev, func(p game.ActivePowerUp) bool { return p.Kind == a.Kind })
		return !ok || a.ExpiresAt.After(old.ExpiresAt)
	})
}
