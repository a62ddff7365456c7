package game

import (
	"math"
	"time"

	"github.com/samber/lo"
	"github.com/tsujio/game-scramble/terrain"
)

// tick is the scratch context of one Engine.Tick.
type tick struct {
	*Engine
	prev       *World
	w          *World
	in         Input
	now        time.Time
	scrollStep float64
	lifeLost   bool
}

// NewWorld builds the idle world shown before a game starts, terrain
// included.
func (e *Engine) NewWorld(now time.Time) *World {
	w := &World{
		Level:        1,
		Lives:        StartLives,
		SessionStart: now,
		Now:          now,
		Ship:         e.newShip(),
		Combo:        newCombo(),
	}
	e.extendTerrain(w)
	return w
}

// Start enters the playing state. Spawn cooldowns restart from now and the
// mega-boss schedule from zero.
func (e *Engine) Start(w *World, now time.Time) *World {
	if !w.Idle() {
		return w
	}
	e.dir.reset(now)
	e.patterns.reset()
	next := w.Clone()
	next.SessionStart = now
	next.Now = now
	next.Playing = true
	next.Paused = false
	return next
}

func (e *Engine) TogglePause(w *World) *World {
	if !w.Playing {
		return w
	}
	next := w.Clone()
	next.Paused = !next.Paused
	return next
}

// Reset discards the session and returns a fresh idle world.
func (e *Engine) Reset(now time.Time) *World {
	e.dir.reset(time.Time{})
	e.patterns.reset()
	return e.NewWorld(now)
}

func (e *Engine) extendTerrain(w *World) {
	width := e.settings.ScreenWidth
	horizon := w.ScrollOffset + TerrainLookahead*width
	if terrain.NeedsExtension(w.Terrain, horizon) {
		var from, to float64
		w.Terrain, from, to = e.ground.Extend(w.Terrain, w.ScrollOffset, horizon, width)
		w.Trees = append(w.Trees, terrain.PlaceTrees(w.Terrain.Foreground, from, to, e.rng)...)
	}
	minX := w.ScrollOffset - TerrainBehind*width
	w.Terrain = terrain.Trim(w.Terrain, minX)
	w.Trees = terrain.TrimTrees(w.Trees, minX)
}

// Tick advances prev by one step and returns the new snapshot. Idle, paused
// and finished worlds are returned unchanged.
func (e *Engine) Tick(prev *World, in Input, now time.Time) *World {
	if !prev.Playing || prev.Paused || prev.GameOver {
		return prev
	}
	t := &tick{
		Engine: e,
		prev:   prev,
		w:      prev.Clone(),
		in:     in,
		now:    now,
	}
	w := t.w
	w.Now = now

	t.decayShake()
	w.decayCombo(now)
	t.prunePopups()

	t.scrollStep = e.settings.ScrollSpeed + math.Min(MaxLevelScroll, LevelScrollStep*float64(w.Level-1))
	w.ScrollOffset += t.scrollStep
	e.extendTerrain(w)
	t.prunePowerUps()

	t.movePlayer()
	t.fire()

	t.runSpawner()

	t.updateProjectiles()
	t.updateRockets()
	t.updateSaucers()
	t.updateAliens()
	t.updateCrawlers()
	t.updateBossRockets()
	t.updateBoss()
	t.updatePowerUps()

	t.resolveCollisions()

	t.updateEffects()
	t.cull()
	t.levelUp()
	t.offerRecords()
	return w
}

func (t *tick) cull() {
	w := t.w
	w.Projectiles = lo.Filter(w.Projectiles, func(p Projectile, _ int) bool { return p.Active })
	w.Rockets = lo.Filter(w.Rockets, func(r Rocket, _ int) bool { return r.Active })
	w.Saucers = lo.Filter(w.Saucers, func(s Saucer, _ int) bool { return s.Active })
	w.Aliens = lo.Filter(w.Aliens, func(a Alien, _ int) bool { return a.Active })
	w.Crawlers = lo.Filter(w.Crawlers, func(c CrawlingAlien, _ int) bool { return c.Active })
	w.BossRockets = lo.Filter(w.BossRockets, func(b BossRocket, _ int) bool { return b.Active })
	w.PowerUps = lo.Filter(w.PowerUps, func(p PowerUp, _ int) bool { return p.Active })
	if w.Boss != nil && !w.Boss.Active {
		w.Boss = nil
	}

	plasma := lo.FilterMap(w.Projectiles, func(p Projectile, _ int) (string, bool) {
		return p.ID, p.Kind == ProjectilePlasma
	})
	t.patterns.forget(lo.Associate(plasma, func(id string) (string, bool) { return id, true }))
}

// levelUp recomputes the level from the score. Every threshold crossed in
// one tick pays its own bonus.
func (t *tick) levelUp() {
	level := t.w.Score/LevelThreshold + 1
	if level <= t.w.Level {
		return
	}
	gained := level - t.w.Level
	t.w.Ship.Ammo += gained * LevelAmmoBonus
	t.w.Ship.Bombs += gained * LevelBombBonus
	t.w.Level = level
}
