package game

import (
	"time"

	"github.com/samber/lo"
	"github.com/tsujio/game-scramble/terrain"
)

// World is one immutable snapshot. Engine.Tick never mutates the snapshot
// it is given; it clones it and returns the clone.
type World struct {
	Playing  bool
	Paused   bool
	GameOver bool

	Level        int
	Score        int
	Lives        int
	ScrollOffset float64
	SessionStart time.Time
	Now          time.Time

	Ship           Spaceship
	Projectiles    []Projectile
	Rockets        []Rocket
	Saucers        []Saucer
	Aliens         []Alien
	Crawlers       []CrawlingAlien
	BossRockets    []BossRocket
	Boss           *Boss
	PowerUps       []PowerUp
	ActivePowerUps []ActivePowerUp
	Trails         []TrailParticle
	Explosions     []Explosion
	Popups         []ScorePopup

	Terrain terrain.Layers
	Trees   []terrain.Tree

	Combo ComboState
	Shake ScreenShake
}

func (w *World) Clone() *World {
	c := *w
	c.Projectiles = append([]Projectile(nil), w.Projectiles...)
	c.Rockets = append([]Rocket(nil), w.Rockets...)
	c.Saucers = append([]Saucer(nil), w.Saucers...)
	c.Aliens = append([]Alien(nil), w.Aliens...)
	c.Crawlers = append([]CrawlingAlien(nil), w.Crawlers...)
	c.BossRockets = append([]BossRocket(nil), w.BossRockets...)
	if w.Boss != nil {
		b := *w.Boss
		c.Boss = &b
	}
	c.PowerUps = append([]PowerUp(nil), w.PowerUps...)
	c.ActivePowerUps = append([]ActivePowerUp(nil), w.ActivePowerUps...)
	c.Trails = append([]TrailParticle(nil), w.Trails...)
	c.Explosions = lo.Map(w.Explosions, func(e Explosion, _ int) Explosion {
		e.Particles = append([]Particle(nil), e.Particles...)
		return e
	})
	c.Popups = append([]ScorePopup(nil), w.Popups...)
	c.Terrain = w.Terrain.Clone()
	c.Trees = append([]terrain.Tree(nil), w.Trees...)
	return &c
}

func (w *World) PowerUpActive(k PowerUpKind) bool {
	return lo.ContainsBy(w.ActivePowerUps, func(a ActivePowerUp) bool {
		return a.Kind == k && a.ExpiresAt.After(w.Now)
	})
}

// Idle reports the state before the first Start.
func (w *World) Idle() bool {
	return !w.Playing && !w.GameOver
}

// EnemyCount is the number of active members of an enemy category.
func (w *World) EnemyCount(c Category) int {
	switch c {
	case CategoryRocket:
		return lo.CountBy(w.Rockets, func(r Rocket) bool { return r.Active })
	case CategorySaucer:
		return lo.CountBy(w.Saucers, func(s Saucer) bool { return s.Active })
	case CategoryAlien:
		return lo.CountBy(w.Aliens, func(a Alien) bool { return a.Active })
	case CategoryCrawler:
		return lo.CountBy(w.Crawlers, func(a CrawlingAlien) bool { return a.Active })
	case CategoryBossRocket:
		return lo.CountBy(w.BossRockets, func(b BossRocket) bool { return b.Active })
	case CategoryPowerUp:
		return lo.CountBy(w.PowerUps, func(p PowerUp) bool { return p.Active })
	}
	return 0
}
