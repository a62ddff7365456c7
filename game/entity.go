package game

import (
	"image/color"
	"time"

	"github.com/tsujio/game-scramble/geom"
	"github.com/tsujio/game-util/mathutil"
)

// Body is the physical part shared by every entity.
type Body struct {
	ID     string
	Pos    mathutil.Vector2D
	Vel    mathutil.Vector2D
	W, H   float64
	Active bool
}

func (b *Body) Box() geom.Box {
	return geom.NewBox(&b.Pos, b.W, b.H)
}

// ScreenBox is the box moved into screen space. Only world-space entities
// need it.
func (b *Body) ScreenBox(scroll float64) geom.Box {
	return b.Box().Translate(-scroll, 0)
}

func (b *Body) Center() *mathutil.Vector2D {
	return b.Box().Center()
}

func (b *Body) Move() {
	b.Pos = geom.Step(&b.Pos, &b.Vel)
}

type Spaceship struct {
	Body
	Health    float64
	MaxHealth float64
	Ammo      int
	Bombs     int
}

type ProjectileKind int

const (
	ProjectileBullet ProjectileKind = iota
	ProjectileBomb
	ProjectileLaser
	ProjectileFire
	ProjectileFireball
	ProjectilePlasma
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileBullet:
		return "bullet"
	case ProjectileBomb:
		return "bomb"
	case ProjectileLaser:
		return "laser"
	case ProjectileFire:
		return "fire"
	case ProjectileFireball:
		return "fireball"
	case ProjectilePlasma:
		return "plasma"
	}
	return "unknown"
}

// FromPlayer tells player ordnance apart from enemy fire. Projectiles have
// no owner; the kind decides which targets they can hit.
func (k ProjectileKind) FromPlayer() bool {
	return k == ProjectileBullet || k == ProjectileBomb
}

// Projectile lives in screen space.
type Projectile struct {
	Body
	Kind   ProjectileKind
	Damage float64
}

type RocketKind int

const (
	RocketNormal RocketKind = iota
	RocketHeavy
)

type Rocket struct {
	Body
	Kind   RocketKind
	Damage float64
	// ExplosionRadius is carried for renderers; no damage rule reads it.
	ExplosionRadius float64
}

type Saucer struct {
	Body
	BaseY    float64
	Phase    float64
	LastFire time.Time
	FireRate time.Duration
}

type Alien struct {
	Body
	Health    float64
	MaxHealth float64
	LastFire  time.Time
	FireRate  time.Duration
}

type CrawlingAlien struct {
	Body
	Health     float64
	MaxHealth  float64
	LastFire   time.Time
	FireRate   time.Duration
	TargetX    float64
	CrawlSpeed float64
}

type BossRocket struct {
	Body
	Health    float64
	MaxHealth float64
	LastFire  time.Time
	FireRate  time.Duration
	HoverX    float64 // screen x the rocket settles at
	BaseY     float64
	Phase     float64
}

// Boss is the mega-boss. At most one is alive at a time.
type Boss struct {
	Body
	Health    float64
	MaxHealth float64
	LastFire  time.Time
	FireRate  time.Duration
	BossType  int
	Tentacles [BossTentacles]float64
	BaseY     float64
	Phase     float64
}

type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpRapidFire
	PowerUpShield
	PowerUpDoubleScore
	PowerUpRepair
	powerUpKinds
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpRapidFire:
		return "rapidfire"
	case PowerUpShield:
		return "shield"
	case PowerUpDoubleScore:
		return "doublescore"
	case PowerUpRepair:
		return "repair"
	}
	return "unknown"
}

func (k PowerUpKind) Duration() time.Duration {
	if k == PowerUpShield {
		return ShieldDuration
	}
	return PowerUpDuration
}

// PowerUp is the falling collectible.
type PowerUp struct {
	Body
	Kind      PowerUpKind
	SpawnedAt time.Time
}

// ActivePowerUp is the timed buff granted by collecting a PowerUp.
type ActivePowerUp struct {
	Kind      PowerUpKind
	ExpiresAt time.Time
}

type Particle struct {
	Pos   mathutil.Vector2D
	Vel   mathutil.Vector2D
	Size  float64
	Color color.RGBA
	Life  time.Duration
}

// Explosion may start in the future; boss deaths stagger their bursts that
// way.
type Explosion struct {
	ID        string
	Start     time.Time
	Lifetime  time.Duration
	Mega      bool
	Particles []Particle
}

func (e *Explosion) Started(now time.Time) bool {
	return !now.Before(e.Start)
}

func (e *Explosion) Expired(now time.Time) bool {
	return now.Sub(e.Start) > e.Lifetime
}

// Remaining is the life left of particle p, zero before the burst started
// and after the particle faded.
func (e *Explosion) Remaining(p *Particle, now time.Time) time.Duration {
	if !e.Started(now) {
		return 0
	}
	r := p.Life - now.Sub(e.Start)
	if r < 0 {
		return 0
	}
	return r
}

type TrailParticle struct {
	Pos   mathutil.Vector2D
	Size  float64
	Color color.RGBA
	Born  time.Time
	Life  time.Duration
}

type ScorePopup struct {
	Pos      mathutil.Vector2D
	Score    int
	Start    time.Time
	Duration time.Duration
}

type ComboState struct {
	Count      int
	Multiplier float64
	LastKill   time.Time
	Timeout    time.Duration
}

type ScreenShake struct {
	Intensity float64
	Until     time.Time
}
