package game

import (
	"image/color"
	"math"
	"time"

	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

var fireColors = []color.RGBA{
	{0xff, 0xdd, 0x33, 0xff},
	{0xff, 0x88, 0x22, 0xff},
	{0xee, 0x33, 0x22, 0xff},
}

func (t *tick) newExplosion(at mathutil.Vector2D, start time.Time, n int, mega bool) Explosion {
	lifetime, palette, speed := ExplosionLifetime, fireColors, 3.0
	if mega {
		lifetime, palette, speed = MegaExplosionLifetime, megaColors, 5.0
	}
	return Explosion{
		ID:       t.nextID("explosion"),
		Start:    start,
		Lifetime: lifetime,
		Mega:     mega,
		Particles: lo.Times(n, func(int) Particle {
			angle := t.rng.Float64() * 2 * math.Pi
			v := speed * (0.3 + 0.7*t.rng.Float64())
			return Particle{
				Pos:   at,
				Vel:   mathutil.Vector2D{X: math.Cos(angle) * v, Y: math.Sin(angle) * v},
				Size:  2 + t.rng.Float64()*3,
				Color: palette[t.rng.Intn(len(palette))],
				Life:  time.Duration(float64(lifetime) * (0.5 + 0.5*t.rng.Float64())),
			}
		}),
	}
}

// explode adds a standard or mega burst at a world position.
func (t *tick) explode(at mathutil.Vector2D, start time.Time, mega bool) {
	n := ExplosionParticles
	if mega {
		n = MegaExplosionParticles
	}
	t.w.Explosions = append(t.w.Explosions, t.newExplosion(at, start, n, mega))
}

// shake never weakens or shortens a running shake.
func (t *tick) shake(intensity float64, d time.Duration) {
	s := &t.w.Shake
	until := t.now.Add(d)
	if intensity > s.Intensity {
		s.Intensity = intensity
	}
	if until.After(s.Until) {
		s.Until = until
	}
}

func (t *tick) decayShake() {
	if !t.now.Before(t.w.Shake.Until) {
		t.w.Shake = ScreenShake{}
	}
}

func (t *tick) prunePopups() {
	t.w.Popups = lo.Filter(t.w.Popups, func(p ScorePopup, _ int) bool {
		return t.now.Sub(p.Start) <= p.Duration
	})
}

// emitTrail appends an exhaust particle, dropping the oldest past the cap.
func (t *tick) emitTrail(at mathutil.Vector2D, c color.RGBA) {
	t.w.Trails = append(t.w.Trails, TrailParticle{
		Pos:   at,
		Size:  2 + t.rng.Float64()*2,
		Color: c,
		Born:  t.now,
		Life:  TrailLifetime,
	})
	if n := len(t.w.Trails); n > MaxTrails {
		t.w.Trails = t.w.Trails[n-MaxTrails:]
	}
}

// updateEffects ages explosions and trails. Particles of bursts scheduled
// in the future stay put until their start.
func (t *tick) updateEffects() {
	t.w.Explosions = lo.FilterMap(t.w.Explosions, func(e Explosion, _ int) (Explosion, bool) {
		if e.Expired(t.now) {
			return e, false
		}
		if e.Started(t.now) {
			e.Particles = lo.Map(e.Particles, func(p Particle, _ int) Particle {
				p.Pos = *p.Pos.Add(&p.Vel)
				p.Vel = *p.Vel.Mul(0.95)
				return p
			})
		}
		return e, true
	})
	t.w.Trails = lo.Filter(t.w.Trails, func(p TrailParticle, _ int) bool {
		return t.now.Sub(p.Born) <= p.Life
	})
}
