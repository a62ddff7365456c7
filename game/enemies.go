package game

import (
	"image/color"
	"math"

	"github.com/samber/lo"
	"github.com/tsujio/game-scramble/geom"
	"github.com/tsujio/game-scramble/terrain"
	"github.com/tsujio/game-util/mathutil"
)

var rocketTrailColor = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}

// behind reports whether a world-space body has left the kept window.
func (t *tick) behind(b *Body) bool {
	return b.Pos.X+b.W < t.w.ScrollOffset-TerrainBehind*t.settings.ScreenWidth
}

func (t *tick) onScreen(b *Body) bool {
	return b.ScreenBox(t.w.ScrollOffset).Within(t.settings.ScreenWidth, t.settings.ScreenHeight, 0)
}

// fireAt spawns an aimed enemy projectile from a screen-space origin.
func (t *tick) fireAt(from *mathutil.Vector2D, kind ProjectileKind, size, speed, damage float64) {
	v, ok := geom.Aim(from, t.w.Ship.Center(), speed)
	if !ok {
		return
	}
	t.w.Projectiles = append(t.w.Projectiles, Projectile{
		Body: Body{
			ID:     t.nextID(kind.String()),
			Pos:    mathutil.Vector2D{X: from.X - size/2, Y: from.Y - size/2},
			Vel:    v,
			W:      size,
			H:      size,
			Active: true,
		},
		Kind:   kind,
		Damage: damage,
	})
}

func (t *tick) updateProjectiles() {
	w, h := t.settings.ScreenWidth, t.settings.ScreenHeight
	t.w.Projectiles = lo.Map(t.w.Projectiles, func(p Projectile, _ int) Projectile {
		if !p.Active {
			return p
		}
		switch p.Kind {
		case ProjectilePlasma:
			t.patterns.advance(&p)
		case ProjectileBomb:
			p.Vel.Y += BombGravity
			p.Move()
			t.burstOnGround(&p)
		default:
			p.Move()
		}
		if !p.Box().Within(w, h, ScreenMargin) {
			p.Active = false
		}
		return p
	})
}

// burstOnGround explodes a bomb that reached the middle terrain layer.
func (t *tick) burstOnGround(p *Projectile) {
	c := p.Center()
	x := c.X + t.w.ScrollOffset
	if p.Pos.Y+p.H < t.ground.GroundAt(t.w.Terrain, terrain.Middle, x) {
		return
	}
	p.Active = false
	t.explode(mathutil.Vector2D{X: x, Y: p.Pos.Y + p.H}, t.now, false)
}

func (t *tick) updateRockets() {
	t.w.Rockets = lo.Map(t.w.Rockets, func(r Rocket, _ int) Rocket {
		if !r.Active {
			return r
		}
		r.Move()
		if r.Pos.Y+r.H < 0 || t.behind(&r.Body) {
			r.Active = false
			return r
		}
		t.emitTrail(mathutil.Vector2D{X: r.Pos.X + r.W/2, Y: r.Pos.Y + r.H}, rocketTrailColor)
		return r
	})
}

func (t *tick) updateSaucers() {
	t.w.Saucers = lo.Map(t.w.Saucers, func(s Saucer, _ int) Saucer {
		if !s.Active {
			return s
		}
		s.Phase += 0.05
		s.Pos.X += s.Vel.X
		s.Pos.Y = s.BaseY + math.Sin(s.Phase)*SaucerBob
		if t.behind(&s.Body) {
			s.Active = false
			return s
		}
		if t.onScreen(&s.Body) && t.now.Sub(s.LastFire) >= s.FireRate {
			s.LastFire = t.now
			box := s.ScreenBox(t.w.ScrollOffset)
			t.w.Projectiles = append(t.w.Projectiles, Projectile{
				Body: Body{
					ID:     t.nextID("laser"),
					Pos:    mathutil.Vector2D{X: box.X - LaserWidth, Y: box.Y + box.H/2},
					Vel:    mathutil.Vector2D{X: -LaserSpeed},
					W:      LaserWidth,
					H:      LaserHeight,
					Active: true,
				},
				Kind:   ProjectileLaser,
				Damage: LaserDamage,
			})
		}
		return s
	})
}

func (t *tick) updateAliens() {
	t.w.Aliens = lo.Map(t.w.Aliens, func(a Alien, _ int) Alien {
		if !a.Active {
			return a
		}
		if t.behind(&a.Body) {
			a.Active = false
			return a
		}
		if t.onScreen(&a.Body) && t.now.Sub(a.LastFire) >= a.FireRate {
			a.LastFire = t.now
			t.fireAt(a.ScreenBox(t.w.ScrollOffset).Center(), ProjectileFire, FireSize, AlienFireSpeed, FireDamage)
		}
		return a
	})
}

// updateCrawlers walks crawlers toward the ship's world x and keeps them on
// the foreground layer.
func (t *tick) updateCrawlers() {
	shipX := t.w.ScrollOffset + t.w.Ship.Center().X
	t.w.Crawlers = lo.Map(t.w.Crawlers, func(c CrawlingAlien, _ int) CrawlingAlien {
		if !c.Active {
			return c
		}
		c.TargetX = shipX
		dx := c.TargetX - (c.Pos.X + c.W/2)
		switch {
		case dx > 1:
			c.Vel.X = c.CrawlSpeed
		case dx < -1:
			c.Vel.X = -c.CrawlSpeed
		default:
			c.Vel.X = 0
		}
		c.Pos.X += c.Vel.X
		c.Pos.Y = t.ground.GroundAt(t.w.Terrain, terrain.Foreground, c.Pos.X+c.W/2) - c.H
		if t.behind(&c.Body) {
			c.Active = false
			return c
		}
		if t.onScreen(&c.Body) && t.now.Sub(c.LastFire) >= c.FireRate {
			c.LastFire = t.now
			t.fireAt(c.ScreenBox(t.w.ScrollOffset).Center(), ProjectileFire, FireSize, CrawlFireSpeed, FireDamage)
		}
		return c
	})
}

// updateBossRockets flies them in from the right, then keeps them hovering
// at a fixed screen x.
func (t *tick) updateBossRockets() {
	t.w.BossRockets = lo.Map(t.w.BossRockets, func(b BossRocket, _ int) BossRocket {
		if !b.Active {
			return b
		}
		if b.Pos.X-t.w.ScrollOffset > b.HoverX {
			b.Vel.X = -BossRocketEntry
		} else {
			b.Vel.X = t.scrollStep
		}
		b.Phase += 0.03
		b.Pos.X += b.Vel.X
		b.Pos.Y = b.BaseY + math.Sin(b.Phase)*BossRocketSway
		if t.behind(&b.Body) {
			b.Active = false
			return b
		}
		if t.onScreen(&b.Body) && t.now.Sub(b.LastFire) >= b.FireRate {
			b.LastFire = t.now
			box := b.ScreenBox(t.w.ScrollOffset)
			t.fireAt(mathutil.NewVector2D(box.X, box.Y+box.H/2), ProjectileFireball, FireballSize, FireballSpeed, FireballDamage)
		}
		return b
	})
}
