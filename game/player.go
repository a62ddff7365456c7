package game

import (
	"image/color"

	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

var exhaustColor = color.RGBA{0xff, 0xaa, 0x33, 0xff}

func (e *Engine) newShip() Spaceship {
	x, y := e.shipSpawn()
	return Spaceship{
		Body: Body{
			ID:     "ship",
			Pos:    mathutil.Vector2D{X: x, Y: y},
			W:      ShipWidth,
			H:      ShipHeight,
			Active: true,
		},
		Health:    ShipMaxHealth,
		MaxHealth: ShipMaxHealth,
		Ammo:      StartAmmo,
		Bombs:     StartBombs,
	}
}

// movePlayer turns held keys into a velocity (no acceleration curve) and
// applies the edge penalty.
func (t *tick) movePlayer() {
	s := &t.w.Ship
	speed := t.settings.PlayerSpeed
	if t.w.PowerUpActive(PowerUpSpeed) {
		speed *= SpeedBoostMult
	}

	var vx, vy float64
	if t.in.Held(ActionLeft) {
		vx -= speed
	}
	if t.in.Held(ActionRight) {
		vx += speed
	}
	if t.in.Held(ActionUp) {
		vy -= speed
	}
	if t.in.Held(ActionDown) {
		vy += speed
	}
	s.Vel = mathutil.Vector2D{X: vx, Y: vy}
	s.Move()

	w, h := t.settings.ScreenWidth, t.settings.ScreenHeight
	hit := false
	if s.Pos.X <= 0 {
		s.Pos.X = 1
		hit = true
	}
	if s.Pos.X+s.W >= w {
		s.Pos.X = w - s.W - 1
		hit = true
	}
	if s.Pos.Y <= 0 {
		s.Pos.Y = 1
		hit = true
	}
	if s.Pos.Y+s.H >= h {
		s.Pos.Y = h - s.H - 1
		hit = true
	}
	if hit {
		c := s.Center()
		t.explode(mathutil.Vector2D{X: c.X + t.w.ScrollOffset, Y: c.Y}, t.now, false)
		t.shake(HitShake, HitShakeTime)
		t.hurtPlayer(EdgePenalty)
	}

	if t.w.PowerUpActive(PowerUpRepair) {
		s.Health = lo.Clamp(s.Health+RepairPerTick, 0, s.MaxHealth)
	}

	t.emitTrail(mathutil.Vector2D{X: s.Pos.X + t.w.ScrollOffset, Y: s.Pos.Y + s.H/2}, exhaustColor)
}

// fire spawns bullets and bombs. Each press fires once; rapid fire lets a
// held key fire every tick.
func (t *tick) fire() {
	s := &t.w.Ship
	rapid := t.w.PowerUpActive(PowerUpRapidFire)

	fireDown := t.in.Held(ActionFire)
	if fireDown && (rapid || !t.dir.fireHeld) && s.Ammo > 0 {
		s.Ammo--
		t.w.Projectiles = append(t.w.Projectiles, Projectile{
			Body: Body{
				ID:     t.nextID("bullet"),
				Pos:    mathutil.Vector2D{X: s.Pos.X + s.W, Y: s.Pos.Y + s.H/2 - BulletHeight/2},
				Vel:    mathutil.Vector2D{X: t.settings.BulletSpeed},
				W:      BulletWidth,
				H:      BulletHeight,
				Active: true,
			},
			Kind:   ProjectileBullet,
			Damage: BulletDamage,
		})
	}
	t.dir.fireHeld = fireDown

	bombDown := t.in.Held(ActionBomb)
	if bombDown && (rapid || !t.dir.bombHeld) && s.Bombs > 0 {
		s.Bombs--
		t.w.Projectiles = append(t.w.Projectiles, Projectile{
			Body: Body{
				ID:     t.nextID("bomb"),
				Pos:    mathutil.Vector2D{X: s.Pos.X + s.W/2 - BombSize/2, Y: s.Pos.Y + s.H},
				Vel:    mathutil.Vector2D{X: BombDriftX, Y: BombDropSpeed},
				W:      BombSize,
				H:      BombSize,
				Active: true,
			},
			Kind:   ProjectileBomb,
			Damage: BombDamage,
		})
	}
	t.dir.bombHeld = bombDown
}

// hurtEnemyFire applies damage from enemy projectiles and contact; the
// shield absorbs it.
func (t *tick) hurtEnemyFire(amount float64) {
	if t.w.PowerUpActive(PowerUpShield) {
		return
	}
	t.hurtPlayer(amount)
}

func (t *tick) hurtPlayer(amount float64) {
	if t.lifeLost || !t.w.Playing {
		return
	}
	s := &t.w.Ship
	s.Health -= amount
	if s.Health <= 0 {
		t.loseLife()
	}
}

// loseLife costs exactly one life per tick, whatever the number of hits.
func (t *tick) loseLife() {
	if t.lifeLost || !t.w.Playing {
		return
	}
	t.lifeLost = true

	w := t.w
	s := &w.Ship
	c := s.Center()
	t.explode(mathutil.Vector2D{X: c.X + w.ScrollOffset, Y: c.Y}, t.now, false)
	t.shake(HitShake*2, HitShakeTime*2)

	w.Lives--
	if w.Lives > 0 {
		x, y := t.shipSpawn()
		s.Health = s.MaxHealth
		s.Pos = mathutil.Vector2D{X: x, Y: y}
		s.Vel = mathutil.Vector2D{}
		return
	}
	w.Lives = 0
	s.Health = 0
	s.Active = false
	w.Playing = false
	w.GameOver = true
}
