package game

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestEdgeContactCostsHealth(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.Ship.Pos.X = 2

	next := e.Tick(w, NewInput(ActionLeft), t0.Add(frame))
	assert.Equal(t, 1.0, next.Ship.Pos.X)
	assert.Equal(t, ShipMaxHealth-EdgePenalty, next.Ship.Health)
	assert.Len(t, next.Explosions, 1)
	assert.Equal(t, HitShake, next.Shake.Intensity)
}

func TestEdgeContactCanCostALife(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	s := DefaultSettings()
	w.Ship.Pos.Y = s.ScreenHeight - ShipHeight - 2
	w.Ship.Health = EdgePenalty

	next := e.Tick(w, NewInput(ActionDown), t0.Add(frame))
	assert.Equal(t, StartLives-1, next.Lives)
	assert.Equal(t, ShipMaxHealth, next.Ship.Health)
	assert.Equal(t, s.ScreenHeight/3, next.Ship.Pos.Y, "respawned")
}

func TestShipMovesWithoutInertia(t *testing.T) {
	e, w := startedWorld(t)
	x, y := w.Ship.Pos.X, w.Ship.Pos.Y
	speed := DefaultSettings().PlayerSpeed

	w = e.Tick(w, NewInput(ActionRight, ActionDown), t0.Add(frame))
	assert.Equal(t, x+speed, w.Ship.Pos.X)
	assert.Equal(t, y+speed, w.Ship.Pos.Y)

	w = e.Tick(w, 0, t0.Add(2*frame))
	assert.Equal(t, x+speed, w.Ship.Pos.X)
	assert.Equal(t, y+speed, w.Ship.Pos.Y)
}

func countKind(w *World, k ProjectileKind) int {
	return lo.CountBy(w.Projectiles, func(p Projectile) bool { return p.Kind == k })
}

func TestFireIsEdgeTriggered(t *testing.T) {
	e, w := startedWorld(t)
	now := t0
	press := func(in Input) {
		now = now.Add(frame)
		w = e.Tick(w, in, now)
	}

	press(NewInput(ActionFire))
	press(NewInput(ActionFire))
	press(NewInput(ActionFire))
	assert.Equal(t, 1, countKind(w, ProjectileBullet))
	assert.Equal(t, StartAmmo-1, w.Ship.Ammo)

	press(0)
	press(NewInput(ActionFire))
	assert.Equal(t, 2, countKind(w, ProjectileBullet))

	press(NewInput(ActionBomb))
	press(NewInput(ActionBomb))
	assert.Equal(t, 1, countKind(w, ProjectileBomb))
	assert.Equal(t, StartBombs-1, w.Ship.Bombs)
}

func TestRapidFireRepeatsWhileHeld(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.ActivePowerUps = []ActivePowerUp{{Kind: PowerUpRapidFire, ExpiresAt: t0.Add(time.Second)}}

	now := t0
	for i := 0; i < 3; i++ {
		now = now.Add(frame)
		w = e.Tick(w, NewInput(ActionFire), now)
	}
	assert.Equal(t, 3, countKind(w, ProjectileBullet))
}

func TestNoAmmoNoBullet(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.Ship.Ammo = 0

	next := e.Tick(w, NewInput(ActionFire), t0.Add(frame))
	assert.Equal(t, 0, countKind(next, ProjectileBullet))
	assert.Equal(t, 0, next.Ship.Ammo)
}

func TestBombsFallUnderGravity(t *testing.T) {
	e, w := startedWorld(t)
	w = e.Tick(w, NewInput(ActionBomb), t0.Add(frame))
	bomb, ok := lo.Find(w.Projectiles, func(p Projectile) bool { return p.Kind == ProjectileBomb })
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, BombDropSpeed+BombGravity, bomb.Vel.Y)

	w = e.Tick(w, 0, t0.Add(2*frame))
	bomb, _ = lo.Find(w.Projectiles, func(p Projectile) bool { return p.Kind == ProjectileBomb })
	assert.Equal(t, BombDropSpeed+2*BombGravity, bomb.Vel.Y)
}

func TestBombBurstsOnMiddleTerrain(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.Projectiles = append(w.Projectiles, Projectile{
		Body: Body{
			ID:     "bomb-test",
			Pos:    vec(300, 590),
			Vel:    vec(BombDriftX, BombDropSpeed),
			W:      BombSize,
			H:      BombSize,
			Active: true,
		},
		Kind:   ProjectileBomb,
		Damage: BombDamage,
	})

	next := e.Tick(w, 0, t0.Add(frame))
	assert.Equal(t, 0, countKind(next, ProjectileBomb))
	assert.Len(t, next.Explosions, 1)
}
