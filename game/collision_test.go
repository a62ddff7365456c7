package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tsujio/game-scramble/terrain"
)

// treeOverShip is a tree whose screen box covers the ship after one tick.
func treeOverShip(w *World) terrain.Tree {
	return terrain.Tree{X: w.ScrollOffset + 80, Y: 180, W: 100, H: 80}
}

func TestTreeCostsOneLifeAtFullHealth(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.Trees = append(w.Trees, treeOverShip(w), treeOverShip(w))
	full := w.Ship.Health

	next := e.Tick(w, 0, t0.Add(frame))
	assert.Equal(t, StartLives-1, next.Lives)
	assert.Equal(t, full, next.Ship.Health)
	assert.True(t, next.Playing)
	assert.False(t, next.GameOver)
}

func TestTreeIgnoresShield(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.ActivePowerUps = []ActivePowerUp{{Kind: PowerUpShield, ExpiresAt: t0.Add(time.Second)}}
	w.Trees = append(w.Trees, treeOverShip(w))

	next := e.Tick(w, 0, t0.Add(frame))
	assert.Equal(t, StartLives-1, next.Lives)
}

func TestLastLifeEndsTheGame(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.Lives = 1
	w.Trees = append(w.Trees, treeOverShip(w))

	next := e.Tick(w, 0, t0.Add(frame))
	assert.True(t, next.GameOver)
	assert.False(t, next.Playing)
	assert.Equal(t, 0, next.Lives)
	assert.Equal(t, 0.0, next.Ship.Health)
	assert.False(t, next.Ship.Active)
}

func TestEnemyFireDamagesShip(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.Projectiles = append(w.Projectiles, enemyShot("shot", 120, 205, FireDamage))

	next := e.Tick(w, 0, t0.Add(frame))
	assert.Equal(t, ShipMaxHealth-FireDamage, next.Ship.Health)
	assert.Empty(t, next.Projectiles)
}

func TestShieldAbsorbsEnemyFire(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.ActivePowerUps = []ActivePowerUp{{Kind: PowerUpShield, ExpiresAt: t0.Add(time.Second)}}
	w.Projectiles = append(w.Projectiles, enemyShot("shot", 120, 205, FireDamage))

	next := e.Tick(w, 0, t0.Add(frame))
	assert.Equal(t, ShipMaxHealth, next.Ship.Health)
	assert.Empty(t, next.Projectiles, "absorbed shots are still consumed")
}

func TestSeveralLethalHitsCostOneLife(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.Ship.Health = 10
	w.Projectiles = append(w.Projectiles,
		enemyShot("a", 110, 205, 15),
		enemyShot("b", 130, 205, 15),
	)

	next := e.Tick(w, 0, t0.Add(frame))
	assert.Equal(t, StartLives-1, next.Lives)
	assert.Equal(t, ShipMaxHealth, next.Ship.Health)
}

func TestRammingRocketDestroysIt(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	step := DefaultSettings().ScrollSpeed
	w.Rockets = append(w.Rockets, rocketAt(w.ScrollOffset+step+110, 200))

	next := e.Tick(w, 0, t0.Add(frame))
	assert.Empty(t, next.Rockets)
	assert.Equal(t, ShipMaxHealth-RocketDamage, next.Ship.Health)
	assert.Len(t, next.Explosions, 1)
	assert.Equal(t, 0, next.Score, "ramming scores nothing")
}

func TestPlayerFireDoesNotHitShip(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.Projectiles = append(w.Projectiles, bullet(110, 205))

	next := e.Tick(w, 0, t0.Add(frame))
	assert.Equal(t, ShipMaxHealth, next.Ship.Health)
	assert.Len(t, next.Projectiles, 1)
}

func TestAlienNeedsSeveralHits(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	step := DefaultSettings().ScrollSpeed
	w.Aliens = append(w.Aliens, Alien{
		Body: Body{
			ID:     "alien-test",
			Pos:    vec(w.ScrollOffset+step+400, 290),
			W:      AlienSize,
			H:      AlienSize,
			Active: true,
		},
		Health:    AlienHealth,
		MaxHealth: AlienHealth,
		LastFire:  t0,
		FireRate:  AlienFireRate,
	})
	w.Projectiles = append(w.Projectiles, bullet(392, 300), bullet(394, 305))

	next := e.Tick(w, 0, t0.Add(frame))
	if assert.Len(t, next.Aliens, 1) {
		assert.Equal(t, AlienHealth-2*BulletDamage, next.Aliens[0].Health)
	}
	assert.Equal(t, 0, next.Score)
	assert.Empty(t, next.Projectiles)
}
