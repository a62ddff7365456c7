package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectExtendsInsteadOfStacking(t *testing.T) {
	actives := Collect(nil, PowerUpSpeed, t0)
	actives = Collect(actives, PowerUpSpeed, t0.Add(3*time.Second))

	require.Len(t, actives, 1)
	assert.Equal(t, PowerUpSpeed, actives[0].Kind)
	assert.Equal(t, t0.Add(3*time.Second+PowerUpDuration), actives[0].ExpiresAt)
}

func TestCollectNeverShortens(t *testing.T) {
	far := t0.Add(time.Minute)
	actives := []ActivePowerUp{{Kind: PowerUpShield, ExpiresAt: far}}
	out := Collect(actives, PowerUpShield, t0)

	require.Len(t, out, 1)
	assert.Equal(t, far, out[0].ExpiresAt)
}

func TestCollectKeepsKindsApart(t *testing.T) {
	actives := Collect(nil, PowerUpSpeed, t0)
	actives = Collect(actives, PowerUpShield, t0)
	require.Len(t, actives, 2)
	assert.Equal(t, t0.Add(ShieldDuration), actives[1].ExpiresAt)
}

func TestCollectingTwoSpeedPowerUpsInOneTick(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	ship := w.Ship.Box()
	for _, id := range []string{"p1", "p2"} {
		w.PowerUps = append(w.PowerUps, PowerUp{
			Body: Body{
				ID:     id,
				Pos:    vec(ship.X+10+w.ScrollOffset, ship.Y),
				W:      PowerUpSize,
				H:      PowerUpSize,
				Active: true,
			},
			Kind:      PowerUpSpeed,
			SpawnedAt: t0,
		})
	}

	now := t0.Add(frame)
	next := e.Tick(w, 0, now)
	assert.Empty(t, next.PowerUps)
	require.Len(t, next.ActivePowerUps, 1)
	assert.Equal(t, now.Add(PowerUpDuration), next.ActivePowerUps[0].ExpiresAt)
	assert.True(t, next.PowerUpActive(PowerUpSpeed))
}

func TestExpiredBuffsArePruned(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.ActivePowerUps = []ActivePowerUp{
		{Kind: PowerUpSpeed, ExpiresAt: t0.Add(frame)},
		{Kind: PowerUpShield, ExpiresAt: t0.Add(time.Second)},
	}
	next := e.Tick(w, 0, t0.Add(frame))
	require.Len(t, next.ActivePowerUps, 1)
	assert.Equal(t, PowerUpShield, next.ActivePowerUps[0].Kind)
}

func TestSpeedPowerUpScalesMovement(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.ActivePowerUps = []ActivePowerUp{{Kind: PowerUpSpeed, ExpiresAt: t0.Add(time.Second)}}
	x0 := w.Ship.Pos.X

	next := e.Tick(w, NewInput(ActionRight), t0.Add(frame))
	assert.InDelta(t, x0+DefaultSettings().PlayerSpeed*SpeedBoostMult, next.Ship.Pos.X, 1e-9)
}

func TestRepairPowerUpHealsUpToMax(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.ActivePowerUps = []ActivePowerUp{{Kind: PowerUpRepair, ExpiresAt: t0.Add(time.Second)}}
	w.Ship.Health = ShipMaxHealth - 0.1

	next := e.Tick(w, 0, t0.Add(frame))
	assert.Equal(t, ShipMaxHealth, next.Ship.Health)
}
