package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scratch(t *testing.T) *tick {
	t.Helper()
	e, w := startedWorld(t)
	w = w.Clone()
	return &tick{Engine: e, prev: w, w: w, now: t0}
}

func TestShakeNeverWeakens(t *testing.T) {
	tk := scratch(t)
	tk.shake(BossShake, BossShakeTime)
	tk.shake(HitShake, HitShakeTime)

	assert.Equal(t, BossShake, tk.w.Shake.Intensity)
	assert.Equal(t, t0.Add(BossShakeTime), tk.w.Shake.Until)

	tk.now = t0.Add(BossShakeTime)
	tk.decayShake()
	assert.Equal(t, ScreenShake{}, tk.w.Shake)
}

func TestTrailIsCapped(t *testing.T) {
	tk := scratch(t)
	for i := 0; i < MaxTrails+25; i++ {
		tk.emitTrail(vec(float64(i), 0), exhaustColor)
	}
	require.Len(t, tk.w.Trails, MaxTrails)
	assert.Equal(t, 25.0, tk.w.Trails[0].Pos.X, "oldest dropped first")
}

func TestScheduledBurstWaitsForItsStart(t *testing.T) {
	tk := scratch(t)
	tk.explode(vec(100, 100), t0.Add(time.Second), true)
	before := tk.w.Explosions[0].Particles[0].Pos

	tk.now = t0.Add(500 * time.Millisecond)
	tk.updateEffects()
	require.Len(t, tk.w.Explosions, 1)
	assert.Equal(t, before, tk.w.Explosions[0].Particles[0].Pos)
	assert.Equal(t, time.Duration(0), tk.w.Explosions[0].Remaining(&tk.w.Explosions[0].Particles[0], tk.now))

	tk.now = t0.Add(time.Second + frame)
	tk.updateEffects()
	assert.NotEqual(t, before, tk.w.Explosions[0].Particles[0].Pos)

	tk.now = t0.Add(time.Second + MegaExplosionLifetime + time.Millisecond)
	tk.updateEffects()
	assert.Empty(t, tk.w.Explosions)
}

func TestPopupsExpire(t *testing.T) {
	tk := scratch(t)
	tk.w.RegisterKill(100, vec(0, 0), t0)

	tk.now = t0.Add(PopupDuration)
	tk.prunePopups()
	assert.Len(t, tk.w.Popups, 1)

	tk.now = t0.Add(PopupDuration + time.Millisecond)
	tk.prunePopups()
	assert.Empty(t, tk.w.Popups)
}
