package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterKillGrowsStreakInsideWindow(t *testing.T) {
	w := &World{Combo: newCombo()}

	assert.Equal(t, 100, w.RegisterKill(100, vec(1, 2), t0))
	assert.Equal(t, 1, w.Combo.Count)
	assert.Equal(t, 1.0, w.Combo.Multiplier)

	assert.Equal(t, 150, w.RegisterKill(100, vec(1, 2), t0.Add(time.Second)))
	assert.Equal(t, 2, w.Combo.Count)
	assert.Equal(t, 1.5, w.Combo.Multiplier)

	require.Len(t, w.Popups, 2)
	assert.Equal(t, 150, w.Popups[1].Score)
	assert.Equal(t, vec(1, 2), w.Popups[1].Pos)
	assert.Equal(t, t0.Add(time.Second), w.Combo.LastKill)
}

func TestRegisterKillCapsMultiplier(t *testing.T) {
	w := &World{Combo: newCombo()}
	now := t0
	for i := 0; i < 20; i++ {
		w.RegisterKill(10, vec(0, 0), now)
		now = now.Add(100 * time.Millisecond)
	}
	assert.Equal(t, ComboCap, w.Combo.Multiplier)
	assert.Equal(t, 30, w.RegisterKill(10, vec(0, 0), now))
}

func TestRegisterKillRestartsAfterTimeout(t *testing.T) {
	w := &World{Combo: newCombo()}
	w.RegisterKill(100, vec(0, 0), t0)
	w.RegisterKill(100, vec(0, 0), t0.Add(time.Second))

	score := w.RegisterKill(100, vec(0, 0), t0.Add(time.Second+ComboTimeout+time.Millisecond))
	assert.Equal(t, 100, score)
	assert.Equal(t, 1, w.Combo.Count)
}

func TestRegisterKillFloorsScore(t *testing.T) {
	w := &World{Combo: newCombo()}
	w.RegisterKill(1, vec(0, 0), t0)
	assert.Equal(t, 1, w.RegisterKill(1, vec(0, 0), t0.Add(time.Millisecond)))
}

func TestComboDecaysOnIdleTick(t *testing.T) {
	e, w := startedWorld(t)
	w = w.Clone()
	w.Combo = ComboState{Count: 3, Multiplier: 1.75, LastKill: t0, Timeout: ComboTimeout}

	held := e.Tick(w, 0, t0.Add(ComboTimeout))
	assert.Equal(t, 3, held.Combo.Count, "still inside the window")

	next := e.Tick(held, 0, t0.Add(ComboTimeout+time.Millisecond))
	assert.Equal(t, 0, next.Combo.Count)
	assert.Equal(t, 1.0, next.Combo.Multiplier)
}
