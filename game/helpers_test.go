package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tsujio/game-util/mathutil"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

const frame = 16 * time.Millisecond

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func startedWorld(t *testing.T, opts ...Option) (*Engine, *World) {
	t.Helper()
	e := NewEngine(DefaultSettings(), testRNG(), opts...)
	w := e.Start(e.NewWorld(t0), t0)
	require.True(t, w.Playing)
	return e, w
}

func vec(x, y float64) mathutil.Vector2D {
	return mathutil.Vector2D{X: x, Y: y}
}

func bullet(x, y float64) Projectile {
	return Projectile{
		Body: Body{
			ID:     "test-bullet",
			Pos:    vec(x, y),
			Vel:    vec(10, 0),
			W:      BulletWidth,
			H:      BulletHeight,
			Active: true,
		},
		Kind:   ProjectileBullet,
		Damage: BulletDamage,
	}
}

func enemyShot(id string, x, y, damage float64) Projectile {
	return Projectile{
		Body: Body{
			ID:     id,
			Pos:    vec(x, y),
			W:      FireSize,
			H:      FireSize,
			Active: true,
		},
		Kind:   ProjectileFire,
		Damage: damage,
	}
}

type fakeRecorder struct {
	saves    []SaveGame
	scores   []ScoreEntry
	discards int
}

func (r *fakeRecorder) OfferSave(s SaveGame)    { r.saves = append(r.saves, s) }
func (r *fakeRecorder) OfferScore(s ScoreEntry) { r.scores = append(r.scores, s) }
func (r *fakeRecorder) DiscardSave()            { r.discards++ }
