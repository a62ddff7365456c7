package game

import (
	"image/color"
	"math"
	"time"

	"github.com/tsujio/game-util/mathutil"
)

var (
	megaColors = []color.RGBA{
		{0xff, 0xff, 0xff, 0xff},
		{0xcc, 0x66, 0xff, 0xff},
		{0xff, 0x44, 0xaa, 0xff},
	}
)

// updateBoss moves the mega-boss in, sways it, animates the tentacles and
// runs its attack pattern while it is on screen.
func (t *tick) updateBoss() {
	b := t.w.Boss
	if b == nil || !b.Active {
		return
	}
	settle := t.settings.ScreenWidth * 0.65
	if b.Pos.X-t.w.ScrollOffset > settle {
		b.Vel.X = -BossEntry
	} else {
		b.Vel.X = t.scrollStep
	}
	b.Phase += 0.02
	b.Pos.X += b.Vel.X
	b.Pos.Y = b.BaseY + math.Sin(b.Phase)*BossSway
	for i := range b.Tentacles {
		b.Tentacles[i] = math.Sin(b.Phase*4+float64(i)*math.Pi/4) * 0.6
	}

	if !t.onScreen(&b.Body) {
		return
	}
	box := b.ScreenBox(t.w.ScrollOffset)
	ship := t.w.Ship.Center()
	t.patterns.aim(box.X+box.W*0.2, box.Y+box.H/2, ship.X, ship.Y)
	if t.now.Sub(b.LastFire) >= b.FireRate {
		b.LastFire = t.now
		t.patterns.startVolley(b.ID, b.BossType)
	}
	t.w.Projectiles = append(t.w.Projectiles, t.patterns.step(t.nextID)...)
}

// killBoss stages the long death sequence: staggered bursts, one final mega
// burst, a strong shake, a fixed award and guaranteed drops.
func (t *tick) killBoss() {
	b := t.w.Boss
	b.Active = false
	t.patterns.stop()

	for i := 0; i < BossDeathBursts; i++ {
		at := mathutil.Vector2D{
			X: b.Pos.X + t.rng.Float64()*b.W,
			Y: b.Pos.Y + t.rng.Float64()*b.H,
		}
		t.explode(at, t.now.Add(time.Duration(i)*BossBurstSpacing), true)
	}
	t.w.Explosions = append(t.w.Explosions, t.newExplosion(*b.Center(), t.now.Add(BossFinalDelay), MegaExplosionParticles*2, true))
	t.shake(BossShake, BossShakeTime)

	t.w.Score += BossScore
	t.w.Popups = append(t.w.Popups, ScorePopup{
		Pos:      *b.Center(),
		Score:    BossScore,
		Start:    t.now,
		Duration: PopupDuration,
	})
	t.w.Ship.Ammo += 500
	t.w.Ship.Bombs += 10
	for i := 0; i < BossDrops; i++ {
		at := mathutil.Vector2D{X: b.Pos.X + float64(i)*b.W/BossDrops, Y: b.Pos.Y + b.H/2}
		t.dropPowerUp(at, PowerUpKind(t.rng.Intn(int(powerUpKinds))))
	}
}
