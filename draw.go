package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/samber/lo"
	"github.com/tsujio/game-scramble/game"
	"github.com/tsujio/game-scramble/terrain"
)

var (
	skyColor        = color.RGBA{0x08, 0x08, 0x20, 0xff}
	layerColors     = [...]color.RGBA{{0x30, 0x20, 0x50, 0xff}, {0x50, 0x38, 0x28, 0xff}, {0x2a, 0x60, 0x30, 0xff}}
	shipColor       = color.RGBA{0x60, 0xd0, 0xff, 0xff}
	shieldColor     = color.RGBA{0x60, 0xd0, 0xff, 0x60}
	treeColor       = color.RGBA{0x1e, 0x80, 0x2a, 0xff}
	trunkColor      = color.RGBA{0x60, 0x40, 0x20, 0xff}
	rocketColor     = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	heavyColor      = color.RGBA{0xff, 0x80, 0x40, 0xff}
	saucerColor     = color.RGBA{0xc0, 0x60, 0xff, 0xff}
	alienColor      = color.RGBA{0x80, 0xff, 0x60, 0xff}
	crawlerColor    = color.RGBA{0xa0, 0xc0, 0x40, 0xff}
	bossRocketColor = color.RGBA{0xff, 0x50, 0x50, 0xff}
	bossColor       = color.RGBA{0xb0, 0x30, 0xc0, 0xff}
	healthColor     = color.RGBA{0x40, 0xff, 0x40, 0xff}
	damageColor     = color.RGBA{0xff, 0x30, 0x30, 0xff}
	powerUpColors   = [...]color.RGBA{
		game.PowerUpSpeed:       {0x40, 0xa0, 0xff, 0xff},
		game.PowerUpRapidFire:   {0xff, 0xe0, 0x40, 0xff},
		game.PowerUpShield:      {0x60, 0xd0, 0xff, 0xff},
		game.PowerUpDoubleScore: {0xff, 0x60, 0xd0, 0xff},
		game.PowerUpRepair:      {0x40, 0xff, 0x80, 0xff},
	}
	projectileColors = [...]color.RGBA{
		game.ProjectileBullet:   {0xff, 0xff, 0x80, 0xff},
		game.ProjectileBomb:     {0xff, 0xa0, 0x20, 0xff},
		game.ProjectileLaser:    {0xff, 0x40, 0xff, 0xff},
		game.ProjectileFire:     {0xff, 0x60, 0x20, 0xff},
		game.ProjectileFireball: {0xff, 0x30, 0x10, 0xff},
		game.ProjectilePlasma:   {0x90, 0x60, 0xff, 0xff},
	}
)

// canvas draws world and screen space coordinates with the shake offset
// applied.
type canvas struct {
	dst            *ebiten.Image
	scroll, ox, oy float64
}

func (c *canvas) rect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(x+c.ox), float32(y+c.oy), float32(w), float32(h), clr, true)
}

func (c *canvas) worldRect(b *game.Body, clr color.Color) {
	c.rect(b.Pos.X-c.scroll, b.Pos.Y, b.W, b.H, clr)
}

func (c *canvas) circle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(x+c.ox), float32(y+c.oy), float32(r), clr, true)
}

func (c *canvas) line(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x0+c.ox), float32(y0+c.oy), float32(x1+c.ox), float32(y1+c.oy), float32(width), clr, true)
}

func (c *canvas) healthBar(b *game.Body, health, maxHealth float64) {
	if maxHealth <= 0 || health >= maxHealth {
		return
	}
	x := b.Pos.X - c.scroll
	c.rect(x, b.Pos.Y-6, b.W, 3, damageColor)
	c.rect(x, b.Pos.Y-6, b.W*math.Max(0, health/maxHealth), 3, healthColor)
}

func fade(clr color.RGBA, alpha float64) color.RGBA {
	a := lo.Clamp(alpha, 0, 1)
	return color.RGBA{uint8(float64(clr.R) * a), uint8(float64(clr.G) * a), uint8(float64(clr.B) * a), uint8(float64(clr.A) * a)}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.world
	screen.Fill(skyColor)

	c := &canvas{dst: screen, scroll: w.ScrollOffset}
	if w.Shake.Intensity > 0 && w.Now.Before(w.Shake.Until) {
		c.ox = (g.jitter.Float64()*2 - 1) * w.Shake.Intensity
		c.oy = (g.jitter.Float64()*2 - 1) * w.Shake.Intensity
	}

	g.drawTerrain(c)
	g.drawEntities(c)
	g.drawEffects(c)
	g.drawHUD(screen)
}

func (g *Game) drawTerrain(c *canvas) {
	w := g.world
	height := g.engine.Settings().ScreenHeight
	for l := terrain.Background; l <= terrain.Foreground; l++ {
		for _, p := range w.Terrain.Get(l) {
			c.rect(p.X-c.scroll, p.Y, terrain.Step+1, height-p.Y, layerColors[l])
		}
	}
	for _, t := range w.Trees {
		x := t.X - c.scroll
		c.rect(x+t.W*0.4, t.Y+t.H*0.6, t.W*0.2, t.H*0.4, trunkColor)
		c.circle(x+t.W/2, t.Y+t.H*0.35, t.W*0.6, treeColor)
	}
}

func (g *Game) drawEntities(c *canvas) {
	w := g.world

	for i := range w.Rockets {
		r := &w.Rockets[i]
		clr := rocketColor
		if r.Kind == game.RocketHeavy {
			clr = heavyColor
		}
		c.worldRect(&r.Body, clr)
	}
	for i := range w.Saucers {
		s := &w.Saucers[i]
		c.circle(s.Pos.X-c.scroll+s.W/2, s.Pos.Y+s.H/2, s.H/2, saucerColor)
		c.rect(s.Pos.X-c.scroll, s.Pos.Y+s.H*0.4, s.W, s.H*0.3, saucerColor)
	}
	for i := range w.Aliens {
		a := &w.Aliens[i]
		c.worldRect(&a.Body, alienColor)
		c.healthBar(&a.Body, a.Health, a.MaxHealth)
	}
	for i := range w.Crawlers {
		a := &w.Crawlers[i]
		c.worldRect(&a.Body, crawlerColor)
		c.healthBar(&a.Body, a.Health, a.MaxHealth)
	}
	for i := range w.BossRockets {
		b := &w.BossRockets[i]
		c.worldRect(&b.Body, bossRocketColor)
		c.healthBar(&b.Body, b.Health, b.MaxHealth)
	}
	if b := w.Boss; b != nil {
		g.drawBoss(c, b)
	}
	for i := range w.PowerUps {
		p := &w.PowerUps[i]
		c.circle(p.Pos.X-c.scroll+p.W/2, p.Pos.Y+p.H/2, p.W/2, powerUpColors[p.Kind])
	}

	for _, p := range w.Projectiles {
		clr := projectileColors[p.Kind]
		if p.Kind == game.ProjectilePlasma || p.Kind == game.ProjectileFireball {
			c.circle(p.Pos.X+p.W/2, p.Pos.Y+p.H/2, p.W/2, clr)
			continue
		}
		c.rect(p.Pos.X, p.Pos.Y, p.W, p.H, clr)
	}

	s := &w.Ship
	if s.Active {
		c.rect(s.Pos.X, s.Pos.Y+s.H*0.25, s.W, s.H*0.5, shipColor)
		c.rect(s.Pos.X, s.Pos.Y, s.W*0.3, s.H, shipColor)
		if w.PowerUpActive(game.PowerUpShield) {
			center := s.Center()
			c.circle(center.X, center.Y, s.W*0.7, shieldColor)
		}
	}
}

func (g *Game) drawBoss(c *canvas, b *game.Boss) {
	x, y := b.Pos.X-c.scroll, b.Pos.Y
	for i, bend := range b.Tentacles {
		tx := x + b.W*float64(i+1)/float64(len(b.Tentacles)+1)
		ty := y + b.H
		c.line(tx, ty, tx+bend*40, ty+50, 4, bossColor)
	}
	c.circle(x+b.W/2, y+b.H/2, b.H/2, bossColor)
	c.rect(x, y+b.H*0.3, b.W, b.H*0.4, bossColor)
	c.rect(x, y-10, b.W, 5, damageColor)
	c.rect(x, y-10, b.W*math.Max(0, b.Health/b.MaxHealth), 5, healthColor)
}

func (g *Game) drawEffects(c *canvas) {
	w := g.world
	for _, t := range w.Trails {
		alpha := 1 - float64(w.Now.Sub(t.Born))/float64(t.Life)
		c.circle(t.Pos.X-c.scroll, t.Pos.Y, t.Size, fade(t.Color, alpha))
	}
	for i := range w.Explosions {
		e := &w.Explosions[i]
		for j := range e.Particles {
			p := &e.Particles[j]
			left := e.Remaining(p, w.Now)
			if left <= 0 {
				continue
			}
			c.circle(p.Pos.X-c.scroll, p.Pos.Y, p.Size, fade(p.Color, float64(left)/float64(p.Life)))
		}
	}
	for _, p := range w.Popups {
		rise := float64(w.Now.Sub(p.Start)) / float64(p.Duration) * 30
		ebitenutil.DebugPrintAt(c.dst, fmt.Sprintf("+%d", p.Score), int(p.Pos.X-c.scroll+c.ox), int(p.Pos.Y-rise+c.oy))
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	s := w.Ship
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"SCORE %d  LEVEL %d  LIVES %d  HP %.0f  AMMO %d  BOMBS %d  x%.2f  %.1f FPS",
		w.Score, w.Level, w.Lives, s.Health, s.Ammo, s.Bombs, w.Combo.Multiplier, ebiten.ActualFPS(),
	))

	var buffs []string
	for _, a := range w.ActivePowerUps {
		if left := a.ExpiresAt.Sub(w.Now); left > 0 {
			buffs = append(buffs, fmt.Sprintf("%s %.0fs", strings.ToUpper(a.Kind.String()), left.Seconds()))
		}
	}
	if len(buffs) > 0 {
		ebitenutil.DebugPrintAt(screen, strings.Join(buffs, "  "), 0, 16)
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	var lines []string
	switch {
	case w.Paused:
		lines = []string{"PAUSED", "", "P / ESC TO RESUME"}
	case w.GameOver:
		lines = append([]string{"GAME OVER", fmt.Sprintf("SCORE %d", w.Score), "", "ENTER TO PLAY AGAIN", ""}, g.leaderboardLines()...)
	case w.Idle():
		lines = []string{strings.ToUpper(gameName), "", "ARROWS/WASD MOVE  SPACE FIRE  B BOMB  P PAUSE", "ENTER OR TOUCH TO START", ""}
		if g.saved != nil {
			lines = append(lines, fmt.Sprintf("LAST SESSION: LEVEL %d  SCORE %d  (%s)", g.saved.Level, g.saved.Score, g.saved.Timestamp.Format(time.Stamp)), "")
		}
		lines = append(lines, g.leaderboardLines()...)
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, (width-len(line)*6)/2, height/3+i*16)
	}
}

func (g *Game) leaderboardLines() []string {
	return lo.Map(g.leaderboard, func(e game.ScoreEntry, i int) string {
		return fmt.Sprintf("%2d. %-10s %8d  L%-2d %s", i+1, e.Name, e.Score, e.Level, e.Country)
	})
}
