package game

import (
	"github.com/tsujio/game-scramble/geom"
)

const (
	dropChanceLight = 0.10
	dropChanceAlien = 0.25
	dropChanceHeavy = 0.50
)

// resolveCollisions runs every pair category once. A hit in one category
// never cancels the checks of another; only deactivated entities drop out.
func (t *tick) resolveCollisions() {
	t.projectilesVsRockets()
	t.projectilesVsSaucers()
	t.projectilesVsAliens()
	t.projectilesVsCrawlers()
	t.projectilesVsBossRockets()
	t.projectilesVsBoss()
	t.enemyFireVsShip()
	t.shipVsTrees()
	t.shipVsEnemies()
	t.shipVsPowerUps()
}

func (t *tick) shipBox() (geom.Box, bool) {
	s := &t.w.Ship
	return s.Box(), s.Active && t.w.Playing
}

// forPlayerHits calls hit for every active player projectile overlapping the
// screen box of a world-space target, until the target deactivates.
func (t *tick) forPlayerHits(target *Body, hit func(p *Projectile)) {
	box := target.ScreenBox(t.w.ScrollOffset)
	for i := range t.w.Projectiles {
		p := &t.w.Projectiles[i]
		if !target.Active {
			return
		}
		if !p.Active || !p.Kind.FromPlayer() {
			continue
		}
		if p.Box().Overlaps(box) {
			hit(p)
		}
	}
}

func (t *tick) projectilesVsRockets() {
	for i := range t.w.Rockets {
		r := &t.w.Rockets[i]
		if !r.Active {
			continue
		}
		t.forPlayerHits(&r.Body, func(p *Projectile) {
			p.Active = false
			r.Active = false
			c := r.Center()
			t.explode(*c, t.now, false)
			base := RocketScore
			if r.Kind == RocketHeavy {
				base = HeavyRocketScore
			}
			t.award(base, c)
			t.w.Ship.Ammo += 100
			t.w.Ship.Bombs += 5
			t.maybeDrop(dropChanceLight, c)
		})
	}
}

func (t *tick) projectilesVsSaucers() {
	for i := range t.w.Saucers {
		s := &t.w.Saucers[i]
		if !s.Active {
			continue
		}
		t.forPlayerHits(&s.Body, func(p *Projectile) {
			p.Active = false
			s.Active = false
			c := s.Center()
			t.explode(*c, t.now, false)
			t.award(SaucerScore, c)
			t.w.Ship.Ammo += 50
			t.w.Ship.Bombs += 2
			t.maybeDrop(dropChanceLight, c)
		})
	}
}

// damageTarget subtracts projectile damage and reports whether the target
// is destroyed.
func damageTarget(health *float64, p *Projectile) bool {
	p.Active = false
	*health -= p.Damage
	return *health <= 0
}

func (t *tick) projectilesVsAliens() {
	for i := range t.w.Aliens {
		a := &t.w.Aliens[i]
		if !a.Active {
			continue
		}
		t.forPlayerHits(&a.Body, func(p *Projectile) {
			if !damageTarget(&a.Health, p) {
				return
			}
			a.Active = false
			c := a.Center()
			t.explode(*c, t.now, false)
			t.award(AlienScore, c)
			t.w.Ship.Ammo += 30
			t.w.Ship.Bombs++
			t.maybeDrop(dropChanceAlien, c)
		})
	}
}

func (t *tick) projectilesVsCrawlers() {
	for i := range t.w.Crawlers {
		a := &t.w.Crawlers[i]
		if !a.Active {
			continue
		}
		t.forPlayerHits(&a.Body, func(p *Projectile) {
			if !damageTarget(&a.Health, p) {
				return
			}
			a.Active = false
			c := a.Center()
			t.explode(*c, t.now, false)
			t.award(CrawlerScore, c)
			t.w.Ship.Ammo += 30
			t.w.Ship.Bombs++
			t.maybeDrop(dropChanceAlien, c)
		})
	}
}

func (t *tick) projectilesVsBossRockets() {
	for i := range t.w.BossRockets {
		b := &t.w.BossRockets[i]
		if !b.Active {
			continue
		}
		t.forPlayerHits(&b.Body, func(p *Projectile) {
			if !damageTarget(&b.Health, p) {
				return
			}
			b.Active = false
			c := b.Center()
			t.explode(*c, t.now, false)
			t.award(BossRocketScore, c)
			t.w.Ship.Ammo += 150
			t.w.Ship.Bombs += 3
			t.maybeDrop(dropChanceHeavy, c)
		})
	}
}

func (t *tick) projectilesVsBoss() {
	b := t.w.Boss
	if b == nil || !b.Active {
		return
	}
	t.forPlayerHits(&b.Body, func(p *Projectile) {
		if damageTarget(&b.Health, p) {
			t.killBoss()
		}
	})
}

func (t *tick) enemyFireVsShip() {
	ship, ok := t.shipBox()
	if !ok {
		return
	}
	for i := range t.w.Projectiles {
		p := &t.w.Projectiles[i]
		if !p.Active || p.Kind.FromPlayer() {
			continue
		}
		if p.Box().Overlaps(ship) {
			p.Active = false
			t.hurtEnemyFire(p.Damage)
		}
	}
}

// shipVsTrees costs a full life on contact, whatever the health and even
// under a shield.
func (t *tick) shipVsTrees() {
	ship, ok := t.shipBox()
	if !ok {
		return
	}
	for _, tr := range t.w.Trees {
		box := geom.Box{X: tr.X, Y: tr.Y, W: tr.W, H: tr.H}.Translate(-t.w.ScrollOffset, 0)
		if box.Overlaps(ship) {
			t.loseLife()
			return
		}
	}
}

// contact destroys a world-space enemy rammed by the ship and applies its
// contact damage.
func (t *tick) contact(b *Body, damage float64) {
	ship, ok := t.shipBox()
	if !ok || !b.Active {
		return
	}
	if !b.ScreenBox(t.w.ScrollOffset).Overlaps(ship) {
		return
	}
	b.Active = false
	t.explode(*b.Center(), t.now, false)
	t.hurtEnemyFire(damage)
}

func (t *tick) shipVsEnemies() {
	for i := range t.w.Rockets {
		r := &t.w.Rockets[i]
		t.contact(&r.Body, r.Damage)
	}
	for i := range t.w.Saucers {
		t.contact(&t.w.Saucers[i].Body, SaucerDamage)
	}
	for i := range t.w.Aliens {
		t.contact(&t.w.Aliens[i].Body, AlienDamage)
	}
	for i := range t.w.Crawlers {
		t.contact(&t.w.Crawlers[i].Body, AlienDamage)
	}
	for i := range t.w.BossRockets {
		t.contact(&t.w.BossRockets[i].Body, BossRocketDamage)
	}

	b := t.w.Boss
	ship, ok := t.shipBox()
	if !ok || b == nil || !b.Active {
		return
	}
	if b.ScreenBox(t.w.ScrollOffset).Overlaps(ship) {
		t.hurtEnemyFire(BossDamage)
	}
}

func (t *tick) shipVsPowerUps() {
	ship, ok := t.shipBox()
	if !ok {
		return
	}
	for i := range t.w.PowerUps {
		p := &t.w.PowerUps[i]
		if !p.Active || !p.ScreenBox(t.w.ScrollOffset).Overlaps(ship) {
			continue
		}
		p.Active = false
		t.w.ActivePowerUps = Collect(t.w.ActivePowerUps, p.Kind, t.now)
	}
}
