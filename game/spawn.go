package game

import (
	"math"
	"time"

	"github.com/samber/lo"
	"github.com/tsujio/game-scramble/terrain"
	"github.com/tsujio/game-util/mathutil"
)

// Category is a spawn-gated population.
type Category int

const (
	CategoryRocket Category = iota
	CategorySaucer
	CategoryAlien
	CategoryCrawler
	CategoryBossRocket
	CategoryPowerUp
)

var categories = []Category{
	CategoryRocket,
	CategorySaucer,
	CategoryAlien,
	CategoryCrawler,
	CategoryBossRocket,
	CategoryPowerUp,
}

// EnemyCategories lists the categories that spawn enemies.
var EnemyCategories = categories[:5]

func (c Category) String() string {
	switch c {
	case CategoryRocket:
		return "rocket"
	case CategorySaucer:
		return "saucer"
	case CategoryAlien:
		return "alien"
	case CategoryCrawler:
		return "crawler"
	case CategoryBossRocket:
		return "bossrocket"
	case CategoryPowerUp:
		return "powerup"
	}
	return "unknown"
}

func levelScaled(base, step, floor time.Duration, level int) time.Duration {
	f := base - time.Duration(level-1)*step
	if f < floor {
		return floor
	}
	return f
}

// SpawnFrequency is the minimum time between two spawns of c. Enemy
// frequencies shrink with level and, by up to 30%, with session time.
func SpawnFrequency(c Category, s Settings, level int, elapsed time.Duration) time.Duration {
	var f time.Duration
	switch c {
	case CategoryRocket:
		f = levelScaled(s.RocketFrequency, 150*time.Millisecond, 500*time.Millisecond, level)
	case CategorySaucer:
		f = levelScaled(4000*time.Millisecond, 300*time.Millisecond, 1000*time.Millisecond, level)
	case CategoryAlien:
		f = levelScaled(6000*time.Millisecond, 400*time.Millisecond, 2000*time.Millisecond, level)
	case CategoryCrawler:
		f = levelScaled(7000*time.Millisecond, 400*time.Millisecond, 2500*time.Millisecond, level)
	case CategoryBossRocket:
		f = levelScaled(15000*time.Millisecond, 1000*time.Millisecond, 6000*time.Millisecond, level)
	default:
		return PowerUpFrequency
	}
	factor := 1 - math.Min(0.3, 0.05*elapsed.Minutes())
	return time.Duration(float64(f) * factor)
}

// SpawnCap is the population ceiling of c at level.
func SpawnCap(c Category, level int) int {
	switch c {
	case CategoryRocket:
		return lo.Min([]int{12, 3 + level})
	case CategorySaucer:
		return lo.Min([]int{8, 1 + level})
	case CategoryAlien, CategoryCrawler:
		return lo.Min([]int{6, 1 + level/2})
	case CategoryBossRocket:
		return lo.Min([]int{3, level / 2})
	case CategoryPowerUp:
		return PowerUpCap
	}
	return 0
}

func (t *tick) runSpawner() {
	elapsed := t.now.Sub(t.w.SessionStart)
	for _, c := range categories {
		if t.now.Sub(t.dir.lastSpawn[c]) <= SpawnFrequency(c, t.settings, t.w.Level, elapsed) {
			continue
		}
		if t.w.EnemyCount(c) >= SpawnCap(c, t.w.Level) {
			continue
		}
		// A failed spawn keeps the cooldown so the next tick retries.
		if t.spawn(c) {
			t.dir.lastSpawn[c] = t.now
		}
	}
	t.scheduleBoss(elapsed)
}

func (t *tick) spawn(c Category) bool {
	switch c {
	case CategoryRocket:
		return t.spawnRocket()
	case CategorySaucer:
		return t.spawnSaucer()
	case CategoryAlien:
		return t.spawnAlien()
	case CategoryCrawler:
		return t.spawnCrawler()
	case CategoryBossRocket:
		return t.spawnBossRocket()
	case CategoryPowerUp:
		return t.spawnPowerUp()
	}
	return false
}

func (t *tick) rightEdge() float64 {
	return t.w.ScrollOffset + t.settings.ScreenWidth
}

func (t *tick) spawnRocket() bool {
	visible := terrain.Between(t.w.Terrain.Middle, t.w.ScrollOffset, t.rightEdge())
	if len(visible) == 0 {
		return false
	}
	p := visible[t.rng.Intn(len(visible))]

	r := Rocket{
		Kind:            RocketNormal,
		Damage:          RocketDamage,
		ExplosionRadius: RocketBlastRadius,
	}
	w, h, speed := RocketWidth, RocketHeight, t.settings.RocketSpeed
	if t.rng.Float64() < math.Min(0.5, 0.1*float64(t.w.Level)) {
		r.Kind = RocketHeavy
		r.Damage = HeavyRocketDamage
		r.ExplosionRadius = HeavyBlastRadius
		w, h, speed = HeavyRocketWidth, HeavyRocketHeight, speed*HeavyRocketSpeedMul
	}
	r.Body = Body{
		ID:     t.nextID("rocket"),
		Pos:    mathutil.Vector2D{X: p.X - w/2, Y: p.Y - h},
		Vel:    mathutil.Vector2D{X: 0, Y: -speed},
		W:      w,
		H:      h,
		Active: true,
	}
	t.w.Rockets = append(t.w.Rockets, r)
	return true
}

func (t *tick) spawnSaucer() bool {
	x := t.rightEdge() + 20
	maxY := t.ground.GroundAt(t.w.Terrain, terrain.Middle, x) - 100
	y := 50.0
	if maxY > y {
		y += t.rng.Float64() * (maxY - y)
	}
	t.w.Saucers = append(t.w.Saucers, Saucer{
		Body: Body{
			ID:     t.nextID("saucer"),
			Pos:    mathutil.Vector2D{X: x, Y: y},
			Vel:    mathutil.Vector2D{X: -(SaucerBaseSpeed + SaucerLevelStep*float64(t.w.Level))},
			W:      SaucerWidth,
			H:      SaucerHeight,
			Active: true,
		},
		BaseY:    y,
		Phase:    t.rng.Float64() * 2 * math.Pi,
		LastFire: t.now,
		FireRate: SaucerFireRate,
	})
	return true
}

// groundSample finds the sample of layer l at x, failing when the layer does
// not reach that far.
func (t *tick) groundSample(l terrain.Layer, x float64) (terrain.Point, bool) {
	p, ok := terrain.Nearest(t.w.Terrain.Get(l), x)
	if !ok || math.Abs(p.X-x) > terrain.Step {
		return terrain.Point{}, false
	}
	return p, true
}

func (t *tick) spawnAlien() bool {
	p, ok := t.groundSample(terrain.Middle, t.rightEdge()+t.rng.Float64()*100)
	if !ok {
		return false
	}
	t.w.Aliens = append(t.w.Aliens, Alien{
		Body: Body{
			ID:     t.nextID("alien"),
			Pos:    mathutil.Vector2D{X: p.X - AlienSize/2, Y: p.Y - AlienSize},
			W:      AlienSize,
			H:      AlienSize,
			Active: true,
		},
		Health:    AlienHealth,
		MaxHealth: AlienHealth,
		LastFire:  t.now,
		FireRate:  AlienFireRate,
	})
	return true
}

func (t *tick) spawnCrawler() bool {
	p, ok := t.groundSample(terrain.Foreground, t.rightEdge()+50)
	if !ok {
		return false
	}
	t.w.Crawlers = append(t.w.Crawlers, CrawlingAlien{
		Body: Body{
			ID:     t.nextID("crawler"),
			Pos:    mathutil.Vector2D{X: p.X - CrawlerWidth/2, Y: p.Y - CrawlerHeight},
			W:      CrawlerWidth,
			H:      CrawlerHeight,
			Active: true,
		},
		Health:     CrawlerHealth,
		MaxHealth:  CrawlerHealth,
		LastFire:   t.now,
		FireRate:   CrawlerFireRate,
		TargetX:    t.w.ScrollOffset + t.w.Ship.Center().X,
		CrawlSpeed: CrawlerSpeed,
	})
	return true
}

func (t *tick) spawnBossRocket() bool {
	h := t.settings.ScreenHeight
	y := 60 + t.rng.Float64()*math.Max(0, h*0.5-60)
	t.w.BossRockets = append(t.w.BossRockets, BossRocket{
		Body: Body{
			ID:     t.nextID("bossrocket"),
			Pos:    mathutil.Vector2D{X: t.rightEdge() + 20, Y: y},
			Vel:    mathutil.Vector2D{X: -BossRocketEntry},
			W:      BossRocketWidth,
			H:      BossRocketHeight,
			Active: true,
		},
		Health:    BossRocketHealth,
		MaxHealth: BossRocketHealth,
		LastFire:  t.now,
		FireRate:  BossRocketFireRate,
		HoverX:    t.settings.ScreenWidth * (0.75 + 0.1*t.rng.Float64()),
		BaseY:     y,
	})
	return true
}

func (t *tick) spawnPowerUp() bool {
	x := t.w.ScrollOffset + t.settings.ScreenWidth*(0.1+0.8*t.rng.Float64())
	t.dropPowerUp(mathutil.Vector2D{X: x, Y: -PowerUpSize}, PowerUpKind(t.rng.Intn(int(powerUpKinds))))
	return true
}

// scheduleBoss spawns the mega-boss at most once per 30s window and only
// while none is alive. The type rotates with the window index.
func (t *tick) scheduleBoss(elapsed time.Duration) {
	interval := int(elapsed / BossInterval)
	if interval <= t.dir.lastBossInterval {
		return
	}
	if t.w.Boss != nil && t.w.Boss.Active {
		return
	}
	t.dir.lastBossInterval = interval

	health := BossBaseHealth + BossLevelHealth*float64(t.w.Level-1)
	baseY := t.settings.ScreenHeight * 0.2
	t.w.Boss = &Boss{
		Body: Body{
			ID:     t.nextID("boss"),
			Pos:    mathutil.Vector2D{X: t.rightEdge() + 20, Y: baseY},
			Vel:    mathutil.Vector2D{X: -BossEntry},
			W:      BossWidth,
			H:      BossHeight,
			Active: true,
		},
		Health:    health,
		MaxHealth: health,
		FireRate:  BossFireRate,
		BossType:  (interval - 1) % BossTypes,
		BaseY:     baseY,
	}
}
