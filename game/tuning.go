package game

import "time"

// Player
const (
	ShipWidth       = 50.0
	ShipHeight      = 25.0
	ShipMaxHealth   = 100.0
	StartLives      = 3
	StartAmmo       = 200
	StartBombs      = 10
	EdgePenalty     = 25.0
	SpeedBoostMult  = 1.6
	RepairPerTick   = 0.25
	BombGravity     = 0.25
	BombDriftX      = 2.0
	BombDropSpeed   = 2.0
	LevelThreshold  = 2000
	LevelAmmoBonus  = 200
	LevelBombBonus  = 5
	MaxLevelScroll  = 3.0
	LevelScrollStep = 0.25
)

// Projectiles
const (
	BulletWidth    = 10.0
	BulletHeight   = 3.0
	BulletDamage   = 10.0
	BombSize       = 8.0
	BombDamage     = 50.0
	LaserWidth     = 14.0
	LaserHeight    = 2.0
	LaserSpeed     = 7.0
	LaserDamage    = 10.0
	FireSize       = 8.0
	FireDamage     = 8.0
	AlienFireSpeed = 4.0
	CrawlFireSpeed = 3.5
	FireballSize   = 12.0
	FireballSpeed  = 5.0
	FireballDamage = 15.0
	PlasmaSize     = 8.0
	PlasmaDamage   = 12.0
	ScreenMargin   = 50.0
)

// Enemies
const (
	RocketWidth         = 10.0
	RocketHeight        = 30.0
	HeavyRocketWidth    = 16.0
	HeavyRocketHeight   = 40.0
	HeavyRocketSpeedMul = 0.7
	RocketDamage        = 20.0
	HeavyRocketDamage   = 40.0
	RocketBlastRadius   = 40.0
	HeavyBlastRadius    = 80.0
	RocketScore         = 100
	HeavyRocketScore    = 200

	SaucerWidth     = 40.0
	SaucerHeight    = 20.0
	SaucerBaseSpeed = 2.0
	SaucerLevelStep = 0.2
	SaucerBob       = 20.0
	SaucerFireRate  = 1500 * time.Millisecond
	SaucerDamage    = 25.0
	SaucerScore     = 150

	AlienSize     = 30.0
	AlienHealth   = 30.0
	AlienFireRate = 2000 * time.Millisecond
	AlienDamage   = 20.0
	AlienScore    = 250

	CrawlerWidth    = 30.0
	CrawlerHeight   = 18.0
	CrawlerHealth   = 20.0
	CrawlerSpeed    = 1.5
	CrawlerFireRate = 2500 * time.Millisecond
	CrawlerScore    = 200

	BossRocketWidth    = 60.0
	BossRocketHeight   = 30.0
	BossRocketHealth   = 100.0
	BossRocketFireRate = 1200 * time.Millisecond
	BossRocketDamage   = 30.0
	BossRocketScore    = 500
	BossRocketEntry    = 3.0
	BossRocketSway     = 40.0

	BossWidth        = 160.0
	BossHeight       = 120.0
	BossBaseHealth   = 1000.0
	BossLevelHealth  = 250.0
	BossFireRate     = 3000 * time.Millisecond
	BossDamage       = 40.0
	BossScore        = 5000
	BossEntry        = 2.0
	BossSway         = 60.0
	BossTentacles    = 8
	BossTypes        = 6
	BossInterval     = 30 * time.Second
	BossDeathBursts  = 20
	BossBurstSpacing = 80 * time.Millisecond
	BossFinalDelay   = 1600 * time.Millisecond
	BossDrops        = 3
)

// Power-ups
const (
	PowerUpSize      = 20.0
	PowerUpFall      = 1.5
	PowerUpTTL       = 12 * time.Second
	PowerUpDuration  = 10 * time.Second
	ShieldDuration   = 8 * time.Second
	PowerUpFrequency = 15 * time.Second
	PowerUpCap       = 2
)

// Effects and scoring
const (
	ExplosionParticles     = 20
	MegaExplosionParticles = 60
	ExplosionLifetime      = 800 * time.Millisecond
	MegaExplosionLifetime  = 1000 * time.Millisecond
	TrailLifetime          = 400 * time.Millisecond
	MaxTrails              = 200
	PopupDuration          = 1000 * time.Millisecond
	ComboTimeout           = 2000 * time.Millisecond
	ComboStep              = 0.25
	ComboCap               = 3.0
	HitShake               = 8.0
	HitShakeTime           = 300 * time.Millisecond
	BossShake              = 20.0
	BossShakeTime          = 2000 * time.Millisecond
)

// Terrain window, in screen widths.
const (
	TerrainLookahead = 2.0
	TerrainBehind    = 0.2
)
