package game

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/tsujio/game-scramble/terrain"
)

// director holds the trackers that persist across ticks without being part
// of the snapshot: spawn cooldowns, the mega-boss interval, fire latches and
// id allocation.
type director struct {
	lastSpawn        map[Category]time.Time
	lastBossInterval int
	nextID           int
	fireHeld         bool
	bombHeld         bool
}

func (d *director) reset(now time.Time) {
	d.lastSpawn = make(map[Category]time.Time, len(categories))
	for _, c := range categories {
		d.lastSpawn[c] = now
	}
	d.lastBossInterval = 0
	d.fireHeld = false
	d.bombHeld = false
}

// Engine advances worlds. It is single-writer: one Tick runs to completion
// before the next starts.
type Engine struct {
	settings Settings
	ground   *terrain.Generator
	rng      *rand.Rand
	dir      director
	patterns *patternDriver
	recorder Recorder
	profile  Profile
}

type Option func(*Engine)

func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

func WithProfile(p Profile) Option {
	return func(e *Engine) {
		e.profile = p
	}
}

func NewEngine(settings Settings, rng *rand.Rand, opts ...Option) *Engine {
	e := &Engine{
		settings: settings,
		ground:   terrain.NewGenerator(settings.ScreenHeight),
		rng:      rng,
		patterns: newPatternDriver(),
		recorder: nopRecorder{},
		profile:  Profile{Name: "PLAYER", Country: "--"},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.dir.reset(time.Time{})
	return e
}

func (e *Engine) Settings() Settings {
	return e.settings
}

func (e *Engine) nextID(prefix string) string {
	e.dir.nextID++
	return prefix + "-" + strconv.Itoa(e.dir.nextID)
}

func (e *Engine) shipSpawn() (float64, float64) {
	return 100, e.settings.ScreenHeight / 3
}
