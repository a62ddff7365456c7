package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tsujio/game-scramble/config"
	"github.com/tsujio/game-scramble/control"
	"github.com/tsujio/game-scramble/game"
	"github.com/tsujio/game-scramble/sound"
	"github.com/tsujio/game-scramble/storage"
)

const gameName = "scramble"

// frameQueue is the Scheduler behind game.Loop: callbacks queued during a
// frame run at the next Update.
type frameQueue struct {
	queued []func()
}

func (q *frameQueue) Schedule(f func()) {
	q.queued = append(q.queued, f)
}

func (q *frameQueue) run() {
	queued := q.queued
	q.queued = nil
	for _, f := range queued {
		f()
	}
}

type Game struct {
	jitter      *rand.Rand
	engine      *game.Engine
	store       *storage.Store
	world       *game.World
	frames      *frameQueue
	loop        *game.Loop
	ctrl        control.Controller
	sounds      *sound.Player
	leaderboard []game.ScoreEntry
	saved       *game.SaveGame
}

func (g *Game) Update() error {
	g.ctrl.Update()

	switch {
	case g.world.Idle() || g.world.GameOver:
		if g.ctrl.StartPressed() {
			g.start()
		}
	case g.ctrl.PausePressed():
		g.world = g.engine.TogglePause(g.world)
		if g.world.Paused {
			g.loop.Stop()
		} else {
			g.loop.Start()
		}
	}

	g.frames.run()
	return nil
}

func (g *Game) start() {
	now := time.Now()
	if g.world.GameOver {
		g.world = g.engine.Reset(now)
	}
	g.world = g.engine.Start(g.world, now)
	g.loop.Start()
}

func (g *Game) tick() {
	in := g.ctrl.Input(g.world.Ship.Center())
	next := g.engine.Tick(g.world, in, time.Now())
	g.sounds.Play(sound.Diff(g.world, next))
	g.world = next

	if next.GameOver {
		g.loop.Stop()
		g.refreshRecords()
	}
}

func (g *Game) refreshRecords() {
	entries, err := g.store.Leaderboard()
	if err != nil {
		log.Printf("leaderboard: %v", err)
	}
	g.leaderboard = entries

	saved, err := g.store.LoadSave()
	if err != nil {
		log.Printf("saved game: %v", err)
	}
	g.saved = saved
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Settings()
	return int(s.ScreenWidth), int(s.ScreenHeight)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.Open(cfg.SaveDir)
	if err != nil {
		log.Fatal(err)
	}

	engine := game.NewEngine(cfg.Settings, rand.New(rand.NewSource(cfg.Seed)),
		game.WithRecorder(store),
		game.WithProfile(cfg.Profile),
	)

	g := &Game{
		jitter: rand.New(rand.NewSource(cfg.Seed + 1)),
		engine: engine,
		store:  store,
		world:  engine.NewWorld(time.Now()),
		frames: &frameQueue{},
		sounds: sound.NewPlayer(audio.NewContext(sound.SampleRate), cfg.SoundDir),
	}
	g.loop = game.NewLoop(g.frames, g.tick)
	g.refreshRecords()

	ebiten.SetWindowSize(int(cfg.Settings.ScreenWidth), int(cfg.Settings.ScreenHeight))
	ebiten.SetWindowTitle("Scramble")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
