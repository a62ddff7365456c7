// Package control turns keyboard and touch state into game input.
package control

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
	"github.com/tsujio/game-scramble/game"
	"github.com/tsujio/game-util/mathutil"
)

// DeadZone is the distance under which a touch no longer pulls the ship.
const DeadZone = 8.0

var bindings = []struct {
	action game.Action
	keys   []ebiten.Key
}{
	{game.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{game.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{game.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{game.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{game.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{game.ActionBomb, []ebiten.Key{ebiten.KeyB, ebiten.KeyX}},
	{game.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
}

// Keys maps held keys to actions.
func Keys(pressed func(ebiten.Key) bool) game.Input {
	var in game.Input
	for _, b := range bindings {
		if lo.SomeBy(b.keys, pressed) {
			in = in.With(b.action)
		}
	}
	return in
}

// Controller tracks touches across frames. Update must run once per frame
// before Input.
type Controller struct {
	pointers pointers
}

func (c *Controller) Update() {
	c.pointers.poll()
}

// Input is the held input for a ship centered at ship, from keys and
// pointers together.
func (c *Controller) Input(ship *mathutil.Vector2D) game.Input {
	return Keys(ebiten.IsKeyPressed) | pointerInput(c.pointers.held, ship)
}

// StartPressed reports Enter or a fresh touch.
func (c *Controller) StartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || anyPressed(c.pointers.held)
}

func (c *Controller) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
