package control

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
	"github.com/tsujio/game-scramble/game"
	"github.com/tsujio/game-util/mathutil"
)

// Pointer is a finger on the screen or the held left mouse button. The
// left button stands in for a finger so the game plays with a mouse.
type Pointer interface {
	// Refresh reads the position for this frame.
	Refresh()
	Pressed() bool
	Lifted() bool
	At() *mathutil.Vector2D
}

// Steer pulls the ship center toward a pointer and keeps firing.
func Steer(ship, target *mathutil.Vector2D) game.Input {
	in := game.NewInput(game.ActionFire)
	if target == nil {
		return in
	}
	d := target.Sub(ship)
	if d.X > DeadZone {
		in = in.With(game.ActionRight)
	} else if d.X < -DeadZone {
		in = in.With(game.ActionLeft)
	}
	if d.Y > DeadZone {
		in = in.With(game.ActionDown)
	} else if d.Y < -DeadZone {
		in = in.With(game.ActionUp)
	}
	return in
}

// pointerInput gives the oldest live pointer the stick and any other one
// the bomb button. Pointers lifted this frame no longer count.
func pointerInput(held []Pointer, ship *mathutil.Vector2D) game.Input {
	live := lo.Filter(held, func(p Pointer, _ int) bool { return !p.Lifted() })
	if len(live) == 0 {
		return 0
	}
	in := Steer(ship, live[0].At())
	if len(live) > 1 {
		in = in.With(game.ActionBomb)
	}
	return in
}

func anyPressed(held []Pointer) bool {
	return lo.SomeBy(held, func(p Pointer) bool { return p.Pressed() })
}

// pointers tracks what is held on the screen from frame to frame.
type pointers struct {
	held  []Pointer
	fresh []ebiten.TouchID
}

// poll drops pointers lifted last frame and picks up new ones.
func (ps *pointers) poll() {
	ps.held = lo.Filter(ps.held, func(p Pointer, _ int) bool { return !p.Lifted() })
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ps.held = append(ps.held, &mousePointer{})
	}
	ps.fresh = inpututil.AppendJustPressedTouchIDs(ps.fresh[:0])
	for _, id := range ps.fresh {
		ps.held = append(ps.held, &finger{id: id})
	}
	for _, p := range ps.held {
		p.Refresh()
	}
}

type mousePointer struct {
	at *mathutil.Vector2D
}

func (m *mousePointer) Refresh() {
	x, y := ebiten.CursorPosition()
	m.at = mathutil.NewVector2D(float64(x), float64(y))
}

func (m *mousePointer) Pressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (m *mousePointer) Lifted() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (m *mousePointer) At() *mathutil.Vector2D {
	return m.at
}

type finger struct {
	id ebiten.TouchID
	at *mathutil.Vector2D
}

// Refresh keeps the last position of a finger lifted this frame, since
// ebiten no longer reports where it was.
func (f *finger) Refresh() {
	var x, y int
	if f.Lifted() {
		x, y = inpututil.TouchPositionInPreviousTick(f.id)
	} else {
		x, y = ebiten.TouchPosition(f.id)
	}
	f.at = mathutil.NewVector2D(float64(x), float64(y))
}

func (f *finger) Pressed() bool {
	return inpututil.TouchPressDuration(f.id) == 1
}

func (f *finger) Lifted() bool {
	return inpututil.IsTouchJustReleased(f.id)
}

func (f *finger) At() *mathutil.Vector2D {
	return f.at
}
