package game

// Action identifies one held control.
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionBomb
	ActionPause
)

// Input is the set of actions held during one tick.
type Input uint16

func NewInput(actions ...Action) Input {
	var in Input
	for _, a := range actions {
		in = in.With(a)
	}
	return in
}

func (in Input) With(a Action) Input {
	return in | 1<<a
}

func (in Input) Held(a Action) bool {
	return in&(1<<a) != 0
}
