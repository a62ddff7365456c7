package game

// Scheduler runs a callback once, at the next frame of whatever drives the
// game (a display refresh, a test).
type Scheduler interface {
	Schedule(func())
}

// Loop is the cooperative frame loop: while running, each scheduled frame
// runs one tick and re-arms exactly one more. Stop takes effect before the
// next frame; nothing queued runs afterwards.
type Loop struct {
	sched   Scheduler
	tick    func()
	running bool
	armed   bool
}

func NewLoop(sched Scheduler, tick func()) *Loop {
	return &Loop{sched: sched, tick: tick}
}

func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) Start() {
	l.running = true
	l.arm()
}

func (l *Loop) Stop() {
	l.running = false
}

func (l *Loop) arm() {
	if l.armed {
		return
	}
	l.armed = true
	l.sched.Schedule(l.frame)
}

func (l *Loop) frame() {
	l.armed = false
	if !l.running {
		return
	}
	l.tick()
	if l.running {
		l.arm()
	}
}
