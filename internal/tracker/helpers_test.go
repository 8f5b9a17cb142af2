package tracker

import (
	"time"

	"github.com/aretw0/b3270/pkg/adapters/memory"
	"github.com/aretw0/b3270/pkg/events"
	"github.com/aretw0/b3270/pkg/ports"
)

// fakeScheduler records timeouts and fires them on demand.
type fakeScheduler struct {
	next    ports.TimeoutID
	pending map[ports.TimeoutID]func()
	delays  []time.Duration
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: make(map[ports.TimeoutID]func())}
}

func (f *fakeScheduler) AddTimeout(d time.Duration, fn func()) ports.TimeoutID {
	f.next++
	f.pending[f.next] = fn
	f.delays = append(f.delays, d)
	return f.next
}

func (f *fakeScheduler) RemoveTimeout(id ports.TimeoutID) {
	delete(f.pending, id)
}

// fire runs every pending timeout once.
func (f *fakeScheduler) fire() int {
	due := f.pending
	f.pending = make(map[ports.TimeoutID]func())
	for _, fn := range due {
		fn()
	}
	return len(due)
}

type countingEraser struct{ calls int }

func (e *countingEraser) Erase() { e.calls++ }

type fixture struct {
	engine   *memory.Engine
	sched    *fakeScheduler
	recorder *events.Recorder
	eraser   *countingEraser
	stats    *Stats
	conn     *Connection
	security *Security
}

func newFixture() *fixture {
	f := &fixture{
		engine:   memory.NewEngine(),
		sched:    newFakeScheduler(),
		recorder: &events.Recorder{},
		eraser:   &countingEraser{},
	}
	emitter := events.NewEmitter(events.WithSink(f.recorder))
	f.stats = NewStats(f.engine, f.sched, emitter)
	f.conn = NewConnection(f.engine, f.eraser, f.stats, emitter)
	f.security = NewSecurity(f.engine, emitter)
	return f
}
