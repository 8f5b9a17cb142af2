package tracker

import (
	"testing"

	"github.com/aretw0/b3270/pkg/domain"
	"github.com/aretw0/b3270/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatted(rec *events.Recorder) []string {
	var out []string
	for _, ev := range rec.Events() {
		out = append(out, events.Format(ev))
	}
	return out
}

func TestConnection_EdgeTriggered(t *testing.T) {
	f := newFixture()

	f.conn.Notify() // still not connected
	assert.Empty(t, f.recorder.Events())

	f.engine.SetState(domain.Resolving)
	f.conn.Notify()
	f.conn.Notify()
	f.engine.SetState(domain.Pending)
	f.conn.Notify()
	f.conn.Notify()

	conn := f.recorder.Tagged(domain.TagConnection)
	require.Len(t, conn, 2)
	state, _ := conn[0].Get("state")
	assert.Equal(t, "resolving", state)
	state, _ = conn[1].Get("state")
	assert.Equal(t, "pending", state)
	assert.Equal(t, domain.Pending, f.conn.State())
}

func TestConnection_ConnectAndDisconnect(t *testing.T) {
	f := newFixture()

	f.engine.Connect("host.example")
	f.conn.Notify()

	assert.Equal(t, []string{
		`connection state="connected-3270" host="host.example"`,
	}, formatted(f.recorder), "zero counters after the reset produce no stats event")
	assert.Equal(t, 1, f.eraser.calls)
	assert.True(t, f.stats.Running())

	// Moving between connected states does not erase again.
	f.engine.SetState(domain.ConnectedTN3270E)
	f.conn.Notify()
	assert.Equal(t, 1, f.eraser.calls)

	f.engine.AddReceived(120, 3)
	f.recorder.Reset()
	f.engine.Disconnect()
	f.conn.Notify()

	assert.Equal(t, []string{
		`stats bytes-received="120" records-received="3" bytes-sent="0" records-sent="0"`,
		`connection state="not-connected"`,
	}, formatted(f.recorder))
	assert.False(t, f.stats.Running())
	assert.Empty(t, f.sched.pending, "disconnect cancels the poll")
}

func TestConnection_DisconnectWithoutTraffic(t *testing.T) {
	f := newFixture()
	f.engine.Connect("host.example")
	f.conn.Notify()
	f.recorder.Reset()

	f.engine.Disconnect()
	f.conn.Notify()
	assert.Equal(t, []string{`connection state="not-connected"`}, formatted(f.recorder))
}

func TestConnection_EraseOnEveryReconnect(t *testing.T) {
	f := newFixture()
	for i := 0; i < 3; i++ {
		f.engine.Connect("host.example")
		f.conn.Notify()
		f.engine.Disconnect()
		f.conn.Notify()
	}
	assert.Equal(t, 3, f.eraser.calls)
	assert.Len(t, f.recorder.Tagged(domain.TagConnection), 6)
}

func TestConnection_WithoutStats(t *testing.T) {
	rec := &events.Recorder{}
	f := newFixture()
	conn := NewConnection(f.engine, f.eraser, nil, events.NewEmitter(events.WithSink(rec)))

	f.engine.Connect("h")
	conn.Notify()
	f.engine.Disconnect()
	conn.Notify()
	assert.Equal(t, []string{domain.TagConnection, domain.TagConnection}, rec.Tags())
}

func TestConnection_ObserveUsesCapturedState(t *testing.T) {
	f := newFixture()

	f.engine.Connect("first.example")
	f.engine.AddReceived(64, 1)
	atDisconnect := Snapshot{State: domain.NotConnected, Counters: f.engine.Counters()}
	connected := Capture(f.engine)
	connected.Counters = domain.Counters{}

	// The engine has already moved on to a second session.
	f.engine.Disconnect()
	f.engine.Connect("second.example")

	f.conn.Observe(connected)
	f.conn.Observe(atDisconnect)
	f.conn.Observe(Capture(f.engine))

	assert.Equal(t, []string{
		`connection state="connected-3270" host="first.example"`,
		`stats bytes-received="64" records-received="1" bytes-sent="0" records-sent="0"`,
		`connection state="not-connected"`,
		`connection state="connected-3270" host="second.example"`,
	}, formatted(f.recorder))
	assert.Equal(t, 2, f.eraser.calls)
	assert.True(t, f.stats.Running())
}
