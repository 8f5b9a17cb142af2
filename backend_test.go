package b3270_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/b3270"
	"github.com/aretw0/b3270/pkg/adapters/memory"
	"github.com/aretw0/b3270/pkg/domain"
	"github.com/aretw0/b3270/pkg/events"
	"github.com/aretw0/b3270/pkg/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBackend runs b with no input until the test ends.
func runBackend(t *testing.T, b *b3270.Backend) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx, nil) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})
	// Wait for the loop to come up.
	require.NoError(t, b.Do(context.Background(), func() {}))
}

func TestNew_FatalConditions(t *testing.T) {
	tests := []struct {
		name string
		opts []b3270.Option
		err  error
	}{
		{"too old", []b3270.Option{b3270.WithMinVersion("5.0")}, domain.ErrVersionTooOld},
		{"bad min version", []b3270.Option{b3270.WithMinVersion("bad")}, domain.ErrVersionParse},
		{"unknown toggle", []b3270.Option{b3270.WithToggle("blink", true)}, domain.ErrInvalidToggle},
		{"bad model", []b3270.Option{b3270.WithModel(screen.Model{Number: 7})}, domain.ErrInvalidModel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &events.Recorder{}
			_, err := b3270.New(append(tt.opts, b3270.WithSink(rec))...)
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, rec.Events(), "fatal errors come before any event")
		})
	}

	_, err := b3270.New(b3270.WithMinVersion("4.1ga9"))
	assert.NoError(t, err)
}

func TestStart_Handshake(t *testing.T) {
	rec := &events.Recorder{}
	b, err := b3270.New(b3270.WithSink(rec))
	require.NoError(t, err)

	b.Start()
	b.Start()

	tags := rec.Tags()
	assert.Equal(t, []string{
		domain.TagHello, domain.TagModel,
		domain.TagToggle, domain.TagToggle, domain.TagToggle, domain.TagToggle,
		domain.TagToggle, domain.TagToggle, domain.TagToggle,
		domain.TagSSLHello, domain.TagReady,
	}, tags)

	hello := rec.Tagged(domain.TagHello)[0]
	v, _ := hello.Get("version")
	assert.Equal(t, "4.1.9", v)
	name, _ := rec.Tagged(domain.TagModel)[0].Get("name")
	assert.Equal(t, "3279-4", name)
	supported, _ := rec.Tagged(domain.TagSSLHello)[0].Get("supported")
	assert.Equal(t, "true", supported)
}

func TestRun_CommandsFromInput(t *testing.T) {
	var out bytes.Buffer
	b, err := b3270.New(b3270.WithOutput(&out))
	require.NoError(t, err)

	in := strings.NewReader("Model()\nBogus()\nModel(3278-2)\nModel\n")
	require.NoError(t, b.Run(context.Background(), in))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	var replies []string
	for _, line := range lines {
		if strings.HasPrefix(line, "run-result") || strings.HasPrefix(line, "popup") {
			replies = append(replies, line)
		}
	}
	assert.Equal(t, []string{
		`run-result success="true" text="3279-4"`,
		`popup type="error" text="Bogus: unknown action"`,
		`run-result success="false"`,
		`run-result success="true"`,
		`run-result success="true" text="3278-2"`,
	}, replies)
	assert.Equal(t, "ready", lines[len(lines)-len(replies)-1], "commands run after the handshake")
}

func TestRun_RejectsOversizedLine(t *testing.T) {
	rec := &events.Recorder{}
	b, err := b3270.New(b3270.WithSink(rec))
	require.NoError(t, err)

	in := strings.NewReader("Model(" + strings.Repeat("x", 5000) + ")\n")
	require.NoError(t, b.Run(context.Background(), in))

	popups := rec.Tagged(domain.TagPopup)
	require.Len(t, popups, 1)
	text, _ := popups[0].Get("text")
	assert.Contains(t, text, "exceeds maximum allowed size")
}

func TestConnectionLifecycle(t *testing.T) {
	rec := &events.Recorder{}
	engine := memory.NewEngine()
	b, err := b3270.New(b3270.WithSink(rec), b3270.WithEngine(engine))
	require.NoError(t, err)
	runBackend(t, b)
	ctx := context.Background()

	res, err := b.Execute(ctx, `ClearRegion(1,1,1,1)`)
	require.NoError(t, err)
	require.True(t, res.Success)

	require.NoError(t, b.Do(ctx, func() { engine.Connect("mainframe.example") }))
	require.NoError(t, b.Do(ctx, func() {}))

	conn := rec.Tagged(domain.TagConnection)
	require.Len(t, conn, 1)
	assert.Equal(t, `connection state="connected-3270" host="mainframe.example"`, events.Format(conn[0]))

	res, err = b.Execute(ctx, `Model("3278-2","24x80")`)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err, domain.ErrConnected)
	snap, err := b.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 43, snap.Rows, "geometry unchanged")

	engine.AddReceived(64, 1)
	require.NoError(t, b.Do(ctx, func() { engine.Disconnect() }))
	require.NoError(t, b.Do(ctx, func() {}))

	tags := rec.Tags()
	assert.Equal(t, []string{domain.TagStats, domain.TagConnection}, tags[len(tags)-2:])
}

func TestConnectionTransitionsAreNotCollapsed(t *testing.T) {
	rec := &events.Recorder{}
	engine := memory.NewEngine()
	b, err := b3270.New(b3270.WithSink(rec), b3270.WithEngine(engine))
	require.NoError(t, err)
	runBackend(t, b)
	ctx := context.Background()

	connectionLines := func() []string {
		var out []string
		for _, ev := range rec.Tagged(domain.TagConnection) {
			out = append(out, events.Format(ev))
		}
		return out
	}

	require.NoError(t, b.Do(ctx, func() {
		engine.SetState(domain.Resolving)
		engine.SetState(domain.Pending)
		engine.Connect("host")
	}))
	require.NoError(t, b.Do(ctx, func() {}))
	assert.Equal(t, []string{
		`connection state="resolving" host=""`,
		`connection state="pending" host=""`,
		`connection state="connected-3270" host="host"`,
	}, connectionLines())

	rec.Reset()
	engine.AddSent(10, 1)
	require.NoError(t, b.Do(ctx, func() {
		engine.Disconnect()
		engine.Connect("host2")
	}))
	require.NoError(t, b.Do(ctx, func() {}))

	assert.Equal(t, []string{domain.TagStats, domain.TagConnection, domain.TagConnection}, rec.Tags())
	assert.Equal(t, []string{
		`connection state="not-connected"`,
		`connection state="connected-3270" host="host2"`,
	}, connectionLines())
	sent, _ := rec.Tagged(domain.TagStats)[0].Get("bytes-sent")
	assert.Equal(t, "10", sent, "the final stats of the first session")
}

func TestStatsPolling(t *testing.T) {
	rec := &events.Recorder{}
	engine := memory.NewEngine()
	b, err := b3270.New(b3270.WithSink(rec), b3270.WithEngine(engine), b3270.WithStatsInterval(10*time.Millisecond))
	require.NoError(t, err)
	runBackend(t, b)

	require.NoError(t, b.Do(context.Background(), func() { engine.Connect("h") }))
	engine.AddSent(12, 1)

	require.Eventually(t, func() bool {
		return len(rec.Tagged(domain.TagStats)) == 1
	}, time.Second, 5*time.Millisecond)

	v, _ := rec.Tagged(domain.TagStats)[0].Get("bytes-sent")
	assert.Equal(t, "12", v)
}

func TestTracingFromStartup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.txt")
	rec := &events.Recorder{}
	b, err := b3270.New(b3270.WithSink(rec), b3270.WithToggle("trace", true), b3270.WithTracePath(path))
	require.NoError(t, err)

	require.NoError(t, b.Run(context.Background(), strings.NewReader("Trace()\n")))

	var traceToggle domain.Event
	for _, ev := range rec.Tagged(domain.TagToggle) {
		if name, _ := ev.Get("name"); name == "trace" {
			traceToggle = ev
		}
	}
	assert.Equal(t, `toggle name="trace" value="true" file="`+path+`"`, events.Format(traceToggle))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "action Trace()")
	assert.Contains(t, string(data), `> run-result success="true" text="On,`+path+`"`)
	assert.Contains(t, string(data), "Trace stopped")
}

func TestXtermText(t *testing.T) {
	rec := &events.Recorder{}
	b, err := b3270.New(b3270.WithSink(rec))
	require.NoError(t, err)

	b.XtermText(0, "both")
	b.XtermText(1, "icon")
	b.XtermText(2, "title")
	b.XtermText(50, "fixed")
	b.XtermText(9, "ignored")

	assert.Equal(t, []string{
		domain.TagIconName, domain.TagWindowTitle,
		domain.TagIconName,
		domain.TagWindowTitle,
		domain.TagFont,
	}, rec.Tags())
	require.NoError(t, b.Close())
}
