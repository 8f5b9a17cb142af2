package events

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/b3270/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ev := domain.NewEvent(domain.TagConnection,
		domain.A("state", "connected-3270"),
		domain.NonEmpty("host", "mainframe"),
	)
	assert.Equal(t, `connection state="connected-3270" host="mainframe"`, Format(ev))

	assert.Equal(t, "ready", Format(domain.NewEvent(domain.TagReady)))
}

func TestFormat_OmitsAbsentAndEscapes(t *testing.T) {
	ev := domain.NewEvent(domain.TagHello,
		domain.A("copyright", "line one\nline \"two\"\\"),
		domain.NonEmpty("build", ""),
	)
	line := Format(ev)
	assert.NotContains(t, line, "\n")
	assert.NotContains(t, line, "build=")

	back, err := Parse(line)
	require.NoError(t, err)
	assert.Equal(t, ev, back)
}

func TestParse_PreservesOrder(t *testing.T) {
	ev, err := Parse(`stats bytes-received="10" records-received="1" bytes-sent="5" records-sent="1"` + "\n")
	require.NoError(t, err)

	var keys []string
	for _, a := range ev.Attrs() {
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{"bytes-received", "records-received", "bytes-sent", "records-sent"}, keys)
}

func TestParse_Errors(t *testing.T) {
	for _, line := range []string{
		"",
		`tag key`,
		`tag ="v"`,
		`tag key=unquoted`,
		`tag key="open`,
		`tag a="1"b="2"`,
	} {
		_, err := Parse(line)
		assert.ErrorIs(t, err, domain.ErrSyntax, line)
	}
}

func TestEmitter_FansOutInOrder(t *testing.T) {
	var order []string
	first := SinkFunc(func(_ context.Context, ev domain.Event) error {
		order = append(order, "first:"+ev.Tag())
		return errors.New("broken pipe")
	})
	rec := &Recorder{}
	var hooked []string

	e := NewEmitter(
		WithSink(first),
		WithSink(rec),
		WithHooks(domain.Hooks{OnEvent: func(_ context.Context, ev domain.Event) {
			hooked = append(hooked, ev.Tag())
		}}),
	)
	e.Emit(domain.TagReady)
	e.Emit(domain.TagToggle, domain.A("name", "monoCase"), domain.Bool("value", true))

	assert.Equal(t, []string{"first:ready", "first:toggle"}, order)
	assert.Equal(t, []string{"ready", "toggle"}, rec.Tags(), "a failing sink does not block the next one")
	assert.Equal(t, []string{"ready", "toggle"}, hooked)
}

func TestLineSink(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(WithSink(NewLineSink(&buf)))

	e.Emit(domain.TagReady)
	e.Emit(domain.TagPopup, domain.A("type", "error"), domain.A("text", "Model: Cannot change model while connected"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ready", lines[0])
	assert.Equal(t, `popup type="error" text="Model: Cannot change model while connected"`, lines[1])
}
