package runner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPump_Lines(t *testing.T) {
	in := "Model()\r\n\n   \nTrace(On)\nStats()"
	var got []string
	err := NewPump(strings.NewReader(in)).Run(context.Background(), func(line string) {
		got = append(got, line)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Model()", "Trace(On)", "Stats()"}, got)
}

func TestPump_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var got []string
	err := NewPump(strings.NewReader("A()\nB()\n")).Run(ctx, func(line string) {
		got = append(got, line)
		cancel()
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"A()"}, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPump_ReadError(t *testing.T) {
	err := NewPump(failingReader{}).Run(context.Background(), func(string) {
		t.Fatal("no line expected")
	})
	assert.EqualError(t, err, "broken pipe")
}

// countingReader serves size bytes of 'x' followed by a newline and tail.
type countingReader struct {
	size int
	tail string
	read int
	rest *strings.Reader
}

func (r *countingReader) Read(p []byte) (int, error) {
	if r.read < r.size {
		n := min(len(p), r.size-r.read)
		for i := range n {
			p[i] = 'x'
		}
		r.read += n
		return n, nil
	}
	if r.rest == nil {
		r.rest = strings.NewReader("\n" + r.tail)
	}
	return r.rest.Read(p)
}

func TestPump_BoundsLongLines(t *testing.T) {
	in := &countingReader{size: 10 << 20, tail: "Model()\n"}
	p := NewPump(in)
	p.Limit = 16

	var got []string
	require.NoError(t, p.Run(context.Background(), func(line string) {
		got = append(got, line)
	}))

	require.Len(t, got, 2)
	assert.Len(t, got[0], 18, "only the head of an oversized line is kept")
	assert.Equal(t, "Model()", got[1])
	assert.Equal(t, 10<<20, in.read)
}

func TestPump_LineAtLimit(t *testing.T) {
	p := NewPump(strings.NewReader("abcd\r\nabcde\nabc"))
	p.Limit = 4

	var got []string
	require.NoError(t, p.Run(context.Background(), func(line string) {
		got = append(got, line)
	}))
	assert.Equal(t, []string{"abcd", "abcde", "abc"}, got)
}
