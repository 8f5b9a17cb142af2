package runner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// Pump reads UI commands, one per line.
type Pump struct {
	Reader *bufio.Reader
	// Limit is the longest line kept in full. Of a longer line only the
	// first bytes are kept, still more than Limit, so SanitizeCommand
	// rejects it.
	Limit int
}

// NewPump creates a pump reading from r, or from stdin when r is nil. The
// line limit is the sanitizer's input size.
func NewPump(r io.Reader) *Pump {
	if r == nil {
		r = os.Stdin
	}
	return &Pump{Reader: bufio.NewReader(r), Limit: maxInputSize()}
}

// Run hands every non-blank line to fn, without its line terminator, until
// the input ends or ctx is canceled. End of input is not an error. A read
// already blocked in the reader is not interrupted by ctx.
func (p *Pump) Run(ctx context.Context, fn func(line string)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		text, oversized, err := p.readLine()
		if line := strings.TrimRight(text, "\r\n"); oversized || strings.TrimSpace(line) != "" {
			fn(line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readLine reads through the next newline. It keeps at most Limit+2 bytes,
// enough for a line of Limit bytes and a CRLF, and reports whether the line
// itself was longer than Limit.
func (p *Pump) readLine() (string, bool, error) {
	keep := p.Limit + 2
	var buf []byte
	var n int
	var prev, last byte
	for {
		frag, err := p.Reader.ReadSlice('\n')
		n += len(frag)
		switch {
		case len(frag) >= 2:
			prev, last = frag[len(frag)-2], frag[len(frag)-1]
		case len(frag) == 1:
			prev, last = last, frag[0]
		}
		if room := keep - len(buf); room > 0 {
			buf = append(buf, frag[:min(room, len(frag))]...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		length := n
		if n > 0 && last == '\n' {
			length--
			if n > 1 && prev == '\r' {
				length--
			}
		}
		return string(buf), length > p.Limit, err
	}
}
