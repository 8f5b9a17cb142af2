package events

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/b3270/pkg/domain"
)

// Format renders ev as a single line without the trailing newline.
func Format(ev domain.Event) string {
	var sb strings.Builder
	sb.WriteString(ev.Tag())
	for _, a := range ev.Attrs() {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteByte('=')
		sb.WriteString(strconv.Quote(a.Value))
	}
	return sb.String()
}

// Parse decodes a line produced by Format.
func Parse(line string) (domain.Event, error) {
	line = strings.TrimRight(line, "\r\n")
	tag, rest, _ := strings.Cut(line, " ")
	if tag == "" {
		return domain.Event{}, fmt.Errorf("%w: missing event tag", domain.ErrSyntax)
	}

	var attrs []domain.Attr
	for rest != "" {
		key, after, ok := strings.Cut(rest, "=")
		if !ok || key == "" || strings.ContainsAny(key, " \"") {
			return domain.Event{}, fmt.Errorf("%w: malformed attribute in %q", domain.ErrSyntax, line)
		}
		quoted, err := strconv.QuotedPrefix(after)
		if err != nil {
			return domain.Event{}, fmt.Errorf("%w: attribute %s: %v", domain.ErrSyntax, key, err)
		}
		value, err := strconv.Unquote(quoted)
		if err != nil {
			return domain.Event{}, fmt.Errorf("%w: attribute %s: %v", domain.ErrSyntax, key, err)
		}
		attrs = append(attrs, domain.A(key, value))

		rest = after[len(quoted):]
		if rest != "" {
			if rest[0] != ' ' {
				return domain.Event{}, fmt.Errorf("%w: expected space after attribute %s", domain.ErrSyntax, key)
			}
			rest = rest[1:]
		}
	}
	return domain.NewEvent(tag, attrs...), nil
}
