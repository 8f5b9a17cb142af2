package actions

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/b3270/pkg/domain"
)

// Command is a parsed command line.
type Command struct {
	Name string
	Args []string
}

// String renders the command in the form ParseCommand accepts.
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte('(')
	for i, arg := range c.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		if arg == "" || strings.ContainsAny(arg, `,()" `) || strings.IndexFunc(arg, unicode.IsControl) >= 0 {
			arg = strconv.Quote(arg)
		}
		sb.WriteString(arg)
	}
	sb.WriteByte(')')
	return sb.String()
}

// ParseCommand decodes Name, Name() or Name(arg,...). Whitespace around the
// name and around each unquoted argument is ignored. Name() has no
// arguments; Name(,) has two empty ones.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	end := strings.IndexFunc(line, func(r rune) bool { return !isNameRune(r) })
	if end < 0 {
		end = len(line)
	}
	name := line[:end]
	if name == "" {
		return Command{}, fmt.Errorf("%w: missing action name in %q", domain.ErrSyntax, line)
	}

	rest := strings.TrimSpace(line[end:])
	if rest == "" {
		return Command{Name: name}, nil
	}
	if rest[0] != '(' || rest[len(rest)-1] != ')' {
		return Command{}, fmt.Errorf("%w: expected %s(...)", domain.ErrSyntax, name)
	}
	body := rest[1 : len(rest)-1]
	if strings.TrimSpace(body) == "" {
		return Command{Name: name}, nil
	}

	args, err := parseArgs(body)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %s: %v", domain.ErrSyntax, name, err)
	}
	return Command{Name: name, Args: args}, nil
}

func parseArgs(body string) ([]string, error) {
	var args []string
	for {
		body = strings.TrimLeft(body, " \t")
		var arg string
		if strings.HasPrefix(body, `"`) {
			quoted, err := strconv.QuotedPrefix(body)
			if err != nil {
				return nil, fmt.Errorf("bad quoted argument %d", len(args)+1)
			}
			arg, _ = strconv.Unquote(quoted)
			body = strings.TrimLeft(body[len(quoted):], " \t")
			if body != "" && body[0] != ',' {
				return nil, fmt.Errorf("junk after quoted argument %d", len(args)+1)
			}
		} else {
			i := strings.IndexAny(body, `,()"`)
			if i < 0 {
				i = len(body)
			}
			if i < len(body) && body[i] != ',' {
				return nil, fmt.Errorf("unexpected %q in argument %d", body[i], len(args)+1)
			}
			arg = strings.TrimSpace(body[:i])
			body = body[i:]
		}
		args = append(args, arg)

		if body == "" {
			return args, nil
		}
		body = body[1:] // comma
	}
}

func isNameRune(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
