package actions

import (
	"fmt"
	"sort"

	"github.com/aretw0/b3270/pkg/domain"
)

// Handler runs an action. args has already been count-checked.
type Handler func(args []string) domain.Result

// Action is a named command with its accepted argument count.
type Action struct {
	Name    string
	Min     int
	Max     int
	Handler Handler
}

// Table is the immutable set of known actions.
type Table struct {
	actions map[string]Action
}

// NewTable builds a table. Names are case-sensitive and must be unique.
func NewTable(actions ...Action) (*Table, error) {
	t := &Table{actions: make(map[string]Action, len(actions))}
	for _, a := range actions {
		switch {
		case a.Name == "":
			return nil, fmt.Errorf("action without a name")
		case a.Handler == nil:
			return nil, fmt.Errorf("action %s has no handler", a.Name)
		case a.Min < 0 || a.Max < a.Min:
			return nil, fmt.Errorf("action %s: bad argument range [%d,%d]", a.Name, a.Min, a.Max)
		}
		if _, dup := t.actions[a.Name]; dup {
			return nil, fmt.Errorf("action %s registered twice", a.Name)
		}
		t.actions[a.Name] = a
	}
	return t, nil
}

// Lookup finds an action by exact name.
func (t *Table) Lookup(name string) (Action, bool) {
	a, ok := t.actions[name]
	return a, ok
}

// Names returns the action names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.actions))
	for name := range t.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
