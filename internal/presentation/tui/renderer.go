package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/b3270/pkg/actions"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour. An
// empty style picks light or dark from the terminal.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return r.Render, nil
}

// ActionsMarkdown lists the actions of t as a markdown table.
func ActionsMarkdown(t *actions.Table) string {
	var sb strings.Builder
	sb.WriteString("# Actions\n\n")
	sb.WriteString("| Action | Arguments |\n")
	sb.WriteString("|---|---|\n")
	for _, name := range t.Names() {
		a, _ := t.Lookup(name)
		fmt.Fprintf(&sb, "| %s | %s |\n", name, argCount(a.Min, a.Max))
	}
	return sb.String()
}

func argCount(lo, hi int) string {
	switch {
	case hi == 0:
		return "none"
	case lo == hi:
		return fmt.Sprintf("%d", lo)
	}
	return fmt.Sprintf("%d to %d", lo, hi)
}
