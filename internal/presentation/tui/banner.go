package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the greeting shown when commands are typed at a
// terminal. It goes to w, never to the event channel.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	title := out.String("b3270 " + version).Foreground(out.Color("#818cf8")).Bold()
	hint := out.String("Enter actions such as Stats() or Toggle(monoCase). End input to quit.").Faint()

	fmt.Fprintln(w, title)
	fmt.Fprintln(w, hint)
}

// PrintError writes err to w with a highlighted prefix.
func PrintError(w io.Writer, err error) {
	out := termenv.NewOutput(w)
	prefix := out.String("Error:").Foreground(out.Color("#fb7185")).Bold()
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}
