package screen

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/b3270/pkg/codec"
	"github.com/aretw0/b3270/pkg/domain"
)

// DefaultModel is the model a new screen starts with.
var DefaultModel = Model{Number: 4, Color: true}

// Screen is the buffer for the current screen geometry.
type Screen struct {
	model  Model
	rows   int
	cols   int
	cells  []Cell
	dirty  []bool
	logger *slog.Logger
}

// Option defines a functional option for configuring the Screen.
type Option func(*Screen)

// WithModel sets the initial model. An invalid model falls back to DefaultModel.
func WithModel(m Model) Option {
	return func(s *Screen) {
		s.model = m
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Screen) {
		s.logger = logger
	}
}

// New allocates an erased screen at the model's full size.
func New(opts ...Option) *Screen {
	s := &Screen{model: DefaultModel}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := s.model.Validate(); err != nil {
		s.logger.Warn("invalid initial model, using default", "model", s.model.String(), "error", err)
		s.model = DefaultModel
	}
	s.realloc()
	return s
}

func (s *Screen) realloc() {
	s.rows, s.cols = s.model.Geometry()
	s.cells = make([]Cell, s.rows*s.cols)
	s.dirty = make([]bool, s.rows*s.cols)
	s.markAllDirty()
}

// Model returns the current model.
func (s *Screen) Model() Model { return s.model }

// Rows returns the number of rows.
func (s *Screen) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Screen) Cols() int { return s.cols }

// Size returns the number of cells.
func (s *Screen) Size() int { return len(s.cells) }

// SetModel changes the model and oversize, reallocates the buffer for the new
// geometry and erases it. An invalid request leaves the screen untouched.
func (s *Screen) SetModel(m Model) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.model = m
	s.realloc()
	s.logger.Debug("screen geometry changed", "model", m.String(), "rows", s.rows, "cols", s.cols)
	return nil
}

// Erase clears every cell, leaving an unformatted screen, and marks the
// whole buffer for redraw.
func (s *Screen) Erase() {
	for i := range s.cells {
		s.cells[i] = Cell{}
	}
	s.markAllDirty()
}

// Addr converts a 0-origin row and column to a buffer address, wrapping
// within the buffer.
func (s *Screen) Addr(row, col int) Addr {
	return s.wrap(row*s.cols + col)
}

// RowCol converts a buffer address to its 0-origin row and column.
func (s *Screen) RowCol(a Addr) (row, col int) {
	a = s.wrap(int(a))
	return int(a) / s.cols, int(a) % s.cols
}

// Next returns the address after a, wrapping from the last cell to the first.
func (s *Screen) Next(a Addr) Addr {
	return s.wrap(int(a) + 1)
}

// Prev returns the address before a, wrapping from the first cell to the last.
func (s *Screen) Prev(a Addr) Addr {
	return s.wrap(int(a) - 1)
}

func (s *Screen) wrap(n int) Addr {
	size := len(s.cells)
	n %= size
	if n < 0 {
		n += size
	}
	return Addr(n)
}

// Cell returns the cell at a.
func (s *Screen) Cell(a Addr) Cell {
	return s.cells[s.wrap(int(a))]
}

// Put stores c at a and marks it dirty.
func (s *Screen) Put(a Addr, c Cell) {
	a = s.wrap(int(a))
	s.cells[a] = c
	s.dirty[a] = true
}

// SetFieldAttribute turns the cell at a into a field attribute.
func (s *Screen) SetFieldAttribute(a Addr, fa byte) {
	s.Put(a, Cell{FA: fa | FAPrintable})
}

// PutText stores text starting at a as single-byte characters in the
// base class. Runes with no host equivalent are stored as spaces.
func (s *Screen) PutText(a Addr, text string) {
	for _, r := range text {
		cc, ok := codec.RuneToHost(r)
		if !ok {
			cc = codec.EBCDICSpace
		}
		s.Put(a, Cell{CC: cc, Role: RoleSingle})
		a = s.Next(a)
	}
}

// PutDBCS stores a double-byte character as a left/right pair starting at a.
func (s *Screen) PutDBCS(a Addr, hi, lo byte) {
	s.Put(a, Cell{CC: hi, Class: ClassDBCS, Role: RoleLeft})
	s.Put(s.Next(a), Cell{CC: lo, Class: ClassDBCS, Role: RoleRight})
}

// fieldAttributeAddr finds the field attribute governing a, searching a
// itself and then backwards with wrap. It reports false on an unformatted screen.
func (s *Screen) fieldAttributeAddr(a Addr) (Addr, bool) {
	a = s.wrap(int(a))
	for i := 0; i < len(s.cells); i++ {
		if s.cells[a].IsFA() {
			return a, true
		}
		a = s.Prev(a)
	}
	return 0, false
}

// FieldAttribute returns the field attribute governing a. An unformatted
// screen reports an unprotected attribute of zero.
func (s *Screen) FieldAttribute(a Addr) byte {
	fa, ok := s.fieldAttributeAddr(a)
	if !ok {
		return 0
	}
	return s.cells[fa].FA
}

// Protected reports whether the field containing a is protected.
func (s *Screen) Protected(a Addr) bool {
	return s.FieldAttribute(a)&FAProtect != 0
}

// Formatted reports whether the screen holds any field attributes.
func (s *Screen) Formatted() bool {
	for _, c := range s.cells {
		if c.IsFA() {
			return true
		}
	}
	return false
}

// Dirty reports whether the cell at a changed since the last ResetDirty.
func (s *Screen) Dirty(a Addr) bool {
	return s.dirty[s.wrap(int(a))]
}

// DirtyCount returns the number of cells awaiting redraw.
func (s *Screen) DirtyCount() int {
	n := 0
	for _, d := range s.dirty {
		if d {
			n++
		}
	}
	return n
}

// ResetDirty clears every redraw mark.
func (s *Screen) ResetDirty() {
	for i := range s.dirty {
		s.dirty[i] = false
	}
}

func (s *Screen) markAllDirty() {
	for i := range s.dirty {
		s.dirty[i] = true
	}
}

// Modified reports whether the modified data tag of the field containing a
// is set. An unformatted screen has no tags to set.
func (s *Screen) Modified(a Addr) bool {
	return s.FieldAttribute(a)&FAModify != 0
}

// setMDT sets the modified data tag of the field containing a.
func (s *Screen) setMDT(a Addr) {
	if fa, ok := s.fieldAttributeAddr(a); ok {
		s.cells[fa].FA |= FAModify
	}
}

// clear replaces the character at a with a space in the given class and
// tags its field as modified.
func (s *Screen) clear(a Addr, class Class) {
	c := &s.cells[a]
	c.CC = codec.EBCDICSpace
	c.Class = class
	s.dirty[a] = true
	s.setMDT(a)
}

// ClearRegion blanks the unprotected data cells of a 1-origin rectangle.
//
// Field attributes, protected cells and SO/SI controls are skipped and keep
// their redraw marks. Every cleared cell is marked for redraw and sets the
// modified data tag of its field. A half of a
// double-byte pair clears its partner too, even when the partner lies outside
// the rectangle. The rectangle is validated in full before any cell
// changes, so a rejected request leaves the buffer as it was.
func (s *Screen) ClearRegion(row, col, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%w: %dx%d", domain.ErrInvalidSize, rows, cols)
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	if row <= 0 || row > s.rows || col <= 0 || col > s.cols {
		return fmt.Errorf("%w: row %d column %d", domain.ErrInvalidCoordinates, row, col)
	}
	if row-1+rows > s.rows || col-1+cols > s.cols {
		return fmt.Errorf("%w: %dx%d at row %d column %d", domain.ErrInvalidSize, rows, cols, row, col)
	}

	for r := row - 1; r < row-1+rows; r++ {
		for c := col - 1; c < col-1+cols; c++ {
			a := s.Addr(r, c)
			cell := s.cells[a]
			if cell.IsFA() || s.Protected(a) || cell.CC == codec.EBCDICSO || cell.CC == codec.EBCDICSI {
				continue
			}
			switch cell.Role {
			case RoleNone, RoleSingle:
				s.clear(a, cell.Class)
			case RoleLeft:
				s.clear(a, cell.Class)
				s.clear(s.Next(a), cell.Class)
			case RoleRight:
				s.clear(s.Prev(a), cell.Class)
				s.clear(a, cell.Class)
			}
		}
	}
	return nil
}

// Text renders each row as display characters. Field attributes render as
// spaces, as do nulls, and a double-byte pair renders as a single U+FFFD.
func (s *Screen) Text() []string {
	lines := make([]string, 0, s.rows)
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		sb.Reset()
		for c := 0; c < s.cols; c++ {
			cell := s.cells[r*s.cols+c]
			switch {
			case cell.IsFA(), cell.CC == codec.EBCDICNull:
				sb.WriteByte(' ')
			case cell.Role == RoleLeft:
				sb.WriteRune('\uFFFD')
			case cell.Role == RoleRight:
			default:
				sb.WriteRune(codec.HostToRune(cell.CC))
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Snapshot is a read-only copy of the visible screen.
type Snapshot struct {
	Model string   `json:"model"`
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Lines []string `json:"lines"`
}

// Snapshot copies the current screen contents.
func (s *Screen) Snapshot() Snapshot {
	return Snapshot{
		Model: s.model.String(),
		Rows:  s.rows,
		Cols:  s.cols,
		Lines: s.Text(),
	}
}
