package screen

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/aretw0/b3270/pkg/domain"
)

// maxAddressable is the first cell count that no longer fits in a 14-bit buffer address.
const maxAddressable = 0x4000

var modelGeometry = map[int]struct{ rows, cols int }{
	2: {24, 80},
	3: {32, 80},
	4: {43, 80},
	5: {27, 132},
}

var oversizePattern = regexp.MustCompile(`^([0-9]+)x([0-9]+)$`)

// Model describes the emulated terminal model and optional oversize.
type Model struct {
	Number int
	Color  bool
	// OvRows and OvCols are zero when no oversize is set.
	OvRows int
	OvCols int
}

// Name returns the model designator, e.g. "3279-4".
func (m Model) Name() string {
	kind := '8'
	if m.Color {
		kind = '9'
	}
	return fmt.Sprintf("327%c-%d", kind, m.Number)
}

// String returns the designator followed by the oversize, if any.
func (m Model) String() string {
	if m.OvRows != 0 || m.OvCols != 0 {
		return fmt.Sprintf("%s,%dx%d", m.Name(), m.OvRows, m.OvCols)
	}
	return m.Name()
}

// Geometry returns the screen dimensions the model implies.
func (m Model) Geometry() (rows, cols int) {
	g := modelGeometry[m.Number]
	rows, cols = g.rows, g.cols
	if m.OvRows != 0 {
		rows = m.OvRows
	}
	if m.OvCols != 0 {
		cols = m.OvCols
	}
	return rows, cols
}

// ParseModel decodes a designator of the form 327[89]-[2345].
func ParseModel(name string) (number int, color bool, err error) {
	if len(name) != 6 || name[:3] != "327" || name[4] != '-' {
		return 0, false, domain.ErrInvalidModel
	}
	switch name[3] {
	case '8':
	case '9':
		color = true
	default:
		return 0, false, domain.ErrInvalidModel
	}
	if name[5] < '2' || name[5] > '5' {
		return 0, false, domain.ErrInvalidModel
	}
	return int(name[5] - '0'), color, nil
}

// ParseOversize decodes <rows>x<cols>.
func ParseOversize(s string) (rows, cols int, err error) {
	m := oversizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, domain.ErrInvalidOversize
	}
	rows, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, domain.ErrInvalidOversize
	}
	cols, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, domain.ErrInvalidOversize
	}
	return rows, cols, nil
}

// Validate checks that the model exists and that any oversize is usable.
func (m Model) Validate() error {
	g, ok := modelGeometry[m.Number]
	if !ok {
		return fmt.Errorf("%w: unknown model %d", domain.ErrInvalidModel, m.Number)
	}
	if m.OvRows == 0 && m.OvCols == 0 {
		return nil
	}
	switch {
	case m.OvRows <= 0 || m.OvCols <= 0:
		return fmt.Errorf("%w: invalid oversize %dx%d", domain.ErrInvalidOversize, m.OvRows, m.OvCols)
	case m.OvRows >= maxAddressable || m.OvCols >= maxAddressable || m.OvRows*m.OvCols >= maxAddressable:
		return fmt.Errorf("%w: oversize %dx%d is too large", domain.ErrInvalidOversize, m.OvRows, m.OvCols)
	case m.OvRows < g.rows:
		return fmt.Errorf("%w: oversize rows must be at least %d", domain.ErrInvalidOversize, g.rows)
	case m.OvCols < g.cols:
		return fmt.Errorf("%w: oversize columns must be at least %d", domain.ErrInvalidOversize, g.cols)
	}
	return nil
}

// NewModel builds a validated model from a designator and an optional
// <rows>x<cols> oversize.
func NewModel(name, oversize string) (Model, error) {
	number, color, err := ParseModel(name)
	if err != nil {
		return Model{}, fmt.Errorf("%w: %q", err, name)
	}
	m := Model{Number: number, Color: color}
	if oversize != "" {
		if m.OvRows, m.OvCols, err = ParseOversize(oversize); err != nil {
			return Model{}, fmt.Errorf("%w: %q", err, oversize)
		}
	}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}
	return m, nil
}
