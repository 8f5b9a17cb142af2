package screen

import (
	"math"
	"strings"
	"testing"

	"github.com/aretw0/b3270/pkg/codec"
	"github.com/aretw0/b3270/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel2(t *testing.T) *Screen {
	t.Helper()
	s := New(WithModel(Model{Number: 2}))
	require.Equal(t, 24, s.Rows())
	require.Equal(t, 80, s.Cols())
	s.ResetDirty()
	return s
}

func snapshot(s *Screen) []Cell {
	out := make([]Cell, s.Size())
	for i := range out {
		out[i] = s.Cell(Addr(i))
	}
	return out
}

func TestAddressArithmeticWraps(t *testing.T) {
	s := newModel2(t)
	last := Addr(s.Size() - 1)

	assert.Equal(t, Addr(0), s.Next(last))
	assert.Equal(t, last, s.Prev(0))
	assert.Equal(t, Addr(81), s.Addr(1, 1))
	assert.Equal(t, Addr(0), s.Addr(24, 0))
	assert.Equal(t, last, s.Addr(0, -1))

	row, col := s.RowCol(s.Addr(23, 79))
	assert.Equal(t, 23, row)
	assert.Equal(t, 79, col)
}

func TestNew_DefaultsToModel4(t *testing.T) {
	s := New()
	assert.Equal(t, "3279-4", s.Model().String())
	assert.Equal(t, 43, s.Rows())
	assert.Equal(t, 80, s.Cols())
	assert.Equal(t, s.Size(), s.DirtyCount())

	bad := New(WithModel(Model{Number: 7}))
	assert.Equal(t, DefaultModel, bad.Model())
}

func TestSetModel(t *testing.T) {
	s := newModel2(t)
	s.PutText(0, "HELLO")

	require.NoError(t, s.SetModel(Model{Number: 5, Color: true, OvRows: 30, OvCols: 140}))
	assert.Equal(t, "3279-5,30x140", s.Model().String())
	assert.Equal(t, 30, s.Rows())
	assert.Equal(t, 140, s.Cols())
	assert.Equal(t, 30*140, s.Size())
	assert.Equal(t, Cell{}, s.Cell(0), "buffer is erased on reallocation")

	err := s.SetModel(Model{Number: 2, OvRows: 10, OvCols: 80})
	assert.ErrorIs(t, err, domain.ErrInvalidOversize)
	assert.Equal(t, 30, s.Rows(), "rejected model leaves geometry alone")
}

func TestModelValidate(t *testing.T) {
	tests := []struct {
		name  string
		model Model
		ok    bool
	}{
		{"plain", Model{Number: 3}, true},
		{"oversize", Model{Number: 4, OvRows: 50, OvCols: 100}, true},
		{"unknown model", Model{Number: 6}, false},
		{"rows below model", Model{Number: 4, OvRows: 40, OvCols: 80}, false},
		{"cols below model", Model{Number: 5, OvRows: 27, OvCols: 100}, false},
		{"half oversize", Model{Number: 2, OvRows: 0, OvCols: 90}, false},
		{"too large", Model{Number: 2, OvRows: 200, OvCols: 200}, false},
		{"product wraps negative", Model{Number: 2, OvRows: math.MaxInt, OvCols: 2}, false},
		{"product wraps to one", Model{Number: 2, OvRows: math.MaxInt, OvCols: math.MaxInt}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseModel(t *testing.T) {
	n, color, err := ParseModel("3279-4")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.True(t, color)

	n, color, err = ParseModel("3278-2")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, color)

	for _, bad := range []string{"3277-2", "3279-6", "3279-1", "3279_2", "3279-2E", "", "ibm-32"} {
		_, _, err := ParseModel(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidModel, bad)
	}
}

func TestParseOversize(t *testing.T) {
	r, c, err := ParseOversize("24x80")
	require.NoError(t, err)
	assert.Equal(t, 24, r)
	assert.Equal(t, 80, c)

	for _, bad := range []string{"24X80", "24x80z", "x80", "24x", "", "-1x80", " 24x80"} {
		_, _, err := ParseOversize(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidOversize, bad)
	}
}

func TestNewModel(t *testing.T) {
	m, err := NewModel("3278-2", "")
	require.NoError(t, err)
	assert.Equal(t, Model{Number: 2}, m)

	m, err = NewModel("3279-4", "50x80")
	require.NoError(t, err)
	assert.Equal(t, "3279-4,50x80", m.String())

	_, err = NewModel("3279-7", "")
	assert.ErrorIs(t, err, domain.ErrInvalidModel)

	_, err = NewModel("3279-4", "big")
	assert.ErrorIs(t, err, domain.ErrInvalidOversize)

	_, err = NewModel("3279-4", "20x80")
	assert.ErrorIs(t, err, domain.ErrInvalidOversize)

	_, err = NewModel("3279-4", "4000000000x4000000000")
	assert.ErrorIs(t, err, domain.ErrInvalidOversize)
}

func TestClearRegion_ClearsUnprotectedCells(t *testing.T) {
	s := newModel2(t)
	s.PutText(0, "HELLO")
	s.ResetDirty()

	require.NoError(t, s.ClearRegion(1, 1, 1, 3))

	for i := 0; i < 3; i++ {
		assert.Equal(t, codec.EBCDICSpace, s.Cell(Addr(i)).CC)
		assert.True(t, s.Dirty(Addr(i)))
	}
	assert.Equal(t, "   LO", s.Text()[0][:5])
	assert.False(t, s.Dirty(3))
	assert.Equal(t, 3, s.DirtyCount())
	assert.False(t, s.Modified(0), "an unformatted screen has no field to tag")

	// On a formatted screen the governing field attribute is tagged.
	s.SetFieldAttribute(s.Addr(4, 0), 0)
	s.PutText(s.Addr(4, 1), "NAME")
	s.SetFieldAttribute(s.Addr(5, 0), 0)
	s.PutText(s.Addr(5, 1), "MORE")
	require.False(t, s.Modified(s.Addr(4, 1)))

	require.NoError(t, s.ClearRegion(5, 2, 1, 2))
	assert.True(t, s.Modified(s.Addr(4, 1)))
	assert.Equal(t, FAPrintable|FAModify, s.Cell(s.Addr(4, 0)).FA)
	assert.False(t, s.Modified(s.Addr(5, 1)), "the next field is untouched")
}

func TestClearRegion_ErasedCellsBecomeSpaces(t *testing.T) {
	s := newModel2(t)
	require.NoError(t, s.ClearRegion(24, 80, 1, 1))
	last := s.Addr(23, 79)
	assert.Equal(t, codec.EBCDICSpace, s.Cell(last).CC)
	assert.True(t, s.Dirty(last))
}

func TestClearRegion_ZeroSizeIsNoOp(t *testing.T) {
	s := newModel2(t)
	s.PutText(0, "DATA")
	s.ResetDirty()
	before := snapshot(s)

	assert.NoError(t, s.ClearRegion(1, 1, 0, 5))
	assert.NoError(t, s.ClearRegion(1, 1, 5, 0))
	assert.NoError(t, s.ClearRegion(99, 99, 0, 0))

	assert.Equal(t, before, snapshot(s))
	assert.Equal(t, 0, s.DirtyCount())
}

func TestClearRegion_RejectsBadRectangles(t *testing.T) {
	s := newModel2(t)
	s.PutText(0, "KEEP")
	s.ResetDirty()
	before := snapshot(s)

	tests := []struct {
		name                 string
		row, col, rows, cols int
		want                 error
	}{
		{"row zero", 0, 1, 1, 1, domain.ErrInvalidCoordinates},
		{"row past end", 25, 1, 1, 1, domain.ErrInvalidCoordinates},
		{"col zero", 1, 0, 1, 1, domain.ErrInvalidCoordinates},
		{"col past end", 1, 81, 1, 1, domain.ErrInvalidCoordinates},
		{"too tall", 24, 1, 2, 1, domain.ErrInvalidSize},
		{"too wide", 1, 80, 1, 2, domain.ErrInvalidSize},
		{"negative rows", 1, 1, -1, 1, domain.ErrInvalidSize},
		{"negative cols", 1, 1, 1, -3, domain.ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ClearRegion(tt.row, tt.col, tt.rows, tt.cols)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, snapshot(s))
			assert.Equal(t, 0, s.DirtyCount())
		})
	}
}

func TestClearRegion_SkipsProtectedAndAttributes(t *testing.T) {
	s := newModel2(t)
	// Row 2 (1-origin) is a protected field, row 3 an unprotected one.
	s.SetFieldAttribute(s.Addr(1, 0), FAProtect)
	s.PutText(s.Addr(1, 1), "LABEL")
	s.SetFieldAttribute(s.Addr(2, 0), 0)
	s.PutText(s.Addr(2, 1), "INPUT")
	s.ResetDirty()

	require.NoError(t, s.ClearRegion(2, 1, 2, 6))

	protectedFA := s.Addr(1, 0)
	assert.True(t, s.Cell(protectedFA).IsFA())
	assert.False(t, s.Dirty(protectedFA))
	for c := 1; c <= 5; c++ {
		a := s.Addr(1, c)
		assert.NotEqual(t, codec.EBCDICSpace, s.Cell(a).CC, "protected cell %d cleared", c)
		assert.False(t, s.Dirty(a))
	}

	assert.False(t, s.Modified(protectedFA), "protected field keeps its tag clear")

	unprotectedFA := s.Addr(2, 0)
	assert.Equal(t, FAPrintable|FAModify, s.Cell(unprotectedFA).FA, "only the modified data tag changes")
	assert.False(t, s.Dirty(unprotectedFA))
	for c := 1; c <= 5; c++ {
		a := s.Addr(2, c)
		assert.Equal(t, codec.EBCDICSpace, s.Cell(a).CC)
		assert.True(t, s.Dirty(a))
	}
	assert.Equal(t, 5, s.DirtyCount())
}

func TestClearRegion_SkipsShiftControls(t *testing.T) {
	s := newModel2(t)
	s.Put(0, Cell{CC: codec.EBCDICSO})
	s.Put(1, Cell{CC: 0xc1, Role: RoleSingle})
	s.Put(2, Cell{CC: codec.EBCDICSI})
	s.ResetDirty()

	require.NoError(t, s.ClearRegion(1, 1, 1, 3))
	assert.Equal(t, codec.EBCDICSO, s.Cell(0).CC)
	assert.Equal(t, codec.EBCDICSpace, s.Cell(1).CC)
	assert.Equal(t, codec.EBCDICSI, s.Cell(2).CC)
	assert.Equal(t, 1, s.DirtyCount())
}

func TestClearRegion_DBCSPairs(t *testing.T) {
	tests := []struct {
		name string
		col  int // 1-origin column of the single cell cleared
	}{
		{"left half", 11},
		{"right half", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newModel2(t)
			left := s.Addr(4, 10)
			s.PutDBCS(left, 0x44, 0x5a)
			s.ResetDirty()

			require.NoError(t, s.ClearRegion(5, tt.col, 1, 1))

			for _, a := range []Addr{left, s.Next(left)} {
				cell := s.Cell(a)
				assert.Equal(t, codec.EBCDICSpace, cell.CC)
				assert.Equal(t, ClassDBCS, cell.Class, "pair keeps its class")
				assert.True(t, s.Dirty(a))
			}
			assert.Equal(t, RoleLeft, s.Cell(left).Role)
			assert.Equal(t, RoleRight, s.Cell(s.Next(left)).Role)
			assert.Equal(t, 2, s.DirtyCount())
		})
	}
}

func TestText(t *testing.T) {
	s := newModel2(t)
	s.SetFieldAttribute(0, FAProtect)
	s.PutText(1, "Hi")
	s.PutDBCS(3, 0x44, 0x5a)
	s.PutText(5, "!")

	row := s.Text()[0]
	assert.Equal(t, " Hi\uFFFD!", row[:len(" Hi\uFFFD!")])
	assert.Len(t, s.Text(), 24)
	assert.Equal(t, strings.Repeat(" ", 80), s.Text()[1], "nulls render as spaces")
}

func TestErase(t *testing.T) {
	s := newModel2(t)
	s.SetFieldAttribute(0, FAProtect)
	s.PutText(1, "X")
	require.True(t, s.Formatted())

	s.Erase()
	assert.False(t, s.Formatted())
	assert.False(t, s.Protected(5))
	assert.Equal(t, s.Size(), s.DirtyCount())
}

func TestSnapshot(t *testing.T) {
	s := New(WithModel(Model{Number: 5, Color: true}))
	s.PutText(s.Addr(1, 0), "row two")

	snap := s.Snapshot()
	assert.Equal(t, "3279-5", snap.Model)
	assert.Equal(t, 27, snap.Rows)
	assert.Equal(t, 132, snap.Cols)
	require.Len(t, snap.Lines, 27)
	assert.Equal(t, "row two", strings.TrimRight(snap.Lines[1], " "))
}
