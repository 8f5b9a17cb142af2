package screen

// Role is a cell's place in a double-byte character.
type Role uint8

const (
	RoleNone Role = iota
	RoleSingle
	RoleLeft
	RoleRight
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleSingle:
		return "single-byte"
	case RoleLeft:
		return "double-left"
	case RoleRight:
		return "double-right"
	default:
		return "unknown"
	}
}

// Class is the character set a cell's code is drawn from.
type Class uint8

const (
	ClassBase Class = iota
	ClassAPL
	ClassLineDraw
	ClassDBCS
)

// Field attribute bits.
const (
	FAPrintable byte = 0xc0
	FAProtect   byte = 0x20
	FANumeric   byte = 0x10
	FAIntensity byte = 0x0c
	FAModify    byte = 0x01
)

// Cell is one position of the screen buffer.
type Cell struct {
	// CC is the host character code.
	CC byte
	// FA is non-zero when the cell is a field attribute.
	FA    byte
	Class Class
	Role  Role
	// GR holds extended highlighting bits.
	GR byte
	FG byte
	BG byte
}

// IsFA reports whether the cell is a field attribute.
func (c Cell) IsFA() bool {
	return c.FA != 0
}

// Addr is a linear buffer address.
type Addr int
