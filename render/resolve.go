package render

import "fmt"

type DataType int

const (
	Blocks DataType = iota
	Data
	BlockLight
	SkyLight
	Biomes
	TileEntities
)

func (t DataType) String() string {
	switch t {
	case Blocks:
		return "blocks"
	case Data:
		return "data"
	case BlockLight:
		return "blocklight"
	case SkyLight:
		return "skylight"
	case Biomes:
		return "biomes"
	case TileEntities:
		return "tileentities"
	}
	return fmt.Sprintf("datatype(%d)", int(t))
}

// Default is what absent data reads as. Sky above and outside of the
// world is fully lit.
func (t DataType) Default() uint32 {
	if t == SkyLight {
		return 15
	}
	return 0
}

// Location is a resolved position: Column/Row index the 3x3 grid (x and z
// axis, centre at 1), X/Y/Z are inside Section.
type Location struct {
	Column, Row int
	Section     int
	X, Y, Z     int
}

// Resolve maps a position relative to section sectionY of the centre column
// onto the neighbourhood. It returns false when the position is above or
// below the world or further away than one column.
func Resolve(sectionY, x, y, z int) (Location, bool) {
	l := Location{Column: 1, Row: 1, Section: sectionY, X: x, Y: y, Z: z}
	if l.X >= 16 {
		l.X -= 16
		l.Column++
	} else if l.X < 0 {
		l.X += 16
		l.Column--
	}
	if l.Z >= 16 {
		l.Z -= 16
		l.Row++
	} else if l.Z < 0 {
		l.Z += 16
		l.Row--
	}
	if l.X < 0 || l.X >= 16 || l.Z < 0 || l.Z >= 16 {
		return l, false
	}
	for l.Y >= 16 {
		l.Y -= 16
		l.Section++
	}
	for l.Y < 0 {
		l.Y += 16
		l.Section--
	}
	if l.Section < 0 || l.Section >= SectionsPerChunk {
		return l, false
	}
	return l, true
}
