package render

import (
	"github.com/maxsupermanhd/isochunk/data/blocks"
)

// TileEntityPacker squeezes the payload a block type needs into a single
// value. It returns false when the record lacks the fields.
type TileEntityPacker func(te TileEntity) (uint32, bool)

// blocks not listed here get 0 even when a tile entity matches
var tileEntityPackers = map[uint16]TileEntityPacker{
	blocks.Skull: packSkull,
}

func packSkull(te TileEntity) (uint32, bool) {
	t, ok := PayloadInt(te.Payload, "SkullType")
	if !ok {
		return 0, false
	}
	r, ok := PayloadInt(te.Payload, "Rot")
	if !ok {
		return 0, false
	}
	return uint32(t)<<4 | uint32(r), true
}

// WorldPosition turns a block position inside rotated chunk cx, cy, cz into
// world coordinates as stored in tile entities.
func WorldPosition(n NorthDirection, cx, cy, cz, x, y, z int) (wx, wy, wz int) {
	wy = cy*16 + y
	switch n {
	case UpperRight:
		wx = cz*16 + z
		wz = -(cx * 16) + (15 - x)
	case LowerLeft:
		wx = -(cx * 16) + (15 - x)
		wz = -(cz * 16) + (15 - z)
	case LowerRight:
		wx = -(cz * 16) + (15 - z)
		wz = cx*16 + x
	default:
		wx = cx*16 + x
		wz = cz*16 + z
	}
	return
}

// MatchTileEntity returns the first record sitting at wx, wy, wz
func MatchTileEntity(tes []TileEntity, wx, wy, wz int) (TileEntity, bool) {
	for _, te := range tes {
		if te.X == wx && te.Y == wy && te.Z == wz {
			return te, true
		}
	}
	return TileEntity{}, false
}

// matches against the current block, not the queried position
func (s *RenderState) tileEntityData(tes []TileEntity) uint32 {
	wx, wy, wz := WorldPosition(s.NorthDirection(), s.ChunkX, s.ChunkY, s.ChunkZ, s.X, s.Y, s.Z)
	te, ok := MatchTileEntity(tes, wx, wy, wz)
	if !ok {
		return 0
	}
	pack, ok := tileEntityPackers[s.Block]
	if !ok {
		return 0
	}
	v, ok := pack(te)
	if !ok {
		return 0
	}
	return v
}

// PayloadInt reads a numeric payload field whatever width the decoder gave it
func PayloadInt(p map[string]any, key string) (int, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int8:
		return int(n), true
	case uint8:
		return int(n), true
	case int16:
		return int(n), true
	case uint16:
		return int(n), true
	case int32:
		return int(n), true
	case uint32:
		return int(n), true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case int:
		return n, true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// PacksTileEntity reports whether block b carries tile entity data
func PacksTileEntity(b uint16) bool {
	_, ok := tileEntityPackers[b]
	return ok
}
