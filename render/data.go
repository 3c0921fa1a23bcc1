package render

import "fmt"

// GetData reads channel dt at x, y, z relative to the current section of
// the centre column. Positions in neighbouring columns load them on demand.
// Anything absent reads as dt.Default().
func (s *RenderState) GetData(dt DataType, x, y, z int) uint32 {
	if dt < Blocks || dt > TileEntities {
		panic(fmt.Sprintf("get data of unknown type %d", int(dt)))
	}
	def := dt.Default()
	l, ok := Resolve(s.ChunkY, x, y, z)
	if !ok {
		return def
	}
	c := &s.chunks[l.Column][l.Row]
	if !c.loaded {
		if s.EnsureLoaded(l.Column-1, l.Row-1, false) != nil {
			return def
		}
	}
	switch dt {
	case Biomes:
		i := l.Z*16 + l.X
		if i >= len(c.Biomes) {
			return def
		}
		return uint32(c.Biomes[i])
	case TileEntities:
		return s.tileEntityData(c.TileEntities)
	}
	sec := c.Sections[l.Section]
	if sec == nil {
		return def
	}
	i := SectionIndex(l.X, l.Y, l.Z)
	var arr []uint8
	switch dt {
	case Blocks:
		if i >= len(sec.Blocks) {
			return def
		}
		return uint32(sec.Blocks[i])
	case Data:
		arr = sec.Data
	case BlockLight:
		arr = sec.BlockLight
	case SkyLight:
		arr = sec.SkyLight
	}
	if i >= len(arr) {
		return def
	}
	return uint32(arr[i])
}
