package render

import (
	"github.com/maxsupermanhd/isochunk/data/blocks"
)

// RenderState is the working context of one tile: the column being drawn,
// its eight neighbours and the block currently visited. It is owned by a
// single goroutine for its whole life.
type RenderState struct {
	Regions RegionSet

	// chunk column coordinates and the section being drawn
	ChunkX, ChunkY, ChunkZ int

	// current block, relative to the section
	X, Y, Z    int
	Block      uint16
	BlockData  uint8
	BlockPData uint8

	chunks [3][3]ChunkColumn
	loads  int
}

func NewRenderState(regions RegionSet, cx, cz int) *RenderState {
	return &RenderState{
		Regions: regions,
		ChunkX:  cx,
		ChunkZ:  cz,
	}
}

// Visit makes x, y, z of the current section the current block
func (s *RenderState) Visit(x, y, z int) {
	s.X, s.Y, s.Z = x, y, z
	s.Block = uint16(s.GetData(Blocks, x, y, z))
	s.BlockData = uint8(s.GetData(Data, x, y, z))
	s.BlockPData = 0
	if blocks.HasProperty(s.Block, blocks.NoData) {
		s.BlockData = 0
	} else if r := blocks.DataRange(s.Block); r != 0 && s.BlockData >= r {
		s.BlockData = 0
	}
}

// Column returns the centre column (0, 0) or one of its neighbours
func (s *RenderState) Column(dx, dz int) *ChunkColumn {
	if dx < -1 || dx > 1 || dz < -1 || dz > 1 {
		return nil
	}
	return &s.chunks[dx+1][dz+1]
}

// Loads is how many times the RegionSet was asked for a column
func (s *RenderState) Loads() int {
	return s.loads
}

func (s *RenderState) NorthDirection() NorthDirection {
	if s.Regions == nil {
		return UpperLeft
	}
	n := s.Regions.NorthDirection()
	if !n.Valid() {
		return UpperLeft
	}
	return n
}
