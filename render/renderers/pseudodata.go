package renderers

import (
	"github.com/maxsupermanhd/isochunk/data/blocks"
	"github.com/maxsupermanhd/isochunk/render"
)

// neighbour mask bits
const (
	sideNegZ = 1 << iota
	sideNegX
	sidePosZ
	sidePosX
	// set for fluids and ice when the block above is different
	topExposed = 0x10
	// grass covered by snow
	snowyGrass = 0x10
)

// adjacentMask sets a side bit for every horizontal neighbour matching fn
func adjacentMask(s *render.RenderState, x, y, z int, fn func(b uint16) bool) uint8 {
	var m uint8
	if fn(uint16(s.GetData(render.Blocks, x+1, y, z))) {
		m |= sidePosX
	}
	if fn(uint16(s.GetData(render.Blocks, x, y, z+1))) {
		m |= sidePosZ
	}
	if fn(uint16(s.GetData(render.Blocks, x-1, y, z))) {
		m |= sideNegX
	}
	if fn(uint16(s.GetData(render.Blocks, x, y, z-1))) {
		m |= sideNegZ
	}
	return m
}

func solidOpaque(b uint16) bool {
	return blocks.HasProperty(b, blocks.Solid) && !blocks.IsTransparent(b)
}

// PseudoData derives the ancillary data of the current block from its
// surroundings. Blocks that do not need any get 0.
func PseudoData(s *render.RenderState, x, y, z int) uint8 {
	b := s.Block
	switch {
	case b == blocks.Grass:
		above := uint16(s.GetData(render.Blocks, x, y+1, z))
		if above == blocks.SnowLayer || above == blocks.Snow {
			return snowyGrass
		}
		return 0
	case blocks.IsWater(b):
		m := adjacentMask(s, x, y, z, blocks.IsWater) ^ 0x0f
		if !blocks.IsWater(uint16(s.GetData(render.Blocks, x, y+1, z))) {
			m |= topExposed
		}
		return m
	case b == blocks.Ice:
		m := adjacentMask(s, x, y, z, func(n uint16) bool { return n == blocks.Ice }) ^ 0x0f
		if uint16(s.GetData(render.Blocks, x, y+1, z)) != blocks.Ice {
			m |= topExposed
		}
		return m
	case b == blocks.NetherBrickFence:
		return adjacentMask(s, x, y, z, func(n uint16) bool {
			return n == blocks.NetherBrickFence || blocks.IsFenceGate(n) || solidOpaque(n)
		})
	case blocks.IsFence(b):
		return adjacentMask(s, x, y, z, func(n uint16) bool {
			return (blocks.IsFence(n) && n != blocks.NetherBrickFence) || blocks.IsFenceGate(n) || solidOpaque(n)
		})
	case blocks.IsPane(b):
		return adjacentMask(s, x, y, z, func(n uint16) bool {
			return blocks.IsPane(n) || solidOpaque(n)
		})
	case b == blocks.Portal:
		// 1 when the portal spans the x axis, 2 when it spans z
		if uint16(s.GetData(render.Blocks, x+1, y, z)) == blocks.Portal ||
			uint16(s.GetData(render.Blocks, x-1, y, z)) == blocks.Portal {
			return 1
		}
		if uint16(s.GetData(render.Blocks, x, y, z+1)) == blocks.Portal ||
			uint16(s.GetData(render.Blocks, x, y, z-1)) == blocks.Portal {
			return 2
		}
		return 0
	}
	return 0
}
