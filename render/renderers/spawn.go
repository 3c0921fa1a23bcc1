package renderers

import (
	"github.com/maxsupermanhd/isochunk/data/blocks"
	"github.com/maxsupermanhd/isochunk/render"
)

// light level at night below which monsters spawn
const spawnLightThreshold = 8

// Spawnable reports whether a hostile mob could spawn on top of the current block
func Spawnable(s *render.RenderState, x, y, z int) bool {
	b := s.Block
	if !blocks.HasProperty(b, blocks.Solid) || blocks.HasProperty(b, blocks.NoSpawn) || blocks.IsTransparent(b) {
		return false
	}
	above := uint16(s.GetData(render.Blocks, x, y+1, z))
	if !blocks.IsTransparent(above) || blocks.HasProperty(above, blocks.Fluid) {
		return false
	}
	return NightLight(s.GetData(render.BlockLight, x, y+1, z), s.GetData(render.SkyLight, x, y+1, z)) < spawnLightThreshold
}

// NightLight is the light level at midnight: sky light drops by 11
func NightLight(blockLight, skyLight uint32) uint32 {
	sky := uint32(0)
	if skyLight > 11 {
		sky = skyLight - 11
	}
	if blockLight > sky {
		return blockLight
	}
	return sky
}
