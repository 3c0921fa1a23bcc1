package renderers

import (
	"image"
	"image/draw"

	"github.com/maxsupermanhd/isochunk/data/blocks"
	"github.com/maxsupermanhd/isochunk/render"
)

const (
	SpriteSize = 24
	TileWidth  = 16 * SpriteSize
	TileHeight = render.SectionsPerChunk*192 + 8*SpriteSize
)

var bordering = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var corners = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// BlockPosition is where the sprite of block x, y, z of section goes on the tile
func BlockPosition(section, x, y, z int) (px, py int) {
	px = (x + z) * SpriteSize / 2
	py = (15-x)*SpriteSize/4 + z*SpriteSize/4 + (15-y)*SpriteSize/2 + (15-section)*192
	return
}

func NewTile() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, TileWidth, TileHeight))
}

func preload(s *render.RenderState, offsets [][2]int, required bool) error {
	for _, o := range offsets {
		err := s.EnsureLoaded(o[0], o[1], required)
		if err != nil && required {
			return err
		}
	}
	return nil
}

// RenderColumn draws the centre column of s onto img back to front.
// A missing centre column, or a missing neighbour when needs requires
// them, aborts the tile.
func RenderColumn(s *render.RenderState, img draw.Image, d BlockDrawer, needs render.DataNeeds) error {
	if err := s.EnsureLoaded(0, 0, true); err != nil {
		return err
	}
	if needs.NeighborsBordering {
		if err := preload(s, bordering, needs.RequireNeighbors); err != nil {
			return err
		}
	}
	if needs.NeighborsCorners {
		if err := preload(s, corners, needs.RequireNeighbors); err != nil {
			return err
		}
	}
	c := s.Column(0, 0)
	for sy := 0; sy < render.SectionsPerChunk; sy++ {
		if c.Sections[sy] == nil {
			continue
		}
		s.ChunkY = sy
		for x := 15; x >= 0; x-- {
			for z := 0; z < 16; z++ {
				for y := 0; y < 16; y++ {
					s.Visit(x, y, z)
					if s.Block == blocks.Air || Occluded(s, x, y, z) {
						continue
					}
					s.BlockPData = PseudoData(s, x, y, z)
					px, py := BlockPosition(sy, x, y, z)
					d.DrawBlock(img, px, py, blockContext(s, x, y, z))
				}
			}
		}
	}
	return nil
}

// Occluded reports whether the three visible faces of the block are covered
func Occluded(s *render.RenderState, x, y, z int) bool {
	return !blocks.IsTransparent(uint16(s.GetData(render.Blocks, x-1, y, z))) &&
		!blocks.IsTransparent(uint16(s.GetData(render.Blocks, x, y, z+1))) &&
		!blocks.IsTransparent(uint16(s.GetData(render.Blocks, x, y+1, z)))
}

func blockContext(s *render.RenderState, x, y, z int) BlockContext {
	b := BlockContext{
		Section:    s.ChunkY,
		X:          x,
		Y:          y,
		Z:          z,
		Block:      s.Block,
		Data:       s.BlockData,
		PData:      s.BlockPData,
		Biome:      uint8(s.GetData(render.Biomes, x, y, z)),
		SkyLight:   uint8(s.GetData(render.SkyLight, x, y+1, z)),
		BlockLight: uint8(s.GetData(render.BlockLight, x, y+1, z)),
		Spawnable:  Spawnable(s, x, y, z),
	}
	if render.PacksTileEntity(s.Block) {
		b.TileData = s.GetData(render.TileEntities, x, y, z)
	}
	return b
}
