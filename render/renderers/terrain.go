package renderers

import (
	"image"
	"image/color"

	"github.com/maxsupermanhd/isochunk/render"
)

var spawnOverlay = color.NRGBA{0xFF, 0x00, 0x00, 0x80}

func renderWith(d BlockDrawer, needs render.DataNeeds) func(*render.RenderState) (*image.RGBA, error) {
	return func(s *render.RenderState) (*image.RGBA, error) {
		img := NewTile()
		if err := RenderColumn(s, img, d, needs); err != nil {
			return nil, err
		}
		return img, nil
	}
}

func NewNormalChunkRenderer(palette Palette, needs render.DataNeeds) render.ChunkRenderer {
	return render.ChunkRenderer{
		Name:      "normal",
		Render:    renderWith(FlatDrawer{Color: palette.BlockColor}, needs),
		DataNeeds: needs,
	}
}

// LightFactor darkens a block by the light reaching its top, fully dark
// blocks keep a quarter of their colour
func LightFactor(b BlockContext) float64 {
	l := b.SkyLight
	if b.BlockLight > l {
		l = b.BlockLight
	}
	if l > 15 {
		l = 15
	}
	return 0.25 + 0.75*float64(l)/15
}

func NewLightingChunkRenderer(palette Palette, needs render.DataNeeds) render.ChunkRenderer {
	return render.ChunkRenderer{
		Name: "lighting",
		Render: renderWith(FlatDrawer{
			Color: palette.BlockColor,
			Light: LightFactor,
		}, needs),
		DataNeeds: needs,
	}
}

func NewSpawnChunkRenderer(palette Palette, needs render.DataNeeds) render.ChunkRenderer {
	return render.ChunkRenderer{
		Name: "spawn",
		Render: renderWith(FlatDrawer{
			Color: palette.BlockColor,
			Overlay: func(b BlockContext) (color.NRGBA, bool) {
				return spawnOverlay, b.Spawnable
			},
		}, needs),
		DataNeeds: needs,
	}
}
