package renderers

import (
	"image/color"

	"github.com/maxsupermanhd/isochunk/data/biomes"
	"github.com/maxsupermanhd/isochunk/render"
)

func biomeColor(b BlockContext) (color.NRGBA, bool) {
	if int(b.Biome) >= len(biomes.BiomeColors) {
		return color.NRGBA{0, 0, 0, 0xFF}, true
	}
	return nrgba(biomes.BiomeColors[b.Biome]), true
}

func NewBiomesChunkRenderer(needs render.DataNeeds) render.ChunkRenderer {
	return render.ChunkRenderer{
		Name:      "biome",
		Render:    renderWith(FlatDrawer{Color: biomeColor}, needs),
		DataNeeds: needs,
	}
}
