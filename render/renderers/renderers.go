package renderers

import (
	"bytes"
	"encoding/gob"
	"image/color"
	"os"

	"github.com/maxsupermanhd/isochunk/render"
	"github.com/maxsupermanhd/lac"
)

func ConstructRenderers(cfg *lac.ConfSubtree) []render.ChunkRenderer {
	return NewRenderers(loadBlockColors(cfg), cfg.GetDSBool(false, "requireNeighbours"))
}

// NewRenderers lists every variant. Neighbours are always preloaded since
// occlusion and pseudo data look across column borders.
func NewRenderers(palette Palette, requireNeighbours bool) []render.ChunkRenderer {
	needs := render.DataNeeds{
		NeighborsBordering: true,
		NeighborsCorners:   false,
		RequireNeighbors:   requireNeighbours,
	}
	return []render.ChunkRenderer{
		NewNormalChunkRenderer(palette, needs),
		NewLightingChunkRenderer(palette, needs),
		NewSpawnChunkRenderer(palette, needs),
		NewBiomesChunkRenderer(needs),
	}
}

// FindRenderer returns the variant called name
func FindRenderer(rends []render.ChunkRenderer, name string) (render.ChunkRenderer, bool) {
	for _, r := range rends {
		if r.Name == name {
			return r, true
		}
	}
	return render.ChunkRenderer{}, false
}

func loadBlockColors(cfg *lac.ConfSubtree) Palette {
	var colors []color.RGBA64
	b, err := os.ReadFile(cfg.GetDSString("colors.gob", "blockColorsPath"))
	if err != nil {
		return DefaultPalette()
	}
	err = gob.NewDecoder(bytes.NewReader(b)).Decode(&colors)
	if err != nil {
		return DefaultPalette()
	}
	return PaletteFromColors(colors)
}
