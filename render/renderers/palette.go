package renderers

import (
	"image/color"

	"github.com/maxsupermanhd/isochunk/data/biomes"
	"github.com/maxsupermanhd/isochunk/data/blocks"
)

// Palette holds a flat colour per block id
type Palette []color.NRGBA

var fallbackColor = color.NRGBA{0x7F, 0x7F, 0x7F, 0xFF}

var defaultColors = map[uint16]color.NRGBA{
	blocks.Stone:       {0x7D, 0x7D, 0x7D, 0xFF},
	blocks.Dirt:        {0x86, 0x60, 0x43, 0xFF},
	4:                  {0x7A, 0x7A, 0x7A, 0xFF},
	5:                  {0xA2, 0x82, 0x4E, 0xFF},
	blocks.Bedrock:     {0x54, 0x54, 0x54, 0xFF},
	blocks.FlowingLava: {0xCF, 0x5B, 0x14, 0xFF},
	blocks.Lava:        {0xCF, 0x5B, 0x14, 0xFF},
	blocks.Sand:        {0xDB, 0xCF, 0xA3, 0xFF},
	13:                 {0x85, 0x7F, 0x7E, 0xFF},
	14:                 {0x8F, 0x8B, 0x7C, 0xFF},
	15:                 {0x88, 0x82, 0x7F, 0xFF},
	16:                 {0x73, 0x73, 0x73, 0xFF},
	blocks.Log:         {0x66, 0x51, 0x32, 0xFF},
	blocks.Glass:       {0xC0, 0xF5, 0xFE, 0x40},
	24:                 {0xD8, 0xCB, 0x9B, 0xFF},
	35:                 {0xDD, 0xDD, 0xDD, 0xFF},
	37:                 {0xF1, 0xF9, 0x02, 0xFF},
	38:                 {0xC3, 0x10, 0x10, 0xFF},
	45:                 {0x96, 0x61, 0x53, 0xFF},
	48:                 {0x67, 0x79, 0x67, 0xFF},
	49:                 {0x14, 0x12, 0x1D, 0xFF},
	blocks.Torch:       {0xFF, 0xD8, 0x00, 0xFF},
	blocks.Chest:       {0xA0, 0x72, 0x2D, 0xFF},
	blocks.SnowLayer:   {0xF0, 0xFB, 0xFB, 0xFF},
	blocks.Ice:         {0x91, 0xB7, 0xFD, 0xC0},
	blocks.Snow:        {0xF0, 0xFB, 0xFB, 0xFF},
	82:                 {0xA0, 0xA6, 0xB3, 0xFF},
	blocks.Fence:       {0xA2, 0x82, 0x4E, 0xFF},
	87:                 {0x6F, 0x36, 0x34, 0xFF},
	88:                 {0x51, 0x3E, 0x32, 0xFF},
	89:                 {0xF9, 0xD4, 0x9C, 0xFF},
	blocks.Portal:      {0x59, 0x0B, 0xC0, 0xC0},
	blocks.IronBars:    {0x6D, 0x6C, 0x6A, 0xFF},
	blocks.GlassPane:   {0xC0, 0xF5, 0xFE, 0x40},
	blocks.FenceGate:   {0xA2, 0x82, 0x4E, 0xFF},
	112:                {0x2C, 0x16, 0x1A, 0xFF},
	113:                {0x2C, 0x16, 0x1A, 0xFF},
	121:                {0xDD, 0xDF, 0xA5, 0xFF},
	159:                {0xD1, 0xB2, 0xA1, 0xFF},
	172:                {0x96, 0x5C, 0x42, 0xFF},
	174:                {0xA5, 0xC3, 0xF5, 0xFF},
}

var skullColors = []color.NRGBA{
	{0xC8, 0xC8, 0xC8, 0xFF}, // skeleton
	{0x34, 0x34, 0x34, 0xFF}, // wither skeleton
	{0x4C, 0x7B, 0x3A, 0xFF}, // zombie
	{0xB6, 0x86, 0x6C, 0xFF}, // player
	{0x5E, 0xB5, 0x4A, 0xFF}, // creeper
	{0x2E, 0x23, 0x23, 0xFF}, // dragon
}

func DefaultPalette() Palette {
	p := make(Palette, blocks.MaxBlockID)
	for id, c := range defaultColors {
		p[id] = c
	}
	return p
}

// PaletteFromColors builds a palette from a stored colour list, ids it does
// not cover keep their default colour.
func PaletteFromColors(colors []color.RGBA64) Palette {
	p := DefaultPalette()
	for i, c := range colors {
		if i >= len(p) {
			break
		}
		if c.A == 0 {
			continue
		}
		p[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return p
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// BlockColor picks the colour of a block, tinting biome dependent ones
func (p Palette) BlockColor(b BlockContext) (color.NRGBA, bool) {
	biome := biomes.Get(b.Biome)
	switch {
	case b.Block == blocks.Grass:
		if b.PData&snowyGrass != 0 {
			return defaultColors[blocks.Snow], true
		}
		return nrgba(biome.Grass), true
	case b.Block == blocks.TallGrass:
		c := nrgba(biome.Grass)
		c.A = 0xA0
		return c, true
	case b.Block == blocks.Leaves || b.Block == blocks.Leaves2:
		return nrgba(biome.Foliage), true
	case blocks.IsWater(b.Block):
		c := nrgba(biome.Water)
		c.A = 0xB4
		return c, true
	case b.Block == blocks.Skull:
		t := int(b.TileData >> 4)
		if t < len(skullColors) {
			return skullColors[t], true
		}
		return skullColors[0], true
	}
	if int(b.Block) < len(p) && p[b.Block].A != 0 {
		return p[b.Block], true
	}
	return fallbackColor, true
}
