package biomes

import "image/color"

type Biome struct {
	Name    string
	Grass   color.RGBA
	Foliage color.RGBA
	Water   color.RGBA
}

var plainsWater = color.RGBA{0x3F, 0x76, 0xE4, 0xFF}

// legacy numeric biome ids as stored in the 256 byte Biomes array
var Biomes = map[uint8]Biome{
	0:   {"ocean", color.RGBA{0x8E, 0xB9, 0x71, 0xFF}, color.RGBA{0x71, 0xA7, 0x4D, 0xFF}, plainsWater},
	1:   {"plains", color.RGBA{0x91, 0xBD, 0x59, 0xFF}, color.RGBA{0x77, 0xAB, 0x2F, 0xFF}, plainsWater},
	2:   {"desert", color.RGBA{0xBF, 0xB7, 0x55, 0xFF}, color.RGBA{0xAE, 0xA4, 0x2A, 0xFF}, plainsWater},
	3:   {"extreme_hills", color.RGBA{0x8A, 0xB6, 0x89, 0xFF}, color.RGBA{0x6D, 0xA3, 0x6B, 0xFF}, plainsWater},
	4:   {"forest", color.RGBA{0x79, 0xC0, 0x5A, 0xFF}, color.RGBA{0x59, 0xAE, 0x30, 0xFF}, plainsWater},
	5:   {"taiga", color.RGBA{0x86, 0xB7, 0x83, 0xFF}, color.RGBA{0x68, 0xA4, 0x64, 0xFF}, plainsWater},
	6:   {"swampland", color.RGBA{0x6A, 0x70, 0x39, 0xFF}, color.RGBA{0x6A, 0x70, 0x39, 0xFF}, color.RGBA{0x61, 0x7B, 0x64, 0xFF}},
	7:   {"river", color.RGBA{0x8E, 0xB9, 0x71, 0xFF}, color.RGBA{0x71, 0xA7, 0x4D, 0xFF}, plainsWater},
	8:   {"hell", color.RGBA{0xBF, 0xB7, 0x55, 0xFF}, color.RGBA{0xAE, 0xA4, 0x2A, 0xFF}, plainsWater},
	9:   {"sky", color.RGBA{0x8E, 0xB9, 0x71, 0xFF}, color.RGBA{0x71, 0xA7, 0x4D, 0xFF}, plainsWater},
	10:  {"frozen_ocean", color.RGBA{0x80, 0xB4, 0x97, 0xFF}, color.RGBA{0x60, 0xA1, 0x7B, 0xFF}, color.RGBA{0x39, 0x38, 0xC9, 0xFF}},
	11:  {"frozen_river", color.RGBA{0x80, 0xB4, 0x97, 0xFF}, color.RGBA{0x60, 0xA1, 0x7B, 0xFF}, color.RGBA{0x39, 0x38, 0xC9, 0xFF}},
	12:  {"ice_flats", color.RGBA{0x80, 0xB4, 0x97, 0xFF}, color.RGBA{0x60, 0xA1, 0x7B, 0xFF}, plainsWater},
	13:  {"ice_mountains", color.RGBA{0x80, 0xB4, 0x97, 0xFF}, color.RGBA{0x60, 0xA1, 0x7B, 0xFF}, plainsWater},
	14:  {"mushroom_island", color.RGBA{0x55, 0xC9, 0x3F, 0xFF}, color.RGBA{0x2B, 0xBB, 0x0F, 0xFF}, plainsWater},
	16:  {"beaches", color.RGBA{0x91, 0xBD, 0x59, 0xFF}, color.RGBA{0x77, 0xAB, 0x2F, 0xFF}, plainsWater},
	21:  {"jungle", color.RGBA{0x59, 0xC9, 0x3C, 0xFF}, color.RGBA{0x30, 0xBB, 0x0B, 0xFF}, plainsWater},
	24:  {"deep_ocean", color.RGBA{0x8E, 0xB9, 0x71, 0xFF}, color.RGBA{0x71, 0xA7, 0x4D, 0xFF}, plainsWater},
	27:  {"birch_forest", color.RGBA{0x88, 0xBB, 0x67, 0xFF}, color.RGBA{0x6B, 0xA9, 0x41, 0xFF}, plainsWater},
	29:  {"roofed_forest", color.RGBA{0x50, 0x7A, 0x32, 0xFF}, color.RGBA{0x59, 0xAE, 0x30, 0xFF}, plainsWater},
	30:  {"taiga_cold", color.RGBA{0x80, 0xB4, 0x97, 0xFF}, color.RGBA{0x60, 0xA1, 0x7B, 0xFF}, plainsWater},
	35:  {"savanna", color.RGBA{0xBF, 0xB7, 0x55, 0xFF}, color.RGBA{0xAE, 0xA4, 0x2A, 0xFF}, plainsWater},
	37:  {"mesa", color.RGBA{0x90, 0x81, 0x4D, 0xFF}, color.RGBA{0x9E, 0x81, 0x4D, 0xFF}, plainsWater},
	127: {"void", color.RGBA{0x8E, 0xB9, 0x71, 0xFF}, color.RGBA{0x71, 0xA7, 0x4D, 0xFF}, plainsWater},
}

// Get falls back to plains for ids the table does not know
func Get(id uint8) Biome {
	b, ok := Biomes[id]
	if !ok {
		return Biomes[1]
	}
	return b
}

// BiomeColors is a flat id-indexed grass palette for the biome renderer
var BiomeColors = func() []color.RGBA {
	ret := make([]color.RGBA, 256)
	for i := range ret {
		ret[i] = Get(uint8(i)).Grass
	}
	return ret
}()
