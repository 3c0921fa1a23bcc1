package blocks

const (
	transparent = 1 << Transparent
	solid       = 1 << Solid
	fluid       = 1 << Fluid
	nospawn     = 1 << NoSpawn
	nodata      = 1 << NoData
)

type definition struct {
	id        uint16
	name      string
	flags     uint8
	dataRange uint8
}

// ids 0..197, the classic numeric block set
var definitions = []definition{
	{0, "air", transparent | nodata, 0},
	{1, "stone", solid, 7},
	{2, "grass", solid | nodata, 0},
	{3, "dirt", solid, 3},
	{4, "cobblestone", solid | nodata, 0},
	{5, "planks", solid, 6},
	{6, "sapling", transparent | nospawn, 16},
	{7, "bedrock", solid | nospawn | nodata, 0},
	{8, "flowing_water", transparent | fluid | nospawn, 16},
	{9, "water", transparent | fluid | nospawn, 16},
	{10, "flowing_lava", transparent | fluid | nospawn, 16},
	{11, "lava", transparent | fluid | nospawn, 16},
	{12, "sand", solid, 2},
	{13, "gravel", solid | nodata, 0},
	{14, "gold_ore", solid | nodata, 0},
	{15, "iron_ore", solid | nodata, 0},
	{16, "coal_ore", solid | nodata, 0},
	{17, "log", solid, 16},
	{18, "leaves", transparent | solid | nospawn, 16},
	{19, "sponge", solid, 2},
	{20, "glass", transparent | solid | nospawn | nodata, 0},
	{21, "lapis_ore", solid | nodata, 0},
	{22, "lapis_block", solid | nodata, 0},
	{23, "dispenser", solid, 16},
	{24, "sandstone", solid, 3},
	{25, "noteblock", solid | nodata, 0},
	{26, "bed", transparent | nospawn, 16},
	{27, "golden_rail", transparent | nospawn, 16},
	{28, "detector_rail", transparent | nospawn, 16},
	{29, "sticky_piston", solid, 16},
	{30, "web", transparent | nospawn | nodata, 0},
	{31, "tallgrass", transparent | nospawn, 3},
	{32, "deadbush", transparent | nospawn | nodata, 0},
	{33, "piston", solid, 16},
	{34, "piston_head", transparent | nospawn, 16},
	{35, "wool", solid, 16},
	{37, "yellow_flower", transparent | nospawn | nodata, 0},
	{38, "red_flower", transparent | nospawn, 9},
	{39, "brown_mushroom", transparent | nospawn | nodata, 0},
	{40, "red_mushroom", transparent | nospawn | nodata, 0},
	{41, "gold_block", solid | nodata, 0},
	{42, "iron_block", solid | nodata, 0},
	{43, "double_stone_slab", solid, 16},
	{44, "stone_slab", transparent, 16},
	{45, "brick_block", solid | nodata, 0},
	{46, "tnt", solid | nodata, 0},
	{47, "bookshelf", solid | nodata, 0},
	{48, "mossy_cobblestone", solid | nodata, 0},
	{49, "obsidian", solid | nodata, 0},
	{50, "torch", transparent | nospawn, 6},
	{51, "fire", transparent | nospawn, 16},
	{52, "mob_spawner", transparent | solid | nospawn | nodata, 0},
	{53, "oak_stairs", transparent, 8},
	{54, "chest", transparent | nospawn, 6},
	{55, "redstone_wire", transparent | nospawn, 16},
	{56, "diamond_ore", solid | nodata, 0},
	{57, "diamond_block", solid | nodata, 0},
	{58, "crafting_table", solid | nodata, 0},
	{59, "wheat", transparent | nospawn, 8},
	{60, "farmland", solid, 8},
	{61, "furnace", solid, 6},
	{62, "lit_furnace", solid, 6},
	{63, "standing_sign", transparent | nospawn, 16},
	{64, "wooden_door", transparent | nospawn, 16},
	{65, "ladder", transparent | nospawn, 6},
	{66, "rail", transparent | nospawn, 10},
	{67, "stone_stairs", transparent, 8},
	{68, "wall_sign", transparent | nospawn, 6},
	{69, "lever", transparent | nospawn, 16},
	{70, "stone_pressure_plate", transparent | nospawn, 2},
	{71, "iron_door", transparent | nospawn, 16},
	{72, "wooden_pressure_plate", transparent | nospawn, 2},
	{73, "redstone_ore", solid | nodata, 0},
	{74, "lit_redstone_ore", solid | nodata, 0},
	{75, "unlit_redstone_torch", transparent | nospawn, 6},
	{76, "redstone_torch", transparent | nospawn, 6},
	{77, "stone_button", transparent | nospawn, 16},
	{78, "snow_layer", transparent | nospawn, 8},
	{79, "ice", transparent | solid | nodata, 0},
	{80, "snow", solid | nodata, 0},
	{81, "cactus", transparent | solid | nospawn, 16},
	{82, "clay", solid | nodata, 0},
	{83, "reeds", transparent | nospawn, 16},
	{84, "jukebox", solid, 2},
	{85, "fence", transparent | nospawn | nodata, 0},
	{86, "pumpkin", solid, 4},
	{87, "netherrack", solid | nodata, 0},
	{88, "soul_sand", solid | nodata, 0},
	{89, "glowstone", transparent | solid | nodata, 0},
	{90, "portal", transparent | nospawn, 3},
	{91, "lit_pumpkin", solid, 4},
	{92, "cake", transparent | nospawn, 7},
	{93, "unpowered_repeater", transparent | nospawn, 16},
	{94, "powered_repeater", transparent | nospawn, 16},
	{95, "stained_glass", transparent | solid | nospawn, 16},
	{96, "trapdoor", transparent | nospawn, 16},
	{97, "monster_egg", solid, 6},
	{98, "stonebrick", solid, 4},
	{99, "brown_mushroom_block", solid, 16},
	{100, "red_mushroom_block", solid, 16},
	{101, "iron_bars", transparent | nospawn | nodata, 0},
	{102, "glass_pane", transparent | nospawn | nodata, 0},
	{103, "melon_block", solid | nodata, 0},
	{104, "pumpkin_stem", transparent | nospawn, 8},
	{105, "melon_stem", transparent | nospawn, 8},
	{106, "vine", transparent | nospawn, 16},
	{107, "fence_gate", transparent | nospawn, 8},
	{108, "brick_stairs", transparent, 8},
	{109, "stone_brick_stairs", transparent, 8},
	{110, "mycelium", solid | nodata, 0},
	{111, "waterlily", transparent | nospawn | nodata, 0},
	{112, "nether_brick", solid | nodata, 0},
	{113, "nether_brick_fence", transparent | nospawn | nodata, 0},
	{114, "nether_brick_stairs", transparent, 8},
	{115, "nether_wart", transparent | nospawn, 4},
	{116, "enchanting_table", transparent | solid | nospawn | nodata, 0},
	{117, "brewing_stand", transparent | nospawn, 8},
	{118, "cauldron", transparent | nospawn, 4},
	{119, "end_portal", transparent | nospawn | nodata, 0},
	{120, "end_portal_frame", transparent | nospawn, 8},
	{121, "end_stone", solid | nodata, 0},
	{122, "dragon_egg", transparent | nospawn | nodata, 0},
	{123, "redstone_lamp", solid | nodata, 0},
	{124, "lit_redstone_lamp", solid | nodata, 0},
	{125, "double_wooden_slab", solid, 6},
	{126, "wooden_slab", transparent, 16},
	{127, "cocoa", transparent | nospawn, 12},
	{128, "sandstone_stairs", transparent, 8},
	{129, "emerald_ore", solid | nodata, 0},
	{130, "ender_chest", transparent | nospawn, 6},
	{131, "tripwire_hook", transparent | nospawn, 16},
	{132, "tripwire", transparent | nospawn, 16},
	{133, "emerald_block", solid | nodata, 0},
	{134, "spruce_stairs", transparent, 8},
	{135, "birch_stairs", transparent, 8},
	{136, "jungle_stairs", transparent, 8},
	{137, "command_block", solid, 16},
	{138, "beacon", transparent | solid | nospawn | nodata, 0},
	{139, "cobblestone_wall", transparent | nospawn, 2},
	{140, "flower_pot", transparent | nospawn, 16},
	{141, "carrots", transparent | nospawn, 8},
	{142, "potatoes", transparent | nospawn, 8},
	{143, "wooden_button", transparent | nospawn, 16},
	{144, "skull", transparent | nospawn, 16},
	{145, "anvil", transparent | nospawn, 12},
	{146, "trapped_chest", transparent | nospawn, 6},
	{147, "light_weighted_pressure_plate", transparent | nospawn, 16},
	{148, "heavy_weighted_pressure_plate", transparent | nospawn, 16},
	{149, "unpowered_comparator", transparent | nospawn, 16},
	{150, "powered_comparator", transparent | nospawn, 16},
	{151, "daylight_detector", transparent | nospawn, 16},
	{152, "redstone_block", solid | nodata, 0},
	{153, "quartz_ore", solid | nodata, 0},
	{154, "hopper", transparent | nospawn, 16},
	{155, "quartz_block", solid, 5},
	{156, "quartz_stairs", transparent, 8},
	{157, "activator_rail", transparent | nospawn, 16},
	{158, "dropper", solid, 16},
	{159, "stained_hardened_clay", solid, 16},
	{160, "stained_glass_pane", transparent | nospawn, 16},
	{161, "leaves2", transparent | solid | nospawn, 16},
	{162, "log2", solid, 16},
	{163, "acacia_stairs", transparent, 8},
	{164, "dark_oak_stairs", transparent, 8},
	{165, "slime", transparent | solid | nodata, 0},
	{166, "barrier", transparent | solid | nospawn | nodata, 0},
	{167, "iron_trapdoor", transparent | nospawn, 16},
	{168, "prismarine", solid, 3},
	{169, "sea_lantern", solid | nodata, 0},
	{170, "hay_block", solid, 12},
	{171, "carpet", transparent | nospawn, 16},
	{172, "hardened_clay", solid | nodata, 0},
	{173, "coal_block", solid | nodata, 0},
	{174, "packed_ice", solid | nodata, 0},
	{175, "double_plant", transparent | nospawn, 16},
	{176, "standing_banner", transparent | nospawn, 16},
	{177, "wall_banner", transparent | nospawn, 6},
	{178, "daylight_detector_inverted", transparent | nospawn, 16},
	{179, "red_sandstone", solid, 3},
	{180, "red_sandstone_stairs", transparent, 8},
	{181, "double_stone_slab2", solid, 16},
	{182, "stone_slab2", transparent, 16},
	{183, "spruce_fence_gate", transparent | nospawn, 8},
	{184, "birch_fence_gate", transparent | nospawn, 8},
	{185, "jungle_fence_gate", transparent | nospawn, 8},
	{186, "dark_oak_fence_gate", transparent | nospawn, 8},
	{187, "acacia_fence_gate", transparent | nospawn, 8},
	{188, "spruce_fence", transparent | nospawn | nodata, 0},
	{189, "birch_fence", transparent | nospawn | nodata, 0},
	{190, "jungle_fence", transparent | nospawn | nodata, 0},
	{191, "dark_oak_fence", transparent | nospawn | nodata, 0},
	{192, "acacia_fence", transparent | nospawn | nodata, 0},
	{193, "spruce_door", transparent | nospawn, 16},
	{194, "birch_door", transparent | nospawn, 16},
	{195, "jungle_door", transparent | nospawn, 16},
	{196, "acacia_door", transparent | nospawn, 16},
	{197, "dark_oak_door", transparent | nospawn, 16},
}
