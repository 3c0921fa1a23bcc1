package blocks

// ids the renderer looks at directly
const (
	Air              uint16 = 0
	Stone            uint16 = 1
	Grass            uint16 = 2
	Dirt             uint16 = 3
	Bedrock          uint16 = 7
	FlowingWater     uint16 = 8
	Water            uint16 = 9
	FlowingLava      uint16 = 10
	Lava             uint16 = 11
	Sand             uint16 = 12
	Log              uint16 = 17
	Leaves           uint16 = 18
	Glass            uint16 = 20
	TallGrass        uint16 = 31
	Torch            uint16 = 50
	Chest            uint16 = 54
	SnowLayer        uint16 = 78
	Ice              uint16 = 79
	Snow             uint16 = 80
	Fence            uint16 = 85
	Portal           uint16 = 90
	IronBars         uint16 = 101
	GlassPane        uint16 = 102
	FenceGate        uint16 = 107
	NetherBrickFence uint16 = 113
	Skull            uint16 = 144
	StainedGlassPane uint16 = 160
	Leaves2          uint16 = 161
)

// IsWater covers both the still and the flowing variant
func IsWater(b uint16) bool {
	return b == Water || b == FlowingWater
}

func IsFence(b uint16) bool {
	return b == Fence || b == NetherBrickFence || (b >= 188 && b <= 192)
}

func IsFenceGate(b uint16) bool {
	return b == FenceGate || (b >= 183 && b <= 187)
}

func IsPane(b uint16) bool {
	return b == GlassPane || b == IronBars || b == StainedGlassPane
}
