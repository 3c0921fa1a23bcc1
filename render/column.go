package render

const (
	SectionsPerChunk = 16
	SectionSize      = 16 * 16 * 16
	BiomesSize       = 16 * 16
)

// ChunkSection is a 16x16x16 cube, arrays are indexed y*256 + z*16 + x
type ChunkSection struct {
	Blocks     []uint16
	Data       []uint8
	SkyLight   []uint8
	BlockLight []uint8
}

func NewChunkSection() *ChunkSection {
	return &ChunkSection{
		Blocks:     make([]uint16, SectionSize),
		Data:       make([]uint8, SectionSize),
		SkyLight:   make([]uint8, SectionSize),
		BlockLight: make([]uint8, SectionSize),
	}
}

func SectionIndex(x, y, z int) int {
	return y*256 + z*16 + x
}

// TileEntity carries world-absolute, unrotated coordinates
type TileEntity struct {
	ID      string
	X, Y, Z int
	Payload map[string]any
}

// ColumnData is everything a RegionSet knows about one chunk column.
// Sections that were never stored are nil.
type ColumnData struct {
	Sections     [SectionsPerChunk]*ChunkSection
	Biomes       []uint8 // z*16 + x
	TileEntities []TileEntity
}

// ChunkColumn is a slot of the 3x3 neighbourhood
type ChunkColumn struct {
	ColumnData
	loaded    bool
	attempted bool
	err       error
}

func (c *ChunkColumn) Loaded() bool {
	return c.loaded
}
