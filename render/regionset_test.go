package render

import (
	"fmt"
)

type chunkPos struct{ x, z int }

type fakeRegionSet struct {
	chunks map[chunkPos]*ColumnData
	broken map[chunkPos]bool
	north  NorthDirection
	calls  map[chunkPos]int
}

func newFakeRegionSet() *fakeRegionSet {
	return &fakeRegionSet{
		chunks: map[chunkPos]*ColumnData{},
		broken: map[chunkPos]bool{},
		calls:  map[chunkPos]int{},
	}
}

func (f *fakeRegionSet) GetChunk(cx, cz int) (*ColumnData, error) {
	p := chunkPos{cx, cz}
	f.calls[p]++
	if f.broken[p] {
		return nil, fmt.Errorf("chunk %d:%d: unexpected end of nbt", cx, cz)
	}
	c, ok := f.chunks[p]
	if !ok {
		return nil, fmt.Errorf("chunk %d:%d: %w", cx, cz, ErrChunkNotFound)
	}
	return c, nil
}

func (f *fakeRegionSet) NorthDirection() NorthDirection {
	return f.north
}

func (f *fakeRegionSet) totalCalls() int {
	t := 0
	for _, v := range f.calls {
		t += v
	}
	return t
}

// column returns (creating) the column at cx, cz
func (f *fakeRegionSet) column(cx, cz int) *ColumnData {
	p := chunkPos{cx, cz}
	c, ok := f.chunks[p]
	if !ok {
		c = &ColumnData{Biomes: make([]uint8, BiomesSize)}
		f.chunks[p] = c
	}
	return c
}

func (f *fakeRegionSet) section(cx, cz, sy int) *ChunkSection {
	c := f.column(cx, cz)
	if c.Sections[sy] == nil {
		c.Sections[sy] = NewChunkSection()
	}
	return c.Sections[sy]
}
