package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxsupermanhd/isochunk/data/blocks"
)

func TestGetDataCentreDoesNotLoadNeighbours(t *testing.T) {
	f := newFakeRegionSet()
	sec := f.section(3, -2, 4)
	sec.Blocks[SectionIndex(1, 2, 3)] = blocks.Stone
	sec.Data[SectionIndex(1, 2, 3)] = 5
	sec.SkyLight[SectionIndex(1, 2, 3)] = 9
	sec.BlockLight[SectionIndex(1, 2, 3)] = 4
	f.column(3, -2).Biomes[3*16+1] = 21

	s := NewRenderState(f, 3, -2)
	s.ChunkY = 4
	require.NoError(t, s.EnsureLoaded(0, 0, true))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			for z := 0; z < 16; z++ {
				s.GetData(Blocks, x, y, z)
			}
		}
	}
	assert.Equal(t, 1, f.totalCalls())
	assert.Equal(t, 1, s.Loads())

	assert.Equal(t, uint32(blocks.Stone), s.GetData(Blocks, 1, 2, 3))
	assert.Equal(t, uint32(5), s.GetData(Data, 1, 2, 3))
	assert.Equal(t, uint32(9), s.GetData(SkyLight, 1, 2, 3))
	assert.Equal(t, uint32(4), s.GetData(BlockLight, 1, 2, 3))
	assert.Equal(t, uint32(21), s.GetData(Biomes, 1, 2, 3))
	// section 16 is above the world, every channel gives its default
	assert.Equal(t, uint32(0), s.GetData(Biomes, 1, 200, 3))
	assert.Equal(t, uint32(15), s.GetData(SkyLight, 1, 200, 3))
	assert.Equal(t, 1, s.Loads())
}

func TestGetDataMissingSection(t *testing.T) {
	f := newFakeRegionSet()
	f.section(0, 0, 0)
	s := NewRenderState(f, 0, 0)
	s.ChunkY = 5
	assert.Equal(t, uint32(15), s.GetData(SkyLight, 0, 0, 0))
	assert.Equal(t, uint32(0), s.GetData(Blocks, 0, 0, 0))
	assert.Equal(t, uint32(0), s.GetData(Data, 0, 0, 0))
	assert.Equal(t, uint32(0), s.GetData(BlockLight, 0, 0, 0))
}

func TestGetDataShortArrays(t *testing.T) {
	f := newFakeRegionSet()
	f.column(0, 0).Sections[0] = &ChunkSection{Blocks: []uint16{blocks.Stone}}
	f.column(0, 0).Biomes = nil
	s := NewRenderState(f, 0, 0)
	assert.Equal(t, uint32(blocks.Stone), s.GetData(Blocks, 0, 0, 0))
	assert.Equal(t, uint32(0), s.GetData(Blocks, 5, 5, 5))
	assert.Equal(t, uint32(15), s.GetData(SkyLight, 5, 5, 5))
	assert.Equal(t, uint32(0), s.GetData(Biomes, 5, 5, 5))
}

func TestGetDataBiomesNeighbour(t *testing.T) {
	f := newFakeRegionSet()
	f.column(0, 0)
	f.column(1, 0).Biomes[5*16+4] = 6
	s := NewRenderState(f, 0, 0)
	require.NoError(t, s.EnsureLoaded(0, 0, true))

	assert.Equal(t, uint32(6), s.GetData(Biomes, 20, 0, 5))
	assert.Equal(t, 1, f.calls[chunkPos{1, 0}])
	assert.Equal(t, uint32(6), s.GetData(Biomes, 20, 0, 5))
	assert.Equal(t, 1, f.calls[chunkPos{1, 0}])
	assert.Equal(t, 2, f.totalCalls())
}

func TestGetDataBelowWorldDoesNotLoad(t *testing.T) {
	f := newFakeRegionSet()
	s := NewRenderState(f, 0, 0)
	s.ChunkY = 0
	assert.Equal(t, uint32(15), s.GetData(SkyLight, -1, -1, 0))
	assert.Equal(t, uint32(0), s.GetData(Blocks, 0, -1, 0))
	s.ChunkY = 15
	assert.Equal(t, uint32(0), s.GetData(BlockLight, 0, 16, 0))
	assert.Equal(t, 0, f.totalCalls())
}

func TestGetDataAcrossBoundaries(t *testing.T) {
	f := newFakeRegionSet()
	f.section(0, 0, 3)
	f.section(-1, 0, 3).Blocks[SectionIndex(15, 0, 0)] = blocks.Glass
	f.section(0, 1, 3).Blocks[SectionIndex(0, 0, 0)] = blocks.Sand
	f.section(0, 0, 4).Blocks[SectionIndex(0, 0, 0)] = blocks.Log
	f.section(0, 0, 2).SkyLight[SectionIndex(0, 15, 0)] = 3
	f.section(1, 1, 3).Blocks[SectionIndex(0, 0, 0)] = blocks.Leaves

	s := NewRenderState(f, 0, 0)
	s.ChunkY = 3
	assert.Equal(t, uint32(blocks.Glass), s.GetData(Blocks, -1, 0, 0))
	assert.Equal(t, uint32(blocks.Sand), s.GetData(Blocks, 0, 0, 16))
	assert.Equal(t, uint32(blocks.Log), s.GetData(Blocks, 0, 16, 0))
	assert.Equal(t, uint32(3), s.GetData(SkyLight, 0, -1, 0))
	assert.Equal(t, uint32(blocks.Leaves), s.GetData(Blocks, 16, 0, 16))
}

func TestGetDataMissingNeighbour(t *testing.T) {
	f := newFakeRegionSet()
	f.section(0, 0, 0)
	s := NewRenderState(f, 0, 0)
	assert.Equal(t, uint32(15), s.GetData(SkyLight, 16, 0, 0))
	assert.Equal(t, uint32(0), s.GetData(Blocks, 16, 0, 0))
	assert.Equal(t, uint32(0), s.GetData(Blocks, 17, 3, 0))
	assert.Equal(t, 1, f.calls[chunkPos{1, 0}])
}

func TestGetDataUnknownType(t *testing.T) {
	s := NewRenderState(newFakeRegionSet(), 0, 0)
	assert.Panics(t, func() { s.GetData(DataType(42), 0, 0, 0) })
}

func TestEnsureLoadedIdempotent(t *testing.T) {
	f := newFakeRegionSet()
	f.column(2, 2)
	s := NewRenderState(f, 1, 1)
	require.NoError(t, s.EnsureLoaded(1, 1, false))
	require.NoError(t, s.EnsureLoaded(1, 1, true))
	assert.Equal(t, 1, f.calls[chunkPos{2, 2}])
	assert.True(t, s.Column(1, 1).Loaded())
}

func TestEnsureLoadedFailures(t *testing.T) {
	f := newFakeRegionSet()
	f.broken[chunkPos{0, 1}] = true
	s := NewRenderState(f, 0, 0)

	err := s.EnsureLoaded(-1, 0, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChunkNotFound))
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.False(t, le.Required)
	assert.Equal(t, -1, le.DX)

	err = s.EnsureLoaded(-1, 0, true)
	require.True(t, errors.As(err, &le))
	assert.True(t, le.Required)
	assert.Equal(t, 1, f.calls[chunkPos{-1, 0}])

	err = s.EnsureLoaded(0, 1, true)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrChunkNotFound))
	assert.False(t, s.Column(0, 1).Loaded())

	assert.ErrorIs(t, s.EnsureLoaded(2, 0, false), ErrOutsideNeighbourhood)
}

func TestVisitClampsData(t *testing.T) {
	blocks.Init()
	f := newFakeRegionSet()
	sec := f.section(0, 0, 0)
	sec.Blocks[SectionIndex(0, 0, 0)] = blocks.Stone
	sec.Data[SectionIndex(0, 0, 0)] = 3
	sec.Blocks[SectionIndex(1, 0, 0)] = blocks.Stone
	sec.Data[SectionIndex(1, 0, 0)] = 12
	sec.Blocks[SectionIndex(2, 0, 0)] = blocks.Grass
	sec.Data[SectionIndex(2, 0, 0)] = 7

	s := NewRenderState(f, 0, 0)
	s.Visit(0, 0, 0)
	assert.Equal(t, blocks.Stone, s.Block)
	assert.Equal(t, uint8(3), s.BlockData)
	s.Visit(1, 0, 0)
	assert.Equal(t, uint8(0), s.BlockData)
	s.Visit(2, 0, 0)
	assert.Equal(t, blocks.Grass, s.Block)
	assert.Equal(t, uint8(0), s.BlockData)
}
