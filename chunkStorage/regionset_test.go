package chunkStorage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxsupermanhd/isochunk/render"
)

type memoryStorage struct {
	chunks map[[2]int][]byte
	err    error
	asked  [][2]int
}

func (m *memoryStorage) GetStatus() (string, error)      { return "memory", nil }
func (m *memoryStorage) GetChunksCount() (uint64, error) { return uint64(len(m.chunks)), nil }
func (m *memoryStorage) GetChunksSize() (uint64, error)  { return 0, nil }
func (m *memoryStorage) ListWorldNames() ([]string, error) {
	return []string{"world"}, nil
}
func (m *memoryStorage) ListWorldDimensions(wname string) ([]string, error) {
	return []string{"overworld"}, nil
}
func (m *memoryStorage) Close() error { return nil }

func (m *memoryStorage) GetChunkRaw(wname, dname string, cx, cz int) ([]byte, error) {
	m.asked = append(m.asked, [2]int{cx, cz})
	if m.err != nil {
		return nil, m.err
	}
	return m.chunks[[2]int{cx, cz}], nil
}

func TestWorldChunk(t *testing.T) {
	cases := []struct {
		n            render.NorthDirection
		wantX, wantZ int
	}{
		{render.UpperLeft, 3, -2},
		{render.UpperRight, -2, -3},
		{render.LowerLeft, -3, 2},
		{render.LowerRight, 2, 3},
	}
	for _, c := range cases {
		x, z := WorldChunk(c.n, 3, -2)
		assert.Equal(t, [2]int{c.wantX, c.wantZ}, [2]int{x, z}, "rotation %d", c.n)
	}
}

func TestRegionSetRotation(t *testing.T) {
	var c testChunk
	s := emptyTestSection(1)
	s.Blocks[render.SectionIndex(1, 7, 2)] = 1
	s.Data[render.SectionIndex(1, 7, 2)>>1] = 0x5 << ((render.SectionIndex(1, 7, 2) & 1) * 4)
	c.Level.Sections = []testSection{s}
	c.Level.Biomes = make([]byte, render.BiomesSize)
	c.Level.Biomes[2*16+1] = 4
	raw := encodeChunk(t, c, CompressionZlib)

	want := map[render.NorthDirection][2]int{
		render.UpperLeft:  {1, 2},
		render.UpperRight: {13, 1},
		render.LowerLeft:  {14, 13},
		render.LowerRight: {2, 14},
	}
	for n, pos := range want {
		st := &memoryStorage{chunks: map[[2]int][]byte{{0, 0}: raw}}
		rs := NewRegionSet(st, "world", "overworld", n)
		col, err := rs.GetChunk(0, 0)
		require.NoError(t, err, "rotation %d", n)
		i := render.SectionIndex(pos[0], 7, pos[1])
		assert.Equal(t, uint16(1), col.Sections[1].Blocks[i], "rotation %d", n)
		assert.Equal(t, uint8(5), col.Sections[1].Data[i], "rotation %d", n)
		assert.Equal(t, uint8(4), col.Biomes[pos[1]*16+pos[0]], "rotation %d", n)

		total := 0
		for _, b := range col.Sections[1].Blocks {
			total += int(b)
		}
		assert.Equal(t, 1, total, "rotation %d", n)
	}
}

func TestRotateColumnDropsShortArrays(t *testing.T) {
	col := &render.ColumnData{}
	s := render.NewChunkSection()
	s.Blocks[render.SectionIndex(1, 0, 2)] = 1
	s.SkyLight = s.SkyLight[:100]
	col.Sections[0] = s

	rotated := RotateColumn(render.UpperRight, 0, 0, col)
	rs := rotated.Sections[0]
	require.NotNil(t, rs)
	assert.Nil(t, rs.SkyLight)
	assert.Len(t, rs.BlockLight, render.SectionSize)
	assert.Equal(t, uint16(1), rs.Blocks[render.SectionIndex(13, 0, 1)])

	assert.Same(t, col, RotateColumn(render.UpperLeft, 0, 0, col))
}

func TestRegionSetTileEntitiesStayInWorldSpace(t *testing.T) {
	var c testChunk
	s := emptyTestSection(0)
	s.Blocks[render.SectionIndex(1, 3, 2)] = 144
	c.Level.Sections = []testSection{s}
	c.Level.TileEntities = []map[string]interface{}{
		{"id": "Skull", "x": int32(-16 + 1), "y": int32(3), "z": int32(2), "SkullType": int8(4), "Rot": int8(2)},
	}
	st := &memoryStorage{chunks: map[[2]int][]byte{{-1, 0}: encodeChunk(t, c, CompressionGzip)}}

	for n := render.UpperLeft; n <= render.LowerRight; n++ {
		rs := NewRegionSet(st, "world", "overworld", n)
		// find the rotated chunk that shows stored chunk -1, 0
		var cx, cz int
		found := false
		for x := -1; x <= 1 && !found; x++ {
			for z := -1; z <= 1 && !found; z++ {
				if wx, wz := WorldChunk(n, x, z); wx == -1 && wz == 0 {
					cx, cz, found = x, z, true
				}
			}
		}
		require.True(t, found)
		state := render.NewRenderState(rs, cx, cz)
		require.NoError(t, state.EnsureLoaded(0, 0, true))
		col := state.Column(0, 0)
		hits := 0
		for x := 0; x < 16; x++ {
			for z := 0; z < 16; z++ {
				if col.Sections[0].Blocks[render.SectionIndex(x, 3, z)] != 144 {
					continue
				}
				hits++
				state.Visit(x, 3, z)
				assert.Equal(t, uint32(4<<4|2), state.GetData(render.TileEntities, x, 3, z), "rotation %d", n)
			}
		}
		assert.Equal(t, 1, hits, "rotation %d", n)
	}
}

func TestRegionSetErrors(t *testing.T) {
	st := &memoryStorage{chunks: map[[2]int][]byte{}}
	rs := NewRegionSet(st, "world", "overworld", render.NorthDirection(9))
	assert.Equal(t, render.UpperLeft, rs.NorthDirection())

	_, err := rs.GetChunk(4, 4)
	assert.ErrorIs(t, err, render.ErrChunkNotFound)

	st.chunks[[2]int{4, 4}] = []byte{CompressionNone, 0xFF}
	_, err = rs.GetChunk(4, 4)
	require.Error(t, err)
	assert.False(t, errors.Is(err, render.ErrChunkNotFound))

	boom := errors.New("disk on fire")
	st.err = boom
	_, err = rs.GetChunk(0, 0)
	assert.ErrorIs(t, err, boom)
}

func TestRegionSetAsksRotatedChunk(t *testing.T) {
	st := &memoryStorage{}
	rs := NewRegionSet(st, "world", "overworld", render.UpperRight)
	_, _ = rs.GetChunk(1, 0)
	assert.Equal(t, [][2]int{{0, -1}}, st.asked)
}
