package chunkStorage

import (
	"fmt"

	"github.com/maxsupermanhd/isochunk/render"
)

// RegionSet serves chunk columns of one dimension of a storage, rotated so
// that the requested direction faces the top of the map.
type RegionSet struct {
	driver     ChunkStorage
	world, dim string
	north      render.NorthDirection
}

func NewRegionSet(driver ChunkStorage, world, dim string, north render.NorthDirection) *RegionSet {
	if !north.Valid() {
		north = render.UpperLeft
	}
	return &RegionSet{
		driver: driver,
		world:  world,
		dim:    dim,
		north:  north,
	}
}

func (r *RegionSet) NorthDirection() render.NorthDirection {
	return r.north
}

// WorldChunk returns the stored chunk that rotated chunk cx, cz shows
func WorldChunk(n render.NorthDirection, cx, cz int) (int, int) {
	wx, _, wz := render.WorldPosition(n, cx, 0, cz, 0, 0, 0)
	return wx >> 4, wz >> 4
}

func (r *RegionSet) GetChunk(cx, cz int) (*render.ColumnData, error) {
	wcx, wcz := WorldChunk(r.north, cx, cz)
	raw, err := r.driver.GetChunkRaw(r.world, r.dim, wcx, wcz)
	if err != nil {
		return nil, fmt.Errorf("reading chunk %d:%d of %s:%s: %w", wcx, wcz, r.world, r.dim, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("chunk %d:%d of %s:%s: %w", wcx, wcz, r.world, r.dim, render.ErrChunkNotFound)
	}
	col, err := DecodeColumn(raw)
	if err != nil {
		return nil, fmt.Errorf("chunk %d:%d of %s:%s: %w", wcx, wcz, r.world, r.dim, err)
	}
	return RotateColumn(r.north, cx, cz, col), nil
}

// RotateColumn rearranges the arrays of a stored column so that local
// positions of rotated chunk cx, cz line up with it. Tile entities keep
// their world coordinates.
func RotateColumn(n render.NorthDirection, cx, cz int, col *render.ColumnData) *render.ColumnData {
	if n == render.UpperLeft || !n.Valid() {
		return col
	}
	// rotated local x, z to stored local index z*16 + x
	var src [16][16]int
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			wx, _, wz := render.WorldPosition(n, cx, 0, cz, x, 0, z)
			src[x][z] = (wz&15)*16 + (wx & 15)
		}
	}
	ret := &render.ColumnData{TileEntities: col.TileEntities}
	if len(col.Biomes) == render.BiomesSize {
		ret.Biomes = make([]uint8, render.BiomesSize)
		for x := 0; x < 16; x++ {
			for z := 0; z < 16; z++ {
				ret.Biomes[z*16+x] = col.Biomes[src[x][z]]
			}
		}
	}
	for sy, s := range col.Sections {
		if s == nil {
			continue
		}
		ret.Sections[sy] = &render.ChunkSection{
			Blocks:     rotateArray(s.Blocks, &src),
			Data:       rotateArray(s.Data, &src),
			SkyLight:   rotateArray(s.SkyLight, &src),
			BlockLight: rotateArray(s.BlockLight, &src),
		}
	}
	return ret
}

// rotateArray drops arrays of the wrong size so that the accessor falls
// back to the channel default instead of reading unrotated data
func rotateArray[T uint8 | uint16](arr []T, src *[16][16]int) []T {
	if len(arr) != render.SectionSize {
		return nil
	}
	ret := make([]T, render.SectionSize)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			for z := 0; z < 16; z++ {
				ret[render.SectionIndex(x, y, z)] = arr[y*256+src[x][z]]
			}
		}
	}
	return ret
}
