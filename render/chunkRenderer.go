package render

import (
	"errors"
	"image"
)

var (
	// ErrChunkNotFound is what a RegionSet returns for chunks that were never generated
	ErrChunkNotFound = errors.New("chunk not found")
)

// NorthDirection is the rotation the map is presented under
type NorthDirection int

const (
	UpperLeft NorthDirection = iota
	UpperRight
	LowerLeft
	LowerRight
)

func (n NorthDirection) Valid() bool {
	return n >= UpperLeft && n <= LowerRight
}

// RegionSet supplies chunk columns of one dimension. Returned data is
// borrowed: the renderer never modifies it.
type RegionSet interface {
	// GetChunk returns an error wrapping ErrChunkNotFound when
	// there is no such chunk, any other error means it failed to decode.
	GetChunk(cx, cz int) (*ColumnData, error)
	NorthDirection() NorthDirection
}

// DataNeeds tells the driver which neighbours to load up front. When
// RequireNeighbors is set a missing neighbour aborts the tile instead of
// rendering it with gaps.
type DataNeeds struct {
	NeighborsBordering bool
	NeighborsCorners   bool
	RequireNeighbors   bool
}

type ChunkRenderer struct {
	Name   string
	Render func(*RenderState) (*image.RGBA, error)
	DataNeeds
}
