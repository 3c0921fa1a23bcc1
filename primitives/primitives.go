package primitives

import "fmt"

// TileLocation addresses one rendered tile: a single chunk column of a
// dimension drawn by one variant under one north direction.
type TileLocation struct {
	World, Dimension, Variant string
	// 0..3, see render.NorthDirection
	North int
	X, Z  int
}

func (i TileLocation) String() string {
	return fmt.Sprintf("{%s:%s:%s at %dx %dz north %d}", i.World, i.Dimension, i.Variant, i.X, i.Z, i.North)
}
