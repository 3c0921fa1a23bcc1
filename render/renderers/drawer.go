package renderers

import (
	"image"
	"image/color"
	"image/draw"
)

type Face int

const (
	FaceTop Face = iota
	FaceLeft
	FaceRight
)

// BlockContext is everything a drawer knows about one visible block
type BlockContext struct {
	Section, X, Y, Z int
	Block            uint16
	Data             uint8
	PData            uint8
	TileData         uint32
	Biome            uint8
	// light of the block above
	SkyLight, BlockLight uint8
	Spawnable            bool
}

// BlockDrawer paints the sprite of one block with its upper left corner at px, py
type BlockDrawer interface {
	DrawBlock(img draw.Image, px, py int, b BlockContext)
}

var (
	faceMasks   [3]*image.Alpha
	spriteMask  *image.Alpha
	spriteRect  = image.Rect(0, 0, SpriteSize, SpriteSize)
	faceShading = [3]float64{1, 0.8, 0.65}
)

func init() {
	for i := range faceMasks {
		faceMasks[i] = image.NewAlpha(spriteRect)
	}
	spriteMask = image.NewAlpha(spriteRect)
	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			f, ok := spriteFace(x, y)
			if !ok {
				continue
			}
			faceMasks[f].SetAlpha(x, y, color.Alpha{0xFF})
			spriteMask.SetAlpha(x, y, color.Alpha{0xFF})
		}
	}
}

// spriteFace tells which face of the isometric cube covers pixel x, y
func spriteFace(x, y int) (Face, bool) {
	half := float64(SpriteSize) / 2
	dx := float64(x) + 0.5 - half
	if dx < 0 {
		dx = -dx
	}
	py := float64(y) + 0.5
	switch {
	case py >= dx/2 && py < half-dx/2:
		return FaceTop, true
	case py >= half-dx/2 && py < float64(SpriteSize)-dx/2:
		if float64(x) < half {
			return FaceLeft, true
		}
		return FaceRight, true
	}
	return FaceTop, false
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	if f >= 1 {
		return c
	}
	if f < 0 {
		f = 0
	}
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// FlatDrawer fills every face of the sprite with a single colour. Color
// returning false skips the block. Light, when set, darkens all faces
// further. Overlay is painted over the whole sprite afterwards.
type FlatDrawer struct {
	Color   func(b BlockContext) (color.NRGBA, bool)
	Light   func(b BlockContext) float64
	Overlay func(b BlockContext) (color.NRGBA, bool)
}

func (d FlatDrawer) DrawBlock(img draw.Image, px, py int, b BlockContext) {
	r := spriteRect.Add(image.Pt(px, py))
	if d.Color != nil {
		if c, ok := d.Color(b); ok {
			l := 1.0
			if d.Light != nil {
				l = d.Light(b)
			}
			for f, m := range faceMasks {
				draw.DrawMask(img, r, image.NewUniform(shade(c, faceShading[f]*l)), image.Point{}, m, image.Point{}, draw.Over)
			}
		}
	}
	if d.Overlay != nil {
		if c, ok := d.Overlay(b); ok {
			draw.DrawMask(img, r, image.NewUniform(c), image.Point{}, spriteMask, image.Point{}, draw.Over)
		}
	}
}
