package renderers

import (
	"image/draw"

	"github.com/maxsupermanhd/isochunk/data/blocks"
	"github.com/maxsupermanhd/isochunk/render"
)

type testWorld map[[2]int]*render.ColumnData

func (w testWorld) GetChunk(cx, cz int) (*render.ColumnData, error) {
	c, ok := w[[2]int{cx, cz}]
	if !ok {
		return nil, render.ErrChunkNotFound
	}
	return c, nil
}

func (w testWorld) NorthDirection() render.NorthDirection {
	return render.UpperLeft
}

// set places block b at world-ish position inside column cx, cz
func (w testWorld) set(cx, cz, sy, x, y, z int, b uint16) *render.ChunkSection {
	c, ok := w[[2]int{cx, cz}]
	if !ok {
		c = &render.ColumnData{Biomes: make([]uint8, render.BiomesSize)}
		w[[2]int{cx, cz}] = c
	}
	if c.Sections[sy] == nil {
		c.Sections[sy] = render.NewChunkSection()
	}
	c.Sections[sy].Blocks[render.SectionIndex(x, y, z)] = b
	return c.Sections[sy]
}

// visit prepares a state positioned on block x, y, z of section sy
func (w testWorld) visit(sy, x, y, z int) *render.RenderState {
	blocks.Init()
	s := render.NewRenderState(w, 0, 0)
	s.ChunkY = sy
	s.Visit(x, y, z)
	return s
}

type drawCall struct {
	px, py int
	b      BlockContext
}

type recordingDrawer struct {
	calls []drawCall
}

func (r *recordingDrawer) DrawBlock(img draw.Image, px, py int, b BlockContext) {
	r.calls = append(r.calls, drawCall{px, py, b})
}
