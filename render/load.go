package render

import (
	"errors"
	"fmt"
)

var ErrOutsideNeighbourhood = errors.New("column is outside of the 3x3 neighbourhood")

// LoadError reports a neighbour that could not be loaded. Required tells
// whether the caller asked for it as mandatory.
type LoadError struct {
	DX, DZ   int
	Required bool
	Err      error
}

func (e *LoadError) Error() string {
	r := "optional"
	if e.Required {
		r = "required"
	}
	return fmt.Sprintf("failed to load %s column at offset %d:%d: %v", r, e.DX, e.DZ, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// EnsureLoaded loads the column at dx, dz relative to the centre. A column
// is fetched at most once per state, later calls return the remembered
// outcome.
func (s *RenderState) EnsureLoaded(dx, dz int, required bool) error {
	c := s.Column(dx, dz)
	if c == nil {
		return ErrOutsideNeighbourhood
	}
	if c.loaded {
		return nil
	}
	if !c.attempted {
		c.attempted = true
		s.loads++
		var d *ColumnData
		var err error
		if s.Regions == nil {
			err = ErrChunkNotFound
		} else {
			d, err = s.Regions.GetChunk(s.ChunkX+dx, s.ChunkZ+dz)
		}
		if err == nil && d == nil {
			err = ErrChunkNotFound
		}
		if err == nil {
			c.ColumnData = *d
			c.loaded = true
			return nil
		}
		c.err = err
	}
	return &LoadError{DX: dx, DZ: dz, Required: required, Err: c.err}
}
