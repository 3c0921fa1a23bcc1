package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name       string
		sy         int
		x, y, z    int
		want       Location
		wantInside bool
	}{
		{"centre", 4, 3, 5, 7, Location{1, 1, 4, 3, 5, 7}, true},
		{"east", 4, 16, 0, 0, Location{2, 1, 4, 0, 0, 0}, true},
		{"west", 4, -1, 0, 0, Location{0, 1, 4, 15, 0, 0}, true},
		{"south", 0, 2, 2, 16, Location{1, 2, 0, 2, 2, 0}, true},
		{"north", 0, 2, 2, -1, Location{1, 0, 0, 2, 2, 15}, true},
		{"corner", 3, -1, 0, 16, Location{0, 2, 3, 15, 0, 0}, true},
		{"above", 3, 0, 16, 0, Location{1, 1, 4, 0, 0, 0}, true},
		{"two above", 3, 0, 33, 0, Location{1, 1, 5, 0, 1, 0}, true},
		{"below", 3, 0, -1, 0, Location{1, 1, 2, 0, 15, 0}, true},
		{"below the world", 0, 0, -1, 0, Location{1, 1, -1, 0, 15, 0}, false},
		{"above the world", 15, 0, 16, 0, Location{1, 1, 16, 0, 0, 0}, false},
		{"too far", 0, 40, 0, 0, Location{2, 1, 0, 24, 0, 0}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Resolve(c.sy, c.x, c.y, c.z)
			assert.Equal(t, c.wantInside, ok)
			if ok {
				assert.Equal(t, c.want, got)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, uint32(15), SkyLight.Default())
	for _, dt := range []DataType{Blocks, Data, BlockLight, Biomes, TileEntities} {
		assert.Equal(t, uint32(0), dt.Default(), dt.String())
	}
}
