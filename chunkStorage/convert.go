package chunkStorage

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/maxsupermanhd/isochunk/render"
)

const (
	CompressionGzip = 1
	CompressionZlib = 2
	CompressionNone = 3
)

var (
	ErrEmptyChunk          = errors.New("empty chunk data")
	ErrUnknownCompression  = errors.New("unknown chunk compression")
	ErrMalformedTileEntity = errors.New("tile entity without position")
)

type legacyChunk struct {
	Level struct {
		XPos         int32                    `nbt:"xPos"`
		ZPos         int32                    `nbt:"zPos"`
		Sections     []legacySection          `nbt:"Sections"`
		Biomes       nbt.RawMessage           `nbt:"Biomes"`
		TileEntities []map[string]interface{} `nbt:"TileEntities"`
	} `nbt:"Level"`
}

type legacySection struct {
	Y          int8   `nbt:"Y"`
	Blocks     []byte `nbt:"Blocks"`
	Add        []byte `nbt:"Add"`
	Data       []byte `nbt:"Data"`
	BlockLight []byte `nbt:"BlockLight"`
	SkyLight   []byte `nbt:"SkyLight"`
}

// Decompress strips the compression type byte and inflates the rest
func Decompress(raw []byte) ([]byte, error) {
	if len(raw) < 2 {
		return nil, ErrEmptyChunk
	}
	var r io.Reader
	var err error
	switch raw[0] {
	case CompressionGzip:
		r, err = gzip.NewReader(bytes.NewReader(raw[1:]))
	case CompressionZlib:
		r, err = zlib.NewReader(bytes.NewReader(raw[1:]))
	case CompressionNone:
		return raw[1:], nil
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownCompression, raw[0])
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// nibble reads the 4 bit value i, even indices use the low half
func nibble(arr []byte, i int) uint8 {
	if i>>1 >= len(arr) {
		return 0
	}
	return (arr[i>>1] >> ((i & 1) * 4)) & 0x0f
}

func expandNibbles(arr []byte) []uint8 {
	if len(arr) != render.SectionSize/2 {
		return nil
	}
	ret := make([]uint8, render.SectionSize)
	for i := range ret {
		ret[i] = nibble(arr, i)
	}
	return ret
}

func convertSection(s legacySection) *render.ChunkSection {
	ret := &render.ChunkSection{
		Blocks:     make([]uint16, len(s.Blocks)),
		Data:       expandNibbles(s.Data),
		BlockLight: expandNibbles(s.BlockLight),
		SkyLight:   expandNibbles(s.SkyLight),
	}
	for i, b := range s.Blocks {
		ret.Blocks[i] = uint16(b) | uint16(nibble(s.Add, i))<<8
	}
	return ret
}

func convertBiomes(m nbt.RawMessage) ([]uint8, error) {
	switch m.Type {
	case nbt.TagByteArray:
		var b []byte
		err := m.Unmarshal(&b)
		return b, err
	case nbt.TagIntArray:
		var ib []int32
		err := m.Unmarshal(&ib)
		if err != nil {
			return nil, err
		}
		b := make([]uint8, len(ib))
		for i := range ib {
			b[i] = uint8(ib[i])
		}
		return b, nil
	}
	return nil, nil
}

// ConvertTileEntity keeps the position and id of a tile entity record and
// hands everything else over as payload.
func ConvertTileEntity(m map[string]interface{}) (render.TileEntity, error) {
	te := render.TileEntity{Payload: map[string]any{}}
	var okx, oky, okz bool
	te.X, okx = render.PayloadInt(m, "x")
	te.Y, oky = render.PayloadInt(m, "y")
	te.Z, okz = render.PayloadInt(m, "z")
	if !okx || !oky || !okz {
		return te, ErrMalformedTileEntity
	}
	te.ID, _ = m["id"].(string)
	for k, v := range m {
		switch k {
		case "x", "y", "z", "id":
		default:
			te.Payload[k] = v
		}
	}
	return te, nil
}

// DecodeColumn parses a stored legacy (numeric id) chunk. Sections outside
// of the world height and tile entities without a position are dropped.
func DecodeColumn(raw []byte) (*render.ColumnData, error) {
	d, err := Decompress(raw)
	if err != nil {
		return nil, err
	}
	var c legacyChunk
	err = nbt.Unmarshal(d, &c)
	if err != nil {
		return nil, fmt.Errorf("decoding chunk nbt: %w", err)
	}
	ret := &render.ColumnData{}
	for _, s := range c.Level.Sections {
		if s.Y < 0 || int(s.Y) >= render.SectionsPerChunk {
			continue
		}
		ret.Sections[s.Y] = convertSection(s)
	}
	ret.Biomes, err = convertBiomes(c.Level.Biomes)
	if err != nil {
		return nil, fmt.Errorf("decoding biomes: %w", err)
	}
	for _, m := range c.Level.TileEntities {
		te, err := ConvertTileEntity(m)
		if err != nil {
			continue
		}
		ret.TileEntities = append(ret.TileEntities, te)
	}
	return ret, nil
}
