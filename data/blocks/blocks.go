// Package blocks classifies legacy numeric block ids.
//
// The table is process-wide and built once by Init. Everything else in the
// renderer only reads it, so lookups are safe from any goroutine after Init
// returned.
package blocks

import (
	"fmt"
	"sync"
)

type Property uint8

const (
	Known Property = iota
	Transparent
	Solid
	Fluid
	NoSpawn
	NoData
)

func (p Property) String() string {
	switch p {
	case Known:
		return "known"
	case Transparent:
		return "transparent"
	case Solid:
		return "solid"
	case Fluid:
		return "fluid"
	case NoSpawn:
		return "nospawn"
	case NoData:
		return "nodata"
	}
	return fmt.Sprintf("property(%d)", uint8(p))
}

const (
	// MaxBlockID is the first id outside the table (12 bit ids with the Add nibble)
	MaxBlockID = 4096
	// MaxData is the largest metadata range any block can have (4 bit nibble)
	MaxData = 16
)

var (
	properties [MaxBlockID]uint8
	dataRanges [MaxBlockID]uint8
	names      [MaxBlockID]string
	initOnce   sync.Once
)

// Init fills the property table. Must be called before any render starts,
// calling it again does nothing.
func Init() {
	initOnce.Do(func() {
		for _, d := range definitions {
			properties[d.id] = d.flags | 1<<Known
			names[d.id] = d.name
			switch {
			case d.flags&(1<<NoData) != 0:
				dataRanges[d.id] = 1
			case d.dataRange > MaxData:
				dataRanges[d.id] = MaxData
			default:
				dataRanges[d.id] = d.dataRange
			}
		}
	})
}

// HasProperty reports whether block b has property p. Unknown blocks (and
// everything past MaxBlockID) behave like air placeholders: transparent and
// nothing else.
func HasProperty(b uint16, p Property) bool {
	if int(b) >= MaxBlockID || properties[b]&(1<<Known) == 0 {
		return p == Transparent
	}
	return properties[b]&(1<<p) != 0
}

func IsTransparent(b uint16) bool {
	return HasProperty(b, Transparent)
}

// DataRange returns how many metadata values block b understands, 0 when the
// block is unknown or its range is not restricted.
func DataRange(b uint16) uint8 {
	if int(b) >= MaxBlockID {
		return 0
	}
	return dataRanges[b]
}

func Name(b uint16) string {
	if int(b) < MaxBlockID && names[b] != "" {
		return names[b]
	}
	return fmt.Sprintf("unknown_%d", b)
}
