// Package layout binds abstract room layouts to hand-authored room
// templates. Templates are indexed by which cardinal doors they expose;
// the matcher answers "give me a template compatible with these doors".
package layout

import (
	"github.com/samdwyer/delvegen/internal/dungeon"
)

// DoorMask is the canonical encoding of a subset of {N,S,E,W} doors.
type DoorMask uint8

const (
	DoorNorth DoorMask = 1 << iota
	DoorSouth
	DoorEast
	DoorWest

	// DoorMaskNone is a room with no doors at all.
	DoorMaskNone DoorMask = 0
	// DoorMaskAll is the four-door configuration of the canonical
	// fallback template.
	DoorMaskAll = DoorNorth | DoorSouth | DoorEast | DoorWest
)

// MaskFor builds a DoorMask from individual door requirements.
func MaskFor(north, south, east, west bool) DoorMask {
	var m DoorMask
	if north {
		m |= DoorNorth
	}
	if south {
		m |= DoorSouth
	}
	if east {
		m |= DoorEast
	}
	if west {
		m |= DoorWest
	}
	return m
}

// MaskForRoom returns the door configuration of a generated room.
func MaskForRoom(room *dungeon.Room) DoorMask {
	return MaskFor(room.Doors())
}

// Contains reports whether every door in req is present in m.
func (m DoorMask) Contains(req DoorMask) bool {
	return m&req == req
}

// String renders the mask as a subset of "NSEW", or "-" for no doors.
func (m DoorMask) String() string {
	if m == DoorMaskNone {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if m&DoorNorth != 0 {
		buf = append(buf, 'N')
	}
	if m&DoorSouth != 0 {
		buf = append(buf, 'S')
	}
	if m&DoorEast != 0 {
		buf = append(buf, 'E')
	}
	if m&DoorWest != 0 {
		buf = append(buf, 'W')
	}
	return string(buf)
}

// Door is a named door anchor on one side of a template, with the tile
// position of the opening along that side.
type Door struct {
	Name string
	X, Y int
}

// Template is one hand-authored room layout. Everything except the door
// anchors is opaque to this package and passed through to the renderer
// untouched.
type Template struct {
	ID            string
	Width, Height int
	Fallback      bool // the canonical all-doors template

	// Door anchors per cardinal side; nil means no door on that side.
	DoorN, DoorS, DoorE, DoorW *Door

	// Tiles is the raw tile payload, row-major, untouched by this core.
	Tiles []string
}

// Mask returns the template's door configuration.
func (t *Template) Mask() DoorMask {
	return MaskFor(t.DoorN != nil, t.DoorS != nil, t.DoorE != nil, t.DoorW != nil)
}
