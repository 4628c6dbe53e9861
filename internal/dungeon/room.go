// Package dungeon generates the room graph for a single dungeon floor:
// a constrained random walk lays out connected rooms on an integer grid,
// a weighted pass assigns gameplay types, and a populator fills each room
// with type-specific content.
package dungeon

// RoomID is a dense index into a Floor's room arena.
type RoomID = int

// NoRoom marks an absent connection or an unset room reference.
const NoRoom RoomID = -1

// Direction represents a cardinal direction on the floor grid.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return North
}

// Delta returns the grid offset for one step in this direction.
// North decreases y, matching screen coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// AllDirections returns all four cardinal directions in a fixed order.
func AllDirections() [4]Direction {
	return [4]Direction{North, South, East, West}
}

// RoomType represents the gameplay role of a room.
type RoomType int

const (
	RoomStart RoomType = iota
	RoomEmpty
	RoomEnemy
	RoomTreasure
	RoomTrap
	RoomRest
	RoomMerchant
	RoomSecret
	RoomPuzzle
	RoomBoss
	RoomExit
)

// String returns the room type identifier used in config weight tables.
func (t RoomType) String() string {
	switch t {
	case RoomStart:
		return "start"
	case RoomEmpty:
		return "empty"
	case RoomEnemy:
		return "enemy"
	case RoomTreasure:
		return "treasure"
	case RoomTrap:
		return "trap"
	case RoomRest:
		return "rest"
	case RoomMerchant:
		return "merchant"
	case RoomSecret:
		return "secret"
	case RoomPuzzle:
		return "puzzle"
	case RoomBoss:
		return "boss"
	case RoomExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Glyph returns the single character used to draw this room type on the map.
func (t RoomType) Glyph() rune {
	switch t {
	case RoomStart:
		return '@'
	case RoomEmpty:
		return '.'
	case RoomEnemy:
		return 'e'
	case RoomTreasure:
		return '$'
	case RoomTrap:
		return '^'
	case RoomRest:
		return '+'
	case RoomMerchant:
		return 'M'
	case RoomSecret:
		return '?'
	case RoomPuzzle:
		return 'P'
	case RoomBoss:
		return 'B'
	case RoomExit:
		return '>'
	default:
		return ' '
	}
}

// ParseRoomType resolves a config identifier to a RoomType.
// The second return is false for unknown identifiers.
func ParseRoomType(s string) (RoomType, bool) {
	for t := RoomStart; t <= RoomExit; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return RoomEmpty, false
}

// Room is a single node in the floor's room graph.
type Room struct {
	ID   RoomID
	Type RoomType
	X, Y int // grid cell on the unbounded floor lattice

	// Connections holds the neighboring room per direction, NoRoom when
	// there is no door on that side. Links are always bidirectional.
	Connections [4]RoomID

	Contents []Content

	// Play-state flags, owned by the exploration layer.
	Visited    bool
	Cleared    bool
	Discovered bool
}

// Connected reports whether the room has a door in the given direction.
func (r *Room) Connected(d Direction) bool {
	return r.Connections[d] != NoRoom
}

// Doors returns which cardinal sides of the room have a connection,
// indexed North, South, East, West.
func (r *Room) Doors() (n, s, e, w bool) {
	return r.Connected(North), r.Connected(South), r.Connected(East), r.Connected(West)
}

// DoorCount returns the number of connected sides.
func (r *Room) DoorCount() int {
	count := 0
	for _, id := range r.Connections {
		if id != NoRoom {
			count++
		}
	}
	return count
}
