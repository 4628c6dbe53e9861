package dungeon

// Floor holds the complete room graph for one dungeon floor.
// Rooms are stored in an arena slice; a RoomID is an index into it.
type Floor struct {
	Number int
	Rooms  []*Room

	StartID RoomID
	ExitID  RoomID // NoRoom on the final floor
	BossID  RoomID // NoRoom except on the final floor

	// Bounding box of the occupied grid cells.
	MinX, MinY    int
	Width, Height int

	nextContentID int
}

// Room returns the room with the given id, or nil if the id is out of range.
func (f *Floor) Room(id RoomID) *Room {
	if id < 0 || id >= len(f.Rooms) {
		return nil
	}
	return f.Rooms[id]
}

// Start returns the floor's start room.
func (f *Floor) Start() *Room {
	return f.Room(f.StartID)
}

// Terminal returns the floor's exit or boss room, whichever is set.
func (f *Floor) Terminal() *Room {
	if f.BossID != NoRoom {
		return f.Room(f.BossID)
	}
	return f.Room(f.ExitID)
}

// RoomCount returns the number of rooms on the floor.
func (f *Floor) RoomCount() int {
	return len(f.Rooms)
}

// newContentID hands out floor-unique content ids.
func (f *Floor) newContentID() int {
	id := f.nextContentID
	f.nextContentID++
	return id
}

// computeBounds recalculates the floor's bounding grid box.
func (f *Floor) computeBounds() {
	if len(f.Rooms) == 0 {
		f.MinX, f.MinY, f.Width, f.Height = 0, 0, 0, 0
		return
	}
	minX, minY := f.Rooms[0].X, f.Rooms[0].Y
	maxX, maxY := minX, minY
	for _, r := range f.Rooms {
		if r.X < minX {
			minX = r.X
		}
		if r.X > maxX {
			maxX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.Y > maxY {
			maxY = r.Y
		}
	}
	f.MinX, f.MinY = minX, minY
	f.Width = maxX - minX + 1
	f.Height = maxY - minY + 1
}

// Reachable returns the set of room ids reachable from the start room
// by following connections.
func (f *Floor) Reachable() map[RoomID]bool {
	seen := make(map[RoomID]bool, len(f.Rooms))
	if f.Start() == nil {
		return seen
	}
	queue := []RoomID{f.StartID}
	seen[f.StartID] = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range f.Room(id).Connections {
			if next != NoRoom && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}
