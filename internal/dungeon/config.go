package dungeon

// TypeWeight is one entry of the room-type weight table. Drawing walks
// the table in slice order, so the order is part of the theme contract.
type TypeWeight struct {
	Type   RoomType
	Weight int
}

// Config is the frozen per-theme generation configuration. It is validated
// by the loader before reaching the generator; the generator assumes
// BaseRooms >= 1, non-empty pools and a weight table that is not all zero.
type Config struct {
	BaseRooms     int // room count on floor 1
	RoomsPerFloor int // additional rooms per floor past the first
	FloorCount    int // the final floor gets a boss instead of an exit

	TypeWeights []TypeWeight

	EnemyPool     []string
	TreasurePool  []string
	MerchantStock []string
}

// TargetRooms returns the room count for the given floor number.
func (c Config) TargetRooms(floorNumber int) int {
	n := c.BaseRooms + (floorNumber-1)*c.RoomsPerFloor
	if n < 1 {
		n = 1
	}
	return n
}

// IsFinalFloor reports whether the given floor is the dungeon's last.
func (c Config) IsFinalFloor(floorNumber int) bool {
	return floorNumber >= c.FloorCount
}

// TotalWeight returns the sum of all type weights.
func (c Config) TotalWeight() int {
	total := 0
	for _, tw := range c.TypeWeights {
		total += tw.Weight
	}
	return total
}
