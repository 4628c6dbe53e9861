package gamedata

import (
	"fmt"

	"github.com/samdwyer/delvegen/internal/dungeon"
)

// TypeWeightDef is one weight table entry as stored in JSON. Table order
// is meaningful: draws walk the table top to bottom.
type TypeWeightDef struct {
	Type   string `json:"type"`   // room type identifier (e.g., "enemy")
	Weight int    `json:"weight"` // relative frequency, 0 disables the type
}

// DungeonConfigDef defines a dungeon theme loaded from JSON.
type DungeonConfigDef struct {
	Theme         string            `json:"theme"`         // Theme identifier (e.g., "ruined-keep")
	BaseRooms     int               `json:"baseRooms"`     // Room count on floor 1
	RoomsPerFloor int               `json:"roomsPerFloor"` // Extra rooms per floor past the first
	FloorCount    int               `json:"floorCount"`    // Floors in the dungeon; the last one holds the boss
	TypeWeights   []TypeWeightDef   `json:"typeWeights"`   // Ordered weight table for the stochastic type pass
	EnemyPool     []string          `json:"enemyPool"`     // Enemy identifiers drawn for enemy/boss rooms
	TreasurePool  []string          `json:"treasurePool"`  // Loot identifiers drawn for treasure chests
	MerchantStock []string          `json:"merchantStock"` // Fixed inventory handed to merchant NPCs
	TypeColors    map[string]string `json:"typeColors"`    // Hex display color per room type (viewer only)
}

// Validate checks the theme for the preconditions generation relies on.
// A theme that passes cannot make the generator fail or stall.
func (d *DungeonConfigDef) Validate() error {
	if d.BaseRooms < 1 {
		return fmt.Errorf("theme %s: baseRooms must be at least 1, got %d", d.Theme, d.BaseRooms)
	}
	if d.RoomsPerFloor < 0 {
		return fmt.Errorf("theme %s: roomsPerFloor must not be negative, got %d", d.Theme, d.RoomsPerFloor)
	}
	if d.FloorCount < 1 {
		return fmt.Errorf("theme %s: floorCount must be at least 1, got %d", d.Theme, d.FloorCount)
	}
	if len(d.TypeWeights) == 0 {
		return fmt.Errorf("theme %s: typeWeights table is empty", d.Theme)
	}

	total := 0
	seen := make(map[string]bool, len(d.TypeWeights))
	for _, tw := range d.TypeWeights {
		t, ok := dungeon.ParseRoomType(tw.Type)
		if !ok {
			return fmt.Errorf("theme %s: unknown room type %q in weight table", d.Theme, tw.Type)
		}
		if t == dungeon.RoomStart || t == dungeon.RoomExit || t == dungeon.RoomBoss {
			return fmt.Errorf("theme %s: structural type %q must not appear in the weight table", d.Theme, tw.Type)
		}
		if tw.Weight < 0 {
			return fmt.Errorf("theme %s: negative weight %d for type %q", d.Theme, tw.Weight, tw.Type)
		}
		if seen[tw.Type] {
			return fmt.Errorf("theme %s: duplicate weight entry for type %q", d.Theme, tw.Type)
		}
		seen[tw.Type] = true
		total += tw.Weight
	}
	if total == 0 {
		return fmt.Errorf("theme %s: weight table sums to zero, no type can be drawn", d.Theme)
	}

	if len(d.EnemyPool) == 0 {
		return fmt.Errorf("theme %s: enemyPool is empty", d.Theme)
	}
	if len(d.TreasurePool) == 0 {
		return fmt.Errorf("theme %s: treasurePool is empty", d.Theme)
	}
	return nil
}

// ToConfig converts a validated theme into the generator's config form.
func (d *DungeonConfigDef) ToConfig() dungeon.Config {
	weights := make([]dungeon.TypeWeight, 0, len(d.TypeWeights))
	for _, tw := range d.TypeWeights {
		t, _ := dungeon.ParseRoomType(tw.Type)
		weights = append(weights, dungeon.TypeWeight{Type: t, Weight: tw.Weight})
	}
	return dungeon.Config{
		BaseRooms:     d.BaseRooms,
		RoomsPerFloor: d.RoomsPerFloor,
		FloorCount:    d.FloorCount,
		TypeWeights:   weights,
		EnemyPool:     append([]string(nil), d.EnemyPool...),
		TreasurePool:  append([]string(nil), d.TreasurePool...),
		MerchantStock: append([]string(nil), d.MerchantStock...),
	}
}

// LoadDungeonConfig loads and validates the embedded default theme.
func LoadDungeonConfig() (*DungeonConfigDef, error) {
	def, err := Load[DungeonConfigDef]("dungeon.json")
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// MustLoadDungeonConfig loads the default theme, panicking on error.
func MustLoadDungeonConfig() *DungeonConfigDef {
	def, err := LoadDungeonConfig()
	if err != nil {
		panic(err)
	}
	return def
}
