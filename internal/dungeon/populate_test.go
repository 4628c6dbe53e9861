package dungeon

import (
	"context"
	"testing"
)

// populateInto builds a floor shell and populates one room of the given
// type on it.
func populateInto(t *testing.T, gen *Generator, roomType RoomType, floorNumber int) (*Floor, *Room) {
	t.Helper()
	floor := &Floor{Number: floorNumber, StartID: NoRoom, ExitID: NoRoom, BossID: NoRoom}
	room := &Room{ID: 0, Type: roomType, Connections: [4]RoomID{NoRoom, NoRoom, NoRoom, NoRoom}}
	floor.Rooms = append(floor.Rooms, room)
	gen.populateRoom(floor, room)
	return floor, room
}

func TestPopulateEnemyRoom(t *testing.T) {
	gen := newTestGenerator(14)
	pool := map[string]bool{"goblin": true, "orc": true, "skeleton": true}

	for floorNumber := 1; floorNumber <= 5; floorNumber++ {
		maxCount := min(3, floorNumber)
		for i := 0; i < 50; i++ {
			_, room := populateInto(t, gen, RoomEnemy, floorNumber)
			if len(room.Contents) < 1 || len(room.Contents) > maxCount {
				t.Fatalf("floor %d: %d enemies, want 1..%d", floorNumber, len(room.Contents), maxCount)
			}
			for _, c := range room.Contents {
				if c.Kind != ContentEnemy || c.Enemy == nil {
					t.Fatal("enemy room content is not an enemy entry")
				}
				if !pool[c.Enemy.EnemyID] {
					t.Errorf("enemy id %q not from the pool", c.Enemy.EnemyID)
				}
				if c.Enemy.Level != floorNumber {
					t.Errorf("enemy level %d, want %d", c.Enemy.Level, floorNumber)
				}
				if c.X < 0.25 || c.X > 0.75 || c.Y < 0.25 || c.Y > 0.75 {
					t.Errorf("enemy at (%.2f,%.2f), want interior", c.X, c.Y)
				}
			}
		}
	}
}

func TestPopulateTreasureRoom(t *testing.T) {
	gen := newTestGenerator(15)
	pool := map[string]bool{"health_potion": true, "iron_sword": true, "gold_cache": true}

	for i := 0; i < 100; i++ {
		floorNumber := 1 + i%5
		_, room := populateInto(t, gen, RoomTreasure, floorNumber)
		if len(room.Contents) != 1 {
			t.Fatalf("treasure room has %d contents, want 1", len(room.Contents))
		}
		c := room.Contents[0]
		if c.Kind != ContentChest || c.Chest == nil {
			t.Fatal("treasure room content is not a chest")
		}
		if c.X != 0.5 || c.Y != 0.5 {
			t.Errorf("chest at (%.2f,%.2f), want centered", c.X, c.Y)
		}
		if !pool[c.Chest.LootID] {
			t.Errorf("loot id %q not from the pool", c.Chest.LootID)
		}
		minGold := 10 * floorNumber
		maxGold := minGold + 20*floorNumber
		if c.Chest.Gold < minGold || c.Chest.Gold > maxGold {
			t.Errorf("floor %d: gold %d outside [%d,%d]", floorNumber, c.Chest.Gold, minGold, maxGold)
		}
	}
}

func TestPopulateFixedRooms(t *testing.T) {
	gen := newTestGenerator(16)

	_, trap := populateInto(t, gen, RoomTrap, 3)
	if len(trap.Contents) != 1 || trap.Contents[0].Kind != ContentTrap {
		t.Fatal("trap room should hold exactly one trap")
	}
	if got := trap.Contents[0].Trap.Damage; got != 11 { // 5 + 2*3
		t.Errorf("trap damage %d, want 11", got)
	}

	_, rest := populateInto(t, gen, RoomRest, 2)
	if len(rest.Contents) != 1 || rest.Contents[0].Kind != ContentInteractable {
		t.Fatal("rest room should hold exactly one interactable")
	}
	heal := rest.Contents[0].Interact
	if heal.Effect != "heal" || heal.Value != 30 {
		t.Errorf("rest interactable is %s/%d, want heal/30", heal.Effect, heal.Value)
	}

	_, merchant := populateInto(t, gen, RoomMerchant, 1)
	if len(merchant.Contents) != 1 || merchant.Contents[0].Kind != ContentNPC {
		t.Fatal("merchant room should hold exactly one npc")
	}
	npc := merchant.Contents[0].NPC
	if npc.Name != "Merchant" || len(npc.Inventory) != len(gen.cfg.MerchantStock) {
		t.Errorf("merchant npc %q with %d wares", npc.Name, len(npc.Inventory))
	}

	_, exit := populateInto(t, gen, RoomExit, 1)
	if len(exit.Contents) != 1 || exit.Contents[0].Kind != ContentExit {
		t.Fatal("exit room should hold exactly one exit marker")
	}
	marker := exit.Contents[0]
	if marker.Enemy != nil || marker.Chest != nil || marker.Trap != nil ||
		marker.NPC != nil || marker.Interact != nil {
		t.Error("exit marker should carry no payload")
	}
}

func TestPopulateLeavesQuietRoomsEmpty(t *testing.T) {
	gen := newTestGenerator(17)
	for _, roomType := range []RoomType{RoomStart, RoomEmpty, RoomSecret, RoomPuzzle} {
		_, room := populateInto(t, gen, roomType, 2)
		if len(room.Contents) != 0 {
			t.Errorf("%s room got %d contents, want none", roomType, len(room.Contents))
		}
	}

	// Anything unrecognized is treated like an empty room.
	_, room := populateInto(t, gen, RoomType(99), 2)
	if len(room.Contents) != 0 {
		t.Errorf("unknown room type got %d contents, want none", len(room.Contents))
	}
}

func TestContentIDsUniqueWithinFloor(t *testing.T) {
	floor := newTestGenerator(18).Generate(context.Background(), 5)

	seen := make(map[int]bool)
	for _, room := range floor.Rooms {
		for _, c := range room.Contents {
			if seen[c.ID] {
				t.Fatalf("content id %d appears twice on the floor", c.ID)
			}
			seen[c.ID] = true
		}
	}
}
