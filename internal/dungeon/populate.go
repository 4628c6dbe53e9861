package dungeon

// Content balance constants. Damage and reward numbers scale with the
// floor number so deeper floors stay threatening.
const (
	restHealPercent = 30
	trapBaseDamage  = 5
	trapFloorScale  = 2
	chestBaseGold   = 10
	chestGoldSpread = 20
	maxEnemiesGroup = 3
)

// populateRoom replaces the room's contents based on its type. Types
// without a rule (including anything unrecognized) get no procedural
// contents; secret and puzzle rooms are filled from their templates by
// the instantiation layer instead.
func (g *Generator) populateRoom(floor *Floor, room *Room) {
	room.Contents = nil

	switch room.Type {
	case RoomEnemy:
		depth := min(maxEnemiesGroup, floor.Number)
		count := 1 + int(g.rng.Float64()*float64(depth))
		for i := 0; i < count; i++ {
			x, y := g.interiorPos()
			room.Contents = append(room.Contents, Content{
				ID:   floor.newContentID(),
				Kind: ContentEnemy,
				X:    x,
				Y:    y,
				Enemy: &EnemyContent{
					EnemyID: g.pick(g.cfg.EnemyPool),
					Level:   floor.Number,
				},
			})
		}

	case RoomTreasure:
		room.Contents = append(room.Contents, Content{
			ID:   floor.newContentID(),
			Kind: ContentChest,
			X:    0.5, // chests sit in the middle of the room
			Y:    0.5,
			Chest: &ChestContent{
				LootID: g.pick(g.cfg.TreasurePool),
				Gold:   chestBaseGold*floor.Number + g.rng.Intn(chestGoldSpread*floor.Number+1),
			},
		})

	case RoomTrap:
		x, y := g.interiorPos()
		room.Contents = append(room.Contents, Content{
			ID:   floor.newContentID(),
			Kind: ContentTrap,
			X:    x,
			Y:    y,
			Trap: &TrapContent{Damage: trapBaseDamage + trapFloorScale*floor.Number},
		})

	case RoomRest:
		x, y := g.interiorPos()
		room.Contents = append(room.Contents, Content{
			ID:       floor.newContentID(),
			Kind:     ContentInteractable,
			X:        x,
			Y:        y,
			Interact: &InteractContent{Effect: "heal", Value: restHealPercent},
		})

	case RoomMerchant:
		x, y := g.interiorPos()
		room.Contents = append(room.Contents, Content{
			ID:   floor.newContentID(),
			Kind: ContentNPC,
			X:    x,
			Y:    y,
			NPC: &NPCContent{
				Name:      "Merchant",
				Inventory: append([]string(nil), g.cfg.MerchantStock...),
			},
		})

	case RoomBoss:
		x, y := g.interiorPos()
		room.Contents = append(room.Contents, Content{
			ID:   floor.newContentID(),
			Kind: ContentEnemy,
			X:    x,
			Y:    y,
			Enemy: &EnemyContent{
				EnemyID: g.pick(g.cfg.EnemyPool),
				Level:   floor.Number,
				Boss:    true,
			},
		})

	case RoomExit:
		room.Contents = append(room.Contents, Content{
			ID:   floor.newContentID(),
			Kind: ContentExit,
			X:    0.5,
			Y:    0.5,
		})
	}
}

// interiorPos returns a normalized position clear of the room edges.
func (g *Generator) interiorPos() (x, y float64) {
	return 0.25 + g.rng.Float64()*0.5, 0.25 + g.rng.Float64()*0.5
}

// pick returns a uniformly random entry from a non-empty pool.
func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}
