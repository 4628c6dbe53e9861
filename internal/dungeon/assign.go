package dungeon

// assignTypes labels every room on the floor. The structurally last room
// created by the walk becomes the exit, or the boss room on the final
// floor; the start room and the terminal room are never touched by the
// weighted pass.
func (g *Generator) assignTypes(floor *Floor, finalFloor bool) {
	terminal := RoomID(floor.RoomCount() - 1)

	// A one-room floor is all start room; there is nowhere to put an exit.
	if terminal != floor.StartID {
		room := floor.Room(terminal)
		if finalFloor {
			room.Type = RoomBoss
			floor.BossID = terminal
		} else {
			room.Type = RoomExit
			floor.ExitID = terminal
		}
	}

	total := g.cfg.TotalWeight()
	for _, room := range floor.Rooms {
		if room.ID == floor.StartID || room.ID == terminal {
			continue
		}
		room.Type = g.drawType(total)
	}
}

// drawType performs one weighted draw over the theme's type table: roll
// uniform in [0, totalWeight) and walk the table in order, accumulating
// weights. The strict comparison keeps zero-weight types unreachable.
func (g *Generator) drawType(totalWeight int) RoomType {
	roll := g.rng.Float64() * float64(totalWeight)

	cumulative := 0.0
	for _, tw := range g.cfg.TypeWeights {
		cumulative += float64(tw.Weight)
		if roll < cumulative {
			return tw.Type
		}
	}

	// Only reachable through floating-point drift at the table's end.
	return RoomEmpty
}
