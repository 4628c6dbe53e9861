package dungeon

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvegen/internal/telemetry"
)

// maxWalkStepsPerRoom bounds the random walk. A pathological theme could
// keep the walk circling through occupied cells; past the cap each missing
// room is force-placed next to the most recently created one instead.
const maxWalkStepsPerRoom = 64

// Generator builds dungeon floors for one theme. Not safe for concurrent
// use: it owns a single rand source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator creates a generator for the given theme config and rand
// source. Pass a seeded source for reproducible floors.
func NewGenerator(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Generate builds the complete floor for the given floor number: the room
// graph via a constrained random walk, then room types, then contents.
func (g *Generator) Generate(ctx context.Context, floorNumber int) *Floor {
	tracer := telemetry.Tracer("dungeon")
	_, span := tracer.Start(ctx, "floor.generate")
	defer span.End()

	startTime := time.Now()

	floor := g.walk(floorNumber)
	g.assignTypes(floor, g.cfg.IsFinalFloor(floorNumber))
	for _, room := range floor.Rooms {
		g.populateRoom(floor, room)
	}
	floor.computeBounds()

	span.SetAttributes(
		attribute.Int("floor.number", floorNumber),
		attribute.Int("floor.room_count", floor.RoomCount()),
		attribute.Int("floor.width", floor.Width),
		attribute.Int("floor.height", floor.Height),
		attribute.Int64("floor.generation_us", time.Since(startTime).Microseconds()),
	)

	return floor
}

type gridKey struct{ x, y int }

// walk lays out the room graph. Every new room is linked to an already
// placed one before it is added, so the graph is connected by construction.
// Revisiting an occupied cell links the rooms (cycles are intentional) and
// moves the walker without creating anything.
func (g *Generator) walk(floorNumber int) *Floor {
	target := g.cfg.TargetRooms(floorNumber)

	floor := &Floor{
		Number:  floorNumber,
		StartID: NoRoom,
		ExitID:  NoRoom,
		BossID:  NoRoom,
	}
	grid := make(map[gridKey]RoomID, target)

	addRoom := func(x, y int) *Room {
		room := &Room{
			ID:          RoomID(len(floor.Rooms)),
			Type:        RoomEmpty,
			X:           x,
			Y:           y,
			Connections: [4]RoomID{NoRoom, NoRoom, NoRoom, NoRoom},
		}
		floor.Rooms = append(floor.Rooms, room)
		grid[gridKey{x, y}] = room.ID
		return room
	}

	start := addRoom(0, 0)
	start.Type = RoomStart
	floor.StartID = start.ID

	current := start
	prev, hasPrev := North, false
	steps := 0
	maxSteps := maxWalkStepsPerRoom * target

	for floor.RoomCount() < target {
		if steps >= maxSteps {
			g.forcePlace(floor, grid)
			continue
		}
		steps++

		dir := g.randDirection(prev, hasPrev)
		dx, dy := dir.Delta()
		nx, ny := current.X+dx, current.Y+dy

		if id, occupied := grid[gridKey{nx, ny}]; occupied {
			neighbor := floor.Room(id)
			link(current, neighbor, dir)
			current = neighbor
		} else {
			room := addRoom(nx, ny)
			link(current, room, dir)
			current = room
		}
		prev, hasPrev = dir, true
	}

	return floor
}

// randDirection picks a direction uniformly at random, excluding the
// direct reverse of the previous move. This is a soft anti-backtrack: the
// walk can still loop back onto occupied cells via a detour.
func (g *Generator) randDirection(prev Direction, hasPrev bool) Direction {
	if !hasPrev {
		return Direction(g.rng.Intn(4))
	}
	avoid := prev.Opposite()
	d := Direction(g.rng.Intn(3))
	if d >= avoid {
		d++
	}
	return d
}

// forcePlace deterministically creates one room adjacent to the most
// recently created room that still has a free neighboring cell, scanning
// directions in N,S,E,W order. Used only after the walk hits its step cap.
func (g *Generator) forcePlace(floor *Floor, grid map[gridKey]RoomID) {
	for i := floor.RoomCount() - 1; i >= 0; i-- {
		anchor := floor.Rooms[i]
		for _, dir := range AllDirections() {
			dx, dy := dir.Delta()
			nx, ny := anchor.X+dx, anchor.Y+dy
			if _, occupied := grid[gridKey{nx, ny}]; occupied {
				continue
			}
			room := &Room{
				ID:          RoomID(floor.RoomCount()),
				Type:        RoomEmpty,
				X:           nx,
				Y:           ny,
				Connections: [4]RoomID{NoRoom, NoRoom, NoRoom, NoRoom},
			}
			floor.Rooms = append(floor.Rooms, room)
			grid[gridKey{nx, ny}] = room.ID
			link(anchor, room, dir)
			return
		}
	}
	// Unreachable on an unbounded lattice: some placed room always has a
	// free neighbor.
}

// link connects two rooms bidirectionally: b sits in direction dir from a.
func link(a, b *Room, dir Direction) {
	a.Connections[dir] = b.ID
	b.Connections[dir.Opposite()] = a.ID
}
