// Package explore drives a run through the generated dungeon: it owns
// the play-state flags on rooms (visited, cleared, discovered), floor
// descent, and template resolution for the room being displayed.
package explore

import (
	"context"
	"errors"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvegen/internal/dungeon"
	"github.com/samdwyer/delvegen/internal/layout"
	"github.com/samdwyer/delvegen/internal/telemetry"
)

var (
	// ErrNoExit is returned by Descend when the party is not standing in
	// an exit room.
	ErrNoExit = errors.New("explore: current room has no way down")

	// ErrDungeonComplete is returned by Descend past the final floor.
	ErrDungeonComplete = errors.New("explore: the dungeon has no more floors")
)

// Session is one run through the dungeon. Not safe for concurrent use.
type Session struct {
	cfg     dungeon.Config
	gen     *dungeon.Generator
	matcher *layout.Matcher
	rng     *rand.Rand // template tie-breaks only
	log     *logrus.Logger

	floor   *dungeon.Floor
	current dungeon.RoomID
	done    bool // boss floor reached and entered
}

// NewSession creates a session for the given theme. The seed fixes the
// whole run: floor layouts, room types, contents and template picks.
func NewSession(cfg dungeon.Config, matcher *layout.Matcher, seed int64, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		cfg:     cfg,
		gen:     dungeon.NewGenerator(cfg, rand.New(rand.NewSource(seed))),
		matcher: matcher,
		rng:     rand.New(rand.NewSource(seed + 1)),
		log:     log,
	}
}

// Start generates the first floor and places the party in its start room.
func (s *Session) Start(ctx context.Context) {
	s.enterFloor(ctx, 1)
}

// Floor returns the floor currently being explored.
func (s *Session) Floor() *dungeon.Floor {
	return s.floor
}

// CurrentRoom returns the room the party is standing in.
func (s *Session) CurrentRoom() *dungeon.Room {
	return s.floor.Room(s.current)
}

// Done reports whether the party has reached the final floor's boss room.
func (s *Session) Done() bool {
	return s.done
}

// Move follows the connection in the given direction. It returns false
// when the current room has no door on that side.
func (s *Session) Move(dir dungeon.Direction) bool {
	next := s.CurrentRoom().Connections[dir]
	if next == dungeon.NoRoom {
		return false
	}
	s.enterRoom(next)
	return true
}

// Descend generates the next floor. It fails unless the party stands in
// an exit room; on the final floor there is nothing below the boss.
func (s *Session) Descend(ctx context.Context) error {
	switch s.CurrentRoom().Type {
	case dungeon.RoomExit:
		s.enterFloor(ctx, s.floor.Number+1)
		return nil
	case dungeon.RoomBoss:
		return ErrDungeonComplete
	default:
		return ErrNoExit
	}
}

// Template resolves the current room's door configuration to a concrete
// room template.
func (s *Session) Template() (*layout.Template, error) {
	return s.matcher.Lookup(layout.MaskForRoom(s.CurrentRoom()), s.rng)
}

// enterFloor discards any previous floor and generates a fresh one.
// Regenerate-and-discard is the only cancellation mechanism generation
// needs; floors are small.
func (s *Session) enterFloor(ctx context.Context, number int) {
	tracer := telemetry.Tracer("explore")
	ctx, span := tracer.Start(ctx, "session.enter_floor")
	defer span.End()

	s.floor = s.gen.Generate(ctx, number)
	s.current = s.floor.StartID
	s.enterRoom(s.current)

	span.SetAttributes(
		attribute.Int("floor.number", number),
		attribute.Int("floor.room_count", s.floor.RoomCount()),
	)
	s.log.WithFields(logrus.Fields{
		"floor": number,
		"rooms": s.floor.RoomCount(),
	}).Info("entered floor")
}

// enterRoom updates play-state flags and fires entry triggers.
func (s *Session) enterRoom(id dungeon.RoomID) {
	s.current = id
	room := s.floor.Room(id)

	room.Visited = true
	room.Discovered = true
	for _, next := range room.Connections {
		if next != dungeon.NoRoom {
			s.floor.Room(next).Discovered = true
		}
	}

	s.triggerTraps(room)
	s.updateCleared(room)

	if room.Type == dungeon.RoomBoss {
		s.done = true
	}

	s.log.WithFields(logrus.Fields{
		"floor": s.floor.Number,
		"room":  room.ID,
		"type":  room.Type.String(),
	}).Debug("entered room")
}

// triggerTraps fires untriggered traps on room entry.
func (s *Session) triggerTraps(room *dungeon.Room) {
	for i := range room.Contents {
		c := &room.Contents[i]
		if c.Kind == dungeon.ContentTrap && !c.Triggered {
			c.Triggered = true
			s.log.WithFields(logrus.Fields{
				"room":   room.ID,
				"damage": c.Trap.Damage,
			}).Info("trap sprung")
		}
	}
}

// updateCleared marks a room cleared once nothing hostile remains in it.
// Combat resolution itself belongs to the combat layer; it flips the
// Triggered flag on enemy entries, and the next entry re-evaluates this.
func (s *Session) updateCleared(room *dungeon.Room) {
	for _, c := range room.Contents {
		if c.Kind == dungeon.ContentEnemy && !c.Triggered {
			return
		}
	}
	room.Cleared = true
}
