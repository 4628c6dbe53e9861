package explore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/delvegen/internal/dungeon"
	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/layout"
)

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()

	matcher := layout.NewMatcher()
	if err := matcher.Build(context.Background(), gamedata.MustLoadTemplates()); err != nil {
		t.Fatalf("matcher build failed: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := gamedata.MustLoadDungeonConfig().ToConfig()
	sess := NewSession(cfg, matcher, seed, log)
	sess.Start(context.Background())
	return sess
}

// pathToTerminal returns the directions of a shortest path from the
// current room to the floor's exit/boss room.
func pathToTerminal(t *testing.T, floor *dungeon.Floor, from dungeon.RoomID) []dungeon.Direction {
	t.Helper()
	goal := floor.Terminal().ID

	type step struct {
		room dungeon.RoomID
		dir  dungeon.Direction
	}
	prev := map[dungeon.RoomID]step{from: {dungeon.NoRoom, dungeon.North}}
	queue := []dungeon.RoomID{from}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == goal {
			break
		}
		for _, dir := range dungeon.AllDirections() {
			next := floor.Room(id).Connections[dir]
			if next == dungeon.NoRoom {
				continue
			}
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = step{id, dir}
			queue = append(queue, next)
		}
	}

	if _, ok := prev[goal]; !ok {
		t.Fatal("terminal room unreachable from start")
	}
	var path []dungeon.Direction
	for id := goal; id != from; {
		s := prev[id]
		path = append([]dungeon.Direction{s.dir}, path...)
		id = s.room
	}
	return path
}

func TestSessionStart(t *testing.T) {
	sess := newTestSession(t, 100)

	room := sess.CurrentRoom()
	if room.Type != dungeon.RoomStart {
		t.Fatalf("session started in a %s room", room.Type)
	}
	if !room.Visited || !room.Discovered {
		t.Error("start room should be visited and discovered")
	}
	for _, next := range room.Connections {
		if next != dungeon.NoRoom && !sess.Floor().Room(next).Discovered {
			t.Error("rooms adjacent to the start should be discovered")
		}
	}
}

func TestSessionMove(t *testing.T) {
	sess := newTestSession(t, 101)
	start := sess.CurrentRoom()

	var open, closed dungeon.Direction
	foundOpen, foundClosed := false, false
	for _, dir := range dungeon.AllDirections() {
		if start.Connected(dir) {
			open, foundOpen = dir, true
		} else {
			closed, foundClosed = dir, true
		}
	}
	if !foundOpen {
		t.Fatal("start room has no connections")
	}

	if foundClosed && sess.Move(closed) {
		t.Errorf("moved %s through a wall", closed)
	}
	if sess.CurrentRoom().ID != start.ID {
		t.Fatal("failed move changed the current room")
	}

	if !sess.Move(open) {
		t.Fatalf("could not move %s through an open door", open)
	}
	room := sess.CurrentRoom()
	if room.ID == start.ID {
		t.Fatal("move did not change the current room")
	}
	if !room.Visited {
		t.Error("entered room should be visited")
	}

	// Entering a trap room springs its trap.
	for _, c := range room.Contents {
		if c.Kind == dungeon.ContentTrap && !c.Triggered {
			t.Error("trap not sprung on entry")
		}
	}
}

func TestSessionDescend(t *testing.T) {
	sess := newTestSession(t, 102)

	if err := sess.Descend(context.Background()); !errors.Is(err, ErrNoExit) {
		t.Fatalf("descending from the start room returned %v, want ErrNoExit", err)
	}

	// Walk floors 1 through 4, descending at each exit.
	for floorNumber := 1; floorNumber < 5; floorNumber++ {
		if got := sess.Floor().Number; got != floorNumber {
			t.Fatalf("on floor %d, want %d", got, floorNumber)
		}
		for _, dir := range pathToTerminal(t, sess.Floor(), sess.CurrentRoom().ID) {
			if !sess.Move(dir) {
				t.Fatal("path step blocked")
			}
		}
		if sess.CurrentRoom().Type != dungeon.RoomExit {
			t.Fatalf("floor %d terminal is %s, want exit", floorNumber, sess.CurrentRoom().Type)
		}
		if err := sess.Descend(context.Background()); err != nil {
			t.Fatalf("descend failed: %v", err)
		}
	}

	// Floor 5 is the last one: its terminal room holds the boss.
	floor := sess.Floor()
	if floor.Number != 5 {
		t.Fatalf("expected the final floor, got %d", floor.Number)
	}
	if want := 5 + 4*2; floor.RoomCount() != want {
		t.Errorf("final floor has %d rooms, want %d", floor.RoomCount(), want)
	}
	for _, dir := range pathToTerminal(t, floor, sess.CurrentRoom().ID) {
		sess.Move(dir)
	}
	if sess.CurrentRoom().Type != dungeon.RoomBoss {
		t.Fatalf("final terminal is %s, want boss", sess.CurrentRoom().Type)
	}
	if !sess.Done() {
		t.Error("session should be done after entering the boss room")
	}
	if err := sess.Descend(context.Background()); !errors.Is(err, ErrDungeonComplete) {
		t.Errorf("descending past the boss returned %v, want ErrDungeonComplete", err)
	}
}

func TestSessionTemplate(t *testing.T) {
	sess := newTestSession(t, 103)

	tmpl, err := sess.Template()
	if err != nil {
		t.Fatalf("Template failed: %v", err)
	}
	required := layout.MaskForRoom(sess.CurrentRoom())
	if !tmpl.Mask().Contains(required) {
		t.Errorf("template %q (doors %s) does not cover the room's doors %s",
			tmpl.ID, tmpl.Mask(), required)
	}
}

func TestSessionClearsQuietRooms(t *testing.T) {
	sess := newTestSession(t, 104)

	start := sess.CurrentRoom()
	if !start.Cleared {
		t.Error("the empty start room should be cleared on entry")
	}
}
