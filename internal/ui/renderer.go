package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvegen/internal/dungeon"
	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/layout"
)

// Grid spacing for the floor map: rooms sit on a sparse lattice with
// connector characters drawn between them.
const (
	cellSpacingX = 4
	cellSpacingY = 2
	mapOriginX   = 1
	mapOriginY   = 1
)

var tieStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

// Renderer draws the floor graph and the current room's detail panel.
type Renderer struct {
	screen *Screen
	theme  *gamedata.DungeonConfigDef
}

// NewRenderer creates a renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme *gamedata.DungeonConfigDef) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws one frame: map on the left, room detail on the right,
// key hints at the bottom.
func (r *Renderer) Render(floor *dungeon.Floor, current *dungeon.Room, tmpl *layout.Template) {
	r.screen.Clear()

	r.renderMap(floor, current)

	panelX := mapOriginX + floor.Width*cellSpacingX + 4
	r.renderPanel(panelX, floor, current, tmpl)

	_, height := r.screen.Size()
	r.drawText(0, height-1, "arrows: move   >: descend   q: quit",
		tcell.StyleDefault.Foreground(tcell.ColorDarkGray))

	r.screen.Show()
}

// renderMap draws every discovered room and the ties between them.
func (r *Renderer) renderMap(floor *dungeon.Floor, current *dungeon.Room) {
	for _, room := range floor.Rooms {
		if !room.Discovered {
			continue
		}
		cx := mapOriginX + (room.X-floor.MinX)*cellSpacingX
		cy := mapOriginY + (room.Y-floor.MinY)*cellSpacingY

		r.screen.SetContent(cx, cy, r.roomGlyph(room), r.roomStyle(room, current))

		// Ties are drawn toward east and south only; the neighbor on the
		// other side covers the remaining two directions.
		if room.Connected(dungeon.East) && floor.Room(room.Connections[dungeon.East]).Discovered {
			for i := 1; i < cellSpacingX; i++ {
				r.screen.SetContent(cx+i, cy, '-', tieStyle)
			}
		}
		if room.Connected(dungeon.South) && floor.Room(room.Connections[dungeon.South]).Discovered {
			for i := 1; i < cellSpacingY; i++ {
				r.screen.SetContent(cx, cy+i, '|', tieStyle)
			}
		}
	}
}

// roomGlyph returns the map character for a room. Rooms that are only
// discovered, not yet visited, stay hidden behind a question mark.
func (r *Renderer) roomGlyph(room *dungeon.Room) rune {
	if !room.Visited {
		return '?'
	}
	return room.Type.Glyph()
}

// roomStyle picks the room's theme color; the current room is highlighted.
func (r *Renderer) roomStyle(room, current *dungeon.Room) tcell.Style {
	if !room.Visited {
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	style := tcell.StyleDefault.Foreground(r.theme.TypeColor(room.Type.String()))
	if room.ID == current.ID {
		style = style.Bold(true).Reverse(true)
	}
	return style
}

// renderPanel draws floor and room detail plus the matched template.
func (r *Renderer) renderPanel(x int, floor *dungeon.Floor, current *dungeon.Room, tmpl *layout.Template) {
	header := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	label := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	y := mapOriginY
	r.drawText(x, y, fmt.Sprintf("Floor %d", floor.Number), header)
	y += 2
	r.drawText(x, y, fmt.Sprintf("Room %d: %s", current.ID, current.Type), label)
	y++
	r.drawText(x, y, "Doors: "+layout.MaskForRoom(current).String(), dim)
	y += 2

	for _, c := range current.Contents {
		r.drawText(x, y, "- "+describeContent(c), label)
		y++
	}
	if len(current.Contents) > 0 {
		y++
	}

	if tmpl != nil {
		r.drawText(x, y, "Layout: "+tmpl.ID, dim)
		y++
		for _, row := range tmpl.Tiles {
			r.drawText(x, y, row, dim)
			y++
		}
	}
}

// describeContent renders one content entry for the detail panel.
func describeContent(c dungeon.Content) string {
	suffix := ""
	if c.Triggered {
		suffix = " (spent)"
	}
	switch c.Kind {
	case dungeon.ContentEnemy:
		if c.Enemy.Boss {
			return fmt.Sprintf("boss %s L%d%s", c.Enemy.EnemyID, c.Enemy.Level, suffix)
		}
		return fmt.Sprintf("enemy %s L%d%s", c.Enemy.EnemyID, c.Enemy.Level, suffix)
	case dungeon.ContentChest:
		return fmt.Sprintf("chest %s +%dg%s", c.Chest.LootID, c.Chest.Gold, suffix)
	case dungeon.ContentTrap:
		return fmt.Sprintf("trap %d dmg%s", c.Trap.Damage, suffix)
	case dungeon.ContentNPC:
		return fmt.Sprintf("npc %s (%d wares)%s", c.NPC.Name, len(c.NPC.Inventory), suffix)
	case dungeon.ContentInteractable:
		return fmt.Sprintf("%s %d%%%s", c.Interact.Effect, c.Interact.Value, suffix)
	case dungeon.ContentExit:
		return "stairs down"
	default:
		return c.Kind.String()
	}
}

// drawText writes a string starting at the given position.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
