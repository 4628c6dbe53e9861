package dungeon

// ContentKind represents the category of a content entry inside a room.
type ContentKind int

const (
	ContentEnemy ContentKind = iota
	ContentChest
	ContentTrap
	ContentNPC
	ContentInteractable
	ContentExit
)

// String returns the content kind name.
func (k ContentKind) String() string {
	switch k {
	case ContentEnemy:
		return "enemy"
	case ContentChest:
		return "chest"
	case ContentTrap:
		return "trap"
	case ContentNPC:
		return "npc"
	case ContentInteractable:
		return "interactable"
	case ContentExit:
		return "exit"
	default:
		return "unknown"
	}
}

// EnemyContent is the payload for an Enemy content entry.
type EnemyContent struct {
	EnemyID string // identifier from the theme's enemy pool
	Level   int
	Boss    bool
}

// ChestContent is the payload for a Chest content entry.
type ChestContent struct {
	LootID string // identifier from the theme's treasure pool
	Gold   int
}

// TrapContent is the payload for a Trap content entry.
type TrapContent struct {
	Damage int
}

// NPCContent is the payload for an NPC content entry.
type NPCContent struct {
	Name      string
	Inventory []string
}

// InteractContent is the payload for an Interactable content entry.
type InteractContent struct {
	Effect string // e.g. "heal"
	Value  int
}

// Content is one gameplay element placed in a room. Exactly one payload
// pointer is set, matching Kind; Exit entries carry no payload at all.
type Content struct {
	ID        int     // unique within the floor
	Kind      ContentKind
	X, Y      float64 // normalized room-local position in [0,1]
	Triggered bool    // set by the combat/exploration layer on resolution

	Enemy    *EnemyContent
	Chest    *ChestContent
	Trap     *TrapContent
	NPC      *NPCContent
	Interact *InteractContent
}
