package gamedata

import (
	"fmt"

	"github.com/samdwyer/delvegen/internal/layout"
)

// DoorDef is a named door anchor as stored in JSON.
type DoorDef struct {
	Name string `json:"name"` // Anchor identifier (e.g., "n")
	X    int    `json:"x"`    // Tile column of the opening
	Y    int    `json:"y"`    // Tile row of the opening
}

// TemplateDef defines a room template loaded from JSON. Only the door
// anchors are interpreted here; the tile rows are opaque payload for the
// rendering layer.
type TemplateDef struct {
	ID       string   `json:"id"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Fallback bool     `json:"fallback"`
	DoorN    *DoorDef `json:"doorNorth"`
	DoorS    *DoorDef `json:"doorSouth"`
	DoorE    *DoorDef `json:"doorEast"`
	DoorW    *DoorDef `json:"doorWest"`
	Tiles    []string `json:"tiles"`
}

// TemplatesFile represents the structure of templates.json.
type TemplatesFile struct {
	Templates []TemplateDef `json:"templates"`
}

// ToTemplate converts a definition into the matcher's template form.
func (d *TemplateDef) ToTemplate() *layout.Template {
	conv := func(dd *DoorDef) *layout.Door {
		if dd == nil {
			return nil
		}
		return &layout.Door{Name: dd.Name, X: dd.X, Y: dd.Y}
	}
	return &layout.Template{
		ID:       d.ID,
		Width:    d.Width,
		Height:   d.Height,
		Fallback: d.Fallback,
		DoorN:    conv(d.DoorN),
		DoorS:    conv(d.DoorS),
		DoorE:    conv(d.DoorE),
		DoorW:    conv(d.DoorW),
		Tiles:    append([]string(nil), d.Tiles...),
	}
}

// LoadTemplates loads the embedded template pool.
func LoadTemplates() ([]*layout.Template, error) {
	file, err := Load[TemplatesFile]("templates.json")
	if err != nil {
		return nil, err
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("templates.json contains no templates")
	}

	seen := make(map[string]bool, len(file.Templates))
	templates := make([]*layout.Template, 0, len(file.Templates))
	for i := range file.Templates {
		def := &file.Templates[i]
		if def.ID == "" {
			return nil, fmt.Errorf("template at index %d has no id", i)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("duplicate template id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Width < 1 || def.Height < 1 {
			return nil, fmt.Errorf("template %q has invalid dimensions %dx%d", def.ID, def.Width, def.Height)
		}
		templates = append(templates, def.ToTemplate())
	}
	return templates, nil
}

// MustLoadTemplates loads the template pool, panicking on error.
func MustLoadTemplates() []*layout.Template {
	templates, err := LoadTemplates()
	if err != nil {
		panic(err)
	}
	return templates
}
