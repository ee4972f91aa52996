package raidtypes

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed raidtypes.toml
var catalogTOML []byte

// RoleSlot binds a reaction emoji to a named role, in display order.
type RoleSlot struct {
	Emoji string `toml:"emoji"`
	Label string `toml:"label"`
}

// RaidType describes one raid: its announcement template, the reactions the
// bot seeds on the post, and the emoji -> role mapping used for sign-ups.
type RaidType struct {
	Name      string     `toml:"name"`
	Template  string     `toml:"template"`
	Reactions []string   `toml:"reactions"`
	Roles     []RoleSlot `toml:"role"`
	Backup    string     `toml:"backup"`

	allowed map[string]struct{}
}

// Allowed reports whether emoji is a valid sign-up reaction for this raid
// type (one of the seeded reactions or the backup emoji).
func (rt *RaidType) Allowed(emoji string) bool {
	_, ok := rt.allowed[emoji]
	return ok
}

// Render fills the announcement template.
func (rt *RaidType) Render(name, duration, timestampTag, ping string) string {
	return strings.NewReplacer(
		"{name}", name,
		"{duration}", duration,
		"{timestamp}", timestampTag,
		"{ping}", ping,
	).Replace(rt.Template)
}

// Catalog holds every known raid type, in declared order.
type Catalog struct {
	types []*RaidType
	index map[string]*RaidType
}

// Load parses the embedded raid type catalog.
func Load() (*Catalog, error) {
	var file struct {
		Raids []*RaidType `toml:"raid"`
	}
	if err := toml.Unmarshal(catalogTOML, &file); err != nil {
		return nil, fmt.Errorf("raidtypes: parse catalog: %w", err)
	}
	if len(file.Raids) == 0 {
		return nil, fmt.Errorf("raidtypes: catalogue vide")
	}

	c := &Catalog{index: make(map[string]*RaidType, len(file.Raids))}
	for _, rt := range file.Raids {
		if rt.Name == "" || rt.Template == "" || rt.Backup == "" || len(rt.Reactions) == 0 {
			return nil, fmt.Errorf("raidtypes: type incomplet (%q)", rt.Name)
		}
		rt.allowed = make(map[string]struct{}, len(rt.Reactions)+1)
		for _, e := range rt.Reactions {
			rt.allowed[e] = struct{}{}
		}
		rt.allowed[rt.Backup] = struct{}{}
		c.types = append(c.types, rt)
		c.index[rt.Name] = rt
	}
	return c, nil
}

// Get returns the raid type by name.
func (c *Catalog) Get(name string) (*RaidType, bool) {
	rt, ok := c.index[name]
	return rt, ok
}

// Names lists raid type names in declared order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.types))
	for i, rt := range c.types {
		out[i] = rt.Name
	}
	return out
}
