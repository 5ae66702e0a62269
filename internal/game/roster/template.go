// Package roster provides the combatant templates an encounter is built from.
package roster

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

// Template defines a combatant loaded from YAML.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	MaxHP       int    `yaml:"max_hp"`
	Attack      int    `yaml:"attack"`
	Defence     int    `yaml:"defence"`
	// Behavior is the scripted enemy behavior: "default", "orc", or "orc_chief".
	// Empty means default. Ignored for the player.
	Behavior string `yaml:"behavior"`
}

// Validate checks that the template satisfies basic invariants.
//
// Postcondition: Returns nil iff Name is non-empty, MaxHP >= 1, Attack >= 0,
// Defence >= 0, and Behavior names a known behavior.
func (t Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("template: name must not be empty")
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("template %q: max_hp must be >= 1", t.Name)
	}
	if t.Attack < 0 {
		return fmt.Errorf("template %q: attack must be >= 0", t.Name)
	}
	if t.Defence < 0 {
		return fmt.Errorf("template %q: defence must be >= 0", t.Name)
	}
	if _, err := combat.ParseBehavior(t.Behavior); err != nil {
		return fmt.Errorf("template %q: %w", t.Name, err)
	}
	return nil
}

// Spawn creates an uninitialized combatant from the template; encounter.Start
// initializes it.
//
// Postcondition: Returns a combatant with the template's stats, or the validation error.
func (t Template) Spawn() (*combat.Combatant, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	b, _ := combat.ParseBehavior(t.Behavior)
	return &combat.Combatant{
		Name:        t.Name,
		Description: t.Description,
		MaxHP:       t.MaxHP,
		BaseAttack:  t.Attack,
		BaseDefence: t.Defence,
		Behavior:    b,
	}, nil
}

// Roster is a player template and the ordered enemies they face.
type Roster struct {
	Player  Template   `yaml:"player"`
	Enemies []Template `yaml:"enemies"`
}

// Validate checks the player and every enemy template.
//
// Postcondition: Returns nil iff every template is valid and there is at least one enemy.
func (r *Roster) Validate() error {
	if err := r.Player.Validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if len(r.Enemies) == 0 {
		return fmt.Errorf("roster must contain at least one enemy")
	}
	for i, e := range r.Enemies {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("enemy %d: %w", i, err)
		}
	}
	return nil
}

// Spawn creates fresh combatants for the player and every enemy, in order.
// Each call returns new combatants, so a roster can start any number of encounters.
//
// Postcondition: len(enemies) == len(r.Enemies), or a non-nil error.
func (r *Roster) Spawn() (*combat.Combatant, []*combat.Combatant, error) {
	player, err := r.Player.Spawn()
	if err != nil {
		return nil, nil, fmt.Errorf("player: %w", err)
	}
	enemies := make([]*combat.Combatant, 0, len(r.Enemies))
	for i, t := range r.Enemies {
		e, err := t.Spawn()
		if err != nil {
			return nil, nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		enemies = append(enemies, e)
	}
	return player, enemies, nil
}

// Default returns the built-in roster: a goblin, an orc, and an orc chief.
func Default() *Roster {
	return &Roster{
		Player: Template{Name: "you", MaxHP: 20, Attack: 4, Defence: 2},
		Enemies: []Template{
			{Name: "goblin", MaxHP: 10, Attack: 2, Defence: 1, Behavior: "default"},
			{Name: "orc", MaxHP: 20, Attack: 4, Defence: 2, Behavior: "orc"},
			{Name: "orc chief", MaxHP: 25, Attack: 6, Defence: 4, Behavior: "orc_chief"},
		},
	}
}

// LoadFromBytes parses and validates a roster from YAML. Unknown fields are rejected.
//
// Postcondition: Returns a validated *Roster, or an error.
func LoadFromBytes(data []byte) (*Roster, error) {
	var r Roster
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("parsing roster YAML: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadFile reads and parses the roster at path.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns a validated *Roster, or an error naming path.
func LoadFile(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %q: %w", path, err)
	}
	r, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return r, nil
}
