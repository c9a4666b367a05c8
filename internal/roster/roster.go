// Package roster holds the static lookup tables that translate W2W
// identifiers into EN vocabulary. The tables are loaded once per run from a
// YAML file and stay immutable afterwards.
package roster

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultUnassignedID is the sentinel EN person id meaning "do not publish".
const DefaultUnassignedID = "9999999"

// EquipmentRule maps one (position, category) pair to an EN call sign. An
// empty category matches shifts that carry no category id.
type EquipmentRule struct {
	Position string `mapstructure:"position" validate:"required"`
	Category string `mapstructure:"category"`
	CallSign string `mapstructure:"call_sign" validate:"required"`
}

// StandingCrew lists EN person ids that are on duty for the whole published
// window regardless of shift data.
type StandingCrew struct {
	CallSign string   `mapstructure:"call_sign" validate:"required"`
	Members  []string `mapstructure:"members" validate:"required,dive,required"`
}

type Roster struct {
	// UnassignedID overrides DefaultUnassignedID when set.
	UnassignedID string `mapstructure:"unassigned_id"`

	// People maps W2W employee id to EN person id. Values may be the
	// unassigned sentinel; absent keys mean "no mapping", which is a
	// different condition.
	People map[string]string `mapstructure:"people" validate:"required"`

	// Equipment rules are matched exactly on position and category.
	Equipment []EquipmentRule `mapstructure:"equipment" validate:"dive"`

	// IgnoredPositions never map to equipment, whatever their category.
	IgnoredPositions []string `mapstructure:"ignored_positions"`

	// Standing crews are seeded before any shift is processed, in file
	// order.
	Standing []StandingCrew `mapstructure:"standing" validate:"dive"`
}

// Load reads and validates the roster file. The file format is YAML; see
// roster.example.yaml.
func Load(path string) (*Roster, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var r Roster
	if err := v.Unmarshal(&r); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}
	if err := validator.New().Struct(&r); err != nil {
		return nil, fmt.Errorf("invalid roster file: %w", err)
	}
	return &r, nil
}

// PersonID resolves a W2W employee id to an EN person id. The second return
// is false when the id has no mapping at all; a sentinel mapping still
// returns true.
func (r *Roster) PersonID(w2wID string) (string, bool) {
	id, ok := r.People[w2wID]
	return id, ok
}

// Unassigned reports whether an EN person id is the reserved
// "do not publish" sentinel.
func (r *Roster) Unassigned(enID string) bool {
	sentinel := r.UnassignedID
	if sentinel == "" {
		sentinel = DefaultUnassignedID
	}
	return enID == sentinel
}

// Ignored reports whether a position id is on the ignore list.
func (r *Roster) Ignored(position string) bool {
	for _, p := range r.IgnoredPositions {
		if p == position {
			return true
		}
	}
	return false
}

// CallSign resolves a (position, category) pair to an EN call sign. The
// tables are tiny, so a linear scan beats maintaining an index.
func (r *Roster) CallSign(position, category string) (string, bool) {
	for _, rule := range r.Equipment {
		if rule.Position == position && rule.Category == category {
			return rule.CallSign, true
		}
	}
	return "", false
}
