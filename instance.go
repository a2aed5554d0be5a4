package shieldsvg

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ref references a catalog entry by id.
type Ref struct {
	ID string `yaml:"id"`
}

// ChargeInstance is one placed emblem.
type ChargeInstance struct {
	Style           Ref        `yaml:"style"`
	Layout          Ref        `yaml:"layout"`
	OutlineColour   Ref        `yaml:"outlineColour"`
	PrimaryColour   Ref        `yaml:"primaryColour"`
	SecondaryColour *Ref       `yaml:"secondaryColour,omitempty"`
	Transform       *Transform `yaml:"transform,omitempty"`
}

// Background is the content painted behind a division's charge.
type Background struct {
	Style           Ref `yaml:"style"`
	PrimaryColour   Ref `yaml:"primaryColour"`
	SecondaryColour Ref `yaml:"secondaryColour"`
}

// DivisionInstance is the content of one field segment.
type DivisionInstance struct {
	Background Background     `yaml:"background"`
	Charge     ChargeInstance `yaml:"charge"`
}

// ShieldInstance is a complete render request.
type ShieldInstance struct {
	Style         Ref                `yaml:"style"`
	DivisionStyle Ref                `yaml:"divisionStyle"`
	Divisions     []DivisionInstance `yaml:"divisions"`
	Charge        ChargeInstance     `yaml:"charge"`
}

// ParseShieldInstance decodes a YAML or JSON shield instance.
func ParseShieldInstance(data []byte) (ShieldInstance, error) {
	var s ShieldInstance
	if err := yaml.Unmarshal(data, &s); err != nil {
		return ShieldInstance{}, fmt.Errorf("parsing shield instance: %w", err)
	}
	return s, nil
}
