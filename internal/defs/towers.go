// internal/defs/towers.go
package defs

import (
	"image/color"
)

// TowerClass defines the category of a tower.
type TowerClass string

const (
	TowerBasic   TowerClass = "BASIC"
	TowerSniper  TowerClass = "SNIPER"
	TowerArea    TowerClass = "AREA"
	TowerSupport TowerClass = "SUPPORT"
)

// UpgradeTier holds the modifiers one upgrade step applies to a tower.
// Multipliers at zero mean "leave the stat alone"; absolute fields
// (BuffMultiplier, CriticalChance) overwrite only when non-zero.
type UpgradeTier struct {
	Name                   string  `json:"name"`
	Cost                   int     `json:"cost"`
	DamageMultiplier       float64 `json:"damage_multiplier,omitempty"`
	RangeMultiplier        float64 `json:"range_multiplier,omitempty"`
	CooldownMultiplier     float64 `json:"cooldown_multiplier,omitempty"`
	SplashRadiusMultiplier float64 `json:"splash_radius_multiplier,omitempty"`
	BuffMultiplier         float64 `json:"buff_multiplier,omitempty"`

	AddsBurning             bool    `json:"adds_burning,omitempty"`
	BurningDamageMultiplier float64 `json:"burning_damage_multiplier,omitempty"`
	AddsCritical            bool    `json:"adds_critical,omitempty"`
	CriticalChance          float64 `json:"critical_chance,omitempty"`
	AddsSpecialAbility      bool    `json:"adds_special_ability,omitempty"`

	Description string `json:"description,omitempty"`
}

// UpgradePaths are the two mutually exclusive progressions of a tower type.
type UpgradePaths struct {
	Path1 []UpgradeTier `json:"path1"`
	Path2 []UpgradeTier `json:"path2"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Class        TowerClass   `json:"class"`
	Cost         int          `json:"cost"`
	Damage       float64      `json:"damage"`
	Range        float64      `json:"range"`
	Cooldown     float64      `json:"cooldown"` // секунды между выстрелами
	SplashRadius float64      `json:"splash_radius,omitempty"`
	BuffMult     float64      `json:"buff_multiplier,omitempty"` // для башен поддержки
	Upgrades     UpgradePaths `json:"upgrade_paths"`
	Visuals      Visuals      `json:"visuals"`
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width"`
}
