// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions reads a tower catalog file and replaces the TowerLibrary.
// A malformed catalog is a fatal load-time error, never a runtime condition.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	lib := make(map[string]TowerDefinition, len(towerDefs))
	for i, def := range towerDefs {
		if err := validateTower(def); err != nil {
			return fmt.Errorf("tower definition %d (%q): %w", i, def.ID, err)
		}
		lib[def.ID] = def
	}

	TowerLibrary = lib
	return nil
}

// LoadEnemyDefinitions reads an enemy catalog file and replaces the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(map[string]EnemyDefinition, len(enemyDefs))
	for i, def := range enemyDefs {
		if err := validateEnemy(def); err != nil {
			return fmt.Errorf("enemy definition %d (%q): %w", i, def.ID, err)
		}
		lib[def.ID] = def
	}

	EnemyLibrary = lib
	return nil
}

func validateTower(def TowerDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("missing id")
	}
	switch def.Class {
	case TowerBasic, TowerSniper, TowerArea, TowerSupport:
	default:
		return fmt.Errorf("unknown class %q", def.Class)
	}
	if def.Cost <= 0 {
		return fmt.Errorf("cost must be positive, got %d", def.Cost)
	}
	if def.Range <= 0 {
		return fmt.Errorf("range must be positive, got %g", def.Range)
	}
	if def.Damage < 0 || def.Cooldown < 0 || def.SplashRadius < 0 {
		return fmt.Errorf("damage, cooldown and splash_radius must be non-negative")
	}
	if len(def.Upgrades.Path1) > 3 || len(def.Upgrades.Path2) > 3 {
		return fmt.Errorf("upgrade paths are limited to 3 tiers")
	}
	for _, tier := range append(append([]UpgradeTier{}, def.Upgrades.Path1...), def.Upgrades.Path2...) {
		if tier.Cost <= 0 {
			return fmt.Errorf("upgrade tier %q: cost must be positive", tier.Name)
		}
	}
	return nil
}

func validateEnemy(def EnemyDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("missing id")
	}
	if def.Health <= 0 {
		return fmt.Errorf("health must be positive, got %g", def.Health)
	}
	if def.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", def.Speed)
	}
	if def.Reward < 0 || def.Damage < 0 {
		return fmt.Errorf("reward and damage must be non-negative")
	}
	return nil
}
