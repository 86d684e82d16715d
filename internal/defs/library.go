// internal/defs/library.go
package defs

import "image/color"

// TowerLibrary is a map to hold all tower definitions, keyed by their ID.
var TowerLibrary map[string]TowerDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

func init() {
	TowerLibrary = builtinTowers()
	EnemyLibrary = builtinEnemies()
}

// builtinTowers возвращает встроенный каталог башен. Внешний JSON
// (LoadTowerDefinitions) заменяет его целиком.
func builtinTowers() map[string]TowerDefinition {
	defs := []TowerDefinition{
		{
			ID:       "TOWER_BASIC",
			Name:     "Basic Tower",
			Class:    TowerBasic,
			Cost:     100,
			Damage:   10,
			Range:    150,
			Cooldown: 1.0,
			Upgrades: UpgradePaths{
				Path1: []UpgradeTier{
					{Name: "Faster Firing", Cost: 150, CooldownMultiplier: 0.8, Description: "Increases attack speed by 25%"},
					{Name: "Rapid Fire", Cost: 300, CooldownMultiplier: 0.6, Description: "Doubles attack speed"},
					{Name: "Hypersonic", Cost: 600, CooldownMultiplier: 0.4, Description: "Fires at incredible speeds"},
				},
				Path2: []UpgradeTier{
					{Name: "Enhanced Damage", Cost: 200, DamageMultiplier: 1.5, Description: "Increases damage by 50%"},
					{Name: "Heavy Rounds", Cost: 400, DamageMultiplier: 2.0, Description: "Doubles damage output"},
					{Name: "Devastating Shots", Cost: 800, DamageMultiplier: 3.0, Description: "Triple damage with armor penetration"},
				},
			},
			Visuals: Visuals{Color: color.RGBA{41, 128, 185, 255}, RadiusFactor: 0.3, StrokeWidth: 2},
		},
		{
			ID:       "TOWER_SNIPER",
			Name:     "Sniper Tower",
			Class:    TowerSniper,
			Cost:     250,
			Damage:   50,
			Range:    500,
			Cooldown: 3.0,
			Upgrades: UpgradePaths{
				Path1: []UpgradeTier{
					{Name: "Enhanced Scope", Cost: 200, RangeMultiplier: 1.5, Description: "Increases attack range by 50%"},
					{Name: "Long Range", Cost: 400, RangeMultiplier: 2.0, CooldownMultiplier: 0.9, Description: "Doubles range and slightly improves firing speed"},
					{Name: "Global Range", Cost: 800, RangeMultiplier: 10.0, Description: "Can target enemies anywhere on the map"},
				},
				Path2: []UpgradeTier{
					{Name: "Armor Piercing", Cost: 300, DamageMultiplier: 2.0, Description: "Doubles damage against all enemies"},
					{Name: "Critical Hits", Cost: 600, DamageMultiplier: 3.0, AddsCritical: true, Description: "Chance to deal double damage with critical hits"},
					{Name: "One Shot One Kill", Cost: 1200, DamageMultiplier: 5.0, CriticalChance: 0.3, Description: "Massive damage with 30% crit chance"},
				},
			},
			Visuals: Visuals{Color: color.RGBA{142, 68, 173, 255}, RadiusFactor: 0.3, StrokeWidth: 2},
		},
		{
			ID:           "TOWER_AREA",
			Name:         "Area Tower",
			Class:        TowerArea,
			Cost:         300,
			Damage:       15,
			Range:        120,
			Cooldown:     2.0,
			SplashRadius: 80,
			Upgrades: UpgradePaths{
				Path1: []UpgradeTier{
					{Name: "Wider Blast", Cost: 200, SplashRadiusMultiplier: 1.5, Description: "Increases explosion radius by 50%"},
					{Name: "Massive Explosion", Cost: 400, SplashRadiusMultiplier: 2.0, Description: "Doubles explosion radius"},
					{Name: "Nuclear Blast", Cost: 800, SplashRadiusMultiplier: 3.0, DamageMultiplier: 1.5, Description: "Huge explosions with increased damage"},
				},
				Path2: []UpgradeTier{
					{Name: "Burning Effect", Cost: 250, AddsBurning: true, Description: "Adds burning damage over time"},
					{Name: "Inferno", Cost: 500, BurningDamageMultiplier: 2.0, Description: "Doubles burning damage"},
					{Name: "Hellfire", Cost: 1000, BurningDamageMultiplier: 3.0, SplashRadiusMultiplier: 1.5, Description: "Triple burning damage with increased area"},
				},
			},
			Visuals: Visuals{Color: color.RGBA{230, 126, 34, 255}, RadiusFactor: 0.35, StrokeWidth: 2},
		},
		{
			ID:       "TOWER_SUPPORT",
			Name:     "Support Tower",
			Class:    TowerSupport,
			Cost:     350,
			Damage:   0,
			Range:    200,
			Cooldown: 0,
			BuffMult: 1.2,
			Upgrades: UpgradePaths{
				Path1: []UpgradeTier{
					{Name: "Extended Range", Cost: 200, RangeMultiplier: 1.5, Description: "Increases support range by 50%"},
					{Name: "Wide Support", Cost: 500, RangeMultiplier: 2.5, Description: "More than doubles support range"},
					{Name: "Global Support", Cost: 1000, RangeMultiplier: 10.0, Description: "Supports all towers on the map"},
				},
				Path2: []UpgradeTier{
					{Name: "Enhanced Buff", Cost: 300, BuffMultiplier: 1.5, Description: "Increases buff strength by 50%"},
					{Name: "Powerful Buff", Cost: 600, BuffMultiplier: 2.0, Description: "Doubles the buff effect"},
					{Name: "Ultimate Buff", Cost: 1200, BuffMultiplier: 3.0, AddsSpecialAbility: true, Description: "Triple buff with special ability boost"},
				},
			},
			Visuals: Visuals{Color: color.RGBA{46, 204, 113, 255}, RadiusFactor: 0.3, StrokeWidth: 2},
		},
	}

	lib := make(map[string]TowerDefinition, len(defs))
	for _, d := range defs {
		lib[d.ID] = d
	}
	return lib
}

func builtinEnemies() map[string]EnemyDefinition {
	defs := []EnemyDefinition{
		{
			ID: "ENEMY_BASIC", Name: "Basic Minion",
			Health: 50, Speed: 1.0, Reward: 10, Damage: 1,
			Visuals: Visuals{Color: color.RGBA{231, 76, 60, 255}, RadiusFactor: 0.18},
		},
		{
			ID: "ENEMY_FAST", Name: "Fast Minion",
			Health: 30, Speed: 2.0, Reward: 15, Damage: 1,
			Visuals: Visuals{Color: color.RGBA{241, 196, 15, 255}, RadiusFactor: 0.14},
		},
		{
			ID: "ENEMY_TANK", Name: "Tank Minion",
			Health: 200, Speed: 0.5, Reward: 30, Damage: 2,
			Visuals: Visuals{Color: color.RGBA{127, 140, 141, 255}, RadiusFactor: 0.24},
		},
		{
			ID: "ENEMY_BOSS", Name: "Boss Minion",
			Health: 1000, Speed: 0.7, Reward: 200, Damage: 10,
			Visuals: Visuals{Color: color.RGBA{142, 68, 173, 255}, RadiusFactor: 0.32, StrokeWidth: 2},
		},
	}

	lib := make(map[string]EnemyDefinition, len(defs))
	for _, d := range defs {
		lib[d.ID] = d
	}
	return lib
}
