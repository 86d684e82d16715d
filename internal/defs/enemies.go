// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  float64 `json:"health"`
	Speed   float64 `json:"speed"`  // в "пикселях за кадр", см. config.FrameRateScale
	Reward  int     `json:"reward"` // монеты за убийство
	Damage  int     `json:"damage"` // потеря жизней при проходе
	Visuals Visuals `json:"visuals"`
}
