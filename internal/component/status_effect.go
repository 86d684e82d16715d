// internal/component/status_effect.go
package component

// BurnEffect indicates that an entity takes damage over time.
type BurnEffect struct {
	DamagePerSec float64
	Timer        float64 // How much time is left for the effect.
}

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Factor float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
	Timer  float64 // How much time is left for the effect.
}
