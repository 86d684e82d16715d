// internal/component/projectile.go
package component

import (
	"image/color"

	"minion-valley/internal/types"
)

// Projectile представляет летящий снаряд. Урон фиксируется в момент
// выстрела (включая крит) и больше не пересчитывается.
type Projectile struct {
	TargetID  types.EntityID // слабая ссылка на цель
	Speed     float64
	Damage    float64
	Direction float64
	Color     color.RGBA

	SplashRadius float64 // 0 — только одиночная цель
	IsCritical   bool

	AppliesBurning   bool
	BurnDamagePerSec float64
	BurnDuration     float64

	SlowsTarget  bool
	SlowFactor   float64
	SlowDuration float64
}
