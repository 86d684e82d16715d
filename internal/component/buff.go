package component

// Buff — суммарный множитель урона от башен поддержки в радиусе.
type Buff struct {
	DamageMultiplier float64
}
