// internal/defs/types.go
package defs

// TargetingStrategy defines how a tower picks its target among enemies in range.
type TargetingStrategy string

const (
	TargetClosest TargetingStrategy = "CLOSEST" // ближайший к башне
	TargetFirst   TargetingStrategy = "FIRST"   // дальше всех по пути
	TargetLast    TargetingStrategy = "LAST"    // ближе всех к началу пути
	TargetRandom  TargetingStrategy = "RANDOM"  // случайный в радиусе
)

// ValidStrategy reports whether s is one of the known strategies.
func ValidStrategy(s TargetingStrategy) bool {
	switch s {
	case TargetClosest, TargetFirst, TargetLast, TargetRandom:
		return true
	}
	return false
}
