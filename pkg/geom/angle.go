// pkg/geom/angle.go
package geom

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Lerp выполняет стандартную линейную интерполяцию.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle интерполирует между двумя углами по кратчайшей дуге.
func LerpAngle(from, to, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}
