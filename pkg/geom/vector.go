// pkg/geom/vector.go
package geom

import (
	"errors"
	"math"
)

// ErrDivByZero возвращается при делении вектора на нулевой скаляр.
var ErrDivByZero = errors.New("geom: division by zero scalar")

// Vec2 — двумерный вектор (позиции, направления, смещения).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul умножает вектор на скаляр.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div делит вектор на скаляр. Деление ровно на ноль — ошибка.
func (v Vec2) Div(s float64) (Vec2, error) {
	if s == 0 {
		return Vec2{}, ErrDivByZero
	}
	return Vec2{v.X / s, v.Y / s}, nil
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize возвращает единичный вектор того же направления.
// Нулевой вектор нормализуется в нулевой.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Dist — евклидово расстояние до другой точки.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

func (v Vec2) DistSq(o Vec2) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return dx*dx + dy*dy
}

// AngleTo возвращает угол (в радианах) от v к точке o.
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(o.Y-v.Y, o.X-v.X)
}
