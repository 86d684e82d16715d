// internal/system/projectile.go
package system

import (
	"math"
	"sort"

	"minion-valley/internal/component"
	"minion-valley/internal/config"
	"minion-valley/internal/entity"
	"minion-valley/internal/event"
	"minion-valley/internal/types"
	"minion-valley/pkg/geom"
)

// ProjectileSystem двигает снаряды и разрешает попадания. Снаряд
// самонаводящийся: каждый кадр пересчитывает курс на текущую позицию
// цели; потерявший цель снаряд исчезает без эффекта.
type ProjectileSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			s.ecs.RemoveEntity(id)
			continue
		}

		targetPos, targetExists := s.ecs.Positions[proj.TargetID]
		if _, isEnemy := s.ecs.Enemies[proj.TargetID]; !isEnemy || !targetExists {
			// Цель пропала до попадания — никакого урона и эффектов.
			s.ecs.RemoveEntity(id)
			continue
		}

		proj.Direction = pos.Point.AngleTo(targetPos.Point)
		moveDistance := proj.Speed * config.FrameRateScale * deltaTime
		dist := pos.Point.Dist(targetPos.Point)

		if dist <= moveDistance || dist < config.ProjectileHitRadius {
			s.resolveImpact(proj, targetPos.Point)
			s.ecs.RemoveEntity(id)
			continue
		}

		pos.Point.X += math.Cos(proj.Direction) * moveDistance
		pos.Point.Y += math.Sin(proj.Direction) * moveDistance
	}
}

// resolveImpact наносит урон в точке попадания. Сплеш бьёт всех живых
// врагов в радиусе от позиции цели (включая саму цель) с линейным
// спадом: полный урон в центре, половина на краю радиуса.
func (s *ProjectileSystem) resolveImpact(proj *component.Projectile, impact geom.Vec2) {
	if proj.SplashRadius <= 0 {
		s.hit(proj.TargetID, proj, proj.Damage)
		return
	}

	for _, enemyID := range s.enemiesWithin(impact, proj.SplashRadius) {
		enemyPos := s.ecs.Positions[enemyID]
		falloff := 1.0 - 0.5*impact.Dist(enemyPos.Point)/proj.SplashRadius
		s.hit(enemyID, proj, proj.Damage*falloff)
	}
}

// hit применяет статусные эффекты и затем урон к одному врагу.
func (s *ProjectileSystem) hit(enemyID types.EntityID, proj *component.Projectile, damage float64) {
	if proj.AppliesBurning {
		ApplyBurning(s.ecs, enemyID, proj.BurnDamagePerSec, proj.BurnDuration)
	}
	if proj.SlowsTarget {
		ApplySlow(s.ecs, enemyID, proj.SlowFactor, proj.SlowDuration)
	}
	ApplyDamage(s.ecs, s.dispatcher, enemyID, damage)
}

// enemiesWithin возвращает живых врагов в радиусе от точки,
// отсортированных по EntityID для детерминированного порядка урона.
func (s *ProjectileSystem) enemiesWithin(center geom.Vec2, radius float64) []types.EntityID {
	var ids []types.EntityID
	for enemyID := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		if center.Dist(pos.Point) <= radius {
			ids = append(ids, enemyID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
