// internal/system/movement.go
package system

import (
	"minion-valley/internal/config"
	"minion-valley/internal/entity"
	"minion-valley/internal/event"
)

// MovementSystem ведёт врагов по путевым точкам. Скорость масштабируется
// замедлением и config.FrameRateScale; за кадр враг никогда не проскакивает
// текущую точку — он либо дотягивается до неё, либо идёт к ней.
type MovementSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}
		if path.CurrentIndex >= len(path.Waypoints) {
			continue
		}

		speed := vel.Speed
		if slow, isSlowed := s.ecs.Slows[id]; isSlowed {
			speed *= slow.Factor
		}
		moveDistance := speed * config.FrameRateScale * deltaTime

		target := path.Waypoints[path.CurrentIndex]
		delta := target.Sub(pos.Point)
		dist := delta.Len()

		if dist <= moveDistance {
			pos.Point = target
			path.CurrentIndex++
			if path.CurrentIndex >= len(path.Waypoints) {
				enemy.ReachedEnd = true
				s.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: id})
				s.ecs.RemoveEntity(id)
				continue
			}
		} else {
			step := delta.Normalize().Mul(moveDistance)
			pos.Point = pos.Point.Add(step)
		}

		enemy.Angle = pos.Point.AngleTo(target)
	}
}
