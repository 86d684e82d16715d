package system

import (
	"minion-valley/internal/component"
	"minion-valley/internal/entity"
	"minion-valley/internal/event"
	"minion-valley/internal/types"
	"minion-valley/pkg/geom"
)

func newTestWorld() (*entity.ECS, *event.Dispatcher) {
	return entity.NewECS(), event.NewDispatcher()
}

// addEnemy создаёт неподвижного врага для боевых тестов.
func addEnemy(ecs *entity.ECS, pos geom.Vec2, health float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Point: pos}
	ecs.Healths[id] = &component.Health{Current: health, Max: health}
	ecs.Enemies[id] = &component.Enemy{DefID: "ENEMY_BASIC", Reward: 10, Damage: 1}
	return id
}

// addWalker создаёт врага, идущего по пути (для тестов движения
// и стратегий прицеливания).
func addWalker(ecs *entity.ECS, path []geom.Vec2, speed float64, currentIndex int) types.EntityID {
	id := addEnemy(ecs, path[0], 100)
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Paths[id] = &component.Path{Waypoints: path, CurrentIndex: currentIndex}
	return id
}

// countEvents подписывается на тип события и считает срабатывания.
func countEvents(dispatcher *event.Dispatcher, eventType event.EventType) *int {
	count := new(int)
	dispatcher.SubscribeFunc(eventType, func(event.Event) {
		*count++
	})
	return count
}
