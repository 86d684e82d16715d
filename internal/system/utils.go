// internal/system/utils.go
package system

import (
	"minion-valley/internal/entity"
	"minion-valley/internal/event"
	"minion-valley/internal/types"
)

// ApplyDamage наносит урон сущности. Здоровье не бывает отрицательным:
// при нуле сущность объявляется убитой (событие уходит до удаления,
// чтобы подписчики успели прочитать её компоненты) и снимается с арены.
// Возвращает true, если сущность погибла.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, id types.EntityID, damage float64) bool {
	health, ok := ecs.Healths[id]
	if !ok {
		return false
	}

	health.Current -= damage
	if health.Current > 0 {
		return false
	}
	health.Current = 0

	dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
	ecs.RemoveEntity(id)
	return true
}
