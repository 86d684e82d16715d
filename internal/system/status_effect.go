// internal/system/status_effect.go
package system

import (
	"minion-valley/internal/component"
	"minion-valley/internal/entity"
	"minion-valley/internal/event"
	"minion-valley/internal/types"
)

// StatusEffectSystem управляет жизненным циклом эффектов: поджигом и замедлением.
type StatusEffectSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewStatusEffectSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, dispatcher: dispatcher}
}

// Update обрабатывает все активные эффекты. Поджиг способен убить врага
// сам по себе, без участия снарядов.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, burn := range s.ecs.Burns {
		if _, ok := s.ecs.Enemies[id]; !ok {
			delete(s.ecs.Burns, id)
			continue
		}

		if ApplyDamage(s.ecs, s.dispatcher, id, burn.DamagePerSec*deltaTime) {
			continue // RemoveEntity уже снял эффект
		}

		burn.Timer -= deltaTime
		if burn.Timer <= 0 {
			delete(s.ecs.Burns, id)
		}
	}

	for id, slow := range s.ecs.Slows {
		slow.Timer -= deltaTime
		if slow.Timer <= 0 {
			delete(s.ecs.Slows, id)
		}
	}
}

// ApplyBurning накладывает поджиг. Повторный поджиг не суммируется:
// берётся максимальный урон в секунду и максимальная длительность.
func ApplyBurning(ecs *entity.ECS, id types.EntityID, damagePerSec, duration float64) {
	if _, ok := ecs.Enemies[id]; !ok {
		return
	}
	if burn, ok := ecs.Burns[id]; ok {
		burn.DamagePerSec = max(burn.DamagePerSec, damagePerSec)
		burn.Timer = max(burn.Timer, duration)
		return
	}
	ecs.Burns[id] = &component.BurnEffect{DamagePerSec: damagePerSec, Timer: duration}
}

// ApplySlow накладывает замедление: побеждает сильнейший фактор,
// длительность берётся максимальная.
func ApplySlow(ecs *entity.ECS, id types.EntityID, factor, duration float64) {
	if _, ok := ecs.Enemies[id]; !ok {
		return
	}
	if slow, ok := ecs.Slows[id]; ok {
		slow.Factor = min(slow.Factor, factor)
		slow.Timer = max(slow.Timer, duration)
		return
	}
	ecs.Slows[id] = &component.SlowEffect{Factor: factor, Timer: duration}
}
