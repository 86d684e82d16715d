// internal/entity/ecs.go
package entity

import (
	"minion-valley/internal/component"
	"minion-valley/internal/types"
)

// ECS владеет всеми живыми сущностями через покомпонентные коллекции.
// Башни и снаряды держат только EntityID цели, никогда не владеют ею.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
	Burns       map[types.EntityID]*component.BurnEffect
	Slows       map[types.EntityID]*component.SlowEffect
	Buffs       map[types.EntityID]*component.Buff
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Burns:       make(map[types.EntityID]*component.BurnEffect),
		Slows:       make(map[types.EntityID]*component.SlowEffect),
		Buffs:       make(map[types.EntityID]*component.Buff),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех коллекций. Идентификаторы не
// переиспользуются, поэтому висящие ссылки на id безопасно дают промах.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Burns, id)
	delete(ecs.Slows, id)
	delete(ecs.Buffs, id)
}
