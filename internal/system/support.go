// internal/system/support.go
package system

import (
	"minion-valley/internal/component"
	"minion-valley/internal/defs"
	"minion-valley/internal/entity"
)

// SupportSystem обрабатывает башни поддержки: они не стреляют, а
// умножают урон атакующих башен в своём радиусе.
type SupportSystem struct {
	ecs *entity.ECS
}

func NewSupportSystem(ecs *entity.ECS) *SupportSystem {
	return &SupportSystem{ecs: ecs}
}

// RecalculateBuffs полностью пересчитывает баффы всех башен поддержки.
// Вызывается только при изменении состава башен (постройка, продажа,
// улучшение), а не каждый кадр.
func (s *SupportSystem) RecalculateBuffs() {
	for id := range s.ecs.Buffs {
		delete(s.ecs.Buffs, id)
	}

	for supportID, support := range s.ecs.Towers {
		if support.Class != defs.TowerSupport {
			continue
		}
		supportPos, ok := s.ecs.Positions[supportID]
		if !ok {
			continue
		}

		for targetID, target := range s.ecs.Towers {
			if targetID == supportID || target.Class == defs.TowerSupport {
				continue
			}
			targetPos, ok := s.ecs.Positions[targetID]
			if !ok {
				continue
			}
			if supportPos.Point.Dist(targetPos.Point) > support.Range {
				continue
			}

			buff, hasBuff := s.ecs.Buffs[targetID]
			if !hasBuff {
				buff = &component.Buff{DamageMultiplier: 1.0}
				s.ecs.Buffs[targetID] = buff
			}
			// Несколько аур перемножаются.
			buff.DamageMultiplier *= support.BuffMult
		}
	}
}
