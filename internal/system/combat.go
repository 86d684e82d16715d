// internal/system/combat.go
package system

import (
	"sort"

	"minion-valley/internal/component"
	"minion-valley/internal/config"
	"minion-valley/internal/defs"
	"minion-valley/internal/entity"
	"minion-valley/internal/types"
	"minion-valley/internal/utils"
	"minion-valley/pkg/geom"
)

// CombatSystem управляет прицеливанием и стрельбой башен.
//
// Состояния башни: без цели (поиск каждый кадр) → цель захвачена
// (сопровождение, пока цель жива и в радиусе) → выстрел по готовности
// кулдауна → снова сопровождение или поиск.
type CombatSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewCombatSystem(ecs *entity.ECS, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{ecs: ecs, rng: rng}
}

// candidate — враг в радиусе башни.
type candidate struct {
	id        types.EntityID
	dist      float64
	pathIndex int
}

func (s *CombatSystem) Update(deltaTime float64) {
	for id, tower := range s.ecs.Towers {
		// Башни поддержки не стреляют, их обсчитывает SupportSystem.
		if tower.Class == defs.TowerSupport {
			continue
		}

		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		if !s.targetValid(tower, pos.Point) {
			tower.TargetID = s.acquireTarget(tower, pos.Point)
		}
		if tower.TargetID == 0 {
			continue
		}

		targetPos := s.ecs.Positions[tower.TargetID]
		targetAngle := pos.Point.AngleTo(targetPos.Point)
		tower.Angle = geom.LerpAngle(tower.Angle, targetAngle, min(1, config.TowerTurnRate*deltaTime))

		if s.ecs.GameTime-tower.LastShotTime >= tower.Cooldown {
			s.fire(id, tower, pos.Point)
			tower.LastShotTime = s.ecs.GameTime
		}
	}
}

// targetValid проверяет слабую ссылку на цель: враг должен быть жив
// и находиться в радиусе.
func (s *CombatSystem) targetValid(tower *component.Tower, towerPos geom.Vec2) bool {
	if tower.TargetID == 0 {
		return false
	}
	if _, alive := s.ecs.Enemies[tower.TargetID]; !alive {
		return false
	}
	pos, ok := s.ecs.Positions[tower.TargetID]
	if !ok {
		return false
	}
	return towerPos.Dist(pos.Point) <= tower.Range
}

// acquireTarget выбирает цель по стратегии башни. Кандидаты обходятся
// в порядке возрастания EntityID, поэтому при равенстве побеждает
// наименьший идентификатор — выбор детерминирован.
func (s *CombatSystem) acquireTarget(tower *component.Tower, towerPos geom.Vec2) types.EntityID {
	candidates := s.enemiesInRange(towerPos, tower.Range)
	if len(candidates) == 0 {
		return 0
	}

	switch tower.Strategy {
	case defs.TargetFirst:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.pathIndex > best.pathIndex {
				best = c
			}
		}
		return best.id
	case defs.TargetLast:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.pathIndex < best.pathIndex {
				best = c
			}
		}
		return best.id
	case defs.TargetRandom:
		return candidates[s.rng.Intn(len(candidates))].id
	default: // TargetClosest и всё неизвестное
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.dist < best.dist {
				best = c
			}
		}
		return best.id
	}
}

func (s *CombatSystem) enemiesInRange(towerPos geom.Vec2, rangeRadius float64) []candidate {
	var candidates []candidate
	for enemyID, enemyPos := range s.ecs.Positions {
		if _, isEnemy := s.ecs.Enemies[enemyID]; !isEnemy {
			continue
		}
		dist := towerPos.Dist(enemyPos.Point)
		if dist > rangeRadius {
			continue
		}
		pathIndex := 0
		if path, ok := s.ecs.Paths[enemyID]; ok {
			pathIndex = path.CurrentIndex
		}
		candidates = append(candidates, candidate{id: enemyID, dist: dist, pathIndex: pathIndex})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].id < candidates[j].id })
	return candidates
}

// fire создаёт снаряд. Урон (включая крит и бафф поддержки) фиксируется
// здесь и дальше не меняется.
func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower, towerPos geom.Vec2) {
	damage := tower.Damage
	if buff, ok := s.ecs.Buffs[towerID]; ok {
		damage *= buff.DamageMultiplier
	}

	isCritical := false
	if tower.AddsCritical {
		chance := tower.CriticalChance
		if chance == 0 {
			chance = config.DefaultCriticalChance
		}
		if s.rng.Float64() < chance {
			damage *= config.CriticalDamageMultiplier
			isCritical = true
		}
	}

	projColor := config.ProjectileColor
	if isCritical {
		projColor = config.CritProjectileColor
	}

	targetPos := s.ecs.Positions[tower.TargetID]

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{Point: towerPos}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID:     tower.TargetID,
		Speed:        config.ProjectileSpeed,
		Damage:       damage,
		Direction:    towerPos.AngleTo(targetPos.Point),
		Color:        projColor,
		SplashRadius: tower.SplashRadius,
		IsCritical:   isCritical,
	}
	if tower.AddsBurning {
		proj := s.ecs.Projectiles[projID]
		proj.AppliesBurning = true
		proj.BurnDamagePerSec = config.BurningBaseDamagePerSec * tower.BurningDamageMult
		proj.BurnDuration = config.BurningDuration
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  projColor,
		Radius: config.ProjectileRadius,
	}
}
