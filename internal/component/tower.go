// component/tower.go
package component

import (
	"minion-valley/internal/defs"
	"minion-valley/internal/types"
	"minion-valley/pkg/gridmap"
)

// Индексы веток улучшений.
const (
	TrackPath1 = 0
	TrackPath2 = 1
)

// UpgradeTrack — одна из двух веток улучшений башни. Ветки никогда не
// удаляются: доведение одной до максимума помечает нетронутую вторую
// флагом Locked, и снять его уже нельзя.
type UpgradeTrack struct {
	Tiers  []defs.UpgradeTier
	Level  int
	Locked bool
}

// Tower — боевое состояние башни. Статы начинаются со значений из
// каталога и дальше меняются только улучшениями.
type Tower struct {
	DefID string
	Class defs.TowerClass
	Cell  gridmap.Cell // клетка, на которой стоит башня
	Cost  int          // цена покупки, база для возврата при продаже

	Damage       float64
	Range        float64
	Cooldown     float64
	SplashRadius float64
	BuffMult     float64 // для башен поддержки

	Tracks [2]UpgradeTrack

	Strategy     defs.TargetingStrategy
	TargetID     types.EntityID // слабая ссылка: перепроверяется каждый кадр
	LastShotTime float64        // игровое время последнего выстрела
	Angle        float64

	AddsBurning        bool
	BurningDamageMult  float64
	AddsCritical       bool
	CriticalChance     float64
	AddsSpecialAbility bool

	IsSelected bool // только для UI (показ радиуса)
}

// NewTower создаёт башню из определения каталога. Тип разрешается
// один раз здесь; в горячем цикле строковых поисков нет.
func NewTower(def defs.TowerDefinition, cell gridmap.Cell) *Tower {
	return &Tower{
		DefID:             def.ID,
		Class:             def.Class,
		Cell:              cell,
		Cost:              def.Cost,
		Damage:            def.Damage,
		Range:             def.Range,
		Cooldown:          def.Cooldown,
		SplashRadius:      def.SplashRadius,
		BuffMult:          def.BuffMult,
		BurningDamageMult: 1.0,
		CriticalChance:    0,
		Strategy:          defs.TargetClosest,
		Tracks: [2]UpgradeTrack{
			{Tiers: def.Upgrades.Path1},
			{Tiers: def.Upgrades.Path2},
		},
	}
}

// CanUpgrade сообщает, доступно ли следующее улучшение ветки.
func (t *Tower) CanUpgrade(track int) bool {
	if track < 0 || track > 1 {
		return false
	}
	tr := &t.Tracks[track]
	return !tr.Locked && tr.Level < len(tr.Tiers)
}

// UpgradeCost возвращает цену следующего улучшения ветки,
// или 0, если улучшений больше нет.
func (t *Tower) UpgradeCost(track int) int {
	if !t.CanUpgrade(track) {
		return 0
	}
	tr := &t.Tracks[track]
	return tr.Tiers[tr.Level].Cost
}

// Upgrade применяет следующее улучшение ветки. Возвращает false, если
// ветка заблокирована или уже на максимуме; состояние при этом не меняется.
func (t *Tower) Upgrade(track int) bool {
	if !t.CanUpgrade(track) {
		return false
	}
	tr := &t.Tracks[track]
	tier := tr.Tiers[tr.Level]

	if tier.DamageMultiplier != 0 {
		t.Damage *= tier.DamageMultiplier
	}
	if tier.RangeMultiplier != 0 {
		t.Range *= tier.RangeMultiplier
	}
	if tier.CooldownMultiplier != 0 {
		t.Cooldown *= tier.CooldownMultiplier
	}
	if tier.SplashRadiusMultiplier != 0 {
		t.SplashRadius *= tier.SplashRadiusMultiplier
	}
	if tier.BuffMultiplier != 0 {
		t.BuffMult = tier.BuffMultiplier
	}
	if tier.AddsBurning {
		t.AddsBurning = true
	}
	if tier.BurningDamageMultiplier != 0 {
		t.BurningDamageMult *= tier.BurningDamageMultiplier
	}
	if tier.AddsCritical {
		t.AddsCritical = true
	}
	if tier.CriticalChance != 0 {
		t.CriticalChance = tier.CriticalChance
	}
	if tier.AddsSpecialAbility {
		t.AddsSpecialAbility = true
	}

	tr.Level++

	// Доведение ветки до максимума навсегда закрывает вторую,
	// если игрок в неё ещё не вкладывался.
	if tr.Level == len(tr.Tiers) {
		other := &t.Tracks[1-track]
		if other.Level == 0 {
			other.Locked = true
		}
	}
	return true
}
