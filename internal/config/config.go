// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1224
	ScreenHeight = 640
	SidebarWidth = 200
	CellSize     = 64
	MaxDeltaTime = 0.06

	// FrameRateScale переводит скорости из "пикселей за кадр при 60 FPS"
	// в пиксели в секунду, чтобы движение не зависело от частоты кадров.
	FrameRateScale = 60.0

	StartingCoins = 500
	StartingLives = 100
	FinalWave     = 20

	// Продажа башни возвращает cost / SellRefundDivisor (целочисленно).
	SellRefundDivisor = 2

	// Параметры генерации волн. Номер волны w считается с единицы.
	WaveBasicBase        = 5   // базовых миньонов сверх прироста
	WaveBasicPerWave     = 2   // прирост базовых за волну
	WaveFastPerWave      = 2   // быстрых за каждую волну после WaveFastAfter
	WaveFastAfter        = 2   // быстрые появляются с волны 3
	WaveTankAfter        = 4   // танки появляются с волны 5
	BossWaveInterval     = 5   // босс в каждой волне, кратной этому числу
	WaveCooldown         = 10.0
	BaseSpawnInterval    = 1.0
	SpawnIntervalPerWave = 0.05
	MinSpawnInterval     = 0.5

	ProjectileSpeed     = 5.0  // в единицах "пиксели за кадр"
	ProjectileHitRadius = 20.0 // дистанция засчитывания попадания
	ProjectileRadius    = 5.0  // визуальный радиус

	TowerSelectionRadius = 40.0
	TowerTurnRate        = 10.0 // скорость доворота ствола, доля дуги в секунду

	// Крит удваивает урон снаряда в момент выстрела.
	CriticalDamageMultiplier = 2.0
	DefaultCriticalChance    = 0.1

	// Базовый урон поджига в секунду; множитель башни применяется сверху.
	BurningBaseDamagePerSec = 5.0
	BurningDuration         = 3.0

	HealthBarWidth  = 40.0
	HealthBarHeight = 5.0
)

var (
	BackgroundColor = color.RGBA{44, 62, 80, 255}
	PathColor       = color.RGBA{128, 128, 128, 255}
	GridLineColor   = color.RGBA{52, 73, 94, 255}
	SidebarColor    = color.RGBA{52, 73, 94, 255}

	HealthBarBackColor = color.RGBA{231, 76, 60, 255}
	HealthBarFillColor = color.RGBA{46, 204, 113, 255}
	BurningPipColor    = color.RGBA{255, 100, 0, 255}
	SlowPipColor       = color.RGBA{0, 200, 255, 255}

	TowerStrokeColor    = color.RGBA{236, 240, 241, 255}
	RangeRingColor      = color.RGBA{0, 255, 0, 160}
	PlacementOKColor    = color.RGBA{46, 204, 113, 128}
	PlacementBadColor   = color.RGBA{231, 76, 60, 128}
	ProjectileColor     = color.RGBA{241, 196, 15, 255}
	CritProjectileColor = color.RGBA{231, 76, 60, 255}

	TextColor      = color.RGBA{236, 240, 241, 255}
	HighlightColor = color.RGBA{241, 196, 15, 255}
	DangerColor    = color.RGBA{231, 76, 60, 255}
)
