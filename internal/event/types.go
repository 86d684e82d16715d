// internal/event/types.go
package event

const (
	WaveStarted     EventType = "WaveStarted"     // Волна началась
	WaveEnded       EventType = "WaveEnded"       // Волна закончилась
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился
	EnemyKilled     EventType = "EnemyKilled"     // Враг убит (Data: types.EntityID)
	EnemyReachedEnd EventType = "EnemyReachedEnd" // Враг дошёл до конца пути (Data: types.EntityID)
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена (Data: types.EntityID)
	TowerSold       EventType = "TowerSold"       // Башня продана (Data: types.EntityID)
	TowerUpgraded   EventType = "TowerUpgraded"   // Башня улучшена (Data: types.EntityID)
	GameOver        EventType = "GameOver"        // Жизни кончились
	GameWon         EventType = "GameWon"         // Все волны пережиты
)
