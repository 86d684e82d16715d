// internal/system/wave.go
package system

import (
	"log"

	"minion-valley/internal/component"
	"minion-valley/internal/config"
	"minion-valley/internal/defs"
	"minion-valley/internal/entity"
	"minion-valley/internal/event"
	"minion-valley/internal/utils"
	"minion-valley/pkg/geom"
)

// WaveSystem генерирует волны и выпускает врагов из очереди спавна.
//
// Состояния: перерыв (между волнами) → спавн (очередь выпускается с
// интервалом spawnInterval) → перерыв, когда очередь пуста и живых
// врагов не осталось.
type WaveSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	enemyLib   map[string]defs.EnemyDefinition
	path       []geom.Vec2

	currentWave    int
	spawnQueue     []string // ID типов врагов в порядке выпуска
	spawnInterval  float64
	nextSpawnTime  float64
	waveInProgress bool
	cooldownStart  float64
	activeEnemies  int
}

func NewWaveSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, rng *utils.PRNGService,
	enemyLib map[string]defs.EnemyDefinition, path []geom.Vec2) *WaveSystem {
	ws := &WaveSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		rng:        rng,
		enemyLib:   enemyLib,
		path:       path,
		// Первая волна доступна сразу, без начального перерыва.
		cooldownStart: -config.WaveCooldown,
	}
	dispatcher.Subscribe(event.EnemyKilled, ws)
	dispatcher.Subscribe(event.EnemyReachedEnd, ws)
	return ws
}

// StartWave начинает следующую волну. Если волна уже идёт — ничего не
// делает и возвращает false.
func (s *WaveSystem) StartWave() bool {
	if s.waveInProgress {
		return false
	}
	s.currentWave++
	s.generateWave()
	s.waveInProgress = true
	s.nextSpawnTime = s.ecs.GameTime
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.currentWave})
	return true
}

// generateWave наполняет очередь спавна по номеру волны и перемешивает
// её для разнообразия. Состав волны задают константы config.Wave*.
func (s *WaveSystem) generateWave() {
	w := s.currentWave

	numBasic := config.WaveBasicBase + config.WaveBasicPerWave*w
	numFast := config.WaveFastPerWave * max(0, w-config.WaveFastAfter)
	numTank := max(0, w-config.WaveTankAfter)
	hasBoss := w%config.BossWaveInterval == 0

	s.spawnQueue = s.spawnQueue[:0]
	for i := 0; i < numBasic; i++ {
		s.spawnQueue = append(s.spawnQueue, "ENEMY_BASIC")
	}
	for i := 0; i < numFast; i++ {
		s.spawnQueue = append(s.spawnQueue, "ENEMY_FAST")
	}
	for i := 0; i < numTank; i++ {
		s.spawnQueue = append(s.spawnQueue, "ENEMY_TANK")
	}
	if hasBoss {
		s.spawnQueue = append(s.spawnQueue, "ENEMY_BOSS")
	}

	s.rng.Shuffle(len(s.spawnQueue), func(i, j int) {
		s.spawnQueue[i], s.spawnQueue[j] = s.spawnQueue[j], s.spawnQueue[i]
	})

	// Чем выше волна, тем чаще спавн, но не чаще минимального интервала.
	s.spawnInterval = config.BaseSpawnInterval - config.SpawnIntervalPerWave*float64(w)
	if s.spawnInterval < config.MinSpawnInterval {
		s.spawnInterval = config.MinSpawnInterval
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	if !s.waveInProgress {
		return
	}

	if len(s.spawnQueue) > 0 && s.ecs.GameTime >= s.nextSpawnTime {
		defID := s.spawnQueue[0]
		s.spawnQueue = s.spawnQueue[1:]
		s.spawnEnemy(defID)
		s.nextSpawnTime = s.ecs.GameTime + s.spawnInterval
	}

	if len(s.spawnQueue) == 0 && s.activeEnemies == 0 {
		s.waveInProgress = false
		s.cooldownStart = s.ecs.GameTime
		s.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: s.currentWave})
	}
}

func (s *WaveSystem) spawnEnemy(defID string) {
	def, ok := s.enemyLib[defID]
	if !ok {
		log.Printf("WaveSystem: enemy definition not found for ID %s", defID)
		return
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Point: s.path[0]}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.Path{Waypoints: s.path, CurrentIndex: 1}
	s.ecs.Healths[id] = &component.Health{Current: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:  def.ID,
		Reward: def.Reward,
		Damage: def.Damage,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.CellSize * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	s.activeEnemies++
	s.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

// CanStartNextWave сообщает, прошёл ли перерыв между волнами.
func (s *WaveSystem) CanStartNextWave(now float64) bool {
	if s.waveInProgress {
		return false
	}
	return now-s.cooldownStart >= config.WaveCooldown
}

// CooldownRemaining возвращает, сколько секунд осталось до следующей волны.
func (s *WaveSystem) CooldownRemaining(now float64) float64 {
	if s.waveInProgress {
		return 0
	}
	remaining := config.WaveCooldown - (now - s.cooldownStart)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *WaveSystem) CurrentWave() int {
	return s.currentWave
}

func (s *WaveSystem) WaveInProgress() bool {
	return s.waveInProgress
}

// EnemiesRemaining — живые враги плюс ещё не выпущенная очередь.
func (s *WaveSystem) EnemiesRemaining() int {
	return s.activeEnemies + len(s.spawnQueue)
}

// PendingQueue возвращает копию очереди спавна (для тестов и отладки).
func (s *WaveSystem) PendingQueue() []string {
	queue := make([]string, len(s.spawnQueue))
	copy(queue, s.spawnQueue)
	return queue
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyReachedEnd:
		s.activeEnemies--
	}
}
