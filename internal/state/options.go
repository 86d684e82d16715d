// internal/state/options.go
package state

import (
	"minion-valley/internal/defs"
	"minion-valley/internal/ui"
)

// Options — общие параметры запуска, прокидываются между состояниями.
type Options struct {
	TowerLib   map[string]defs.TowerDefinition
	EnemyLib   map[string]defs.EnemyDefinition
	TowerOrder []string // порядок кнопок строительства
	Seed       int64
	Faces      *ui.Faces
}
