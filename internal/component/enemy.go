package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string  // ID из каталога врагов
	Reward     int     // монеты за убийство
	Damage     int     // потеря жизней, если враг дошёл до конца
	Angle      float64 // угол движения, для отрисовки
	ReachedEnd bool    // достиг ли враг конца пути
}
