package component

// Health — компонент здоровья. Current никогда не превышает Max.
type Health struct {
	Current float64
	Max     float64
}
