// Package inject порождает синтетические события вторичной кнопки указателя.
package inject

import "github.com/go-vgo/robotgo"

// Point - положение указателя в экранных координатах (начало сверху слева).
type Point struct {
	X int
	Y int
}

// Injector эмулирует нажатие и отпускание вторичной кнопки указателя.
// Операции best-effort: если ОС отвергла событие, повторов нет.
type Injector interface {
	// Cursor возвращает текущее положение указателя.
	Cursor() Point
	// Down нажимает вторичную кнопку в точке at.
	Down(at Point)
	// Up отпускает вторичную кнопку в точке at.
	Up(at Point)
}

type robotInjector struct{}

// New создаёт Injector поверх событийного слоя ОС.
func New() Injector {
	return robotInjector{}
}

func (robotInjector) Cursor() Point {
	x, y := robotgo.Location()
	return Point{X: x, Y: y}
}

func (robotInjector) Down(at Point) {
	robotgo.Move(at.X, at.Y)
	_ = robotgo.Toggle("right", "down")
}

func (robotInjector) Up(at Point) {
	robotgo.Move(at.X, at.Y)
	_ = robotgo.Toggle("right", "up")
}
