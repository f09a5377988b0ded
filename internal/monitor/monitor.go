// Package monitor отслеживает смену активного приложения.
package monitor

import "modclick/internal/match"

// Handler получает сведения о новом активном приложении.
type Handler func(match.FrontApp)

// Source - подписка на уведомления ОС о смене активного приложения.
type Source interface {
	// Start начинает слушать смену активного приложения. Повторный
	// вызов заменяет предыдущую подписку.
	Start(fn Handler) error
	// Stop останавливает подписку. Повторный вызов безопасен.
	Stop() error
	// Current возвращает приложение, активное в данный момент.
	// Используется для стартового прогона политики без ожидания
	// настоящего события активации.
	Current() (match.FrontApp, error)
}

// New создаёт платформо-специфичный Source.
func New() Source {
	return newSource()
}
