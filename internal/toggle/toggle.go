// Package toggle хранит каноническое состояние ремаппинга.
//
// Состояние меняют и пользователь (меню, горячая клавиша), и политика
// автопереключения. Каждая запись несёт явный источник (Origin), по
// которому решается, обновлять ли последнее ручное состояние.
package toggle

import "sync"

// Origin - источник изменения состояния.
type Origin int

const (
	// OriginUser - действие пользователя (меню или горячая клавиша).
	OriginUser Origin = iota
	// OriginPolicy - решение политики автопереключения.
	OriginPolicy
)

// Change - уведомление об изменении состояния.
type Change struct {
	Enabled bool
	Origin  Origin
}

// Listener получает уведомления об изменениях состояния.
type Listener func(Change)

// Store сохраняет состояние между запусками. Запись синхронная.
type Store interface {
	SaveState(enabled, lastManual bool)
}

// State - каноническое состояние ремаппинга с рассылкой изменений.
type State struct {
	mu         sync.Mutex
	enabled    bool
	lastManual bool
	store      Store
	listeners  map[int]Listener
	nextID     int
}

// New создаёт состояние с начальными значениями из хранилища.
func New(enabled, lastManual bool, store Store) *State {
	return &State{
		enabled:    enabled,
		lastManual: lastManual,
		store:      store,
		listeners:  make(map[int]Listener),
	}
}

// Enabled возвращает текущее состояние ремаппинга.
func (s *State) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// LastManual возвращает последнее состояние, заданное пользователем.
func (s *State) LastManual() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastManual
}

// Set устанавливает состояние. Пользовательская запись дополнительно
// запоминается как последнее ручное состояние; запись политики - нет.
// Повторная установка того же значения не рассылает уведомлений.
func (s *State) Set(enabled bool, origin Origin) {
	s.mu.Lock()

	changed := s.enabled != enabled
	manualChanged := origin == OriginUser && s.lastManual != enabled

	if !changed && !manualChanged {
		s.mu.Unlock()
		return
	}

	s.enabled = enabled
	if origin == OriginUser {
		s.lastManual = enabled
	}
	// Сохраняем до выхода из-под мьютекса: следующая смена активного
	// приложения должна видеть уже записанное состояние.
	if s.store != nil {
		s.store.SaveState(s.enabled, s.lastManual)
	}

	var fns []Listener
	if changed {
		fns = make([]Listener, 0, len(s.listeners))
		for _, fn := range s.listeners {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(Change{Enabled: enabled, Origin: origin})
	}
}

// Toggle инвертирует состояние и возвращает новое значение.
func (s *State) Toggle(origin Origin) bool {
	s.mu.Lock()
	next := !s.enabled
	s.mu.Unlock()
	s.Set(next, origin)
	return next
}

// Subscribe регистрирует слушателя и возвращает его идентификатор.
func (s *State) Subscribe(fn Listener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return id
}

// Unsubscribe удаляет слушателя. Повторное удаление безопасно.
func (s *State) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}
