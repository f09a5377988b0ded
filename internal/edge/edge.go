// Package edge отслеживает фронты нажатия отслеживаемого модификатора.
//
// Детектор различает два состояния, Up и Down, и реагирует только на
// переходы между ними: автоповтор зажатой клавиши не порождает событий.
package edge

import (
	"sync"

	"modclick/internal/config"
)

// Listener поставляет сырые события модификатора с уровня ОС.
// Реализация платформо-специфична.
type Listener interface {
	// Start начинает слушать модификатор. fn получает true при нажатии
	// и false при отпускании; автоповтор допускается.
	Start(mod config.Modifier, fn func(pressed bool)) error
	// Stop останавливает прослушивание. Повторный вызов безопасен.
	Stop() error
}

// Detector превращает фронты модификатора в намерения нажать/отпустить
// вторичную кнопку указателя. Намерения передаются дальше только когда
// ремаппинг включён; внутреннее состояние отслеживается всегда, чтобы
// выключение посреди зажатой клавиши не оставило детектор в Down.
type Detector struct {
	mu       sync.Mutex
	listener Listener
	mod      config.Modifier
	enabled  func() bool
	onDown   func()
	onUp     func()
	down     bool
	started  bool
}

// New создаёт детектор фронтов.
func New(listener Listener, enabled func() bool, onDown, onUp func()) *Detector {
	return &Detector{
		listener: listener,
		enabled:  enabled,
		onDown:   onDown,
		onUp:     onUp,
	}
}

// Start устанавливает слушателя модификатора. Если слушатель уже
// установлен, он сперва снимается - двойной регистрации не бывает.
func (d *Detector) Start(mod config.Modifier) error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		if err := d.Stop(); err != nil {
			return err
		}
		d.mu.Lock()
	}
	d.mod = mod
	d.down = false
	d.mu.Unlock()

	if err := d.listener.Start(mod, d.handle); err != nil {
		return err
	}

	d.mu.Lock()
	d.started = true
	d.mu.Unlock()
	return nil
}

// Stop снимает слушателя. Снятие неустановленного слушателя - no-op.
func (d *Detector) Stop() error {
	d.mu.Lock()
	if !d.started {
		d.mu.Unlock()
		return nil
	}
	d.started = false
	d.down = false
	d.mu.Unlock()

	return d.listener.Stop()
}

// Down сообщает, находится ли детектор в состоянии Down.
func (d *Detector) Down() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.down
}

// handle обрабатывает сырое событие модификатора.
func (d *Detector) handle(pressed bool) {
	d.mu.Lock()
	if pressed {
		if d.down {
			// Автоповтор зажатой клавиши
			d.mu.Unlock()
			return
		}
		d.down = true
		fire := d.enabled()
		d.mu.Unlock()
		if fire {
			d.onDown()
		}
		return
	}

	if !d.down {
		d.mu.Unlock()
		return
	}
	d.down = false
	fire := d.enabled()
	d.mu.Unlock()
	if fire {
		d.onUp()
	}
}
