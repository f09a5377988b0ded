//go:build linux

package edge

import (
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/holoplot/go-evdev"

	"modclick/internal/config"
)

var modifierCodes = map[config.Modifier][]evdev.EvCode{
	config.ModCtrl:  {evdev.KEY_LEFTCTRL, evdev.KEY_RIGHTCTRL},
	config.ModShift: {evdev.KEY_LEFTSHIFT, evdev.KEY_RIGHTSHIFT},
	config.ModAlt:   {evdev.KEY_LEFTALT, evdev.KEY_RIGHTALT},
	config.ModSuper: {evdev.KEY_LEFTMETA, evdev.KEY_RIGHTMETA},
}

type linuxListener struct {
	mu      sync.Mutex
	devices []*evdev.InputDevice
	wg      sync.WaitGroup
	stopped bool
}

// NewListener создаёт слушателя модификатора поверх evdev.
// Требует доступа на чтение к /dev/input (группа input или root).
func NewListener() Listener {
	return &linuxListener{}
}

func (l *linuxListener) Start(mod config.Modifier, fn func(bool)) error {
	codes, ok := modifierCodes[mod]
	if !ok {
		return fmt.Errorf("модификатор %s не поддерживается на Linux", mod)
	}

	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return fmt.Errorf("не удалось перечислить устройства ввода: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = false

	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}
		if !hasKeys(dev, codes) {
			dev.Close()
			continue
		}

		l.devices = append(l.devices, dev)
		l.wg.Add(1)
		go l.readLoop(dev, codes, fn)
	}

	if len(l.devices) == 0 {
		return fmt.Errorf("не найдено клавиатур с модификатором %s", mod)
	}
	return nil
}

// hasKeys проверяет, что устройство сообщает хотя бы один из кодов.
func hasKeys(dev *evdev.InputDevice, codes []evdev.EvCode) bool {
	if !slices.Contains(dev.CapableTypes(), evdev.EV_KEY) {
		return false
	}
	capable := dev.CapableEvents(evdev.EV_KEY)
	for _, c := range codes {
		if slices.Contains(capable, c) {
			return true
		}
	}
	return false
}

// readLoop читает события устройства, пока его не закроют.
func (l *linuxListener) readLoop(dev *evdev.InputDevice, codes []evdev.EvCode, fn func(bool)) {
	defer l.wg.Done()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			l.mu.Lock()
			stopped := l.stopped
			l.mu.Unlock()
			if !stopped {
				log.Printf("Чтение устройства ввода прервано: %v", err)
			}
			return
		}
		if ev.Type != evdev.EV_KEY || !slices.Contains(codes, ev.Code) {
			continue
		}
		// value: 0 - отпущена, 1 - нажата, 2 - автоповтор
		fn(ev.Value != 0)
	}
}

func (l *linuxListener) Stop() error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return nil
	}
	l.stopped = true
	devices := l.devices
	l.devices = nil
	l.mu.Unlock()

	for _, dev := range devices {
		dev.Close()
	}
	l.wg.Wait()
	return nil
}
