//go:build windows

package monitor

import (
	"fmt"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"modclick/internal/match"
)

// pollInterval - период опроса активного окна.
const pollInterval = 500 * time.Millisecond

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
)

type windowsSource struct {
	mu      sync.Mutex
	stopCh  chan struct{}
	lastPID int
}

func newSource() Source {
	return &windowsSource{}
}

func (s *windowsSource) Start(fn Handler) error {
	s.mu.Lock()
	if s.stopCh != nil {
		close(s.stopCh)
	}
	s.stopCh = make(chan struct{})
	s.lastPID = 0
	stopCh := s.stopCh
	s.mu.Unlock()

	go s.poll(stopCh, fn)
	return nil
}

func (s *windowsSource) poll(stopCh chan struct{}, fn Handler) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			app, err := s.Current()
			if err != nil {
				continue
			}

			s.mu.Lock()
			changed := app.PID != s.lastPID
			if changed {
				s.lastPID = app.PID
			}
			s.mu.Unlock()

			if changed {
				fn(app)
			}
		}
	}
}

func (s *windowsSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
	return nil
}

func (s *windowsSource) Current() (match.FrontApp, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return match.FrontApp{}, fmt.Errorf("нет активного окна")
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return match.FrontApp{}, fmt.Errorf("PID активного окна не определён")
	}

	return match.FrontApp{PID: int(pid)}, nil
}
