//go:build linux

package monitor

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"modclick/internal/match"
)

// pollInterval - период опроса активного окна через xprop.
const pollInterval = 500 * time.Millisecond

type linuxSource struct {
	mu      sync.Mutex
	stopCh  chan struct{}
	lastPID int
}

func newSource() Source {
	return &linuxSource{}
}

func (s *linuxSource) Start(fn Handler) error {
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

func (s *linuxSource) poll(stopCh chan struct{}, fn Handler) {
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

func (s *linuxSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
	return nil
}

func (s *linuxSource) Current() (match.FrontApp, error) {
	out, err := exec.Command("xprop", "-root", "_NET_ACTIVE_WINDOW").Output()
	if err != nil {
		return match.FrontApp{}, fmt.Errorf("xprop не выполнился (нет X11?): %w", err)
	}

	windowID, err := parseActiveWindow(string(out))
	if err != nil {
		return match.FrontApp{}, err
	}

	out, err = exec.Command("xprop", "-id", windowID, "_NET_WM_PID", "WM_CLASS").Output()
	if err != nil {
		return match.FrontApp{}, fmt.Errorf("xprop для окна %s: %w", windowID, err)
	}

	pid, name := parseWindowProps(string(out))
	if pid == 0 {
		return match.FrontApp{}, fmt.Errorf("окно %s не сообщает _NET_WM_PID", windowID)
	}

	return match.FrontApp{PID: pid, Name: name}, nil
}

// parseActiveWindow извлекает идентификатор окна из вывода
// "_NET_ACTIVE_WINDOW(WINDOW): window id # 0x3c00007".
func parseActiveWindow(out string) (string, error) {
	fields := strings.Fields(out)
	if len(fields) < 5 {
		return "", fmt.Errorf("неожиданный вывод xprop: %q", strings.TrimSpace(out))
	}
	id := fields[len(fields)-1]
	if !strings.HasPrefix(id, "0x") || id == "0x0" {
		return "", fmt.Errorf("нет активного окна")
	}
	return id, nil
}

// parseWindowProps извлекает PID и имя класса окна из вывода xprop.
func parseWindowProps(out string) (pid int, name string) {
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "_NET_WM_PID(CARDINAL) = "); ok {
			pid, _ = strconv.Atoi(strings.TrimSpace(rest))
			continue
		}
		if rest, ok := strings.CutPrefix(line, "WM_CLASS(STRING) = "); ok {
			// WM_CLASS(STRING) = "instance", "Class"
			parts := strings.Split(rest, ",")
			last := strings.TrimSpace(parts[len(parts)-1])
			name = strings.Trim(last, `"`)
		}
	}
	return pid, name
}
