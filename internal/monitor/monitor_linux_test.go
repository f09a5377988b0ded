//go:build linux

package monitor

import "testing"

func TestParseActiveWindow(t *testing.T) {
	t.Run("обычный вывод", func(t *testing.T) {
		id, err := parseActiveWindow("_NET_ACTIVE_WINDOW(WINDOW): window id # 0x3c00007\n")
		if err != nil {
			t.Fatal(err)
		}
		if id != "0x3c00007" {
			t.Errorf("id = %q", id)
		}
	})

	t.Run("нет активного окна", func(t *testing.T) {
		if _, err := parseActiveWindow("_NET_ACTIVE_WINDOW(WINDOW): window id # 0x0\n"); err == nil {
			t.Error("0x0 должен считаться отсутствием окна")
		}
	})

	t.Run("обрезанный вывод", func(t *testing.T) {
		if _, err := parseActiveWindow("_NET_ACTIVE_WINDOW:\n"); err == nil {
			t.Error("короткий вывод должен давать ошибку")
		}
	})
}

func TestParseWindowProps(t *testing.T) {
	out := "_NET_WM_PID(CARDINAL) = 4242\n" +
		"WM_CLASS(STRING) = \"steam\", \"Steam\"\n"

	pid, name := parseWindowProps(out)
	if pid != 4242 {
		t.Errorf("pid = %d", pid)
	}
	if name != "Steam" {
		t.Errorf("name = %q", name)
	}

	t.Run("без PID", func(t *testing.T) {
		pid, _ := parseWindowProps("WM_CLASS(STRING) = \"x\", \"X\"\n")
		if pid != 0 {
			t.Errorf("pid = %d", pid)
		}
	})
}
