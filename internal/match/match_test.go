package match

import (
	"errors"
	"testing"

	"modclick/internal/rules"
)

func fixedLookup(name string) ProcessLookup {
	return func(int) (string, error) { return name, nil }
}

func failingLookup(int) (string, error) {
	return "", errors.New("процесс уже завершился")
}

func TestMatchOrder(t *testing.T) {
	t.Run("bundle id раньше proc-правил", func(t *testing.T) {
		m := NewWithLookup(fixedLookup("steam"))
		rs := rules.DecodeAll([]string{"proc:steam", "com.valvesoftware.steam"})

		res := m.Match(FrontApp{BundleID: "com.valvesoftware.steam", PID: 1, Name: "Steam"}, rs)
		if !res.IsMatch || res.Kind != rules.KindBundleID {
			t.Errorf("ожидалось совпадение по bundle id, получено %+v", res)
		}
		if res.Label != "Steam" {
			t.Errorf("метка = %q, ожидалось локализованное имя", res.Label)
		}
	})

	t.Run("точное имя раньше подстроки", func(t *testing.T) {
		m := NewWithLookup(fixedLookup("java"))
		rs := rules.DecodeAll([]string{"proc~jav", "proc:java"})

		res := m.Match(FrontApp{PID: 1}, rs)
		if !res.IsMatch || res.Kind != rules.KindProcessExact {
			t.Errorf("точное правило должно побеждать подстроку, получено %+v", res)
		}
		if res.Label != "java" {
			t.Errorf("метка = %q", res.Label)
		}
	})

	t.Run("внутри группы побеждает первое добавленное", func(t *testing.T) {
		m := NewWithLookup(fixedLookup("minecraft-launcher"))
		rs := rules.DecodeAll([]string{"proc~minecraft", "proc~craft"})

		res := m.Match(FrontApp{PID: 1}, rs)
		if res.Label != "minecraft-launcher (minecraft)" {
			t.Errorf("метка = %q", res.Label)
		}
	})
}

func TestMatchCase(t *testing.T) {
	t.Run("имя процесса без учёта регистра", func(t *testing.T) {
		m := NewWithLookup(fixedLookup("Java"))
		rs := rules.DecodeAll([]string{"proc:java"})
		if !m.Match(FrontApp{PID: 1}, rs).IsMatch {
			t.Error("proc:java должен совпадать с процессом Java")
		}
	})

	t.Run("bundle id с учётом регистра", func(t *testing.T) {
		m := NewWithLookup(fixedLookup(""))
		rs := rules.DecodeAll([]string{"com.valvesoftware.steam"})
		res := m.Match(FrontApp{BundleID: "com.Valvesoftware.Steam", PID: 1}, rs)
		if res.IsMatch {
			t.Error("bundle id сравнивается байт в байт")
		}
	})
}

func TestMatchLookupFailure(t *testing.T) {
	m := NewWithLookup(failingLookup)

	t.Run("proc-правила пропускаются", func(t *testing.T) {
		rs := rules.DecodeAll([]string{"proc:java", "proc~game"})
		if m.Match(FrontApp{PID: 999}, rs).IsMatch {
			t.Error("при сбое поиска процесса совпадения быть не должно")
		}
	})

	t.Run("bundle-правила работают без поиска", func(t *testing.T) {
		rs := rules.DecodeAll([]string{"com.apple.Safari"})
		res := m.Match(FrontApp{BundleID: "com.apple.Safari", PID: 999}, rs)
		if !res.IsMatch {
			t.Error("совпадение по bundle id не зависит от таблицы процессов")
		}
		if res.Label != "com.apple.Safari" {
			t.Errorf("без имени метка - сам bundle id, получено %q", res.Label)
		}
	})
}

func TestMatchNoRules(t *testing.T) {
	calls := 0
	m := NewWithLookup(func(int) (string, error) {
		calls++
		return "java", nil
	})

	res := m.Match(FrontApp{BundleID: "a.b.c", PID: 1}, nil)
	if res.IsMatch {
		t.Error("пустой список правил не совпадает ни с чем")
	}
	if calls != 0 {
		t.Error("без proc-правил таблица процессов не опрашивается")
	}
}

func TestAppName(t *testing.T) {
	m := NewWithLookup(fixedLookup("steam"))

	if got := m.AppName(FrontApp{Name: "Steam", PID: 1}); got != "Steam" {
		t.Errorf("AppName = %q", got)
	}
	if got := m.AppName(FrontApp{PID: 1}); got != "steam" {
		t.Errorf("AppName = %q", got)
	}

	m2 := NewWithLookup(failingLookup)
	if got := m2.AppName(FrontApp{BundleID: "a.b.c", PID: 1}); got != "a.b.c" {
		t.Errorf("AppName = %q", got)
	}
}
