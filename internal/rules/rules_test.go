package rules

import "testing"

func TestDecode(t *testing.T) {
	cases := []struct {
		raw  string
		kind Kind
		val  string
	}{
		{"com.valvesoftware.steam", KindBundleID, "com.valvesoftware.steam"},
		{"proc:java", KindProcessExact, "java"},
		{"proc~game", KindProcessContains, "game"},
		{"proc:", KindProcessExact, ""},
		{"proc~", KindProcessContains, ""},
		// Строки короче префикса не должны схлопываться в proc-правила
		{"proc", KindBundleID, "proc"},
		{"pro", KindBundleID, "pro"},
		{"proc:proc~x", KindProcessExact, "proc~x"},
	}

	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			r := Decode(c.raw)
			if r.Kind != c.kind || r.Value != c.val {
				t.Errorf("Decode(%q) = {%v %q}, ожидалось {%v %q}", c.raw, r.Kind, r.Value, c.kind, c.val)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, raw := range []string{"com.apple.Safari", "proc:java", "proc~minecraft"} {
		if got := Decode(raw).Encode(); got != raw {
			t.Errorf("Encode(Decode(%q)) = %q", raw, got)
		}
	}
}

func TestIsDuplicate(t *testing.T) {
	existing := []string{"proc:java", "com.valvesoftware.steam", "proc~game"}

	t.Run("имя процесса без учёта регистра", func(t *testing.T) {
		if !IsDuplicate(existing, "proc:JAVA") {
			t.Error("proc:JAVA должен считаться дубликатом proc:java")
		}
	})

	t.Run("bundle id с учётом регистра", func(t *testing.T) {
		if !IsDuplicate(existing, "com.valvesoftware.steam") {
			t.Error("точный bundle id должен считаться дубликатом")
		}
		if IsDuplicate(existing, "com.Valvesoftware.Steam") {
			t.Error("bundle id сравнивается байт в байт")
		}
	})

	t.Run("разные виды не пересекаются", func(t *testing.T) {
		if IsDuplicate(existing, "proc~java") {
			t.Error("proc~java не дубликат proc:java")
		}
		if IsDuplicate(existing, "java") {
			t.Error("bundle id java не дубликат proc:java")
		}
	})

	t.Run("нет совпадений", func(t *testing.T) {
		if IsDuplicate(existing, "com.other.app") {
			t.Error("новый bundle id не должен считаться дубликатом")
		}
	})
}
