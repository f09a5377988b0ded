package toggle

import "testing"

// fakeStore запоминает все вызовы SaveState.
type fakeStore struct {
	saves []savedState
}

type savedState struct {
	enabled    bool
	lastManual bool
}

func (f *fakeStore) SaveState(enabled, lastManual bool) {
	f.saves = append(f.saves, savedState{enabled, lastManual})
}

func TestSetIdempotent(t *testing.T) {
	store := &fakeStore{}
	st := New(false, false, store)

	var notified int
	st.Subscribe(func(Change) { notified++ })

	st.Set(true, OriginUser)
	st.Set(true, OriginUser)

	if notified != 1 {
		t.Errorf("двойная установка одного значения: %d уведомлений, ожидалось 1", notified)
	}
	if len(store.saves) != 1 {
		t.Errorf("двойная установка одного значения: %d записей, ожидалась 1", len(store.saves))
	}
}

func TestOriginGuard(t *testing.T) {
	t.Run("политика не трогает ручное состояние", func(t *testing.T) {
		store := &fakeStore{}
		st := New(false, false, store)

		st.Set(true, OriginPolicy)
		if !st.Enabled() {
			t.Fatal("состояние не включилось")
		}
		if st.LastManual() {
			t.Error("запись политики изменила lastManual")
		}
		if got := store.saves[len(store.saves)-1]; got.enabled != true || got.lastManual != false {
			t.Errorf("сохранено %+v", got)
		}
	})

	t.Run("пользователь всегда обновляет ручное состояние", func(t *testing.T) {
		st := New(false, false, &fakeStore{})

		st.Set(true, OriginUser)
		if !st.LastManual() {
			t.Error("пользовательская запись должна обновлять lastManual")
		}
		st.Set(false, OriginUser)
		if st.LastManual() {
			t.Error("lastManual должен следовать за пользовательской записью")
		}
	})

	t.Run("пользовательская запись того же значения синхронизирует lastManual", func(t *testing.T) {
		// Политика включила ремаппинг, lastManual остался false.
		st := New(true, false, &fakeStore{})

		var notified int
		st.Subscribe(func(Change) { notified++ })

		st.Set(true, OriginUser)
		if !st.LastManual() {
			t.Error("lastManual должен обновиться")
		}
		if notified != 0 {
			t.Error("значение не менялось, уведомлений быть не должно")
		}
	})
}

func TestToggle(t *testing.T) {
	st := New(false, false, &fakeStore{})

	if got := st.Toggle(OriginUser); !got {
		t.Error("Toggle из false должен вернуть true")
	}
	if got := st.Toggle(OriginUser); got {
		t.Error("Toggle из true должен вернуть false")
	}
	if st.LastManual() {
		t.Error("lastManual должен быть false после второго Toggle")
	}
}

func TestChangeCarriesOrigin(t *testing.T) {
	st := New(false, false, &fakeStore{})

	var last Change
	st.Subscribe(func(c Change) { last = c })

	st.Set(true, OriginPolicy)
	if last.Origin != OriginPolicy || !last.Enabled {
		t.Errorf("уведомление %+v", last)
	}
	st.Set(false, OriginUser)
	if last.Origin != OriginUser || last.Enabled {
		t.Errorf("уведомление %+v", last)
	}
}

func TestUnsubscribe(t *testing.T) {
	st := New(false, false, &fakeStore{})

	var notified int
	id := st.Subscribe(func(Change) { notified++ })
	st.Set(true, OriginUser)
	st.Unsubscribe(id)
	st.Unsubscribe(id) // повторно - no-op
	st.Set(false, OriginUser)

	if notified != 1 {
		t.Errorf("после Unsubscribe: %d уведомлений, ожидалось 1", notified)
	}
}
