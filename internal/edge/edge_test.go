package edge

import (
	"testing"

	"modclick/internal/config"
)

// fakeListener отдаёт события напрямую в callback детектора.
type fakeListener struct {
	fn      func(bool)
	started int
	stopped int
}

func (f *fakeListener) Start(_ config.Modifier, fn func(bool)) error {
	f.fn = fn
	f.started++
	return nil
}

func (f *fakeListener) Stop() error {
	f.stopped++
	return nil
}

type recorder struct {
	downs int
	ups   int
}

func setup(t *testing.T, enabled *bool) (*fakeListener, *Detector, *recorder) {
	t.Helper()
	l := &fakeListener{}
	r := &recorder{}
	d := New(l,
		func() bool { return *enabled },
		func() { r.downs++ },
		func() { r.ups++ },
	)
	if err := d.Start(config.ModCtrl); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return l, d, r
}

func TestEdges(t *testing.T) {
	enabled := true
	l, _, r := setup(t, &enabled)

	l.fn(true)
	l.fn(false)

	if r.downs != 1 || r.ups != 1 {
		t.Errorf("нажатие/отпускание: downs=%d ups=%d", r.downs, r.ups)
	}
}

func TestAutoRepeatSuppressed(t *testing.T) {
	enabled := true
	l, _, r := setup(t, &enabled)

	l.fn(true)
	l.fn(true) // автоповтор
	l.fn(true)
	l.fn(false)

	if r.downs != 1 {
		t.Errorf("автоповтор дал %d нажатий, ожидалось 1", r.downs)
	}
	if r.ups != 1 {
		t.Errorf("ups=%d", r.ups)
	}
}

func TestSpuriousReleaseIgnored(t *testing.T) {
	enabled := true
	l, _, r := setup(t, &enabled)

	l.fn(false) // отпускание без нажатия
	if r.ups != 0 {
		t.Error("отпускание в состоянии Up не должно порождать событий")
	}
}

// Сценарий: ремаппинг выключен на всём протяжении зажатия - синтетических
// событий нет, внутреннее состояние возвращается в Up.
func TestDisabledWholeHold(t *testing.T) {
	enabled := false
	l, d, r := setup(t, &enabled)

	l.fn(true)
	if !d.Down() {
		t.Error("внутреннее состояние должно отслеживаться и при выключенном ремаппинге")
	}
	l.fn(false)

	if r.downs != 0 || r.ups != 0 {
		t.Errorf("при выключенном ремаппинге событий быть не должно: %+v", *r)
	}
	if d.Down() {
		t.Error("после отпускания детектор должен вернуться в Up")
	}
}

// Сценарий: пользователь выключил ремаппинг, не отпуская клавишу.
func TestDisabledMidHold(t *testing.T) {
	enabled := true
	l, d, r := setup(t, &enabled)

	l.fn(true)
	enabled = false
	l.fn(false)

	if r.downs != 1 {
		t.Errorf("downs=%d", r.downs)
	}
	if r.ups != 0 {
		t.Error("после выключения отпускание не передаётся инжектору")
	}
	if d.Down() {
		t.Error("внутреннее состояние должно сброситься в Up")
	}
}

func TestStartIdempotent(t *testing.T) {
	enabled := true
	l, d, _ := setup(t, &enabled)

	// Повторный Start снимает старого слушателя, а не дублирует регистрацию
	if err := d.Start(config.ModAlt); err != nil {
		t.Fatalf("повторный Start: %v", err)
	}
	if l.started != 2 || l.stopped != 1 {
		t.Errorf("started=%d stopped=%d", l.started, l.stopped)
	}

	if err := d.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := d.Stop(); err != nil {
		t.Fatalf("повторный Stop: %v", err)
	}
	if l.stopped != 2 {
		t.Errorf("повторный Stop не должен дёргать слушателя: stopped=%d", l.stopped)
	}
}

func TestStopResetsDown(t *testing.T) {
	enabled := true
	l, d, _ := setup(t, &enabled)

	l.fn(true)
	if err := d.Stop(); err != nil {
		t.Fatal(err)
	}
	if d.Down() {
		t.Error("Stop должен сбрасывать состояние в Up")
	}
}
