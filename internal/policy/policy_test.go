package policy

import (
	"testing"

	"modclick/internal/config"
	"modclick/internal/match"
	"modclick/internal/rules"
	"modclick/internal/toggle"
)

type nopStore struct{}

func (nopStore) SaveState(bool, bool) {}

func TestEvaluate(t *testing.T) {
	matched := match.Result{IsMatch: true}
	missed := match.Result{}

	cases := []struct {
		name       string
		res        match.Result
		enabled    bool
		lastManual bool
		behavior   config.Behavior
		want       Decision
	}{
		{"совпадение при выключенном", matched, false, false, config.BehaviorDisable, Decision{true, true}},
		{"совпадение при включённом - no-op", matched, true, false, config.BehaviorDisable, Decision{}},
		{"совпадение не зависит от behavior", matched, false, true, config.BehaviorFollowLast, Decision{true, true}},
		{"нет совпадения, disable, включено", missed, true, true, config.BehaviorDisable, Decision{true, false}},
		{"нет совпадения, disable, выключено - no-op", missed, false, true, config.BehaviorDisable, Decision{}},
		{"нет совпадения, followLast, расходятся", missed, true, false, config.BehaviorFollowLast, Decision{true, false}},
		{"нет совпадения, followLast, восстановление", missed, false, true, config.BehaviorFollowLast, Decision{true, true}},
		{"нет совпадения, followLast, совпадают - no-op", missed, true, true, config.BehaviorFollowLast, Decision{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Evaluate(c.res, c.enabled, c.lastManual, c.behavior)
			if got != c.want {
				t.Errorf("Evaluate = %+v, ожидалось %+v", got, c.want)
			}
		})
	}
}

// evaluateFront прогоняет смену активного приложения через matcher и политику.
func evaluateFront(m *match.Matcher, st *toggle.State, rs []rules.Rule, app match.FrontApp, behavior config.Behavior) {
	Run(m.Match(app, rs), st, behavior)
}

// Сценарий: пользователь вручную включил ремаппинг на постороннем
// приложении, переключился на Steam и обратно при behavior=disable.
func TestScenarioDisable(t *testing.T) {
	rs := rules.DecodeAll([]string{"com.valvesoftware.steam"})
	m := match.NewWithLookup(func(int) (string, error) { return "other", nil })
	st := toggle.New(false, false, nopStore{})

	steam := match.FrontApp{BundleID: "com.valvesoftware.steam", PID: 10}
	other := match.FrontApp{BundleID: "com.other.app", PID: 20}

	// Пользователь включает вручную на постороннем приложении
	st.Set(true, toggle.OriginUser)

	evaluateFront(m, st, rs, steam, config.BehaviorDisable)
	if !st.Enabled() {
		t.Fatal("на совпавшем приложении состояние должно остаться включённым")
	}

	evaluateFront(m, st, rs, other, config.BehaviorDisable)
	if st.Enabled() {
		t.Fatal("на несовпавшем приложении behavior=disable должен выключить")
	}
	if !st.LastManual() {
		t.Fatal("решение политики не должно трогать lastManual")
	}
}

// Сценарий: followLast с lastManual=true - переключение на посторонний
// процесс не меняет видимого состояния.
func TestScenarioFollowLast(t *testing.T) {
	rs := rules.DecodeAll([]string{"proc:java"})
	procName := "java"
	m := match.NewWithLookup(func(int) (string, error) { return procName, nil })
	st := toggle.New(true, true, nopStore{})

	var notified int
	st.Subscribe(func(toggle.Change) { notified++ })

	evaluateFront(m, st, rs, match.FrontApp{PID: 10}, config.BehaviorFollowLast)
	if !st.Enabled() {
		t.Fatal("процесс java должен совпасть")
	}

	procName = "firefox"
	evaluateFront(m, st, rs, match.FrontApp{PID: 20}, config.BehaviorFollowLast)
	if !st.Enabled() {
		t.Fatal("followLast должен вернуть lastManual=true")
	}
	if notified != 0 {
		t.Errorf("состояние не менялось, но пришло %d уведомлений", notified)
	}

	// Пока enabled == lastManual, дальнейшие прогоны ничего не пишут
	evaluateFront(m, st, rs, match.FrontApp{PID: 20}, config.BehaviorFollowLast)
	if notified != 0 {
		t.Error("повторный прогон не должен порождать записей")
	}
}

// Сценарий запуска: приложение уже активно и совпадает с правилом -
// начальное состояние включено независимо от сохранённого.
func TestScenarioStartupMatch(t *testing.T) {
	rs := rules.DecodeAll([]string{"com.valvesoftware.steam"})
	m := match.NewWithLookup(func(int) (string, error) { return "", nil })

	// Сохранённое состояние: выключено
	st := toggle.New(false, false, nopStore{})

	front := match.FrontApp{BundleID: "com.valvesoftware.steam", PID: 10}
	if !Run(m.Match(front, rs), st, config.BehaviorDisable) {
		t.Fatal("стартовый прогон должен изменить состояние")
	}
	if !st.Enabled() {
		t.Fatal("после стартового прогона состояние должно быть включено")
	}
	if st.LastManual() {
		t.Fatal("стартовый прогон - решение политики, lastManual не меняется")
	}
}
