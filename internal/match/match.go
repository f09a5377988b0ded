// Package match сопоставляет активное приложение с правилами.
package match

import (
	"fmt"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"modclick/internal/rules"
)

// FrontApp описывает активное приложение.
type FrontApp struct {
	BundleID string // может быть пустым (Linux, Windows)
	PID      int
	Name     string // локализованное имя, если платформа его сообщила
}

// Result - результат сопоставления. Пересчитывается на каждую смену
// активного приложения и нигде не хранится.
type Result struct {
	IsMatch bool
	Kind    rules.Kind
	Label   string
}

// ProcessLookup возвращает имя процесса по PID.
type ProcessLookup func(pid int) (string, error)

// Matcher проверяет активное приложение по упорядоченному списку правил.
type Matcher struct {
	lookup ProcessLookup
}

// New создаёт Matcher с поиском процессов через таблицу процессов ОС.
func New() *Matcher {
	return &Matcher{lookup: processName}
}

// NewWithLookup создаёт Matcher с заданной функцией поиска (для тестов).
func NewWithLookup(lookup ProcessLookup) *Matcher {
	return &Matcher{lookup: lookup}
}

// processName ищет имя процесса в таблице процессов.
func processName(pid int) (string, error) {
	p, err := ps.FindProcess(pid)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", fmt.Errorf("процесс %d не найден", pid)
	}
	return p.Executable(), nil
}

// Match проверяет приложение по правилам: сперва bundle identifier'ы
// (байт в байт), затем точные имена процессов, затем подстроки - оба без
// учёта регистра. Внутри каждой группы побеждает первое по порядку
// добавления правило. Если имя процесса получить не удалось, proc-правила
// просто пропускаются.
func (m *Matcher) Match(app FrontApp, rs []rules.Rule) Result {
	if app.BundleID != "" {
		for _, r := range rs {
			if r.Kind == rules.KindBundleID && r.Value == app.BundleID {
				label := app.Name
				if label == "" {
					label = app.BundleID
				}
				return Result{IsMatch: true, Kind: r.Kind, Label: label}
			}
		}
	}

	hasProc := false
	for _, r := range rs {
		if r.Kind != rules.KindBundleID {
			hasProc = true
			break
		}
	}
	if !hasProc {
		return Result{}
	}

	procName, err := m.lookup(app.PID)
	if err != nil {
		return Result{}
	}

	for _, r := range rs {
		if r.Kind == rules.KindProcessExact && strings.EqualFold(procName, r.Value) {
			return Result{IsMatch: true, Kind: r.Kind, Label: r.Value}
		}
	}

	lower := strings.ToLower(procName)
	for _, r := range rs {
		if r.Kind == rules.KindProcessContains && strings.Contains(lower, strings.ToLower(r.Value)) {
			return Result{IsMatch: true, Kind: r.Kind, Label: fmt.Sprintf("%s (%s)", procName, r.Value)}
		}
	}

	return Result{}
}

// AppName возвращает отображаемое имя приложения: локализованное имя,
// иначе имя процесса, иначе bundle identifier.
func (m *Matcher) AppName(app FrontApp) string {
	if app.Name != "" {
		return app.Name
	}
	if name, err := m.lookup(app.PID); err == nil && name != "" {
		return name
	}
	return app.BundleID
}
