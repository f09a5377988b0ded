// Package policy вычисляет целевое состояние ремаппинга по результату
// сопоставления активного приложения с правилами.
package policy

import (
	"modclick/internal/config"
	"modclick/internal/match"
	"modclick/internal/toggle"
)

// Decision описывает требуемое изменение состояния. Apply == false
// означает, что писать ничего не нужно.
type Decision struct {
	Apply   bool
	Enabled bool
}

// Evaluate применяет таблицу решений автопереключения:
//
//	совпадение            -> включить, если выключено
//	нет; behavior=disable -> выключить, если включено
//	нет; followLast       -> вернуть последнее ручное состояние
func Evaluate(res match.Result, enabled, lastManual bool, behavior config.Behavior) Decision {
	if res.IsMatch {
		if !enabled {
			return Decision{Apply: true, Enabled: true}
		}
		return Decision{}
	}

	switch behavior {
	case config.BehaviorFollowLast:
		if enabled != lastManual {
			return Decision{Apply: true, Enabled: lastManual}
		}
	default:
		if enabled {
			return Decision{Apply: true, Enabled: false}
		}
	}
	return Decision{}
}

// Run вычисляет решение и применяет его к состоянию от имени политики.
// Возвращает true, если состояние было изменено.
func Run(res match.Result, st *toggle.State, behavior config.Behavior) bool {
	d := Evaluate(res, st.Enabled(), st.LastManual(), behavior)
	if !d.Apply {
		return false
	}
	st.Set(d.Enabled, toggle.OriginPolicy)
	return true
}
