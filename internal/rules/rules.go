// Package rules описывает правила автопереключения и их хранимый формат.
//
// Правила хранятся плоским списком строк. Строка с префиксом "proc:" -
// точное совпадение имени процесса, с префиксом "proc~" - вхождение
// подстроки, всё остальное - bundle identifier приложения.
package rules

import "strings"

const (
	prefixExact    = "proc:"
	prefixContains = "proc~"
)

// Kind - вид правила.
type Kind int

const (
	KindBundleID Kind = iota
	KindProcessExact
	KindProcessContains
)

// String возвращает читаемое имя вида правила.
func (k Kind) String() string {
	switch k {
	case KindProcessExact:
		return "process"
	case KindProcessContains:
		return "substring"
	default:
		return "bundle"
	}
}

// Rule - декодированное правило сопоставления приложения.
type Rule struct {
	Kind  Kind
	Value string
}

// Decode разбирает хранимую строку правила. Каждый префикс отрезается
// только для своего вида, поэтому короткие строки вроде "proc" остаются
// bundle identifier'ом.
func Decode(raw string) Rule {
	if v, ok := strings.CutPrefix(raw, prefixExact); ok {
		return Rule{Kind: KindProcessExact, Value: v}
	}
	if v, ok := strings.CutPrefix(raw, prefixContains); ok {
		return Rule{Kind: KindProcessContains, Value: v}
	}
	return Rule{Kind: KindBundleID, Value: raw}
}

// DecodeAll разбирает список хранимых строк, сохраняя порядок.
func DecodeAll(raw []string) []Rule {
	out := make([]Rule, 0, len(raw))
	for _, s := range raw {
		out = append(out, Decode(s))
	}
	return out
}

// Encode возвращает хранимое представление правила.
func (r Rule) Encode() string {
	switch r.Kind {
	case KindProcessExact:
		return prefixExact + r.Value
	case KindProcessContains:
		return prefixContains + r.Value
	default:
		return r.Value
	}
}

// Equal сообщает, считаются ли два правила одинаковыми. Имена процессов
// сравниваются без учёта регистра, bundle identifier'ы - байт в байт.
func (r Rule) Equal(other Rule) bool {
	if r.Kind != other.Kind {
		return false
	}
	if r.Kind == KindBundleID {
		return r.Value == other.Value
	}
	return strings.EqualFold(r.Value, other.Value)
}

// IsDuplicate сообщает, есть ли правило candidate среди existing.
// Используется UI перед вставкой нового правила.
func IsDuplicate(existing []string, candidate string) bool {
	c := Decode(candidate)
	for _, raw := range existing {
		if Decode(raw).Equal(c) {
			return true
		}
	}
	return false
}
