// Package notify предоставляет системные уведомления.
package notify

import (
	"github.com/gen2brain/beeep"
	"modclick/internal/i18n"
)

const appName = "ModClick"

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled bool
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Enabled показывает уведомление о включении ремаппинга. label - имя
// приложения, из-за которого сработала политика; пустая строка для
// ручного включения.
func (n *Notifier) Enabled(label string) {
	if label != "" {
		n.notify(i18n.T("notify_enabled"), i18n.T("notify_enabled_for")+" "+label)
		return
	}
	n.notify(i18n.T("notify_enabled"), "")
}

// Disabled показывает уведомление о выключении ремаппинга.
func (n *Notifier) Disabled() {
	n.notify(i18n.T("notify_disabled"), "")
}

// RuleAdded показывает уведомление о добавленном правиле.
func (n *Notifier) RuleAdded(rule string) {
	n.notify(i18n.T("notify_rule_added"), rule)
}

// RuleRemoved показывает уведомление об удалённом правиле.
func (n *Notifier) RuleRemoved(rule string) {
	n.notify(i18n.T("notify_rule_removed"), rule)
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), msg)
}

// Info показывает информационное уведомление.
func (n *Notifier) Info(msg string) {
	if len(msg) > 100 {
		msg = msg[:100] + "..."
	}
	n.notify("", msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	if title != "" {
		_ = beeep.Notify(appName+": "+title, message, "")
	} else {
		_ = beeep.Notify(appName, message, "")
	}
}
