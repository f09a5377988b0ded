// Package dialog предоставляет GUI диалоги для настройки правил.
package dialog

import (
	"github.com/ncruces/zenity"

	"modclick/internal/i18n"
	"modclick/internal/rules"
)

// AddRule проводит пользователя через добавление правила: выбор вида,
// затем ввод значения. Возвращает ошибку если пользователь отменил.
func AddRule() (rules.Rule, error) {
	kindOptions := []string{
		i18n.T("dialog_kind_bundle"),
		i18n.T("dialog_kind_exact"),
		i18n.T("dialog_kind_contains"),
	}

	// Шаг 1: Выбор вида правила
	selected, err := zenity.List(
		i18n.T("dialog_rule_kind"),
		kindOptions,
		zenity.Title(i18n.T("dialog_rule_title")),
		zenity.DefaultItems(kindOptions[0]),
	)
	if err != nil {
		return rules.Rule{}, err // Пользователь отменил
	}

	kind := rules.KindBundleID
	switch selected {
	case kindOptions[1]:
		kind = rules.KindProcessExact
	case kindOptions[2]:
		kind = rules.KindProcessContains
	}

	// Шаг 2: Ввод значения
	value, err := zenity.Entry(
		i18n.T("dialog_rule_value"),
		zenity.Title(i18n.T("dialog_rule_title")),
	)
	if err != nil {
		return rules.Rule{}, err
	}
	if value == "" {
		return rules.Rule{}, zenity.ErrCanceled
	}

	return rules.Rule{Kind: kind, Value: value}, nil
}

// RemoveRule показывает список правил и возвращает индекс выбранного.
func RemoveRule(stored []string) (int, error) {
	if len(stored) == 0 {
		ShowInfo(i18n.T("dialog_remove_title"), i18n.T("dialog_no_rules"))
		return -1, zenity.ErrCanceled
	}
	selected, err := zenity.List(
		i18n.T("dialog_remove_prompt"),
		stored,
		zenity.Title(i18n.T("dialog_remove_title")),
	)
	if err != nil {
		return -1, err
	}
	for i, s := range stored {
		if s == selected {
			return i, nil
		}
	}
	return -1, zenity.ErrCanceled
}

// ShowDuplicate предупреждает о попытке добавить существующее правило.
func ShowDuplicate(rule string) {
	zenity.Warning(i18n.T("dialog_rule_duplicate")+": "+rule,
		zenity.Title(i18n.T("dialog_rule_title")))
}

// ShowInfo показывает информационное сообщение.
func ShowInfo(title, message string) {
	zenity.Info(message, zenity.Title(title))
}

// ShowError показывает сообщение об ошибке.
func ShowError(title, message string) {
	zenity.Error(message, zenity.Title(title))
}
