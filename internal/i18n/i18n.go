// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name":    "ModClick",
		"app_tooltip": "ModClick - правый клик модификатором",

		// Tray menu
		"tray_enabled":            "Ремаппинг включён",
		"tray_disabled":           "Ремаппинг выключен",
		"tray_toggle":             "Включить ремаппинг",
		"tray_toggle_hint":        "Удержание модификатора = правая кнопка",
		"tray_auto":               "Автопереключение",
		"tray_auto_hint":          "Включать по активному приложению",
		"tray_rules":              "Правила",
		"tray_rule_add":           "Добавить правило...",
		"tray_rule_add_hint":      "Bundle ID или имя процесса",
		"tray_rule_remove":        "Удалить правило...",
		"tray_rule_remove_hint":   "Выбрать правило из списка",
		"tray_behavior":           "Вне правил",
		"tray_behavior_disable":   "Выключать",
		"tray_behavior_follow":    "Возвращать ручное состояние",
		"tray_launch":             "При запуске",
		"tray_launch_enabled":     "Включено",
		"tray_launch_disabled":    "Выключено",
		"tray_launch_last":        "Как в прошлый раз",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Показывать уведомления",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Закрыть приложение",

		// Notifications
		"notify_enabled":       "Ремаппинг включён",
		"notify_enabled_for":   "Включено для",
		"notify_disabled":      "Ремаппинг выключен",
		"notify_ready":         "ModClick готов к работе",
		"notify_error":         "Ошибка",
		"notify_rule_added":    "Правило добавлено",
		"notify_rule_removed":  "Правило удалено",

		// Dialogs
		"dialog_rule_title":     "Новое правило",
		"dialog_rule_kind":      "Вид правила:",
		"dialog_kind_bundle":    "Bundle identifier",
		"dialog_kind_exact":     "Имя процесса (точно)",
		"dialog_kind_contains":  "Имя процесса (подстрока)",
		"dialog_rule_value":     "Значение:",
		"dialog_rule_duplicate": "Такое правило уже есть",
		"dialog_remove_title":   "Удалить правило",
		"dialog_remove_prompt":  "Выберите правило:",
		"dialog_no_rules":       "Список правил пуст",

		// Errors
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу",
		"error_listener":        "Не удалось установить слушателя модификатора",
		"error_monitor":         "Не удалось подписаться на смену приложений",
	},

	EN: {
		// App
		"app_name":    "ModClick",
		"app_tooltip": "ModClick - modifier right click",

		// Tray menu
		"tray_enabled":            "Remapping on",
		"tray_disabled":           "Remapping off",
		"tray_toggle":             "Enable remapping",
		"tray_toggle_hint":        "Hold modifier = right button",
		"tray_auto":               "Auto-toggle",
		"tray_auto_hint":          "Follow the frontmost application",
		"tray_rules":              "Rules",
		"tray_rule_add":           "Add rule...",
		"tray_rule_add_hint":      "Bundle ID or process name",
		"tray_rule_remove":        "Remove rule...",
		"tray_rule_remove_hint":   "Pick a rule from the list",
		"tray_behavior":           "Outside rules",
		"tray_behavior_disable":   "Disable",
		"tray_behavior_follow":    "Restore manual state",
		"tray_launch":             "On launch",
		"tray_launch_enabled":     "Enabled",
		"tray_launch_disabled":    "Disabled",
		"tray_launch_last":        "Last state",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show notifications",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close application",

		// Notifications
		"notify_enabled":       "Remapping enabled",
		"notify_enabled_for":   "Enabled for",
		"notify_disabled":      "Remapping disabled",
		"notify_ready":         "ModClick is ready",
		"notify_error":         "Error",
		"notify_rule_added":    "Rule added",
		"notify_rule_removed":  "Rule removed",

		// Dialogs
		"dialog_rule_title":     "New rule",
		"dialog_rule_kind":      "Rule kind:",
		"dialog_kind_bundle":    "Bundle identifier",
		"dialog_kind_exact":     "Process name (exact)",
		"dialog_kind_contains":  "Process name (substring)",
		"dialog_rule_value":     "Value:",
		"dialog_rule_duplicate": "This rule already exists",
		"dialog_remove_title":   "Remove rule",
		"dialog_remove_prompt":  "Select a rule:",
		"dialog_no_rules":       "The rule list is empty",

		// Errors
		"error_hotkey_register": "Could not register hotkey",
		"error_listener":        "Could not install modifier listener",
		"error_monitor":         "Could not subscribe to application switches",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	current = lang
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{RU, EN}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
