// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"modclick/internal/rules"
)

// Modifier представляет модификатор клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
	ModFn    Modifier = "fn"    // только macOS
)

// Key представляет клавишу.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyTab    Key = "tab"
	KeyA      Key = "a"
	KeyB      Key = "b"
	KeyC      Key = "c"
	KeyD      Key = "d"
	KeyE      Key = "e"
	KeyF      Key = "f"
	KeyG      Key = "g"
	KeyH      Key = "h"
	KeyI      Key = "i"
	KeyJ      Key = "j"
	KeyK      Key = "k"
	KeyL      Key = "l"
	KeyM      Key = "m"
	KeyN      Key = "n"
	KeyO      Key = "o"
	KeyP      Key = "p"
	KeyQ      Key = "q"
	KeyR      Key = "r"
	KeyS      Key = "s"
	KeyT      Key = "t"
	KeyU      Key = "u"
	KeyV      Key = "v"
	KeyW      Key = "w"
	KeyX      Key = "x"
	KeyY      Key = "y"
	KeyZ      Key = "z"
	KeyF1     Key = "f1"
	KeyF2     Key = "f2"
	KeyF3     Key = "f3"
	KeyF4     Key = "f4"
	KeyF5     Key = "f5"
	KeyF6     Key = "f6"
	KeyF7     Key = "f7"
	KeyF8     Key = "f8"
	KeyF9     Key = "f9"
	KeyF10    Key = "f10"
	KeyF11    Key = "f11"
	KeyF12    Key = "f12"
)

// Behavior определяет, что делать, когда активное приложение не подошло
// ни под одно правило.
type Behavior string

const (
	BehaviorDisable    Behavior = "disable"
	BehaviorFollowLast Behavior = "followLast"
)

// LaunchBehavior определяет начальное состояние ремаппинга при запуске.
type LaunchBehavior string

const (
	LaunchEnabled   LaunchBehavior = "enabled"
	LaunchDisabled  LaunchBehavior = "disabled"
	LaunchLastState LaunchBehavior = "lastState"
)

// HotkeyConfig хранит настройки горячей клавиши ручного переключения.
type HotkeyConfig struct {
	Modifiers []Modifier `json:"modifiers"`
	Key       Key        `json:"key"`
}

// String возвращает строковое представление горячей клавиши.
func (h HotkeyConfig) String() string {
	result := ""
	for _, m := range h.Modifiers {
		if result != "" {
			result += "+"
		}
		result += string(m)
	}
	if result != "" {
		result += "+"
	}
	result += string(h.Key)
	return result
}

// configData структура для сериализации.
type configData struct {
	Enabled         bool           `json:"enabled"`
	LastManualState bool           `json:"last_manual_state"`
	AutoToggle      bool           `json:"auto_toggle"`
	AutoToggleApps  []string       `json:"auto_toggle_apps,omitempty"`
	Behavior        Behavior       `json:"auto_toggle_behavior,omitempty"`
	LaunchBehavior  LaunchBehavior `json:"launch_behavior,omitempty"`
	Modifier        Modifier       `json:"modifier"`
	Notifications   bool           `json:"notifications"`
	UILanguage      string         `json:"ui_language,omitempty"`
	Hotkey          HotkeyConfig   `json:"hotkey"`
}

// Config хранит настройки приложения.
type Config struct {
	mu             sync.RWMutex
	enabled        bool
	lastManual     bool
	autoToggle     bool
	apps           []string
	behavior       Behavior
	launchBehavior LaunchBehavior
	modifier       Modifier
	notifications  bool
	uiLanguage     string
	hotkey         HotkeyConfig
	configPath     string
}

// New создаёт конфигурацию, загружая из файла или с настройками по умолчанию.
func New() *Config {
	c := defaultConfig()

	// Определяем путь к файлу конфигурации рядом с бинарником
	execPath, err := os.Executable()
	if err == nil {
		// Резолвим симлинки
		execPath, err = filepath.EvalSymlinks(execPath)
		if err == nil {
			execDir := filepath.Dir(execPath)
			c.configPath = filepath.Join(execDir, "config.json")
		}
	}

	c.load()
	return c
}

// NewAt создаёт конфигурацию с явным путём к файлу.
func NewAt(path string) *Config {
	c := defaultConfig()
	c.configPath = path
	c.load()
	return c
}

func defaultConfig() *Config {
	return &Config{
		enabled:        false,
		lastManual:     false,
		autoToggle:     false,
		behavior:       BehaviorDisable,
		launchBehavior: LaunchLastState,
		modifier:       ModCtrl,
		notifications:  true,
		uiLanguage:     "ru",
		hotkey: HotkeyConfig{
			Modifiers: []Modifier{ModCtrl, ModAlt},
			Key:       KeyM,
		},
	}
}

// load загружает конфигурацию из файла. Отсутствующий или битый файл -
// штатная ситуация, остаются значения по умолчанию.
func (c *Config) load() {
	if c.configPath == "" {
		return
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return
	}

	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		return
	}

	c.enabled = cfg.Enabled
	c.lastManual = cfg.LastManualState
	c.autoToggle = cfg.AutoToggle
	c.apps = cfg.AutoToggleApps
	if cfg.Behavior != "" {
		c.behavior = cfg.Behavior
	}
	if cfg.LaunchBehavior != "" {
		c.launchBehavior = cfg.LaunchBehavior
	}
	if cfg.Modifier != "" {
		c.modifier = cfg.Modifier
	}
	c.notifications = cfg.Notifications
	if cfg.UILanguage != "" {
		c.uiLanguage = cfg.UILanguage
	}
	if cfg.Hotkey.Key != "" {
		c.hotkey = cfg.Hotkey
	}
}

// save сохраняет конфигурацию в файл. Вызывается под мьютексом.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	cfg := configData{
		Enabled:         c.enabled,
		LastManualState: c.lastManual,
		AutoToggle:      c.autoToggle,
		AutoToggleApps:  c.apps,
		Behavior:        c.behavior,
		LaunchBehavior:  c.launchBehavior,
		Modifier:        c.modifier,
		Notifications:   c.notifications,
		UILanguage:      c.uiLanguage,
		Hotkey:          c.hotkey,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}

	os.WriteFile(c.configPath, data, 0644)
}

// Path возвращает путь к файлу конфигурации.
func (c *Config) Path() string {
	return c.configPath
}

// Reload перечитывает конфигурацию с диска.
func (c *Config) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
}

// SaveState сохраняет состояние ремаппинга. Реализует toggle.Store.
func (c *Config) SaveState(enabled, lastManual bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
	c.lastManual = lastManual
	c.save()
}

// Enabled возвращает последнее сохранённое состояние ремаппинга.
func (c *Config) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// LastManualState возвращает последнее состояние, заданное пользователем.
func (c *Config) LastManualState() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastManual
}

// AutoToggle возвращает true если автопереключение включено.
func (c *Config) AutoToggle() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.autoToggle
}

// SetAutoToggle включает/выключает автопереключение.
func (c *Config) SetAutoToggle(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoToggle = on
	c.save()
}

// Rules возвращает список правил в хранимом виде, в порядке добавления.
func (c *Config) Rules() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.apps))
	copy(out, c.apps)
	return out
}

// IsRuleDuplicated сообщает, есть ли уже такое правило.
// Имена процессов сравниваются без учёта регистра.
func (c *Config) IsRuleDuplicated(candidate string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return rules.IsDuplicate(c.apps, candidate)
}

// AddRule добавляет правило в конец списка. Возвращает false для дубликата.
func (c *Config) AddRule(raw string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rules.IsDuplicate(c.apps, raw) {
		return false
	}
	c.apps = append(c.apps, raw)
	c.save()
	return true
}

// RemoveRule удаляет правило по индексу.
func (c *Config) RemoveRule(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.apps) {
		return
	}
	c.apps = append(c.apps[:i], c.apps[i+1:]...)
	c.save()
}

// Behavior возвращает поведение при несовпадении правил.
func (c *Config) Behavior() Behavior {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.behavior
}

// SetBehavior устанавливает поведение при несовпадении правил.
func (c *Config) SetBehavior(b Behavior) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.behavior = b
	c.save()
}

// LaunchBehavior возвращает поведение при запуске.
func (c *Config) LaunchBehavior() LaunchBehavior {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.launchBehavior
}

// SetLaunchBehavior устанавливает поведение при запуске.
func (c *Config) SetLaunchBehavior(b LaunchBehavior) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.launchBehavior = b
	c.save()
}

// Modifier возвращает отслеживаемый модификатор.
func (c *Config) Modifier() Modifier {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modifier
}

// SetModifier устанавливает отслеживаемый модификатор.
func (c *Config) SetModifier(m Modifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modifier = m
	c.save()
}

// SetNotifications включает/выключает уведомления.
func (c *Config) SetNotifications(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = enabled
	c.save()
}

// ToggleNotifications переключает состояние уведомлений.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	c.save()
	return c.notifications
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// SetUILanguage устанавливает язык интерфейса.
func (c *Config) SetUILanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uiLanguage = lang
	c.save()
}

// Hotkey возвращает горячую клавишу ручного переключения.
func (c *Config) Hotkey() HotkeyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hotkey
}

// SetHotkey устанавливает горячую клавишу ручного переключения.
func (c *Config) SetHotkey(hk HotkeyConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hotkey = hk
	c.save()
}
