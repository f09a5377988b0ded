// Package app содержит основную логику приложения.
package app

import (
	"log"
	"sync"

	"modclick/internal/config"
	"modclick/internal/dialog"
	"modclick/internal/edge"
	"modclick/internal/hotkey"
	"modclick/internal/i18n"
	"modclick/internal/inject"
	"modclick/internal/match"
	"modclick/internal/monitor"
	"modclick/internal/notify"
	"modclick/internal/policy"
	"modclick/internal/rules"
	"modclick/internal/toggle"
	"modclick/internal/tray"
	"modclick/internal/watch"
)

// App представляет главное приложение.
type App struct {
	mu       sync.Mutex
	config   *config.Config
	state    *toggle.State
	matcher  *match.Matcher
	injector inject.Injector
	detector *edge.Detector
	monitor  monitor.Source
	notifier *notify.Notifier
	tray     *tray.Tray
	hotkey   *hotkey.Handler
	watcher  *watch.Watcher

	labelMu   sync.Mutex
	lastLabel string // подпись приложения, из-за которого политика включила ремаппинг
}

// New создаёт новое приложение.
func New() (*App, error) {
	cfg := config.New()

	// Инициализируем язык интерфейса из конфига
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	app := &App{
		config:   cfg,
		matcher:  match.New(),
		injector: inject.New(),
		monitor:  monitor.New(),
		notifier: notify.New(cfg.NotificationsEnabled()),
	}

	// Начальное состояние ремаппинга по настройке запуска
	enabled := cfg.Enabled()
	switch cfg.LaunchBehavior() {
	case config.LaunchEnabled:
		enabled = true
	case config.LaunchDisabled:
		enabled = false
	}
	app.state = toggle.New(enabled, cfg.LastManualState(), cfg)

	// Каждое изменение состояния отражаем в трее и уведомлениях
	app.state.Subscribe(func(ch toggle.Change) {
		if app.tray != nil {
			app.tray.SetEnabled(ch.Enabled)
		}
		if ch.Enabled {
			label := ""
			if ch.Origin == toggle.OriginPolicy {
				label = app.matchLabel()
			}
			app.notifier.Enabled(label)
		} else {
			app.notifier.Disabled()
		}
	})

	// Детектор краёв модификатора: клик синтезируется в текущей позиции курсора
	app.detector = edge.New(edge.NewListener(), app.state.Enabled,
		func() { app.injector.Down(app.injector.Cursor()) },
		func() { app.injector.Up(app.injector.Cursor()) },
	)

	// Глобальная горячая клавиша дублирует ручной переключатель из меню
	app.hotkey = hotkey.New(func() {
		app.state.Toggle(toggle.OriginUser)
	})

	// Перечитываем конфиг при внешних правках файла
	app.watcher = watch.New(cfg.Path(), app.onConfigFileChange)

	// Создаём системный трей с обработчиками
	app.tray = tray.New(tray.Callbacks{
		OnToggle: func() bool {
			return app.state.Toggle(toggle.OriginUser)
		},
		OnAutoToggle: func() bool {
			on := !app.config.AutoToggle()
			app.config.SetAutoToggle(on)
			if on {
				app.applyPolicyToCurrent()
			}
			return on
		},
		OnRuleAdd:    app.onRuleAdd,
		OnRuleRemove: app.onRuleRemove,
		OnBehavior: func(b config.Behavior) {
			app.config.SetBehavior(b)
			app.applyPolicyToCurrent()
		},
		OnLaunch: func(l config.LaunchBehavior) {
			app.config.SetLaunchBehavior(l)
		},
		OnNotificationsToggle: func() bool {
			on := app.config.ToggleNotifications()
			app.notifier.SetEnabled(on)
			return on
		},
		OnQuit: func() {
			app.Close()
		},
	}, tray.Snapshot{
		Enabled:       enabled,
		AutoToggle:    cfg.AutoToggle(),
		Behavior:      cfg.Behavior(),
		Launch:        cfg.LaunchBehavior(),
		Notifications: cfg.NotificationsEnabled(),
	})

	return app, nil
}

// Run запускает приложение.
func (a *App) Run() {
	a.tray.Run(func() {
		if err := a.detector.Start(a.config.Modifier()); err != nil {
			log.Printf("Ошибка установки слушателя модификатора: %v", err)
			a.notifier.Error(i18n.T("error_listener"))
		}

		if err := a.monitor.Start(a.onFrontmost); err != nil {
			log.Printf("Ошибка подписки на смену приложений: %v", err)
			a.notifier.Error(i18n.T("error_monitor"))
		}

		if err := a.hotkey.Register(a.config.Hotkey()); err != nil {
			log.Printf("Ошибка регистрации горячей клавиши: %v", err)
			a.notifier.Error(i18n.T("error_hotkey_register"))
		}

		if err := a.watcher.Start(); err != nil {
			log.Printf("Ошибка наблюдения за конфигом: %v", err)
		}

		// Активное приложение могло появиться до подписки
		a.applyPolicyToCurrent()

		a.notifier.Info(i18n.T("notify_ready"))
	})
}

// onFrontmost вызывается при каждой смене активного приложения.
func (a *App) onFrontmost(fa match.FrontApp) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.config.AutoToggle() {
		return
	}
	rs := rules.DecodeAll(a.config.Rules())
	if len(rs) == 0 {
		return
	}

	res := a.matcher.Match(fa, rs)
	if res.IsMatch {
		a.setMatchLabel(res.Label)
	}
	policy.Run(res, a.state, a.config.Behavior())
}

// applyPolicyToCurrent прогоняет политику по текущему активному приложению.
func (a *App) applyPolicyToCurrent() {
	if !a.config.AutoToggle() || len(a.config.Rules()) == 0 {
		return
	}
	fa, err := a.monitor.Current()
	if err != nil {
		log.Printf("Не удалось определить активное приложение: %v", err)
		return
	}
	a.onFrontmost(fa)
}

func (a *App) onRuleAdd() {
	r, err := dialog.AddRule()
	if err != nil {
		return
	}
	raw := r.Encode()
	if !a.config.AddRule(raw) {
		dialog.ShowDuplicate(raw)
		return
	}
	a.notifier.RuleAdded(raw)
	a.applyPolicyToCurrent()
}

func (a *App) onRuleRemove() {
	stored := a.config.Rules()
	i, err := dialog.RemoveRule(stored)
	if err != nil {
		return
	}
	a.config.RemoveRule(i)
	a.notifier.RuleRemoved(stored[i])
	a.applyPolicyToCurrent()
}

// onConfigFileChange перечитывает конфиг после внешней правки файла.
// Собственные записи тоже будят watcher, повторное применение тех же
// значений ничего не меняет.
func (a *App) onConfigFileChange() {
	a.config.Reload()

	a.notifier.SetEnabled(a.config.NotificationsEnabled())
	if uiLang := a.config.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
		a.tray.RefreshUI()
	}

	if a.config.Enabled() != a.state.Enabled() {
		a.state.Set(a.config.Enabled(), toggle.OriginUser)
	}
	a.applyPolicyToCurrent()
}

func (a *App) matchLabel() string {
	a.labelMu.Lock()
	defer a.labelMu.Unlock()
	return a.lastLabel
}

func (a *App) setMatchLabel(label string) {
	a.labelMu.Lock()
	a.lastLabel = label
	a.labelMu.Unlock()
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	if a.hotkey != nil {
		a.hotkey.Unregister()
	}
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.monitor != nil {
		a.monitor.Stop()
	}
	if a.detector != nil {
		a.detector.Stop()
	}
}
