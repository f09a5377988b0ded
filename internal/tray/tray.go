// Package tray предоставляет системный трей с меню.
package tray

import (
	"github.com/getlantern/systray"
	"modclick/embedded"
	"modclick/internal/config"
	"modclick/internal/i18n"
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnToggle              func() bool
	OnAutoToggle          func() bool
	OnRuleAdd             func()
	OnRuleRemove          func()
	OnBehavior            func(config.Behavior)
	OnLaunch              func(config.LaunchBehavior)
	OnNotificationsToggle func() bool
	OnQuit                func()
}

// Snapshot задаёт начальное состояние пунктов меню.
type Snapshot struct {
	Enabled       bool
	AutoToggle    bool
	Behavior      config.Behavior
	Launch        config.LaunchBehavior
	Notifications bool
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks Callbacks
	snapshot  Snapshot

	status    *systray.MenuItem
	toggle    *systray.MenuItem
	auto      *systray.MenuItem
	ruleAdd   *systray.MenuItem
	ruleDel   *systray.MenuItem
	behavior  *systray.MenuItem
	behDis    *systray.MenuItem
	behFollow *systray.MenuItem
	launch    *systray.MenuItem
	launchOn  *systray.MenuItem
	launchOff *systray.MenuItem
	launchLas *systray.MenuItem
	notifyOn  *systray.MenuItem
	quitBtn   *systray.MenuItem
}

// New создаёт новый Tray.
func New(callbacks Callbacks, snapshot Snapshot) *Tray {
	return &Tray{
		callbacks: callbacks,
		snapshot:  snapshot,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetTitle("ModClick")
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Статус
	t.status = systray.AddMenuItem(i18n.T("tray_disabled"), "")
	t.status.Disable()

	systray.AddSeparator()

	// Ручное переключение
	t.toggle = systray.AddMenuItemCheckbox(i18n.T("tray_toggle"), i18n.T("tray_toggle_hint"), t.snapshot.Enabled)

	// Автопереключение
	t.auto = systray.AddMenuItemCheckbox(i18n.T("tray_auto"), i18n.T("tray_auto_hint"), t.snapshot.AutoToggle)

	systray.AddSeparator()

	// Правила
	t.ruleAdd = systray.AddMenuItem(i18n.T("tray_rule_add"), i18n.T("tray_rule_add_hint"))
	t.ruleDel = systray.AddMenuItem(i18n.T("tray_rule_remove"), i18n.T("tray_rule_remove_hint"))

	// Поведение вне правил
	t.behavior = systray.AddMenuItem(i18n.T("tray_behavior"), "")
	t.behDis = t.behavior.AddSubMenuItemCheckbox(i18n.T("tray_behavior_disable"), "", t.snapshot.Behavior == config.BehaviorDisable)
	t.behFollow = t.behavior.AddSubMenuItemCheckbox(i18n.T("tray_behavior_follow"), "", t.snapshot.Behavior == config.BehaviorFollowLast)

	// Состояние при запуске
	t.launch = systray.AddMenuItem(i18n.T("tray_launch"), "")
	t.launchOn = t.launch.AddSubMenuItemCheckbox(i18n.T("tray_launch_enabled"), "", t.snapshot.Launch == config.LaunchEnabled)
	t.launchOff = t.launch.AddSubMenuItemCheckbox(i18n.T("tray_launch_disabled"), "", t.snapshot.Launch == config.LaunchDisabled)
	t.launchLas = t.launch.AddSubMenuItemCheckbox(i18n.T("tray_launch_last"), "", t.snapshot.Launch == config.LaunchLastState)

	systray.AddSeparator()

	// Уведомления
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.snapshot.Notifications)

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	t.SetEnabled(t.snapshot.Enabled)

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		// Ручное переключение
		case <-t.toggle.ClickedCh:
			if t.callbacks.OnToggle != nil {
				t.SetEnabled(t.callbacks.OnToggle())
			}

		// Автопереключение
		case <-t.auto.ClickedCh:
			if t.callbacks.OnAutoToggle != nil {
				if t.callbacks.OnAutoToggle() {
					t.auto.Check()
				} else {
					t.auto.Uncheck()
				}
			}

		// Правила
		case <-t.ruleAdd.ClickedCh:
			if t.callbacks.OnRuleAdd != nil {
				t.callbacks.OnRuleAdd()
			}
		case <-t.ruleDel.ClickedCh:
			if t.callbacks.OnRuleRemove != nil {
				t.callbacks.OnRuleRemove()
			}

		// Поведение вне правил
		case <-t.behDis.ClickedCh:
			t.setBehavior(config.BehaviorDisable)
		case <-t.behFollow.ClickedCh:
			t.setBehavior(config.BehaviorFollowLast)

		// Состояние при запуске
		case <-t.launchOn.ClickedCh:
			t.setLaunch(config.LaunchEnabled)
		case <-t.launchOff.ClickedCh:
			t.setLaunch(config.LaunchDisabled)
		case <-t.launchLas.ClickedCh:
			t.setLaunch(config.LaunchLastState)

		// Уведомления
		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				if t.callbacks.OnNotificationsToggle() {
					t.notifyOn.Check()
				} else {
					t.notifyOn.Uncheck()
				}
			}

		// Выход
		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
		}
	}
}

func (t *Tray) setBehavior(b config.Behavior) {
	if t.callbacks.OnBehavior != nil {
		t.callbacks.OnBehavior(b)
	}
	if b == config.BehaviorDisable {
		t.behDis.Check()
		t.behFollow.Uncheck()
	} else {
		t.behDis.Uncheck()
		t.behFollow.Check()
	}
}

func (t *Tray) setLaunch(l config.LaunchBehavior) {
	if t.callbacks.OnLaunch != nil {
		t.callbacks.OnLaunch(l)
	}
	t.launchOn.Uncheck()
	t.launchOff.Uncheck()
	t.launchLas.Uncheck()
	switch l {
	case config.LaunchEnabled:
		t.launchOn.Check()
	case config.LaunchDisabled:
		t.launchOff.Check()
	default:
		t.launchLas.Check()
	}
}

// SetEnabled обновляет иконку и пункты меню под текущее состояние ремаппинга.
func (t *Tray) SetEnabled(enabled bool) {
	if enabled {
		systray.SetIcon(embedded.IconEnabled)
		systray.SetTooltip("ModClick - " + i18n.T("tray_enabled"))
		if t.status != nil {
			t.status.SetTitle(i18n.T("tray_enabled"))
		}
		if t.toggle != nil {
			t.toggle.Check()
		}
	} else {
		systray.SetIcon(embedded.IconDisabled)
		systray.SetTooltip("ModClick - " + i18n.T("tray_disabled"))
		if t.status != nil {
			t.status.SetTitle(i18n.T("tray_disabled"))
		}
		if t.toggle != nil {
			t.toggle.Uncheck()
		}
	}
}

func (t *Tray) onExit() {
	// Cleanup при выходе
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.toggle != nil {
		t.toggle.SetTitle(i18n.T("tray_toggle"))
		t.toggle.SetTooltip(i18n.T("tray_toggle_hint"))
	}
	if t.auto != nil {
		t.auto.SetTitle(i18n.T("tray_auto"))
		t.auto.SetTooltip(i18n.T("tray_auto_hint"))
	}
	if t.ruleAdd != nil {
		t.ruleAdd.SetTitle(i18n.T("tray_rule_add"))
		t.ruleAdd.SetTooltip(i18n.T("tray_rule_add_hint"))
	}
	if t.ruleDel != nil {
		t.ruleDel.SetTitle(i18n.T("tray_rule_remove"))
		t.ruleDel.SetTooltip(i18n.T("tray_rule_remove_hint"))
	}
	if t.behavior != nil {
		t.behavior.SetTitle(i18n.T("tray_behavior"))
		t.behDis.SetTitle(i18n.T("tray_behavior_disable"))
		t.behFollow.SetTitle(i18n.T("tray_behavior_follow"))
	}
	if t.launch != nil {
		t.launch.SetTitle(i18n.T("tray_launch"))
		t.launchOn.SetTitle(i18n.T("tray_launch_enabled"))
		t.launchOff.SetTitle(i18n.T("tray_launch_disabled"))
		t.launchLas.SetTitle(i18n.T("tray_launch_last"))
	}
	if t.notifyOn != nil {
		t.notifyOn.SetTitle(i18n.T("tray_notifications"))
		t.notifyOn.SetTooltip(i18n.T("tray_notifications_hint"))
	}
	if t.quitBtn != nil {
		t.quitBtn.SetTitle(i18n.T("tray_quit"))
		t.quitBtn.SetTooltip(i18n.T("tray_quit_hint"))
	}
}
