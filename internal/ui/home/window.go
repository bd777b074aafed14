package home

import (
	"aestheticpomodoro/internal/core/model"
	"aestheticpomodoro/internal/core/progression"
	"aestheticpomodoro/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Actions are the user intents the window forwards.
type Actions struct {
	Start           func(minutes int) bool
	TogglePause     func()
	GiveUp          func()
	Purchase        func(itemID string) progression.PurchaseResult
	EquipTheme      func(id model.ThemeID)
	EquipSound      func(slot model.SoundSlot, id string)
	UpdateProfile   func(name, avatarRef string)
	OpenPreferences func()
}

// Window is the main application window.
type Window struct {
	window  fyne.Window
	actions Actions

	remaining  *canvas.Text
	countdown  *widget.ProgressBar
	durations  *widget.Select
	startBtn   *widget.Button
	pauseBtn   *widget.Button
	giveUpBtn  *widget.Button
	stats      *widget.Label
	levelBar   *widget.ProgressBar
	themes     *widget.Select
	sounds     map[model.SoundSlot]*widget.Select
	shop       *fyne.Container
	trophies   *widget.Label
	badges     map[string]*achievementRow
	nameEntry  *widget.Entry
	avatar     *widget.Entry
	progress   model.UserProgress
	state      timekeeper.State
	refreshing bool
}

// New builds the main window. It is shown by the caller.
func New(app fyne.App, title string, actions Actions) *Window {
	home := &Window{
		window:  app.NewWindow(title),
		actions: actions,
		state:   timekeeper.StateIdle,
		sounds:  map[model.SoundSlot]*widget.Select{},
		badges:  map[string]*achievementRow{},
	}

	home.remaining = canvas.NewText(timekeeper.FormatRemaining(model.DefaultDuration*60), theme.Color(theme.ColorNameForeground))
	home.remaining.TextSize = 56
	home.remaining.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	home.remaining.Alignment = fyne.TextAlignCenter
	home.countdown = widget.NewProgressBar()
	home.countdown.TextFormatter = func() string { return "" }

	home.durations = widget.NewSelect(durationOptions([]int{model.DefaultDuration}), func(option string) {
		if minutes, ok := parseDurationOption(option); ok && home.state == timekeeper.StateIdle {
			home.setRemaining(minutes*60, 1)
		}
	})
	home.durations.SetSelectedIndex(0)

	home.startBtn = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), home.handleStart)
	home.startBtn.Importance = widget.HighImportance
	home.pauseBtn = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), func() {
		if home.actions.TogglePause != nil {
			home.actions.TogglePause()
		}
	})
	home.giveUpBtn = widget.NewButtonWithIcon("Give up", theme.CancelIcon(), home.confirmGiveUp)

	home.stats = widget.NewLabel("")
	home.stats.Wrapping = fyne.TextWrapWord
	home.levelBar = widget.NewProgressBar()

	timerTab := container.NewVBox(
		layout.NewSpacer(),
		home.remaining,
		home.countdown,
		container.NewHBox(layout.NewSpacer(), home.durations, home.startBtn, home.pauseBtn, home.giveUpBtn, layout.NewSpacer()),
		layout.NewSpacer(),
		widget.NewSeparator(),
		home.stats,
		home.levelBar,
	)

	home.shop = container.NewVBox()
	shopTab := container.NewVScroll(home.shop)

	home.themes = widget.NewSelect(nil, func(name string) {
		if id, ok := themeIDByName(name); ok && !home.refreshing && home.actions.EquipTheme != nil {
			home.actions.EquipTheme(id)
		}
	})
	equipForm := widget.NewForm(widget.NewFormItem("Theme", home.themes))
	for _, slot := range model.SoundSlots {
		slot := slot
		selector := widget.NewSelect(nil, func(id string) {
			if !home.refreshing && home.actions.EquipSound != nil {
				home.actions.EquipSound(slot, id)
			}
		})
		home.sounds[slot] = selector
		equipForm.Append(string(slot), selector)
	}

	home.trophies = widget.NewLabel("")
	achievementList := container.NewVBox(home.trophies, widget.NewSeparator())
	for _, achievement := range model.DefaultAchievements() {
		row := newAchievementRow(achievement)
		home.badges[achievement.ID] = row
		achievementList.Add(row.content)
	}

	home.nameEntry = widget.NewEntry()
	home.avatar = widget.NewEntry()
	home.avatar.SetPlaceHolder("Avatar URL or file path")
	profileForm := &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("Name", home.nameEntry),
			widget.NewFormItem("Avatar", home.avatar),
		},
		SubmitText: "Save profile",
		OnSubmit: func() {
			if home.actions.UpdateProfile != nil {
				home.actions.UpdateProfile(home.nameEntry.Text, home.avatar.Text)
			}
		},
	}

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Focus", theme.HistoryIcon(), timerTab),
		container.NewTabItemWithIcon("Shop", theme.ContentAddIcon(), shopTab),
		container.NewTabItemWithIcon("Achievements", theme.ConfirmIcon(), container.NewVScroll(achievementList)),
		container.NewTabItemWithIcon("Equip", theme.ColorPaletteIcon(), container.NewVScroll(equipForm)),
		container.NewTabItemWithIcon("Profile", theme.AccountIcon(), profileForm),
	)

	toolbar := widget.NewToolbar(
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), func() {
			if home.actions.OpenPreferences != nil {
				home.actions.OpenPreferences()
			}
		}),
	)

	home.window.SetContent(container.NewBorder(toolbar, nil, nil, nil, tabs))
	home.window.Resize(fyne.NewSize(560, 460))
	home.window.SetCloseIntercept(home.window.Hide)
	home.applyState()
	return home
}

// Window exposes the native window for the tray title sync.
func (home *Window) Window() fyne.Window {
	return home.window
}

// Show displays and focuses the window.
func (home *Window) Show() {
	home.window.Show()
	home.window.RequestFocus()
}

// HandleEvent applies a timer event. Must run on the UI goroutine.
func (home *Window) HandleEvent(event timekeeper.Event) {
	switch event.Type {
	case timekeeper.EventProgress:
		home.setRemaining(int(event.Remaining.Seconds()), event.Progress)
	case timekeeper.EventStateChange:
		home.state = event.State
		if event.State == timekeeper.StateIdle {
			home.resetCountdown()
		} else if event.Remaining > 0 {
			home.setRemaining(int(event.Remaining.Seconds()), event.Progress)
		}
		home.applyState()
	}
}

// SetProgress redraws the stats, the shop and the equip selectors. Must run on
// the UI goroutine.
func (home *Window) SetProgress(progress model.UserProgress, level model.LevelProgress) {
	home.progress = progress
	home.refreshing = true
	defer func() { home.refreshing = false }()

	home.stats.SetText(statsText(progress, level))
	home.levelBar.SetValue(level.Fraction)
	if home.nameEntry.Text == "" {
		home.nameEntry.SetText(progress.Name)
		home.avatar.SetText(progress.AvatarRef)
	}

	selected := home.durations.Selected
	home.durations.Options = durationOptions(progress.UnlockedDurations)
	home.durations.Refresh()
	if selected == "" {
		home.durations.SetSelectedIndex(0)
	} else {
		home.durations.SetSelected(selected)
	}

	home.themes.Options = themeNames(progress.UnlockedThemes)
	home.themes.SetSelected(model.ThemeByID(progress.EquippedTheme).Name)
	for slot, selector := range home.sounds {
		selector.Options = ownedSounds(progress, slot)
		selector.SetSelected(progress.EquippedSounds[slot])
	}

	home.rebuildShop()
	home.trophies.SetText(achievementSummary(progress, model.DefaultAchievements()))
	for id, row := range home.badges {
		row.setUnlocked(progress.HasAchievement(id))
	}
}

func (home *Window) rebuildShop() {
	home.shop.RemoveAll()
	for _, item := range model.ShopItems() {
		item := item
		state := stateOf(item, home.progress)
		button := widget.NewButton(buttonLabel(item, state), func() { home.buy(item) })
		if state != shopBuyable {
			button.Disable()
		}
		home.shop.Add(container.NewBorder(nil, nil, nil, button,
			widget.NewLabel(item.Name+" · "+item.Description)))
	}
	home.shop.Refresh()
}

func (home *Window) buy(item model.ShopItem) {
	if home.actions.Purchase == nil {
		return
	}
	switch home.actions.Purchase(item.ID) {
	case progression.InsufficientFunds:
		dialog.ShowInformation("Not enough XP", "Finish a few more sessions to afford "+item.Name+".", home.window)
	case progression.AlreadyOwned:
		dialog.ShowInformation("Already yours", item.Name+" is already unlocked.", home.window)
	case progression.UnknownItem:
		dialog.ShowInformation("Unavailable", item.Name+" can no longer be bought.", home.window)
	}
}

func (home *Window) handleStart() {
	minutes, ok := parseDurationOption(home.durations.Selected)
	if !ok || home.actions.Start == nil {
		return
	}
	if !home.actions.Start(minutes) {
		dialog.ShowInformation("Locked", "Unlock this duration in the shop first.", home.window)
	}
}

func (home *Window) confirmGiveUp() {
	dialog.ShowConfirm("Give up?", "Abandoning the session resets your streak.", func(confirmed bool) {
		if confirmed && home.actions.GiveUp != nil {
			home.actions.GiveUp()
		}
	}, home.window)
}

func (home *Window) resetCountdown() {
	minutes, ok := parseDurationOption(home.durations.Selected)
	if !ok {
		minutes = model.DefaultDuration
	}
	home.setRemaining(minutes*60, 1)
}

func (home *Window) setRemaining(seconds int, progress float64) {
	home.remaining.Text = timekeeper.FormatRemaining(seconds)
	home.remaining.Color = theme.Color(theme.ColorNameForeground)
	home.remaining.Refresh()
	home.countdown.SetValue(progress)
}

func (home *Window) applyState() {
	switch home.state {
	case timekeeper.StateRunning:
		home.startBtn.Disable()
		home.durations.Disable()
		home.pauseBtn.Enable()
		home.pauseBtn.SetText("Pause")
		home.pauseBtn.SetIcon(theme.MediaPauseIcon())
		home.giveUpBtn.Enable()
	case timekeeper.StatePaused:
		home.startBtn.Disable()
		home.durations.Disable()
		home.pauseBtn.Enable()
		home.pauseBtn.SetText("Resume")
		home.pauseBtn.SetIcon(theme.MediaPlayIcon())
		home.giveUpBtn.Enable()
	default:
		home.startBtn.Enable()
		home.durations.Enable()
		home.pauseBtn.Disable()
		home.pauseBtn.SetText("Pause")
		home.pauseBtn.SetIcon(theme.MediaPauseIcon())
		home.giveUpBtn.Disable()
	}
}

// achievementRow shows one catalog achievement, locked or unlocked.
type achievementRow struct {
	icon     *widget.Icon
	title    *widget.Label
	unlocked bool
	content  fyne.CanvasObject
}

func newAchievementRow(achievement model.Achievement) *achievementRow {
	row := &achievementRow{
		icon:  widget.NewIcon(theme.RadioButtonIcon()),
		title: widget.NewLabel(achievement.Title),
	}
	description := widget.NewLabel(achievement.Description)
	description.Importance = widget.LowImportance
	row.content = container.NewBorder(nil, nil, row.icon, widget.NewLabel(rewardText(achievement)),
		container.NewVBox(row.title, description))
	row.setUnlocked(false)
	return row
}

func (row *achievementRow) setUnlocked(unlocked bool) {
	row.unlocked = unlocked
	if unlocked {
		row.icon.SetResource(theme.ConfirmIcon())
		row.title.TextStyle = fyne.TextStyle{Bold: true}
		row.title.Importance = widget.SuccessImportance
	} else {
		row.icon.SetResource(theme.RadioButtonIcon())
		row.title.TextStyle = fyne.TextStyle{}
		row.title.Importance = widget.LowImportance
	}
	row.title.Refresh()
}
