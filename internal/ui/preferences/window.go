package preferences

import (
	"fmt"
	"math"

	"aestheticpomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var languageLabels = map[model.Language]string{
	model.LanguageEnglish:    "English",
	model.LanguagePortuguese: "Português",
}

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      model.Settings
	onSave        func(model.Settings)
	sound         *widget.Check
	soundVolume   *widget.Slider
	music         *widget.Check
	musicVolume   *widget.Slider
	notifications *widget.Check
	darkMode      *widget.Check
	language      *widget.Select
	soundLabel    *widget.Label
	musicLabel    *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("Aesthetic Pomodoro Settings")

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		sound:         widget.NewCheck("Sound effects", nil),
		soundVolume:   newVolumeSlider(),
		music:         widget.NewCheck("Background music", nil),
		musicVolume:   newVolumeSlider(),
		notifications: widget.NewCheck("Notify when a session ends", nil),
		darkMode:      widget.NewCheck("Dark mode", nil),
		language:      widget.NewSelect([]string{languageLabels[model.LanguageEnglish], languageLabels[model.LanguagePortuguese]}, nil),
		soundLabel:    widget.NewLabel(""),
		musicLabel:    widget.NewLabel(""),
	}
	prefs.soundVolume.OnChanged = func(percent float64) { prefs.soundLabel.SetText(volumeText(percent / 100)) }
	prefs.musicVolume.OnChanged = func(percent float64) { prefs.musicLabel.SetText(volumeText(percent / 100)) }

	form := container.NewVBox(
		widget.NewLabelWithStyle("Audio", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.sound,
		container.NewBorder(nil, nil, widget.NewLabel("Volume"), prefs.soundLabel, prefs.soundVolume),
		prefs.music,
		container.NewBorder(nil, nil, widget.NewLabel("Volume"), prefs.musicLabel, prefs.musicVolume),
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.notifications,
		prefs.darkMode,
		container.NewHBox(widget.NewLabel("Language"), prefs.language),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 380))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.soundVolume.SetValue(toPercent(settings.SoundVolume))
	prefs.music.SetChecked(settings.MusicEnabled)
	prefs.musicVolume.SetValue(toPercent(settings.MusicVolume))
	prefs.notifications.SetChecked(settings.NotificationsEnabled)
	prefs.darkMode.SetChecked(settings.DarkMode)
	prefs.language.SetSelected(languageLabels[settings.Language])
	prefs.soundLabel.SetText(volumeText(settings.SoundVolume))
	prefs.musicLabel.SetText(volumeText(settings.MusicVolume))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.SoundEnabled = prefs.sound.Checked
	settings.SoundVolume = prefs.soundVolume.Value / 100
	settings.MusicEnabled = prefs.music.Checked
	settings.MusicVolume = prefs.musicVolume.Value / 100
	settings.NotificationsEnabled = prefs.notifications.Checked
	settings.DarkMode = prefs.darkMode.Checked
	settings.Language = languageFor(prefs.language.Selected, settings.Language)

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

// Volumes are edited as whole percentages so slider snapping stays exact.
func newVolumeSlider() *widget.Slider {
	slider := widget.NewSlider(0, 100)
	slider.Step = 5
	return slider
}

func toPercent(volume float64) float64 {
	return math.Round(volume * 100)
}

func volumeText(value float64) string {
	return fmt.Sprintf("%d%%", int(value*100+0.5))
}

func languageFor(label string, fallback model.Language) model.Language {
	for language, text := range languageLabels {
		if text == label {
			return language
		}
	}
	return fallback
}
