package toast

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// DefaultVisible is how long one announcement stays on screen.
const DefaultVisible = 3 * time.Second

var (
	achievementAccent = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	levelUpAccent     = color.NRGBA{R: 129, G: 199, B: 132, A: 255}
	purchaseAccent    = color.NRGBA{R: 144, G: 202, B: 249, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window shows announcements one at a time in an undecorated popup.
type Window struct {
	window        fyne.Window
	background    *canvas.Rectangle
	accent        *canvas.Rectangle
	titleLabel    *canvas.Text
	subtitleLabel *canvas.Text
	visible       time.Duration

	mu      sync.Mutex
	pending queue
	showing bool
}

// New creates the popup window. It stays hidden until Show is called.
func New(app fyne.App, visible time.Duration) *Window {
	if visible <= 0 {
		visible = DefaultVisible
	}

	window := app.NewWindow("Aesthetic Pomodoro")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 20, G: 20, B: 24, A: 230})
	background.CornerRadius = 12
	accent := canvas.NewRectangle(achievementAccent)

	titleLabel := canvas.NewText("", color.White)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 20

	subtitleLabel := canvas.NewText("", color.NRGBA{R: 220, G: 220, B: 220, A: 255})
	subtitleLabel.TextSize = 14

	content := container.New(&toastLayout{}, accent, titleLabel, subtitleLabel)
	window.SetContent(container.NewStack(background, content))
	window.Resize(fyne.NewSize(360, 96))

	return &Window{
		window:        window,
		background:    background,
		accent:        accent,
		titleLabel:    titleLabel,
		subtitleLabel: subtitleLabel,
		visible:       visible,
	}
}

// Show queues an announcement. Safe to call from any goroutine.
func (toast *Window) Show(announcement Announcement) {
	toast.mu.Lock()
	toast.pending.push(announcement)
	busy := toast.showing
	toast.showing = true
	toast.mu.Unlock()

	if !busy {
		fyne.Do(toast.next)
	}
}

// next displays the head of the queue or hides the popup when it is empty.
func (toast *Window) next() {
	toast.mu.Lock()
	announcement, ok := toast.pending.pop()
	if !ok {
		toast.showing = false
	}
	toast.mu.Unlock()

	if !ok {
		toast.window.Hide()
		return
	}

	toast.accent.FillColor = accentFor(announcement.Kind)
	toast.titleLabel.Text = announcement.Title
	toast.subtitleLabel.Text = announcement.Subtitle
	toast.accent.Refresh()
	toast.titleLabel.Refresh()
	toast.subtitleLabel.Refresh()

	toast.window.CenterOnScreen()
	toast.window.Show()

	time.AfterFunc(toast.visible, func() {
		fyne.Do(toast.next)
	})
}

func accentFor(kind Kind) color.Color {
	switch kind {
	case KindLevelUp:
		return levelUpAccent
	case KindPurchase:
		return purchaseAccent
	default:
		return achievementAccent
	}
}

// toastLayout puts a thin accent bar on the left and stacks the two lines of text.
type toastLayout struct{}

const (
	accentWidth = float32(6)
	toastPad    = float32(14)
)

func (layout *toastLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	accent, title, subtitle := objects[0], objects[1], objects[2]

	accent.Move(fyne.NewPos(0, 0))
	accent.Resize(fyne.NewSize(accentWidth, size.Height))

	textX := accentWidth + toastPad
	textWidth := size.Width - textX - toastPad
	if textWidth < 0 {
		textWidth = 0
	}

	titleSize := title.MinSize()
	subtitleSize := subtitle.MinSize()
	blockHeight := titleSize.Height + 6 + subtitleSize.Height
	top := (size.Height - blockHeight) / 2
	if top < toastPad/2 {
		top = toastPad / 2
	}

	title.Move(fyne.NewPos(textX, top))
	title.Resize(fyne.NewSize(textWidth, titleSize.Height))
	subtitle.Move(fyne.NewPos(textX, top+titleSize.Height+6))
	subtitle.Resize(fyne.NewSize(textWidth, subtitleSize.Height))
}

func (layout *toastLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	titleSize := objects[1].MinSize()
	subtitleSize := objects[2].MinSize()
	width := titleSize.Width
	if subtitleSize.Width > width {
		width = subtitleSize.Width
	}
	return fyne.NewSize(width+accentWidth+toastPad*2, titleSize.Height+subtitleSize.Height+6+toastPad)
}
