package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"aestheticpomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme renders the equipped catalog theme. The dark flag comes from the user
// settings and overrides the OS variant.
type Theme struct {
	id      model.ThemeID
	dark    bool
	palette model.Palette
	base    fyne.Theme
}

var _ fyne.Theme = (*Theme)(nil)

// New builds a fyne theme for the catalog theme id.
func New(id model.ThemeID, dark bool) *Theme {
	catalog := model.ThemeByID(id)
	return &Theme{
		id:      catalog.ID,
		dark:    dark,
		palette: catalog.PaletteFor(dark),
		base:    theme.DefaultTheme(),
	}
}

// ID returns the catalog theme in use.
func (t *Theme) ID() model.ThemeID {
	return t.id
}

// Dark reports whether the dark palette is used.
func (t *Theme) Dark() bool {
	return t.dark
}

func (t *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := theme.VariantLight
	if t.dark {
		variant = theme.VariantDark
	}

	var source string
	switch name {
	case theme.ColorNameBackground:
		source = t.palette.Background[0]
	case theme.ColorNameForeground:
		source = t.palette.Text
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		source = t.palette.Primary
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		source = t.palette.Surface
	case theme.ColorNameHover, theme.ColorNameSelection:
		source = t.palette.Secondary
	case theme.ColorNameSuccess:
		source = t.palette.Accent
	}

	if source != "" {
		if parsed, err := ParseColor(source); err == nil {
			return parsed
		}
	}
	return t.base.Color(name, variant)
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}

// ParseColor understands "#rgb", "#rrggbb", "#rrggbbaa" and "rgba(r, g, b, a)".
func ParseColor(value string) (color.NRGBA, error) {
	value = strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(value, "#"):
		return parseHex(value[1:])
	case strings.HasPrefix(value, "rgba(") && strings.HasSuffix(value, ")"):
		return parseRGBA(value[len("rgba(") : len(value)-1])
	}
	return color.NRGBA{}, fmt.Errorf("unsupported color %q", value)
}

func parseHex(hex string) (color.NRGBA, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	raw, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.NRGBA{
		R: uint8(raw >> 24),
		G: uint8(raw >> 16),
		B: uint8(raw >> 8),
		A: uint8(raw),
	}, nil
}

func parseRGBA(body string) (color.NRGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("invalid rgba color %q", body)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		channel, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || channel < 0 || channel > 255 {
			return color.NRGBA{}, fmt.Errorf("invalid rgba channel %q", parts[i])
		}
		channels[i] = uint8(channel)
	}
	alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || alpha < 0 || alpha > 1 {
		return color.NRGBA{}, fmt.Errorf("invalid rgba alpha %q", parts[3])
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: uint8(alpha*255 + 0.5)}, nil
}
