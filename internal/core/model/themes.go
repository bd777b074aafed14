package model

// ThemeID identifies a cosmetic theme.
type ThemeID string

const (
	ThemeMinimalist ThemeID = "minimalist"
	ThemeLoFi       ThemeID = "lofi"
	ThemeCyberpunk  ThemeID = "cyberpunk"
	ThemeSunset     ThemeID = "sunset"
	ThemeForest     ThemeID = "forest"
	ThemeMidnight   ThemeID = "midnight"
	ThemeCherry     ThemeID = "cherry"
	ThemeMatrix     ThemeID = "matrix"
	ThemeVaporwave  ThemeID = "vaporwave"
	ThemeOcean      ThemeID = "ocean"
	ThemeGold       ThemeID = "gold"
	ThemeCoffee     ThemeID = "coffee"
	ThemeSpace      ThemeID = "space"
	ThemeDream      ThemeID = "dream"
	ThemeNoir       ThemeID = "noir"
	ThemeDiamond    ThemeID = "diamond"
	ThemeTimeGod    ThemeID = "timegod"
)

// DefaultTheme is owned by everyone and stands in for unknown ids.
const DefaultTheme = ThemeMinimalist

// SoundPackID groups the cue flavour of a theme.
type SoundPackID string

const (
	SoundPackDefault    SoundPackID = "default"
	SoundPackRetro      SoundPackID = "retro"
	SoundPackSoft       SoundPackID = "soft"
	SoundPackFuturistic SoundPackID = "futuristic"
	SoundPackNature     SoundPackID = "nature"
)

// Background music tracks.
const (
	MusicLofi    = "https://cdn.pixabay.com/download/audio/2022/05/27/audio_1808fbf07a.mp3"
	MusicUpbeat  = "https://cdn.pixabay.com/download/audio/2022/03/10/audio_c8c8a73467.mp3"
	MusicAmbient = "https://cdn.pixabay.com/download/audio/2022/02/07/audio_6585440601.mp3"
)

// Palette holds CSS-style colors: "#rgb", "#rrggbb" or "rgba(r, g, b, a)".
type Palette struct {
	Background [2]string
	Text       string
	Primary    string
	Secondary  string
	Accent     string
	Surface    string
}

// Theme is a purchasable look and its background music.
type Theme struct {
	ID         ThemeID
	Name       string
	Colors     Palette
	DarkColors Palette
	Vibe       string
	MusicURL   string
	SoundPack  SoundPackID
	Price      int
}

// PaletteFor returns the light or dark palette.
func (theme Theme) PaletteFor(dark bool) Palette {
	if dark {
		return theme.DarkColors
	}
	return theme.Colors
}

var themes = []Theme{
	{
		ID:         ThemeMinimalist,
		Name:       "Minimalist White",
		Colors:     Palette{Background: [2]string{"#ffffff", "#f0f0f0"}, Text: "#333333", Primary: "#000000", Secondary: "#666666", Accent: "#e0e0e0", Surface: "rgba(255, 255, 255, 0.9)"},
		DarkColors: Palette{Background: [2]string{"#121212", "#2c2c2c"}, Text: "#ffffff", Primary: "#ffffff", Secondary: "#a0a0a0", Accent: "#404040", Surface: "rgba(30, 30, 30, 0.9)"},
		Vibe:       "Clean, focused, distraction-free.",
		MusicURL:   MusicLofi,
		SoundPack:  SoundPackDefault,
		Price:      0,
	},
	{
		ID:         ThemeLoFi,
		Name:       "Lo-Fi Rain",
		Colors:     Palette{Background: [2]string{"#2b32b2", "#1488cc"}, Text: "#e0e0e0", Primary: "#ffd700", Secondary: "#a0a0a0", Accent: "#4b0082", Surface: "rgba(0, 0, 0, 0.6)"},
		DarkColors: Palette{Background: [2]string{"#1a1f71", "#0d5c8a"}, Text: "#cccccc", Primary: "#e6c200", Secondary: "#808080", Accent: "#300052", Surface: "rgba(0, 0, 0, 0.8)"},
		Vibe:       "Relaxing, cozy, rainy evening.",
		MusicURL:   MusicLofi,
		SoundPack:  SoundPackSoft,
		Price:      100,
	},
	{
		ID:         ThemeCyberpunk,
		Name:       "Cyberpunk Neon",
		Colors:     Palette{Background: [2]string{"#0f0c29", "#302b63"}, Text: "#00ffcc", Primary: "#ff0099", Secondary: "#cc00ff", Accent: "#00ffcc", Surface: "rgba(15, 12, 41, 0.8)"},
		DarkColors: Palette{Background: [2]string{"#05040e", "#181531"}, Text: "#00ccaa", Primary: "#cc007a", Secondary: "#9900cc", Accent: "#00ccaa", Surface: "rgba(10, 8, 30, 0.9)"},
		Vibe:       "High-tech, energetic, futuristic.",
		MusicURL:   MusicUpbeat,
		SoundPack:  SoundPackFuturistic,
		Price:      500,
	},
	{
		ID:         ThemeSunset,
		Name:       "Sunset Vibes",
		Colors:     Palette{Background: [2]string{"#ff512f", "#dd2476"}, Text: "#fff", Primary: "#ffeb3b", Secondary: "#ffccbc", Accent: "#ff9800", Surface: "rgba(255, 81, 47, 0.8)"},
		DarkColors: Palette{Background: [2]string{"#8f2c1a", "#7a1441"}, Text: "#e0e0e0", Primary: "#d4c028", Secondary: "#cc9e8e", Accent: "#cc7a00", Surface: "rgba(143, 44, 26, 0.9)"},
		Vibe:       "Warm, energetic, evening glow.",
		MusicURL:   MusicUpbeat,
		SoundPack:  SoundPackRetro,
		Price:      200,
	},
	{
		ID:         ThemeForest,
		Name:       "Deep Forest",
		Colors:     Palette{Background: [2]string{"#134e5e", "#71b280"}, Text: "#e8f5e9", Primary: "#a5d6a7", Secondary: "#81c784", Accent: "#2e7d32", Surface: "rgba(19, 78, 94, 0.8)"},
		DarkColors: Palette{Background: [2]string{"#0a2b33", "#3e6146"}, Text: "#c8e6c9", Primary: "#74a676", Secondary: "#5a8c5d", Accent: "#1b4d1e", Surface: "rgba(10, 43, 51, 0.9)"},
		Vibe:       "Natural, calm, fresh air.",
		MusicURL:   MusicAmbient,
		SoundPack:  SoundPackNature,
		Price:      250,
	},
	{
		ID:         ThemeMidnight,
		Name:       "Midnight Blue",
		Colors:     Palette{Background: [2]string{"#000428", "#004e92"}, Text: "#fff", Primary: "#4fc3f7", Secondary: "#0288d1", Accent: "#b3e5fc", Surface: "rgba(0, 4, 40, 0.8)"},
		DarkColors: Palette{Background: [2]string{"#000214", "#002749"}, Text: "#e0e0e0", Primary: "#29b6f6", Secondary: "#01579b", Accent: "#81d4fa", Surface: "rgba(0, 2, 20, 0.9)"},
		Vibe:       "Deep focus, silent night.",
		MusicURL:   MusicAmbient,
		SoundPack:  SoundPackSoft,
		Price:      300,
	},
	{
		ID:         ThemeCherry,
		Name:       "Cherry Blossom",
		Colors:     Palette{Background: [2]string{"#fbc2eb", "#a6c1ee"}, Text: "#4a4a4a", Primary: "#ff80ab", Secondary: "#ff4081", Accent: "#f50057", Surface: "rgba(251, 194, 235, 0.8)"},
		DarkColors: Palette{Background: [2]string{"#7d6175", "#536077"}, Text: "#e0e0e0", Primary: "#cc6689", Secondary: "#cc3367", Accent: "#c20045", Surface: "rgba(125, 97, 117, 0.9)"},
		Vibe:       "Soft, floral, spring breeze.",
		MusicURL:   MusicLofi,
		SoundPack:  SoundPackSoft,
		Price:      350,
	},
	{
		ID:         ThemeMatrix,
		Name:       "The Matrix",
		Colors:     Palette{Background: [2]string{"#000000", "#0f2027"}, Text: "#00ff00", Primary: "#00ff00", Secondary: "#003300", Accent: "#33ff33", Surface: "rgba(0, 0, 0, 0.9)"},
		DarkColors: Palette{Background: [2]string{"#000000", "#050b0d"}, Text: "#00cc00", Primary: "#00cc00", Secondary: "#001a00", Accent: "#29cc29", Surface: "rgba(0, 0, 0, 0.95)"},
		Vibe:       "Digital, code, hacker mode.",
		MusicURL:   MusicUpbeat,
		SoundPack:  SoundPackFuturistic,
		Price:      1000,
	},
	{
		ID:         ThemeVaporwave,
		Name:       "Vaporwave",
		Colors:     Palette{Background: [2]string{"#f79d00", "#64f38c"}, Text: "#2c3e50", Primary: "#e74c3c", Secondary: "#8e44ad", Accent: "#3498db", Surface: "rgba(255, 255, 255, 0.7)"},
		DarkColors: Palette{Background: [2]string{"#7b4e00", "#327946"}, Text: "#e0e0e0", Primary: "#b93c30", Secondary: "#71368a", Accent: "#297ab0", Surface: "rgba(40, 40, 40, 0.8)"},
		Vibe:       "Retro, nostalgic, glitchy.",
		MusicURL:   MusicUpbeat,
		SoundPack:  SoundPackRetro,
		Price:      800,
	},
	{
		ID:         ThemeOcean,
		Name:       "Ocean Breeze",
		Colors:     Palette{Background: [2]string{"#2193b0", "#6dd5ed"}, Text: "#fff", Primary: "#b2ebf2", Secondary: "#4dd0e1", Accent: "#00bcd4", Surface: "rgba(33, 147, 176, 0.8)"},
		DarkColors: Palette{Background: [2]string{"#104958", "#366a76"}, Text: "#e0e0e0", Primary: "#8ebcc1", Secondary: "#3da6b4", Accent: "#0096aa", Surface: "rgba(16, 73, 88, 0.9)"},
		Vibe:       "Cool, refreshing, vast.",
		MusicURL:   MusicAmbient,
		SoundPack:  SoundPackNature,
		Price:      400,
	},
	{
		ID:         ThemeGold,
		Name:       "Luxury Gold",
		Colors:     Palette{Background: [2]string{"#bf953f", "#fcf6ba"}, Text: "#4a3b00", Primary: "#b38728", Secondary: "#fbf5b7", Accent: "#aa771c", Surface: "rgba(255, 255, 255, 0.9)"},
		DarkColors: Palette{Background: [2]string{"#5f4a1f", "#7e7b5d"}, Text: "#fcf6ba", Primary: "#d4a030", Secondary: "#7d7a5b", Accent: "#cc8e22", Surface: "rgba(95, 74, 31, 0.9)"},
		Vibe:       "Premium, rich, exclusive.",
		MusicURL:   MusicUpbeat,
		SoundPack:  SoundPackDefault,
		Price:      5000,
	},
	{
		ID:         ThemeCoffee,
		Name:       "Coffee Shop",
		Colors:     Palette{Background: [2]string{"#3e2723", "#5d4037"}, Text: "#d7ccc8", Primary: "#a1887f", Secondary: "#8d6e63", Accent: "#795548", Surface: "rgba(62, 39, 35, 0.9)"},
		DarkColors: Palette{Background: [2]string{"#1f1311", "#2e201b"}, Text: "#bcaaa4", Primary: "#8d6e63", Secondary: "#6d4c41", Accent: "#5d4037", Surface: "rgba(31, 19, 17, 0.95)"},
		Vibe:       "Warm, aromatic, productive.",
		MusicURL:   MusicLofi,
		SoundPack:  SoundPackSoft,
		Price:      150,
	},
	{
		ID:         ThemeSpace,
		Name:       "Deep Space",
		Colors:     Palette{Background: [2]string{"#000428", "#000000"}, Text: "#fff", Primary: "#90caf9", Secondary: "#bdbdbd", Accent: "#e0e0e0", Surface: "rgba(0, 0, 0, 0.8)"},
		DarkColors: Palette{Background: [2]string{"#000214", "#000000"}, Text: "#e0e0e0", Primary: "#64b5f6", Secondary: "#9e9e9e", Accent: "#bdbdbd", Surface: "rgba(0, 0, 0, 0.9)"},
		Vibe:       "Infinite, quiet, starry.",
		MusicURL:   MusicAmbient,
		SoundPack:  SoundPackFuturistic,
		Price:      600,
	},
	{
		ID:         ThemeDream,
		Name:       "Sweet Dreams",
		Colors:     Palette{Background: [2]string{"#a18cd1", "#fbc2eb"}, Text: "#fff", Primary: "#f8bbd0", Secondary: "#e1bee7", Accent: "#ce93d8", Surface: "rgba(161, 140, 209, 0.8)"},
		DarkColors: Palette{Background: [2]string{"#504668", "#7d6175"}, Text: "#e0e0e0", Primary: "#c48b9f", Secondary: "#b08eb5", Accent: "#9c6fa3", Surface: "rgba(80, 70, 104, 0.9)"},
		Vibe:       "Soft, pastel, dreamy.",
		MusicURL:   MusicLofi,
		SoundPack:  SoundPackSoft,
		Price:      450,
	},
	{
		ID:         ThemeNoir,
		Name:       "Film Noir",
		Colors:     Palette{Background: [2]string{"#232526", "#414345"}, Text: "#e0e0e0", Primary: "#9e9e9e", Secondary: "#616161", Accent: "#bdbdbd", Surface: "rgba(35, 37, 38, 0.9)"},
		DarkColors: Palette{Background: [2]string{"#111213", "#202122"}, Text: "#cccccc", Primary: "#757575", Secondary: "#424242", Accent: "#9e9e9e", Surface: "rgba(17, 18, 19, 0.95)"},
		Vibe:       "Classic, monochrome, serious.",
		MusicURL:   MusicAmbient,
		SoundPack:  SoundPackRetro,
		Price:      700,
	},
	{
		ID:         ThemeDiamond,
		Name:       "Diamond Elite",
		Colors:     Palette{Background: [2]string{"#E0EAFC", "#CFDEF3"}, Text: "#2c3e50", Primary: "#b9f2ff", Secondary: "#a0d8ef", Accent: "#00ffff", Surface: "rgba(255, 255, 255, 0.8)"},
		DarkColors: Palette{Background: [2]string{"#1c2a3a", "#101a26"}, Text: "#e0eafc", Primary: "#00bcd4", Secondary: "#0097a7", Accent: "#00e5ff", Surface: "rgba(28, 42, 58, 0.9)"},
		Vibe:       "Pure luxury, brilliance, perfection.",
		MusicURL:   MusicUpbeat,
		SoundPack:  SoundPackFuturistic,
		Price:      10000,
	},
	{
		ID:         ThemeTimeGod,
		Name:       "Time God",
		Colors:     Palette{Background: [2]string{"#20002c", "#cbb4d4"}, Text: "#ffd700", Primary: "#ffd700", Secondary: "#c0c0c0", Accent: "#ffffff", Surface: "rgba(32, 0, 44, 0.9)"},
		DarkColors: Palette{Background: [2]string{"#100016", "#655a6a"}, Text: "#ccac00", Primary: "#ccac00", Secondary: "#808080", Accent: "#e0e0e0", Surface: "rgba(16, 0, 22, 0.95)"},
		Vibe:       "Master of time, celestial, omnipotent.",
		MusicURL:   MusicAmbient,
		SoundPack:  SoundPackFuturistic,
		Price:      50000,
	},
}

var themeIndex = func() map[ThemeID]Theme {
	index := make(map[ThemeID]Theme, len(themes))
	for _, theme := range themes {
		index[theme.ID] = theme
	}
	return index
}()

// Themes returns the catalog in display order.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// ThemeByID never fails: unknown ids resolve to the default theme.
func ThemeByID(id ThemeID) Theme {
	if theme, ok := themeIndex[id]; ok {
		return theme
	}
	return themeIndex[DefaultTheme]
}

// IsKnownTheme reports whether the id belongs to the catalog.
func IsKnownTheme(id ThemeID) bool {
	_, ok := themeIndex[id]
	return ok
}
