package model

import "fmt"

// ShopCategory groups catalog items.
type ShopCategory string

const (
	CategoryTheme ShopCategory = "themes"
	CategorySound ShopCategory = "sounds"
	CategoryTimer ShopCategory = "timer"
)

// ShopItem is a purchasable entry of the shop.
type ShopItem struct {
	ID              string
	Name            string
	Category        ShopCategory
	Price           int
	Description     string
	Slot            SoundSlot
	SoundURL        string
	DurationMinutes int
	Theme           ThemeID
}

const (
	soundClickURL  = "https://assets.mixkit.co/active_storage/sfx/2568/2568-preview.mp3"
	soundAlarmURL  = "https://assets.mixkit.co/active_storage/sfx/995/995-preview.mp3"
	soundGiveUpURL = "https://assets.mixkit.co/active_storage/sfx/2572/2572-preview.mp3"
)

var timerDurations = []ShopItem{
	{ID: "duration_40", Name: "40 Minutes", Category: CategoryTimer, Price: 500, Description: "Unlock 40 min focus session", DurationMinutes: 40},
	{ID: "duration_50", Name: "50 Minutes", Category: CategoryTimer, Price: 800, Description: "Unlock 50 min focus session", DurationMinutes: 50},
	{ID: "duration_60", Name: "60 Minutes", Category: CategoryTimer, Price: 1000, Description: "Unlock 60 min focus session", DurationMinutes: 60},
}

var longBreaks = []ShopItem{
	{ID: "break_10", Name: "10 Min Break", Category: CategoryTimer, Price: 200, Description: "Unlock 10 min break", DurationMinutes: 10},
	{ID: "break_15", Name: "15 Min Break", Category: CategoryTimer, Price: 300, Description: "Unlock 15 min break", DurationMinutes: 15},
	{ID: "break_30", Name: "30 Min Break", Category: CategoryTimer, Price: 600, Description: "Unlock 30 min break", DurationMinutes: 30},
	{ID: "break_45", Name: "45 Min Break", Category: CategoryTimer, Price: 800, Description: "Unlock 45 min break", DurationMinutes: 45},
	{ID: "break_60", Name: "60 Min Break", Category: CategoryTimer, Price: 1000, Description: "Unlock 60 min break", DurationMinutes: 60},
}

var soundItems = []ShopItem{
	{ID: "click_default", Name: "Soft Click", Category: CategorySound, Price: 0, Description: "Standard soft click", Slot: SlotClick, SoundURL: soundClickURL},
	{ID: "click_retro", Name: "Retro Click", Category: CategorySound, Price: 100, Description: "8-bit click sound", Slot: SlotClick, SoundURL: soundClickURL},
	{ID: "click_mech", Name: "Mech Keyboard", Category: CategorySound, Price: 200, Description: "Mechanical switch click", Slot: SlotClick, SoundURL: soundClickURL},

	{ID: "alarm_default", Name: "Bell Alarm", Category: CategorySound, Price: 0, Description: "Standard bell", Slot: SlotAlarm, SoundURL: soundAlarmURL},
	{ID: "alarm_digital", Name: "Digital Alarm", Category: CategorySound, Price: 150, Description: "Beep beep!", Slot: SlotAlarm, SoundURL: soundAlarmURL},
	{ID: "alarm_zen", Name: "Zen Gong", Category: CategorySound, Price: 300, Description: "Deep meditation gong", Slot: SlotAlarm, SoundURL: soundAlarmURL},

	{ID: "start_default", Name: "Wind Up", Category: CategorySound, Price: 0, Description: "Timer start sound", Slot: SlotStart, SoundURL: soundClickURL},

	{ID: "giveup_default", Name: "Failure", Category: CategorySound, Price: 0, Description: "Sad trombone", Slot: SlotGiveUp, SoundURL: soundGiveUpURL},
}

// TimerDurations returns the focus lengths for sale.
func TimerDurations() []ShopItem {
	return append([]ShopItem(nil), timerDurations...)
}

// LongBreaks returns the break lengths for sale.
func LongBreaks() []ShopItem {
	return append([]ShopItem(nil), longBreaks...)
}

// SoundItems returns the sound catalog.
func SoundItems() []ShopItem {
	return append([]ShopItem(nil), soundItems...)
}

// ThemeItems exposes every theme as a shop entry priced at the theme price.
func ThemeItems() []ShopItem {
	items := make([]ShopItem, 0, len(themes))
	for _, theme := range themes {
		items = append(items, ShopItem{
			ID:          "theme_" + string(theme.ID),
			Name:        theme.Name,
			Category:    CategoryTheme,
			Price:       theme.Price,
			Description: theme.Vibe,
			Theme:       theme.ID,
		})
	}
	return items
}

// ShopItems returns the whole shop: themes, sounds, focus lengths, breaks.
func ShopItems() []ShopItem {
	items := ThemeItems()
	items = append(items, soundItems...)
	items = append(items, timerDurations...)
	items = append(items, longBreaks...)
	return items
}

// ShopItemByID looks an item up across every category.
func ShopItemByID(id string) (ShopItem, error) {
	for _, item := range ShopItems() {
		if item.ID == id {
			return item, nil
		}
	}
	return ShopItem{}, fmt.Errorf("shop item %q: %w", id, ErrNotFound)
}

// SoundByID returns the catalog entry of a sound id.
func SoundByID(id string) (ShopItem, bool) {
	for _, item := range soundItems {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}
