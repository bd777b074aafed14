package progression

import (
	"log/slog"

	"aestheticpomodoro/internal/core/model"
)

// PurchaseResult tells the shop why a purchase did or did not happen.
type PurchaseResult int

const (
	Purchased PurchaseResult = iota
	InsufficientFunds
	AlreadyOwned
	UnknownItem
)

func (result PurchaseResult) String() string {
	switch result {
	case Purchased:
		return "purchased"
	case InsufficientFunds:
		return "insufficient_funds"
	case AlreadyOwned:
		return "already_owned"
	case UnknownItem:
		return "unknown_item"
	}
	return "unknown"
}

// OK reports whether the item was bought.
func (result PurchaseResult) OK() bool {
	return result == Purchased
}

// UnlockTheme buys a theme for cost XP.
func (engine *Engine) UnlockTheme(id model.ThemeID, cost int) bool {
	return engine.unlockTheme(id, cost).OK()
}

// UnlockSound buys a sound for cost XP.
func (engine *Engine) UnlockSound(id string, cost int) bool {
	return engine.unlockSound(id, cost).OK()
}

// UnlockDuration buys a timer length for cost XP. The owned lengths stay sorted.
func (engine *Engine) UnlockDuration(minutes, cost int) bool {
	return engine.unlockDuration(minutes, cost).OK()
}

// Purchase resolves a shop item and buys it at its catalog price.
func (engine *Engine) Purchase(itemID string) PurchaseResult {
	item, err := model.ShopItemByID(itemID)
	if err != nil {
		return UnknownItem
	}

	var result PurchaseResult
	switch item.Category {
	case model.CategoryTheme:
		result = engine.unlockTheme(item.Theme, item.Price)
	case model.CategorySound:
		result = engine.unlockSound(item.ID, item.Price)
	case model.CategoryTimer:
		result = engine.unlockDuration(item.DurationMinutes, item.Price)
	default:
		result = UnknownItem
	}
	slog.Info("Purchase attempted", "item", itemID, "price", item.Price, "result", result.String())
	return result
}

func (engine *Engine) unlockTheme(id model.ThemeID, cost int) PurchaseResult {
	if !model.IsKnownTheme(id) {
		return UnknownItem
	}
	return engine.buy(cost,
		func(progress model.UserProgress) bool { return progress.HasTheme(id) },
		func(progress *model.UserProgress) {
			progress.UnlockedThemes = append(progress.UnlockedThemes, id)
		})
}

func (engine *Engine) unlockSound(id string, cost int) PurchaseResult {
	if id == "" {
		return UnknownItem
	}
	return engine.buy(cost,
		func(progress model.UserProgress) bool { return progress.HasSound(id) },
		func(progress *model.UserProgress) {
			progress.UnlockedSounds = append(progress.UnlockedSounds, id)
		})
}

func (engine *Engine) unlockDuration(minutes, cost int) PurchaseResult {
	if minutes <= 0 {
		return UnknownItem
	}
	return engine.buy(cost,
		func(progress model.UserProgress) bool { return progress.HasDuration(minutes) },
		func(progress *model.UserProgress) {
			progress.UnlockedDurations = model.SortDurations(append(progress.UnlockedDurations, minutes))
		})
}

// buy deducts cost from spendable XP only; lifetime XP and level never move.
func (engine *Engine) buy(cost int, owned func(model.UserProgress) bool, grant func(*model.UserProgress)) PurchaseResult {
	if cost < 0 {
		return UnknownItem
	}

	result := Purchased
	applied := engine.mutate(func(progress *model.UserProgress) bool {
		switch {
		case owned(*progress):
			result = AlreadyOwned
			return false
		case progress.XP < cost:
			result = InsufficientFunds
			return false
		}
		progress.XP -= cost
		grant(progress)
		return true
	})
	if applied {
		if cues := engine.cuePlayer(); cues != nil {
			cues.PlayCue(model.CuePurchase)
		}
	}
	return result
}
