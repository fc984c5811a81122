package domain

import "time"

// Game pricing in whole rupees. Combos discount multi-game signups;
// anything beyond the full bundle falls back to per-game pricing.
const (
	PriceSingle   = 299
	PriceCombo2   = 499
	PriceCombo3   = 699
	PriceAllGames = 899

	// EarlyBirdDiscount is the flat amount taken off while the
	// early-bird window is open.
	EarlyBirdDiscount = 100
)

// Price returns the amount due for gameCount games as of today. The
// caller supplies both the clock and the configured early-bird end
// date, so the function stays pure.
func Price(gameCount int, today, earlyBirdEnd time.Time) int {
	var base int
	switch gameCount {
	case 1:
		base = PriceSingle
	case 2:
		base = PriceCombo2
	case 3:
		base = PriceCombo3
	case 4:
		base = PriceAllGames
	default:
		base = PriceSingle * gameCount
	}

	if !today.After(earlyBirdEnd) {
		base -= EarlyBirdDiscount
		if base < 0 {
			base = 0
		}
	}

	return base
}

// RegistrationWindow describes whether submissions are accepted and
// whether the discount applies.
type RegistrationWindow string

const (
	WindowOpen      RegistrationWindow = "open"
	WindowEarlyBird RegistrationWindow = "early_bird"
	WindowClosed    RegistrationWindow = "closed"
)

// WindowStatus classifies today against the configured dates.
func WindowStatus(today, earlyBirdEnd, registrationEnd time.Time) RegistrationWindow {
	if today.After(registrationEnd) {
		return WindowClosed
	}
	if !today.After(earlyBirdEnd) {
		return WindowEarlyBird
	}
	return WindowOpen
}
