package refund

import "time"

const travelDateLayout = "2006-01-02"

// Refund tiers by days remaining until travel.
const (
	TierEarly    = "early"    // 7+ days out, 80% back
	TierStandard = "standard" // 3-6 days out, 50% back
	TierLate     = "late"     // under 3 days, nothing back
	TierFallback = "fallback" // unreadable travel date, 50% back
)

// Evaluate computes the refundable amount for a booking. The travel
// date is compared against "now" at day granularity. A travel date that
// does not parse falls back to the 50% tier rather than failing the
// cancellation.
func Evaluate(totalPrice float64, travelDate string, now time.Time) (float64, string) {
	travel, err := time.Parse(travelDateLayout, travelDate)
	if err != nil {
		return totalPrice * 0.5, TierFallback
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	travel = time.Date(travel.Year(), travel.Month(), travel.Day(), 0, 0, 0, 0, now.Location())
	days := int(travel.Sub(today).Hours() / 24)

	switch {
	case days >= 7:
		return totalPrice * 0.8, TierEarly
	case days >= 3:
		return totalPrice * 0.5, TierStandard
	default:
		return 0, TierLate
	}
}
