package services

// baseReward is the fixed base unit for the informational reward preview.
const baseReward = 10.0

// NextReward returns the cosmetic "next task reward" figure for a balance:
// a five-band step multiplier over the base unit. It is informational only.
// Balance growth on task completion is exclusively the 1.5x multiplier in
// UpdateProgress; the two computations are intentionally separate and must
// stay that way.
func NextReward(balance float64) float64 {
	switch {
	case balance < 100:
		return baseReward
	case balance < 500:
		return baseReward * 1.5
	case balance < 1000:
		return baseReward * 2
	case balance < 5000:
		return baseReward * 3
	default:
		return baseReward * 5
	}
}
