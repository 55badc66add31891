package usecase

import (
	"math"

	"journal-backend/internal/domain"
)

// ComputeRR derives the theoretical reward:risk ratio and the realized
// R-multiple from a trade plan and its outcome.
//
// Risk and reward are direction-aware: for a BUY the stop must sit below the
// entry and the target above it, mirrored for a SELL. A missing price, an
// unknown direction or a non-positive risk means there is no valid plan and
// both values come back nil. The function never panics regardless of input.
//
// Realized R follows the outcome: WIN pays the full ratio, LOSE costs exactly
// one R, BE is flat at 0. Any other (or absent) result leaves realized nil.
func ComputeRR(direction domain.Direction, entry, stop, target *float64, result domain.Result) (rr, realized *float64) {
	if entry == nil || stop == nil || target == nil {
		return nil, nil
	}

	var risk, reward float64
	switch direction {
	case domain.DirectionBuy:
		risk = *entry - *stop
		reward = *target - *entry
	case domain.DirectionSell:
		risk = *stop - *entry
		reward = *entry - *target
	default:
		return nil, nil
	}

	if !(risk > 0) {
		// Stop on the wrong side of the entry, or NaN somewhere upstream.
		return nil, nil
	}

	ratio := round2(reward / risk)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return nil, nil
	}
	rr = &ratio

	switch result {
	case domain.ResultWin:
		v := ratio
		realized = &v
	case domain.ResultLose:
		v := -1.0
		realized = &v
	case domain.ResultBreakEven:
		v := 0.0
		realized = &v
	}
	return rr, realized
}

// round2 rounds half away from zero to 2 decimals.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// round1 rounds half away from zero to 1 decimal.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
