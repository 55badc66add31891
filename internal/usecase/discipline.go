package usecase

// DisciplinePolicy controls how a per-trade discipline score behaves when no
// checklist flag is set.
type DisciplinePolicy int

const (
	// ScoreAlways scores every trade, 0 when all flags are false.
	ScoreAlways DisciplinePolicy = iota
	// ScoreWhenAnySet returns no score until at least one flag is set.
	ScoreWhenAnySet
)

// DisciplineScore computes the per-trade checklist compliance percentage:
// trueCount/4 * 100, rounded to 1 decimal.
func DisciplineScore(followedPlan, noRevenge, noFomo, respectedRR bool, policy DisciplinePolicy) *float64 {
	count := 0
	for _, flag := range []bool{followedPlan, noRevenge, noFomo, respectedRR} {
		if flag {
			count++
		}
	}

	if count == 0 && policy == ScoreWhenAnySet {
		return nil
	}

	score := round1(float64(count) / 4 * 100)
	return &score
}
