package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-backend/internal/domain"
)

func fp(v float64) *float64 {
	return &v
}

func TestComputeRR(t *testing.T) {
	tests := []struct {
		name      string
		direction domain.Direction
		entry     *float64
		stop      *float64
		target    *float64
		result    domain.Result
		wantRR    *float64
		wantReal  *float64
	}{
		{
			name:      "buy plan",
			direction: domain.DirectionBuy,
			entry:     fp(100), stop: fp(95), target: fp(110),
			wantRR: fp(2.0),
		},
		{
			name:      "buy win realizes full ratio",
			direction: domain.DirectionBuy,
			entry:     fp(100), stop: fp(95), target: fp(110),
			result: domain.ResultWin,
			wantRR: fp(2.0), wantReal: fp(2.0),
		},
		{
			name:      "loss is always one R",
			direction: domain.DirectionBuy,
			entry:     fp(100), stop: fp(95), target: fp(110),
			result: domain.ResultLose,
			wantRR: fp(2.0), wantReal: fp(-1.0),
		},
		{
			name:      "break even is flat",
			direction: domain.DirectionBuy,
			entry:     fp(100), stop: fp(95), target: fp(110),
			result: domain.ResultBreakEven,
			wantRR: fp(2.0), wantReal: fp(0.0),
		},
		{
			name:      "sell plan mirrors risk",
			direction: domain.DirectionSell,
			entry:     fp(1.1000), stop: fp(1.1050), target: fp(1.0900),
			result: domain.ResultWin,
			wantRR: fp(2.0), wantReal: fp(2.0),
		},
		{
			name:      "buy stop above entry is invalid",
			direction: domain.DirectionBuy,
			entry:     fp(100), stop: fp(105), target: fp(110),
			result: domain.ResultWin,
		},
		{
			name:      "stop equal to entry is invalid",
			direction: domain.DirectionBuy,
			entry:     fp(100), stop: fp(100), target: fp(110),
		},
		{
			name:      "missing entry",
			direction: domain.DirectionBuy,
			stop:      fp(95), target: fp(110),
		},
		{
			name:      "missing stop",
			direction: domain.DirectionBuy,
			entry:     fp(100), target: fp(110),
		},
		{
			name:      "missing target",
			direction: domain.DirectionBuy,
			entry:     fp(100), stop: fp(95),
		},
		{
			name:  "unknown direction",
			entry: fp(100), stop: fp(95), target: fp(110),
		},
		{
			name:      "negative reward stays valid",
			direction: domain.DirectionBuy,
			entry:     fp(100), stop: fp(95), target: fp(97.5),
			wantRR: fp(-0.5),
		},
		{
			name:      "nan entry",
			direction: domain.DirectionBuy,
			entry:     fp(math.NaN()), stop: fp(95), target: fp(110),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, realized := ComputeRR(tt.direction, tt.entry, tt.stop, tt.target, tt.result)

			if tt.wantRR == nil {
				assert.Nil(t, rr)
			} else {
				require.NotNil(t, rr)
				assert.InDelta(t, *tt.wantRR, *rr, 1e-9)
			}

			if tt.wantReal == nil {
				assert.Nil(t, realized)
			} else {
				require.NotNil(t, realized)
				assert.InDelta(t, *tt.wantReal, *realized, 1e-9)
			}
		})
	}
}

func TestComputeRRRounding(t *testing.T) {
	// 3 / 7 = 0.428571... rounds to 0.43 at two decimals.
	rr, _ := ComputeRR(domain.DirectionBuy, fp(107), fp(100), fp(110), "")
	require.NotNil(t, rr)
	assert.Equal(t, 0.43, *rr)
}

func TestComputeRRInvalidResultLeavesRealizedNil(t *testing.T) {
	rr, realized := ComputeRR(domain.DirectionBuy, fp(100), fp(95), fp(110), "PARTIAL")
	require.NotNil(t, rr)
	assert.Nil(t, realized)
}
