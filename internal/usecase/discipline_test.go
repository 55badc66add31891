package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisciplineScore(t *testing.T) {
	tests := []struct {
		name  string
		flags [4]bool
		want  float64
	}{
		{"none", [4]bool{}, 0},
		{"one", [4]bool{true, false, false, false}, 25},
		{"two", [4]bool{true, false, true, false}, 50},
		{"three", [4]bool{true, true, true, false}, 75},
		{"all", [4]bool{true, true, true, true}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisciplineScore(tt.flags[0], tt.flags[1], tt.flags[2], tt.flags[3], ScoreAlways)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestDisciplineScoreWhenAnySet(t *testing.T) {
	assert.Nil(t, DisciplineScore(false, false, false, false, ScoreWhenAnySet))

	got := DisciplineScore(false, false, false, true, ScoreWhenAnySet)
	require.NotNil(t, got)
	assert.Equal(t, 25.0, *got)
}
