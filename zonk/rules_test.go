package zonk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinations_SixDifferent(t *testing.T) {
	combos := Combinations([]int{1, 2, 3, 4, 5, 6})

	require.Len(t, combos, 1)
	assert.Equal(t, "six different", combos[0].Name)
	assert.Equal(t, 1500, combos[0].Score)
	assert.True(t, combos[0].Bonus)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, combos[0].Dice)
}

func TestCombinations_ThreePairs(t *testing.T) {
	combos := Combinations([]int{2, 2, 3, 3, 4, 4})

	require.Len(t, combos, 1)
	assert.Equal(t, "three pairs", combos[0].Name)
	assert.Equal(t, 750, combos[0].Score)
	assert.True(t, combos[0].Bonus)
}

func TestCombinations_ThreePairsConsumeScoringFaces(t *testing.T) {
	// Pairs of 1s and 5s are consumed by the three-pairs combination and
	// must not also score as singles.
	combos := Combinations([]int{1, 1, 5, 5, 6, 6})

	require.Len(t, combos, 1)
	assert.Equal(t, "three pairs", combos[0].Name)
}

func TestCombinations_Triples(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{
			name:   "Three ones",
			values: []int{1, 1, 1},
			want:   1000,
		},
		{
			name:   "Four ones",
			values: []int{1, 1, 1, 1},
			want:   2000,
		},
		{
			name:   "Three fives",
			values: []int{5, 5, 5},
			want:   500,
		},
		{
			name:   "Three twos",
			values: []int{2, 2, 2},
			want:   200,
		},
		{
			name:   "Four sixes",
			values: []int{6, 6, 6, 6},
			want:   1200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combos := Combinations(tt.values)

			require.Len(t, combos, 1)
			assert.Equal(t, tt.want, combos[0].Score)
			assert.False(t, combos[0].Bonus)
		})
	}
}

func TestCombinations_Singles(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{
			name:   "Single one",
			values: []int{1, 2, 3},
			want:   100,
		},
		{
			name:   "Two ones",
			values: []int{1, 1, 2, 3},
			want:   200,
		},
		{
			name:   "Single five",
			values: []int{5, 2, 3},
			want:   50,
		},
		{
			name:   "Two fives",
			values: []int{5, 5, 2},
			want:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combos := Combinations(tt.values)

			require.Len(t, combos, 1)
			assert.Equal(t, tt.want, combos[0].Score)
		})
	}
}

func TestCombinations_Mixed(t *testing.T) {
	combos := Combinations([]int{1, 1, 1, 5, 2, 2})

	require.Len(t, combos, 2)
	assert.Equal(t, 1000, combos[0].Score)
	assert.Equal(t, 50, combos[1].Score)
}

func TestCombinations_Zonk(t *testing.T) {
	combos := Combinations([]int{2, 3, 4, 6, 6, 3})

	assert.Empty(t, combos)
	assert.False(t, HasScoring([]int{2, 3, 4, 6, 6, 3}))
}

func TestHasScoring(t *testing.T) {
	assert.True(t, HasScoring([]int{1, 2, 3}))
	assert.True(t, HasScoring([]int{5}))
	assert.False(t, HasScoring([]int{2, 3, 4}))
}

func TestCanBonusThrow(t *testing.T) {
	assert.True(t, CanBonusThrow([]int{1, 2, 3, 4, 5, 6}))
	assert.True(t, CanBonusThrow([]int{2, 2, 3, 3, 4, 4}))
	assert.False(t, CanBonusThrow([]int{1, 1, 1, 2, 3, 4}))
	assert.False(t, CanBonusThrow([]int{2, 3, 4, 6, 6, 3}))
}

func TestCombinations_ScoresArePositive(t *testing.T) {
	rolls := [][]int{
		{1, 1, 2, 3, 4, 5},
		{5, 5, 5, 5, 5, 5},
		{6, 6, 6, 1, 5, 2},
		{4, 4, 4, 4, 2, 3},
	}

	for _, roll := range rolls {
		for _, c := range Combinations(roll) {
			assert.Positivef(t, c.Score, "roll %v combo %q", roll, c.Name)
			assert.NotEmptyf(t, c.Dice, "roll %v combo %q", roll, c.Name)
		}
	}
}
