package zonk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggressiveBot_Continue(t *testing.T) {
	bot := AggressiveBot{}

	assert.True(t, bot.Continue(999, 3))
	assert.False(t, bot.Continue(999, 2), "stops with two dice or fewer")
	assert.False(t, bot.Continue(1000, 6), "stops at 1000 points")
}

func TestAggressiveBot_SelectsEverything(t *testing.T) {
	bot := AggressiveBot{}
	combos := []Combination{
		{Name: "a", Score: 100},
		{Name: "b", Score: 50},
	}

	assert.Equal(t, combos, bot.Select(combos))
	assert.Empty(t, bot.Select(nil))
}

func TestCautiousBot_Continue(t *testing.T) {
	bot := CautiousBot{}

	assert.True(t, bot.Continue(299, 2))
	assert.False(t, bot.Continue(300, 3), "banks a decent score with few dice")
	assert.True(t, bot.Continue(399, 4))
	assert.False(t, bot.Continue(400, 6))
}

func TestCautiousBot_SelectsTopTwo(t *testing.T) {
	bot := CautiousBot{}
	combos := []Combination{
		{Name: "big", Score: 1000},
		{Name: "close", Score: 800},
		{Name: "mid", Score: 700},
		{Name: "small", Score: 50},
	}

	selected := bot.Select(combos)

	assert.Len(t, selected, 2)
	assert.Equal(t, "big", selected[0].Name)
	assert.Equal(t, "close", selected[1].Name)
	assert.Empty(t, bot.Select(nil))
}

func TestBalancedBot_Continue(t *testing.T) {
	bot := BalancedBot{}

	assert.False(t, bot.Continue(500, 6))
	assert.False(t, bot.Continue(200, 2))
	assert.True(t, bot.Continue(199, 2))
	assert.True(t, bot.Continue(499, 3))
}

func TestBalancedBot_SelectsHighValue(t *testing.T) {
	bot := BalancedBot{}
	combos := []Combination{
		{Name: "a", Score: 1000},
		{Name: "b", Score: 500},
		{Name: "c", Score: 200},
		{Name: "d", Score: 100},
		{Name: "e", Score: 50},
	}

	selected := bot.Select(combos)

	assert.Len(t, selected, 3)
	for _, c := range selected {
		assert.GreaterOrEqual(t, c.Score, 100)
	}
}
