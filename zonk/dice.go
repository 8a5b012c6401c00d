// Package zonk implements the Zonk (Farkle) dice game: scoring rules, player
// state, bot strategies and a round-driving engine.
package zonk

import "math/rand/v2"

// Die is a single six-sided die.
type Die struct {
	value int
}

func NewDie() *Die {
	return &Die{value: 1}
}

// Roll assigns the die a random face from rng and returns it.
func (d *Die) Roll(rng *rand.Rand) int {
	d.value = rng.IntN(6) + 1
	return d.value
}

func (d *Die) Value() int {
	return d.value
}

// Reset puts the die back to face 1.
func (d *Die) Reset() *Die {
	d.value = 1
	return d
}
