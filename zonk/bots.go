package zonk

// AggressiveBot keeps rolling with many dice and a low round score, and
// banks every combination on offer.
type AggressiveBot struct{}

func (AggressiveBot) Continue(roundScore, diceLeft int) bool {
	return diceLeft > 2 && roundScore < 1000
}

func (AggressiveBot) Select(combos []Combination) []Combination {
	return combos
}

// CautiousBot stops early with a decent score and banks at most the two
// combinations closest to the best one.
type CautiousBot struct{}

func (CautiousBot) Continue(roundScore, diceLeft int) bool {
	if roundScore >= 300 && diceLeft < 4 {
		return false
	}

	return roundScore < 400
}

func (CautiousBot) Select(combos []Combination) []Combination {
	if len(combos) == 0 {
		return nil
	}

	best := 0
	for _, c := range combos {
		best = max(best, c.Score)
	}

	var selected []Combination
	for _, c := range combos {
		if float64(c.Score) >= float64(best)*0.7 {
			selected = append(selected, c)
		}
	}

	if len(selected) > 2 {
		selected = selected[:2]
	}

	return selected
}

// BalancedBot stops at moderate scores and banks up to three combinations
// worth at least 100 points.
type BalancedBot struct{}

func (BalancedBot) Continue(roundScore, diceLeft int) bool {
	if roundScore >= 500 {
		return false
	}
	if diceLeft <= 2 && roundScore >= 200 {
		return false
	}

	return true
}

func (BalancedBot) Select(combos []Combination) []Combination {
	var selected []Combination
	for _, c := range combos {
		if c.Score >= 100 {
			selected = append(selected, c)
		}
	}

	if len(selected) > 3 {
		selected = selected[:3]
	}

	return selected
}
