package zonk

import "fmt"

// Combination is a scoring set of dice. Bonus marks the special combinations
// (six different faces, three pairs) that grant a bonus throw when they
// consume the whole roll.
type Combination struct {
	Name  string
	Score int
	Dice  []int
	Bonus bool
}

// Combinations returns every scoring combination in the rolled values.
//
// Special combinations are checked first and consume their dice: six
// different faces scores 1500, three pairs scores 750. Leftover faces score
// as triples-or-better (1s base 1000, 5s base 500, otherwise face*100, each
// extra die past three adding another base) or as single 1s (100 each) and
// 5s (50 each).
func Combinations(values []int) []Combination {
	var counts [7]int
	for _, v := range values {
		if v >= 1 && v <= 6 {
			counts[v]++
		}
	}

	var combos []Combination
	var used []int

	allSix := true
	for face := 1; face <= 6; face++ {
		if counts[face] < 1 {
			allSix = false
			break
		}
	}
	if allSix {
		used = []int{1, 2, 3, 4, 5, 6}
		combos = append(combos, Combination{
			Name:  "six different",
			Score: 1500,
			Dice:  used,
			Bonus: true,
		})
	}

	if len(used) == 0 {
		pairs := 0
		for face := 1; face <= 6; face++ {
			if counts[face] == 2 {
				pairs++
			}
		}

		if pairs == 3 {
			for face := 1; face <= 6; face++ {
				if counts[face] == 2 {
					used = append(used, face, face)
				}
			}
			combos = append(combos, Combination{
				Name:  "three pairs",
				Score: 750,
				Dice:  used,
				Bonus: true,
			})
		}
	}

	remaining := counts
	for _, face := range used {
		remaining[face] = 0
	}

	for face := 1; face <= 6; face++ {
		count := remaining[face]

		switch {
		case count >= 3:
			base := face * 100
			if face == 1 {
				base = 1000
			} else if face == 5 {
				base = 500
			}

			combos = append(combos, Combination{
				Name:  fmt.Sprintf("%d x %d", count, face),
				Score: base + (count-3)*base,
				Dice:  repeat(face, count),
			})

		case count > 0 && (face == 1 || face == 5):
			per := 50
			if face == 1 {
				per = 100
			}

			combos = append(combos, Combination{
				Name:  fmt.Sprintf("%d x %d", count, face),
				Score: count * per,
				Dice:  repeat(face, count),
			})
		}
	}

	return combos
}

// HasScoring reports whether the roll contains any scoring combination. A
// roll without one is a zonk.
func HasScoring(values []int) bool {
	return len(Combinations(values)) > 0
}

// CanBonusThrow reports whether the roll qualifies for a bonus throw of all
// six dice.
func CanBonusThrow(values []int) bool {
	for _, c := range Combinations(values) {
		if c.Bonus {
			return true
		}
	}

	return false
}

func repeat(face, count int) []int {
	dice := make([]int, count)
	for i := range dice {
		dice[i] = face
	}

	return dice
}
