package zonk

import "fmt"

const (
	// zonkPenaltyStreak is how many consecutive zonks cost the player
	// zonkPenalty points off their total.
	zonkPenaltyStreak = 3
	zonkPenalty       = 500
)

// Strategy decides a player's moves.
type Strategy interface {
	// Continue reports whether to keep rolling given the points banked
	// this round and the dice left.
	Continue(roundScore, diceLeft int) bool

	// Select picks which of the available combinations to bank. Returning
	// none is treated as a zonk.
	Select(combos []Combination) []Combination
}

// Player tracks one participant's score across the game.
type Player struct {
	Name     string
	Strategy Strategy

	totalScore       int
	roundScore       int
	consecutiveZonks int
}

func NewPlayer(name string, strategy Strategy) *Player {
	return &Player{Name: name, Strategy: strategy}
}

func (p *Player) TotalScore() int {
	return p.totalScore
}

func (p *Player) RoundScore() int {
	return p.roundScore
}

// ResetRound clears round-local state, keeping the total score.
func (p *Player) ResetRound() {
	p.roundScore = 0
	p.consecutiveZonks = 0
}

// AddScore banks points into the current round.
func (p *Player) AddScore(points int) {
	p.roundScore += points
}

// FinalizeRound moves the round score into the total.
func (p *Player) FinalizeRound() {
	if p.roundScore > 0 {
		p.totalScore += p.roundScore
	}

	p.roundScore = 0
	p.consecutiveZonks = 0
}

// HandleZonk burns the round score and applies the streak penalty. The
// total never goes negative.
func (p *Player) HandleZonk() {
	p.consecutiveZonks++
	p.roundScore = 0

	if p.consecutiveZonks >= zonkPenaltyStreak {
		p.totalScore = max(0, p.totalScore-zonkPenalty)
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (points: %d)", p.Name, p.totalScore)
}
