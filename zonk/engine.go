package zonk

import (
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"
)

const (
	DefaultTargetScore = 5000
	DefaultMaxRounds   = 50

	diceCount = 6
)

// Engine drives a full game: rolling, scoring, bonus throws, winner
// detection.
type Engine struct {
	players     []*Player
	targetScore int
	maxRounds   int

	dice [diceCount]*Die
	rng  *rand.Rand
	log  *zap.Logger

	currentRound int
	activeIndex  int
}

type EngineOption func(e *Engine)

func WithTargetScore(score int) EngineOption {
	return func(e *Engine) {
		e.targetScore = score
	}
}

func WithMaxRounds(rounds int) EngineOption {
	return func(e *Engine) {
		e.maxRounds = rounds
	}
}

// WithSeed makes the game deterministic.
func WithSeed(seed uint64) EngineOption {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

func WithLogger(log *zap.Logger) EngineOption {
	return func(e *Engine) {
		e.log = log
	}
}

func NewEngine(players []*Player, opts ...EngineOption) *Engine {
	e := &Engine{
		players:     players,
		targetScore: DefaultTargetScore,
		maxRounds:   DefaultMaxRounds,
	}

	for i := range e.dice {
		e.dice[i] = NewDie()
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}

	return e
}

func (e *Engine) ActivePlayer() *Player {
	return e.players[e.activeIndex]
}

func (e *Engine) nextPlayer() {
	e.activeIndex = (e.activeIndex + 1) % len(e.players)
}

func (e *Engine) rollDice(count int) []int {
	values := make([]int, count)
	for i := range values {
		values[i] = e.dice[i].Roll(e.rng)
	}

	return values
}

// PlayRound plays one full round for the player. Returns false if the round
// ended in a zonk.
func (e *Engine) PlayRound(p *Player) bool {
	log := e.log.With(zap.String("player", p.Name))
	log.Info("round starts")

	p.ResetRound()
	diceLeft := diceCount

	for diceLeft > 0 {
		values := e.rollDice(diceLeft)
		log.Info("rolled", zap.Ints("dice", values))

		combos := Combinations(values)
		if len(combos) == 0 {
			log.Info("zonk, round points burned")
			p.HandleZonk()
			return false
		}

		selected := p.Strategy.Select(combos)
		if len(selected) == 0 {
			log.Info("no combination selected, counts as zonk")
			p.HandleZonk()
			return false
		}

		points := 0
		used := 0
		names := make([]string, 0, len(selected))
		for _, c := range selected {
			points += c.Score
			used += len(c.Dice)
			names = append(names, c.Name)
		}

		p.AddScore(points)
		diceLeft -= used

		log.Info("banked combinations",
			zap.Strings("combinations", names),
			zap.Int("points", points),
			zap.Int("round_score", p.RoundScore()),
			zap.Int("dice_left", diceLeft),
		)

		if diceLeft == 0 && CanBonusThrow(values) {
			log.Info("bonus throw")
			diceLeft = diceCount
			continue
		}

		if diceLeft > 0 && !p.Strategy.Continue(p.RoundScore(), diceLeft) {
			log.Info("player stops")
			break
		}
	}

	if p.RoundScore() > 0 {
		earned := p.RoundScore()
		p.FinalizeRound()
		log.Info("round finished",
			zap.Int("earned", earned),
			zap.Int("total_score", p.TotalScore()),
		)
	}

	return true
}

// Winner returns the first player at or above the target score, or nil.
func (e *Engine) Winner() *Player {
	for _, p := range e.players {
		if p.TotalScore() >= e.targetScore {
			return p
		}
	}

	return nil
}

// Run plays the game until someone reaches the target score or the round
// limit is hit. Returns the winner, or nil at the round limit.
func (e *Engine) Run() *Player {
	e.log.Info("game starts",
		zap.Int("target_score", e.targetScore),
		zap.Int("max_rounds", e.maxRounds),
		zap.Int("players", len(e.players)),
	)

	e.currentRound = 0

	for e.currentRound < e.maxRounds {
		e.currentRound++
		e.log.Info("round", zap.Int("number", e.currentRound))

		for range e.players {
			e.PlayRound(e.ActivePlayer())

			if winner := e.Winner(); winner != nil {
				e.log.Info("game over",
					zap.String("winner", winner.Name),
					zap.Int("score", winner.TotalScore()),
				)
				return winner
			}

			e.nextPlayer()
		}
	}

	e.log.Info("round limit reached", zap.Int("max_rounds", e.maxRounds))

	return nil
}

// Rounds returns how many rounds have been played.
func (e *Engine) Rounds() int {
	return e.currentRound
}

// Standings returns the players ordered by total score, best first.
func (e *Engine) Standings() []*Player {
	standings := slices.Clone(e.players)
	slices.SortStableFunc(standings, func(a, b *Player) int {
		return b.TotalScore() - a.TotalScore()
	})

	return standings
}
