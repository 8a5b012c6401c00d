// Command zonk runs a Zonk dice-game simulation between bot players.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/homier/probemap/zonk"
)

type options struct {
	targetScore int
	maxRounds   int
	seed        uint64
	bots        []string
	verbose     bool
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:          "zonk",
		Short:        "Simulate a Zonk dice game between bot players",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.targetScore, "target", zonk.DefaultTargetScore, "score needed to win")
	cmd.Flags().IntVar(&opts.maxRounds, "rounds", zonk.DefaultMaxRounds, "round limit")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed, 0 for non-deterministic")
	cmd.Flags().StringSliceVar(&opts.bots, "bots", []string{"aggressive", "cautious", "balanced"}, "bot lineup")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every move")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts options) error {
	players, err := buildPlayers(opts.bots)
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if opts.verbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	engineOpts := []zonk.EngineOption{
		zonk.WithTargetScore(opts.targetScore),
		zonk.WithMaxRounds(opts.maxRounds),
		zonk.WithLogger(log),
	}
	if opts.seed != 0 {
		engineOpts = append(engineOpts, zonk.WithSeed(opts.seed))
	}

	engine := zonk.NewEngine(players, engineOpts...)

	winner := engine.Run()
	if winner != nil {
		cmd.Printf("winner after %d rounds: %s\n", engine.Rounds(), winner)
	} else {
		cmd.Printf("round limit reached (%d), no winner\n", engine.Rounds())
	}

	cmd.Println("final standings:")
	for i, p := range engine.Standings() {
		cmd.Printf("  %d. %s\n", i+1, p)
	}

	return nil
}

func buildPlayers(bots []string) ([]*zonk.Player, error) {
	if len(bots) == 0 {
		return nil, fmt.Errorf("at least one bot is required")
	}

	players := make([]*zonk.Player, 0, len(bots))
	for i, kind := range bots {
		var strategy zonk.Strategy

		switch strings.ToLower(strings.TrimSpace(kind)) {
		case "aggressive":
			strategy = zonk.AggressiveBot{}
		case "cautious":
			strategy = zonk.CautiousBot{}
		case "balanced":
			strategy = zonk.BalancedBot{}
		default:
			return nil, fmt.Errorf("unknown bot %q (want aggressive, cautious or balanced)", kind)
		}

		players = append(players, zonk.NewPlayer(fmt.Sprintf("%s-%d", kind, i+1), strategy))
	}

	return players, nil
}
