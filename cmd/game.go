package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/borderline/allpaths"
	"github.com/katalvlaran/borderline/dataset"
	"github.com/katalvlaran/borderline/game"
	"github.com/katalvlaran/borderline/ux"
	"github.com/katalvlaran/borderline/validate"
)

var (
	mistakeBudget int
	gameSeed      int64
)

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Guess the shortest path between two random nodes",
	Long: `game picks a random source and a random non-adjacent target, then asks
you to name the nodes of a shortest path between them, one guess per turn.
Wrong guesses count against the mistake budget.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		g, err := dataset.Graph(datasetPath)
		if err != nil {
			return err
		}

		seed := gameSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		source, target, err := game.RandomPair(g, rand.New(rand.NewSource(seed)))
		if err != nil {
			return err
		}
		logger.Debug("pair drawn",
			zap.String("source", source),
			zap.String("target", target),
			zap.Int64("seed", seed))

		if err = validate.Check(g, source, target); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ux.Error.Render(err.Error()))
			return err
		}

		res, err := allpaths.Enumerate(g, source, target)
		if err != nil {
			return err
		}
		sess, err := game.NewSession(source, target, res.Paths, game.WithMistakeBudget(mistakeBudget))
		if err != nil {
			return err
		}

		return play(cmd, sess)
	},
}

func init() {
	gameCmd.Flags().IntVar(&mistakeBudget, "budget", game.DefaultMistakeBudget,
		"number of wrong guesses that ends the game")
	gameCmd.Flags().Int64Var(&gameSeed, "seed", 0,
		"random seed for the source/target draw (0 = time-based)")
}

// play runs the blocking read-a-guess-per-turn loop over the session.
func play(cmd *cobra.Command, sess *game.Session) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ux.Title.Render(
		fmt.Sprintf("Find the shortest path from %s to %s", sess.Source(), sess.Target())))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for sess.State() == game.StateInProgress {
		fmt.Fprint(out, "Enter node name: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err() // EOF abandons the session
		}
		guess := strings.ReplaceAll(strings.TrimSpace(scanner.Text()), "_", " ")
		if guess == "" {
			continue
		}

		turn, err := sess.Submit(guess)
		if errors.Is(err, game.ErrSessionOver) {
			break
		}
		if err != nil {
			return err
		}
		report(out, sess, turn)
	}

	return nil
}

// report prints one turn's outcome.
func report(out io.Writer, sess *game.Session, turn *game.Turn) {
	if turn.Note != "" {
		fmt.Fprintln(out, ux.Muted.Render(turn.Note))
	}

	switch turn.Verdict {
	case game.VerdictWon:
		fmt.Fprintln(out, ux.Highlight.Render(turn.Display))
		fmt.Fprintln(out, ux.Success.Render(
			fmt.Sprintf("%s reached with %d mistake(s)", sess.Target(), turn.Mistakes)))

	case game.VerdictOnTrack:
		fmt.Fprintln(out, ux.Success.Render(turn.Display))

	case game.VerdictMistake:
		fmt.Fprintln(out, ux.Warning.Render(
			fmt.Sprintf("%s is not on one of the optimal paths", turn.Guess)))
		fmt.Fprintln(out, ux.Muted.Render(
			fmt.Sprintf("%d/%d mistakes", turn.Mistakes, turn.Budget)))
		if turn.State == game.StateLost {
			fmt.Fprintln(out, ux.Error.Render("Game over!"))
			fmt.Fprintln(out, ux.Muted.Render(
				fmt.Sprintf("the %d shortest path(s) of length %d were:", len(turn.Revealed), turn.Distance)))
			for _, p := range turn.Revealed {
				fmt.Fprintln(out, p.String())
			}
		}
	}
	fmt.Fprintln(out)
}
