package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/borderline/allpaths"
	"github.com/katalvlaran/borderline/dataset"
	"github.com/katalvlaran/borderline/render"
	"github.com/katalvlaran/borderline/ux"
	"github.com/katalvlaran/borderline/validate"
)

// ErrInvalidCount indicates a non-integer or negative path-count argument.
var ErrInvalidCount = errors.New("cmd: path count must be a non-negative integer")

var (
	dotPath      string
	renderFormat string
)

var searchCmd = &cobra.Command{
	Use:   "search <source> <target> [count]",
	Short: "Print every shortest path between two nodes and write a DOT diagram",
	Long: `search enumerates all shortest paths from <source> to <target>,
prints up to [count] of them (all by default), and writes the union of the
paths as a DOT diagram. Use underscores for spaces in multi-word labels,
e.g. United_Kingdom.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		source := strings.ReplaceAll(args[0], "_", " ")
		target := strings.ReplaceAll(args[1], "_", " ")

		limit := -1 // all paths
		if len(args) == 3 {
			limit, err = strconv.Atoi(args[2])
			if err != nil || limit < 0 {
				return fmt.Errorf("%w: %q", ErrInvalidCount, args[2])
			}
		}

		g, err := dataset.Graph(datasetPath)
		if err != nil {
			return err
		}
		logger.Debug("dataset loaded",
			zap.String("path", datasetPath),
			zap.Int("vertices", g.VertexCount()))

		if err = validate.Check(g, source, target); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ux.Error.Render(err.Error()))
			return err
		}

		res, err := allpaths.Enumerate(g, source, target)
		if err != nil {
			return err
		}

		printPaths(cmd, source, target, res, limit)

		return writeDiagram(cmd, logger, source, res.Paths)
	},
}

func init() {
	searchCmd.Flags().StringVar(&dotPath, "dot", "graph.dot", "output path for the DOT diagram")
	searchCmd.Flags().StringVar(&renderFormat, "render", "",
		"also render the diagram via graphviz: png or svg")
}

// printPaths writes the summary line and up to limit paths.
func printPaths(cmd *cobra.Command, source, target string, res *allpaths.Result, limit int) {
	out := cmd.OutOrStdout()
	plural := "s"
	if len(res.Paths) == 1 {
		plural = ""
	}
	fmt.Fprintln(out, ux.Title.Render(
		fmt.Sprintf("%s to %s: %d path%s of length %d", source, target, len(res.Paths), plural, res.Distance)))

	shown := len(res.Paths)
	if limit >= 0 && limit < shown {
		shown = limit
	}
	for _, p := range res.Paths[:shown] {
		fmt.Fprintln(out, p.String())
	}
	if shown < len(res.Paths) {
		fmt.Fprintln(out, ux.Muted.Render(fmt.Sprintf("(%d more not shown)", len(res.Paths)-shown)))
	}
}

// writeDiagram serializes the path union as DOT and optionally renders it.
func writeDiagram(cmd *cobra.Command, logger *zap.Logger, source string, paths allpaths.PathSet) error {
	f, err := os.Create(dotPath)
	if err != nil {
		return fmt.Errorf("cmd: create %s: %w", dotPath, err)
	}
	if err = render.WriteDOT(f, render.Subgraph(source, paths)); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	logger.Debug("diagram written", zap.String("dot", dotPath))

	if renderFormat == "" {
		return nil
	}
	outPath, err := render.NewGraphvizRenderer(logger).Render(cmd.Context(), dotPath, renderFormat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ux.Muted.Render("diagram: "+outPath))

	return nil
}
