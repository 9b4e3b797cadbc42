package render

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors for external rendering.
var (
	// ErrRendererNotFound indicates the dot binary is not installed.
	ErrRendererNotFound = errors.New("render: graphviz dot binary not found")

	// ErrUnsupportedFormat indicates an output format dot cannot produce here.
	ErrUnsupportedFormat = errors.New("render: unsupported output format")
)

// Formats accepted by GraphvizRenderer.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Renderer produces an image file from a DOT file.
type Renderer interface {
	Render(ctx context.Context, dotPath, format string) (string, error)
}

// GraphvizRenderer shells out to the external `dot` binary. The image
// format is dot's concern; this type only wires the invocation.
type GraphvizRenderer struct {
	// Bin is the dot executable; "dot" resolves via PATH when empty.
	Bin string

	logger *zap.Logger
}

// NewGraphvizRenderer returns a renderer logging through logger.
// A nil logger is replaced with zap.NewNop().
func NewGraphvizRenderer(logger *zap.Logger) *GraphvizRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GraphvizRenderer{Bin: "dot", logger: logger}
}

// Render runs `dot -T<format> -o <out> <dotPath>` and returns the output
// path, which is dotPath with its extension swapped for the format.
func (r *GraphvizRenderer) Render(ctx context.Context, dotPath, format string) (string, error) {
	if format != FormatPNG && format != FormatSVG {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	bin := r.Bin
	if bin == "" {
		bin = "dot"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return "", fmt.Errorf("%w: %q", ErrRendererNotFound, bin)
	}

	outPath := strings.TrimSuffix(dotPath, ".dot") + "." + format
	cmd := exec.CommandContext(ctx, bin, "-T"+format, "-o", outPath, dotPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		r.logger.Error("graphviz render failed",
			zap.String("bin", bin),
			zap.String("dot", dotPath),
			zap.ByteString("output", out),
			zap.Error(err))

		return "", fmt.Errorf("render: %s: %w", bin, err)
	}
	r.logger.Debug("rendered diagram",
		zap.String("dot", dotPath),
		zap.String("out", outPath))

	return outPath, nil
}
