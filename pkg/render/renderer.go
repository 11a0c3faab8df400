// Package render presents demo-run results. TerminalRenderer writes a
// styled report; NullRenderer discards output for quiet runs.
package render

import (
	"context"

	"github.com/calclab/go-physics/pkg/demo"
	"github.com/calclab/go-physics/pkg/logging"
)

// Renderer presents the results of a demo run.
type Renderer interface {
	RenderResults(results []demo.Result)
	RenderSummary(summary demo.Summary)
}

// NullRenderer implements Renderer with debug-level logging only.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// RenderResults implements Renderer.
func (n *NullRenderer) RenderResults(results []demo.Result) {
	ctx := context.Background()
	n.logger.Debug(ctx, "RenderResults called", "result_count", len(results))
}

// RenderSummary implements Renderer.
func (n *NullRenderer) RenderSummary(summary demo.Summary) {
	ctx := context.Background()
	n.logger.Debug(ctx, "RenderSummary called",
		"total", summary.Total,
		"passed", summary.Passed,
		"failed", summary.Failed,
	)
}
