package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/calclab/go-physics/pkg/demo"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	groupStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
)

// TerminalRenderer writes a styled check report to an io.Writer.
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer creates a renderer writing to out.
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// RenderResults implements Renderer.
func (r *TerminalRenderer) RenderResults(results []demo.Result) {
	var lastGroup string
	for _, res := range results {
		if res.Group != lastGroup {
			fmt.Fprintln(r.out, groupStyle.Render(res.Group))
			lastGroup = res.Group
		}

		verdict := passStyle.Render("PASS")
		if !res.Passed {
			verdict = failStyle.Render("FAIL")
		}
		fmt.Fprintf(r.out, "  %s  %s", verdict, res.Name)
		if res.Detail != "" {
			fmt.Fprintf(r.out, "  %s", detailStyle.Render(res.Detail))
		} else if !res.Passed {
			fmt.Fprintf(r.out, "  %s",
				detailStyle.Render(fmt.Sprintf("expected %s, got %s", res.Expected, res.Actual)))
		}
		fmt.Fprintln(r.out)
	}
}

// RenderSummary implements Renderer.
func (r *TerminalRenderer) RenderSummary(summary demo.Summary) {
	line := fmt.Sprintf("%d checks: %d passed, %d failed",
		summary.Total, summary.Passed, summary.Failed)
	fmt.Fprintln(r.out, headerStyle.Render(line))
}
