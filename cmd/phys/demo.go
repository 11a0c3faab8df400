package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calclab/go-physics/pkg/config"
	"github.com/calclab/go-physics/pkg/demo"
	"github.com/calclab/go-physics/pkg/logging"
	"github.com/calclab/go-physics/pkg/render"
)

var (
	demoConfigPath string
	demoInit       bool
	demoQuiet      bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the worked-example checks",
	Long: `Evaluates a set of worked examples (complex arithmetic, Kirchhoff,
Brewster, Malus, Bernoulli) against their expected values and prints a
report. Without a scenario file the built-in examples are used. Exits
non-zero if any check fails.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoConfigPath, "config", "",
		"path to a TOML scenario file (default: built-in scenarios, or PHYS_SCENARIO_PATH)")
	demoCmd.Flags().BoolVar(&demoInit, "init", false,
		"write the built-in scenarios to the --config path and exit")
	demoCmd.Flags().BoolVar(&demoQuiet, "quiet", false,
		"suppress the report; only the exit code reflects the outcome")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	logger := logging.NewLogger()
	ctx := logging.WithRunID(context.Background(), "")

	envCfg, err := config.LoadEnvironmentConfig()
	if err != nil {
		return logging.WrapError(err, "failed to load environment configuration")
	}

	path := demoConfigPath
	if path == "" {
		path = envCfg.ScenarioPath
	}

	if demoInit {
		if path == "" {
			return fmt.Errorf("--init requires --config or %s", config.EnvScenarioPath)
		}
		if err := config.SaveScenarios(config.DefaultScenarios(), path); err != nil {
			return err
		}
		logger.Info(ctx, "wrote default scenario file", "path", path)
		cmd.Printf("wrote %s\n", path)
		return nil
	}

	scenarios, err := loadScenarios(ctx, logger, path)
	if err != nil {
		return err
	}
	if scenarios.Tolerance == 0 {
		scenarios.Tolerance = envCfg.Tolerance
	}

	runner := demo.NewRunner(logger)
	results, summary := runner.Run(ctx, scenarios)

	var renderer render.Renderer
	if demoQuiet || envCfg.Output == config.OutputQuiet {
		renderer = render.NewNullRenderer()
	} else {
		renderer = render.NewTerminalRenderer(cmd.OutOrStdout())
	}
	renderer.RenderResults(results)
	renderer.RenderSummary(summary)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d checks failed", summary.Failed, summary.Total)
	}
	return nil
}

// loadScenarios resolves the scenario source: an explicit file when given
// and present, otherwise the built-in examples.
func loadScenarios(ctx context.Context, logger *logging.Logger, path string) (*config.ScenarioConfig, error) {
	if path == "" {
		return config.DefaultScenarios(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "scenario file not found, using built-in scenarios", "path", path)
		return config.DefaultScenarios(), nil
	}

	scenarios, err := config.LoadScenarios(path)
	if err != nil {
		return nil, logging.WrapError(err, "failed to load scenario file %s", path)
	}
	logger.Info(ctx, "loaded scenario file", "path", path)
	return scenarios, nil
}
