package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/salesplot-dev/salesplot/internal/chartdata"
	"github.com/salesplot-dev/salesplot/internal/config"
	"github.com/salesplot-dev/salesplot/internal/ingest"
	"github.com/salesplot-dev/salesplot/internal/logging"
	"github.com/salesplot-dev/salesplot/internal/render"
	"github.com/salesplot-dev/salesplot/internal/report"
	"github.com/salesplot-dev/salesplot/internal/runlog"
)

func newRenderCommand() *cobra.Command {
	var output string
	var lenient bool
	var width, height int
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "render <input.csv>",
		Short: "Aggregate a sales CSV and render the combined chart image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags override config only when set explicitly.
			if !cmd.Flags().Changed("lenient") {
				lenient = cfg.Ingest.Lenient
			}
			if output == "" {
				output = cfg.Chart.OutputPath
			}
			if width == 0 {
				width = cfg.Chart.Width
			}
			if height == 0 {
				height = cfg.Chart.Height
			}

			return runRender(args[0], output, width, height, lenient, verbose)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default from config)")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "skip invalid rows instead of aborting")
	cmd.Flags().IntVar(&width, "width", 0, "image width in pixels (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "image height in pixels (default from config)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "config file path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runRender(input, output string, width, height int, lenient, verbose bool) error {
	logger, err := logging.New(verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	start := time.Now()

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	rows, err := ingest.ReadRows(f)
	if err != nil {
		return err
	}
	logger.Debug("input read", zap.String("input", input), zap.Int("rawRows", len(rows)))

	res, err := report.NewService(lenient).Build(rows)
	if err != nil {
		return err
	}

	for _, skip := range res.Skipped {
		logger.Warn("skipped invalid row",
			zap.Int("row", skip.Line),
			zap.String("field", skip.Field),
			zap.String("reason", skip.Reason))
	}
	if res.RowCount == 0 {
		logger.Warn("no valid sales rows, rendering placeholder chart")
	}

	monthly := chartdata.FromTable(res.Monthly)
	products := chartdata.FromTable(res.Products)

	opts := render.Options{OutputPath: output, Width: width, Height: height}
	if err := render.Chart(monthly, products, opts); err != nil {
		return err
	}

	logger.Info("chart rendered",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("rows", res.RowCount),
		zap.Int("skipped", len(res.Skipped)),
		zap.Duration("elapsed", time.Since(start)))

	entry := runlog.Entry{
		Timestamp: time.Now(),
		Input:     input,
		Output:    output,
		Rows:      res.RowCount,
		Skipped:   len(res.Skipped),
		Status:    runlog.StatusOK,
	}
	if err := runlog.Append(".", []runlog.Entry{entry}); err != nil {
		logger.Warn("failed to append run log", zap.Error(err))
	}

	fmt.Printf("Rendered %s (%d rows", output, res.RowCount)
	if len(res.Skipped) > 0 {
		fmt.Printf(", %d skipped", len(res.Skipped))
	}
	fmt.Println(")")
	return nil
}
