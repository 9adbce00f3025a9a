package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/batterlab/internal/report"
	"github.com/okian/batterlab/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("splits-report", flag.ContinueOnError)
	var (
		csvPath   = fs.String("csv", "", "Statcast CSV export")
		pitcherID = fs.Int64("pitcher", 0, "Add the matchup against this pitcher id")
		format    = fs.String("format", report.FormatText, "Output format: text or json")
		split     = fs.String("split", "", "Only this split kind")
		verbose   = fs.Bool("verbose", false, "Enable debug logging")
		help      = fs.Bool("help", false, "Show help")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *help {
		report.ShowHelp(os.Stdout)
		return 0
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(logger.WithWriter(os.Stderr), logger.WithLevel(level)); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := &report.Config{
		CSVPath:   *csvPath,
		PitcherID: *pitcherID,
		Format:    *format,
		Split:     *split,
		Out:       os.Stdout,
	}
	if err := report.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "report failed", logger.Error(err))
		return 1
	}
	return 0
}
