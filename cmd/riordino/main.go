package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"riordino/internal/domain"
	"riordino/internal/report"
	"riordino/internal/service"
	"riordino/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug().Err(err).Msg("no .env file loaded")
	}

	app := &cli.App{
		Name:  "riordino",
		Usage: "Compute supplier reorder quantities from a sales/stock extract",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "Analyze one exported file and write the report artifacts",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the .xlsx or .csv extract",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "Directory for the generated artifacts",
						Value:   "./data/output",
					},
					&cli.IntFlag{
						Name:  "lead-time",
						Usage: "Supplier lead time in days",
						Value: 10,
					},
					&cli.IntFlag{
						Name:  "coverage",
						Usage: "Desired coverage in days beyond the lead time",
						Value: 45,
					},
					&cli.IntFlag{
						Name:  "safety",
						Usage: "Safety stock in days",
						Value: 15,
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Per-vendor sheet ordering: alphabetical or relevance",
						Value: string(report.SortAlphabetical),
					},
				},
				Action: runAnalyze,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("command failed")
	}
}

func runAnalyze(c *cli.Context) error {
	input := c.String("input")
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("cannot stat input file %s: %w", input, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory, expected file", input)
	}

	sortMode := report.SortAlphabetical
	if strings.EqualFold(c.String("sort"), string(report.SortRelevance)) {
		sortMode = report.SortRelevance
	}

	store := service.NewResultStore()
	svc := service.NewAnalysisService(c.String("output-dir"), store)

	result, err := svc.Run(c.Context, service.AnalysisRequest{
		File: &domain.UploadedFile{
			Filename: filepath.Base(input),
			Path:     input,
			Size:     info.Size(),
		},
		Params: domain.Params{
			LeadTimeDays: c.Int("lead-time"),
			CoverageDays: c.Int("coverage"),
			SafetyDays:   c.Int("safety"),
		},
		Sort: sortMode,
	})
	if err != nil {
		return err
	}

	logger.Log.Info().
		Int("period_days", result.PeriodDays).
		Int("total_items", result.TotalItems).
		Int("items_to_order", result.ItemsToOrder).
		Int("total_qty_to_order", result.TotalQtyToOrder).
		Int("exceptions", result.Exceptions).
		Msg("analysis completed")
	for name, path := range result.Artifacts {
		logger.Log.Info().Str("artifact", name).Str("path", path).Msg("artifact written")
	}

	return nil
}
