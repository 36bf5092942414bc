package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dvloznov/sales-analytics/internal/catalog"
	"github.com/dvloznov/sales-analytics/internal/config"
	"github.com/dvloznov/sales-analytics/internal/logger"
	"github.com/dvloznov/sales-analytics/internal/pipeline"
	"github.com/dvloznov/sales-analytics/internal/report"
)

var (
	inputFile    string
	regionFilter string
	minAmount    float64
	maxAmount    float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full sales analytics pipeline",
	RunE:  runPipeline,
}

func init() {
	runCmd.Flags().StringVar(&inputFile, "input", "", "sales data file (overrides config)")
	runCmd.Flags().StringVar(&regionFilter, "region", "", "only include transactions from this region")
	runCmd.Flags().Float64Var(&minAmount, "min-amount", 0, "only include transactions with amount >= this value")
	runCmd.Flags().Float64Var(&maxAmount, "max-amount", 0, "only include transactions with amount <= this value")
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	runID := uuid.NewString()
	log := logger.New(level).With().Str("run_id", runID).Logger()

	httpClient := &http.Client{Timeout: time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second}
	svc, err := catalog.NewClient(httpClient, cfg.Catalog.BaseURL)
	if err != nil {
		return fmt.Errorf("create catalog client: %w", err)
	}

	filters := pipeline.Filters{Region: regionFilter}
	if cmd.Flags().Changed("min-amount") {
		filters.MinAmount = &minAmount
	}
	if cmd.Flags().Changed("max-amount") {
		filters.MaxAmount = &maxAmount
	}

	state := &pipeline.State{
		RunID:        runID,
		InputPath:    cfg.Input.File,
		EnrichedPath: cfg.Output.EnrichedFile,
		ReportPath:   cfg.Output.ReportFile,
		Filters:      filters,
	}
	if inputFile != "" {
		state.InputPath = inputFile
	}

	renderer := report.NewRenderer(cfg.Report.Currency, cfg.Report.TopN, cfg.Report.LowThreshold)
	p := pipeline.NewSalesReportPipeline(log, svc, cfg.Catalog.Limit, renderer)

	log.Info().Str("input", state.InputPath).Msg("starting sales report run")
	if err := p.Execute(cmd.Context(), state); err != nil {
		log.Error().Err(err).Msg("pipeline run failed")
		return err
	}

	fmt.Print(state.Report)
	return nil
}
