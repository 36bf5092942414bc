package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dvloznov/sales-analytics/internal/catalog"
	"github.com/dvloznov/sales-analytics/internal/domain"
	"github.com/dvloznov/sales-analytics/internal/reader"
	"github.com/dvloznov/sales-analytics/internal/report"
)

// CatalogService is the slice of the catalog client the pipeline needs.
// It exists so tests can substitute a stub for the HTTP client.
type CatalogService interface {
	ListProducts(ctx context.Context, limit int) ([]catalog.Product, error)
}

// Step is a single stage of the sales report pipeline.
type Step interface {
	Execute(ctx context.Context, state *State) error
}

// State holds the shared state across all pipeline steps for one run.
type State struct {
	RunID        string
	InputPath    string
	EnrichedPath string
	ReportPath   string
	Filters      Filters

	RawLines   []string
	Candidates []domain.Transaction
	Valid      []domain.Transaction
	Summary    Summary
	Mapping    catalog.Mapping
	Enriched   []domain.EnrichedTransaction
	Report     string
}

// ReadInputStep loads raw sales data lines from the input file. Missing or
// undecodable files degrade to an empty run.
type ReadInputStep struct {
	Log zerolog.Logger
}

func (s *ReadInputStep) Execute(ctx context.Context, state *State) error {
	state.RawLines = reader.Load(state.InputPath, s.Log)
	s.Log.Info().Str("file", state.InputPath).Int("lines", len(state.RawLines)).Msg("read sales data")
	return nil
}

// ParseStep turns raw lines into transaction candidates, skipping
// structurally malformed lines silently.
type ParseStep struct {
	Log zerolog.Logger
}

func (s *ParseStep) Execute(ctx context.Context, state *State) error {
	candidates, results := ParseLines(state.RawLines)
	state.Candidates = candidates

	for i, r := range results {
		if r.Skipped {
			s.Log.Debug().Int("line", i+1).Str("reason", r.Reason).Msg("skipped malformed line")
		}
	}
	s.Log.Info().Int("candidates", len(candidates)).Msg("parsed transactions")
	return nil
}

// ValidateStep validates candidates and applies the configured filters.
type ValidateStep struct {
	Log zerolog.Logger
}

func (s *ValidateStep) Execute(ctx context.Context, state *State) error {
	valid, invalid, summary := ValidateAndFilter(state.Candidates, state.Filters)

	// Side observations over the pre-filter valid set; handy when choosing
	// filter values for the next run.
	preFilter, _, _ := ValidateAndFilter(state.Candidates, Filters{})
	s.Log.Info().Strs("regions", RegionsObserved(preFilter)).Msg("available regions")
	if min, max, ok := AmountRange(preFilter); ok {
		s.Log.Info().Float64("min", min).Float64("max", max).Msg("transaction amount range")
	}

	state.Valid = valid
	state.Summary = summary
	s.Log.Info().
		Int("valid", summary.FinalCount).
		Int("invalid", invalid).
		Int("filtered_by_region", summary.FilteredByRegion).
		Int("filtered_by_amount", summary.FilteredByAmount).
		Msg("validated transactions")
	return nil
}

// FetchCatalogStep fetches the product listing and builds the enrichment
// mapping. Collaborator failures degrade to an empty mapping so the run
// continues with all transactions unmatched.
type FetchCatalogStep struct {
	Log     zerolog.Logger
	Catalog CatalogService
	Limit   int
}

func (s *FetchCatalogStep) Execute(ctx context.Context, state *State) error {
	products, err := s.Catalog.ListProducts(ctx, s.Limit)
	if err != nil {
		s.Log.Warn().Err(err).Msg("catalog unavailable, continuing without enrichment data")
		state.Mapping = catalog.Mapping{}
		return nil
	}
	state.Mapping = catalog.BuildMapping(products)
	s.Log.Info().Int("products", len(state.Mapping)).Msg("built catalog mapping")
	return nil
}

// EnrichStep joins surviving transactions to the catalog mapping.
type EnrichStep struct {
	Log zerolog.Logger
}

func (s *EnrichStep) Execute(ctx context.Context, state *State) error {
	state.Enriched = Enrich(state.Valid, state.Mapping)

	matched := 0
	for _, e := range state.Enriched {
		if e.APIMatch {
			matched++
		}
	}
	s.Log.Info().Int("matched", matched).Int("total", len(state.Enriched)).Msg("enriched transactions")
	return nil
}

// WriteEnrichedStep saves the enriched data file.
type WriteEnrichedStep struct {
	Log zerolog.Logger
}

func (s *WriteEnrichedStep) Execute(ctx context.Context, state *State) error {
	if err := WriteEnriched(state.Enriched, state.EnrichedPath); err != nil {
		return err
	}
	s.Log.Info().Str("file", state.EnrichedPath).Msg("saved enriched data")
	return nil
}

// RenderReportStep renders the sales report and writes it to disk.
type RenderReportStep struct {
	Log      zerolog.Logger
	Renderer *report.Renderer
}

func (s *RenderReportStep) Execute(ctx context.Context, state *State) error {
	state.Report = s.Renderer.Render(state.Valid, state.Enriched)
	if err := report.Save(state.Report, state.ReportPath); err != nil {
		return err
	}
	s.Log.Info().Str("file", state.ReportPath).Msg("sales report generated")
	return nil
}

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []Step
}

// New creates a pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps sequentially, stopping at the first error.
func (p *Pipeline) Execute(ctx context.Context, state *State) error {
	for i, step := range p.steps {
		if err := step.Execute(ctx, state); err != nil {
			return fmt.Errorf("pipeline step %d failed: %w", i+1, err)
		}
	}
	return nil
}

// NewSalesReportPipeline assembles the standard seven-step run: read,
// parse, validate/filter, fetch catalog, enrich, write enriched data,
// render report.
func NewSalesReportPipeline(log zerolog.Logger, svc CatalogService, catalogLimit int, renderer *report.Renderer) *Pipeline {
	return New(
		&ReadInputStep{Log: log},
		&ParseStep{Log: log},
		&ValidateStep{Log: log},
		&FetchCatalogStep{Log: log, Catalog: svc, Limit: catalogLimit},
		&EnrichStep{Log: log},
		&WriteEnrichedStep{Log: log},
		&RenderReportStep{Log: log, Renderer: renderer},
	)
}
