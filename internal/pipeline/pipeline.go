// Package pipeline sequences loading, normalization, aggregation and presentation.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"bookstats/internal/analytics"
	"bookstats/internal/config"
	"bookstats/internal/formatter"
	"bookstats/internal/loader"
	"bookstats/internal/logger"
	"bookstats/internal/models"
	"bookstats/internal/normalizer"
)

// Result is the outcome of one run.
type Result struct {
	Dataset   *models.Dataset
	Report    analytics.Report
	Artifacts []string
}

// Pipeline runs the analytics job once per Run call.
type Pipeline struct {
	cfg       *config.Config
	log       *logger.Logger
	processor *normalizer.Processor
	now       func() time.Time
}

// New creates a pipeline for cfg.
func New(cfg *config.Config, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Discard()
	}

	return &Pipeline{
		cfg:       cfg,
		log:       log,
		processor: normalizer.NewProcessor(log.With("stage", "normalize")),
		now:       time.Now,
	}
}

// Normalize loads the three sources and returns the cleaned dataset.
func (p *Pipeline) Normalize(ctx context.Context) (*models.Dataset, error) {
	src := loader.Sources{
		Customers: p.cfg.ResolveInput(p.cfg.Inputs.Customers),
		Catalog:   p.cfg.ResolveInput(p.cfg.Inputs.Catalog),
		Orders:    p.cfg.ResolveInput(p.cfg.Inputs.Orders),
	}

	p.log.Info("Phase 1: Loading sources", "customers", src.Customers, "catalog", src.Catalog, "orders", src.Orders)

	raw, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	p.log.Info("Phase 2: Normalizing",
		"customers", len(raw.Customers), "books", len(raw.Books), "orders", len(raw.Orders))

	ds, err := p.processor.Process(raw)
	if err != nil {
		return nil, fmt.Errorf("normalization failed: %w", err)
	}

	return ds, nil
}

// Run executes the whole job and writes the dashboard, the chart and, when
// configured, the report as JSON.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := p.now()

	ds, err := p.Normalize(ctx)
	if err != nil {
		return nil, err
	}

	p.log.Info("Phase 3: Aggregating")

	report := analytics.NewEngine(ds).Report(p.cfg.Report.TopDays)
	s := report.Summary

	if s.UnparseableTimestamps > 0 || s.UnparseablePrices > 0 {
		p.log.Warn("some orders could not be fully parsed",
			"unparseable_timestamps", s.UnparseableTimestamps,
			"unparseable_prices", s.UnparseablePrices,
			"missing_timestamps", s.MissingTimestamps,
			"missing_prices", s.MissingPrices,
		)
	}

	p.log.Info("Phase 4: Presenting", "output", p.cfg.Output.Dir)

	artifacts, err := p.present(report)
	if err != nil {
		return nil, err
	}

	p.log.Info("Pipeline finished", "duration", p.now().Sub(start), "artifacts", len(artifacts))

	return &Result{Dataset: ds, Report: report, Artifacts: artifacts}, nil
}

func (p *Pipeline) present(report analytics.Report) ([]string, error) {
	if err := os.MkdirAll(p.cfg.Output.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	dashboard := formatter.RenderDashboard(report, formatter.DashboardOptions{
		Title:          p.cfg.Report.Title,
		ChartFile:      p.cfg.Output.Chart,
		DailyChartFile: p.cfg.Output.DailyChart,
		GeneratedAt:    p.now(),
	})

	files := []struct {
		name    string
		content []byte
	}{
		{p.cfg.Output.Dashboard, []byte(dashboard)},
		{p.cfg.Output.Chart, []byte(formatter.RenderChart(report.TopDays, formatter.DefaultChartOptions()))},
		{p.cfg.Output.DailyChart, []byte(formatter.RenderChart(report.DailyRevenue, formatter.DailyChartOptions()))},
	}

	if p.cfg.Output.ReportJSON != "" {
		data, err := p.marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}

		files = append(files, struct {
			name    string
			content []byte
		}{p.cfg.Output.ReportJSON, data})
	}

	artifacts := make([]string, 0, len(files))

	for _, f := range files {
		path := p.cfg.OutputPath(f.name)
		if err := os.WriteFile(path, f.content, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}

		p.log.Debug("wrote artifact", "path", path, "bytes", len(f.content))
		artifacts = append(artifacts, path)
	}

	return artifacts, nil
}

func (p *Pipeline) marshal(v any) ([]byte, error) {
	if p.cfg.Output.PrettyPrint {
		return json.MarshalIndent(v, "", "  ")
	}

	return json.Marshal(v)
}
