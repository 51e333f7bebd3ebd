// Package internal provides the conversion run loop.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/starford/gebo/internal/checksum"
	"github.com/starford/gebo/internal/converter"
	"github.com/starford/gebo/internal/rows"
	"github.com/starford/gebo/internal/sheet"
	"github.com/starford/gebo/internal/storage"
)

// Run executes one conversion with the given options: read both sheets,
// convert, and atomically write the ReqIF document. On invalid input the
// complete defect list is logged and returned; no output file is written.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.requirementsPath == "" {
		return fmt.Errorf("requirements sheet path is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("requirements", app.requirementsPath),
		slog.String("relations", app.relationsPath),
		slog.String("title", cfg.Document.Title),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Read the two sheets concurrently.
	var reqRows, relRows []rows.Row
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reqRows, err = sheet.ReadFile(app.requirementsPath)
		if err != nil {
			return fmt.Errorf("read requirements sheet: %w", err)
		}
		return nil
	})
	if app.relationsPath != "" {
		g.Go(func() error {
			var err error
			relRows, err = sheet.ReadFile(app.relationsPath)
			if err != nil {
				return fmt.Errorf("read relations sheet: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	conv := converter.New(
		converter.WithTitle(cfg.Document.Title),
		converter.WithToolID(cfg.Document.ToolID),
		converter.WithSourceToolID(cfg.Document.SourceToolID),
		converter.WithLogger(logger),
	)

	result, err := conv.Convert(reqRows, relRows)
	if err != nil {
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		return fmt.Errorf("convert: %w", err)
	}

	outPath := app.outputPath
	if outPath == "" {
		outPath = cfg.Output.Path
	}
	if outPath == "" {
		outPath = deriveOutputPath(app.requirementsPath)
	}

	if err := storage.WriteArtifact(outPath, result.XML); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info("Document generated",
		slog.String("output", outPath),
		slog.Int("requirements", result.Requirements),
		slog.Int("relations", result.Relations),
		slog.String("sha256", checksum.Digest(result.XML)))

	return nil
}

// deriveOutputPath swaps the requirements sheet extension for .reqif.
func deriveOutputPath(requirementsPath string) string {
	base := strings.TrimSuffix(requirementsPath, filepath.Ext(requirementsPath))
	return base + ".reqif"
}
