// Package pipeline provides the high-level orchestration for the CV
// generation process: validate, compose, inject, encode, write.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-generator/internal/docx"
	"github.com/jonathan/cv-generator/internal/naming"
	"github.com/jonathan/cv-generator/internal/profile"
	"github.com/jonathan/cv-generator/internal/rendering"
	"github.com/jonathan/cv-generator/internal/types"
)

// batchConcurrency bounds the number of records rendered at once in
// batch mode. Each render is independent and shares no mutable state.
const batchConcurrency = 4

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for a single pipeline run.
type Options struct {
	DataPath  string // Path to the YAML profile record
	OutputDir string // Directory the document is written into
	Label     string // Optional company/context label for the file name
	// DisableHiddenText suppresses the invisible-text layer regardless
	// of the record's hidden_payload field.
	DisableHiddenText bool
	// Clock supplies the timestamp for output naming; nil means
	// time.Now. Tests inject a fixed clock for deterministic names.
	Clock      func() time.Time
	OnProgress ProgressCallback
}

// Result summarizes a completed run. Diagnostics are returned here
// instead of being logged through process-wide state.
type Result struct {
	RunID      uuid.UUID
	OutputPath string
	Filename   string
	Sections   []rendering.SectionReport
	Warnings   []string
	BlockCount int
	HiddenText bool
	Duration   time.Duration
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *Options, runID uuid.UUID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID.String()})
	}
}

// Run executes the full pipeline for one record. It is all-or-nothing:
// any failure before the final rename leaves no output artifact.
func Run(ctx context.Context, opts Options) (*Result, error) {
	started := time.Now()
	runID := uuid.New()
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	emitProgress(&opts, runID, "load", fmt.Sprintf("reading record %s", opts.DataPath))
	data, err := os.ReadFile(opts.DataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", opts.DataPath, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	emitProgress(&opts, runID, "validate", "validating and normalizing record")
	record, cfg, err := profile.Load(data)
	if err != nil {
		return nil, err
	}

	emitProgress(&opts, runID, "compose", "rendering sections")
	registry := rendering.NewRegistry()
	stream, diags, err := rendering.Compose(record, cfg, registry)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hidden := false
	if !opts.DisableHiddenText && record.HiddenPayload != "" && !cfg.IsHidden(types.SectionHiddenPayload) {
		emitProgress(&opts, runID, "inject", "appending invisible text layer")
		stream = rendering.InjectHiddenText(stream, record.HiddenPayload)
		hidden = true
	}

	emitProgress(&opts, runID, "encode", "encoding document")
	document, err := docx.Encode(stream, cfg)
	if err != nil {
		return nil, err
	}

	prefix := cfg.FilenamePrefix
	if prefix == "" {
		prefix = record.Identity.Name
	}
	filename := naming.Filename(prefix, opts.Label, cfg.IncludeTimestamp, clock())
	outputPath := filepath.Join(opts.OutputDir, filename)

	emitProgress(&opts, runID, "write", fmt.Sprintf("writing %s", outputPath))
	if err := writeAtomic(opts.OutputDir, outputPath, document); err != nil {
		return nil, err
	}

	return &Result{
		RunID:      runID,
		OutputPath: outputPath,
		Filename:   filename,
		Sections:   diags.Sections,
		Warnings:   diags.WarningStrings(),
		BlockCount: len(stream),
		HiddenText: hidden,
		Duration:   time.Since(started),
	}, nil
}

// RunBatch renders several records concurrently. Each record uses its
// own options derived from base with DataPath replaced; results keep
// the order of paths. The first failure cancels outstanding renders.
func RunBatch(ctx context.Context, paths []string, base Options) ([]*Result, error) {
	results := make([]*Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			opts := base
			opts.DataPath = path
			result, err := Run(ctx, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeAtomic writes the document via a temp file and rename so a
// failure mid-write never leaves a partial output file.
func writeAtomic(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".cv-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close document: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move document into place: %w", err)
	}
	return nil
}
