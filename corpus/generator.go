package corpus

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Volplayed/ukr-document-OCR/corrupt"
)

// ProgressEvent reports one written variant file. Emitted for observability
// only; generation does not depend on it.
type ProgressEvent struct {
	Document string
	Ordinal  int
	Severity float64
	Path     string
}

type GeneratorConfig struct {
	// Number of severity levels in the ramp, one variant per level per document
	NumLevels int
	// Lowest severity in the ramp
	MinSeverity float64
	// Highest severity in the ramp
	MaxSeverity float64
	// Base seed for the random source. Every (document, ordinal) pair derives
	// its own seed from this value, so reruns with the same seed rewrite
	// byte-identical variant files.
	Seed int64
	// Number of (document, ordinal) pairs corrupted at the same time. Each
	// pair draws from its own random source, so parallel runs stay
	// reproducible. Values below 1 mean sequential.
	Parallelism int
	// Called after every written file. May be called from multiple
	// goroutines when Parallelism is above 1.
	Progress func(event ProgressEvent)
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		NumLevels:   10,
		MinSeverity: 0.1,
		MaxSeverity: 0.5,
		Parallelism: 1,
	}
}

// Generator writes corrupted variants of reference documents to disk.
type Generator struct {
	config GeneratorConfig
}

func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
	}
}

// Generate corrupts every document at the root of referenceFS once per ramp
// level and writes each variant to outputDir/<name>/example_<ordinal>.txt,
// ordinals starting at 1. Output directories are created as needed and
// existing variant files are overwritten, so reruns are safe. Any read or
// write failure aborts the batch.
func (g *Generator) Generate(ctx context.Context, referenceFS fs.FS, outputDir string) error {
	documents, err := LoadDocuments(referenceFS)
	if err != nil {
		return err
	}

	severities := Ramp(g.config.NumLevels, g.config.MinSeverity, g.config.MaxSeverity)
	if len(severities) == 0 {
		return errors.New("severity ramp is empty, NumLevels must be positive")
	}

	group, ctx := errgroup.WithContext(ctx)
	if g.config.Parallelism > 1 {
		group.SetLimit(g.config.Parallelism)
	} else {
		group.SetLimit(1)
	}

	for _, document := range documents {
		documentDir := filepath.Join(outputDir, document.Name)
		if err := os.MkdirAll(documentDir, 0o755); err != nil {
			return errors.Join(errors.New("failed to create variants directory for document"), err)
		}

		for i, severity := range severities {
			ordinal := i + 1
			path := filepath.Join(documentDir, fmt.Sprintf("example_%d.txt", ordinal))
			group.Go(func() error {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				rng := rand.New(rand.NewSource(variantSeed(g.config.Seed, document.Name, ordinal)))
				dirty := corrupt.New(rng).Corrupt(document.Text, severity)

				if err := os.WriteFile(path, []byte(dirty), 0o644); err != nil {
					return errors.Join(errors.New("failed to write variant file"), err)
				}

				if g.config.Progress != nil {
					g.config.Progress(ProgressEvent{
						Document: document.Name,
						Ordinal:  ordinal,
						Severity: severity,
						Path:     path,
					})
				}
				return nil
			})
		}
	}

	return group.Wait()
}

// variantSeed derives a stable per-variant seed from the base seed, the
// document name and the ramp ordinal.
func variantSeed(seed int64, name string, ordinal int) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return seed ^ int64(h.Sum64()) ^ int64(ordinal)<<32
}
