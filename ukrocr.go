// Package ukrocr builds training data for the Ukrainian document
// text-correction model: it corrupts clean reference documents at a ramp of
// severities, pairs the variants back with their originals and packages the
// pairs into training corpora.
package ukrocr

import (
	"context"
	"errors"
	"os"

	"github.com/Volplayed/ukr-document-OCR/corpus"
	"github.com/Volplayed/ukr-document-OCR/dataset"
	"github.com/Volplayed/ukr-document-OCR/storage"
)

type Config struct {
	// Directory with the clean reference .txt documents
	ReferenceDir string
	// Directory where corrupted variants are written and read back from
	VariantsDir string
	// Severity ramp and reproducibility settings
	Generator corpus.GeneratorConfig
	// Optional persistent store for the assembled corpora
	Storage storage.Storage
}

// Result of one generation run. Run is only set when a store was configured.
type Result struct {
	Run       storage.RunID
	Documents dataset.Corpus
	Lines     dataset.Corpus
}

// Engine runs the full pipeline: generate corrupted variants, assemble the
// document-level and line-level corpora, optionally persist both.
type Engine struct {
	config Config
}

func New(config Config) *Engine {
	return &Engine{
		config: config,
	}
}

func (e *Engine) Run(ctx context.Context) (*Result, error) {
	generator := corpus.NewGenerator(e.config.Generator)
	if err := generator.Generate(ctx, os.DirFS(e.config.ReferenceDir), e.config.VariantsDir); err != nil {
		return nil, errors.Join(errors.New("failed to generate corrupted variants"), err)
	}

	referenceFS := os.DirFS(e.config.ReferenceDir)
	variantsFS := os.DirFS(e.config.VariantsDir)

	documents, err := dataset.AssembleDocuments(referenceFS, variantsFS)
	if err != nil {
		return nil, errors.Join(errors.New("failed to assemble document-level corpus"), err)
	}

	lines, err := dataset.AssembleLines(referenceFS, variantsFS)
	if err != nil {
		return nil, errors.Join(errors.New("failed to assemble line-level corpus"), err)
	}

	result := &Result{
		Documents: documents,
		Lines:     lines,
	}

	if e.config.Storage != nil {
		runID, err := e.config.Storage.CreateRun(ctx, storage.Run{
			ReferenceDir: e.config.ReferenceDir,
			NumLevels:    e.config.Generator.NumLevels,
			MinSeverity:  e.config.Generator.MinSeverity,
			MaxSeverity:  e.config.Generator.MaxSeverity,
			Seed:         e.config.Generator.Seed,
		})
		if err != nil {
			return nil, errors.Join(errors.New("failed to record generation run in storage"), err)
		}

		if err := e.config.Storage.PutExamples(ctx, runID, storage.GranularityDocument, documents); err != nil {
			return nil, errors.Join(errors.New("failed to persist document-level corpus"), err)
		}
		if err := e.config.Storage.PutExamples(ctx, runID, storage.GranularityLine, lines); err != nil {
			return nil, errors.Join(errors.New("failed to persist line-level corpus"), err)
		}

		result.Run = runID
	}

	return result, nil
}
