// Package storage persists assembled training corpora so downstream training
// jobs can read them without touching the generation tree.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Volplayed/ukr-document-OCR/dataset"
)

// Granularity of a stored training example
type Granularity string

// Whole corrupted document paired with the whole clean document
const GranularityDocument Granularity = "document"

// One corrupted line paired with its clean counterpart
const GranularityLine Granularity = "line"

type RunID int64

// Run records one generation batch: where the clean documents came from and
// which ramp produced the variants.
type Run struct {
	ID           RunID     `json:"id"`
	ReferenceDir string    `json:"referenceDir"`
	NumLevels    int       `json:"numLevels"`
	MinSeverity  float64   `json:"minSeverity"`
	MaxSeverity  float64   `json:"maxSeverity"`
	Seed         int64     `json:"seed"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RunStats struct {
	DocumentExamples uint64 `json:"documentExamples"`
	LineExamples     uint64 `json:"lineExamples"`
}

var ErrRunDoesntExist = errors.New("training run does not exist in storage")

type Storage interface {
	// Records a new generation run and returns its identifier
	CreateRun(ctx context.Context, run Run) (RunID, error)
	// Appends training examples to a run at the given granularity. Runs are
	// append-only, examples are never rewritten.
	PutExamples(ctx context.Context, run RunID, granularity Granularity, examples []dataset.Example) error
	// Counts stored examples per granularity for one run
	RunStats(ctx context.Context, run RunID) (*RunStats, error)
}
