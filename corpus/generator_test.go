package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
)

func referenceFS() fstest.MapFS {
	return fstest.MapFS{
		"a.txt": &fstest.MapFile{Data: []byte("Привіт світ\n")},
		"b.txt": &fstest.MapFile{Data: []byte("Довідка №12\nвидана 20.01.2024\n")},
	}
}

func TestGenerateZeroSeverityKeepsText(t *testing.T) {
	outputDir := t.TempDir()

	config := DefaultGeneratorConfig()
	config.NumLevels = 3
	config.MinSeverity = 0
	config.MaxSeverity = 0

	generator := NewGenerator(config)
	if err := generator.Generate(context.Background(), referenceFS(), outputDir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for ordinal := 1; ordinal <= 3; ordinal++ {
		path := filepath.Join(outputDir, "a", fmt.Sprintf("example_%d.txt", ordinal))
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("variant %d missing: %v", ordinal, err)
		}
		if string(data) != "Привіт світ\n" {
			t.Errorf("variant %d = %q, want %q", ordinal, data, "Привіт світ\n")
		}
	}
}

func TestGenerateWritesOneVariantPerLevel(t *testing.T) {
	outputDir := t.TempDir()

	config := DefaultGeneratorConfig()
	config.NumLevels = 4

	var mu sync.Mutex
	var events []ProgressEvent
	config.Progress = func(event ProgressEvent) {
		mu.Lock()
		events = append(events, event)
		mu.Unlock()
	}

	generator := NewGenerator(config)
	if err := generator.Generate(context.Background(), referenceFS(), outputDir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(events) != 8 {
		t.Errorf("expected 8 progress events (2 documents x 4 levels), got %d", len(events))
	}

	for _, name := range []string{"a", "b"} {
		entries, err := os.ReadDir(filepath.Join(outputDir, name))
		if err != nil {
			t.Fatalf("missing variants directory for %s: %v", name, err)
		}
		if len(entries) != 4 {
			t.Errorf("document %s has %d variants, want 4", name, len(entries))
		}
	}
}

func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to read generated tree: %v", err)
	}
	return tree
}

func TestGenerateIsReproducibleForFixedSeed(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.NumLevels = 5
	config.MaxSeverity = 0.7
	config.Seed = 99

	first := t.TempDir()
	second := t.TempDir()
	for _, outputDir := range []string{first, second} {
		if err := NewGenerator(config).Generate(context.Background(), referenceFS(), outputDir); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
	}

	firstTree := readTree(t, first)
	secondTree := readTree(t, second)
	if len(firstTree) != 10 {
		t.Fatalf("expected 10 variant files, got %d", len(firstTree))
	}
	for path, content := range firstTree {
		if secondTree[path] != content {
			t.Errorf("rerun produced different content for %s", path)
		}
	}
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.NumLevels = 6
	config.Seed = 5

	sequentialDir := t.TempDir()
	if err := NewGenerator(config).Generate(context.Background(), referenceFS(), sequentialDir); err != nil {
		t.Fatalf("sequential Generate failed: %v", err)
	}

	config.Parallelism = 4
	parallelDir := t.TempDir()
	if err := NewGenerator(config).Generate(context.Background(), referenceFS(), parallelDir); err != nil {
		t.Fatalf("parallel Generate failed: %v", err)
	}

	sequentialTree := readTree(t, sequentialDir)
	parallelTree := readTree(t, parallelDir)
	for path, content := range sequentialTree {
		if parallelTree[path] != content {
			t.Errorf("parallel run produced different content for %s", path)
		}
	}
}

func TestGenerateOverwritesExistingVariants(t *testing.T) {
	outputDir := t.TempDir()

	config := DefaultGeneratorConfig()
	config.NumLevels = 2
	config.Seed = 3

	if err := NewGenerator(config).Generate(context.Background(), referenceFS(), outputDir); err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	before := readTree(t, outputDir)

	if err := NewGenerator(config).Generate(context.Background(), referenceFS(), outputDir); err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	after := readTree(t, outputDir)

	if len(before) != len(after) {
		t.Fatalf("rerun changed variant count: %d -> %d", len(before), len(after))
	}
	for path, content := range before {
		if after[path] != content {
			t.Errorf("rerun changed content of %s", path)
		}
	}
}

func TestGenerateRejectsEmptyRamp(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.NumLevels = 0

	err := NewGenerator(config).Generate(context.Background(), referenceFS(), t.TempDir())
	if err == nil {
		t.Error("expected error for zero ramp levels")
	}
}
