package render

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func getTestingRenderer(t *testing.T) *Renderer {
	fontPath := os.Getenv("TEST_RENDER_FONT")
	if fontPath == "" {
		t.Skip("TEST_RENDER_FONT is not configured")
	}

	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		t.Fatalf("failed to read test font: %v", err)
	}

	config := DefaultConfig()
	config.FontBytes = fontBytes
	renderer, err := New(config)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() {
		renderer.Close()
	})
	return renderer
}

func TestNewRequiresFont(t *testing.T) {
	if _, err := New(DefaultConfig()); err == nil {
		t.Error("expected error for missing font data")
	}
}

func TestNewRejectsGarbageFont(t *testing.T) {
	config := DefaultConfig()
	config.FontBytes = []byte("this is not a font")
	if _, err := New(config); err == nil {
		t.Error("expected error for unparseable font data")
	}
}

func TestRenderLine(t *testing.T) {
	renderer := getTestingRenderer(t)

	img, err := renderer.RenderLine("Привіт світ")
	if err != nil {
		t.Fatalf("RenderLine failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dy() != 64 {
		t.Errorf("image height %d, want 64", bounds.Dy())
	}
	if bounds.Dx() <= 20 {
		t.Errorf("image width %d looks too small for rendered text", bounds.Dx())
	}
}

func TestRenderLineRejectsMultiline(t *testing.T) {
	renderer := getTestingRenderer(t)

	if _, err := renderer.RenderLine("перший\nдругий"); err == nil {
		t.Error("expected error for multi-line text")
	}
}

func TestWriteDataset(t *testing.T) {
	renderer := getTestingRenderer(t)
	outDir := t.TempDir()

	lines := []string{"Привіт світ", "Довідка №12"}
	if err := renderer.WriteDataset(outDir, lines); err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}

	for i := 1; i <= len(lines); i++ {
		path := filepath.Join(outDir, fmt.Sprintf("img_%d.png", i))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing rendered image %d: %v", i, err)
		}
	}

	labels, err := os.Open(filepath.Join(outDir, "labels.txt"))
	if err != nil {
		t.Fatalf("missing labels file: %v", err)
	}
	defer labels.Close()

	var entries []string
	scanner := bufio.NewScanner(labels)
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to read labels: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 label entries, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0], "img_1.png ") || !strings.HasSuffix(entries[0], "Привіт світ") {
		t.Errorf("unexpected label entry: %q", entries[0])
	}
}
