package dataset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSONKeepsCyrillicUnescaped(t *testing.T) {
	corpus := Corpus{
		{Text: "Пpивіт cвіт", Target: "Привіт світ"},
		{Text: "Довідka N12", Target: "Довідка №12"},
	}

	var buf bytes.Buffer
	if err := corpus.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"target": "Привіт світ"`) {
		t.Errorf("Cyrillic should be written unescaped, got:\n%s", out)
	}
	if strings.Contains(out, `\u`) {
		t.Errorf("output contains escaped characters:\n%s", out)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("output should be a single JSON array, got:\n%s", out)
	}

	var decoded Corpus
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0] != corpus[0] || decoded[1] != corpus[1] {
		t.Errorf("decoded corpus %+v does not match original %+v", decoded, corpus)
	}
}

func TestWriteJSONEmptyCorpus(t *testing.T) {
	var buf bytes.Buffer
	if err := (Corpus{}).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty corpus should encode as [], got %q", buf.String())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train_data.json")
	corpus := Corpus{{Text: "брудний", Target: "чистий"}}

	if err := corpus.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}

	var decoded Corpus
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != corpus[0] {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}
