// Package dataset packages clean documents and their corrupted variants into
// training corpora for the text-correction model.
package dataset

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// Example is one training pair: Text is the corrupted input, Target the
// clean text the model should produce.
type Example struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

// Corpus is an ordered sequence of training examples.
type Corpus []Example

// WriteJSON serializes the corpus as a single indented JSON array. Cyrillic
// stays unescaped in the output.
func (c Corpus) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(c); err != nil {
		return errors.Join(errors.New("failed to encode training corpus"), err)
	}
	return nil
}

// WriteFile writes the corpus as JSON to path, overwriting an existing file.
func (c Corpus) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Join(errors.New("failed to create training corpus file"), err)
	}

	if err := c.WriteJSON(file); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return errors.Join(errors.New("failed to finalize training corpus file"), err)
	}
	return nil
}
