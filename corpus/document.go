// Package corpus loads clean reference documents and generates corrupted
// variants of them at a ramp of severity levels.
package corpus

import (
	"errors"
	"io/fs"
	"strings"
)

// Document is one clean reference text. Immutable once loaded.
type Document struct {
	// Name is the source file name without the .txt extension. Variant
	// files for the document live in a directory with this name.
	Name string
	// Text is the full UTF-8 content of the file.
	Text string
}

// LoadDocuments reads all .txt files at the root of fsys, non-recursive,
// ordered by file name. Any unreadable file is fatal for the whole batch.
func LoadDocuments(fsys fs.FS) ([]Document, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Join(errors.New("failed to read reference directory"), err)
	}

	var documents []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, errors.Join(errors.New("failed to read reference document"), err)
		}

		documents = append(documents, Document{
			Name: strings.TrimSuffix(entry.Name(), ".txt"),
			Text: string(data),
		})
	}

	return documents, nil
}
