package dataset

import (
	"errors"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/Volplayed/ukr-document-OCR/corpus"
)

// AssembleDocuments pairs every corrupted variant with its clean original as
// whole documents: one example per variant file. referenceFS holds the clean
// .txt files at its root, variantsFS one subdirectory per document name with
// the generated example_<ordinal>.txt files.
func AssembleDocuments(referenceFS fs.FS, variantsFS fs.FS) (Corpus, error) {
	out := Corpus{}
	err := walkVariants(referenceFS, variantsFS, func(document corpus.Document, variant string) {
		out = append(out, Example{Text: variant, Target: document.Text})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AssembleLines pairs variants with originals line by line: original and
// variant lines are zipped positionally and both sides trimmed of surrounding
// whitespace. When the line counts diverge (a corruption rule merged or
// dropped a line), only the shorter prefix is paired and the rest is silently
// dropped.
func AssembleLines(referenceFS fs.FS, variantsFS fs.FS) (Corpus, error) {
	out := Corpus{}
	err := walkVariants(referenceFS, variantsFS, func(document corpus.Document, variant string) {
		cleanLines := splitLines(document.Text)
		dirtyLines := splitLines(variant)

		n := len(cleanLines)
		if len(dirtyLines) < n {
			n = len(dirtyLines)
		}
		for i := 0; i < n; i++ {
			out = append(out, Example{
				Text:   strings.TrimSpace(dirtyLines[i]),
				Target: strings.TrimSpace(cleanLines[i]),
			})
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// walkVariants visits every (document, variant content) pair in ramp order.
// A document without a variants subdirectory is fatal, matching the batch
// failure policy of the generator.
func walkVariants(referenceFS fs.FS, variantsFS fs.FS, visit func(document corpus.Document, variant string)) error {
	documents, err := corpus.LoadDocuments(referenceFS)
	if err != nil {
		return err
	}

	for _, document := range documents {
		entries, err := fs.ReadDir(variantsFS, document.Name)
		if err != nil {
			return errors.Join(errors.New("failed to read variants directory for document"), err)
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
				continue
			}
			names = append(names, entry.Name())
		}
		sortByOrdinal(names)

		for _, name := range names {
			data, err := fs.ReadFile(variantsFS, path.Join(document.Name, name))
			if err != nil {
				return errors.Join(errors.New("failed to read variant file"), err)
			}
			visit(document, string(data))
		}
	}

	return nil
}

// sortByOrdinal orders example_<N>.txt files numerically so corpus order
// follows the severity ramp. Files outside that naming sort after them by
// name.
func sortByOrdinal(names []string) {
	sort.Slice(names, func(i, j int) bool {
		oi, oki := ordinalOf(names[i])
		oj, okj := ordinalOf(names[j])
		if oki != okj {
			return oki
		}
		if oki && oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})
}

func ordinalOf(name string) (int, bool) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(name, "example_"), ".txt")
	if trimmed == name {
		return 0, false
	}
	ordinal, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return ordinal, true
}

// splitLines splits on "\n" without manufacturing a final empty line for
// text that ends with a terminator. Carriage returns are left for TrimSpace.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
