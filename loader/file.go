package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads the description at path, choosing the HCL decoder for
// ".hcl" files and the section-text parser otherwise.
//
// Errors:
//   - ErrIO wrapping the underlying *fs.PathError when path cannot be read.
//   - ErrFormat-wrapped sentinels for malformed content.
func LoadFile(path string) (*Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}

		return ParseHCL(src, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path

	return doc, nil
}

// LoadDir loads every regular file directly inside dir, sorted by name.
// It stops at the first failure.
func LoadDir(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	var docs []*Document
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		doc, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
