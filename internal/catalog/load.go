package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// file is the on-disk TOML shape: a list of [[category]] tables, each with
// its own [[category.skill]] entries.
type file struct {
	Categories []Category `toml:"category"`
}

// Load reads and parses a TOML catalog file. It does not validate the result;
// use Resolve for the load-and-validate path.
func Load(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoCatalog, path)
		}
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML catalog document.
func Parse(data []byte) ([]Category, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return f.Categories, nil
}

// Encode renders cats as a TOML document that Parse reads back unchanged.
func Encode(cats []Category) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(file{Categories: cats}); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Resolve returns the built-in catalog when path is empty, otherwise the
// validated catalog stored at path.
func Resolve(path string) ([]Category, error) {
	if path == "" {
		return Default(), nil
	}
	cats, err := Load(path)
	if err != nil {
		return nil, err
	}
	if errs := Validate(cats); len(errs) > 0 {
		if len(errs) > 1 {
			return nil, fmt.Errorf("%w: %s: %v (and %d more)", ErrInvalidCatalog, path, &errs[0], len(errs)-1)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, path, &errs[0])
	}
	return cats, nil
}
