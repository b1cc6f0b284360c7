package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrEmpty is returned when a dataset document contains no content.
var ErrEmpty = errors.New("dataset: empty document")

// Default returns the embedded dataset. It panics if the embedded document
// does not decode, which would be a build defect.
func Default() *Dataset {
	d, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded default: %v", err))
	}
	return d
}

// Load decodes a YAML dataset. Unknown keys are rejected so typos in field
// names surface as errors. Content is not validated: spans outside their
// era, duplicate ids and odd colours render as given.
func Load(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Dataset
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if len(d.Eras) == 0 && len(d.Movements) == 0 {
		return nil, ErrEmpty
	}
	return &d, nil
}

// LoadFile reads a dataset from path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// LoadOrDefault loads path, or the embedded dataset when path is empty.
func LoadOrDefault(path string) (*Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
