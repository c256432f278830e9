// Package attrs decodes declarative field attributes from YAML.
//
// An attribute file looks like:
//
//	placeHolder: "-"
//	placeIndex: 4
//
// placeHolder is the delimiter; only its first character is kept. A missing
// or empty placeHolder leaves the field without a delimiter, and so does a
// line break.
package attrs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/division/internal/grapheme"
	"github.com/iw2rmb/division/separator"
)

type Attributes struct {
	PlaceHolder *string `yaml:"placeHolder,omitempty"`
	PlaceIndex  *int    `yaml:"placeIndex,omitempty"`
}

// Parse decodes attributes from YAML. Unknown keys are rejected.
func Parse(data []byte) (Attributes, error) {
	var a Attributes
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil {
		if errors.Is(err, io.EOF) {
			return Attributes{}, nil
		}
		return Attributes{}, fmt.Errorf("failed to parse field attributes: %w", err)
	}
	return a, nil
}

// Load reads and parses an attribute file.
func Load(path string) (Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attributes{}, fmt.Errorf("failed to read field attributes: %w", err)
	}
	return Parse(data)
}

// Delimiter returns the first character of placeHolder, or "" when unset.
func (a Attributes) Delimiter() string {
	if a.PlaceHolder == nil {
		return ""
	}
	return grapheme.First(*a.PlaceHolder)
}

// GroupSize returns placeIndex, or 0 when unset.
func (a Attributes) GroupSize() int {
	if a.PlaceIndex == nil {
		return 0
	}
	return *a.PlaceIndex
}

func (a Attributes) Options() separator.Options {
	return separator.Options{
		Delimiter: a.Delimiter(),
		GroupSize: a.GroupSize(),
	}
}

// Merge returns a copy of a with every attribute set in override replacing
// the corresponding one in a.
func (a Attributes) Merge(override Attributes) Attributes {
	if override.PlaceHolder != nil {
		a.PlaceHolder = override.PlaceHolder
	}
	if override.PlaceIndex != nil {
		a.PlaceIndex = override.PlaceIndex
	}
	return a
}
