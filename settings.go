package rowfmt

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Settings holds the writer-side defaults: the full header list, which
// columns to emit, and how cells are rendered. The zero value writes every
// column, comma-delimited, with a header row.
type Settings struct {
	// Headers is the full list of column names, in row order.
	Headers []string `yaml:"headers"`

	// Fields selects columns to emit by header name, in the given order.
	// Ignored when Indexes is set.
	Fields []string `yaml:"fields"`

	// Indexes selects columns to emit by position, in the given order.
	Indexes []int `yaml:"indexes"`

	// Delimiter separates cells in the output. Only the first rune is
	// used; empty means comma. "\t" produces TSV.
	Delimiter string `yaml:"delimiter"`

	// NilValue is written for nil cells.
	NilValue string `yaml:"nil_value"`

	// OmitHeader suppresses the header row.
	OmitHeader bool `yaml:"omit_header"`
}

// LoadSettings reads Settings from YAML. An empty document yields the zero
// Settings.
func LoadSettings(r io.Reader) (Settings, error) {
	var s Settings
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	return s, nil
}

// resolveIndexes converts the column selection to positions. Explicit
// Indexes win over Fields; with neither, nil means "all columns".
func (s Settings) resolveIndexes() ([]int, error) {
	if len(s.Indexes) > 0 {
		return s.Indexes, nil
	}
	if len(s.Fields) == 0 {
		return nil, nil
	}
	out := make([]int, len(s.Fields))
	for i, f := range s.Fields {
		ix := slices.Index(s.Headers, f)
		if ix < 0 {
			return nil, fmt.Errorf("%w: %q not in headers", ErrUnknownField, f)
		}
		out[i] = ix
	}
	return out, nil
}

func (s Settings) delimiter() rune {
	if s.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(s.Delimiter)
	return r
}
