package rowfmt

import (
	"fmt"
	"reflect"
	"strings"
)

// NewMapProcessor returns a processor for map records. Each output row has
// one value per effective header, in header order; keys absent from the map
// produce nil values. Index selection is applied after the row is built.
func NewMapProcessor() Processor[map[string]any] {
	return &mapProcessor{}
}

type mapProcessor struct{}

func (p *mapProcessor) Process(record map[string]any, headers []string, indexes []int) ([]any, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: map records need headers to order columns", ErrNoHeaders)
	}
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = record[h]
	}
	return projectRow(row, indexes)
}

// NewStructProcessor returns a processor for struct records. Exported fields
// are matched to the effective headers by their `rowfmt` tag, falling back to
// the field name (case-insensitively). Fields tagged "-" are ignored. A
// header with no matching field fails with [ErrUnknownField].
func NewStructProcessor[T any]() Processor[T] {
	return &structProcessor[T]{}
}

type structProcessor[T any] struct {
	fields map[string]int
}

func (p *structProcessor[T]) Process(record T, headers []string, indexes []int) ([]any, error) {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, record)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: struct records need headers to order columns", ErrNoHeaders)
	}
	if p.fields == nil {
		p.fields = structFields(v.Type())
	}
	row := make([]any, len(headers))
	for i, h := range headers {
		ix, ok := p.fields[h]
		if !ok {
			ix, ok = p.fields[strings.ToLower(h)]
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownField, h, v.Type())
		}
		row[i] = v.Field(ix).Interface()
	}
	return projectRow(row, indexes)
}

// structFields maps column names to field indexes. Tagged names are stored
// as-is; untagged field names are stored lowercased for folded lookup.
func structFields(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("rowfmt")
		if tag == "-" {
			continue
		}
		if tag != "" {
			fields[tag] = i
			continue
		}
		fields[strings.ToLower(f.Name)] = i
	}
	return fields
}

// projectRow applies index selection to a full row. Nil or empty indexes
// leave the row untouched.
func projectRow(row []any, indexes []int) ([]any, error) {
	if len(indexes) == 0 {
		return row, nil
	}
	out := make([]any, len(indexes))
	for i, ix := range indexes {
		if ix < 0 || ix >= len(row) {
			return nil, fmt.Errorf("%w: %d of %d columns", ErrIndexRange, ix, len(row))
		}
		out[i] = row[ix]
	}
	return out, nil
}
