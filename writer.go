package rowfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
)

// Writer feeds records through a [Processor] and serializes the resulting
// rows as delimited text. The processor is typically a [Switch] or
// [ValueSwitch], so consecutive records may be formatted by different
// strategies while the output contract (header row, column selection) stays
// fixed by the Settings.
//
// A Writer serves one output stream and is not safe for concurrent use.
type Writer[T any] struct {
	cw          *csv.Writer
	proc        Processor[T]
	settings    Settings
	indexes     []int
	wroteHeader bool
}

// NewWriter returns a Writer emitting to w. Field selection in s is resolved
// once, up front; an unknown field name fails here rather than mid-stream.
func NewWriter[T any](w io.Writer, p Processor[T], s Settings) (*Writer[T], error) {
	indexes, err := s.resolveIndexes()
	if err != nil {
		return nil, err
	}
	cw := csv.NewWriter(w)
	cw.Comma = s.delimiter()
	return &Writer[T]{cw: cw, proc: p, settings: s, indexes: indexes}, nil
}

// Write processes one record. Records the processor skips (nil row) produce
// no output. The header row, if any, is written before the first emitted row.
// Call [Writer.Flush] after the last record.
func (w *Writer[T]) Write(record T) error {
	row, err := w.proc.Process(record, w.settings.Headers, w.indexes)
	if err != nil {
		return err
	}
	if row == nil {
		return nil
	}
	if err := w.writeHeader(); err != nil {
		return err
	}
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = w.render(v)
	}
	return w.cw.Write(cells)
}

// WriteAll writes records and flushes.
func (w *Writer[T]) WriteAll(records ...T) error {
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WriteSeq writes records from an iterator as they arrive, then flushes.
func (w *Writer[T]) WriteSeq(seq iter.Seq[T]) error {
	var writeErr error
	seq(func(record T) bool {
		if err := w.Write(record); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}
	return w.Flush()
}

// WriteChan writes records from a channel until it closes, then flushes.
// It is a thin wrapper around [Writer.WriteSeq].
func (w *Writer[T]) WriteChan(ch <-chan T) error {
	return w.WriteSeq(chanToSeq(ch))
}

// Flush writes buffered output to the underlying writer.
func (w *Writer[T]) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

func (w *Writer[T]) writeHeader() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	if w.settings.OmitHeader || len(w.settings.Headers) == 0 {
		return nil
	}
	header := w.settings.Headers
	if len(w.indexes) > 0 {
		out := make([]string, len(w.indexes))
		for i, ix := range w.indexes {
			if ix < 0 || ix >= len(header) {
				return fmt.Errorf("%w: %d of %d headers", ErrIndexRange, ix, len(header))
			}
			out[i] = header[ix]
		}
		header = out
	}
	return w.cw.Write(header)
}

func (w *Writer[T]) render(v any) string {
	if v == nil {
		return w.settings.NilValue
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

func chanToSeq[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for record := range ch {
			if !yield(record) {
				return
			}
		}
	}
}
