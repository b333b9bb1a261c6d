// Package export serializes record sets as tab-separated tables for the
// downstream evaluation harness.
package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hollis-lab/perturb/internal/model"
)

const defaultBufSize = 64 * 1024 // 64KB

// Header columns expected by the evaluation harness. The canonical
// {id, label} names are renamed to {textid, target} only here, at the
// export boundary.
var header = []string{"textid", "text", "target", "condition"}

// Option configures a Writer.
type Option func(*Writer)

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(w *Writer) { w.bufSize = bytes }
}

// Writer writes records as TSV rows with a fixed condition tag per run.
type Writer struct {
	cw        *csv.Writer
	bw        *bufio.Writer
	f         *os.File // nil when writing to stdout
	condition string
	bufSize   int
	wroteHead bool
}

// New creates a Writer that writes TSV to the given path, creating parent
// directories as needed.
func New(path, condition string, opts ...Option) (*Writer, error) {
	w := &Writer{condition: condition, bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(w)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("export: mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("export: create %s: %w", path, err)
	}
	w.f = f
	w.init(f)
	return w, nil
}

// NewStdout creates a Writer that writes TSV to stdout, for piping.
func NewStdout(condition string) *Writer {
	w := &Writer{condition: condition, bufSize: defaultBufSize}
	w.init(os.Stdout)
	return w
}

func (w *Writer) init(dst io.Writer) {
	w.bw = bufio.NewWriterSize(dst, w.bufSize)
	w.cw = csv.NewWriter(w.bw)
	w.cw.Comma = '\t'
}

// Write appends one record as a TSV row, emitting the header first if this
// is the first row.
func (w *Writer) Write(rec model.Record) error {
	if !w.wroteHead {
		if err := w.cw.Write(header); err != nil {
			return fmt.Errorf("export: write header: %w", err)
		}
		w.wroteHead = true
	}
	row := []string{strconv.Itoa(rec.ID), rec.Text, rec.Label, w.condition}
	if err := w.cw.Write(row); err != nil {
		return fmt.Errorf("export: write record %d: %w", rec.ID, err)
	}
	return nil
}

// WriteAll writes every record in the set.
func (w *Writer) WriteAll(records model.RecordSet) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffers and closes the underlying file, if any.
func (w *Writer) Close() error {
	w.cw.Flush()
	if err := w.cw.Error(); err != nil {
		if w.f != nil {
			w.f.Close()
		}
		return fmt.Errorf("export: flush: %w", err)
	}
	if err := w.bw.Flush(); err != nil {
		if w.f != nil {
			w.f.Close()
		}
		return fmt.Errorf("export: flush: %w", err)
	}
	if w.f == nil {
		return nil
	}
	return w.f.Close()
}
