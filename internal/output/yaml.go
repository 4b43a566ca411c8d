package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrWriterClosed is returned by Write after Close.
var ErrWriterClosed = errors.New("writer is closed")

// YAMLWriter streams one YAML document per report. Documents after the
// first are preceded by "---", so a run over several inputs reads back
// with a yaml.Decoder. Multi-line outlines are emitted as literal blocks.
type YAMLWriter struct {
	w         *bufio.Writer
	enc       *yaml.Encoder
	documents int
	closed    bool
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	bw := bufio.NewWriter(w)
	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	return &YAMLWriter{w: bw, enc: enc}
}

// Write encodes data as the next document and flushes it.
func (w *YAMLWriter) Write(data any) error {
	if w.closed {
		return ErrWriterClosed
	}
	if err := w.enc.Encode(data); err != nil {
		return fmt.Errorf("encoding yaml document %d: %w", w.documents+1, err)
	}
	w.documents++
	return w.w.Flush()
}

// WriteAll writes each item as its own document.
func (w *YAMLWriter) WriteAll(data []any) error {
	for _, item := range data {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *YAMLWriter) Flush() error {
	return w.w.Flush()
}

// Close ends the stream. Closing a writer that wrote nothing leaves the
// output empty.
func (w *YAMLWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.documents > 0 {
		if err := w.enc.Close(); err != nil {
			return err
		}
	}
	return w.w.Flush()
}
