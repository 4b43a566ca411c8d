package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Texter is implemented by values with a plain-text rendition.
type Texter interface {
	Text() string
}

// TextWriter writes the plain-text rendition of each item, one per line.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{
		w: bufio.NewWriter(w),
	}
}

// Write writes a single item. Strings and Texters are written as-is;
// anything else is formatted with %v.
func (w *TextWriter) Write(data any) error {
	var text string
	switch v := data.(type) {
	case string:
		text = v
	case Texter:
		text = v.Text()
	default:
		text = fmt.Sprintf("%v", v)
	}

	if _, err := w.w.WriteString(text); err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll writes multiple items.
func (w *TextWriter) WriteAll(data []any) error {
	for _, item := range data {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *TextWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *TextWriter) Close() error {
	return w.Flush()
}
