package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter writes record collections as indented JSON.
type JSONWriter struct {
	output  io.Writer
	encoder *json.Encoder
}

// NewJSONWriter creates a new JSON writer that writes to the specified output.
func NewJSONWriter(w io.Writer) *JSONWriter {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONWriter{
		output:  w,
		encoder: encoder,
	}
}

// Write writes a record collection as one indented JSON document.
func (w *JSONWriter) Write(record interface{}) error {
	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
