package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// EncodeJSON writes v as pretty-printed JSON: 4-space indentation, non-ASCII
// characters left unescaped.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

// WriteJSON writes v as pretty-printed UTF-8 JSON to the file at path.
func WriteJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := EncodeJSON(f, v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
