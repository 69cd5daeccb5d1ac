package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// WriteJSON encodes r as indented JSON.
func WriteJSON(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report for suite %q: %w", r.Meta.Suite, err)
	}
	return nil
}

// Publish prints the table to stdout and, when jsonPath is set, also saves
// the JSON report there. The table is printed even if the file cannot be
// written.
func Publish(r *Report, stdout io.Writer, jsonPath string) error {
	WriteTable(r, stdout)
	if jsonPath == "" {
		return nil
	}

	f, err := os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := WriteJSON(r, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}

	slog.Info("Report written", "path", jsonPath, "cases", r.Summary.Total)
	return nil
}
