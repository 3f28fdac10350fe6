package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/designlens/designlens/internal/contract"
)

// renderReport resolves the configured destination, runs the render function
// against it and, for file destinations, prints a saved notice to stderr so
// piped output stays clean.
func renderReport(cfg *contract.Config, render func(io.Writer) error, wroteMsg string) error {
	dest, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	toFile := dest != os.Stdout
	if toFile {
		defer func() { _ = dest.Close() }()
	}

	if err := render(dest); err != nil {
		return err
	}

	if toFile {
		notice := wroteMsg
		if cfg.UseEmojis {
			notice = "💾 " + notice
		}
		fmt.Fprintf(os.Stderr, "%s to %s\n", notice, cfg.OutputFile)
	}
	return nil
}

// renderJSON encodes one render model with the indentation every JSON
// surface of the CLI shares.
func renderJSON(w io.Writer, model any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(model); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// renderCSV writes the header row followed by the caller's data rows.
func renderCSV(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	return writeRows(csvWriter)
}

// precisionFormatter returns the numeric formatter for the configured
// decimal precision, shared by the score, confidence and feature columns.
func precisionFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}
