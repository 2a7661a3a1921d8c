package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mdtlens/mdtlens/internal/aggregator"
	"github.com/rs/zerolog/log"
)

// WriteCSV writes the report to path. Callers only invoke this after the
// full report is assembled, so a half-built file is never left behind by a
// mid-run type failure.
func WriteCSV(path string, rows []aggregator.FieldStats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Headers); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, r := range rows {
		if err := w.Write(cells(r)); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	log.Info().Str("file", path).Int("rows", len(rows)).Msg("CSV report written")
	return nil
}
