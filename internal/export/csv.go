package export

import (
	"encoding/csv"
	"io"

	"github.com/timeflowhq/timeflow/internal/models"
)

// WriteCSV writes entries as CSV: one row per event, effective times
// in local wall-clock format.
func WriteCSV(w io.Writer, entries []models.TimeEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "time", "type", "description"}); err != nil {
		return err
	}
	for _, e := range entries {
		t := e.EffectiveTime()
		row := []string{
			e.ID,
			t.Format("2006-01-02"),
			t.Format("15:04:05"),
			string(e.EntryType),
			e.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
