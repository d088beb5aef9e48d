package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/timeflowhq/timeflow/internal/models"
)

// WritePDF renders entries as a tabular PDF report for the given range.
func WritePDF(path string, entries []models.TimeEntry, start, end time.Time) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("Time entry report", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(10, func() {
			m.Col(12, func() {
				// The end of the half-open range is the day after the
				// last included one.
				dateRange := fmt.Sprintf("%s - %s",
					start.Format("2006-01-02"),
					end.AddDate(0, 0, -1).Format("2006-01-02"))
				m.Text(dateRange, props.Text{
					Top:   3,
					Style: consts.Normal,
					Align: consts.Center,
					Size:  12,
				})
			})
		})
	})

	headers := []string{"Date", "Time", "Type", "Description"}
	rows := [][]string{}
	for _, e := range entries {
		t := e.EffectiveTime()
		rows = append(rows, []string{
			t.Format("2006-01-02"),
			t.Format("15:04"),
			string(e.EntryType),
			e.Description,
		})
	}

	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{3, 2, 3, 4},
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{3, 2, 3, 4},
		},
		Align:                consts.Left,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	return m.OutputFileAndClose(path)
}
