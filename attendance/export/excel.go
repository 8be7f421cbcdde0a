package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"timbrapp.com/timbrapp/attendance/core"
)

const (
	summarySheet = "Riepilogo"
	detailSheet  = "Dettaglio"

	dateFormat = "02/01/2006"
	timeFormat = "15:04"
)

// HoursMinutes renders decimal hours as H:MM (6.5 -> "6:30", 8.75 -> "8:45").
func HoursMinutes(hours float64) string {
	h := int(hours)
	m := int((hours-float64(h))*60 + 0.5)
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%d:%02d", h, m)
}

// ReportWorkbook builds the XLSX artifact for a report: a summary sheet with
// one row per employee and a detail sheet with one row per entry. Times are
// rendered in loc.
func ReportWorkbook(reports []core.EmployeeReport, start, end time.Time, loc *time.Location) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(detailSheet); err != nil {
		return nil, err
	}

	if err := writeSummary(f, reports, start, end); err != nil {
		return nil, err
	}
	if err := writeDetail(f, reports, start, end, loc); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func writeSummary(f *excelize.File, reports []core.EmployeeReport, start, end time.Time) error {
	rows := [][]interface{}{
		{"REPORT ORE LAVORATE"},
		{fmt.Sprintf("Periodo: %s - %s", start.Format(dateFormat), end.Format(dateFormat))},
		{},
		{"Dipendente", "Totale Ore", "Numero Timbrature"},
	}

	var totalHours float64
	totalEntries := 0
	for _, r := range reports {
		rows = append(rows, []interface{}{r.EmployeeName, HoursMinutes(r.TotalHours), len(r.Entries)})
		totalHours += r.TotalHours
		totalEntries += len(r.Entries)
	}
	rows = append(rows, []interface{}{}, []interface{}{"TOTALE", HoursMinutes(totalHours), totalEntries})

	if err := writeRows(f, summarySheet, rows); err != nil {
		return err
	}

	widths := []float64{30, 15, 20}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(summarySheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func writeDetail(f *excelize.File, reports []core.EmployeeReport, start, end time.Time, loc *time.Location) error {
	rows := [][]interface{}{
		{"DETTAGLIO TIMBRATURE"},
		{fmt.Sprintf("Periodo: %s - %s", start.Format(dateFormat), end.Format(dateFormat))},
		{},
		{"Dipendente", "Data", "Entrata", "Uscita", "Ore Lavorate", "Note"},
	}

	for _, r := range reports {
		for _, e := range r.Entries {
			exit := ""
			hours := ""
			if e.ExitTime != nil {
				exit = e.ExitTime.In(loc).Format(timeFormat)
			}
			if e.HoursWorked != nil {
				hours = HoursMinutes(*e.HoursWorked)
			}
			rows = append(rows, []interface{}{
				r.EmployeeName,
				e.EntryTime.In(loc).Format(dateFormat),
				e.EntryTime.In(loc).Format(timeFormat),
				exit,
				hours,
				e.Notes,
			})
		}
	}

	if err := writeRows(f, detailSheet, rows); err != nil {
		return err
	}

	widths := []float64{30, 12, 10, 10, 14, 40}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(detailSheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
