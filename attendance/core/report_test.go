package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"timbrapp.com/timbrapp/attendance/model"
	"timbrapp.com/timbrapp/utils"
)

func closedEntry(employeeID, name string, entry time.Time, hours float64) model.TimeEntry {
	exit := entry.Add(time.Duration(hours * float64(time.Hour)))
	return model.TimeEntry{
		EmployeeID:  employeeID,
		EntryTime:   entry,
		ExitTime:    &exit,
		HoursWorked: &hours,
		Employee:    model.Employee{ID: employeeID, Name: name},
	}
}

func TestBuildReport(t *testing.T) {
	day := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

	t.Run("Sums hours per employee", func(t *testing.T) {
		entries := []model.TimeEntry{
			closedEntry("e1", "Bianchi Laura", day, 4),
			closedEntry("e1", "Bianchi Laura", day.Add(5*time.Hour), 3.5),
			closedEntry("e2", "Amato Piero", day, 8),
		}

		reports := BuildReport(entries)

		assert.Len(t, reports, 2)
		assert.Equal(t, "Amato Piero", reports[0].EmployeeName)
		assert.Equal(t, 8.0, reports[0].TotalHours)
		assert.Equal(t, "Bianchi Laura", reports[1].EmployeeName)
		assert.Equal(t, 7.5, reports[1].TotalHours)
		assert.Len(t, reports[1].Entries, 2)
	})

	t.Run("Open entry is listed but contributes nothing", func(t *testing.T) {
		open := model.TimeEntry{
			EmployeeID: "e1",
			EntryTime:  day,
			Employee:   model.Employee{ID: "e1", Name: "Bianchi Laura"},
		}
		entries := []model.TimeEntry{
			closedEntry("e1", "Bianchi Laura", day.Add(-48*time.Hour), 4),
			closedEntry("e1", "Bianchi Laura", day.Add(-24*time.Hour), 3.5),
			open,
		}

		reports := BuildReport(entries)

		assert.Len(t, reports, 1)
		assert.Equal(t, 7.5, reports[0].TotalHours)
		assert.Len(t, reports[0].Entries, 3)
	})

	t.Run("Deleted employee falls back to the unknown label", func(t *testing.T) {
		e := closedEntry("gone", "", day, 2)
		e.Employee = model.Employee{}

		reports := BuildReport([]model.TimeEntry{e})

		assert.Len(t, reports, 1)
		assert.Equal(t, UnknownEmployeeName, reports[0].EmployeeName)
		assert.Equal(t, 2.0, reports[0].TotalHours)
	})

	t.Run("Orders names with Italian collation", func(t *testing.T) {
		entries := []model.TimeEntry{
			closedEntry("e1", "Zanetti Carlo", day, 1),
			closedEntry("e2", "Álvaro Neri", day, 1),
			closedEntry("e3", "Amato Piero", day, 1),
		}

		reports := BuildReport(entries)

		names := utils.Map(reports, func(r EmployeeReport) string { return r.EmployeeName })
		assert.Equal(t, []string{"Álvaro Neri", "Amato Piero", "Zanetti Carlo"}, names)
	})

	t.Run("Empty input yields empty report", func(t *testing.T) {
		assert.Empty(t, BuildReport(nil))
	})
}
