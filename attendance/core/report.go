package core

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"timbrapp.com/timbrapp/attendance/model"
	"timbrapp.com/timbrapp/utils"
)

// UnknownEmployeeName labels entries whose employee join came back empty
// (e.g. the employee row was deleted after the fact).
const UnknownEmployeeName = "Sconosciuto"

// EmployeeReport is the per-employee slice of a report: total worked hours
// over the queried range plus every contributing entry. Open entries are
// listed but contribute nothing to the total.
type EmployeeReport struct {
	EmployeeID   string            `json:"employeeId"`
	EmployeeName string            `json:"employeeName"`
	TotalHours   float64           `json:"totalHours"`
	Entries      []model.TimeEntry `json:"entries"`
}

// BuildReport folds a flat, date-bounded entry set into per-employee
// summaries ordered by display name (Italian collation, ascending). Date
// filtering is the store's job; everything handed in is included.
func BuildReport(entries []model.TimeEntry) []EmployeeReport {
	groups := utils.GroupBy(entries, func(e model.TimeEntry) string { return e.EmployeeID })

	reports := make([]EmployeeReport, 0, len(groups))
	for employeeID, group := range groups {
		r := EmployeeReport{
			EmployeeID:   employeeID,
			EmployeeName: UnknownEmployeeName,
			Entries:      group,
		}
		for _, e := range group {
			if e.Employee.Name != "" {
				r.EmployeeName = e.Employee.Name
			}
			if e.HoursWorked != nil {
				r.TotalHours += *e.HoursWorked
			}
		}
		reports = append(reports, r)
	}

	coll := collate.New(language.Italian)
	sort.Slice(reports, func(i, j int) bool {
		if c := coll.CompareString(reports[i].EmployeeName, reports[j].EmployeeName); c != 0 {
			return c < 0
		}
		return reports[i].EmployeeID < reports[j].EmployeeID
	})
	return reports
}
