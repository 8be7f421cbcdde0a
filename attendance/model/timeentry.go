package model

import "time"

// TimeEntry is one clock-in for an employee. ExitTime is nil while the
// employee is still on duty; HoursWorked is set only once the entry closes.
type TimeEntry struct {
	ID          string     `json:"id" gorm:"primaryKey;type:char(36)"`
	EmployeeID  string     `json:"employeeId" gorm:"column:employee_id;type:char(36);not null;index:idx_employee_entry,priority:1"`
	EntryTime   time.Time  `json:"entryTime" gorm:"column:entry_time;type:datetime;not null;index:idx_employee_entry,priority:2"`
	ExitTime    *time.Time `json:"exitTime" gorm:"column:exit_time;type:datetime"`
	HoursWorked *float64   `json:"hoursWorked" gorm:"column:hours_worked;type:decimal(10,2)"`
	Notes       string     `json:"notes" gorm:"type:varchar(500)"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`

	Employee Employee `json:"-" gorm:"foreignKey:EmployeeID;references:ID"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

// Open reports whether the entry is still missing its clock-out.
func (e *TimeEntry) Open() bool {
	return e.ExitTime == nil
}
