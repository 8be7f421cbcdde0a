package core

import (
	"context"
	"time"

	"timbrapp.com/timbrapp/attendance/model"
)

// EntryFields carries a partial update for a time entry. Nil pointers leave
// the column untouched; ClearExit explicitly reopens the entry (exit and
// hours set back to NULL), which is distinct from "no change".
type EntryFields struct {
	EntryTime   *time.Time
	ExitTime    *time.Time
	ClearExit   bool
	HoursWorked *float64
	Notes       *string
}

// RecordStore owns all persisted attendance data. Core components read and
// request mutations through it and never cache state across calls. Getters
// return nil, nil when the record does not exist; mutations on unknown ids
// fail with ErrNotFound.
type RecordStore interface {
	// Time entries.
	LatestEntry(ctx context.Context, employeeID string) (*model.TimeEntry, error)
	// OpenEntry returns the entry with a null exit instant for the
	// employee, or nil when there is none.
	OpenEntry(ctx context.Context, employeeID string) (*model.TimeEntry, error)
	EntryByID(ctx context.Context, id string) (*model.TimeEntry, error)
	CreateEntry(ctx context.Context, entry *model.TimeEntry) error
	UpdateEntry(ctx context.Context, id string, fields EntryFields) (*model.TimeEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	// EntriesInRange returns entries whose entry instant falls in
	// [start, endExclusive), newest first, with Employee populated.
	// An empty employeeID means all employees.
	EntriesInRange(ctx context.Context, start, endExclusive time.Time, employeeID string) ([]model.TimeEntry, error)

	// Employees.
	Employees(ctx context.Context, activeOnly bool) ([]model.Employee, error)
	EmployeeByID(ctx context.Context, id string) (*model.Employee, error)
	CreateEmployee(ctx context.Context, emp *model.Employee) error
	UpdateEmployee(ctx context.Context, emp *model.Employee) error
	DeleteEmployee(ctx context.Context, id string) error

	// Admin users.
	AdminByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	UpdateAdminPassword(ctx context.Context, id, passwordHash string) error
}
