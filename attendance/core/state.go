package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"timbrapp.com/timbrapp/attendance/model"
)

type DutyStatus string

const (
	OffDuty DutyStatus = "OFF_DUTY"
	OnDuty  DutyStatus = "ON_DUTY"
)

// Tracker enforces the clock-in/clock-out state machine. Duty status is never
// stored: it is always derived from the entry history, so it cannot drift.
//
// The read-then-write sequence in ClockIn/ClockOut is serialized per employee
// through a keyed mutex, so two concurrent sessions for the same employee
// (two devices) cannot both observe OFF_DUTY and open a second entry.
// Different employees never contend.
type Tracker struct {
	store RecordStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTracker(s RecordStore) *Tracker {
	return &Tracker{
		store: s,
		locks: make(map[string]*sync.Mutex),
	}
}

func (t *Tracker) employeeLock(employeeID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[employeeID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[employeeID] = l
	}
	return l
}

// Status derives the employee's duty state from the most recent entry:
// no entries, or a latest entry with an exit instant, means off duty.
func (t *Tracker) Status(ctx context.Context, employeeID string) (DutyStatus, error) {
	latest, err := t.store.LatestEntry(ctx, employeeID)
	if err != nil {
		return OffDuty, fmt.Errorf("fetch latest entry: %w", err)
	}
	if latest == nil || !latest.Open() {
		return OffDuty, nil
	}
	return OnDuty, nil
}

// IsWorking degrades to false when the lookup fails. The fail-safe is
// deliberate: the kiosk screens poll this and a storage hiccup should show
// "off duty" rather than an error page.
func (t *Tracker) IsWorking(ctx context.Context, employeeID string) bool {
	status, err := t.Status(ctx, employeeID)
	if err != nil {
		return false
	}
	return status == OnDuty
}

// ClockIn opens a new entry for the employee at now.
func (t *Tracker) ClockIn(ctx context.Context, emp *model.Employee, now time.Time) (*model.TimeEntry, error) {
	if !emp.Active {
		return nil, ErrInactiveEmployee
	}

	l := t.employeeLock(emp.ID)
	l.Lock()
	defer l.Unlock()

	open, err := t.store.OpenEntry(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("check open entry: %w", err)
	}
	if open != nil {
		return nil, ErrAlreadyOnDuty
	}

	entry := &model.TimeEntry{
		EmployeeID: emp.ID,
		EntryTime:  now,
	}
	if err := t.store.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return entry, nil
}

// ClockOut closes the open entry at now, computing the worked hours.
func (t *Tracker) ClockOut(ctx context.Context, emp *model.Employee, now time.Time) (*model.TimeEntry, error) {
	l := t.employeeLock(emp.ID)
	l.Lock()
	defer l.Unlock()

	open, err := t.store.OpenEntry(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("check open entry: %w", err)
	}
	if open == nil {
		return nil, ErrNotOnDuty
	}

	hours := HoursWorked(open.EntryTime, now)
	if hours < 0 {
		return nil, fmt.Errorf("%w: exit precedes entry", ErrInvalidEdit)
	}

	updated, err := t.store.UpdateEntry(ctx, open.ID, EntryFields{
		ExitTime:    &now,
		HoursWorked: &hours,
	})
	if err != nil {
		return nil, fmt.Errorf("close entry: %w", err)
	}
	return updated, nil
}

// CreateManualEntry is the administrative path: the entry may be created
// already closed, or open with a past entry instant. The one-open-entry
// invariant still holds.
func (t *Tracker) CreateManualEntry(ctx context.Context, employeeID string, entryTime time.Time, exitTime *time.Time, notes string) (*model.TimeEntry, error) {
	emp, err := t.store.EmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrNotFound
	}

	l := t.employeeLock(employeeID)
	l.Lock()
	defer l.Unlock()

	entry := &model.TimeEntry{
		EmployeeID: employeeID,
		EntryTime:  entryTime,
		Notes:      notes,
	}

	if exitTime != nil {
		hours := HoursWorked(entryTime, *exitTime)
		if hours < 0 {
			return nil, fmt.Errorf("%w: exit precedes entry", ErrInvalidEdit)
		}
		entry.ExitTime = exitTime
		entry.HoursWorked = &hours
	} else {
		open, err := t.store.OpenEntry(ctx, employeeID)
		if err != nil {
			return nil, fmt.Errorf("check open entry: %w", err)
		}
		if open != nil {
			return nil, fmt.Errorf("%w: employee already has an open entry", ErrInvalidEdit)
		}
	}

	if err := t.store.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return entry, nil
}

// EditEntry applies an administrative edit. Hours are recomputed whenever
// either instant changes, and an edit may not leave the employee with two
// open entries or a negative duration.
func (t *Tracker) EditEntry(ctx context.Context, id string, fields EntryFields) (*model.TimeEntry, error) {
	existing, err := t.store.EntryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	l := t.employeeLock(existing.EmployeeID)
	l.Lock()
	defer l.Unlock()

	entryTime := existing.EntryTime
	if fields.EntryTime != nil {
		entryTime = *fields.EntryTime
	}

	exitTime := existing.ExitTime
	if fields.ClearExit {
		exitTime = nil
	} else if fields.ExitTime != nil {
		exitTime = fields.ExitTime
	}

	if exitTime != nil {
		hours := HoursWorked(entryTime, *exitTime)
		if hours < 0 {
			return nil, fmt.Errorf("%w: exit precedes entry", ErrInvalidEdit)
		}
		fields.HoursWorked = &hours
	} else {
		open, err := t.store.OpenEntry(ctx, existing.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("check open entry: %w", err)
		}
		if open != nil && open.ID != existing.ID {
			return nil, fmt.Errorf("%w: employee already has an open entry", ErrInvalidEdit)
		}
		fields.HoursWorked = nil
	}

	updated, err := t.store.UpdateEntry(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteEntry removes an entry regardless of its open/closed state.
func (t *Tracker) DeleteEntry(ctx context.Context, id string) error {
	return t.store.DeleteEntry(ctx, id)
}
