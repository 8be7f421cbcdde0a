package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/attendance/model"
	"timbrapp.com/timbrapp/attendance/store"
	"timbrapp.com/timbrapp/utils"
)

func newTestTracker(t *testing.T) (*core.Tracker, *store.MemoryStore, *model.Employee) {
	t.Helper()
	s := store.NewMemoryStore()
	emp := &model.Employee{Name: "Rossi Mario", Active: true}
	require.NoError(t, s.CreateEmployee(context.Background(), emp))
	return core.NewTracker(s), s, emp
}

func TestClockInClockOut(t *testing.T) {
	ctx := context.Background()
	nine := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Full cycle computes hours", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)

		status, err := tracker.Status(ctx, emp.ID)
		require.NoError(t, err)
		assert.Equal(t, core.OffDuty, status)

		entry, err := tracker.ClockIn(ctx, emp, nine)
		require.NoError(t, err)
		assert.Nil(t, entry.ExitTime)
		assert.True(t, tracker.IsWorking(ctx, emp.ID))

		closed, err := tracker.ClockOut(ctx, emp, nine.Add(2*time.Hour+15*time.Minute))
		require.NoError(t, err)
		require.NotNil(t, closed.HoursWorked)
		assert.Equal(t, 2.25, *closed.HoursWorked)
		assert.False(t, tracker.IsWorking(ctx, emp.ID))
	})

	t.Run("Second clock-in is rejected", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)

		_, err := tracker.ClockIn(ctx, emp, nine)
		require.NoError(t, err)

		_, err = tracker.ClockIn(ctx, emp, nine.Add(time.Minute))
		assert.ErrorIs(t, err, core.ErrAlreadyOnDuty)
	})

	t.Run("Clock-out while off duty is rejected", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)

		_, err := tracker.ClockOut(ctx, emp, nine)
		assert.ErrorIs(t, err, core.ErrNotOnDuty)
	})

	t.Run("Double clock-out is rejected", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)

		_, err := tracker.ClockIn(ctx, emp, nine)
		require.NoError(t, err)
		_, err = tracker.ClockOut(ctx, emp, nine.Add(time.Hour))
		require.NoError(t, err)

		_, err = tracker.ClockOut(ctx, emp, nine.Add(2*time.Hour))
		assert.ErrorIs(t, err, core.ErrNotOnDuty)
	})

	t.Run("Inactive employee cannot clock in", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)
		emp.Active = false

		_, err := tracker.ClockIn(ctx, emp, nine)
		assert.ErrorIs(t, err, core.ErrInactiveEmployee)
	})

	t.Run("Clock-in after clock-out opens a fresh entry", func(t *testing.T) {
		tracker, s, emp := newTestTracker(t)

		_, err := tracker.ClockIn(ctx, emp, nine)
		require.NoError(t, err)
		_, err = tracker.ClockOut(ctx, emp, nine.Add(4*time.Hour))
		require.NoError(t, err)
		second, err := tracker.ClockIn(ctx, emp, nine.Add(5*time.Hour))
		require.NoError(t, err)

		open, err := s.OpenEntry(ctx, emp.ID)
		require.NoError(t, err)
		require.NotNil(t, open)
		assert.Equal(t, second.ID, open.ID)
	})
}

func TestCreateManualEntry(t *testing.T) {
	ctx := context.Background()
	nine := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Closed entry carries computed hours", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)

		entry, err := tracker.CreateManualEntry(ctx, emp.ID, nine, utils.Ptr(nine.Add(3*time.Hour)), "recupero badge")
		require.NoError(t, err)
		require.NotNil(t, entry.HoursWorked)
		assert.Equal(t, 3.0, *entry.HoursWorked)
		assert.Equal(t, "recupero badge", entry.Notes)
	})

	t.Run("Open entry rejected while another is open", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)

		_, err := tracker.ClockIn(ctx, emp, nine)
		require.NoError(t, err)

		_, err = tracker.CreateManualEntry(ctx, emp.ID, nine.Add(time.Hour), nil, "")
		assert.ErrorIs(t, err, core.ErrInvalidEdit)
	})

	t.Run("Exit before entry rejected", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)

		_, err := tracker.CreateManualEntry(ctx, emp.ID, nine, utils.Ptr(nine.Add(-time.Hour)), "")
		assert.ErrorIs(t, err, core.ErrInvalidEdit)
	})

	t.Run("Unknown employee rejected", func(t *testing.T) {
		tracker, _, _ := newTestTracker(t)

		_, err := tracker.CreateManualEntry(ctx, "missing", nine, nil, "")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestEditEntry(t *testing.T) {
	ctx := context.Background()
	nine := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Moving the exit recomputes hours", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)
		entry, err := tracker.CreateManualEntry(ctx, emp.ID, nine, utils.Ptr(nine.Add(2*time.Hour)), "")
		require.NoError(t, err)

		updated, err := tracker.EditEntry(ctx, entry.ID, core.EntryFields{
			ExitTime: utils.Ptr(nine.Add(6*time.Hour + 30*time.Minute)),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.HoursWorked)
		assert.Equal(t, 6.5, *updated.HoursWorked)
	})

	t.Run("Clearing the exit reopens the entry", func(t *testing.T) {
		tracker, s, emp := newTestTracker(t)
		entry, err := tracker.CreateManualEntry(ctx, emp.ID, nine, utils.Ptr(nine.Add(2*time.Hour)), "")
		require.NoError(t, err)

		updated, err := tracker.EditEntry(ctx, entry.ID, core.EntryFields{ClearExit: true})
		require.NoError(t, err)
		assert.Nil(t, updated.ExitTime)
		assert.Nil(t, updated.HoursWorked)

		open, err := s.OpenEntry(ctx, emp.ID)
		require.NoError(t, err)
		require.NotNil(t, open)
		assert.Equal(t, entry.ID, open.ID)
	})

	t.Run("Reopening while another entry is open is rejected", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)
		closed, err := tracker.CreateManualEntry(ctx, emp.ID, nine, utils.Ptr(nine.Add(2*time.Hour)), "")
		require.NoError(t, err)
		_, err = tracker.ClockIn(ctx, emp, nine.Add(3*time.Hour))
		require.NoError(t, err)

		_, err = tracker.EditEntry(ctx, closed.ID, core.EntryFields{ClearExit: true})
		assert.ErrorIs(t, err, core.ErrInvalidEdit)
	})

	t.Run("Edit that inverts the interval is rejected", func(t *testing.T) {
		tracker, _, emp := newTestTracker(t)
		entry, err := tracker.CreateManualEntry(ctx, emp.ID, nine, utils.Ptr(nine.Add(2*time.Hour)), "")
		require.NoError(t, err)

		_, err = tracker.EditEntry(ctx, entry.ID, core.EntryFields{
			EntryTime: utils.Ptr(nine.Add(5 * time.Hour)),
		})
		assert.ErrorIs(t, err, core.ErrInvalidEdit)
	})

	t.Run("Unknown entry rejected", func(t *testing.T) {
		tracker, _, _ := newTestTracker(t)

		_, err := tracker.EditEntry(ctx, "missing", core.EntryFields{ClearExit: true})
		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}
