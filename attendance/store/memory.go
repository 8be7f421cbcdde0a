package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/attendance/model"
)

// MemoryStore keeps everything in maps behind a RWMutex. It backs the unit
// tests and the local development mode where no MySQL is around.
type MemoryStore struct {
	mu        sync.RWMutex
	employees map[string]model.Employee
	entries   map[string]model.TimeEntry
	admins    map[string]model.AdminUser
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		employees: make(map[string]model.Employee),
		entries:   make(map[string]model.TimeEntry),
		admins:    make(map[string]model.AdminUser),
	}
}

func (s *MemoryStore) LatestEntry(ctx context.Context, employeeID string) (*model.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *model.TimeEntry
	for id := range s.entries {
		e := s.entries[id]
		if e.EmployeeID != employeeID {
			continue
		}
		if latest == nil || e.EntryTime.After(latest.EntryTime) {
			copied := e
			latest = &copied
		}
	}
	return latest, nil
}

func (s *MemoryStore) OpenEntry(ctx context.Context, employeeID string) (*model.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := range s.entries {
		e := s.entries[id]
		if e.EmployeeID == employeeID && e.ExitTime == nil {
			return &e, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) EntryByID(ctx context.Context, id string) (*model.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *MemoryStore) CreateEntry(ctx context.Context, entry *model.TimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	s.entries[entry.ID] = *entry
	return nil
}

func (s *MemoryStore) UpdateEntry(ctx context.Context, id string, fields core.EntryFields) (*model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, core.ErrNotFound
	}

	if fields.EntryTime != nil {
		e.EntryTime = *fields.EntryTime
	}
	if fields.ClearExit {
		e.ExitTime = nil
		e.HoursWorked = nil
	} else if fields.ExitTime != nil {
		exit := *fields.ExitTime
		e.ExitTime = &exit
	}
	if fields.HoursWorked != nil {
		hours := *fields.HoursWorked
		e.HoursWorked = &hours
	}
	if fields.Notes != nil {
		e.Notes = *fields.Notes
	}
	e.UpdatedAt = time.Now()

	s.entries[id] = e
	return &e, nil
}

func (s *MemoryStore) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) EntriesInRange(ctx context.Context, start, endExclusive time.Time, employeeID string) ([]model.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []model.TimeEntry
	for id := range s.entries {
		e := s.entries[id]
		if employeeID != "" && e.EmployeeID != employeeID {
			continue
		}
		if e.EntryTime.Before(start) || !e.EntryTime.Before(endExclusive) {
			continue
		}
		if emp, ok := s.employees[e.EmployeeID]; ok {
			e.Employee = emp
		}
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].EntryTime.After(result[j].EntryTime)
	})
	return result, nil
}

func (s *MemoryStore) Employees(ctx context.Context, activeOnly bool) ([]model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []model.Employee
	for id := range s.employees {
		emp := s.employees[id]
		if activeOnly && !emp.Active {
			continue
		}
		result = append(result, emp)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (s *MemoryStore) EmployeeByID(ctx context.Context, id string) (*model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emp, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	return &emp, nil
}

func (s *MemoryStore) CreateEmployee(ctx context.Context, emp *model.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	s.employees[emp.ID] = *emp
	return nil
}

func (s *MemoryStore) UpdateEmployee(ctx context.Context, emp *model.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.employees[emp.ID]
	if !ok {
		return core.ErrNotFound
	}
	existing.Name = emp.Name
	existing.Active = emp.Active
	existing.PasswordHash = emp.PasswordHash
	existing.UpdatedAt = time.Now()
	s.employees[emp.ID] = existing
	return nil
}

func (s *MemoryStore) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.employees, id)
	return nil
}

func (s *MemoryStore) AdminByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := range s.admins {
		a := s.admins[id]
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, nil
}

// CreateAdmin is used by seeding and tests; it is not part of RecordStore.
func (s *MemoryStore) CreateAdmin(admin model.AdminUser) model.AdminUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	s.admins[admin.ID] = admin
	return admin
}

func (s *MemoryStore) UpdateAdminPassword(ctx context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.admins[id]
	if !ok {
		return core.ErrNotFound
	}
	admin.PasswordHash = passwordHash
	s.admins[id] = admin
	return nil
}
