package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/attendance/model"
)

// GormStore is the MySQL-backed RecordStore. The one-open-entry invariant is
// already serialized per employee by the Tracker; deployments that want a
// second line of defence can add a unique functional index on
// (employee_id, (exit_time IS NULL)) in MySQL 8.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) LatestEntry(ctx context.Context, employeeID string) (*model.TimeEntry, error) {
	var entries []model.TimeEntry
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("entry_time DESC").
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("latest entry: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (s *GormStore) OpenEntry(ctx context.Context, employeeID string) (*model.TimeEntry, error) {
	var entries []model.TimeEntry
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND exit_time IS NULL", employeeID).
		Order("entry_time DESC").
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("open entry: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func (s *GormStore) EntryByID(ctx context.Context, id string) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("entry by id: %w", err)
	}
	return &entry, nil
}

func (s *GormStore) CreateEntry(ctx context.Context, entry *model.TimeEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateEntry(ctx context.Context, id string, fields core.EntryFields) (*model.TimeEntry, error) {
	updates := map[string]interface{}{}
	if fields.EntryTime != nil {
		updates["entry_time"] = *fields.EntryTime
	}
	if fields.ClearExit {
		updates["exit_time"] = nil
		updates["hours_worked"] = nil
	} else if fields.ExitTime != nil {
		updates["exit_time"] = *fields.ExitTime
	}
	if fields.HoursWorked != nil {
		updates["hours_worked"] = *fields.HoursWorked
	}
	if fields.Notes != nil {
		updates["notes"] = *fields.Notes
	}

	if len(updates) > 0 {
		result := s.db.WithContext(ctx).
			Model(&model.TimeEntry{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("update entry: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			s.db.WithContext(ctx).Model(&model.TimeEntry{}).Where("id = ?", id).Count(&count)
			if count == 0 {
				return nil, core.ErrNotFound
			}
		}
	}

	updated, err := s.EntryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, core.ErrNotFound
	}
	return updated, nil
}

func (s *GormStore) DeleteEntry(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TimeEntry{})
	if result.Error != nil {
		return fmt.Errorf("delete entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *GormStore) EntriesInRange(ctx context.Context, start, endExclusive time.Time, employeeID string) ([]model.TimeEntry, error) {
	query := s.db.WithContext(ctx).
		Preload("Employee").
		Where("entry_time >= ? AND entry_time < ?", start, endExclusive).
		Order("entry_time DESC")
	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}

	var entries []model.TimeEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("entries in range: %w", err)
	}
	return entries, nil
}

func (s *GormStore) Employees(ctx context.Context, activeOnly bool) ([]model.Employee, error) {
	query := s.db.WithContext(ctx).Order("name")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var employees []model.Employee
	if err := query.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s *GormStore) EmployeeByID(ctx context.Context, id string) (*model.Employee, error) {
	var emp model.Employee
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("employee by id: %w", err)
	}
	return &emp, nil
}

func (s *GormStore) CreateEmployee(ctx context.Context, emp *model.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(emp).Error; err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateEmployee(ctx context.Context, emp *model.Employee) error {
	result := s.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id = ?", emp.ID).
		Updates(map[string]interface{}{
			"name":          emp.Name,
			"active":        emp.Active,
			"password_hash": emp.PasswordHash,
		})
	if result.Error != nil {
		return fmt.Errorf("update employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		s.db.WithContext(ctx).Model(&model.Employee{}).Where("id = ?", emp.ID).Count(&count)
		if count == 0 {
			return core.ErrNotFound
		}
	}
	return nil
}

func (s *GormStore) DeleteEmployee(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Employee{})
	if result.Error != nil {
		return fmt.Errorf("delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *GormStore) AdminByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("admin by username: %w", err)
	}
	return &admin, nil
}

func (s *GormStore) UpdateAdminPassword(ctx context.Context, id, passwordHash string) error {
	result := s.db.WithContext(ctx).
		Model(&model.AdminUser{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("update admin password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return core.ErrNotFound
	}
	return nil
}
