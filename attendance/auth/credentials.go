package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/attendance/model"
)

// HashPassword produces a bcrypt hash for newly set passwords.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword matches a claimed password against a stored hash. New
// records carry bcrypt hashes; rows migrated from the old tablet client
// still carry hex-encoded SHA-256, which is compared in constant time.
func VerifyPassword(password, storedHash string) bool {
	if strings.HasPrefix(storedHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
	}

	sum := sha256.Sum256([]byte(password))
	claimed := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(claimed), []byte(strings.ToLower(storedHash))) == 1
}

// Service authenticates employees and admins against the record store.
type Service struct {
	store core.RecordStore
}

func NewService(s core.RecordStore) *Service {
	return &Service{store: s}
}

// AuthenticateEmployee checks the employee exists, is active, and presented
// the right password. The returned record never includes the hash downstream;
// handlers serialize the model with the hash field excluded.
func (s *Service) AuthenticateEmployee(ctx context.Context, employeeID, password string) (*model.Employee, error) {
	emp, err := s.store.EmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, core.ErrAuthFailure
	}
	if !emp.Active {
		return nil, core.ErrInactiveEmployee
	}
	if !VerifyPassword(password, emp.PasswordHash) {
		return nil, core.ErrAuthFailure
	}
	return emp, nil
}

func (s *Service) AuthenticateAdmin(ctx context.Context, username, password string) (*model.AdminUser, error) {
	admin, err := s.store.AdminByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, core.ErrAuthFailure
	}
	if !VerifyPassword(password, admin.PasswordHash) {
		return nil, core.ErrAuthFailure
	}
	return admin, nil
}

// ChangeAdminPassword rehashes and stores a new admin password.
func (s *Service) ChangeAdminPassword(ctx context.Context, adminID, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.store.UpdateAdminPassword(ctx, adminID, hash)
}
