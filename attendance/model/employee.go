package model

import "time"

type Employee struct {
	ID           string    `json:"id" gorm:"primaryKey;type:char(36)"`
	Name         string    `json:"name" gorm:"type:varchar(120);not null;index"`
	Active       bool      `json:"active" gorm:"not null;default:true"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:varchar(120);not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (Employee) TableName() string {
	return "employees"
}
