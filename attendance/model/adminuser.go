package model

import "time"

type AdminUser struct {
	ID           string    `json:"id" gorm:"primaryKey;type:char(36)"`
	Username     string    `json:"username" gorm:"type:varchar(60);not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:varchar(120);not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
