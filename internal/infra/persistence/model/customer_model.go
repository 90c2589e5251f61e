package model

import "time"

// CustomerModel mirrors the 'users' table read for subscriber profiles.
type CustomerModel struct {
	ID          int64  `gorm:"primaryKey"`
	UserLogin   string `gorm:"type:varchar(60);not null;uniqueIndex"`
	DisplayName string `gorm:"type:varchar(250);not null"`
	UserEmail   string `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "users"
}
