package models

import (
	"time"
)

// User is a dashboard member.
type User struct {
	Record
	Email          string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Phone          string     `gorm:"size:32;not null" json:"phone"`
	Plan           Plan       `gorm:"size:16;not null;default:basic" json:"plan"`
	EnrollmentDate *time.Time `json:"enrollmentDate"`
	IsActive       bool       `gorm:"not null;default:true" json:"isActive"`
}

// UserOTPVerification keeps track of one-time codes mailed to users.
// Only a bcrypt hash of the code is stored.
type UserOTPVerification struct {
	Record
	Email      string     `gorm:"size:255;index;not null" json:"email"`
	CodeHash   string     `gorm:"not null" json:"-"`
	ExpiresAt  time.Time  `gorm:"index;not null" json:"expiresAt"`
	Consumed   bool       `gorm:"index;not null;default:false" json:"consumed"`
	ConsumedAt *time.Time `json:"consumedAt"`
}

// TableName keeps the table name readable.
func (UserOTPVerification) TableName() string {
	return "user_otp_verifications"
}
