package models

import (
	"time"
)

// RoleType defines the user role
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleStaff   RoleType = "staff"
	RoleAdmin   RoleType = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`                      // Unique identifier for the user
	Name        string    `json:"name" db:"name" example:"Jane Doe"`           // Display name
	Email       string    `json:"email" db:"email" example:"jane@college.edu"` // Unique email address
	Password    string    `json:"-" db:"password"`                             // Hashed password (excluded from JSON)
	RoleType    RoleType  `json:"role" db:"role" example:"student"`            // Role: student, staff or admin
	YearOfStudy *int      `json:"yearOfStudy,omitempty" db:"year_of_study"`    // Year of study (nullable)
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`                   // Timestamp when the user was created
}
