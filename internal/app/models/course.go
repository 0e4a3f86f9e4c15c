package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table.
// Instructor is a free-text display name, not a user reference.
type Course struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Operating Systems"`
	Description string    `json:"description" db:"description"`
	Instructor  string    `json:"instructor" db:"instructor" example:"Dr. Ada Lovelace"`
	YearOfStudy *int      `json:"yearOfStudy,omitempty" db:"year_of_study"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
