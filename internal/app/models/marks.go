package models

import (
	"time"
)

// Marks grading constants. The pass threshold is 35% of the 75-point
// maximum and is intentionally not configurable.
const (
	SubScoreMax   = 25
	TotalMax      = 3 * SubScoreMax
	PassThreshold = 26.25

	StatusPass = "Pass"
	StatusFail = "Fail"
)

// InternalMarks defines the marks model based on the 'internal_marks' table.
// Total and status are derived at read time and never stored.
type InternalMarks struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	StudentID  int64     `json:"studentId" db:"student_id" example:"7"`
	CourseID   int64     `json:"courseId" db:"course_id" example:"3"`
	Internal1  int       `json:"internal1" db:"internal1" example:"20"`
	Internal2  int       `json:"internal2" db:"internal2" example:"22"`
	Internal3  int       `json:"internal3" db:"internal3" example:"19"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
	CourseName string    `json:"courseName,omitempty"` // Joined from courses, no db column
}

// Total returns the sum of the three sub-scores (0-75).
func (m *InternalMarks) Total() int {
	return m.Internal1 + m.Internal2 + m.Internal3
}

// Status returns "Pass" when the total meets the pass threshold,
// otherwise "Fail".
func (m *InternalMarks) Status() string {
	return GradeStatus(m.Total())
}

// GradeStatus maps a total to its pass/fail label. Every place that
// surfaces marks (student view, distribution report, summary prompt)
// goes through this one function.
func GradeStatus(total int) string {
	if float64(total) >= PassThreshold {
		return StatusPass
	}
	return StatusFail
}

// ValidSubScore reports whether a single internal score is in range.
func ValidSubScore(score int) bool {
	return score >= 0 && score <= SubScoreMax
}
