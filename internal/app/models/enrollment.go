package models

// Enrollment defines the enrollment model based on the 'enrollments' table.
// The (student, course) pair is unique; existence implies enrollment.
type Enrollment struct {
	ID         int64  `json:"id" db:"id" example:"1"`
	StudentID  int64  `json:"studentId" db:"student_id" example:"7"`
	CourseID   int64  `json:"courseId" db:"course_id" example:"3"`
	CourseName string `json:"courseName,omitempty"` // Joined from courses, no db column
}
