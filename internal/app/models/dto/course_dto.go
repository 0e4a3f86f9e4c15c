package dto

// CourseRequest represents the payload for creating or updating a course
type CourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Instructor  string `json:"instructor" binding:"required"`
	YearOfStudy *int   `json:"yearOfStudy,omitempty"`
}

// ScheduleRequest represents the payload for creating or updating a
// schedule entry. Day and times are free text.
type ScheduleRequest struct {
	CourseID  int64   `json:"courseId" binding:"required,min=1"`
	DayOfWeek string  `json:"dayOfWeek" binding:"required"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Location  *string `json:"location,omitempty"`
}

// EnrollmentRequest represents the payload for enrolling a student
type EnrollmentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,min=1"`
	CourseID  int64 `json:"courseId" binding:"required,min=1"`
}
