package models

// Schedule defines a schedule entry based on the 'schedules' table.
// Day and time fields are stored as free text, matching the portal's
// display-oriented usage.
type Schedule struct {
	ID         int64   `json:"id" db:"id" example:"1"`
	CourseID   int64   `json:"courseId" db:"course_id" example:"3"`
	DayOfWeek  string  `json:"dayOfWeek" db:"day_of_week" example:"Monday"`
	StartTime  string  `json:"startTime" db:"start_time" example:"09:00"`
	EndTime    string  `json:"endTime" db:"end_time" example:"10:30"`
	Location   *string `json:"location,omitempty" db:"location"`
	CourseName string  `json:"courseName,omitempty"` // Joined from courses, no db column
	Instructor string  `json:"instructor,omitempty"` // Joined from courses, no db column
}
