package dto

import "github.com/ecetin/collegehub/internal/app/models"

// SaveMarksRequest represents the payload for upserting a student's three
// internal sub-scores. All three are applied together, never partially.
type SaveMarksRequest struct {
	StudentID int64 `json:"studentId" binding:"required,min=1"`
	CourseID  int64 `json:"courseId" binding:"required,min=1"`
	Internal1 *int  `json:"internal1" binding:"required"`
	Internal2 *int  `json:"internal2" binding:"required"`
	Internal3 *int  `json:"internal3" binding:"required"`
}

// MarksResponse represents one marks row with its derived total and status
type MarksResponse struct {
	ID         int64  `json:"id"`
	StudentID  int64  `json:"studentId"`
	CourseID   int64  `json:"courseId"`
	CourseName string `json:"courseName,omitempty"`
	Internal1  int    `json:"internal1"`
	Internal2  int    `json:"internal2"`
	Internal3  int    `json:"internal3"`
	Total      int    `json:"total"`
	Status     string `json:"status" example:"Pass"`
}

// NewMarksResponse derives total and status from the stored sub-scores
func NewMarksResponse(m *models.InternalMarks) MarksResponse {
	return MarksResponse{
		ID:         m.ID,
		StudentID:  m.StudentID,
		CourseID:   m.CourseID,
		CourseName: m.CourseName,
		Internal1:  m.Internal1,
		Internal2:  m.Internal2,
		Internal3:  m.Internal3,
		Total:      m.Total(),
		Status:     m.Status(),
	}
}

// CourseDistribution represents pass/fail counts for one course. Courses
// without recorded marks report zero counts rather than being omitted.
type CourseDistribution struct {
	CourseID   int64  `json:"courseId"`
	CourseName string `json:"courseName"`
	PassCount  int    `json:"passCount"`
	FailCount  int    `json:"failCount"`
}
