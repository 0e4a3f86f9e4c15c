package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/controllers"
	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	scheduleController *controllers.ScheduleController,
	enrollmentController *controllers.EnrollmentController,
	marksController *controllers.MarksController,
	chatController *controllers.ChatController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	staffOrAdmin := authMiddleware.RequireRoles(models.RoleStaff, models.RoleAdmin)
	adminOnly := authMiddleware.RequireRoles(models.RoleAdmin)

	{
		authenticated.GET("/users/me", authController.GetCurrentUser)

		// Course catalog: readable by everyone, managed by staff/admin
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)

			coursesManage := courses.Group("", staffOrAdmin)
			{
				coursesManage.POST("", courseController.CreateCourse)
				coursesManage.PUT("/:id", courseController.UpdateCourse)
				coursesManage.DELETE("/:id", courseController.DeleteCourse)
			}
		}

		// Timetable: readable by everyone, managed by staff/admin
		schedules := authenticated.Group("/schedules")
		{
			schedules.GET("", scheduleController.GetAllSchedules)
			schedules.GET("/instructor/:name", scheduleController.GetSchedulesByInstructor)

			schedulesManage := schedules.Group("", staffOrAdmin)
			{
				schedulesManage.POST("", scheduleController.CreateSchedule)
				schedulesManage.PUT("/:id", scheduleController.UpdateSchedule)
				schedulesManage.DELETE("/:id", scheduleController.DeleteSchedule)
			}
		}

		// Marks: students see their own, staff/admin enter and inspect
		marks := authenticated.Group("/marks")
		{
			marks.GET("/student", authMiddleware.RequireRoles(models.RoleStudent), marksController.GetMyMarks)

			marksManage := marks.Group("", staffOrAdmin)
			{
				marksManage.POST("/internal", marksController.SaveMarks)
				marksManage.GET("/student/:id", marksController.GetStudentMarks)
			}
		}

		// Enrollments: managed by staff/admin
		enrollments := authenticated.Group("/enrollments", staffOrAdmin)
		{
			enrollments.POST("", enrollmentController.Enroll)
			enrollments.GET("/student/:id", enrollmentController.GetStudentEnrollments)
			enrollments.DELETE("/:id", enrollmentController.Unenroll)
		}

		// Reports: staff/admin
		reports := authenticated.Group("/reports", staffOrAdmin)
		{
			reports.GET("/grade-distribution", reportController.GetGradeDistribution)
			reports.GET("/student-summary/:id", reportController.GetStudentSummary)
		}

		// Chatbot: any authenticated user
		chat := authenticated.Group("/chat")
		{
			chat.POST("", chatController.SendMessage)
			chat.GET("/history", chatController.GetHistory)
		}

		// Admin surface
		admin := authenticated.Group("/admin", adminOnly)
		{
			admin.GET("/prompt", chatController.GetSystemPrompt)
			admin.PUT("/prompt", chatController.UpdateSystemPrompt)
		}

		users := authenticated.Group("/users", adminOnly)
		{
			users.GET("", userController.GetAllUsers)
			users.DELETE("/:id", userController.DeleteUser)
		}
	}
}
