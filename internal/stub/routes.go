package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farhanadbm1/traintrack-client/internal/domain"
)

// Engine builds a fresh gin router serving every endpoint the client calls,
// all under the /api prefix. Auth is required everywhere except login.
func (s *Server) Engine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	s.SetupRoutes(router)
	return router
}

// SetupRoutes registers the stub's routes on an existing router.
func (s *Server) SetupRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	api.POST("/auth/login", s.handleLogin)

	protected := api.Group("")
	protected.Use(authMiddleware(s.jwtSecret))
	{
		userGroup := protected.Group("/user")
		{
			userGroup.GET("", s.handleListUsers)
			userGroup.POST("/register", roleMiddleware(domain.RoleAdmin), s.handleRegisterUser)
			userGroup.GET("/profile/:id", s.handleGetProfile)
			userGroup.PUT("/:id", s.handleUpdateUser)
			userGroup.DELETE("/:id", roleMiddleware(domain.RoleAdmin), s.handleToggleUserDeleted)
			userGroup.POST("/change-password/:id", s.handleChangePassword)
		}

		courseGroup := protected.Group("/course")
		{
			courseGroup.GET("", s.handleListCourses)
			courseGroup.POST("/register", roleMiddleware(domain.RoleAdmin), s.handleRegisterCourse)
			courseGroup.GET("/:id", s.handleGetCourse)
			courseGroup.PUT("/:id", roleMiddleware(domain.RoleAdmin), s.handleUpdateCourse)
			courseGroup.PUT("/:id/toggle-status", roleMiddleware(domain.RoleAdmin), s.handleToggleCourseStatus)
		}

		assignmentGroup := protected.Group("/CourseAssignment")
		{
			assignmentGroup.GET("/course/:courseId", s.handleListAssignmentsByCourse)
			assignmentGroup.POST("/assign-role", roleMiddleware(domain.RoleAdmin), s.handleAssignRole)
			assignmentGroup.DELETE("/unassign/:id", roleMiddleware(domain.RoleAdmin), s.handleUnassign)
			assignmentGroup.GET("/:userId", s.handleListCoursesByUser)
		}

		taskGroup := protected.Group("/TaskAssignment")
		{
			taskGroup.GET("/by-course/:courseId", s.handleListTasksByCourse)
			taskGroup.GET("/:id", s.handleGetTask)
			taskGroup.POST("", roleMiddleware(domain.RoleTrainer), s.handleCreateTask)
			taskGroup.PUT("/:id", roleMiddleware(domain.RoleTrainer), s.handleUpdateTask)
			taskGroup.DELETE("/:id", roleMiddleware(domain.RoleTrainer), s.handleDeleteTask)
		}

		submissionGroup := protected.Group("/TaskSubmission")
		{
			submissionGroup.GET("/by-task/:taskId", s.handleListSubmissionsByTask)
			submissionGroup.GET("/by-trainee/:traineeId", s.handleListSubmissionsByTrainee)
			submissionGroup.GET("/by-course/:courseId", s.handleListSubmissionsByCourse)
			submissionGroup.POST("", roleMiddleware(domain.RoleTrainee), s.handleCreateSubmission)
		}

		evaluationGroup := protected.Group("/TaskEvaluation")
		{
			evaluationGroup.GET("/trainees/:taskId", roleMiddleware(domain.RoleTrainer), s.handleListTraineesForTask)
			evaluationGroup.GET("/by-trainee/:taskId/:traineeId", s.handleGetTraineeEvaluation)
			evaluationGroup.POST("/evaluate", roleMiddleware(domain.RoleTrainer), s.handleEvaluate)
		}

		materialGroup := protected.Group("/TrainingMaterial")
		{
			materialGroup.GET("/:courseId", s.handleListMaterials)
			materialGroup.POST("", roleMiddleware(domain.RoleAdmin, domain.RoleTrainer), s.handleCreateMaterial)
			materialGroup.DELETE("/:id", roleMiddleware(domain.RoleAdmin, domain.RoleTrainer), s.handleDeleteMaterial)
		}
	}
}
