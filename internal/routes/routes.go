package routes

import (
	"jobtrack_backend/internal/handlers"
	"jobtrack_backend/internal/middleware"
	"jobtrack_backend/internal/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires every HTTP route onto the gin engine.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := ginRouter.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/hr/register", appHandlers.Auth.RegisterHr)
		auth.POST("/candidate/register", appHandlers.Auth.RegisterCandidate)
		auth.POST("/login", appHandlers.Auth.Login)
	}

	hr := api.Group("/hr")
	hr.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleHr))
	{
		hr.GET("/jobs", appHandlers.Hr.GetJobs)
		hr.POST("/jobs", appHandlers.Hr.CreateJob)
		hr.GET("/jobs/:jobId", appHandlers.Hr.GetJob)
		hr.PUT("/jobs/:jobId", appHandlers.Hr.EditJob)
		hr.DELETE("/jobs/:jobId", appHandlers.Hr.DeleteJob)
		hr.POST("/jobs/:jobId/tasks", appHandlers.Hr.CreateJobTask)
		hr.PUT("/jobs/:jobId/tasks/reorder", appHandlers.Hr.ReorderJobTasks)

		hr.GET("/tasks/:taskId", appHandlers.Hr.GetJobTask)
		hr.PUT("/tasks/:taskId", appHandlers.Hr.EditJobTask)
		hr.DELETE("/tasks/:taskId", appHandlers.Hr.DeleteJobTask)
		hr.PUT("/tasks/:taskId/set-file-requirement", appHandlers.Hr.SetTaskFileRequirement)
		hr.PUT("/tasks/:taskId/set-verification-requirement", appHandlers.Hr.SetTaskVerificationRequirement)

		hr.GET("/candidates", appHandlers.Hr.GetCandidates)
		hr.GET("/candidates/:candidateId/profile", appHandlers.Hr.GetCandidateProfile)
		hr.GET("/candidates/:candidateId/resume", appHandlers.Hr.DownloadCandidateResume)
		hr.GET("/candidates/:candidateId/tasks", appHandlers.Hr.GetCandidateTasks)
		hr.DELETE("/candidates/:candidateId", appHandlers.Hr.DeleteCandidate)
		hr.PUT("/candidates/tasks/:taskId/verify", appHandlers.Hr.VerifyCandidateTask)
		hr.GET("/candidates/tasks/:taskId/file", appHandlers.Hr.DownloadCandidateTaskFile)
	}

	candidate := api.Group("/candidate")
	candidate.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCandidate))
	{
		candidate.GET("/available-jobs", appHandlers.Candidate.GetAvailableJobs)
		candidate.GET("/assigned-job", appHandlers.Candidate.GetAssignedJob)
		candidate.POST("/jobs/:jobId/assign", appHandlers.Candidate.AssignToJob)

		candidate.GET("/tasks", appHandlers.Candidate.GetTasks)
		candidate.POST("/tasks/:taskId/complete", appHandlers.Candidate.CompleteTask)
		candidate.GET("/tasks/:taskId/completion-timestamp", appHandlers.Candidate.GetCompletionTimestamp)
		candidate.POST("/tasks/:taskId/upload", appHandlers.Candidate.UploadTaskFile)

		candidate.GET("/view-profile", appHandlers.Candidate.ViewProfile)
		candidate.PUT("/profile", appHandlers.Candidate.EditProfile)
		candidate.POST("/upload-resume", appHandlers.Candidate.UploadResume)
		candidate.GET("/resume", appHandlers.Candidate.DownloadResume)
	}
}
