package handlers

import (
	"io"
	"net/http"

	"jobtrack_backend/internal/logger"
	"jobtrack_backend/internal/services"
	"jobtrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type HrHandler struct {
	*BaseHandler
	jobService       services.JobService
	progressService  services.ProgressService
	candidateService services.CandidateService
}

func NewHrHandler(
	base *BaseHandler,
	jobService services.JobService,
	progressService services.ProgressService,
	candidateService services.CandidateService,
) *HrHandler {
	return &HrHandler{
		BaseHandler:      base,
		jobService:       jobService,
		progressService:  progressService,
		candidateService: candidateService,
	}
}

// CreateJob godoc
// @Summary      Create a job
// @Tags         hr
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.JobRequest true "Job data"
// @Success      201 {object} dto.JobSummary
// @Router       /api/hr/jobs [post]
func (h *HrHandler) CreateJob(c *gin.Context) {
	hrID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), hrID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJobs godoc
// @Summary      List all jobs with their task templates
// @Tags         hr
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} dto.JobSummary
// @Router       /api/hr/jobs [get]
func (h *HrHandler) GetJobs(c *gin.Context) {
	jobs, err := h.jobService.GetJobs(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary      Get a single job
// @Tags         hr
// @Security     BearerAuth
// @Produce      json
// @Param        jobId path string true "Job ID"
// @Success      200 {object} dto.JobSummary
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/jobs/{jobId} [get]
func (h *HrHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// EditJob godoc
// @Summary      Update a job's title and description
// @Tags         hr
// @Security     BearerAuth
// @Accept       json
// @Param        jobId path string true "Job ID"
// @Param        request body dto.JobRequest true "Job data"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/jobs/{jobId} [put]
func (h *HrHandler) EditJob(c *gin.Context) {
	var req dto.JobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobService.EditJob(h.GetDB(c), c.Param("jobId"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job updated"})
}

// DeleteJob godoc
// @Summary      Delete a job and everything attached to it
// @Tags         hr
// @Security     BearerAuth
// @Param        jobId path string true "Job ID"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/jobs/{jobId} [delete]
func (h *HrHandler) DeleteJob(c *gin.Context) {
	if err := h.jobService.DeleteJob(h.GetDB(c), c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// CreateJobTask godoc
// @Summary      Append a task template to a job
// @Tags         hr
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        jobId path string true "Job ID"
// @Param        request body dto.JobTaskRequest true "Task data"
// @Success      201 {object} dto.JobTaskSummary
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/jobs/{jobId}/tasks [post]
func (h *HrHandler) CreateJobTask(c *gin.Context) {
	var req dto.JobTaskRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	task, err := h.jobService.CreateJobTask(h.GetDB(c), c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ReorderJobTasks godoc
// @Summary      Reposition task templates within a job
// @Tags         hr
// @Security     BearerAuth
// @Accept       json
// @Param        jobId path string true "Job ID"
// @Param        request body []dto.ReorderRequest true "New positions"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/jobs/{jobId}/tasks/reorder [put]
func (h *HrHandler) ReorderJobTasks(c *gin.Context) {
	var req []dto.ReorderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobService.ReorderJobTasks(h.GetDB(c), c.Param("jobId"), req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tasks reordered"})
}

// GetJobTask godoc
// @Summary      Get a single task template
// @Tags         hr
// @Security     BearerAuth
// @Produce      json
// @Param        taskId path string true "Task ID"
// @Success      200 {object} dto.JobTaskSummary
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/tasks/{taskId} [get]
func (h *HrHandler) GetJobTask(c *gin.Context) {
	task, err := h.jobService.GetJobTask(h.GetDB(c), c.Param("taskId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// EditJobTask godoc
// @Summary      Update a task template's description
// @Tags         hr
// @Security     BearerAuth
// @Accept       json
// @Param        taskId path string true "Task ID"
// @Param        request body dto.JobTaskRequest true "Task data"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/tasks/{taskId} [put]
func (h *HrHandler) EditJobTask(c *gin.Context) {
	var req dto.JobTaskRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobService.EditJobTask(h.GetDB(c), c.Param("taskId"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task updated"})
}

// DeleteJobTask godoc
// @Summary      Delete a task template and its progress rows
// @Tags         hr
// @Security     BearerAuth
// @Param        taskId path string true "Task ID"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/tasks/{taskId} [delete]
func (h *HrHandler) DeleteJobTask(c *gin.Context) {
	if err := h.jobService.DeleteJobTask(h.GetDB(c), c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// SetTaskFileRequirement godoc
// @Summary      Mark a task template as requiring a file
// @Tags         hr
// @Security     BearerAuth
// @Param        taskId path string true "Task ID"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/tasks/{taskId}/set-file-requirement [put]
func (h *HrHandler) SetTaskFileRequirement(c *gin.Context) {
	if err := h.jobService.SetTaskFileRequirement(h.GetDB(c), c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File requirement set"})
}

// SetTaskVerificationRequirement godoc
// @Summary      Mark a task template as requiring HR verification
// @Tags         hr
// @Security     BearerAuth
// @Param        taskId path string true "Task ID"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/tasks/{taskId}/set-verification-requirement [put]
func (h *HrHandler) SetTaskVerificationRequirement(c *gin.Context) {
	if err := h.jobService.SetTaskVerificationRequirement(h.GetDB(c), c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification requirement set"})
}

// GetCandidates godoc
// @Summary      List all candidates
// @Tags         hr
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} dto.CandidateProfile
// @Router       /api/hr/candidates [get]
func (h *HrHandler) GetCandidates(c *gin.Context) {
	candidates, err := h.candidateService.GetAllCandidates(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}

// GetCandidateProfile godoc
// @Summary      Get a candidate's profile
// @Tags         hr
// @Security     BearerAuth
// @Produce      json
// @Param        candidateId path string true "Candidate ID"
// @Success      200 {object} dto.CandidateProfile
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/candidates/{candidateId}/profile [get]
func (h *HrHandler) GetCandidateProfile(c *gin.Context) {
	profile, err := h.candidateService.GetProfile(h.GetDB(c), c.Param("candidateId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DownloadCandidateResume godoc
// @Summary      Download a candidate's resume
// @Tags         hr
// @Security     BearerAuth
// @Produce      application/octet-stream
// @Param        candidateId path string true "Candidate ID"
// @Success      200 {file} binary
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/candidates/{candidateId}/resume [get]
func (h *HrHandler) DownloadCandidateResume(c *gin.Context) {
	resume, err := h.candidateService.DownloadResume(h.GetDB(c), c.Param("candidateId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+resume.FileName+`"`)
	c.Data(http.StatusOK, resume.ContentType, resume.Data)
}

// GetCandidateTasks godoc
// @Summary      Get a candidate's task progress ordered by template position
// @Tags         hr
// @Security     BearerAuth
// @Produce      json
// @Param        candidateId path string true "Candidate ID"
// @Success      200 {array} dto.CandidateTaskView
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/candidates/{candidateId}/tasks [get]
func (h *HrHandler) GetCandidateTasks(c *gin.Context) {
	tasks, err := h.progressService.TasksForCandidate(h.GetDB(c), c.Param("candidateId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// VerifyCandidateTask godoc
// @Summary      Mark a candidate's task submission as verified
// @Tags         hr
// @Security     BearerAuth
// @Param        taskId path string true "Candidate task ID"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/candidates/tasks/{taskId}/verify [put]
func (h *HrHandler) VerifyCandidateTask(c *gin.Context) {
	if err := h.progressService.VerifyTask(h.GetDB(c), c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task verified"})
}

// DownloadCandidateTaskFile godoc
// @Summary      Download the file a candidate attached to a task
// @Tags         hr
// @Security     BearerAuth
// @Produce      application/octet-stream
// @Param        taskId path string true "Candidate task ID"
// @Success      200 {file} binary
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/candidates/tasks/{taskId}/file [get]
func (h *HrHandler) DownloadCandidateTaskFile(c *gin.Context) {
	reader, fileName, err := h.candidateService.DownloadTaskFile(c.Request.Context(), h.GetDB(c), c.Param("taskId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already gone; the interrupted stream is all the client
		// gets, so just record it.
		logger.CtxWithError(c.Request.Context(), "Failed to stream task file", err, "path", c.Request.URL.Path)
	}
}

// DeleteCandidate godoc
// @Summary      Delete a candidate account and its progress
// @Tags         hr
// @Security     BearerAuth
// @Param        candidateId path string true "Candidate ID"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/hr/candidates/{candidateId} [delete]
func (h *HrHandler) DeleteCandidate(c *gin.Context) {
	if err := h.candidateService.DeleteCandidate(h.GetDB(c), c.Param("candidateId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Candidate deleted"})
}
