package handlers

import (
	"io"
	"net/http"

	"jobtrack_backend/internal/services"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	*BaseHandler
	candidateService services.CandidateService
	progressService  services.ProgressService
	jobService       services.JobService
}

func NewCandidateHandler(
	base *BaseHandler,
	candidateService services.CandidateService,
	progressService services.ProgressService,
	jobService services.JobService,
) *CandidateHandler {
	return &CandidateHandler{
		BaseHandler:      base,
		candidateService: candidateService,
		progressService:  progressService,
		jobService:       jobService,
	}
}

// GetAvailableJobs godoc
// @Summary      List jobs a candidate can pick from
// @Tags         candidate
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} dto.JobSummary
// @Router       /api/candidate/available-jobs [get]
func (h *CandidateHandler) GetAvailableJobs(c *gin.Context) {
	jobs, err := h.jobService.GetJobs(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetAssignedJob godoc
// @Summary      Get the job the candidate is currently assigned to
// @Tags         candidate
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} dto.JobSummary
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/candidate/assigned-job [get]
func (h *CandidateHandler) GetAssignedJob(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	job, err := h.candidateService.GetAssignedJob(h.GetDB(c), candidateID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// AssignToJob godoc
// @Summary      Assign the candidate to a job and seed its task progress
// @Tags         candidate
// @Security     BearerAuth
// @Param        jobId path string true "Job ID"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/candidate/jobs/{jobId}/assign [post]
func (h *CandidateHandler) AssignToJob(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.progressService.AssignToJob(h.GetDB(c), candidateID, c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assigned to job"})
}

// GetTasks godoc
// @Summary      Get the candidate's task progress ordered by template position
// @Tags         candidate
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} dto.CandidateTaskView
// @Router       /api/candidate/tasks [get]
func (h *CandidateHandler) GetTasks(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	tasks, err := h.progressService.TasksForCandidate(h.GetDB(c), candidateID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CompleteTask godoc
// @Summary      Complete a task and activate the next pending one
// @Tags         candidate
// @Security     BearerAuth
// @Param        taskId path string true "Candidate task ID"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/candidate/tasks/{taskId}/complete [post]
func (h *CandidateHandler) CompleteTask(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.progressService.CompleteTask(h.GetDB(c), candidateID, c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task completed"})
}

// GetCompletionTimestamp godoc
// @Summary      Get the moment a task was completed
// @Tags         candidate
// @Security     BearerAuth
// @Produce      json
// @Param        taskId path string true "Candidate task ID"
// @Success      200
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/candidate/tasks/{taskId}/completion-timestamp [get]
func (h *CandidateHandler) GetCompletionTimestamp(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	completedAt, err := h.progressService.CompletionTimestamp(h.GetDB(c), candidateID, c.Param("taskId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed_at": completedAt})
}

// UploadTaskFile godoc
// @Summary      Attach a file to a task that requires one
// @Tags         candidate
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Param        taskId path string true "Candidate task ID"
// @Param        file formData file true "Evidence file"
// @Success      200
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /api/candidate/tasks/{taskId}/upload [post]
func (h *CandidateHandler) UploadTaskFile(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileName, data, ok := h.readUploadedFile(c)
	if !ok {
		return
	}

	path, err := h.candidateService.UploadTaskFile(c.Request.Context(), h.GetDB(c), candidateID, c.Param("taskId"), fileName, data)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"file_path": path})
}

// ViewProfile godoc
// @Summary      Get the candidate's own profile
// @Tags         candidate
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} dto.CandidateProfile
// @Router       /api/candidate/view-profile [get]
func (h *CandidateHandler) ViewProfile(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.candidateService.GetProfile(h.GetDB(c), candidateID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// EditProfile godoc
// @Summary      Update the candidate's name
// @Tags         candidate
// @Security     BearerAuth
// @Accept       json
// @Param        request body dto.ProfileUpdateRequest true "Profile data"
// @Success      200
// @Router       /api/candidate/profile [put]
func (h *CandidateHandler) EditProfile(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ProfileUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.candidateService.EditProfile(h.GetDB(c), candidateID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// UploadResume godoc
// @Summary      Upload the candidate's resume
// @Tags         candidate
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Param        file formData file true "Resume file"
// @Success      200
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /api/candidate/upload-resume [post]
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileName, data, ok := h.readUploadedFile(c)
	if !ok {
		return
	}

	if err := h.candidateService.UploadResume(h.GetDB(c), candidateID, fileName, data); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume uploaded"})
}

// DownloadResume godoc
// @Summary      Download the candidate's own resume
// @Tags         candidate
// @Security     BearerAuth
// @Produce      application/octet-stream
// @Success      200 {file} binary
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /api/candidate/resume [get]
func (h *CandidateHandler) DownloadResume(c *gin.Context) {
	candidateID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resume, err := h.candidateService.DownloadResume(h.GetDB(c), candidateID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+resume.FileName+`"`)
	c.Data(http.StatusOK, resume.ContentType, resume.Data)
}

// readUploadedFile pulls the "file" part out of a multipart form and reads
// it fully into memory. Writes the error response itself on failure.
func (h *CandidateHandler) readUploadedFile(c *gin.Context) (string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("No file provided in 'file' form field"))
		return "", nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.HandleServiceError(c, err)
		return "", nil, false
	}

	return fileHeader.Filename, data, true
}
