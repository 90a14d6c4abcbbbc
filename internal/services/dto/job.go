package dto

import "jobtrack_backend/internal/models"

type JobRequest struct {
	Title       string `json:"title" binding:"required" validate:"required"`
	Description string `json:"description"`
}

type JobTaskRequest struct {
	Description          string `json:"description" binding:"required" validate:"required"`
	RequiresFile         bool   `json:"requires_file"`
	RequiresVerification bool   `json:"requires_verification"`
}

type ReorderRequest struct {
	TaskID string `json:"task_id" binding:"required" validate:"required"`
	Order  int    `json:"order" binding:"required" validate:"required,min=1"`
}

type JobTaskSummary struct {
	ID                   string `json:"id"`
	Order                int    `json:"order"`
	Description          string `json:"description"`
	RequiresFile         bool   `json:"requires_file"`
	RequiresVerification bool   `json:"requires_verification"`
}

type JobSummary struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	JobTasks    []JobTaskSummary `json:"job_tasks"`
}

func NewJobTaskSummary(t *models.JobTask) JobTaskSummary {
	return JobTaskSummary{
		ID:                   t.ID,
		Order:                t.Order,
		Description:          t.Description,
		RequiresFile:         t.RequiresFile,
		RequiresVerification: t.RequiresVerification,
	}
}

// NewJobSummary assumes the job's tasks were loaded ordered by task_order.
func NewJobSummary(job *models.Job) *JobSummary {
	summary := &JobSummary{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		JobTasks:    make([]JobTaskSummary, 0, len(job.JobTasks)),
	}
	for i := range job.JobTasks {
		summary.JobTasks = append(summary.JobTasks, NewJobTaskSummary(&job.JobTasks[i]))
	}
	return summary
}
