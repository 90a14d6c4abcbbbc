package dto

import (
	"time"

	"jobtrack_backend/internal/models"
)

type ProfileUpdateRequest struct {
	FirstName string `json:"first_name" binding:"required" validate:"required"`
	LastName  string `json:"last_name" binding:"required" validate:"required"`
}

type CandidateProfile struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	AssignedJobID    *string `json:"assigned_job_id,omitempty"`
	AssignedJobTitle string  `json:"assigned_job_title"`
	HasResume        bool    `json:"has_resume"`
}

// CandidateTaskView is one progress row joined with its task template.
type CandidateTaskView struct {
	ID                   string            `json:"id"`
	Order                int               `json:"order"`
	Description          string            `json:"description"`
	RequiresFile         bool              `json:"requires_file"`
	RequiresVerification bool              `json:"requires_verification"`
	IsVerifiedByHr       bool              `json:"is_verified_by_hr"`
	FilePath             string            `json:"file_path"`
	Status               models.TaskStatus `json:"status"`
	CompletedAt          *time.Time        `json:"completed_at,omitempty"`
}

// ResumeFile is the binary payload returned by resume downloads.
type ResumeFile struct {
	Data        []byte
	FileName    string
	ContentType string
}

func NewCandidateProfile(u *models.User) *CandidateProfile {
	profile := &CandidateProfile{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		AssignedJobID:    u.JobID,
		AssignedJobTitle: "None",
		HasResume:        len(u.ResumeData) > 0,
	}
	if u.Job != nil {
		profile.AssignedJobTitle = u.Job.Title
	}
	return profile
}

// NewCandidateTaskView tolerates a missing template: such rows keep zero
// values for the template fields and sort last in listings.
func NewCandidateTaskView(t *models.CandidateTask) CandidateTaskView {
	view := CandidateTaskView{
		ID:             t.ID,
		IsVerifiedByHr: t.IsVerifiedByHr,
		FilePath:       t.FilePath,
		Status:         t.Status,
		CompletedAt:    t.CompletedAt,
	}
	if t.JobTask != nil {
		view.Order = t.JobTask.Order
		view.Description = t.JobTask.Description
		view.RequiresFile = t.JobTask.RequiresFile
		view.RequiresVerification = t.JobTask.RequiresVerification
	}
	return view
}
