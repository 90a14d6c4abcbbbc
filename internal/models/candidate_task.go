package models

import "time"

// TaskStatus is the per-candidate state of one task template.
// completed is terminal: there is no un-complete operation.
type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "not_started"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// CandidateTask is one candidate's instantiation of a JobTask. The full set
// for a candidate is replaced wholesale on (re)assignment. The "current"
// task is not stored anywhere; it is the single in_progress row, re-derived
// by scanning, so it can never desync from the data.
type CandidateTask struct {
	BaseModel
	CandidateID    string     `gorm:"type:uuid;not null;index"`
	JobTaskID      string     `gorm:"type:uuid;not null;index"`
	Status         TaskStatus `gorm:"type:varchar(20);not null;default:'not_started'"`
	CompletedAt    *time.Time
	FilePath       string
	IsVerifiedByHr bool `gorm:"default:false"`

	// Relations
	Candidate *User    `gorm:"foreignKey:CandidateID"`
	JobTask   *JobTask `gorm:"foreignKey:JobTaskID"`
}
