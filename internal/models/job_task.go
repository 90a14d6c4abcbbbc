package models

// JobTask is a template step belonging to a job. Order values ascend within
// a job; gaps are allowed and never renumbered.
type JobTask struct {
	BaseModel
	Description          string `gorm:"not null"`
	RequiresFile         bool   `gorm:"default:false"`
	RequiresVerification bool   `gorm:"default:false"`
	Order                int    `gorm:"column:task_order;not null"`
	JobID                string `gorm:"type:uuid;not null;index"`

	// Relations
	Job            *Job            `gorm:"foreignKey:JobID"`
	CandidateTasks []CandidateTask `gorm:"foreignKey:JobTaskID"`
}
