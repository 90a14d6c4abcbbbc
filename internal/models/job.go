package models

// Job is an HR-posted position with an ordered checklist of task templates.
type Job struct {
	BaseModel
	Title       string `gorm:"not null"`
	Description string
	HrID        string `gorm:"type:uuid;not null;index"`

	// Relations
	Hr         *User     `gorm:"foreignKey:HrID"`
	JobTasks   []JobTask `gorm:"foreignKey:JobID"`
	Candidates []User    `gorm:"foreignKey:JobID"`
}
