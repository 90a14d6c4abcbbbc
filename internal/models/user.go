package models

// UserRole separates the two account kinds sharing the users table.
type UserRole string

const (
	UserRoleHr        UserRole = "Hr"
	UserRoleCandidate UserRole = "Candidate"
)

// User is the unified credential holder for HR users and candidates.
// Keeping both kinds in one table makes the cross-kind email uniqueness
// constraint a plain unique index and login a single lookup.
// The Job/Resume columns are only populated for candidates.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;index"`
	FirstName    string   `gorm:"not null"`
	LastName     string   `gorm:"not null"`

	// Candidate-only fields
	JobID          *string `gorm:"type:uuid;index"`
	ResumeData     []byte  `json:"-"`
	ResumeFileName string

	// Relations
	Job            *Job            `gorm:"foreignKey:JobID"`
	CandidateTasks []CandidateTask `gorm:"foreignKey:CandidateID"`
	Jobs           []Job           `gorm:"foreignKey:HrID"` // jobs authored by an HR user
}

// FullName is the display name carried in token claims.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
