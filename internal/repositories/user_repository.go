package repositories

import (
	"errors"

	"jobtrack_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository covers both user kinds; the callers filter by role where it
// matters. Repositories are stateless: every method operates on the
// per-request *gorm.DB handle so a test transaction is indistinguishable
// from the pool.
type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Update(db *gorm.DB, user *models.User) error
	UpdateName(db *gorm.DB, userID, firstName, lastName string) error
	UpdateResume(db *gorm.DB, userID string, data []byte, fileName string) error
	AssignJob(db *gorm.DB, candidateID string, jobID *string) error
	FindCandidates(db *gorm.DB) ([]models.User, error)
	FindCandidateWithJob(db *gorm.DB, candidateID string) (*models.User, error)
	Delete(db *gorm.DB, userID string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	// The unique index is the real guard; this check turns the common case
	// into a clean sentinel instead of a constraint violation.
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	result := db.Save(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateName(db *gorm.DB, userID, firstName, lastName string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateResume(db *gorm.DB, userID string, data []byte, fileName string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"resume_data":      data,
		"resume_file_name": fileName,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AssignJob sets or clears the candidate's job pointer. A nil jobID detaches.
func (r *UserRepositoryImpl) AssignJob(db *gorm.DB, candidateID string, jobID *string) error {
	result := db.Model(&models.User{}).Where("id = ?", candidateID).Update("job_id", jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindCandidates(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Preload("Job").
		Where("role = ?", models.UserRoleCandidate).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) FindCandidateWithJob(db *gorm.DB, candidateID string) (*models.User, error) {
	var user models.User
	err := db.Preload("Job").Preload("Job.JobTasks", func(db *gorm.DB) *gorm.DB {
		return db.Order("task_order ASC")
	}).First(&user, "id = ? AND role = ?", candidateID, models.UserRoleCandidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Delete removes the user together with its progress rows.
func (r *UserRepositoryImpl) Delete(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("candidate_id = ?", userID).Delete(&models.CandidateTask{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
