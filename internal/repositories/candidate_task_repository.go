package repositories

import (
	"errors"
	"time"

	"jobtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCandidateTaskNotFound = errors.New("candidate task not found")

type CandidateTaskRepository interface {
	FindByID(db *gorm.DB, id string) (*models.CandidateTask, error)
	FindByCandidate(db *gorm.DB, candidateID string) ([]models.CandidateTask, error)
	CreateBatch(db *gorm.DB, tasks []models.CandidateTask) error
	DeleteByCandidate(db *gorm.DB, candidateID string) error
	MarkCompleted(db *gorm.DB, id string, completedAt time.Time) error
	FindNextPending(db *gorm.DB, candidateID string, afterOrder int) (*models.CandidateTask, error)
	SetStatus(db *gorm.DB, id string, status models.TaskStatus) error
	MarkVerified(db *gorm.DB, id string) error
	SetFilePath(db *gorm.DB, id, filePath string) error
}

type CandidateTaskRepositoryImpl struct{}

func NewCandidateTaskRepository() CandidateTaskRepository {
	return &CandidateTaskRepositoryImpl{}
}

func (r *CandidateTaskRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.CandidateTask, error) {
	var task models.CandidateTask
	err := db.Preload("JobTask").First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *CandidateTaskRepositoryImpl) FindByCandidate(db *gorm.DB, candidateID string) ([]models.CandidateTask, error) {
	var tasks []models.CandidateTask
	err := db.Preload("JobTask").
		Where("candidate_id = ?", candidateID).
		Find(&tasks).Error
	return tasks, err
}

func (r *CandidateTaskRepositoryImpl) CreateBatch(db *gorm.DB, tasks []models.CandidateTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return db.Create(&tasks).Error
}

func (r *CandidateTaskRepositoryImpl) DeleteByCandidate(db *gorm.DB, candidateID string) error {
	return db.Where("candidate_id = ?", candidateID).Delete(&models.CandidateTask{}).Error
}

func (r *CandidateTaskRepositoryImpl) MarkCompleted(db *gorm.DB, id string, completedAt time.Time) error {
	result := db.Model(&models.CandidateTask{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       models.TaskStatusCompleted,
		"completed_at": completedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateTaskNotFound
	}
	return nil
}

// FindNextPending returns the candidate's progress row with the smallest
// template order strictly greater than afterOrder, or nil when the completed
// task was the last one. The join keeps this a single indexed query instead
// of walking loaded associations.
func (r *CandidateTaskRepositoryImpl) FindNextPending(db *gorm.DB, candidateID string, afterOrder int) (*models.CandidateTask, error) {
	var task models.CandidateTask
	err := db.
		Joins("JOIN job_tasks ON job_tasks.id = candidate_tasks.job_task_id").
		Where("candidate_tasks.candidate_id = ? AND job_tasks.task_order > ?", candidateID, afterOrder).
		Order("job_tasks.task_order ASC").
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *CandidateTaskRepositoryImpl) SetStatus(db *gorm.DB, id string, status models.TaskStatus) error {
	result := db.Model(&models.CandidateTask{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateTaskNotFound
	}
	return nil
}

func (r *CandidateTaskRepositoryImpl) MarkVerified(db *gorm.DB, id string) error {
	result := db.Model(&models.CandidateTask{}).Where("id = ?", id).Update("is_verified_by_hr", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateTaskNotFound
	}
	return nil
}

func (r *CandidateTaskRepositoryImpl) SetFilePath(db *gorm.DB, id, filePath string) error {
	result := db.Model(&models.CandidateTask{}).Where("id = ?", id).Update("file_path", filePath)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateTaskNotFound
	}
	return nil
}
