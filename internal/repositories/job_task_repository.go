package repositories

import (
	"errors"

	"jobtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobTaskNotFound = errors.New("job task not found")

// TaskOrder is one (task, order) pair of a reorder request.
type TaskOrder struct {
	TaskID string
	Order  int
}

type JobTaskRepository interface {
	Create(db *gorm.DB, task *models.JobTask) error
	FindByID(db *gorm.DB, id string) (*models.JobTask, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.JobTask, error)
	Update(db *gorm.DB, task *models.JobTask) error
	Delete(db *gorm.DB, id string) error
	MaxOrder(db *gorm.DB, jobID string) (int, error)
	UpdateOrders(db *gorm.DB, jobID string, orders []TaskOrder) error
	SetRequiresFile(db *gorm.DB, id string) error
	SetRequiresVerification(db *gorm.DB, id string) error
}

type JobTaskRepositoryImpl struct{}

func NewJobTaskRepository() JobTaskRepository {
	return &JobTaskRepositoryImpl{}
}

func (r *JobTaskRepositoryImpl) Create(db *gorm.DB, task *models.JobTask) error {
	return db.Create(task).Error
}

func (r *JobTaskRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobTask, error) {
	var task models.JobTask
	err := db.Preload("Job").First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *JobTaskRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.JobTask, error) {
	var tasks []models.JobTask
	err := db.Where("job_id = ?", jobID).Order("task_order ASC").Find(&tasks).Error
	return tasks, err
}

func (r *JobTaskRepositoryImpl) Update(db *gorm.DB, task *models.JobTask) error {
	result := db.Model(&models.JobTask{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
		"description":           task.Description,
		"requires_file":         task.RequiresFile,
		"requires_verification": task.RequiresVerification,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobTaskNotFound
	}
	return nil
}

// Delete removes the template and any progress rows instantiated from it.
func (r *JobTaskRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_task_id = ?", id).Delete(&models.CandidateTask{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.JobTask{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobTaskNotFound
		}
		return nil
	})
}

// MaxOrder returns the highest order value in the job, 0 when it has no tasks.
func (r *JobTaskRepositoryImpl) MaxOrder(db *gorm.DB, jobID string) (int, error) {
	var max int
	err := db.Model(&models.JobTask{}).
		Where("job_id = ?", jobID).
		Select("COALESCE(MAX(task_order), 0)").
		Scan(&max).Error
	return max, err
}

// UpdateOrders overwrites the order of every referenced task. Tasks outside
// the list, or ids not belonging to the job, are left untouched; the caller
// is trusted to supply a consistent ordering.
func (r *JobTaskRepositoryImpl) UpdateOrders(db *gorm.DB, jobID string, orders []TaskOrder) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			err := tx.Model(&models.JobTask{}).
				Where("id = ? AND job_id = ?", o.TaskID, jobID).
				Update("task_order", o.Order).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *JobTaskRepositoryImpl) SetRequiresFile(db *gorm.DB, id string) error {
	return r.setFlag(db, id, "requires_file")
}

func (r *JobTaskRepositoryImpl) SetRequiresVerification(db *gorm.DB, id string) error {
	return r.setFlag(db, id, "requires_verification")
}

func (r *JobTaskRepositoryImpl) setFlag(db *gorm.DB, id, column string) error {
	result := db.Model(&models.JobTask{}).Where("id = ?", id).Update(column, true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobTaskNotFound
	}
	return nil
}
