package services

import (
	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// JobService is the HR-authored catalog of jobs and their ordered task
// templates.
type JobService interface {
	CreateJob(db *gorm.DB, hrID string, req *dto.JobRequest) (*dto.JobSummary, error)
	EditJob(db *gorm.DB, jobID string, req *dto.JobRequest) error
	DeleteJob(db *gorm.DB, jobID string) error
	GetJob(db *gorm.DB, jobID string) (*dto.JobSummary, error)
	GetJobs(db *gorm.DB) ([]dto.JobSummary, error)

	CreateJobTask(db *gorm.DB, jobID string, req *dto.JobTaskRequest) (*dto.JobTaskSummary, error)
	GetJobTask(db *gorm.DB, taskID string) (*dto.JobTaskSummary, error)
	EditJobTask(db *gorm.DB, taskID string, req *dto.JobTaskRequest) error
	DeleteJobTask(db *gorm.DB, taskID string) error
	ReorderJobTasks(db *gorm.DB, jobID string, orders []dto.ReorderRequest) error
	SetTaskFileRequirement(db *gorm.DB, taskID string) error
	SetTaskVerificationRequirement(db *gorm.DB, taskID string) error
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	taskRepo repositories.JobTaskRepository
}

func NewJobService(jobRepo repositories.JobRepository, taskRepo repositories.JobTaskRepository) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		taskRepo: taskRepo,
	}
}

func (s *JobServiceImpl) CreateJob(db *gorm.DB, hrID string, req *dto.JobRequest) (*dto.JobSummary, error) {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		HrID:        hrID,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewJobSummary(job), nil
}

func (s *JobServiceImpl) EditJob(db *gorm.DB, jobID string, req *dto.JobRequest) error {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
	}
	job.ID = jobID

	if err := s.jobRepo.Update(db, job); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteJob cascades: the repository removes progress rows, templates and
// the job, and detaches assigned candidates, atomically.
func (s *JobServiceImpl) DeleteJob(db *gorm.DB, jobID string) error {
	if err := s.jobRepo.Delete(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID string) (*dto.JobSummary, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobSummary(job), nil
}

func (s *JobServiceImpl) GetJobs(db *gorm.DB) ([]dto.JobSummary, error) {
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.JobSummary, 0, len(jobs))
	for i := range jobs {
		summaries = append(summaries, *dto.NewJobSummary(&jobs[i]))
	}
	return summaries, nil
}

// CreateJobTask appends: the new task gets max existing order + 1, or 1 for
// the job's first task.
func (s *JobServiceImpl) CreateJobTask(db *gorm.DB, jobID string, req *dto.JobTaskRequest) (*dto.JobTaskSummary, error) {
	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	maxOrder, err := s.taskRepo.MaxOrder(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	task := &models.JobTask{
		Description:          req.Description,
		RequiresFile:         req.RequiresFile,
		RequiresVerification: req.RequiresVerification,
		Order:                maxOrder + 1,
		JobID:                jobID,
	}

	if err := s.taskRepo.Create(db, task); err != nil {
		return nil, apperrors.InternalError(err)
	}

	summary := dto.NewJobTaskSummary(task)
	return &summary, nil
}

func (s *JobServiceImpl) GetJobTask(db *gorm.DB, taskID string) (*dto.JobTaskSummary, error) {
	task, err := s.taskRepo.FindByID(db, taskID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobTaskNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	summary := dto.NewJobTaskSummary(task)
	return &summary, nil
}

func (s *JobServiceImpl) EditJobTask(db *gorm.DB, taskID string, req *dto.JobTaskRequest) error {
	task := &models.JobTask{
		Description:          req.Description,
		RequiresFile:         req.RequiresFile,
		RequiresVerification: req.RequiresVerification,
	}
	task.ID = taskID

	if err := s.taskRepo.Update(db, task); err != nil {
		if apperrors.Is(err, repositories.ErrJobTaskNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) DeleteJobTask(db *gorm.DB, taskID string) error {
	if err := s.taskRepo.Delete(db, taskID); err != nil {
		if apperrors.Is(err, repositories.ErrJobTaskNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ReorderJobTasks overwrites the order of each referenced task. Unmentioned
// tasks keep their order; there is no renumbering or collision detection.
func (s *JobServiceImpl) ReorderJobTasks(db *gorm.DB, jobID string, orders []dto.ReorderRequest) error {
	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	pairs := make([]repositories.TaskOrder, 0, len(orders))
	for _, o := range orders {
		pairs = append(pairs, repositories.TaskOrder{TaskID: o.TaskID, Order: o.Order})
	}

	if err := s.taskRepo.UpdateOrders(db, jobID, pairs); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) SetTaskFileRequirement(db *gorm.DB, taskID string) error {
	if err := s.taskRepo.SetRequiresFile(db, taskID); err != nil {
		if apperrors.Is(err, repositories.ErrJobTaskNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) SetTaskVerificationRequirement(db *gorm.DB, taskID string) error {
	if err := s.taskRepo.SetRequiresVerification(db, taskID); err != nil {
		if apperrors.Is(err, repositories.ErrJobTaskNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
