package services

import (
	"sort"
	"time"

	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ProgressService is the task-progression engine. Per candidate it owns one
// progress row per template of the assigned job and enforces the ordering:
// completing a row activates the row with the next-higher template order.
type ProgressService interface {
	AssignToJob(db *gorm.DB, candidateID, jobID string) error
	CompleteTask(db *gorm.DB, candidateID, candidateTaskID string) error
	VerifyTask(db *gorm.DB, candidateTaskID string) error
	TasksForCandidate(db *gorm.DB, candidateID string) ([]dto.CandidateTaskView, error)
	CompletionTimestamp(db *gorm.DB, candidateID, candidateTaskID string) (*time.Time, error)
}

type ProgressServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	ctRepo   repositories.CandidateTaskRepository
}

func NewProgressService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	ctRepo repositories.CandidateTaskRepository,
) ProgressService {
	return &ProgressServiceImpl{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		ctRepo:   ctRepo,
	}
}

// AssignToJob attaches the candidate to the job and rebuilds its progress
// set: every existing row (from any job) is dropped and one not_started row
// is created per template. Nothing is activated at assignment; the first
// completion drives the activation chain.
func (s *ProgressServiceImpl) AssignToJob(db *gorm.DB, candidateID, jobID string) error {
	candidate, err := s.userRepo.FindByID(db, candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if candidate.Role != models.UserRoleCandidate {
		return apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.AssignJob(tx, candidateID, &jobID); err != nil {
			return err
		}
		if err := s.ctRepo.DeleteByCandidate(tx, candidateID); err != nil {
			return err
		}

		rows := make([]models.CandidateTask, 0, len(job.JobTasks))
		for _, task := range job.JobTasks {
			rows = append(rows, models.CandidateTask{
				CandidateID: candidateID,
				JobTaskID:   task.ID,
				Status:      models.TaskStatusNotStarted,
			})
		}
		return s.ctRepo.CreateBatch(tx, rows)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// CompleteTask moves the row to its terminal state and activates the
// candidate's next pending row, if one exists. Completing an already
// completed row is a no-op success, so the terminal state and the activation
// side effect cannot be replayed.
func (s *ProgressServiceImpl) CompleteTask(db *gorm.DB, candidateID, candidateTaskID string) error {
	cTask, err := s.ctRepo.FindByID(db, candidateTaskID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateTaskNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if cTask.CandidateID != candidateID {
		return apperrors.ErrNotFound(repositories.ErrCandidateTaskNotFound)
	}

	if cTask.Status == models.TaskStatusCompleted {
		return nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.ctRepo.MarkCompleted(tx, cTask.ID, time.Now()); err != nil {
			return err
		}

		if cTask.JobTask == nil {
			// Orphaned row: its template was deleted underneath it. The
			// completion itself still counts; there is no order to chain from.
			return nil
		}

		next, err := s.ctRepo.FindNextPending(tx, candidateID, cTask.JobTask.Order)
		if err != nil {
			return err
		}
		if next == nil || next.Status != models.TaskStatusNotStarted {
			return nil
		}
		return s.ctRepo.SetStatus(tx, next.ID, models.TaskStatusInProgress)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// VerifyTask sets the HR verification flag unconditionally. The flag only
// means something for templates with requires_verification, but setting it
// elsewhere is harmless and keeps the operation idempotent.
func (s *ProgressServiceImpl) VerifyTask(db *gorm.DB, candidateTaskID string) error {
	if err := s.ctRepo.MarkVerified(db, candidateTaskID); err != nil {
		if apperrors.Is(err, repositories.ErrCandidateTaskNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// TasksForCandidate returns the candidate's progress rows joined with their
// templates, ordered by template order.
func (s *ProgressServiceImpl) TasksForCandidate(db *gorm.DB, candidateID string) ([]dto.CandidateTaskView, error) {
	candidate, err := s.userRepo.FindByID(db, candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if candidate.Role != models.UserRoleCandidate {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}

	tasks, err := s.ctRepo.FindByCandidate(db, candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	sortByTemplateOrder(tasks)

	views := make([]dto.CandidateTaskView, 0, len(tasks))
	for i := range tasks {
		views = append(views, dto.NewCandidateTaskView(&tasks[i]))
	}
	return views, nil
}

func (s *ProgressServiceImpl) CompletionTimestamp(db *gorm.DB, candidateID, candidateTaskID string) (*time.Time, error) {
	cTask, err := s.ctRepo.FindByID(db, candidateTaskID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateTaskNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if cTask.CandidateID != candidateID {
		return nil, apperrors.ErrNotFound(repositories.ErrCandidateTaskNotFound)
	}
	return cTask.CompletedAt, nil
}

// sortByTemplateOrder sorts progress rows ascending by their template's
// order. Rows whose template failed to load sort last; ties keep their
// fetch order.
func sortByTemplateOrder(tasks []models.CandidateTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return templateOrder(&tasks[i]) < templateOrder(&tasks[j])
	})
}

func templateOrder(t *models.CandidateTask) int {
	if t.JobTask == nil {
		return int(^uint(0) >> 1) // max int
	}
	return t.JobTask.Order
}
