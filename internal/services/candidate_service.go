package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"jobtrack_backend/internal/config"
	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/internal/storage"
	"jobtrack_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CandidateService covers candidate profiles and files: profile edits,
// resume blobs on the user row, task evidence files in storage, and the HR
// oversight views over candidates.
type CandidateService interface {
	GetProfile(db *gorm.DB, candidateID string) (*dto.CandidateProfile, error)
	EditProfile(db *gorm.DB, candidateID string, req *dto.ProfileUpdateRequest) error
	GetAssignedJob(db *gorm.DB, candidateID string) (*dto.JobSummary, error)

	UploadResume(db *gorm.DB, candidateID, fileName string, data []byte) error
	DownloadResume(db *gorm.DB, candidateID string) (*dto.ResumeFile, error)

	UploadTaskFile(ctx context.Context, db *gorm.DB, candidateID, candidateTaskID, fileName string, data []byte) (string, error)
	DownloadTaskFile(ctx context.Context, db *gorm.DB, candidateTaskID string) (io.ReadCloser, string, error)

	GetAllCandidates(db *gorm.DB) ([]dto.CandidateProfile, error)
	DeleteCandidate(db *gorm.DB, candidateID string) error
}

type CandidateServiceImpl struct {
	userRepo repositories.UserRepository
	ctRepo   repositories.CandidateTaskRepository
	storage  storage.Storage
}

func NewCandidateService(
	userRepo repositories.UserRepository,
	ctRepo repositories.CandidateTaskRepository,
	storageInstance storage.Storage,
) CandidateService {
	return &CandidateServiceImpl{
		userRepo: userRepo,
		ctRepo:   ctRepo,
		storage:  storageInstance,
	}
}

func (s *CandidateServiceImpl) GetProfile(db *gorm.DB, candidateID string) (*dto.CandidateProfile, error) {
	candidate, err := s.findCandidate(db, candidateID)
	if err != nil {
		return nil, err
	}
	return dto.NewCandidateProfile(candidate), nil
}

func (s *CandidateServiceImpl) EditProfile(db *gorm.DB, candidateID string, req *dto.ProfileUpdateRequest) error {
	if err := s.userRepo.UpdateName(db, candidateID, req.FirstName, req.LastName); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CandidateServiceImpl) GetAssignedJob(db *gorm.DB, candidateID string) (*dto.JobSummary, error) {
	candidate, err := s.userRepo.FindCandidateWithJob(db, candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if candidate.Job == nil {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}
	return dto.NewJobSummary(candidate.Job), nil
}

// UploadResume stores the resume as a blob on the candidate row, replacing
// any previous one.
func (s *CandidateServiceImpl) UploadResume(db *gorm.DB, candidateID, fileName string, data []byte) error {
	if len(data) == 0 {
		return apperrors.ErrEmptyFile
	}
	if int64(len(data)) > config.GetConfig().Upload.MaxSize {
		return apperrors.ErrFileTooLarge
	}

	if err := s.userRepo.UpdateResume(db, candidateID, data, filepath.Base(fileName)); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CandidateServiceImpl) DownloadResume(db *gorm.DB, candidateID string) (*dto.ResumeFile, error) {
	candidate, err := s.findCandidate(db, candidateID)
	if err != nil {
		return nil, err
	}
	if len(candidate.ResumeData) == 0 {
		return nil, apperrors.ErrNotFound(fmt.Errorf("candidate %s has no resume", candidateID))
	}

	fileName := candidate.ResumeFileName
	if fileName == "" {
		fileName = "resume.pdf"
	}

	return &dto.ResumeFile{
		Data:        candidate.ResumeData,
		FileName:    fileName,
		ContentType: "application/octet-stream",
	}, nil
}

// UploadTaskFile stores evidence for a progress row whose template requires
// a file and records the storage path on the row. Returns the stored path.
func (s *CandidateServiceImpl) UploadTaskFile(ctx context.Context, db *gorm.DB, candidateID, candidateTaskID, fileName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperrors.ErrEmptyFile
	}
	if int64(len(data)) > config.GetConfig().Upload.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	cTask, err := s.ctRepo.FindByID(db, candidateTaskID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateTaskNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}
	if cTask.CandidateID != candidateID {
		return "", apperrors.ErrNotFound(repositories.ErrCandidateTaskNotFound)
	}
	if cTask.JobTask == nil || !cTask.JobTask.RequiresFile {
		return "", apperrors.ErrFileNotRequired
	}

	path := fmt.Sprintf("tasks/%s/%s_%s", candidateID, uuid.NewString(), filepath.Base(fileName))
	if err := s.storage.Save(ctx, path, bytes.NewReader(data)); err != nil {
		return "", apperrors.InternalError(err)
	}

	if err := s.ctRepo.SetFilePath(db, candidateTaskID, path); err != nil {
		// Keep storage consistent with the row.
		_ = s.storage.Delete(ctx, path)
		return "", apperrors.InternalError(err)
	}
	return path, nil
}

// DownloadTaskFile streams a stored evidence file. The second return value
// is the original file name.
func (s *CandidateServiceImpl) DownloadTaskFile(ctx context.Context, db *gorm.DB, candidateTaskID string) (io.ReadCloser, string, error) {
	cTask, err := s.ctRepo.FindByID(db, candidateTaskID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCandidateTaskNotFound) {
			return nil, "", apperrors.ErrNotFound(err)
		}
		return nil, "", apperrors.InternalError(err)
	}
	if cTask.FilePath == "" {
		return nil, "", apperrors.ErrNotFound(fmt.Errorf("task %s has no uploaded file", candidateTaskID))
	}

	reader, err := s.storage.Get(ctx, cTask.FilePath)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	// Stored as <uuid>_<original name>; recover the original for the header.
	name := filepath.Base(cTask.FilePath)
	if idx := len(uuid.Nil.String()) + 1; len(name) > idx {
		name = name[idx:]
	}
	return reader, name, nil
}

func (s *CandidateServiceImpl) GetAllCandidates(db *gorm.DB) ([]dto.CandidateProfile, error) {
	candidates, err := s.userRepo.FindCandidates(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profiles := make([]dto.CandidateProfile, 0, len(candidates))
	for i := range candidates {
		profiles = append(profiles, *dto.NewCandidateProfile(&candidates[i]))
	}
	return profiles, nil
}

// DeleteCandidate removes the account and its progress rows.
func (s *CandidateServiceImpl) DeleteCandidate(db *gorm.DB, candidateID string) error {
	if _, err := s.findCandidate(db, candidateID); err != nil {
		return err
	}

	if err := s.userRepo.Delete(db, candidateID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CandidateServiceImpl) findCandidate(db *gorm.DB, candidateID string) (*models.User, error) {
	candidate, err := s.userRepo.FindCandidateWithJob(db, candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return candidate, nil
}
