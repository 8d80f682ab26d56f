package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prism-rei/vocatag/internal/constants"
	"github.com/prism-rei/vocatag/internal/domain"
	"github.com/prism-rei/vocatag/internal/logger"
	"github.com/prism-rei/vocatag/internal/store"
)

// SyncService manages tag-sync jobs: one job fetches a catalog album and
// writes its metadata into the audio files of a library directory.
type SyncService struct {
	Repo   *store.DB
	Logger *logger.Logger
}

func NewSyncService(repo *store.DB, log *logger.Logger) *SyncService {
	return &SyncService{Repo: repo, Logger: log}
}

// EnqueueAlbumSync queues a tag-sync job for the given catalog album.
// Enqueueing an album that already has an active job returns that job
// instead of creating a duplicate.
func (s *SyncService) EnqueueAlbumSync(albumID, targetDir string) (*domain.Job, error) {
	existing, err := s.Repo.GetActiveJobBySourceID(albumID, domain.JobTypeTagAlbum)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing job: %w", err)
	}
	if existing != nil {
		s.Logger.Info("Job already exists", "job_id", existing.ID, "album_id", albumID)
		return existing, nil
	}

	job := &domain.Job{
		ID:        uuid.New().String(),
		Type:      domain.JobTypeTagAlbum,
		Status:    domain.JobStatusQueued,
		SourceID:  albumID,
		TargetDir: targetDir,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.Repo.CreateJob(job); err != nil {
		return nil, err
	}
	s.Logger.Info("Job enqueued", "job_id", job.ID, "album_id", albumID, "target_dir", targetDir)
	return job, nil
}

func (s *SyncService) ListJobs() ([]*domain.Job, error) {
	return s.Repo.ListJobs(constants.MaxJobListItems)
}

func (s *SyncService) GetJob(id string) (*domain.Job, error) {
	return s.Repo.GetJob(id)
}

func (s *SyncService) ListActiveJobs() ([]*domain.Job, error) {
	return s.Repo.ListActiveJobs()
}

func (s *SyncService) CancelJob(id string) error {
	if err := s.Repo.UpdateJobStatus(id, domain.JobStatusCancelled, 0); err != nil {
		return err
	}
	s.Logger.Info("Job cancelled", "job_id", id)
	return nil
}

func (s *SyncService) ClearFinishedJobs() error {
	return s.Repo.ClearFinishedJobs()
}
