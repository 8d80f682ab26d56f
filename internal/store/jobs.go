package store

import (
	"database/sql"
	"time"

	"github.com/prism-rei/vocatag/internal/domain"
)

func (db *DB) CreateJob(job *domain.Job) error {
	query := `INSERT OR IGNORE INTO jobs (id, type, status, progress, source_id, target_dir, created_at, updated_at)
		VALUES (:id, :type, :status, :progress, :source_id, :target_dir, :created_at, :updated_at)`

	_, err := db.NamedExec(query, job)
	return err
}

func (db *DB) GetJob(id string) (*domain.Job, error) {
	query := `SELECT id, type, status, progress, source_id, target_dir, created_at, updated_at, error FROM jobs WHERE id = ?`

	job := &domain.Job{}
	err := db.Get(job, query, id)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (db *DB) UpdateJobStatus(id string, status domain.JobStatus, progress float64) error {
	query := `UPDATE jobs SET status = ?, progress = ?, updated_at = ? WHERE id = ?`
	_, err := db.Exec(query, status, progress, time.Now(), id)
	return err
}

func (db *DB) UpdateJobError(id string, errorMsg string) error {
	query := `UPDATE jobs SET status = ?, error = ?, updated_at = ? WHERE id = ?`
	_, err := db.Exec(query, domain.JobStatusFailed, errorMsg, time.Now(), id)
	return err
}

func (db *DB) ListJobs(limit int) ([]*domain.Job, error) {
	query := `SELECT id, type, status, progress, source_id, target_dir, created_at, updated_at, error FROM jobs ORDER BY created_at DESC LIMIT ?`

	var jobs []*domain.Job
	err := db.Select(&jobs, query, limit)
	return jobs, err
}

func (db *DB) ListActiveJobs() ([]*domain.Job, error) {
	query := `SELECT id, type, status, progress, source_id, target_dir, created_at, updated_at FROM jobs WHERE status IN ('queued', 'running') ORDER BY created_at ASC`

	var jobs []*domain.Job
	err := db.Select(&jobs, query)
	return jobs, err
}

func (db *DB) GetActiveJobBySourceID(sourceID string, jobType domain.JobType) (*domain.Job, error) {
	query := `SELECT id, type, status, progress, source_id, target_dir, created_at, updated_at
		FROM jobs
		WHERE source_id = ? AND type = ? AND status IN ('queued', 'running')
		LIMIT 1`

	job := &domain.Job{}
	err := db.Get(job, query, sourceID, jobType)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (db *DB) ResetStuckJobs() error {
	query := `UPDATE jobs SET status = ?, updated_at = ? WHERE status = 'running'`
	_, err := db.Exec(query, domain.JobStatusQueued, time.Now())
	return err
}

func (db *DB) ClearFinishedJobs() error {
	query := `DELETE FROM jobs WHERE status IN ('completed', 'failed', 'cancelled')`
	_, err := db.Exec(query)
	return err
}
