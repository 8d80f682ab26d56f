package app

import (
	"os"
	"testing"

	"github.com/prism-rei/vocatag/internal/domain"
	"github.com/prism-rei/vocatag/internal/logger"
	"github.com/prism-rei/vocatag/internal/store"
)

func setupTestDB(t *testing.T) (*store.DB, func()) {
	tmpFile := "test_app.db"
	db, err := store.NewSQLiteDB(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	cleanup := func() {
		db.Close()
		os.Remove(tmpFile)
	}
	return db, cleanup
}

func TestSyncService_EnqueueAlbumSync(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewSyncService(db, logger.Default())

	job, err := svc.EnqueueAlbumSync("1234", "wowaka/Unhappy Refrain")
	if err != nil {
		t.Fatalf("EnqueueAlbumSync failed: %v", err)
	}
	if job.Status != domain.JobStatusQueued {
		t.Errorf("Expected status queued, got %s", job.Status)
	}
	if job.Type != domain.JobTypeTagAlbum {
		t.Errorf("Expected tag_album job type, got %s", job.Type)
	}
	if job.TargetDir != "wowaka/Unhappy Refrain" {
		t.Errorf("Unexpected target dir: %s", job.TargetDir)
	}

	// Enqueueing the same album again returns the active job.
	dup, err := svc.EnqueueAlbumSync("1234", "somewhere/else")
	if err != nil {
		t.Fatalf("EnqueueAlbumSync failed: %v", err)
	}
	if dup.ID != job.ID {
		t.Errorf("Expected same job ID %s, got %s", job.ID, dup.ID)
	}

	jobs, err := svc.ListJobs()
	if err != nil {
		t.Fatalf("ListJobs failed: %v", err)
	}
	if len(jobs) != 1 {
		t.Errorf("Expected 1 job, got %d", len(jobs))
	}
}

func TestSyncService_CancelJob(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewSyncService(db, logger.Default())

	job, err := svc.EnqueueAlbumSync("5678", "dir")
	if err != nil {
		t.Fatalf("EnqueueAlbumSync failed: %v", err)
	}

	if err := svc.CancelJob(job.ID); err != nil {
		t.Fatalf("CancelJob failed: %v", err)
	}

	got, err := svc.GetJob(job.ID)
	if err != nil {
		t.Fatalf("GetJob failed: %v", err)
	}
	if got.Status != domain.JobStatusCancelled {
		t.Errorf("Expected cancelled, got %s", got.Status)
	}
	if got.Active() {
		t.Error("Expected cancelled job not to be active")
	}

	// A cancelled job no longer blocks re-enqueueing.
	fresh, err := svc.EnqueueAlbumSync("5678", "dir")
	if err != nil {
		t.Fatalf("Re-enqueue failed: %v", err)
	}
	if fresh.ID == job.ID {
		t.Error("Expected a new job after cancellation")
	}
}
