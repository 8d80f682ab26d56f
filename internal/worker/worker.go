package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prism-rei/vocatag/internal/catalog"
	"github.com/prism-rei/vocatag/internal/config"
	"github.com/prism-rei/vocatag/internal/constants"
	"github.com/prism-rei/vocatag/internal/domain"
	"github.com/prism-rei/vocatag/internal/logger"
	"github.com/prism-rei/vocatag/internal/store"
	"github.com/prism-rei/vocatag/internal/tagging"
)

// Worker polls the job table and runs tag-sync jobs: fetch the album from
// the catalog, pair its tracks with the audio files in the target
// directory, and write tags file by file.
type Worker struct {
	Repo          *store.DB
	Provider      catalog.Provider
	Config        *config.Config
	MaxConcurrent int
	Logger        *logger.Logger
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
}

func NewWorker(repo *store.DB, provider catalog.Provider, cfg *config.Config, log *logger.Logger) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		Repo:          repo,
		Provider:      provider,
		Config:        cfg,
		MaxConcurrent: constants.DefaultConcurrency,
		Logger:        log.WithComponent("worker"),
		ctx:           ctx,
		cancel:        cancel,
	}
}

func (w *Worker) Start() {
	w.Logger.Info("Starting worker")

	// Jobs left running by a previous process go back to the queue.
	if err := w.Repo.ResetStuckJobs(); err != nil {
		w.Logger.Error("Failed to reset stuck jobs", "error", err)
	}
	if err := w.Repo.PruneCache(); err != nil {
		w.Logger.Error("Failed to prune cache", "error", err)
	}

	w.wg.Add(1)
	go w.processJobs()
}

func (w *Worker) Stop() {
	w.Logger.Info("Stopping worker")
	w.cancel()
	w.wg.Wait()
}

func (w *Worker) processJobs() {
	defer w.wg.Done()
	ticker := time.NewTicker(constants.DefaultPollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.MaxConcurrent)

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			jobs, err := w.Repo.ListActiveJobs()
			if err != nil {
				w.Logger.Error("Failed to list jobs", "error", err)
				continue
			}

			var queued []*domain.Job
			for _, j := range jobs {
				if j.Status == domain.JobStatusQueued {
					queued = append(queued, j)
				}
			}
			w.dispatch(queued, sem)
		}
	}
}

// dispatch starts a goroutine per queued job while semaphore slots are
// free. The semaphore is the single source of truth for capacity; a slot
// is held for the lifetime of the job goroutine, so jobs left over when
// it fills up wait for the next poll tick.
func (w *Worker) dispatch(queued []*domain.Job, sem chan struct{}) {
	for _, job := range queued {
		select {
		case sem <- struct{}{}:
		default:
			return
		}
		w.wg.Add(1)
		go func(j *domain.Job) {
			defer w.wg.Done()
			defer func() { <-sem }()
			w.runJob(w.ctx, j)
		}(job)
	}
}

func (w *Worker) runJob(ctx context.Context, job *domain.Job) {
	log := w.Logger.WithJob(job.ID, string(job.Type))
	defer func() {
		if r := recover(); r != nil {
			log.Error("Panic in job", "panic", r)
			w.Repo.UpdateJobError(job.ID, fmt.Sprintf("Panic: %v", r))
		}
	}()

	log.Info("Running job", "album_id", job.SourceID, "target_dir", job.TargetDir)

	if err := w.Repo.UpdateJobStatus(job.ID, domain.JobStatusRunning, 0); err != nil {
		log.Error("Failed to update status", "error", err)
		return
	}

	album, err := w.Provider.GetAlbum(ctx, job.SourceID)
	if err != nil {
		log.Error("Album fetch failed", "error", err)
		w.Repo.UpdateJobError(job.ID, fmt.Sprintf("Album fetch failed: %v", err))
		return
	}
	if len(album.Tracks) == 0 {
		w.Repo.UpdateJobError(job.ID, "Album has no tracks")
		return
	}

	dir := filepath.Join(w.Config.MusicDir, job.TargetDir)
	files, err := listAudioFiles(dir)
	if err != nil {
		w.Repo.UpdateJobError(job.ID, fmt.Sprintf("Failed to read target directory: %v", err))
		return
	}
	if len(files) != len(album.Tracks) {
		w.Repo.UpdateJobError(job.ID, fmt.Sprintf("File count mismatch: %d files, %d tracks", len(files), len(album.Tracks)))
		return
	}

	coverData := loadCover(dir)

	for i := range album.Tracks {
		if cancelled, err := w.jobCancelled(job.ID); err == nil && cancelled {
			log.Info("Job cancelled, stopping")
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		track := &album.Tracks[i]
		if err := tagging.TagFile(files[i], album, track, coverData); err != nil {
			log.Error("Tagging failed", "file", files[i], "error", err)
			w.Repo.UpdateJobError(job.ID, fmt.Sprintf("Tagging %s failed: %v", filepath.Base(files[i]), err))
			return
		}
		progress := float64(i+1) / float64(len(album.Tracks)) * 100
		w.Repo.UpdateJobStatus(job.ID, domain.JobStatusRunning, progress)
	}

	w.Repo.UpdateJobStatus(job.ID, domain.JobStatusCompleted, 100)
	log.Info("Job completed", "tracks", len(album.Tracks))
}

func (w *Worker) jobCancelled(id string) (bool, error) {
	job, err := w.Repo.GetJob(id)
	if err != nil {
		return false, err
	}
	return job.Status == domain.JobStatusCancelled, nil
}

// listAudioFiles returns the taggable files in dir sorted by name, so they
// pair with the album's track order the way a ripper lays them out.
func listAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case constants.ExtFLAC, constants.ExtMP3:
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// loadCover probes the usual cover art filenames in dir. No cover is not
// an error; tagging simply skips the picture frame.
func loadCover(dir string) []byte {
	for _, name := range constants.CoverFilenames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return data
		}
	}
	return nil
}
