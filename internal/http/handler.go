package httpapp

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prism-rei/vocatag/internal/app"
	"github.com/prism-rei/vocatag/internal/catalog"
	"github.com/prism-rei/vocatag/internal/logger"
)

type Handler struct {
	Provider catalog.Provider
	Sync     *app.SyncService
	Logger   *logger.Logger
}

func NewHandler(provider catalog.Provider, sync *app.SyncService, log *logger.Logger) *Handler {
	return &Handler{
		Provider: provider,
		Sync:     sync,
		Logger:   log.WithComponent("http"),
	}
}

func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	album, err := h.Provider.GetAlbum(r.Context(), id)
	if err != nil {
		h.respondProviderError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, album)
}

func (h *Handler) GetSong(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	track, err := h.Provider.GetSong(r.Context(), id)
	if err != nil {
		h.respondProviderError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, track)
}

func (h *Handler) SearchAlbums(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.respondError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	albums, err := h.Provider.SearchAlbums(r.Context(), query)
	if err != nil {
		h.respondProviderError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, albums)
}

func (h *Handler) SearchSongs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.respondError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	tracks, err := h.Provider.SearchSongs(r.Context(), query)
	if err != nil {
		h.respondProviderError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, tracks)
}

type syncRequest struct {
	TargetDir string `json:"target_dir"`
}

func (h *Handler) SyncAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TargetDir == "" {
		h.respondError(w, http.StatusBadRequest, "missing target_dir")
		return
	}

	job, err := h.Sync.EnqueueAlbumSync(id, req.TargetDir)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusAccepted, job)
}

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Sync.ListJobs()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, jobs)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := h.Sync.GetJob(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.respondError(w, http.StatusNotFound, "job not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, job)
}

func (h *Handler) CancelJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Sync.CancelJob(id); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) respondProviderError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "entry not found")
		return
	}
	h.Logger.Error("Provider error", "error", err)
	h.respondError(w, http.StatusBadGateway, err.Error())
}
