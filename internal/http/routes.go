package httpapp

import "github.com/go-chi/chi/v5"

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/albums/{id}", h.GetAlbum)
		r.Get("/songs/{id}", h.GetSong)
		r.Get("/search/albums", h.SearchAlbums)
		r.Get("/search/songs", h.SearchSongs)

		r.Post("/sync/albums/{id}", h.SyncAlbum)
		r.Get("/jobs", h.ListJobs)
		r.Get("/jobs/{id}", h.GetJob)
		r.Post("/jobs/{id}/cancel", h.CancelJob)
	})
}
