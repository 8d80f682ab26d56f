package catalog

import (
	"context"
	"errors"

	"github.com/prism-rei/vocatag/internal/domain"
)

// ErrNotFound is returned when the catalog has no entry for the given id.
var ErrNotFound = errors.New("catalog: entry not found")

type Provider interface {
	GetAlbum(ctx context.Context, id string) (*domain.Album, error)
	GetSong(ctx context.Context, id string) (*domain.Track, error)
	SearchAlbums(ctx context.Context, query string) ([]domain.Album, error)
	SearchSongs(ctx context.Context, query string) ([]domain.Track, error)
}
