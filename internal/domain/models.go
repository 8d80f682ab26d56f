package domain

import "time"

// Album is a catalog album normalized for library import. Optional fields
// use their zero value when the upstream record omits them.
type Album struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Artist         string   `json:"artist"`
	ArtistID       string   `json:"artist_id,omitempty"`
	Artists        []string `json:"artists"`
	ArtistIDs      []string `json:"artist_ids"`
	Tracks         []Track  `json:"tracks"`
	ASIN           string   `json:"asin,omitempty"`
	AlbumType      string   `json:"album_type,omitempty"`
	AlbumTypes     []string `json:"album_types,omitempty"`
	VariousArtists bool     `json:"various_artists"`
	Year           int      `json:"year,omitempty"`
	Month          int      `json:"month,omitempty"`
	Day            int      `json:"day,omitempty"`
	Label          string   `json:"label,omitempty"`
	Mediums        int      `json:"mediums"`
	CatalogNumber  string   `json:"catalog_number,omitempty"`
	Genre          string   `json:"genre,omitempty"`
	Media          string   `json:"media,omitempty"`
	Script         string   `json:"script,omitempty"`
	Language       string   `json:"language,omitempty"`
	DataSource     string   `json:"data_source"`
	DataURL        string   `json:"data_url"`
}

// Track is a single normalized track. Index is the 1-based position within
// the album; it is 0 for standalone songs looked up outside an album.
type Track struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Artist        string   `json:"artist"`
	ArtistID      string   `json:"artist_id,omitempty"`
	Artists       []string `json:"artists"`
	ArtistIDs     []string `json:"artist_ids"`
	Length        float64  `json:"length"`
	Index         int      `json:"index,omitempty"`
	Media         string   `json:"media,omitempty"`
	Medium        int      `json:"medium,omitempty"`
	MediumIndex   int      `json:"medium_index,omitempty"`
	MediumTotal   int      `json:"medium_total,omitempty"`
	Arranger      string   `json:"arranger,omitempty"`
	Composer      string   `json:"composer,omitempty"`
	Lyricist      string   `json:"lyricist,omitempty"`
	BPM           string   `json:"bpm,omitempty"`
	Genre         string   `json:"genre,omitempty"`
	Script        string   `json:"script,omitempty"`
	Language      string   `json:"language,omitempty"`
	Lyrics        string   `json:"lyrics,omitempty"`
	OriginalYear  int      `json:"original_year,omitempty"`
	OriginalMonth int      `json:"original_month,omitempty"`
	OriginalDay   int      `json:"original_day,omitempty"`
	DataSource    string   `json:"data_source"`
	DataURL       string   `json:"data_url"`
}

type JobType string

const (
	JobTypeTagAlbum JobType = "tag_album"
)

type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Job represents a tag-sync work item in the queue.
type Job struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	Error     *string   `json:"error,omitempty" db:"error"`
	ID        string    `json:"id" db:"id"`
	Type      JobType   `json:"type" db:"type"`
	Status    JobStatus `json:"status" db:"status"`
	SourceID  string    `json:"source_id" db:"source_id"`
	TargetDir string    `json:"target_dir" db:"target_dir"`
	Progress  float64   `json:"progress" db:"progress"`
}

// Active reports whether the job still needs worker attention.
func (j *Job) Active() bool {
	return j.Status == JobStatusQueued || j.Status == JobStatusRunning
}
