// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort         = "8080"
	DefaultDBPath       = "vocatag.db"
	DefaultCatalog      = "VocaDB"
	DefaultVAName       = "Various artists"
	DefaultMaxResults   = 5
	DefaultConcurrency  = 2
	DefaultPollInterval = 2 * time.Second
	DefaultHTTPTimeout  = 10 * time.Second
	DefaultRetryCount   = 3
	DefaultRetryBase    = 1 * time.Second
	DefaultCacheTTL     = 12 * time.Hour
	UserAgent           = "vocatag/1.0 (+https://github.com/prism-rei/vocatag)"
)

// Optional-field selectors sent to the catalog API
const (
	AlbumFields = "Artists,Discs,Tags,Tracks,WebLinks"
	SongFields  = "Artists,CultureCodes,Tags,Bpm,Lyrics"
)

// Database
const (
	JobsTable  = "jobs"
	CacheTable = "cache"
)

// File Extensions
const (
	ExtFLAC = ".flac"
	ExtMP3  = ".mp3"
)

// Cover art filenames probed inside an album directory
var CoverFilenames = []string{"cover.jpg", "folder.jpg", "front.jpg"}

// Listing limits
const (
	MaxJobListItems = 50
)
