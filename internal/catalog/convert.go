package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/prism-rei/vocatag/internal/domain"
)

// Preferences are the caller-resolved knobs every mapping call receives.
// They are passed by value; nothing in the mapper mutates them.
type Preferences struct {
	VAName                      string
	Language                    LanguagePreference
	TranslatedLyrics            bool
	IncludeFeaturedAlbumArtists bool
	IgnoreVideoTracks           bool
}

// Mapper converts raw catalog records into normalized domain records. One
// mapper is built per configured catalog; it holds no per-call state, so a
// single instance is safe for concurrent use.
type Mapper struct {
	identity CatalogIdentity
	prefs    Preferences
}

func NewMapper(identity CatalogIdentity, prefs Preferences) *Mapper {
	return &Mapper{identity: identity, prefs: prefs}
}

var (
	amazonDescRe = regexp.MustCompile(`^Amazon( \((LE|RE|JP|US)\).*)?$`)
	asinRe       = regexp.MustCompile(`/dp/(.+?)(/|$)`)
)

// AlbumInfo maps one raw album to its normalized form. Tracks whose
// embedded song is missing are skipped; an album that ends up with zero
// tracks is still returned, with an empty track list.
func (m *Mapper) AlbumInfo(raw *APIAlbum) *domain.Album {
	comp := raw.DiscType == DiscTypeCompilation
	info := CategorizeArtists(raw.Artists, m.prefs.IncludeFeaturedAlbumArtists, comp, m.prefs.VAName)

	discs := raw.Discs
	if len(discs) == 0 {
		discs = synthesizeDiscs(raw.Tracks)
	}
	tracks, script, language := ReconcileTracks(raw.Tracks, discs, m.prefs.IgnoreVideoTracks, m.TrackInfo)

	album := &domain.Album{
		ID:             strconv.Itoa(raw.ID),
		Title:          raw.Name,
		Artist:         info.Display,
		ArtistID:       info.PrimaryID,
		Artists:        info.Names,
		ArtistIDs:      info.IDs,
		ASIN:           extractASIN(raw.WebLinks),
		AlbumType:      raw.DiscType,
		VariousArtists: comp || info.Display == m.prefs.VAName,
		Label:          extractLabel(raw.Artists),
		Mediums:        len(discs),
		CatalogNumber:  raw.CatalogNumber,
		Genre:          AggregateGenres(raw.Tags),
		Script:         script,
		Language:       language,
		DataSource:     m.identity.Name,
		DataURL:        m.identity.AlbumURL(raw.ID),
	}
	if raw.DiscType != "" {
		album.AlbumTypes = []string{raw.DiscType}
	}
	if len(discs) > 0 {
		album.Media = discs[0].Name
	}
	if !raw.ReleaseDate.IsEmpty {
		album.Year = raw.ReleaseDate.Year
		album.Month = raw.ReleaseDate.Month
		album.Day = raw.ReleaseDate.Day
	}

	album.Tracks = make([]domain.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Genre == "" {
			t.Genre = album.Genre
		}
		album.Tracks = append(album.Tracks, *t)
	}
	return album
}

// TrackInfo maps one raw song placed on an album. The medium arguments
// describe the disc placement; albumIndex is the running 1-based position
// across the whole album.
func (m *Mapper) TrackInfo(song *APISong, media string, medium, mediumIndex, mediumTotal, albumIndex int) *domain.Track {
	info := CategorizeArtists(song.Artists, true, false, m.prefs.VAName)
	script, language, lyrics := SelectLyrics(song.Lyrics, m.prefs.Language, m.prefs.TranslatedLyrics)

	track := &domain.Track{
		ID:          strconv.Itoa(song.ID),
		Title:       song.Name,
		Artist:      info.Display,
		ArtistID:    info.PrimaryID,
		Artists:     info.Names,
		ArtistIDs:   info.IDs,
		Length:      song.LengthSeconds,
		Index:       albumIndex,
		Media:       media,
		Medium:      medium,
		MediumIndex: mediumIndex,
		MediumTotal: mediumTotal,
		Arranger:    strings.Join(info.Categorized.Arrangers.Names(), ", "),
		Composer:    strings.Join(info.Categorized.Composers.Names(), ", "),
		Lyricist:    strings.Join(info.Categorized.Lyricists.Names(), ", "),
		Genre:       AggregateGenres(song.Tags),
		Script:      script,
		Language:    language,
		Lyrics:      lyrics,
		DataSource:  m.identity.Name,
		DataURL:     m.identity.SongURL(song.ID),
	}
	if song.MaxMilliBPM > 0 {
		track.BPM = strconv.Itoa(song.MaxMilliBPM / 1000)
	}
	if song.PublishDate != "" {
		if published, err := time.Parse(time.RFC3339, song.PublishDate); err == nil {
			track.OriginalYear = published.Year()
			track.OriginalMonth = int(published.Month())
			track.OriginalDay = published.Day()
		}
	}
	return track
}

// SongInfo maps a song looked up outside any album. It carries no medium
// placement and a zero index.
func (m *Mapper) SongInfo(song *APISong) *domain.Track {
	return m.TrackInfo(song, "", 0, 0, 0, 0)
}

// extractASIN scans web links for an enabled Amazon product link and pulls
// the ASIN out of its /dp/ path segment. The first link that matches both
// patterns wins.
func extractASIN(links []APIWebLink) string {
	for _, link := range links {
		if link.Disabled || !amazonDescRe.MatchString(link.Description) {
			continue
		}
		if m := asinRe.FindStringSubmatch(link.URL); m != nil {
			return m[1]
		}
	}
	return ""
}

// extractLabel returns the as-credited name of the first Label-category
// credit. The credit's own name is kept even when the canonical artist
// entry spells it differently.
func extractLabel(credits []APIArtistCredit) string {
	for _, credit := range credits {
		if credit.HasCategory(CategoryLabel) {
			if credit.Name != "" {
				return credit.Name
			}
			name, _ := resolveCredit(credit)
			return name
		}
	}
	return ""
}
