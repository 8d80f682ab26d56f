package catalog

import "strings"

// Artist category and role tags as the catalog API spells them. Categories
// and effective roles arrive as comma-separated strings on each credit.
const (
	CategoryProducer = "Producer"
	CategoryBand     = "Band"
	CategoryCircle   = "Circle"
	CategoryVocalist = "Vocalist"
	CategoryLabel    = "Label"
	CategoryNothing  = "Nothing"

	RoleArranger = "Arranger"
	RoleComposer = "Composer"
	RoleLyricist = "Lyricist"
	RoleDefault  = "Default"
)

const (
	TranslationOriginal  = "Original"
	TranslationRomanized = "Romanized"

	MediaTypeAudio = "Audio"
	MediaTypeVideo = "Video"

	DiscTypeCompilation = "Compilation"
)

// LanguagePreference selects which upstream name/lyrics language wins.
type LanguagePreference string

const (
	LangEnglish  LanguagePreference = "English"
	LangJapanese LanguagePreference = "Japanese"
	LangRomaji   LanguagePreference = "Romaji"
	LangDefault  LanguagePreference = "Default"
)

type APIArtist struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ArtistType string `json:"artistType,omitempty"`
}

// APIArtistCredit is one artist's contribution record on an album or song.
// Artist points at the canonical artist entry when the credit is linked;
// unlinked credits only carry Name.
type APIArtistCredit struct {
	Artist         *APIArtist `json:"artist,omitempty"`
	Name           string     `json:"name"`
	Categories     string     `json:"categories"`
	EffectiveRoles string     `json:"effectiveRoles"`
	Roles          string     `json:"roles,omitempty"`
	IsSupport      bool       `json:"isSupport"`
}

// HasCategory reports whether the credit carries the given category tag.
func (c APIArtistCredit) HasCategory(category string) bool {
	return hasTag(c.Categories, category)
}

// HasRole reports whether the credit carries the given effective role tag.
func (c APIArtistCredit) HasRole(role string) bool {
	return hasTag(c.EffectiveRoles, role)
}

// hasTag matches one tag inside a comma-separated tag list.
func hasTag(list, tag string) bool {
	for _, item := range strings.Split(list, ",") {
		if strings.TrimSpace(item) == tag {
			return true
		}
	}
	return false
}

type APITag struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryName,omitempty"`
}

type APITagUsage struct {
	Count int    `json:"count"`
	Tag   APITag `json:"tag"`
}

type APILyrics struct {
	TranslationType string   `json:"translationType"`
	Value           string   `json:"value"`
	CultureCodes    []string `json:"cultureCodes"`
}

type APIDisc struct {
	DiscNumber int    `json:"discNumber"`
	MediaType  string `json:"mediaType"`
	Name       string `json:"name,omitempty"`
}

type APIReleaseDate struct {
	IsEmpty bool `json:"isEmpty"`
	Year    int  `json:"year,omitempty"`
	Month   int  `json:"month,omitempty"`
	Day     int  `json:"day,omitempty"`
}

type APIWebLink struct {
	Category    string `json:"category,omitempty"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Disabled    bool   `json:"disabled"`
}

type APISong struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	Artists       []APIArtistCredit `json:"artists"`
	LengthSeconds float64           `json:"lengthSeconds"`
	Lyrics        []APILyrics       `json:"lyrics"`
	MaxMilliBPM   int               `json:"maxMilliBpm,omitempty"`
	PublishDate   string            `json:"publishDate,omitempty"`
	SongType      string            `json:"songType,omitempty"`
	Tags          []APITagUsage     `json:"tags"`
}

// APISongInAlbum places a song on a disc. Song is nil when the referenced
// entry is missing upstream; such tracks are skipped.
type APISongInAlbum struct {
	DiscNumber  int      `json:"discNumber"`
	TrackNumber int      `json:"trackNumber"`
	Name        string   `json:"name,omitempty"`
	Song        *APISong `json:"song,omitempty"`
}

type APIAlbum struct {
	ID            int               `json:"id"`
	Name          string            `json:"name"`
	Artists       []APIArtistCredit `json:"artists"`
	CatalogNumber string            `json:"catalogNumber,omitempty"`
	DiscType      string            `json:"discType"`
	Discs         []APIDisc         `json:"discs"`
	ReleaseDate   APIReleaseDate    `json:"releaseDate"`
	Tags          []APITagUsage     `json:"tags"`
	Tracks        []APISongInAlbum  `json:"tracks"`
	WebLinks      []APIWebLink      `json:"webLinks"`
}

// Search results come back without the heavyweight optional fields.

type APIAlbumSearchItem struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	ArtistString string         `json:"artistString"`
	DiscType     string         `json:"discType"`
	ReleaseDate  APIReleaseDate `json:"releaseDate"`
}

type APIAlbumSearchResult struct {
	Items      []APIAlbumSearchItem `json:"items"`
	TotalCount int                  `json:"totalCount"`
	Term       string               `json:"term,omitempty"`
}

type APISongSearchResult struct {
	Items      []APISong `json:"items"`
	TotalCount int       `json:"totalCount"`
	Term       string    `json:"term,omitempty"`
}
