package catalog

import (
	"testing"
)

func testMapper(prefs Preferences) *Mapper {
	if prefs.VAName == "" {
		prefs.VAName = "Various artists"
	}
	if prefs.Language == "" {
		prefs.Language = LangEnglish
	}
	return NewMapper(VocaDB, prefs)
}

func TestExtractASIN(t *testing.T) {
	tests := []struct {
		name  string
		links []APIWebLink
		want  string
	}{
		{
			name: "plain amazon link",
			links: []APIWebLink{
				{Description: "Amazon", URL: "https://www.amazon.co.jp/dp/B000ABC123/ref=x"},
			},
			want: "B000ABC123",
		},
		{
			name: "edition-qualified description",
			links: []APIWebLink{
				{Description: "Amazon (JP) limited", URL: "https://x/dp/B000ABC123/ref"},
			},
			want: "B000ABC123",
		},
		{
			name: "disabled link skipped",
			links: []APIWebLink{
				{Description: "Amazon (JP)", URL: "https://x/dp/B000ABC123/ref", Disabled: true},
			},
			want: "",
		},
		{
			name: "non-amazon description skipped",
			links: []APIWebLink{
				{Description: "CDJapan", URL: "https://x/dp/B000ABC123"},
			},
			want: "",
		},
		{
			name: "url at end of path",
			links: []APIWebLink{
				{Description: "Amazon", URL: "https://www.amazon.com/dp/B01XYZ"},
			},
			want: "B01XYZ",
		},
		{
			name: "first matching link wins",
			links: []APIWebLink{
				{Description: "Amazon", URL: "https://amazon.com/gp/product/nope"},
				{Description: "Amazon (US)", URL: "https://amazon.com/dp/B0FIRST/"},
				{Description: "Amazon", URL: "https://amazon.com/dp/B0SECOND/"},
			},
			want: "B0FIRST",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractASIN(tt.links); got != tt.want {
				t.Errorf("Expected ASIN %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExtractLabel(t *testing.T) {
	credits := []APIArtistCredit{
		credit("wowaka", 101, "Producer", "Default", false),
		{
			// Credited under an alias; the canonical entry spells it
			// differently and must not win.
			Name:       "BALLOOM Records",
			Categories: "Label",
			Artist:     &APIArtist{ID: 300, Name: "BALLOOM"},
		},
		credit("EXIT TUNES", 301, "Label", "", false),
	}

	if got := extractLabel(credits); got != "BALLOOM Records" {
		t.Errorf("Expected as-credited label name BALLOOM Records, got %q", got)
	}

	// An empty credit name falls back to the canonical artist entry.
	nameless := []APIArtistCredit{
		{Categories: "Label", Artist: &APIArtist{ID: 300, Name: "BALLOOM"}},
	}
	if got := extractLabel(nameless); got != "BALLOOM" {
		t.Errorf("Expected canonical fallback BALLOOM, got %q", got)
	}

	if got := extractLabel(nil); got != "" {
		t.Errorf("Expected empty label for no credits, got %q", got)
	}
}

func TestAlbumInfo(t *testing.T) {
	m := testMapper(Preferences{IgnoreVideoTracks: true})
	raw := &APIAlbum{
		ID:   1234,
		Name: "Unhappy Refrain",
		Artists: []APIArtistCredit{
			credit("wowaka", 101, "Producer", "Default", false),
			credit("Hatsune Miku", 1, "Vocalist", "", false),
			credit("BALLOOM", 300, "Label", "", false),
		},
		CatalogNumber: "DGLB-10002",
		DiscType:      "Album",
		ReleaseDate:   APIReleaseDate{Year: 2011, Month: 5, Day: 18},
		Tags: []APITagUsage{
			{Count: 7, Tag: APITag{Name: "rock", CategoryName: "Genres"}},
		},
		Tracks: []APISongInAlbum{
			{DiscNumber: 1, TrackNumber: 1, Song: &APISong{ID: 9001, Name: "Unhappy Refrain", LengthSeconds: 235}},
		},
		WebLinks: []APIWebLink{
			{Description: "Amazon", URL: "https://www.amazon.co.jp/dp/B004XDAVPQ/"},
		},
	}

	album := m.AlbumInfo(raw)

	if album.ID != "1234" {
		t.Errorf("Expected album id 1234, got %s", album.ID)
	}
	if album.Artist != "wowaka" {
		t.Errorf("Expected display artist wowaka, got %q", album.Artist)
	}
	if album.ArtistID != "101" {
		t.Errorf("Expected artist id 101, got %q", album.ArtistID)
	}
	if album.ASIN != "B004XDAVPQ" {
		t.Errorf("Expected ASIN B004XDAVPQ, got %q", album.ASIN)
	}
	if album.Label != "BALLOOM" {
		t.Errorf("Expected label BALLOOM, got %q", album.Label)
	}
	if album.Year != 2011 || album.Month != 5 || album.Day != 18 {
		t.Errorf("Expected release 2011-05-18, got %d-%d-%d", album.Year, album.Month, album.Day)
	}
	if album.Genre != "Rock" {
		t.Errorf("Expected genre Rock, got %q", album.Genre)
	}
	if album.VariousArtists {
		t.Error("Expected single-producer album not flagged VA")
	}
	if album.Mediums != 1 {
		t.Errorf("Expected 1 medium, got %d", album.Mediums)
	}
	if album.DataSource != "VocaDB" {
		t.Errorf("Expected data source VocaDB, got %q", album.DataSource)
	}
	if album.DataURL != "https://vocadb.net/Al/1234" {
		t.Errorf("Expected canonical album URL, got %q", album.DataURL)
	}
	if len(album.Tracks) != 1 {
		t.Fatalf("Expected 1 track, got %d", len(album.Tracks))
	}
	track := album.Tracks[0]
	if track.DataURL != "https://vocadb.net/S/9001" {
		t.Errorf("Expected canonical song URL, got %q", track.DataURL)
	}
	// Track without own genre inherits the album's.
	if track.Genre != "Rock" {
		t.Errorf("Expected track to inherit album genre, got %q", track.Genre)
	}
}

func TestAlbumInfo_EmptyReleaseDate(t *testing.T) {
	m := testMapper(Preferences{})
	album := m.AlbumInfo(&APIAlbum{
		ID:          1,
		Name:        "Undated",
		ReleaseDate: APIReleaseDate{IsEmpty: true, Year: 2020},
	})

	if album.Year != 0 || album.Month != 0 || album.Day != 0 {
		t.Errorf("Expected empty release date to clear all parts, got %d-%d-%d", album.Year, album.Month, album.Day)
	}
}

func TestAlbumInfo_CompilationFlag(t *testing.T) {
	m := testMapper(Preferences{})
	album := m.AlbumInfo(&APIAlbum{ID: 2, Name: "EXIT TUNES PRESENTS", DiscType: "Compilation"})

	if !album.VariousArtists {
		t.Error("Expected Compilation disc type to set the VA flag")
	}
	if album.Artist != "Various artists" {
		t.Errorf("Expected VA display string, got %q", album.Artist)
	}
}

func TestAlbumInfo_VAFlagFromDisplayString(t *testing.T) {
	// An untagged compilation whose categorizer output collapses to the VA
	// label still gets flagged.
	m := testMapper(Preferences{})
	credits := make([]APIArtistCredit, 0, 6)
	for i, name := range []string{"A", "B", "C", "D", "E", "F"} {
		credits = append(credits, credit(name, i+1, "Producer", "", false))
	}
	album := m.AlbumInfo(&APIAlbum{ID: 3, Name: "Big Split", DiscType: "Album", Artists: credits})

	if !album.VariousArtists {
		t.Error("Expected VA flag when display collapses to the VA label")
	}
}

func TestAlbumInfo_EmptyAlbum(t *testing.T) {
	m := testMapper(Preferences{})
	album := m.AlbumInfo(&APIAlbum{ID: 4, Name: "Empty"})

	if album == nil {
		t.Fatal("Expected an album record even with zero tracks")
	}
	if len(album.Tracks) != 0 {
		t.Errorf("Expected no tracks, got %d", len(album.Tracks))
	}
}

func TestTrackInfo(t *testing.T) {
	m := testMapper(Preferences{Language: LangJapanese})
	song := &APISong{
		ID:   9002,
		Name: "Rolling Girl",
		Artists: []APIArtistCredit{
			credit("wowaka", 101, "Producer", "Default", false),
			credit("Hatsune Miku", 1, "Vocalist", "", false),
		},
		LengthSeconds: 195,
		MaxMilliBPM:   164500,
		PublishDate:   "2010-02-14T00:00:00Z",
		Lyrics: []APILyrics{
			{TranslationType: "Original", Value: "lyrics", CultureCodes: []string{"ja"}},
		},
	}

	track := m.TrackInfo(song, "CD", 1, 2, 12, 2)

	if track.BPM != "164" {
		t.Errorf("Expected BPM 164, got %q", track.BPM)
	}
	if track.Composer != "wowaka" || track.Arranger != "wowaka" || track.Lyricist != "wowaka" {
		t.Errorf("Expected Default role to fill all role strings, got %q/%q/%q", track.Composer, track.Arranger, track.Lyricist)
	}
	if track.Artist != "wowaka feat. Hatsune Miku" {
		t.Errorf("Expected track display with vocalist, got %q", track.Artist)
	}
	if track.OriginalYear != 2010 || track.OriginalMonth != 2 || track.OriginalDay != 14 {
		t.Errorf("Expected publish date 2010-02-14, got %d-%d-%d", track.OriginalYear, track.OriginalMonth, track.OriginalDay)
	}
	if track.Script != "Jpan" || track.Language != "jpn" || track.Lyrics != "lyrics" {
		t.Errorf("Expected Japanese lyrics selection, got %s/%s/%q", track.Script, track.Language, track.Lyrics)
	}
	if track.Medium != 1 || track.MediumIndex != 2 || track.MediumTotal != 12 || track.Index != 2 {
		t.Errorf("Unexpected placement: medium %d index %d total %d album index %d", track.Medium, track.MediumIndex, track.MediumTotal, track.Index)
	}
}

func TestTrackInfo_ZeroBPM(t *testing.T) {
	m := testMapper(Preferences{})
	track := m.SongInfo(&APISong{ID: 1, Name: "No BPM"})

	if track.BPM != "" {
		t.Errorf("Expected no BPM string for zero maxMilliBpm, got %q", track.BPM)
	}
	if track.Index != 0 {
		t.Errorf("Expected standalone song index 0, got %d", track.Index)
	}
}

func TestIdentityByName(t *testing.T) {
	id, err := IdentityByName("touhoudb")
	if err != nil {
		t.Fatalf("Expected case-insensitive lookup to succeed: %v", err)
	}
	if id.Name != "TouhouDB" {
		t.Errorf("Expected TouhouDB, got %s", id.Name)
	}

	if _, err := IdentityByName("spotify"); err == nil {
		t.Error("Expected unknown catalog to error")
	}

	if got := UtaiteDB.SongURL(42); got != "https://utaiteadb.net/S/42" {
		t.Errorf("Unexpected UtaiteDB song URL: %s", got)
	}
}
