package tagging

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"

	"github.com/prism-rei/vocatag/internal/constants"
	"github.com/prism-rei/vocatag/internal/domain"
)

// TagFile writes the normalized album/track metadata into the audio file at
// filePath. coverData is optional front-cover image bytes (JPEG).
func TagFile(filePath string, album *domain.Album, track *domain.Track, coverData []byte) error {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case constants.ExtFLAC:
		return tagFLAC(filePath, album, track, coverData)
	case constants.ExtMP3:
		return tagMP3(filePath, album, track, coverData)
	default:
		return fmt.Errorf("unsupported file format: %s", filepath.Ext(filePath))
	}
}

// vorbisFields builds the Vorbis comment field list for one track. Kept
// separate from the file rewrite so it can be tested without audio files.
func vorbisFields(album *domain.Album, track *domain.Track) [][2]string {
	var fields [][2]string
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, [2]string{name, value})
		}
	}

	add("TITLE", track.Title)
	// Multiple artists get individual ARTIST tags (recommended by Vorbis spec).
	if len(track.Artists) > 0 {
		for _, a := range track.Artists {
			add("ARTIST", a)
		}
	} else {
		add("ARTIST", track.Artist)
	}
	add("ALBUM", album.Title)
	add("ALBUMARTIST", album.Artist)

	if track.MediumIndex > 0 {
		add("TRACKNUMBER", strconv.Itoa(track.MediumIndex))
	}
	if track.MediumTotal > 0 {
		add("TRACKTOTAL", strconv.Itoa(track.MediumTotal))
	}
	if track.Medium > 0 {
		add("DISCNUMBER", strconv.Itoa(track.Medium))
	}
	if album.Mediums > 0 {
		add("DISCTOTAL", strconv.Itoa(album.Mediums))
	}

	add("DATE", formatDate(album.Year, album.Month, album.Day))
	add("ORIGINALDATE", formatDate(track.OriginalYear, track.OriginalMonth, track.OriginalDay))

	add("GENRE", track.Genre)
	add("COMPOSER", track.Composer)
	add("ARRANGER", track.Arranger)
	add("LYRICIST", track.Lyricist)
	add("BPM", track.BPM)
	add("LABEL", album.Label)
	add("CATALOGNUMBER", album.CatalogNumber)
	add("MEDIA", track.Media)
	add("ASIN", album.ASIN)
	add("SCRIPT", track.Script)
	add("LANGUAGE", track.Language)
	add("LYRICS", track.Lyrics)
	if album.VariousArtists {
		add("COMPILATION", "1")
	}

	add("DATA_SOURCE", track.DataSource)
	add("SOURCE_ALBUM_ID", album.ID)
	add("SOURCE_TRACK_ID", track.ID)
	for _, id := range track.ArtistIDs {
		add("SOURCE_ARTIST_ID", id)
	}
	return fields
}

// formatDate renders the most precise ISO date the parts allow: year,
// year-month, or full date. Missing year means no date at all.
func formatDate(year, month, day int) string {
	switch {
	case year <= 0:
		return ""
	case month <= 0:
		return strconv.Itoa(year)
	case day <= 0:
		return fmt.Sprintf("%04d-%02d", year, month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}
}

// tagFLAC replaces the Vorbis comment and picture blocks on a FLAC file,
// leaving all other metadata blocks and the audio frames untouched.
func tagFLAC(filePath string, album *domain.Album, track *domain.Track, coverData []byte) error {
	f, err := flac.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	cmt := flacvorbis.New()
	for _, field := range vorbisFields(album, track) {
		if err := cmt.Add(field[0], field[1]); err != nil {
			return fmt.Errorf("failed to add vorbis field %s: %w", field[0], err)
		}
	}
	cmtBlock := cmt.Marshal()

	var meta []*flac.MetaDataBlock
	for _, block := range f.Meta {
		if block.Type == flac.VorbisComment || block.Type == flac.Picture {
			continue
		}
		meta = append(meta, block)
	}
	meta = append(meta, &cmtBlock)

	if len(coverData) > 0 {
		pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Front cover", coverData, "image/jpeg")
		if err != nil {
			return fmt.Errorf("failed to build picture block: %w", err)
		}
		picBlock := pic.Marshal()
		meta = append(meta, &picBlock)
	}

	f.Meta = meta
	if err := f.Save(filePath); err != nil {
		return fmt.Errorf("failed to save FLAC file: %w", err)
	}
	return nil
}

func tagMP3(filePath string, album *domain.Album, track *domain.Track, coverData []byte) error {
	tag, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open MP3 file: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	if track.Title != "" {
		tag.SetTitle(track.Title)
	}
	if len(track.Artists) > 0 {
		tag.AddTextFrame("TPE1", tag.DefaultEncoding(), strings.Join(track.Artists, "\x00"))
	} else if track.Artist != "" {
		tag.SetArtist(track.Artist)
	}
	if album.Title != "" {
		tag.SetAlbum(album.Title)
	}
	if album.Artist != "" {
		tag.AddTextFrame(tag.CommonID("Band/Orchestra/Accompaniment"), tag.DefaultEncoding(), album.Artist)
	}
	if track.Genre != "" {
		tag.SetGenre(track.Genre)
	}

	if track.MediumIndex > 0 {
		trackStr := strconv.Itoa(track.MediumIndex)
		if track.MediumTotal > 0 {
			trackStr = fmt.Sprintf("%d/%d", track.MediumIndex, track.MediumTotal)
		}
		tag.AddTextFrame(tag.CommonID("Track number/Position in set"), tag.DefaultEncoding(), trackStr)
	}
	if track.Medium > 0 {
		discStr := strconv.Itoa(track.Medium)
		if album.Mediums > 0 {
			discStr = fmt.Sprintf("%d/%d", track.Medium, album.Mediums)
		}
		tag.AddTextFrame(tag.CommonID("Part of a set"), tag.DefaultEncoding(), discStr)
	}

	if date := formatDate(album.Year, album.Month, album.Day); date != "" {
		tag.AddTextFrame("TDRC", tag.DefaultEncoding(), date)
	}
	if date := formatDate(track.OriginalYear, track.OriginalMonth, track.OriginalDay); date != "" {
		tag.AddTextFrame("TDOR", tag.DefaultEncoding(), date)
	}

	if track.Composer != "" {
		tag.AddTextFrame(tag.CommonID("Composer"), tag.DefaultEncoding(), track.Composer)
	}
	if track.Lyricist != "" {
		tag.AddTextFrame(tag.CommonID("Lyricist/Text writer"), tag.DefaultEncoding(), track.Lyricist)
	}
	if track.BPM != "" {
		tag.AddTextFrame(tag.CommonID("BPM"), tag.DefaultEncoding(), track.BPM)
	}
	if album.Label != "" {
		tag.AddTextFrame(tag.CommonID("Publisher"), tag.DefaultEncoding(), album.Label)
	}
	if album.VariousArtists {
		tag.AddTextFrame("TCMP", tag.DefaultEncoding(), "1")
	}

	for _, txxx := range []struct{ desc, value string }{
		{"ARRANGER", track.Arranger},
		{"CATALOGNUMBER", album.CatalogNumber},
		{"MEDIA", track.Media},
		{"ASIN", album.ASIN},
		{"SCRIPT", track.Script},
		{"DATA_SOURCE", track.DataSource},
		{"SOURCE_ALBUM_ID", album.ID},
		{"SOURCE_TRACK_ID", track.ID},
	} {
		if txxx.value == "" {
			continue
		}
		tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    id3v2.EncodingUTF8,
			Description: txxx.desc,
			Value:       txxx.value,
		})
	}

	if track.Lyrics != "" {
		tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
			Encoding:          id3v2.EncodingUTF8,
			Language:          usltLanguage(track.Language),
			ContentDescriptor: "",
			Lyrics:            track.Lyrics,
		})
	}

	if len(coverData) > 0 {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Front cover",
			Picture:     coverData,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save MP3 tags: %w", err)
	}
	return nil
}

// usltLanguage maps a track language tag onto the 3-byte code the USLT
// frame requires. "und" is the ISO 639-2 undetermined code.
func usltLanguage(language string) string {
	if len(language) == 3 {
		return language
	}
	return "und"
}
