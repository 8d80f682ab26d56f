package catalog

import (
	"sort"

	"github.com/prism-rei/vocatag/internal/domain"
)

// Script/language sentinels for albums that mix scripts across tracks.
const (
	ScriptMultiple   = "Qaaa"
	LanguageMultiple = "mul"
)

// TrackMapper builds one normalized track from an embedded song and its
// placement on the album.
type TrackMapper func(song *APISong, media string, medium, mediumIndex, mediumTotal, albumIndex int) *domain.Track

// ReconcileTracks flattens an album's disc/track structure into an ordered
// track list and unifies the album-level script and language tags. Video
// discs are dropped wholesale when ignoreVideo is set, and albums without
// a disc list get one synthesized Audio disc per disc number seen in the
// tracks.
func ReconcileTracks(songs []APISongInAlbum, discs []APIDisc, ignoreVideo bool, mapTrack TrackMapper) (tracks []*domain.Track, script, language string) {
	if len(discs) == 0 {
		discs = synthesizeDiscs(songs)
	}

	albumIndex := 0
	for _, disc := range discs {
		if (disc.MediaType == MediaTypeVideo && ignoreVideo) || len(songs) == 0 {
			continue
		}
		total := 0
		var onDisc []APISongInAlbum
		for _, s := range songs {
			if s.DiscNumber != disc.DiscNumber {
				continue
			}
			if s.TrackNumber > total {
				total = s.TrackNumber
			}
			if s.Song != nil {
				onDisc = append(onDisc, s)
			}
		}
		sort.SliceStable(onDisc, func(i, j int) bool {
			return onDisc[i].TrackNumber < onDisc[j].TrackNumber
		})
		for _, s := range onDisc {
			albumIndex++
			t := mapTrack(s.Song, disc.Name, disc.DiscNumber, s.TrackNumber, total, albumIndex)
			if t != nil {
				tracks = append(tracks, t)
			}
		}
	}

	script, language = unifyScripts(tracks)
	return tracks, script, language
}

// synthesizeDiscs fills in the disc list for albums whose upstream entry
// omits it: one Audio disc named "CD" per disc number up to the highest
// seen.
func synthesizeDiscs(songs []APISongInAlbum) []APIDisc {
	max := 0
	for _, s := range songs {
		if s.DiscNumber > max {
			max = s.DiscNumber
		}
	}
	discs := make([]APIDisc, 0, max)
	for n := 1; n <= max; n++ {
		discs = append(discs, APIDisc{DiscNumber: n, MediaType: MediaTypeAudio, Name: "CD"})
	}
	return discs
}

// unifyScripts walks the track list once: the first non-empty script seeds
// the album value, and any later disagreement flips it permanently to the
// multiple-scripts sentinel. A flipped album rewrites every track, since a
// mixed-script album makes no single track's claim trustworthy.
func unifyScripts(tracks []*domain.Track) (script, language string) {
	for _, t := range tracks {
		if t.Script == "" {
			continue
		}
		if script == "" {
			script = t.Script
			language = t.Language
		} else if t.Script != script && script != ScriptMultiple {
			script = ScriptMultiple
			language = LanguageMultiple
		}
	}
	if script == ScriptMultiple {
		for _, t := range tracks {
			t.Script = ScriptMultiple
			t.Language = LanguageMultiple
		}
	}
	return script, language
}
