package catalog

import (
	"strconv"
	"strings"
)

// CreditMap is an ordered mapping of artist name to artist id. Insertion
// order is first-seen order; adding an existing name keeps the first id.
type CreditMap struct {
	names []string
	ids   map[string]string
}

func NewCreditMap() *CreditMap {
	return &CreditMap{ids: make(map[string]string)}
}

func (m *CreditMap) Add(name, id string) {
	if _, ok := m.ids[name]; ok {
		return
	}
	m.names = append(m.names, name)
	m.ids[name] = id
}

func (m *CreditMap) Has(name string) bool {
	_, ok := m.ids[name]
	return ok
}

func (m *CreditMap) ID(name string) string {
	return m.ids[name]
}

func (m *CreditMap) Len() int {
	return len(m.names)
}

// Names returns the insertion-ordered name list. The slice is shared;
// callers must not mutate it.
func (m *CreditMap) Names() []string {
	return m.names
}

func (m *CreditMap) clone() *CreditMap {
	c := NewCreditMap()
	for _, name := range m.names {
		c.Add(name, m.ids[name])
	}
	return c
}

// CategorizedArtists holds the six role buckets a credit list sorts into.
type CategorizedArtists struct {
	Producers *CreditMap
	Circles   *CreditMap
	Vocalists *CreditMap
	Arrangers *CreditMap
	Composers *CreditMap
	Lyricists *CreditMap
}

func newCategorizedArtists() CategorizedArtists {
	return CategorizedArtists{
		Producers: NewCreditMap(),
		Circles:   NewCreditMap(),
		Vocalists: NewCreditMap(),
		Arrangers: NewCreditMap(),
		Composers: NewCreditMap(),
		Lyricists: NewCreditMap(),
	}
}

// ArtistInfo is the categorizer's result: the synthesized display string,
// the id to file the record under, the merged credit lists, and the raw
// buckets for callers that need per-role strings.
type ArtistInfo struct {
	Display     string
	PrimaryID   string
	Names       []string
	IDs         []string
	Categorized CategorizedArtists
}

// maxDisplayArtists caps how many names the display string spells out
// before collapsing to the various-artists label.
const maxDisplayArtists = 5

// CategorizeArtists sorts raw artist credits into role buckets and builds
// the album/track artist fields from them. Support credits and credits
// categorized Nothing or Label stay in the buckets but never appear in the
// display string.
func CategorizeArtists(credits []APIArtistCredit, includeFeatured, isCompilation bool, vaName string) ArtistInfo {
	cat := newCategorizedArtists()
	notCreditable := make(map[string]bool)

	for _, credit := range credits {
		name, id := resolveCredit(credit)
		if name == "" {
			continue
		}
		if credit.IsSupport || credit.HasCategory(CategoryNothing) || credit.HasCategory(CategoryLabel) {
			notCreditable[name] = true
		}
		if credit.HasCategory(CategoryProducer) || credit.HasCategory(CategoryBand) {
			cat.Producers.Add(name, id)
			if credit.HasRole(RoleDefault) {
				cat.Arrangers.Add(name, id)
				cat.Composers.Add(name, id)
				cat.Lyricists.Add(name, id)
			}
		}
		if credit.HasCategory(CategoryCircle) {
			cat.Circles.Add(name, id)
		}
		if credit.HasCategory(CategoryVocalist) {
			cat.Vocalists.Add(name, id)
		}
		if credit.HasRole(RoleArranger) {
			cat.Arrangers.Add(name, id)
		}
		if credit.HasRole(RoleComposer) {
			cat.Composers.Add(name, id)
		}
		if credit.HasRole(RoleLyricist) {
			cat.Lyricists.Add(name, id)
		}
	}

	if cat.Producers.Len() == 0 && cat.Vocalists.Len() > 0 {
		cat.Producers = cat.Vocalists.clone()
	}
	if cat.Arrangers.Len() == 0 {
		cat.Arrangers = cat.Producers.clone()
	}
	if cat.Composers.Len() == 0 {
		cat.Composers = cat.Producers.clone()
	}
	if cat.Lyricists.Len() == 0 {
		cat.Lyricists = cat.Producers.clone()
	}

	var mainArtists []string
	if isCompilation {
		mainArtists = []string{vaName}
	} else {
		seen := make(map[string]bool)
		for _, name := range append(append([]string{}, cat.Producers.Names()...), cat.Circles.Names()...) {
			if notCreditable[name] || seen[name] {
				continue
			}
			seen[name] = true
			mainArtists = append(mainArtists, name)
		}
		if len(mainArtists) == 0 {
			mainArtists = creditableNames(cat.Vocalists, notCreditable)
		}
	}

	display := strings.Join(mainArtists, ", ")
	if len(mainArtists) > maxDisplayArtists {
		display = vaName
	}

	var featured []string
	if includeFeatured && cat.Vocalists.Len() > 0 && (isCompilation || len(mainArtists) > 0) {
		featured = creditableNames(cat.Vocalists, notCreditable)
		if len(featured) > 0 && len(mainArtists)+len(featured) <= maxDisplayArtists {
			display += " feat. " + strings.Join(featured, ", ")
		}
	}

	merged := NewCreditMap()
	for _, bucket := range []*CreditMap{cat.Producers, cat.Circles, cat.Vocalists, cat.Arrangers, cat.Composers, cat.Lyricists} {
		for _, name := range bucket.Names() {
			merged.Add(name, bucket.ID(name))
		}
	}
	names := merged.Names()
	ids := make([]string, len(names))
	for i, name := range names {
		ids[i] = merged.ID(name)
	}

	return ArtistInfo{
		Display:     display,
		PrimaryID:   primaryArtistID(mainArtists, featured, merged),
		Names:       names,
		IDs:         ids,
		Categorized: cat,
	}
}

// resolveCredit prefers the linked canonical artist over the credit's own
// alias; unlinked credits carry no id.
func resolveCredit(credit APIArtistCredit) (name, id string) {
	if credit.Artist != nil && credit.Artist.Name != "" {
		return credit.Artist.Name, strconv.Itoa(credit.Artist.ID)
	}
	return credit.Name, ""
}

func creditableNames(bucket *CreditMap, notCreditable map[string]bool) []string {
	var out []string
	for _, name := range bucket.Names() {
		if !notCreditable[name] {
			out = append(out, name)
		}
	}
	return out
}

// primaryArtistID picks the id to key the record by: the first display
// artist with a known id, falling back to any known id at all.
func primaryArtistID(mainArtists, featured []string, merged *CreditMap) string {
	for _, name := range append(append([]string{}, mainArtists...), featured...) {
		if id := merged.ID(name); id != "" {
			return id
		}
	}
	for _, name := range merged.Names() {
		if id := merged.ID(name); id != "" {
			return id
		}
	}
	return ""
}
