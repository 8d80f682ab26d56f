package catalog

import (
	"fmt"
	"strings"
)

// CatalogIdentity names one of the supported metadata catalogs and where
// its site and API live. BaseURL carries a trailing slash so entry paths
// like "Al/123" can be appended directly.
type CatalogIdentity struct {
	Name    string
	BaseURL string
	APIURL  string
}

var (
	VocaDB = CatalogIdentity{
		Name:    "VocaDB",
		BaseURL: "https://vocadb.net/",
		APIURL:  "https://vocadb.net/api/",
	}
	TouhouDB = CatalogIdentity{
		Name:    "TouhouDB",
		BaseURL: "https://touhoudb.com/",
		APIURL:  "https://touhoudb.com/api/",
	}
	// UtaiteDB serves its site and API from different hosts.
	UtaiteDB = CatalogIdentity{
		Name:    "UtaiteDB",
		BaseURL: "https://utaiteadb.net/",
		APIURL:  "https://utaitedb.net/api/",
	}
)

var identities = []CatalogIdentity{VocaDB, TouhouDB, UtaiteDB}

// IdentityByName resolves a catalog by name, case-insensitively.
func IdentityByName(name string) (CatalogIdentity, error) {
	for _, id := range identities {
		if strings.EqualFold(id.Name, name) {
			return id, nil
		}
	}
	return CatalogIdentity{}, fmt.Errorf("unknown catalog %q", name)
}

// AlbumURL returns the public page URL for an album entry.
func (c CatalogIdentity) AlbumURL(id int) string {
	return fmt.Sprintf("%sAl/%d", c.BaseURL, id)
}

// SongURL returns the public page URL for a song entry.
func (c CatalogIdentity) SongURL(id int) string {
	return fmt.Sprintf("%sS/%d", c.BaseURL, id)
}
