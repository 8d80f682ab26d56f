package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prism-rei/vocatag/internal/constants"
	"github.com/prism-rei/vocatag/internal/domain"
	"github.com/prism-rei/vocatag/internal/httpclient"
	"github.com/prism-rei/vocatag/internal/logger"
)

// Client fetches records from one catalog's REST API and maps them to
// domain records. Requests go through the shared rate-limited HTTP client;
// the lang parameter asks the API to localize entry names up front.
type Client struct {
	identity   CatalogIdentity
	mapper     *Mapper
	http       *httpclient.Client
	lang       string
	maxResults int
	log        *logger.Logger
}

func NewClient(identity CatalogIdentity, prefs Preferences, httpClient *httpclient.Client, maxResults int, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = httpclient.NewClient(nil, time.Second)
	}
	if maxResults <= 0 {
		maxResults = constants.DefaultMaxResults
	}
	return &Client{
		identity:   identity,
		mapper:     NewMapper(identity, prefs),
		http:       httpClient,
		lang:       string(prefs.Language),
		maxResults: maxResults,
		log:        log.WithCatalog(identity.Name),
	}
}

func (c *Client) GetAlbum(ctx context.Context, id string) (*domain.Album, error) {
	var raw APIAlbum
	params := url.Values{}
	params.Set("fields", constants.AlbumFields)
	params.Set("songFields", constants.SongFields)
	params.Set("lang", c.lang)
	if err := c.get(ctx, "albums/"+id, params, &raw); err != nil {
		return nil, fmt.Errorf("get album %s: %w", id, err)
	}
	return c.mapper.AlbumInfo(&raw), nil
}

func (c *Client) GetSong(ctx context.Context, id string) (*domain.Track, error) {
	var raw APISong
	params := url.Values{}
	params.Set("fields", constants.SongFields)
	params.Set("lang", c.lang)
	if err := c.get(ctx, "songs/"+id, params, &raw); err != nil {
		return nil, fmt.Errorf("get song %s: %w", id, err)
	}
	return c.mapper.SongInfo(&raw), nil
}

// SearchAlbums returns lightweight album summaries; callers follow up with
// GetAlbum for the full record.
func (c *Client) SearchAlbums(ctx context.Context, query string) ([]domain.Album, error) {
	var result APIAlbumSearchResult
	params := url.Values{}
	params.Set("query", query)
	params.Set("maxResults", strconv.Itoa(c.maxResults))
	params.Set("nameMatchMode", "Auto")
	params.Set("lang", c.lang)
	if err := c.get(ctx, "albums", params, &result); err != nil {
		return nil, fmt.Errorf("search albums %q: %w", query, err)
	}

	albums := make([]domain.Album, 0, len(result.Items))
	for _, item := range result.Items {
		album := domain.Album{
			ID:         strconv.Itoa(item.ID),
			Title:      item.Name,
			Artist:     item.ArtistString,
			AlbumType:  item.DiscType,
			DataSource: c.identity.Name,
			DataURL:    c.identity.AlbumURL(item.ID),
		}
		if !item.ReleaseDate.IsEmpty {
			album.Year = item.ReleaseDate.Year
			album.Month = item.ReleaseDate.Month
			album.Day = item.ReleaseDate.Day
		}
		albums = append(albums, album)
	}
	return albums, nil
}

func (c *Client) SearchSongs(ctx context.Context, query string) ([]domain.Track, error) {
	var result APISongSearchResult
	params := url.Values{}
	params.Set("query", query)
	params.Set("maxResults", strconv.Itoa(c.maxResults))
	params.Set("nameMatchMode", "Auto")
	params.Set("fields", constants.SongFields)
	params.Set("lang", c.lang)
	if err := c.get(ctx, "songs", params, &result); err != nil {
		return nil, fmt.Errorf("search songs %q: %w", query, err)
	}

	tracks := make([]domain.Track, 0, len(result.Items))
	for i := range result.Items {
		tracks = append(tracks, *c.mapper.SongInfo(&result.Items[i]))
	}
	return tracks, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, target interface{}) error {
	u := c.identity.APIURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	c.log.Debug("API request", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

var _ Provider = (*Client)(nil)
