package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/radio4000/r4fs/internal/option"
)

// SupabaseCatalog talks to a Supabase PostgREST endpoint over plain
// net/http, following the same "baseURL + http.Client{Timeout}"
// client shape the rest of the pack uses for external HTTP APIs
// (compare Zzhihon-Bt1QFM's netease.Client). Outbound requests are
// rate-limited courteously, the same pattern sherlockholmesat221b's
// musicbrainz/dab clients use for their upstream APIs.
type SupabaseCatalog struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSupabaseCatalog constructs a client against the given Supabase
// project URL (e.g. "https://xyz.supabase.co") and anon/service key.
func NewSupabaseCatalog(baseURL, apiKey string) *SupabaseCatalog {
	return &SupabaseCatalog{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		// A handful of requests per second is ample for a filesystem
		// whose only callers are VFS callbacks and the download worker.
		limiter: rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
	}
}

func (c *SupabaseCatalog) StorageBaseURL() string {
	return c.baseURL
}

type channelRow struct {
	Slug        string  `json:"slug"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	URL         *string `json:"url"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (r channelRow) toChannel() Channel {
	return Channel{
		Slug:        r.Slug,
		Name:        option.FromString(deref(r.Name)),
		Description: option.FromString(deref(r.Description)),
		Image:       option.FromString(deref(r.Image)),
		WebsiteURL:  option.FromString(deref(r.URL)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type trackRow struct {
	ID          *string  `json:"id"`
	Title       *string  `json:"title"`
	URL         string   `json:"url"`
	Description *string  `json:"description"`
	DiscogsURL  *string  `json:"discogs_url"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Tags        []string `json:"tags"`
}

func (r trackRow) toTrack() Track {
	return Track{
		ID:          option.FromString(deref(r.ID)),
		Title:       option.FromString(deref(r.Title)),
		URL:         r.URL,
		Description: option.FromString(deref(r.Description)),
		DiscogsURL:  option.FromString(deref(r.DiscogsURL)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Tags:        r.Tags,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (c *SupabaseCatalog) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request %s: status %d", u, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", u, err)
	}
	return nil
}

func (c *SupabaseCatalog) Channels(ctx context.Context) ([]Channel, error) {
	var rows []channelRow
	if err := c.get(ctx, "/rest/v1/channels", url.Values{
		"select": {"slug,name,description,image,url,created_at,updated_at"},
	}, &rows); err != nil {
		return nil, err
	}
	out := make([]Channel, len(rows))
	for i, r := range rows {
		out[i] = r.toChannel()
	}
	return out, nil
}

func (c *SupabaseCatalog) Channel(ctx context.Context, slug string) (Channel, error) {
	var rows []channelRow
	if err := c.get(ctx, "/rest/v1/channels", url.Values{
		"select": {"slug,name,description,image,url,created_at,updated_at"},
		"slug":   {"eq." + slug},
		"limit":  {"1"},
	}, &rows); err != nil {
		return Channel{}, err
	}
	if len(rows) == 0 {
		return Channel{}, fmt.Errorf("channel %q not found", slug)
	}
	return rows[0].toChannel(), nil
}

func (c *SupabaseCatalog) Tracks(ctx context.Context, channelSlug string) ([]Track, error) {
	var rows []trackRow
	if err := c.get(ctx, "/rest/v1/tracks", url.Values{
		"select":       {"id,title,url,description,discogs_url,created_at,updated_at,tags"},
		"channel_slug": {"eq." + channelSlug},
		"order":        {"created_at.desc"},
	}, &rows); err != nil {
		return nil, err
	}
	out := make([]Track, len(rows))
	for i, r := range rows {
		out[i] = r.toTrack()
	}
	return out, nil
}
