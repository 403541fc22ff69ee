package flickr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	// Registered decoders for thumbnail validation
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"flickgrid/internal/domain"
)

const (
	// DefaultEndpoint is the public search API endpoint.
	DefaultEndpoint = "https://api.flickr.com/services/rest/"

	// PageSize is the fixed number of results requested per search.
	PageSize = 20

	searchMethod = "flickr.photos.search"
)

// Client performs photo searches and image fetches against a Flickr
// compatible API.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new search client. The endpoint defaults to the public
// API when empty. No request timeout is imposed beyond the transport default.
func NewClient(endpoint, apiKey string, logger *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Search runs one remote search and returns the completed result set: every
// delivered photo already carries its thumbnail. Envelope-level failures
// (transport, parse, API failure) abort the whole call; failures of
// individual entries or thumbnail fetches drop the entry silently. A search
// that matches nothing succeeds with an empty set.
func (c *Client) Search(ctx context.Context, term string) (*domain.SearchResultSet, error) {
	escaped := escapeTerm(term)
	if escaped == "" {
		return nil, domain.ErrInvalidQuery
	}

	reqURL := fmt.Sprintf("%s?method=%s&api_key=%s&text=%s&per_page=%d&format=json&nojsoncallback=1",
		c.endpoint, searchMethod, url.QueryEscape(c.apiKey), escaped, PageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}

	c.logger.Debug("search request", "term", term)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("search request failed", "term", term, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}

	var envelope searchEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Error("search response parse error", "error", err, "bodyLen", len(body))
		return nil, domain.ErrMalformedResponse
	}

	switch envelope.Stat {
	case "ok":
	case "fail":
		c.logger.Error("search API failure", "term", term, "code", envelope.Code, "message", envelope.Message)
		return nil, domain.ErrAPIFailure
	default:
		return nil, domain.ErrMalformedResponse
	}

	if envelope.Photos == nil || envelope.Photos.Photo == nil {
		return nil, domain.ErrMalformedResponse
	}

	photos := mapPhotos(*envelope.Photos.Photo)

	// Thumbnails are fetched one at a time in response order. A photo whose
	// thumbnail cannot be fetched or decoded is dropped from the set.
	set := &domain.SearchResultSet{Term: term}
	for _, photo := range photos {
		buf, err := c.fetchImage(ctx, ThumbnailURL(photo.Descriptor))
		if err != nil {
			c.logger.Debug("dropping photo, thumbnail unavailable", "id", photo.Descriptor.ID, "error", err)
			continue
		}
		photo.SetThumbnail(buf)
		set.Photos = append(set.Photos, photo)
	}

	c.logger.Debug("search complete", "term", term, "results", len(set.Photos))
	return set, nil
}

// FetchLargeImage downloads the large image variant for a descriptor. Each
// call performs an independent fetch; there is no caching or request de-dup.
func (c *Client) FetchLargeImage(ctx context.Context, desc domain.PhotoDescriptor) ([]byte, error) {
	buf, err := c.fetchImage(ctx, LargeImageURL(desc))
	if err != nil {
		c.logger.Error("large image fetch failed", "id", desc.ID, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrImageFetch, err)
	}
	return buf, nil
}

// fetchImage downloads one image and verifies the bytes decode as an image.
func (c *Client) fetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(buf)); err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return buf, nil
}

// escapeTerm percent-encodes everything except ASCII letters and digits,
// mirroring the alphanumeric-safe encoding the query contract requires.
// Only an empty term escapes to an empty string.
func escapeTerm(term string) string {
	var b strings.Builder
	for i := 0; i < len(term); i++ {
		ch := term[i]
		switch {
		case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
			b.WriteByte(ch)
		default:
			fmt.Fprintf(&b, "%%%02X", ch)
		}
	}
	return b.String()
}
