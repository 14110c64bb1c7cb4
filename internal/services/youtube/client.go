package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vidboard/vidboard/internal/config"
)

// ErrVideoNotFound is returned when the Data API has no item for a video ID.
var ErrVideoNotFound = errors.New("video details not found")

// Client fetches video metadata from the YouTube Data API. A single attempt
// per call; the HTTP client timeout bounds every request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg *config.YouTubeConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

type videoListResponse struct {
	Items []VideoDetails `json:"items"`
}

// GetVideoDetails requests snippet, contentDetails and statistics parts for
// the given video ID and returns the first item unmodified.
func (c *Client) GetVideoDetails(ctx context.Context, videoID string) (*VideoDetails, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", videoID)
	params.Set("key", c.apiKey)

	requestURL := fmt.Sprintf("%s/videos?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build video details request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("video details request returned status %d", resp.StatusCode)
	}

	var list videoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode video details response: %w", err)
	}

	if len(list.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	return &list.Items[0], nil
}
