// Package raiderio provides the HTTP client for the Raider.io character
// profile endpoint.
//
// Raider.io is public and unauthenticated but rate limited, so requests go
// through a token bucket limiter.
package raiderio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// profileFields selects the payload sections the dashboard renders: gear
// summary, current-season Mythic+ scores, and the Mythic+ rank table.
const profileFields = "gear,mythic_plus_scores_by_season:current,mythic_plus_ranks"

// ErrNotFound is returned when the provider answers but the character does
// not exist under the requested spelling.
var ErrNotFound = errors.New("raiderio: character not found")

// Client is the HTTP client for the Raider.io API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Raider.io HTTP client with rate limiting.
func NewClient(baseURL string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// GetCharacter fetches a character profile. The three identity parameters
// are sent exactly as given — casing and encoding fallbacks are the caller's
// concern, since the provider is inconsistent about both.
func (c *Client) GetCharacter(ctx context.Context, region, realm, name string) (*Character, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("region", region)
	params.Set("realm", realm)
	params.Set("name", name)
	params.Set("fields", profileFields)
	u := c.baseURL + "/characters/profile?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request characters/profile: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("raiderio characters/profile returned %d: %s",
			resp.StatusCode, truncate(body, 200))
	}

	var character Character
	if err := json.Unmarshal(body, &character); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &character, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
