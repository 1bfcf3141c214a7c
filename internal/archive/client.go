// Package archive reads player profiles and monthly game archives from the
// chess.com public API.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moveAnalyzer/internal/model"
)

const (
	DefaultBaseURL   = "https://api.chess.com/pub"
	DefaultUserAgent = "moveAnalyzer/1.0 (+https://github.com/vishwanath79/moveanalyzer)"
)

// Config holds archive API connection settings.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client fetches player data from the archive API. Each call issues a
// single request; there are no retries.
type Client struct {
	HTTPClient *http.Client
	Config     Config
}

// NewClient returns a client for cfg with its own HTTP transport.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{Config: cfg, HTTPClient: newHTTPClient(cfg.Timeout)}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

type archiveList struct {
	Archives []string `json:"archives"`
}

type monthlyArchive struct {
	Games []json.RawMessage `json:"games"`
}

// FetchPlayerMeta returns the public profile of username.
func (c *Client) FetchPlayerMeta(ctx context.Context, username string) (model.PlayerMeta, error) {
	var meta model.PlayerMeta
	if err := c.getJSON(ctx, "player", c.playerURL(username), &meta); err != nil {
		return model.PlayerMeta{}, err
	}
	return meta, nil
}

// FetchLatestArchive returns the raw game entries of the most recent monthly
// archive of username. An empty archive list yields no entries and no error.
func (c *Client) FetchLatestArchive(ctx context.Context, username string) ([]json.RawMessage, error) {
	var list archiveList
	if err := c.getJSON(ctx, "archives", c.playerURL(username)+"/games/archives", &list); err != nil {
		return nil, err
	}
	if len(list.Archives) == 0 {
		return nil, nil
	}

	latest := list.Archives[len(list.Archives)-1]
	var month monthlyArchive
	if err := c.getJSON(ctx, "games", latest, &month); err != nil {
		return nil, err
	}
	return month.Games, nil
}

func (c *Client) playerURL(username string) string {
	return fmt.Sprintf("%s/player/%s", c.Config.BaseURL, url.PathEscape(strings.ToLower(strings.TrimSpace(username))))
}

func (c *Client) getJSON(ctx context.Context, op, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &FetchError{Op: op, URL: u, Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &FetchError{Op: op, URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &FetchError{
			Op:         op,
			URL:        u,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Op: op, URL: u, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode %s: %w", op, err)}
	}
	return nil
}
