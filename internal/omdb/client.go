// Package omdb is the movie lookup: a thin client for the OMDb API that
// turns every failure into a uniform "not found".
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL = "http://www.omdbapi.com/"
	maxErrorBody   = 512
	lookupWorkers  = 4
)

// ErrNotFound is the only error Lookup returns.  The underlying cause is
// logged, never surfaced.
var ErrNotFound = errors.New("movie not found")

// Rating is one entry of the OMDb Ratings array.
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Movie mirrors the OMDb "by id" response.
type Movie struct {
	Title      string   `json:"Title"`
	Year       string   `json:"Year"`
	Rated      string   `json:"Rated"`
	Released   string   `json:"Released"`
	Runtime    string   `json:"Runtime"`
	Genre      string   `json:"Genre"`
	Director   string   `json:"Director"`
	Writer     string   `json:"Writer"`
	Actors     string   `json:"Actors"`
	Plot       string   `json:"Plot"`
	Language   string   `json:"Language"`
	Country    string   `json:"Country"`
	Awards     string   `json:"Awards"`
	Poster     string   `json:"Poster"`
	Ratings    []Rating `json:"Ratings"`
	Metascore  string   `json:"Metascore"`
	IMDbRating string   `json:"imdbRating"`
	IMDbVotes  string   `json:"imdbVotes"`
	IMDbID     string   `json:"imdbID"`
	Type       string   `json:"Type"`
	DVD        string   `json:"DVD,omitempty"`
	BoxOffice  string   `json:"BoxOffice,omitempty"`
	Production string   `json:"Production,omitempty"`
	Website    string   `json:"Website,omitempty"`
	Response   string   `json:"Response"`
	Error      string   `json:"Error,omitempty"`
}

// APIError is the cause logged when OMDb answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("omdb http error: %s: %s", e.Status, e.Body)
}

// ResponseError is the cause logged when OMDb answers Response "False".
type ResponseError struct {
	Message string
}

func (e *ResponseError) Error() string {
	return "omdb api error: " + e.Message
}

// Client wraps HTTP access to OMDb.  It performs a single request per lookup
// and keeps no cache.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *zap.Logger
}

// NewClient creates a client.  If httpClient is nil a client with the given
// timeout is used; a nil logger disables logging.
func NewClient(baseURL, apiKey string, timeout time.Duration, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{httpClient: httpClient, baseURL: baseURL, apiKey: apiKey, log: log}
}

// Lookup fetches the movie with the given IMDb id.  A non-2xx status, a
// transport or decoding failure and a Response "False" payload all yield
// ErrNotFound after logging the detail.
func (c *Client) Lookup(ctx context.Context, imdbID string) (*Movie, error) {
	m, err := c.fetch(ctx, imdbID)
	if err != nil {
		c.log.Warn("movie lookup failed", zap.String("imdb_id", imdbID), zap.Error(err))
		return nil, ErrNotFound
	}
	return m, nil
}

// LookupMany looks the ids up concurrently and returns the movies that were
// found, in the order of ids.  Failures are dropped.
func (c *Client) LookupMany(ctx context.Context, ids []string) []Movie {
	found := make([]*Movie, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupWorkers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if m, err := c.Lookup(gctx, id); err == nil {
				found[i] = m
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Movie, 0, len(ids))
	for _, m := range found {
		if m != nil {
			out = append(out, *m)
		}
	}
	return out
}

func (c *Client) fetch(ctx context.Context, imdbID string) (*Movie, error) {
	if strings.TrimSpace(imdbID) == "" {
		return nil, errors.New("imdb id is required")
	}
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := endpoint.Query()
	q.Set("i", imdbID)
	q.Set("apikey", c.apiKey)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: strings.TrimSpace(string(body))}
	}

	var m Movie
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if m.Response != "True" {
		return nil, &ResponseError{Message: m.Error}
	}
	return &m, nil
}
