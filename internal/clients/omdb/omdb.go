// Package omdb fetches movie metadata by IMDb id from an OMDb-style
// HTTP API. The consumed contract is small: title and imdbID are
// required (their absence means "not found", not an error), everything
// else is optional and may arrive as the literal "N/A".
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"movieweekly/proj/internal/domain/builders"
)

var ErrMovieNotFound = errors.New("movie not found")

type Client struct {
	log          *slog.Logger
	apiKey       string
	baseURL      string
	http         *http.Client
	retriesCount int
}

func New(log *slog.Logger, apiKey, baseURL string, timeout time.Duration, retriesCount int) *Client {
	if retriesCount < 1 {
		retriesCount = 1
	}
	return &Client{
		log:          log,
		apiKey:       apiKey,
		baseURL:      baseURL,
		http:         &http.Client{Timeout: timeout},
		retriesCount: retriesCount,
	}
}

// record mirrors the flat OMDb response shape.
type record struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Rated    string `json:"Rated"`
	Released string `json:"Released"`
	Runtime  string `json:"Runtime"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Writer   string `json:"Writer"`
	Actors   string `json:"Actors"`
	Plot     string `json:"Plot"`
	Language string `json:"Language"`
	Country  string `json:"Country"`
	Poster   string `json:"Poster"`
	ImdbID   string `json:"imdbID"`
	Response string `json:"Response"`
}

// FindByImdbID returns the raw metadata as builder input values.
func (c *Client) FindByImdbID(ctx context.Context, imdbID string) (builders.Values, error) {
	const op = "omdb.Client.FindByImdbID"
	log := c.log.With("op", op, "imdbId", imdbID)
	endpoint := fmt.Sprintf("%s/?apikey=%s&i=%s", c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(imdbID))
	var lastErr error
	for attempt := 1; attempt <= c.retriesCount; attempt++ {
		rec, err := c.fetch(ctx, endpoint)
		if err != nil {
			log.Warn("metadata fetch failed", "attempt", attempt, "errMsg", err.Error())
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if rec.Response == "False" || rec.Title == "" || rec.ImdbID == "" {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		return recordToValues(rec), nil
	}
	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata api responded with status %d", resp.StatusCode)
	}
	var rec record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func recordToValues(rec *record) builders.Values {
	values := builders.Values{}
	put := func(key, value string) {
		// "N/A" is how the feed spells an absent field.
		if value != "" && value != "N/A" {
			values[key] = value
		}
	}
	put("imdbId", rec.ImdbID)
	put("title", rec.Title)
	put("year", rec.Year)
	put("rated", rec.Rated)
	put("released", rec.Released)
	put("runtime", rec.Runtime)
	put("genre", rec.Genre)
	put("director", rec.Director)
	put("writer", rec.Writer)
	put("actors", rec.Actors)
	put("plot", rec.Plot)
	put("language", rec.Language)
	put("country", rec.Country)
	put("poster", rec.Poster)
	return values
}
