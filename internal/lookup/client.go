// Package lookup holds the clients for the three external enrichment
// services consulted during an import: scientific-name lineage resolution
// (Open Tree of Life), vernacular-name lookup (Wikipedia/Wikidata) and
// DOI-based citation formatting (doi.org content negotiation).
//
// Each service is a one-method capability interface so builders can be
// tested against fakes returning canned data.
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Rank names in senior-to-junior order as used across the taxonomy pipeline.
var Ranks = []string{"phylum", "class", "order", "family", "genus", "species", "subspecies"}

// RankEntry is one resolved rank of a lineage.
type RankEntry struct {
	Name  string
	OttID int64
}

// Lineage is the ranked lineage of a scientific name. Any rank may be absent.
type Lineage struct {
	entries map[string]*RankEntry
}

// NewLineage builds a lineage from rank name to entry. Unknown rank names are
// dropped.
func NewLineage(entries map[string]*RankEntry) *Lineage {
	l := &Lineage{entries: make(map[string]*RankEntry, len(entries))}
	for _, rank := range Ranks {
		if e, ok := entries[rank]; ok && e != nil {
			l.entries[rank] = e
		}
	}
	return l
}

// At returns the entry for the given rank, or nil when the lineage has none.
func (l *Lineage) At(rank string) *RankEntry {
	if l == nil {
		return nil
	}
	return l.entries[rank]
}

// Vernacular holds localized common names for a taxon.
type Vernacular struct {
	English string
	German  string
}

// LineageResolver resolves a scientific name to its ranked lineage.
type LineageResolver interface {
	Lineage(ctx context.Context, scientificName string) (*Lineage, error)
}

// VernacularResolver resolves a scientific name to its common names.
type VernacularResolver interface {
	Vernacular(ctx context.Context, scientificName string) (*Vernacular, error)
}

// CitationResolver resolves a DOI to long- and short-form citation text.
type CitationResolver interface {
	Citations(ctx context.Context, doi string) (long, short string, err error)
}

// Client is the shared HTTP plumbing for all lookup services: one timeout and
// one bounded retry-with-backoff policy. External services are flaky enough
// that a single run sees transient failures, but they must never hang the
// whole import.
type Client struct {
	HTTP    *http.Client
	Retries int
	Backoff time.Duration
}

// NewClient returns a Client with the given per-request timeout and retry
// policy.
func NewClient(timeout time.Duration, retries int, backoff time.Duration) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		Retries: retries,
		Backoff: backoff,
	}
}

// do sends the request built by build, retrying on transport errors and 5xx
// responses. The backoff doubles per attempt. Responses with other non-2xx
// statuses fail immediately: retrying a 404 does not help.
func (c *Client) do(ctx context.Context, build func() (*http.Request, error)) ([]byte, error) {
	backoff := c.Backoff
	var lastErr error
	for attempt := 0; attempt <= c.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		req, err := build()
		if err != nil {
			return nil, err
		}
		resp, err := c.HTTP.Do(req.WithContext(ctx))
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("status %d from %s", resp.StatusCode, req.URL)
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("status %d from %s", resp.StatusCode, req.URL)
		}
		return body, nil
	}
	return nil, fmt.Errorf("lookup failed after %d attempts: %w", c.Retries+1, lastErr)
}

// postJSON posts a JSON body to url and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request for %s: %w", url, err)
	}
	raw, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

// getJSON fetches url and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	raw, err := c.do(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, url, nil)
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

// getText fetches url with the given Accept header and returns the trimmed
// response body.
func (c *Client) getText(ctx context.Context, url, accept string) (string, error) {
	raw, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", accept)
		return req, nil
	})
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(raw)), nil
}
