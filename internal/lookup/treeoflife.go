package lookup

import (
	"context"
	"fmt"
	"strings"
)

// TreeOfLifeClient resolves scientific names against the Open Tree of Life
// API in two calls: tnrs/match_names for the ott_id, then taxonomy/taxon_info
// with the full lineage included.
type TreeOfLifeClient struct {
	BaseURL string
	Client  *Client
}

var _ LineageResolver = (*TreeOfLifeClient)(nil)

type tnrsResponse struct {
	Results []struct {
		Matches []struct {
			Taxon struct {
				OttID int64 `json:"ott_id"`
			} `json:"taxon"`
		} `json:"matches"`
	} `json:"results"`
}

type taxonInfoResponse struct {
	Name    string `json:"name"`
	Rank    string `json:"rank"`
	OttID   int64  `json:"ott_id"`
	Lineage []struct {
		Name  string `json:"name"`
		Rank  string `json:"rank"`
		OttID int64  `json:"ott_id"`
	} `json:"lineage"`
}

// Lineage implements LineageResolver.
func (c *TreeOfLifeClient) Lineage(ctx context.Context, scientificName string) (*Lineage, error) {
	ottID, err := c.ottID(ctx, scientificName)
	if err != nil {
		return nil, fmt.Errorf("resolving ott id for %q: %w", scientificName, err)
	}

	var info taxonInfoResponse
	payload := map[string]any{"ott_id": ottID, "include_lineage": true}
	if err := c.Client.postJSON(ctx, c.url("taxonomy/taxon_info"), payload, &info); err != nil {
		return nil, fmt.Errorf("fetching lineage for ott id %d: %w", ottID, err)
	}

	// The queried taxon itself carries a rank too; it is usually the species
	// or subspecies entry.
	entries := map[string]*RankEntry{}
	if info.Rank != "" {
		entries[info.Rank] = &RankEntry{Name: info.Name, OttID: info.OttID}
	}
	for _, anc := range info.Lineage {
		if _, seen := entries[anc.Rank]; !seen {
			entries[anc.Rank] = &RankEntry{Name: anc.Name, OttID: anc.OttID}
		}
	}
	return NewLineage(entries), nil
}

// ottID calls the taxonomic name resolution service with exact matching.
func (c *TreeOfLifeClient) ottID(ctx context.Context, scientificName string) (int64, error) {
	var resp tnrsResponse
	payload := map[string]any{
		"names":                   []string{scientificName},
		"do_approximate_matching": false,
	}
	if err := c.Client.postJSON(ctx, c.url("tnrs/match_names"), payload, &resp); err != nil {
		return 0, err
	}
	if len(resp.Results) == 0 || len(resp.Results[0].Matches) == 0 {
		return 0, fmt.Errorf("no match for %q", scientificName)
	}
	return resp.Results[0].Matches[0].Taxon.OttID, nil
}

func (c *TreeOfLifeClient) url(path string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + path
}
