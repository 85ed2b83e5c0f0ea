package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// WikidataClient resolves vernacular names in two steps: the Wikipedia API
// maps a scientific name to its wikibase item id (following redirects), then
// the Wikidata API returns the English and German entity labels.
type WikidataClient struct {
	WikipediaURL string
	WikidataURL  string
	Client       *Client
}

var _ VernacularResolver = (*WikidataClient)(nil)

type wikipediaQueryResponse struct {
	Query struct {
		Pages map[string]struct {
			PageProps struct {
				WikibaseItem string `json:"wikibase_item"`
			} `json:"pageprops"`
		} `json:"pages"`
	} `json:"query"`
}

type wikidataEntitiesResponse struct {
	Entities map[string]struct {
		Labels map[string]struct {
			Value string `json:"value"`
		} `json:"labels"`
	} `json:"entities"`
}

// Vernacular implements VernacularResolver.
func (c *WikidataClient) Vernacular(ctx context.Context, scientificName string) (*Vernacular, error) {
	itemID, err := c.wikibaseItem(ctx, scientificName)
	if err != nil {
		return nil, fmt.Errorf("resolving wikibase item for %q: %w", scientificName, err)
	}

	q := url.Values{}
	q.Set("action", "wbgetentities")
	q.Set("props", "labels")
	q.Set("ids", itemID)
	q.Set("languages", "de|en")
	q.Set("format", "json")

	var resp wikidataEntitiesResponse
	if err := c.Client.getJSON(ctx, c.WikidataURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetching labels for %s: %w", itemID, err)
	}
	entity, ok := resp.Entities[itemID]
	if !ok {
		return nil, fmt.Errorf("no entity %s in wikidata response", itemID)
	}
	v := &Vernacular{
		English: entity.Labels["en"].Value,
		German:  entity.Labels["de"].Value,
	}
	if v.English == "" && v.German == "" {
		return nil, fmt.Errorf("no labels for %s", itemID)
	}
	return v, nil
}

// wikibaseItem resolves a page title to its wikibase item id. The title query
// and the pageprops query are separate calls because the redirect resolution
// rewrites the page id.
func (c *WikidataClient) wikibaseItem(ctx context.Context, title string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("prop", "redirects")
	q.Set("titles", title)
	q.Set("redirects", "true")
	q.Set("format", "json")

	var pages struct {
		Query struct {
			Pages map[string]json.RawMessage `json:"pages"`
		} `json:"query"`
	}
	if err := c.Client.getJSON(ctx, c.WikipediaURL+"?"+q.Encode(), &pages); err != nil {
		return "", err
	}
	var pageID string
	for id := range pages.Query.Pages {
		pageID = id
		break
	}
	if pageID == "" || pageID == "-1" {
		return "", fmt.Errorf("no page for %q", title)
	}

	q = url.Values{}
	q.Set("action", "query")
	q.Set("prop", "pageprops")
	q.Set("pageids", pageID)
	q.Set("format", "json")

	var props wikipediaQueryResponse
	if err := c.Client.getJSON(ctx, c.WikipediaURL+"?"+q.Encode(), &props); err != nil {
		return "", err
	}
	item := props.Query.Pages[pageID].PageProps.WikibaseItem
	if item == "" {
		return "", fmt.Errorf("page %s has no wikibase item", pageID)
	}
	return item, nil
}
