package mediastore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// resourcePage models one page of the catalog listing.
type resourcePage struct {
	Resources []struct {
		PublicID string `json:"public_id"`
	} `json:"resources"`
	NextCursor string `json:"next_cursor"`
}

// ListAll walks the paginated video catalog and returns every identifier,
// in page order then in-page order. A failed page fetch aborts the
// enumeration with an error instead of silently truncating the listing.
func (s *implStore) ListAll(ctx context.Context) ([]string, error) {
	var ids []string
	cursor := ""

	for {
		page, err := s.fetchPage(ctx, cursor)
		if err != nil {
			return nil, err
		}

		for _, res := range page.Resources {
			ids = append(ids, res.PublicID)
		}

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	s.logger.Debug(ctx, "Catalog enumeration finished: %d videos", len(ids))
	return ids, nil
}

func (s *implStore) fetchPage(ctx context.Context, cursor string) (*resourcePage, error) {
	endpoint, err := url.Parse(fmt.Sprintf("%s/v1_1/%s/resources/video", s.apiBaseURL, s.cfg.CloudName))
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	params := url.Values{}
	params.Set("type", "upload")
	params.Set("max_results", strconv.Itoa(pageSize))
	if cursor != "" {
		params.Set("next_cursor", cursor)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.SetBasicAuth(s.cfg.APIKey, s.cfg.APISecret)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog listing returned %d", resp.StatusCode)
	}

	var page resourcePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode catalog page: %w", err)
	}
	return &page, nil
}
