package mediastore

import (
	"context"
	"fmt"
	"net/http"
)

// SubtitleExists asks the management API whether the subtitle artifact is
// already stored. Only a 404 means "not found"; every other failure is a
// LookupError so the caller can tell absence from a broken lookup.
func (s *implStore) SubtitleExists(ctx context.Context, id, lang string) (bool, error) {
	publicID := subtitlePublicID(id, lang)
	endpoint := fmt.Sprintf("%s/v1_1/%s/resources/raw/upload/%s", s.apiBaseURL, s.cfg.CloudName, publicID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, &LookupError{PublicID: publicID, Err: err}
	}
	req.SetBasicAuth(s.cfg.APIKey, s.cfg.APISecret)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, &LookupError{PublicID: publicID, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, &LookupError{PublicID: publicID, Err: fmt.Errorf("store returned %d", resp.StatusCode)}
	}
}
