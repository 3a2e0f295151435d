package mediastore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// VideoURL builds the delivery URL for a video identifier.
func (s *implStore) VideoURL(id string) string {
	return fmt.Sprintf("%s/%s/video/upload/%s.mp4", s.deliveryBaseURL, s.cfg.CloudName, id)
}

// Download streams the remote object into destPath. A partially written
// file is removed before the error is returned, so the destination only
// exists on success.
func (s *implStore) Download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &DownloadError{URL: url, Err: fmt.Errorf("store returned %d", resp.StatusCode)}
	}

	out, err := os.Create(destPath)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(destPath)
		return &DownloadError{URL: url, Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(destPath)
		return &DownloadError{URL: url, Err: err}
	}

	return nil
}
