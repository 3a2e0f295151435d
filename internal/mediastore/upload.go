package mediastore

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// subtitleTags tag generated artifacts so they can be found and audited in
// the store console.
func subtitleTags(lang string) string {
	return strings.Join([]string{"subtitle", "language-" + lang, "ai-generated"}, ",")
}

// UploadSubtitle sends the local subtitle file to the store as a raw
// artifact named after the video and language. Uploads overwrite any
// existing artifact of the same name, so repeating one is safe.
func (s *implStore) UploadSubtitle(ctx context.Context, localPath, id, lang string) error {
	publicID := subtitlePublicID(id, lang)

	params := map[string]string{
		"public_id": publicID,
		"overwrite": "true",
		"tags":      subtitleTags(lang),
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}

	body, contentType, err := s.buildUploadBody(localPath, params)
	if err != nil {
		return &UploadError{PublicID: publicID, Err: err}
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/raw/upload", s.apiBaseURL, s.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return &UploadError{PublicID: publicID, Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &UploadError{PublicID: publicID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UploadError{PublicID: publicID, Err: fmt.Errorf("store returned %d", resp.StatusCode)}
	}

	return nil
}

// buildUploadBody assembles the signed multipart upload request body.
func (s *implStore) buildUploadBody(localPath string, params map[string]string) (*bytes.Buffer, string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range params {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}
	if err := w.WriteField("api_key", s.cfg.APIKey); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("signature", signParams(params, s.cfg.APISecret)); err != nil {
		return nil, "", err
	}

	part, err := w.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

// signParams produces the store's request signature: parameters sorted by
// name, joined as a query string, with the API secret appended, hashed
// with SHA-1.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return fmt.Sprintf("%x", sum)
}
