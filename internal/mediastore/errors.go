package mediastore

import "fmt"

// LookupError reports that an existence check could not be answered, as
// opposed to a definitive "not found".
type LookupError struct {
	PublicID string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %s: %v", e.PublicID, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// DownloadError reports a failed video download.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// UploadError reports a failed subtitle upload.
type UploadError struct {
	PublicID string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.PublicID, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
