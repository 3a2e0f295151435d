package mediastore

import "context"

// Store wraps the remote media catalog: artifact existence checks, video
// URL resolution, streamed downloads, tagged uploads and paginated
// enumeration.
type Store interface {
	// SubtitleExists reports whether a subtitle artifact for the video and
	// language is already stored. A nil error means the answer is
	// definitive; a non-nil error means the lookup itself failed and the
	// caller decides the policy.
	SubtitleExists(ctx context.Context, id, lang string) (bool, error)

	// VideoURL builds the delivery URL for a video. No network call.
	VideoURL(id string) string

	// Download streams the object at url into destPath. On failure no
	// complete-looking partial file is left behind.
	Download(ctx context.Context, url, destPath string) error

	// UploadSubtitle stores the local file as the subtitle artifact for the
	// video and language, overwriting any previous artifact of that name.
	UploadSubtitle(ctx context.Context, localPath, id, lang string) error

	// ListAll enumerates every video identifier in the catalog, following
	// pagination until the store reports no further page.
	ListAll(ctx context.Context) ([]string, error)
}
