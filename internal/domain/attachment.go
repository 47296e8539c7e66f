package domain

import "io"

// ThumbnailSmall is the thumbnail size used for previews.
const ThumbnailSmall = "small"

// Thumbnail is one pre-rendered size of an uploaded image.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  *int   `json:"width"`
	Height *int   `json:"height"`
}

// Attachment is a file descriptor returned by the upstream upload endpoint.
// It is never constructed locally.
type Attachment struct {
	ID          int64                `json:"id,omitempty"`
	Name        string               `json:"name"`
	VisibleName string               `json:"visible_name,omitempty"`
	Original    string               `json:"original_name,omitempty"`
	URL         string               `json:"url"`
	Thumbnails  map[string]Thumbnail `json:"thumbnails,omitempty"`
	MimeType    string               `json:"mime_type,omitempty"`
	Size        *int64               `json:"size,omitempty"`
	IsImage     *bool                `json:"is_image,omitempty"`
	ImageWidth  *int                 `json:"image_width,omitempty"`
	ImageHeight *int                 `json:"image_height,omitempty"`
	UploadedAt  string               `json:"uploaded_at,omitempty"`
}

// PreviewURL returns the small thumbnail URL, falling back to the full URL.
func (a Attachment) PreviewURL() string {
	if t, ok := a.Thumbnails[ThumbnailSmall]; ok && t.URL != "" {
		return t.URL
	}
	return a.URL
}

// UploadFile is an accepted image waiting to be forwarded upstream.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResult is returned to the client after a successful upload.
type UploadResult struct {
	RowID int64      `json:"rowId"`
	Photo Attachment `json:"photo"`
}
