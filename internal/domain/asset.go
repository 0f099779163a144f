package domain

import "time"

// Asset is one stored image payload, keyed by a normalized identity key.
type Asset struct {
	ID          int64     `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// EmbeddedImagePlaceholder replaces inline data-URI image values in
// spreadsheet and CSV exports; the payloads themselves only travel through
// the image-archive collaborator.
const EmbeddedImagePlaceholder = "[embedded-image]"
