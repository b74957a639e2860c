package models

// MediaSource identifies the platform a media item was published on.
// It is assigned during ingestion when the per-platform collections are
// combined, not stored on the raw records.
type MediaSource string

const (
	MediaSourceYouTube   MediaSource = "youtube"
	MediaSourceInstagram MediaSource = "instagram"
	MediaSourceLinkedIn  MediaSource = "linkedin"
)

// MediaType classifies the content of a media item
type MediaType string

const (
	MediaTypeVideo MediaType = "video"
	MediaTypeImage MediaType = "image"
	MediaTypePost  MediaType = "post"
)

// MediaItem represents a single gallery entry
type MediaItem struct {
	ID          int64       `json:"id" yaml:"id"`
	Thumbnail   string      `json:"thumbnail" yaml:"thumbnail"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Link        string      `json:"link" yaml:"link"`
	Source      MediaSource `json:"source" yaml:"-"`
	Type        MediaType   `json:"type" yaml:"-"`

	// MediaType overrides the derived Type for instagram records that carry
	// an explicit content kind in the source data.
	MediaType string `json:"-" yaml:"mediaType"`

	Date       string   `json:"date,omitempty" yaml:"date"`
	Views      int      `json:"views,omitempty" yaml:"views"`
	Likes      int      `json:"likes,omitempty" yaml:"likes"`
	Comments   int      `json:"comments,omitempty" yaml:"comments"`
	Engagement int      `json:"engagement,omitempty" yaml:"engagement"`
	Tags       []string `json:"tags,omitempty" yaml:"tags"`
}
