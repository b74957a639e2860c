package models

// ActivityType classifies a club activity
type ActivityType string

const (
	ActivityTypeEvent     ActivityType = "event"
	ActivityTypeWorkshop  ActivityType = "workshop"
	ActivityTypeHackathon ActivityType = "hackathon"
)

// Activity represents a single club activity (event, workshop or hackathon)
type Activity struct {
	ID          int64        `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Thumbnail   string       `json:"thumbnail" yaml:"thumbnail"`
	Location    string       `json:"location" yaml:"location"`
	Date        string       `json:"date" yaml:"date"` // calendar date, YYYY-MM-DD
	Time        string       `json:"time" yaml:"time"`
	Fee         string       `json:"fee" yaml:"fee"` // "Free" or a numeric amount
	Category    string       `json:"category" yaml:"category"`
	Type        ActivityType `json:"type" yaml:"type"`
	Tags        []string     `json:"tags" yaml:"tags"`

	// Status is legacy display data carried over from the old site content.
	// The upcoming/completed classification used for filtering and sorting is
	// always derived from Date; this field is never consulted for it.
	Status string `json:"status" yaml:"status"`
}

// SearchableFields returns the fields a free-text search runs against
func (a *Activity) SearchableFields() []string {
	fields := []string{a.Title, a.Description}
	return append(fields, a.Tags...)
}
