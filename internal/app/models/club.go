package models

// Feature is one entry of the rotating feature carousel on the about page
type Feature struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Benefit is one membership benefit shown on the join page
type Benefit struct {
	Icon        string   `json:"icon" yaml:"icon"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
}

// HighlightStat is a headline figure shown on the join page ("50+ Active Members")
type HighlightStat struct {
	Number string `json:"number" yaml:"number"`
	Label  string `json:"label" yaml:"label"`
}

// ClubInfo holds the static descriptive content of the club
type ClubInfo struct {
	Name        string          `json:"name" yaml:"name"`
	Tagline     string          `json:"tagline" yaml:"tagline"`
	Institution string          `json:"institution" yaml:"institution"`
	Description string          `json:"description" yaml:"description"`
	Features    []Feature       `json:"features" yaml:"features"`
	Benefits    []Benefit       `json:"benefits" yaml:"benefits"`
	Highlights  []HighlightStat `json:"highlights" yaml:"highlights"`

	// FeatureRotationSeconds is the interval the feature carousel advances at
	FeatureRotationSeconds int `json:"featureRotationSeconds" yaml:"featureRotationSeconds"`
}
