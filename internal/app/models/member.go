package models

// Member represents a registered club member
type Member struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	USN         string   `json:"usn" yaml:"usn"`
	CurrentYear string   `json:"currentYear" yaml:"currentYear"`
	Skills      []string `json:"skills" yaml:"skills"`
	Hobbies     []string `json:"hobbies" yaml:"hobbies"`
	LinkedIn    string   `json:"linkedin,omitempty" yaml:"linkedin"`
	Email       string   `json:"email,omitempty" yaml:"email"`
	Phone       string   `json:"phone,omitempty" yaml:"phone"`
	ProfilePic  string   `json:"profilePic" yaml:"profilePic"`

	EventsJoined       int `json:"eventsJoined" yaml:"eventsJoined"`
	WorkshopsJoined    int `json:"workshopsJoined" yaml:"workshopsJoined"`
	EventsConducted    int `json:"eventsConducted" yaml:"eventsConducted"`
	WorkshopsConducted int `json:"workshopsConducted" yaml:"workshopsConducted"`
}

// SearchableFields returns the fields a free-text search runs against
func (m *Member) SearchableFields() []string {
	return []string{m.Name, m.USN}
}

// CoreTeamMember holds the core-team role metadata for a member. The relation
// to Member is a name-keyed lookup, not ownership: a member with an associated
// core-team record counts as "core" for filtering.
type CoreTeamMember struct {
	ID         int64  `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Role       string `json:"role" yaml:"role"`
	FunFact    string `json:"funFact" yaml:"funFact"`
	Category   string `json:"category" yaml:"category"`
	ProfilePic string `json:"profilePic" yaml:"profilePic"`
	Phone      string `json:"phone,omitempty" yaml:"phone"`
	Email      string `json:"email,omitempty" yaml:"email"`
	LinkedIn   string `json:"linkedin,omitempty" yaml:"linkedin"`
}
