package query

import (
	"slices"
	"sort"

	"github.com/team-echo-club/echo-api/internal/app/models"
)

// Membership classes of the team listing
const (
	MembershipCore    = "core"
	MembershipGeneral = "general"
)

// MemberFilter is the filter state of the team listing
type MemberFilter struct {
	Search     string
	Skill      string // empty = all skills
	Category   string // empty = all core-team categories
	Membership string // all | core | general
}

// Matches evaluates the conjunction of all active predicates for one member.
// coreInfo is the member's core-team record from the name-keyed lookup, nil
// for general members.
func (f MemberFilter) Matches(m *models.Member, coreInfo *models.CoreTeamMember) bool {
	if !matchesSearch(f.Search, m.SearchableFields()) {
		return false
	}
	if f.Skill != "" && !slices.Contains(m.Skills, f.Skill) {
		return false
	}
	if f.Category != "" && (coreInfo == nil || coreInfo.Category != f.Category) {
		return false
	}
	switch f.Membership {
	case MembershipCore:
		if coreInfo == nil {
			return false
		}
	case MembershipGeneral:
		if coreInfo != nil {
			return false
		}
	}
	return true
}

// FilterMembers returns the members passing every active predicate, in source
// order. coreTeam is the name-keyed core-team lookup.
func FilterMembers(src []models.Member, coreTeam map[string]models.CoreTeamMember, f MemberFilter) []models.Member {
	out := make([]models.Member, 0, len(src))
	for i := range src {
		coreInfo := coreLookup(coreTeam, src[i].Name)
		if f.Matches(&src[i], coreInfo) {
			out = append(out, src[i])
		}
	}
	return out
}

func coreLookup(coreTeam map[string]models.CoreTeamMember, name string) *models.CoreTeamMember {
	if info, ok := coreTeam[name]; ok {
		return &info
	}
	return nil
}

// TeamStats are headline counters computed over the full member and core-team
// collections, independent of any active filters.
type TeamStats struct {
	TotalMembers int `json:"totalMembers"`
	CoreMembers  int `json:"coreMembers"`
	Skills       int `json:"skills"`
	Activities   int `json:"activities"`
}

// ComputeTeamStats computes the aggregate counters for the whole dataset.
// Activities sums every member's joined events and workshops.
func ComputeTeamStats(members []models.Member, coreTeam []models.CoreTeamMember) TeamStats {
	stats := TeamStats{
		TotalMembers: len(members),
		CoreMembers:  len(coreTeam),
		Skills:       len(DistinctSkills(members)),
	}
	for i := range members {
		stats.Activities += members[i].EventsJoined + members[i].WorkshopsJoined
	}
	return stats
}

// DistinctSkills returns the sorted set of skills across all members
func DistinctSkills(members []models.Member) []string {
	set := make(map[string]struct{})
	for i := range members {
		for _, s := range members[i].Skills {
			set[s] = struct{}{}
		}
	}
	skills := make([]string, 0, len(set))
	for s := range set {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// DistinctCategories returns the sorted set of core-team categories
func DistinctCategories(coreTeam []models.CoreTeamMember) []string {
	set := make(map[string]struct{})
	for i := range coreTeam {
		set[coreTeam[i].Category] = struct{}{}
	}
	categories := make([]string, 0, len(set))
	for c := range set {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
