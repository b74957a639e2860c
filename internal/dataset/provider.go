// Package dataset is the static data provider of the site. All collections
// are embedded at build time and held in memory; there is no database and
// nothing is written back.
package dataset

import (
	"embed"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/team-echo-club/echo-api/internal/app/models"
	"github.com/team-echo-club/echo-api/internal/app/query"
	"github.com/team-echo-club/echo-api/internal/pkg/apperrors"
)

//go:embed data/*.yaml
var dataFiles embed.FS

// mediaCollections mirrors the per-platform grouping of the media data file
type mediaCollections struct {
	YouTube   []models.MediaItem `yaml:"youtube"`
	Instagram []models.MediaItem `yaml:"instagram"`
	LinkedIn  []models.MediaItem `yaml:"linkedin"`
}

// Provider holds the loaded collections and the name-keyed core-team lookup
type Provider struct {
	activities []models.Activity
	members    []models.Member
	coreTeam   []models.CoreTeamMember
	media      []models.MediaItem
	coreByName map[string]models.CoreTeamMember
	club       models.ClubInfo

	logger zerolog.Logger
}

// Load parses the embedded datasets and builds the derived structures
func Load(lgr zerolog.Logger) (*Provider, error) {
	p := &Provider{logger: lgr}

	if err := p.unmarshalFile("data/activities.yaml", &p.activities); err != nil {
		return nil, err
	}
	if err := p.unmarshalFile("data/members.yaml", &p.members); err != nil {
		return nil, err
	}
	if err := p.unmarshalFile("data/core_team.yaml", &p.coreTeam); err != nil {
		return nil, err
	}

	var collections mediaCollections
	if err := p.unmarshalFile("data/media.yaml", &collections); err != nil {
		return nil, err
	}
	p.media = ingestMedia(collections)

	if err := p.unmarshalFile("data/club.yaml", &p.club); err != nil {
		return nil, err
	}

	p.coreByName = p.buildCoreTeamLookup()
	p.checkLegacyStatus()

	lgr.Info().
		Int("activities", len(p.activities)).
		Int("members", len(p.members)).
		Int("coreTeam", len(p.coreTeam)).
		Int("media", len(p.media)).
		Msg("Datasets loaded")

	return p, nil
}

func (p *Provider) unmarshalFile(name string, out any) error {
	raw, err := dataFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", apperrors.ErrDatasetInvalid, name, err)
	}
	return nil
}

// ingestMedia combines the per-platform collections into the unified gallery
// collection, tagging each record with its source and content type. The
// platform order (youtube, instagram, linkedin) is the stable ingestion order
// later sorts preserve on ties.
func ingestMedia(c mediaCollections) []models.MediaItem {
	media := make([]models.MediaItem, 0, len(c.YouTube)+len(c.Instagram)+len(c.LinkedIn))
	for _, item := range c.YouTube {
		item.Source = models.MediaSourceYouTube
		item.Type = models.MediaTypeVideo
		media = append(media, item)
	}
	for _, item := range c.Instagram {
		item.Source = models.MediaSourceInstagram
		item.Type = models.MediaTypeImage
		if item.MediaType != "" {
			item.Type = models.MediaType(item.MediaType)
		}
		media = append(media, item)
	}
	for _, item := range c.LinkedIn {
		item.Source = models.MediaSourceLinkedIn
		item.Type = models.MediaTypePost
		media = append(media, item)
	}
	return media
}

// buildCoreTeamLookup builds the name-keyed join between the member roster
// and the core-team roster. There is no referential integrity in the source
// content: duplicate names are logged and last write wins, duplicate numeric
// ids are tolerated because ids are never used as join keys.
func (p *Provider) buildCoreTeamLookup() map[string]models.CoreTeamMember {
	lookup := make(map[string]models.CoreTeamMember, len(p.coreTeam))
	seenIDs := make(map[int64]string, len(p.coreTeam))
	for _, m := range p.coreTeam {
		if _, exists := lookup[m.Name]; exists {
			p.logger.Warn().Str("name", m.Name).Msg("Duplicate core-team name, keeping the later record")
		}
		if prev, exists := seenIDs[m.ID]; exists {
			p.logger.Warn().Int64("id", m.ID).Str("name", m.Name).Str("also", prev).Msg("Core-team id shared by multiple records")
		}
		seenIDs[m.ID] = m.Name
		lookup[m.Name] = m
	}
	return lookup
}

// checkLegacyStatus flags activity records whose stored status field
// disagrees with the classification derived from the date. The stored field
// stays informational; it is never reconciled.
func (p *Provider) checkLegacyStatus() {
	now := time.Now()
	for i := range p.activities {
		a := &p.activities[i]
		derived := "Completed"
		if query.IsUpcoming(a.Date, now) {
			derived = "Active"
		}
		if a.Status != "" && a.Status != derived {
			p.logger.Debug().
				Int64("id", a.ID).
				Str("stored", a.Status).
				Str("derived", derived).
				Msg("Stored activity status disagrees with derived classification")
		}
	}
}

// The accessors below return copies of the backing slices so a query pass
// operates on data that cannot be reordered underneath it.

// Activities returns the activity collection in source order
func (p *Provider) Activities() []models.Activity {
	out := make([]models.Activity, len(p.activities))
	copy(out, p.activities)
	return out
}

// Members returns the member roster in source order
func (p *Provider) Members() []models.Member {
	out := make([]models.Member, len(p.members))
	copy(out, p.members)
	return out
}

// CoreTeam returns the core-team roster in source order
func (p *Provider) CoreTeam() []models.CoreTeamMember {
	out := make([]models.CoreTeamMember, len(p.coreTeam))
	copy(out, p.coreTeam)
	return out
}

// Media returns the unified gallery collection in ingestion order
func (p *Provider) Media() []models.MediaItem {
	out := make([]models.MediaItem, len(p.media))
	copy(out, p.media)
	return out
}

// CoreTeamByName returns the name-keyed core-team lookup
func (p *Provider) CoreTeamByName() map[string]models.CoreTeamMember {
	out := make(map[string]models.CoreTeamMember, len(p.coreByName))
	for k, v := range p.coreByName {
		out[k] = v
	}
	return out
}

// Club returns the static club content
func (p *Provider) Club() models.ClubInfo {
	return p.club
}
