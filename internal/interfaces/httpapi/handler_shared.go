package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/cricket-club/internal/domain/event"
	"github.com/riskibarqy/cricket-club/internal/domain/feed"
	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
	"github.com/riskibarqy/cricket-club/internal/domain/sponsor"
	"github.com/riskibarqy/cricket-club/internal/domain/subscription"
	"github.com/riskibarqy/cricket-club/internal/domain/team"
	"github.com/riskibarqy/cricket-club/internal/usecase"
)

type subscribeRequest struct {
	Token    string   `json:"token" validate:"required,max=4096"`
	Platform string   `json:"platform" validate:"required"`
	Topics   []string `json:"topics" validate:"required,min=1,max=32,dive,required"`
}

type fixtureResultDTO struct {
	HomeScore *int   `json:"homeScore,omitempty"`
	AwayScore *int   `json:"awayScore,omitempty"`
	Status    string `json:"status"`
}

type fixtureDTO struct {
	ID                       string            `json:"id"`
	TeamID                   string            `json:"teamId"`
	Date                     string            `json:"date"`
	Location                 string            `json:"location"`
	IsHome                   bool              `json:"isHome"`
	OpposingTeam             string            `json:"opposingTeam"`
	OpposingTeamAbbreviation string            `json:"opposingTeamAbbreviation"`
	OpposingTeamColor        string            `json:"opposingTeamColor"`
	Result                   *fixtureResultDTO `json:"result,omitempty"`
}

type resolutionFailureDTO struct {
	Kind       string `json:"kind"`
	StatusCode int    `json:"statusCode,omitempty"`
	Message    string `json:"message"`
	Action     string `json:"action,omitempty"`
}

type fixtureResolutionDTO struct {
	TeamID   string                `json:"teamId"`
	Source   string                `json:"source"`
	Fixtures []fixtureDTO          `json:"fixtures"`
	Failure  *resolutionFailureDTO `json:"failure,omitempty"`
}

type teamDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Division     string `json:"division,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
}

type eventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartsAt    string `json:"startsAt"`
	EndsAt      string `json:"endsAt,omitempty"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type sponsorDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Tier       string `json:"tier"`
	WebsiteURL string `json:"websiteUrl,omitempty"`
	LogoURL    string `json:"logoUrl,omitempty"`
}

type feedPostDTO struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Body        string `json:"body"`
	ImageURL    string `json:"imageUrl,omitempty"`
	LinkURL     string `json:"linkUrl,omitempty"`
	PublishedAt string `json:"publishedAt"`
}

type subscriptionDTO struct {
	ID        string   `json:"id"`
	Platform  string   `json:"platform"`
	Topics    []string `json:"topics"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

func fixtureResolutionToDTO(ctx context.Context, v usecase.FixtureResolution) fixtureResolutionDTO {
	ctx, span := startSpan(ctx, "httpapi.fixtureResolutionToDTO")
	defer span.End()

	out := fixtureResolutionDTO{
		TeamID:   v.TeamID,
		Source:   string(v.Source),
		Fixtures: make([]fixtureDTO, 0, len(v.Fixtures)),
	}
	for _, item := range v.Fixtures {
		out.Fixtures = append(out.Fixtures, fixtureToDTO(ctx, item))
	}
	if v.Failure != nil {
		out.Failure = &resolutionFailureDTO{
			Kind:       string(v.Failure.Kind),
			StatusCode: v.Failure.StatusCode,
			Message:    v.Failure.Message,
			Action:     string(v.Failure.Action),
		}
	}
	return out
}

func fixtureToDTO(ctx context.Context, v fixture.Fixture) fixtureDTO {
	_, span := startSpan(ctx, "httpapi.fixtureToDTO")
	defer span.End()

	abbreviation := v.OpposingTeamAbbreviation
	if abbreviation == "" {
		abbreviation = team.Initials(v.OpposingTeam)
	}
	color := v.OpposingTeamColor
	if color == "" {
		color = fixture.DefaultOpposingTeamColor
	}

	out := fixtureDTO{
		ID:                       v.ID,
		TeamID:                   v.TeamID,
		Date:                     v.Date.UTC().Format(time.RFC3339),
		Location:                 v.Location,
		IsHome:                   v.IsHome,
		OpposingTeam:             v.OpposingTeam,
		OpposingTeamAbbreviation: abbreviation,
		OpposingTeamColor:        color,
	}
	if v.Result != nil {
		out.Result = &fixtureResultDTO{
			HomeScore: v.Result.HomeScore,
			AwayScore: v.Result.AwayScore,
			Status:    string(v.StatusOrScheduled()),
		}
	}
	return out
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	_, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:           v.ID,
		Name:         v.Name,
		Abbreviation: v.ShortName(),
		Division:     v.Division,
		LogoURL:      v.LogoURL,
	}
}

func eventToDTO(ctx context.Context, v event.Event) eventDTO {
	_, span := startSpan(ctx, "httpapi.eventToDTO")
	defer span.End()

	return eventDTO{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		StartsAt:    v.StartsAt.UTC().Format(time.RFC3339),
		EndsAt:      formatOptionalTime(v.EndsAt),
		Location:    v.Location,
		ImageURL:    v.ImageURL,
	}
}

func sponsorToDTO(ctx context.Context, v sponsor.Sponsor) sponsorDTO {
	_, span := startSpan(ctx, "httpapi.sponsorToDTO")
	defer span.End()

	return sponsorDTO{
		ID:         v.ID,
		Name:       v.Name,
		Tier:       string(v.Tier),
		WebsiteURL: v.WebsiteURL,
		LogoURL:    v.LogoURL,
	}
}

func feedPostToDTO(ctx context.Context, v feed.Post) feedPostDTO {
	_, span := startSpan(ctx, "httpapi.feedPostToDTO")
	defer span.End()

	return feedPostDTO{
		ID:          v.ID,
		Author:      v.Author,
		Body:        v.Body,
		ImageURL:    v.ImageURL,
		LinkURL:     v.LinkURL,
		PublishedAt: v.PublishedAt.UTC().Format(time.RFC3339),
	}
}

func subscriptionToDTO(ctx context.Context, v subscription.Subscription) subscriptionDTO {
	_, span := startSpan(ctx, "httpapi.subscriptionToDTO")
	defer span.End()

	return subscriptionDTO{
		ID:        v.ID,
		Platform:  string(v.Platform),
		Topics:    append([]string(nil), v.Topics...),
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func formatOptionalTime(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
