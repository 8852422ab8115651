package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
	"github.com/riskibarqy/cricket-club/internal/platform/logging"
)

type FixtureSource string

const (
	FixtureSourceExternal  FixtureSource = "external"
	FixtureSourceLocal     FixtureSource = "local"
	FixtureSourceSynthetic FixtureSource = "synthetic"
)

// SourcePreference is the caller's requested starting point for resolution.
type SourcePreference string

const (
	PreferExternal SourcePreference = "external"
	PreferLocal    SourcePreference = "local"
)

func ParseSourcePreference(value string) (SourcePreference, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(PreferExternal):
		return PreferExternal, nil
	case string(PreferLocal):
		return PreferLocal, nil
	default:
		return "", fmt.Errorf("%w: unknown source %q", ErrInvalidInput, value)
	}
}

type FailureKind string

const (
	FailureConfiguration FailureKind = "configuration"
	FailureProvider      FailureKind = "provider"
	FailureEmpty         FailureKind = "empty"
)

// FailureAction is the hint a client should offer the user.
type FailureAction string

const (
	ActionNone         FailureAction = ""
	ActionRetry        FailureAction = "retry"
	ActionSwitchSource FailureAction = "switch_source"
)

// ResolutionFailure describes why the external provider did not serve the result.
type ResolutionFailure struct {
	Kind       FailureKind
	StatusCode int
	Message    string
	Action     FailureAction
}

type FixtureResolution struct {
	TeamID   string
	Fixtures []fixture.Fixture
	Source   FixtureSource
	Failure  *ResolutionFailure
}

// FallbackConfig names the demo team that receives synthetic fixtures when nothing else exists.
type FallbackConfig struct {
	Enabled   bool
	TeamID    string
	Templates []fixture.Template
}

type FixtureServiceOptions struct {
	GradeIDs map[string]string
	Fallback FallbackConfig
	Clock    clockwork.Clock
	Logger   *logging.Logger
}

type FixtureService struct {
	fixtureRepo fixture.Repository
	provider    FixtureProvider
	gradeIDs    map[string]string
	fallback    FallbackConfig
	clock       clockwork.Clock
	logger      *logging.Logger
}

func NewFixtureService(fixtureRepo fixture.Repository, provider FixtureProvider, opts FixtureServiceOptions) *FixtureService {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	fallback := opts.Fallback
	fallback.TeamID = strings.TrimSpace(fallback.TeamID)
	if len(fallback.Templates) == 0 {
		fallback.Templates = fixture.DemoTemplates()
	}

	return &FixtureService{
		fixtureRepo: fixtureRepo,
		provider:    provider,
		gradeIDs:    opts.GradeIDs,
		fallback:    fallback,
		clock:       clock,
		logger:      logger,
	}
}

// ResolveFixtures picks exactly one source for the team's fixtures: the external
// provider, then the local store, then the demo team's synthetic set. Provider
// failures are reported on the resolution, never returned as errors.
func (s *FixtureService) ResolveFixtures(ctx context.Context, teamID string, preference SourcePreference) (FixtureResolution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ResolveFixtures")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return FixtureResolution{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	var failure *ResolutionFailure
	if preference != PreferLocal {
		items, providerFailure := s.fetchExternal(ctx, teamID)
		if providerFailure == nil {
			span.SetAttributes(attribute.String("fixture.source", string(FixtureSourceExternal)))
			return FixtureResolution{TeamID: teamID, Fixtures: items, Source: FixtureSourceExternal}, nil
		}
		failure = providerFailure
		span.SetAttributes(attribute.String("fixture.failure", string(failure.Kind)))
	}

	resolution, err := s.resolveLocal(ctx, teamID)
	if err != nil {
		return FixtureResolution{}, err
	}
	resolution.Failure = failure
	span.SetAttributes(attribute.String("fixture.source", string(resolution.Source)))
	return resolution, nil
}

func (s *FixtureService) fetchExternal(ctx context.Context, teamID string) ([]fixture.Fixture, *ResolutionFailure) {
	if s.provider == nil || !s.provider.Configured() {
		s.logger.ErrorContext(ctx, "fixture provider credentials are not configured", "team_id", teamID)
		return nil, &ResolutionFailure{
			Kind:    FailureConfiguration,
			Message: "fixture provider credentials are not configured",
			Action:  ActionSwitchSource,
		}
	}

	gradeID := s.gradeID(teamID)
	switch result := s.provider.FetchFixtures(ctx, gradeID).(type) {
	case ProviderOK:
		if len(result.Records) == 0 {
			s.logger.InfoContext(ctx, "fixture provider returned no records", "team_id", teamID, "grade_id", gradeID)
			return nil, &ResolutionFailure{
				Kind:    FailureEmpty,
				Message: "fixture provider returned no fixtures",
				Action:  ActionSwitchSource,
			}
		}
		now := s.clock.Now()
		items := make([]fixture.Fixture, 0, len(result.Records))
		for i, record := range result.Records {
			items = append(items, NormalizeExternalFixture(record, i, teamID, now))
		}
		return items, nil
	case ProviderHTTPError:
		s.logger.WarnContext(ctx, "fixture provider returned error status",
			"team_id", teamID,
			"grade_id", gradeID,
			"status", result.StatusCode,
			"body", result.Body,
		)
		return nil, &ResolutionFailure{
			Kind:       FailureProvider,
			StatusCode: result.StatusCode,
			Message:    result.Error(),
			Action:     actionForStatus(result.StatusCode),
		}
	case ProviderTransportError:
		s.logger.WarnContext(ctx, "fixture provider request failed", "team_id", teamID, "grade_id", gradeID, "error", result.Cause)
		return nil, &ResolutionFailure{
			Kind:    FailureProvider,
			Message: result.Error(),
			Action:  ActionRetry,
		}
	default:
		s.logger.ErrorContext(ctx, "fixture provider returned unknown result", "team_id", teamID, "type", fmt.Sprintf("%T", result))
		return nil, &ResolutionFailure{
			Kind:    FailureProvider,
			Message: "fixture provider returned an unexpected result",
			Action:  ActionRetry,
		}
	}
}

func (s *FixtureService) resolveLocal(ctx context.Context, teamID string) (FixtureResolution, error) {
	items, err := s.fixtureRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return FixtureResolution{}, fmt.Errorf("list fixtures by team: %w", err)
	}
	if len(items) > 0 {
		return FixtureResolution{TeamID: teamID, Fixtures: items, Source: FixtureSourceLocal}, nil
	}

	if s.fallback.Enabled && s.fallback.TeamID == teamID {
		synthetic, err := fixture.Materialize(s.fallback.Templates, teamID, s.clock.Now())
		if err != nil {
			return FixtureResolution{}, fmt.Errorf("materialize demo fixtures: %w", err)
		}
		s.logger.InfoContext(ctx, "serving synthetic demo fixtures", "team_id", teamID, "count", len(synthetic))
		return FixtureResolution{TeamID: teamID, Fixtures: synthetic, Source: FixtureSourceSynthetic}, nil
	}

	return FixtureResolution{TeamID: teamID, Fixtures: []fixture.Fixture{}, Source: FixtureSourceLocal}, nil
}

func (s *FixtureService) gradeID(teamID string) string {
	if gradeID := strings.TrimSpace(s.gradeIDs[teamID]); gradeID != "" {
		return gradeID
	}
	return teamID
}

// actionForStatus treats throttling, timeouts and provider outages as transient.
func actionForStatus(status int) FailureAction {
	switch {
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests, status >= 500:
		return ActionRetry
	default:
		return ActionSwitchSource
	}
}
