package usecase

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
	fixturemock "github.com/riskibarqy/cricket-club/internal/mocks/domain/fixture"
)

type stubProvider struct {
	configured bool
	result     ProviderResult
	calls      []string
}

func (p *stubProvider) Configured() bool { return p.configured }

func (p *stubProvider) FetchFixtures(_ context.Context, gradeID string) ProviderResult {
	p.calls = append(p.calls, gradeID)
	return p.result
}

var resolveNow = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

func newResolveService(t *testing.T, repo fixture.Repository, provider FixtureProvider, fallback FallbackConfig) *FixtureService {
	t.Helper()
	return NewFixtureService(repo, provider, FixtureServiceOptions{
		GradeIDs: map[string]string{"mens-1st-xi": "grade-9001"},
		Fallback: fallback,
		Clock:    clockwork.NewFakeClockAt(resolveNow),
	})
}

func storedFixtures(teamID string) []fixture.Fixture {
	return []fixture.Fixture{
		{ID: "fx-1", TeamID: teamID, Date: resolveNow.AddDate(0, 0, 5), Location: "Memorial Oval", IsHome: true, OpposingTeam: "Riverside Rovers"},
		{ID: "fx-2", TeamID: teamID, Date: resolveNow.AddDate(0, 0, 12), Location: "Eastern Park", OpposingTeam: "Eastern Districts"},
	}
}

func ctxMatcher(ctx context.Context) any {
	return mock.MatchedBy(func(v context.Context) bool { return v == ctx })
}

func TestFixtureService_ResolveFixtures_ExternalSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := fixturemock.NewRepository(t)
	provider := &stubProvider{
		configured: true,
		result: ProviderOK{Records: []ExternalFixtureRecord{
			{"id": "g-1", "date": "2026-10-25T10:00:00Z", "venue": "Memorial Oval", "isHome": true, "opposingTeam": "Riverside Rovers"},
			{"id": float64(77), "opponent": map[string]any{"name": "Hillside Hawks"}},
			{},
		}},
	}

	service := newResolveService(t, repo, provider, FallbackConfig{})
	got, err := service.ResolveFixtures(ctx, "mens-1st-xi", PreferExternal)
	if err != nil {
		t.Fatalf("resolve fixtures: %v", err)
	}
	if got.Source != FixtureSourceExternal {
		t.Fatalf("unexpected source: %s", got.Source)
	}
	if got.Failure != nil {
		t.Fatalf("unexpected failure: %+v", got.Failure)
	}
	if len(got.Fixtures) != 3 {
		t.Fatalf("expected one fixture per record, got %d", len(got.Fixtures))
	}
	if !reflect.DeepEqual(provider.calls, []string{"grade-9001"}) {
		t.Fatalf("expected mapped grade id, got %v", provider.calls)
	}
	if got.Fixtures[1].ID != "77" || got.Fixtures[1].OpposingTeam != "Hillside Hawks" {
		t.Fatalf("unexpected second fixture: %+v", got.Fixtures[1])
	}
}

func TestFixtureService_ResolveFixtures_ProviderFailureFallsBackToStore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		result     ProviderResult
		wantKind   FailureKind
		wantStatus int
		wantAction FailureAction
	}{
		{name: "unauthorized", result: ProviderHTTPError{StatusCode: http.StatusUnauthorized, Body: `{"error":"bad key"}`}, wantKind: FailureProvider, wantStatus: 401, wantAction: ActionSwitchSource},
		{name: "unknown grade", result: ProviderHTTPError{StatusCode: http.StatusNotFound}, wantKind: FailureProvider, wantStatus: 404, wantAction: ActionSwitchSource},
		{name: "rate limited", result: ProviderHTTPError{StatusCode: http.StatusTooManyRequests}, wantKind: FailureProvider, wantStatus: 429, wantAction: ActionRetry},
		{name: "outage", result: ProviderHTTPError{StatusCode: http.StatusBadGateway}, wantKind: FailureProvider, wantStatus: 502, wantAction: ActionRetry},
		{name: "timeout", result: ProviderTransportError{Cause: context.DeadlineExceeded}, wantKind: FailureProvider, wantAction: ActionRetry},
		{name: "empty", result: ProviderOK{}, wantKind: FailureEmpty, wantAction: ActionSwitchSource},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			repo := fixturemock.NewRepository(t)
			stored := storedFixtures("mens-1st-xi")
			repo.On("ListByTeam", ctxMatcher(ctx), "mens-1st-xi").Return(stored, nil).Once()

			service := newResolveService(t, repo, &stubProvider{configured: true, result: tc.result}, FallbackConfig{})
			got, err := service.ResolveFixtures(ctx, "mens-1st-xi", PreferExternal)
			if err != nil {
				t.Fatalf("provider failure must not surface as error: %v", err)
			}
			if got.Source != FixtureSourceLocal {
				t.Fatalf("unexpected source: %s", got.Source)
			}
			if !reflect.DeepEqual(got.Fixtures, stored) {
				t.Fatalf("expected store fixtures unchanged, got %+v", got.Fixtures)
			}
			if got.Failure == nil {
				t.Fatalf("expected failure diagnostic")
			}
			if got.Failure.Kind != tc.wantKind || got.Failure.StatusCode != tc.wantStatus || got.Failure.Action != tc.wantAction {
				t.Fatalf("unexpected failure: %+v", got.Failure)
			}
		})
	}
}

func TestFixtureService_ResolveFixtures_MissingCredentials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := fixturemock.NewRepository(t)
	repo.On("ListByTeam", ctxMatcher(ctx), "lions").Return([]fixture.Fixture{}, nil).Once()
	provider := &stubProvider{configured: false}

	service := newResolveService(t, repo, provider, FallbackConfig{})
	got, err := service.ResolveFixtures(ctx, "lions", PreferExternal)
	if err != nil {
		t.Fatalf("resolve fixtures: %v", err)
	}
	if len(provider.calls) != 0 {
		t.Fatalf("provider must not be called without credentials")
	}
	if got.Failure == nil || got.Failure.Kind != FailureConfiguration {
		t.Fatalf("expected configuration failure, got %+v", got.Failure)
	}
	if got.Source != FixtureSourceLocal || len(got.Fixtures) != 0 || got.Fixtures == nil {
		t.Fatalf("expected empty non-nil local result, got %+v", got)
	}
}

func TestFixtureService_ResolveFixtures_SyntheticOnlyForDemoTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fallback := FallbackConfig{Enabled: true, TeamID: "winter"}
	failing := ProviderHTTPError{StatusCode: http.StatusServiceUnavailable}

	repo := fixturemock.NewRepository(t)
	repo.On("ListByTeam", ctxMatcher(ctx), "winter").Return(nil, nil).Once()
	repo.On("ListByTeam", ctxMatcher(ctx), "under-12s").Return(nil, nil).Once()

	service := newResolveService(t, repo, &stubProvider{configured: true, result: failing}, fallback)

	demo, err := service.ResolveFixtures(ctx, "winter", PreferExternal)
	if err != nil {
		t.Fatalf("resolve demo team: %v", err)
	}
	if demo.Source != FixtureSourceSynthetic || len(demo.Fixtures) != 3 {
		t.Fatalf("expected 3 synthetic fixtures, got source=%s count=%d", demo.Source, len(demo.Fixtures))
	}
	for _, item := range demo.Fixtures {
		if item.TeamID != "winter" || item.Date.Before(resolveNow) {
			t.Fatalf("unexpected synthetic fixture: %+v", item)
		}
	}

	other, err := service.ResolveFixtures(ctx, "under-12s", PreferExternal)
	if err != nil {
		t.Fatalf("resolve other team: %v", err)
	}
	if other.Source != FixtureSourceLocal || len(other.Fixtures) != 0 {
		t.Fatalf("expected empty local result, got source=%s count=%d", other.Source, len(other.Fixtures))
	}
}

func TestFixtureService_ResolveFixtures_SyntheticDisabled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := fixturemock.NewRepository(t)
	repo.On("ListByTeam", ctxMatcher(ctx), "winter").Return(nil, nil).Once()

	service := newResolveService(t, repo, &stubProvider{configured: true, result: ProviderOK{}}, FallbackConfig{Enabled: false, TeamID: "winter"})
	got, err := service.ResolveFixtures(ctx, "winter", PreferExternal)
	if err != nil {
		t.Fatalf("resolve fixtures: %v", err)
	}
	if got.Source != FixtureSourceLocal || len(got.Fixtures) != 0 {
		t.Fatalf("expected empty local result, got %+v", got)
	}
}

func TestFixtureService_ResolveFixtures_LocalPreferenceSkipsProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := fixturemock.NewRepository(t)
	stored := storedFixtures("lions")
	repo.On("ListByTeam", ctxMatcher(ctx), "lions").Return(stored, nil).Once()
	provider := &stubProvider{configured: true, result: ProviderOK{Records: []ExternalFixtureRecord{{"id": "x"}}}}

	service := newResolveService(t, repo, provider, FallbackConfig{})
	got, err := service.ResolveFixtures(ctx, "lions", PreferLocal)
	if err != nil {
		t.Fatalf("resolve fixtures: %v", err)
	}
	if len(provider.calls) != 0 {
		t.Fatalf("provider called for local preference")
	}
	if got.Source != FixtureSourceLocal || got.Failure != nil || len(got.Fixtures) != 2 {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}

func TestFixtureService_ResolveFixtures_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := fixturemock.NewRepository(t)
	storeErr := errors.New("connection reset")
	repo.On("ListByTeam", ctxMatcher(ctx), "lions").Return(nil, storeErr).Once()

	service := newResolveService(t, repo, &stubProvider{configured: true, result: ProviderOK{}}, FallbackConfig{})
	if _, err := service.ResolveFixtures(ctx, "lions", PreferExternal); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestFixtureService_ResolveFixtures_EmptyTeamID(t *testing.T) {
	t.Parallel()

	service := newResolveService(t, fixturemock.NewRepository(t), &stubProvider{configured: true}, FallbackConfig{})
	if _, err := service.ResolveFixtures(context.Background(), "  ", PreferExternal); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFixtureService_ResolveFixtures_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &stubProvider{
		configured: true,
		result: ProviderOK{Records: []ExternalFixtureRecord{
			{"opponent": "Riverside Rovers"},
			{"id": "g-2", "date": "2026-11-01"},
		}},
	}
	service := newResolveService(t, fixturemock.NewRepository(t), provider, FallbackConfig{})

	first, err := service.ResolveFixtures(ctx, "lions", PreferExternal)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := service.ResolveFixtures(ctx, "lions", PreferExternal)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if first.Source != second.Source || !reflect.DeepEqual(first.Fixtures, second.Fixtures) {
		t.Fatalf("expected identical resolutions:\n%+v\n%+v", first, second)
	}
}

func TestParseSourcePreference(t *testing.T) {
	if got, err := ParseSourcePreference(""); err != nil || got != PreferExternal {
		t.Fatalf("unexpected default preference: %q %v", got, err)
	}
	if got, err := ParseSourcePreference("LOCAL"); err != nil || got != PreferLocal {
		t.Fatalf("unexpected local preference: %q %v", got, err)
	}
	if _, err := ParseSourcePreference("synthetic"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
