package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
	"github.com/riskibarqy/cricket-club/internal/domain/team"
)

const (
	unknownFixtureText    = "TBD"
	placeholderFixtureTag = "placeholder-"
)

var placeholderNamespace = uuid.MustParse("6f1f3c52-7c1e-4f0e-9a57-2d8f4f9a6c10")

var providerDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeExternalFixture maps a raw provider record onto a canonical fixture.
// It never fails: any field that is missing or unreadable takes its documented default.
// index is the record's position in the response and feeds the placeholder id.
func NormalizeExternalFixture(record ExternalFixtureRecord, index int, teamID string, now time.Time) fixture.Fixture {
	opponent := firstText(
		stringField(record, "opposingTeam"),
		stringField(record, "opponent"),
		nestedString(record, "opponent", "name"),
		nestedString(record, "opposingTeam", "name"),
	)
	if opponent == "" {
		opponent = unknownFixtureText
	}

	location := firstText(
		stringField(record, "venue"),
		nestedString(record, "venue", "name"),
		stringField(record, "location"),
	)
	if location == "" {
		location = unknownFixtureText
	}

	abbreviation := firstText(
		stringField(record, "opposingTeamAbbreviation"),
		nestedString(record, "opponent", "abbreviation"),
	)
	if abbreviation == "" {
		abbreviation = team.Initials(opponent)
	}

	color := firstText(
		stringField(record, "opposingTeamColor"),
		nestedString(record, "opponent", "color"),
	)
	if color == "" {
		color = fixture.DefaultOpposingTeamColor
	}

	id := providerID(record)
	if id == "" {
		id = placeholderID(record, index, teamID)
	}

	date, ok := providerDate(record)
	if !ok {
		date = fixture.TruncateToDay(now)
	}

	return fixture.Fixture{
		ID:                       id,
		TeamID:                   teamID,
		Date:                     date,
		Location:                 location,
		IsHome:                   boolField(record, "isHome", "home"),
		OpposingTeam:             opponent,
		OpposingTeamAbbreviation: abbreviation,
		OpposingTeamColor:        color,
		Result:                   &fixture.Result{Status: fixture.StatusScheduled},
	}
}

func providerID(record ExternalFixtureRecord) string {
	switch v := record["id"].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// placeholderID is stable for the same record at the same position so repeated
// resolutions of unchanged provider data return the same ids.
func placeholderID(record ExternalFixtureRecord, index int, teamID string) string {
	raw, err := sonic.ConfigStd.Marshal(record)
	if err != nil {
		raw = []byte(fmt.Sprint(len(record)))
	}
	name := fmt.Sprintf("%s|%d|%s", teamID, index, raw)
	return placeholderFixtureTag + uuid.NewSHA1(placeholderNamespace, []byte(name)).String()
}

func providerDate(record ExternalFixtureRecord) (time.Time, bool) {
	candidates := []map[string]any{record}
	if schedule, ok := record["schedule"].([]any); ok && len(schedule) > 0 {
		if first, ok := schedule[0].(map[string]any); ok {
			candidates = append(candidates, first)
		}
	}

	for _, src := range candidates {
		for _, key := range []string{"date", "startTime", "scheduledAt"} {
			raw := stringField(src, key)
			if raw == "" {
				continue
			}
			if parsed, ok := parseProviderDate(raw, stringField(src, "time")); ok {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func parseProviderDate(raw, clock string) (time.Time, bool) {
	for _, layout := range providerDateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" && clock != "" {
			if kickoff, err := time.Parse("15:04", clock); err == nil {
				parsed = parsed.Add(time.Duration(kickoff.Hour())*time.Hour + time.Duration(kickoff.Minute())*time.Minute)
			}
		}
		return parsed.UTC(), true
	}
	return time.Time{}, false
}

func stringField(src map[string]any, key string) string {
	value, ok := src[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func nestedString(src map[string]any, key, field string) string {
	nested, ok := src[key].(map[string]any)
	if !ok {
		return ""
	}
	return stringField(nested, field)
}

func boolField(src map[string]any, keys ...string) bool {
	for _, key := range keys {
		if value, ok := src[key].(bool); ok {
			return value
		}
	}
	return false
}

func firstText(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
