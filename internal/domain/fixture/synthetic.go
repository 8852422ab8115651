package fixture

import (
	"fmt"
	"strings"
	"time"
)

// Template describes a placeholder fixture relative to the day it is materialized.
type Template struct {
	ID           string `yaml:"id"`
	DaysFromNow  int    `yaml:"days_from_now"`
	Kickoff      string `yaml:"kickoff"`
	Location     string `yaml:"location"`
	IsHome       bool   `yaml:"is_home"`
	OpposingTeam string `yaml:"opposing_team"`
	Abbreviation string `yaml:"abbreviation"`
	Color        string `yaml:"color"`
}

// DemoTemplates is the built-in empty-state set served for the demo team.
func DemoTemplates() []Template {
	return []Template{
		{ID: "demo-1", DaysFromNow: 7, Kickoff: "10:00", Location: "Memorial Oval", IsHome: true, OpposingTeam: "Riverside Rovers"},
		{ID: "demo-2", DaysFromNow: 14, Kickoff: "10:00", Location: "Eastern Park", IsHome: false, OpposingTeam: "Eastern Districts"},
		{ID: "demo-3", DaysFromNow: 21, Kickoff: "13:00", Location: "Memorial Oval", IsHome: true, OpposingTeam: "Hillside Hawks"},
	}
}

// Materialize turns templates into scheduled fixtures for teamID, anchored on the day of now.
func Materialize(templates []Template, teamID string, now time.Time) ([]Fixture, error) {
	day := TruncateToDay(now)
	out := make([]Fixture, 0, len(templates))
	for i, tpl := range templates {
		offset, err := parseKickoff(tpl.Kickoff)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}

		id := strings.TrimSpace(tpl.ID)
		if id == "" {
			id = fmt.Sprintf("synthetic-%d", i+1)
		}
		out = append(out, Fixture{
			ID:                       id,
			TeamID:                   teamID,
			Date:                     day.AddDate(0, 0, tpl.DaysFromNow).Add(offset),
			Location:                 tpl.Location,
			IsHome:                   tpl.IsHome,
			OpposingTeam:             tpl.OpposingTeam,
			OpposingTeamAbbreviation: tpl.Abbreviation,
			OpposingTeamColor:        tpl.Color,
			Result:                   &Result{Status: StatusScheduled},
		})
	}

	return out, nil
}

// TruncateToDay returns midnight UTC of the day containing t.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseKickoff(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		return 0, fmt.Errorf("invalid kickoff %q, expected HH:MM", raw)
	}
	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
}
