package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type teamTableModel struct {
	ID           string         `db:"public_id"`
	Name         string         `db:"name"`
	Abbreviation sql.NullString `db:"abbreviation"`
	Division     string         `db:"division"`
	LogoURL      sql.NullString `db:"logo_url"`
}

type fixtureTableModel struct {
	ID                       string         `db:"public_id"`
	TeamID                   string         `db:"team_public_id"`
	KickoffAt                time.Time      `db:"kickoff_at"`
	Location                 string         `db:"location"`
	IsHome                   bool           `db:"is_home"`
	OpposingTeam             string         `db:"opposing_team"`
	OpposingTeamAbbreviation sql.NullString `db:"opposing_team_abbreviation"`
	OpposingTeamColor        sql.NullString `db:"opposing_team_color"`
	HomeScore                sql.NullInt64  `db:"home_score"`
	AwayScore                sql.NullInt64  `db:"away_score"`
	Status                   string         `db:"status"`
}

type eventTableModel struct {
	ID          string         `db:"public_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	StartsAt    time.Time      `db:"starts_at"`
	EndsAt      sql.NullTime   `db:"ends_at"`
	Location    string         `db:"location"`
	ImageURL    sql.NullString `db:"image_url"`
}

type sponsorTableModel struct {
	ID         string         `db:"public_id"`
	Name       string         `db:"name"`
	Tier       string         `db:"tier"`
	WebsiteURL sql.NullString `db:"website_url"`
	LogoURL    sql.NullString `db:"logo_url"`
	Rank       int            `db:"rank"`
}

type feedPostTableModel struct {
	ID          string         `db:"public_id"`
	Author      string         `db:"author"`
	Body        string         `db:"body"`
	ImageURL    sql.NullString `db:"image_url"`
	LinkURL     sql.NullString `db:"link_url"`
	PublishedAt time.Time      `db:"published_at"`
}

type subscriptionTableModel struct {
	ID        string         `db:"public_id"`
	UserID    string         `db:"user_id"`
	Token     string         `db:"token"`
	Platform  string         `db:"platform"`
	Topics    pq.StringArray `db:"topics"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
