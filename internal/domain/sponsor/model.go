package sponsor

import (
	"context"
	"fmt"
	"strings"
)

type Tier string

const (
	TierGold    Tier = "gold"
	TierSilver  Tier = "silver"
	TierBronze  Tier = "bronze"
	TierPartner Tier = "partner"
)

// Sponsor is a club partner shown on the sponsors page.
type Sponsor struct {
	ID         string
	Name       string
	Tier       Tier
	WebsiteURL string
	LogoURL    string
	Rank       int
}

func (s Sponsor) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("sponsor name is required")
	}
	if TierWeight(s.Tier) < 0 {
		return fmt.Errorf("invalid sponsor tier %q", s.Tier)
	}

	return nil
}

// TierWeight orders tiers from most to least prominent; unknown tiers return -1.
func TierWeight(t Tier) int {
	switch t {
	case TierGold:
		return 0
	case TierSilver:
		return 1
	case TierBronze:
		return 2
	case TierPartner:
		return 3
	default:
		return -1
	}
}

type Repository interface {
	List(ctx context.Context) ([]Sponsor, error)
}
