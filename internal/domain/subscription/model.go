package subscription

import (
	"fmt"
	"strings"
	"time"
)

type Platform string

const (
	PlatformWeb     Platform = "web"
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

const (
	TopicFixtures = "fixtures"
	TopicEvents   = "events"
	TopicNews     = "news"
	TopicSponsors = "sponsors"

	teamTopicPrefix = "team:"
)

// Subscription binds a device push token to the topics a user wants notifications for.
type Subscription struct {
	ID        string
	UserID    string
	Token     string
	Platform  Platform
	Topics    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformWeb, PlatformAndroid, PlatformIOS:
		return true
	default:
		return false
	}
}

// TeamTopic returns the per-team topic name.
func TeamTopic(teamID string) string {
	return teamTopicPrefix + teamID
}

// NormalizeTopics lower-cases, trims and de-duplicates topics, keeping first-seen order.
func NormalizeTopics(topics []string) ([]string, error) {
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, raw := range topics {
		topic := strings.ToLower(strings.TrimSpace(raw))
		if !validTopic(topic) {
			return nil, fmt.Errorf("unknown topic %q", raw)
		}
		if _, ok := seen[topic]; ok {
			continue
		}
		seen[topic] = struct{}{}
		out = append(out, topic)
	}

	return out, nil
}

func validTopic(topic string) bool {
	switch topic {
	case TopicFixtures, TopicEvents, TopicNews, TopicSponsors:
		return true
	}
	teamID, ok := strings.CutPrefix(topic, teamTopicPrefix)
	return ok && strings.TrimSpace(teamID) != ""
}

func (s Subscription) HasTopic(topic string) bool {
	for _, item := range s.Topics {
		if item == topic {
			return true
		}
	}
	return false
}
