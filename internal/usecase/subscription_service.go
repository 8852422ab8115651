package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/cricket-club/internal/domain/subscription"
	"github.com/riskibarqy/cricket-club/internal/platform/id"
)

type SubscribeInput struct {
	UserID   string   `validate:"required"`
	Token    string   `validate:"required,max=4096"`
	Platform string   `validate:"required,oneof=web android ios"`
	Topics   []string `validate:"required,min=1,max=32,dive,required"`
}

// SubscriptionService keeps the push token registry the notification sender reads from.
type SubscriptionService struct {
	repo      subscription.Repository
	ids       id.Generator
	clock     clockwork.Clock
	validator *validator.Validate
}

func NewSubscriptionService(repo subscription.Repository, ids id.Generator, clock clockwork.Clock) *SubscriptionService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SubscriptionService{
		repo:      repo,
		ids:       ids,
		clock:     clock,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Subscribe registers a device token or updates the existing registration for it.
func (s *SubscriptionService) Subscribe(ctx context.Context, input SubscribeInput) (subscription.Subscription, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SubscriptionService.Subscribe")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Token = strings.TrimSpace(input.Token)
	input.Platform = strings.ToLower(strings.TrimSpace(input.Platform))
	if err := s.validator.StructCtx(ctx, input); err != nil {
		return subscription.Subscription{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	topics, err := subscription.NormalizeTopics(input.Topics)
	if err != nil {
		return subscription.Subscription{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.clock.Now().UTC()
	existing, exists, err := s.repo.GetByToken(ctx, input.Token)
	if err != nil {
		return subscription.Subscription{}, fmt.Errorf("get subscription by token: %w", err)
	}

	item := existing
	if !exists {
		newID, err := s.ids.NewID()
		if err != nil {
			return subscription.Subscription{}, fmt.Errorf("generate subscription id: %w", err)
		}
		item = subscription.Subscription{ID: newID, Token: input.Token, CreatedAt: now}
	}
	item.UserID = input.UserID
	item.Platform = subscription.Platform(input.Platform)
	item.Topics = topics
	item.UpdatedAt = now

	stored, err := s.repo.Upsert(ctx, item)
	if err != nil {
		return subscription.Subscription{}, fmt.Errorf("upsert subscription: %w", err)
	}
	return stored, nil
}

// Unsubscribe removes one of the caller's subscriptions. Other users' ids look absent.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID, subscriptionID string) error {
	userID = strings.TrimSpace(userID)
	subscriptionID = strings.TrimSpace(subscriptionID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}
	if subscriptionID == "" {
		return fmt.Errorf("%w: subscription id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("get subscription: %w", err)
	}
	if !exists || item.UserID != userID {
		return fmt.Errorf("%w: subscription=%s", ErrNotFound, subscriptionID)
	}

	if err := s.repo.Delete(ctx, subscriptionID); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

func (s *SubscriptionService) ListMine(ctx context.Context, userID string) ([]subscription.Subscription, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}

	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions by user: %w", err)
	}
	return items, nil
}

// ListByTopic returns every subscription that should receive a notification for topic.
func (s *SubscriptionService) ListByTopic(ctx context.Context, topic string) ([]subscription.Subscription, error) {
	topics, err := subscription.NormalizeTopics([]string{topic})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items, err := s.repo.ListByTopic(ctx, topics[0])
	if err != nil {
		return nil, fmt.Errorf("list subscriptions by topic: %w", err)
	}
	return items, nil
}
