package subscription

import "context"

// Repository persists push subscriptions keyed by their unique device token.
type Repository interface {
	GetByToken(ctx context.Context, token string) (Subscription, bool, error)
	GetByID(ctx context.Context, id string) (Subscription, bool, error)
	// Upsert stores item keyed by its token and returns the persisted row. When the
	// token already exists the stored ID and CreatedAt are kept.
	Upsert(ctx context.Context, item Subscription) (Subscription, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]Subscription, error)
	ListByTopic(ctx context.Context, topic string) ([]Subscription, error)
}
