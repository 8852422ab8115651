package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/cricket-club/internal/domain/subscription"
)

const subscriptionColumns = `public_id, user_id, token, platform, topics, created_at, updated_at`

type SubscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) GetByToken(ctx context.Context, token string) (subscription.Subscription, bool, error) {
	return r.getOne(ctx, `SELECT `+subscriptionColumns+` FROM push_subscriptions WHERE token = $1`, token)
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id string) (subscription.Subscription, bool, error) {
	return r.getOne(ctx, `SELECT `+subscriptionColumns+` FROM push_subscriptions WHERE public_id = $1`, id)
}

// Upsert keys on the device token; the stored public id and created_at win over the
// incoming ones and the row as persisted is returned.
func (r *SubscriptionRepository) Upsert(ctx context.Context, item subscription.Subscription) (subscription.Subscription, error) {
	const query = `
INSERT INTO push_subscriptions (public_id, user_id, token, platform, topics, created_at, updated_at)
VALUES (:public_id, :user_id, :token, :platform, :topics, :created_at, :updated_at)
ON CONFLICT (token) DO UPDATE SET
	user_id = EXCLUDED.user_id,
	platform = EXCLUDED.platform,
	topics = EXCLUDED.topics,
	updated_at = EXCLUDED.updated_at
RETURNING ` + subscriptionColumns

	row := subscriptionTableModel{
		ID:        item.ID,
		UserID:    item.UserID,
		Token:     item.Token,
		Platform:  string(item.Platform),
		Topics:    pq.StringArray(item.Topics),
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
	bound, args, err := sqlx.Named(query, row)
	if err != nil {
		return subscription.Subscription{}, fmt.Errorf("bind push subscription upsert: %w", err)
	}

	var stored subscriptionTableModel
	if err := r.db.GetContext(ctx, &stored, r.db.Rebind(bound), args...); err != nil {
		if isUniqueViolation(err) {
			return subscription.Subscription{}, fmt.Errorf("upsert push subscription: duplicate id %s: %w", item.ID, err)
		}
		return subscription.Subscription{}, fmt.Errorf("upsert push subscription: %w", err)
	}
	return stored.toDomain(), nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM push_subscriptions WHERE public_id = $1`, id); err != nil {
		return fmt.Errorf("delete push subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]subscription.Subscription, error) {
	return r.list(ctx, `SELECT `+subscriptionColumns+` FROM push_subscriptions WHERE user_id = $1 ORDER BY created_at, public_id`, userID)
}

func (r *SubscriptionRepository) ListByTopic(ctx context.Context, topic string) ([]subscription.Subscription, error) {
	return r.list(ctx, `SELECT `+subscriptionColumns+` FROM push_subscriptions WHERE $1 = ANY(topics) ORDER BY created_at, public_id`, topic)
}

func (r *SubscriptionRepository) getOne(ctx context.Context, query string, arg any) (subscription.Subscription, bool, error) {
	var row subscriptionTableModel
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if isNotFound(err) {
			return subscription.Subscription{}, false, nil
		}
		return subscription.Subscription{}, false, fmt.Errorf("get push subscription: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *SubscriptionRepository) list(ctx context.Context, query string, arg any) ([]subscription.Subscription, error) {
	var rows []subscriptionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, arg); err != nil {
		return nil, fmt.Errorf("select push subscriptions: %w", err)
	}

	out := make([]subscription.Subscription, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (m subscriptionTableModel) toDomain() subscription.Subscription {
	return subscription.Subscription{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		Platform:  subscription.Platform(m.Platform),
		Topics:    []string(m.Topics),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}
