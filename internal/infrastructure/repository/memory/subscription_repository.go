package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-club/internal/domain/subscription"
)

type SubscriptionRepository struct {
	mu      sync.RWMutex
	byID    map[string]subscription.Subscription
	idByTok map[string]string
}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{
		byID:    make(map[string]subscription.Subscription),
		idByTok: make(map[string]string),
	}
}

func (r *SubscriptionRepository) GetByToken(_ context.Context, token string) (subscription.Subscription, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.idByTok[token]
	if !ok {
		return subscription.Subscription{}, false, nil
	}
	return cloneSubscription(r.byID[id]), true, nil
}

func (r *SubscriptionRepository) GetByID(_ context.Context, id string) (subscription.Subscription, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	if !ok {
		return subscription.Subscription{}, false, nil
	}
	return cloneSubscription(item), true, nil
}

func (r *SubscriptionRepository) Upsert(_ context.Context, item subscription.Subscription) (subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if storedID, ok := r.idByTok[item.Token]; ok {
		stored := r.byID[storedID]
		item.ID = stored.ID
		item.CreatedAt = stored.CreatedAt
	}
	r.byID[item.ID] = cloneSubscription(item)
	r.idByTok[item.Token] = item.ID
	return cloneSubscription(item), nil
}

func (r *SubscriptionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item, ok := r.byID[id]; ok {
		delete(r.idByTok, item.Token)
		delete(r.byID, id)
	}
	return nil
}

func (r *SubscriptionRepository) ListByUser(_ context.Context, userID string) ([]subscription.Subscription, error) {
	return r.filter(func(item subscription.Subscription) bool { return item.UserID == userID }), nil
}

func (r *SubscriptionRepository) ListByTopic(_ context.Context, topic string) ([]subscription.Subscription, error) {
	return r.filter(func(item subscription.Subscription) bool { return item.HasTopic(topic) }), nil
}

func (r *SubscriptionRepository) filter(keep func(subscription.Subscription) bool) []subscription.Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]subscription.Subscription, 0)
	for _, item := range r.byID {
		if keep(item) {
			out = append(out, cloneSubscription(item))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) || (out[i].CreatedAt.Equal(out[j].CreatedAt) && out[i].ID < out[j].ID) })
	return out
}

func cloneSubscription(item subscription.Subscription) subscription.Subscription {
	item.Topics = append([]string(nil), item.Topics...)
	return item
}
