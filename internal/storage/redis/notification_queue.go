package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lifesaver/internal/domain"
	"lifesaver/pkg/e"

	"github.com/redis/go-redis/v9"
)

const NotificationQueueKey = "assignments:webhook"

// NotificationQueue is a FIFO of assignment notifications: LPUSH on enqueue,
// BRPOP on the sender side.
type NotificationQueue struct {
	client *redis.Client
	key    string
}

func NewNotificationQueue(client *redis.Client, key string) *NotificationQueue {
	if key == "" {
		key = NotificationQueueKey
	}
	return &NotificationQueue{client: client, key: key}
}

func (q *NotificationQueue) Enqueue(ctx context.Context, n domain.AssignmentNotification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *NotificationQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.AssignmentNotification, error) {
	var n domain.AssignmentNotification

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return n, e.ErrWebHookEmpty
		}
		return n, err
	}
	if len(res) < 2 {
		return n, e.ErrWebHookEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &n); err != nil {
		return n, err
	}
	return n, nil
}

func (q *NotificationQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
