package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lifesaver/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "profiles:"

// ProfileCache keeps requester profiles read on the SOS path.
type ProfileCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewProfileCache(r *Redis, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: r.Client, ttl: ttl}
}

// Get returns nil, nil on a miss.
func (c *ProfileCache) Get(ctx context.Context, id uuid.UUID) (*domain.RequesterProfile, error) {
	data, err := c.client.Get(ctx, profileKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var p domain.RequesterProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *ProfileCache) Set(ctx context.Context, p domain.RequesterProfile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileKeyPrefix+p.ID.String(), b, c.ttl).Err()
}

func (c *ProfileCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, profileKeyPrefix+id.String()).Err()
}
