package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"ecohome/internal/model"
)

// resumeTTL bounds how long a disconnected client can auto-rejoin.
const resumeTTL = 3 * time.Hour

// ResumeCache retains session-restore state so a reloaded client can rejoin
// without re-entering the code. Entries expire after three hours.
type ResumeCache interface {
	Set(ctx context.Context, token string, state *model.ResumeState) error
	Get(ctx context.Context, token string) (*model.ResumeState, error)
	Delete(ctx context.Context, token string) error
}

type resumeCache struct {
	client *redis.Client
}

func NewResumeCache(client *redis.Client) ResumeCache {
	return &resumeCache{
		client: client,
	}
}

func (c *resumeCache) key(token string) string {
	return "resume:" + token
}

func (c *resumeCache) Set(ctx context.Context, token string, state *model.ResumeState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(token), data, resumeTTL).Err()
}

func (c *resumeCache) Get(ctx context.Context, token string) (*model.ResumeState, error) {
	data, err := c.client.Get(ctx, c.key(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state model.ResumeState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *resumeCache) Delete(ctx context.Context, token string) error {
	return c.client.Del(ctx, c.key(token)).Err()
}
