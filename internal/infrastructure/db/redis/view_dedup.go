package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultViewTTL = time.Hour

// setNXer is the subset of redis.Cmdable the dedup store needs.
type setNXer interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// ViewDedup remembers which viewers already counted towards a job's views.
// Key format: views:<job_id>:<viewer>
type ViewDedup struct {
	client setNXer
	ttl    time.Duration
}

// NewViewDedup creates a ViewDedup whose marks expire after ttl.
// A non-positive ttl falls back to one hour.
func NewViewDedup(client redis.Cmdable, ttl time.Duration) *ViewDedup {
	if ttl <= 0 {
		ttl = defaultViewTTL
	}
	return &ViewDedup{client: client, ttl: ttl}
}

// FirstView atomically marks the (job, viewer) pair and reports whether it was
// unmarked before.
func (d *ViewDedup) FirstView(ctx context.Context, jobID, viewer string) (bool, error) {
	ok, err := d.client.SetNX(ctx, viewKey(jobID, viewer), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("view dedup: %w", err)
	}
	return ok, nil
}

func viewKey(jobID, viewer string) string {
	return fmt.Sprintf("views:%s:%s", jobID, viewer)
}
