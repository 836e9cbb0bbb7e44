// Package metadata stores small key/value facts about the local cache,
// such as when the schedule was last fetched and which user signed in last.
package metadata

import (
	"context"
	"time"
)

// Keys used by the client.
const (
	KeyScheduleFetchedAt = "schedule.fetched_at"
	KeyLastEmail         = "auth.last_email"
)

type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	GetTime(ctx context.Context, key string) (time.Time, bool, error)
	SetTime(ctx context.Context, key string, t time.Time) error
	Delete(ctx context.Context, key string) error
}
