package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix = "user:%d"
	trendingKey   = "trending:tags"
)

const (
	UserTTL     = 5 * time.Minute
	TrendingTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func TrendingKey() string {
	return trendingKey
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateTrending(ctx context.Context) {
	Invalidate(ctx, trendingKey)
}
