package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dsa_tracker_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
)

// StatsCache 统计结果的redis缓存
// 只是展示加速用的派生缓存：学习记录每次写入后显式失效，
// 不参与任何校验口径
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func (c *StatsCache) key(kind string, userID uint) string {
	return fmt.Sprintf("stats:%s:%d", kind, userID)
}

// Get 命中时反序列化到dest并返回true；redis不可用时按未命中处理
func (c *StatsCache) Get(ctx context.Context, kind string, userID uint, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, c.key(kind, userID)).Bytes()
	if err != nil {
		monitoring.StatsCacheOps.WithLabelValues(kind, "miss").Inc()
		return false
	}
	if json.Unmarshal(raw, dest) != nil {
		monitoring.StatsCacheOps.WithLabelValues(kind, "miss").Inc()
		return false
	}
	monitoring.StatsCacheOps.WithLabelValues(kind, "hit").Inc()
	return true
}

func (c *StatsCache) Set(ctx context.Context, kind string, userID uint, value interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, c.key(kind, userID), raw, c.ttl)
}

// Invalidate 清掉某用户的全部统计缓存
func (c *StatsCache) Invalidate(ctx context.Context, userID uint) {
	if c == nil || c.rdb == nil {
		return
	}
	for _, kind := range []string{"sessions", "user", "analytics"} {
		c.rdb.Del(ctx, c.key(kind, userID))
	}
}
