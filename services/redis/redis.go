package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the go-redis client for the two volatile concerns the
// server keeps out of PostgreSQL: the online-presence set and a short-lived
// leaderboard cache. Every method is nil-safe so the server runs unchanged
// without a configured Redis.
type RedisClient struct {
	Client *redis.Client
	Ctx    context.Context
}

// InitRedis initializes the Redis connection and verifies it with a ping.
func InitRedis(addr string, db int) (*RedisClient, error) {
	rc := &RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: addr, DB: db}),
		Ctx:    context.Background(),
	}
	if err := rc.Client.Ping(rc.Ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}
	log.Println("Successfully connected to Redis")
	return rc, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *RedisClient) error {
	if rc == nil {
		return nil
	}
	if err := rc.Client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %v", err)
	}
	return nil
}

// FlushPresence drops the whole presence set. Called at startup: nobody is
// online when the server boots.
func (rc *RedisClient) FlushPresence() error {
	if rc == nil {
		return nil
	}
	if err := rc.Client.Del(rc.Ctx, onlineUsersKey()).Err(); err != nil {
		return fmt.Errorf("failed to flush presence set: %v", err)
	}
	return nil
}

func (rc *RedisClient) AddOnlineUser(username string) error {
	if rc == nil {
		return nil
	}
	return rc.Client.SAdd(rc.Ctx, onlineUsersKey(), username).Err()
}

func (rc *RedisClient) RemoveOnlineUser(username string) error {
	if rc == nil {
		return nil
	}
	return rc.Client.SRem(rc.Ctx, onlineUsersKey(), username).Err()
}

func (rc *RedisClient) OnlineUsers() ([]string, error) {
	if rc == nil {
		return nil, nil
	}
	return rc.Client.SMembers(rc.Ctx, onlineUsersKey()).Result()
}

// CacheLeaderboard stores a leaderboard snapshot as JSON with a short TTL.
func (rc *RedisClient) CacheLeaderboard(limit int, entries interface{}) error {
	if rc == nil {
		return nil
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %v", err)
	}
	return rc.Client.Set(rc.Ctx, leaderboardKey(limit), data, 30*time.Second).Err()
}

// CachedLeaderboard unmarshals a cached snapshot into dest. The bool is
// false on a cache miss (or with no Redis configured).
func (rc *RedisClient) CachedLeaderboard(limit int, dest interface{}) (bool, error) {
	if rc == nil {
		return false, nil
	}
	data, err := rc.Client.Get(rc.Ctx, leaderboardKey(limit)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached leaderboard: %v", err)
	}
	return true, nil
}

// InvalidateLeaderboard drops every cached leaderboard snapshot. Called when
// the counters change at game end.
func (rc *RedisClient) InvalidateLeaderboard() error {
	if rc == nil {
		return nil
	}
	keys, err := rc.Client.Keys(rc.Ctx, leaderboardPattern()).Result()
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := rc.Client.Del(rc.Ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
