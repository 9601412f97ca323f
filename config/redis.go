package config

import (
	"Farol/services/redis"
	"log"
)

// ConnectRedis connects to the Redis instance at redisURL. An empty URL is
// not an error: the server runs without presence/cache features and every
// RedisClient method no-ops on the nil client.
func ConnectRedis(redisURL string) (*redis.RedisClient, error) {
	if redisURL == "" {
		log.Println("[CONFIG] REDIS_URL not set, presence and cache disabled")
		return nil, nil
	}
	redisClient, err := redis.InitRedis(redisURL, 0)
	if err != nil {
		log.Printf("Error connecting to Redis: %v", err)
		return nil, err
	}
	log.Println("Redis connection established")
	return redisClient, nil
}
