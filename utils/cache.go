// File: lifekitadmin/utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"lifekitadmin/config"

	"github.com/go-redis/redis/v8"
)

// SessionClient backs the admin session store.
var SessionClient *redis.Client

// InitSessionCache initializes the Redis client that holds admin sessions.
func InitSessionCache() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the Redis client for the session store.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionCache()
	}
	return SessionClient
}
