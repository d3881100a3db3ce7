package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"
	"time" // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// CacheTTL is how long list responses stay cached. Short on purpose: the
// cache is a response cache, never an aggregation input, and cross-user
// staleness after a membership edit is bounded by this window.
const CacheTTL = 60 * time.Second

// WalletListKey is the cache key for a user's wallet list response
func WalletListKey(userID uint) string {
	return "wallets:user:" + strconv.Itoa(int(userID))
}

// WalletTxnsKey is the cache key for a wallet's transaction list response
func WalletTxnsKey(walletID uint) string {
	return "wallet:txns:" + strconv.Itoa(int(walletID))
}

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

// DeleteCache deletes keys from Redis
func DeleteCache(ctx context.Context, rdb *redis.Client, keys ...string) error {
	return rdb.Del(ctx, keys...).Err()
}
