package database

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	RedisHelper *redisUtil
)

type redisUtil struct {
	client *redis.Client
	ctx    context.Context
}

func InitRedis(url string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return fmt.Errorf("invalid Redis URL: %w", err)
	}

	if opts.TLSConfig == nil && strings.HasPrefix(url, "rediss://") {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	RedisHelper = NewRedisHelper(redis.NewClient(opts))

	if _, err := RedisHelper.client.Ping(RedisHelper.ctx).Result(); err != nil {
		RedisHelper = nil
		return fmt.Errorf("could not connect to Redis: %w", err)
	}

	log.Info().Msg("Connected to Redis successfully")
	return nil
}

func NewRedisHelper(client *redis.Client) *redisUtil {
	return &redisUtil{
		client: client,
		ctx:    context.Background(),
	}
}

func (r *redisUtil) Set(key string, value interface{}, expiration time.Duration) error {
	err := r.client.Set(r.ctx, key, value, expiration).Err()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis SET Error")
	}
	return err
}

func (r *redisUtil) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis GET Error")
		return "", err
	}
	return val, nil
}

func (r *redisUtil) SetStruct(key string, value any, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Set(key, raw, expiration)
}

// GetAsStruct decodes the JSON stored at key into target. It reports false
// when the key is absent.
func (r *redisUtil) GetAsStruct(key string, target any) (bool, error) {
	val, err := r.Get(key)
	if err != nil || val == "" {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), target); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisUtil) Delete(key string) error {
	err := r.client.Del(r.ctx, key).Err()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Redis DEL Error")
	}
	return err
}
