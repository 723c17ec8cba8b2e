package cache

import (
	"time"

	"stockdock/database"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

var ChartResponseCache = cache.New(1*time.Minute, 2*time.Minute)
var QuoteCache = cache.New(30*time.Second, 1*time.Minute)
var SnapshotCache = cache.New(30*time.Second, 1*time.Minute)
var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)

const chartKeyPrefix = "chart_"

func ChartKey(symbol, span string) string {
	return chartKeyPrefix + symbol + "_" + span
}

// GetChartResponseCache reads the local cache first, then Redis when it is
// connected. Redis hits are copied into the local cache.
func GetChartResponseCache[T any](key string, target *T) (bool, error) {
	if cached, found := ChartResponseCache.Get(key); found {
		if v, ok := cached.(T); ok {
			*target = v
			return true, nil
		}
	}

	if database.RedisHelper == nil {
		return false, nil
	}

	ok, err := database.RedisHelper.GetAsStruct(key, target)
	if ok && err == nil {
		ChartResponseCache.Set(key, *target, cache.DefaultExpiration)
	}
	return ok, err
}

func SetChartResponseCache[T any](key string, value T, ttl time.Duration) {
	ChartResponseCache.Set(key, value, ttl)

	if database.RedisHelper == nil {
		return
	}
	if err := database.RedisHelper.SetStruct(key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("chart cache write to redis failed")
	}
}

// InvalidateChart drops every cached span of symbol.
func InvalidateChart(symbol string, spans []string) {
	for _, span := range spans {
		key := ChartKey(symbol, span)
		ChartResponseCache.Delete(key)
		if database.RedisHelper != nil {
			_ = database.RedisHelper.Delete(key)
		}
	}
}
