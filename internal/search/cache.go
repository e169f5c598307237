package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"resale/internal/utils"

	"github.com/redis/go-redis/v9"
)

// Cache stores encoded search pages.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache keeps pages in Redis under Prefix.
type RedisCache struct {
	Client redis.Cmdable
	Prefix string
}

func (c RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.Client.Get(ctx, c.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, c.Prefix+key, value, ttl).Err()
}

// CachedSearcher serves repeated queries from Cache. Cache failures are logged and
// the query goes to Next.
type CachedSearcher struct {
	Next  Searcher
	Cache Cache
	TTL   time.Duration
}

func (s CachedSearcher) Search(ctx context.Context, q Query) (Result, error) {
	key := cacheKey(q)
	if b, ok, err := s.Cache.Get(ctx, key); err != nil {
		utils.LogEvent("", "search", "cache_get", err.Error())
	} else if ok {
		var res Result
		if err := json.Unmarshal(b, &res); err == nil {
			return res, nil
		}
	}

	res, err := s.Next.Search(ctx, q)
	if err != nil {
		return Result{}, err
	}
	if b, err := json.Marshal(res); err == nil {
		if err := s.Cache.Set(ctx, key, b, s.TTL); err != nil {
			utils.LogEvent("", "search", "cache_set", err.Error())
		}
	}
	return res, nil
}

func cacheKey(q Query) string {
	h := sha256.New()
	for _, part := range []string{q.Index, q.Filters, q.Text, strconv.Itoa(q.Page)} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return "search:" + hex.EncodeToString(h.Sum(nil))
}
