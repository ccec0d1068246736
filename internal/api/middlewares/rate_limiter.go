package middlewares

import (
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type KeyFunc func(r *http.Request) string

// PerIPKey buckets clients by IP. Swap in a per-user KeyFunc once requests
// carry an authenticated subject.
func PerIPKey(prefix string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientIP(r)
		if ip == "" {
			ip = "unknown"
		}
		return prefix + ":" + ip
	}
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For lists client first, then each proxy.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func limited(w http.ResponseWriter, policy, key string, retryAfterSec int64, remoteAddr string) {
	if retryAfterSec < 1 {
		retryAfterSec = 1
	}
	w.Header().Set("Retry-After", strconv.FormatInt(retryAfterSec, 10))
	log.Printf("[RateLimit] %s blocked %s (key=%s), retry in %ds", policy, remoteAddr, key, retryAfterSec)
	http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
}

// tokenBucketScript refills tokens by elapsed time and takes one per
// request, atomically. Returns {allowed, tokens_left, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local rate = tonumber(ARGV[1])
local cap  = tonumber(ARGV[2])

local t = redis.call('TIME')
local now_ms = tonumber(t[1]) * 1000 + math.floor(tonumber(t[2]) / 1000)

local state  = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts     = tonumber(state[2])
if tokens == nil then
  tokens = cap
  ts = now_ms
end

if now_ms > ts then
  tokens = math.min(cap, tokens + (now_ms - ts) / 1000.0 * rate)
end

local allowed = 0
local retry_ms = 0
if tokens >= 1.0 then
  tokens = tokens - 1.0
  allowed = 1
else
  retry_ms = math.ceil((1.0 - tokens) * 1000.0 / rate)
end

redis.call('HMSET', KEYS[1], 'tokens', tokens, 'ts', now_ms)
redis.call('PEXPIRE', KEYS[1], math.ceil(cap / rate * 1000.0))

return {allowed, tostring(tokens), retry_ms}
`)

type RedisTokenBucket struct {
	rdb   *redis.Client
	keyFn KeyFunc
	rate  float64
	burst int
}

func NewRedisTokenBucket(rdb *redis.Client, ratePerSecond float64, burst int, keyFn KeyFunc) *RedisTokenBucket {
	return &RedisTokenBucket{rdb: rdb, keyFn: keyFn, rate: ratePerSecond, burst: burst}
}

func (tb *RedisTokenBucket) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := tb.keyFn(r)

		res, err := tokenBucketScript.Run(r.Context(), tb.rdb, []string{key},
			strconv.FormatFloat(tb.rate, 'f', -1, 64),
			strconv.Itoa(tb.burst),
		).Slice()
		if err != nil {
			// Fail open: a Redis hiccup must not take the API down.
			log.Printf("[RateLimit] token-bucket redis error: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		allowed, _ := res[0].(int64)
		remaining, _ := res[1].(string)
		retryMs, _ := res[2].(int64)

		w.Header().Set("X-RateLimit-Policy", "token-bucket")
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(tb.burst))
		w.Header().Set("X-RateLimit-Remaining", remaining)

		if allowed != 1 {
			limited(w, "token-bucket", key, (retryMs+999)/1000, r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type RedisSlidingWindow struct {
	rdb    *redis.Client
	keyFn  KeyFunc
	limit  int
	window time.Duration
}

func NewRedisSlidingWindow(rdb *redis.Client, limit int, window time.Duration, keyFn KeyFunc) *RedisSlidingWindow {
	return &RedisSlidingWindow{rdb: rdb, keyFn: keyFn, limit: limit, window: window}
}

func (sw *RedisSlidingWindow) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		now := time.Now().UnixMilli()
		key := sw.keyFn(r)
		windowMs := sw.window.Milliseconds()

		member := strconv.FormatInt(now, 10) + ":" + strconv.FormatInt(time.Now().UnixNano()%1_000_000, 36)
		pipe := sw.rdb.TxPipeline()
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: member})
		pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(now-windowMs, 10))
		countCmd := pipe.ZCard(ctx, key)
		pipe.PExpire(ctx, key, sw.window+time.Second)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("[RateLimit] sliding-window redis error: %v", err)
			next.ServeHTTP(w, r)
			return
		}
		count := int(countCmd.Val())

		w.Header().Set("X-RateLimit-Policy", "sliding-window")
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(sw.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, sw.limit-count)))

		if count > sw.limit {
			var retrySec int64 = 1
			if oldest, err := sw.rdb.ZRangeWithScores(ctx, key, 0, 0).Result(); err == nil && len(oldest) == 1 {
				ms := int64(oldest[0].Score) + windowMs - now
				retrySec = max((ms+999)/1000, 1)
			}
			limited(w, "sliding-window", key, retrySec, r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}
