package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
	"tourcrm/shared"
	"tourcrm/shared/cache"
	"tourcrm/shared/constant"
	"tourcrm/transport/http/response"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"

	RateLimiterStoreRedis  = "redis"
	RateLimiterStoreMemory = "memory"
)

// RateLimit limits requests per client. The redis store counts over a fixed
// window shared by every instance and lets the request through when the cache
// fails. The memory store keeps a token bucket per client in this process.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	if !a.config.App.RateLimiter.Enable {
		return func(next http.Handler) http.Handler { return next }
	}

	if a.config.App.RateLimiter.Store == RateLimiterStoreMemory || !a.config.Cache.Enable {
		if a.config.App.RateLimiter.Store != RateLimiterStoreMemory {
			log.Warn().Msg("Rate limiter needs the Redis cache, falling back to the in-memory store")
		}

		return a.memoryRateLimit(newVisitors(a.config.App.RateLimiter.MaxRequests, a.config.App.RateLimiter.WindowSeconds))
	}

	return a.redisRateLimit()
}

func (a *appMiddleware) redisRateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			userAgent := a.getUA(r)
			clientIP := a.getClientIP(r)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP, userAgent)

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			if err != nil {
				if errors.Is(err, cache.Nil) {
					count = 1
				} else {
					next.ServeHTTP(w, r)

					return
				}
			} else {
				count++
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			err = a.cache.Save(r.Context(), cacheKey, count, windowSecs)
			if err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) memoryRateLimit(v *visitors) func(http.Handler) http.Handler {
	maxReqs := strconv.Itoa(a.config.App.RateLimiter.MaxRequests)
	windowSecs := strconv.Itoa(a.config.App.RateLimiter.WindowSeconds)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := v.get(shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r)), time.Now())

			if !limiter.Allow() {
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, maxReqs)
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(int(limiter.Tokens())))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, windowSecs)

			next.ServeHTTP(w, r)
		})
	}
}

const visitorIdleTimeout = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors holds one token bucket per client. A bucket refills maxReqs
// tokens per window and idle buckets are dropped on the next lookup sweep.
type visitors struct {
	mu        sync.Mutex
	entries   map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

func newVisitors(maxReqs, windowSecs int) *visitors {
	if windowSecs <= 0 {
		windowSecs = 1
	}

	return &visitors{
		entries: make(map[string]*visitor),
		limit:   rate.Limit(float64(maxReqs) / float64(windowSecs)),
		burst:   maxReqs,
	}
}

func (v *visitors) get(key string, now time.Time) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	if now.Sub(v.lastSweep) > visitorIdleTimeout {
		for k, entry := range v.entries {
			if now.Sub(entry.lastSeen) > visitorIdleTimeout {
				delete(v.entries, k)
			}
		}

		v.lastSweep = now
	}

	entry, ok := v.entries[key]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(v.limit, v.burst)}
		v.entries[key] = entry
	}

	entry.lastSeen = now

	return entry.limiter
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// getClientIP is the peer address without its port. Forwarding headers are
// honoured only through chi's RealIP, which the server installs when the
// proxy is trusted.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
