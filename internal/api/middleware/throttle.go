package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Throttle decides whether a client may make another request
type Throttle interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryThrottle keeps one token bucket per client in process memory.
// Limits are per instance.
type MemoryThrottle struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	clients  map[string]*clientLimiter
	lastScan time.Time
	now      func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryThrottle allows limit requests per window for each client.
// A limit below 1 or a non-positive window disables throttling.
func NewMemoryThrottle(limit int, window time.Duration) *MemoryThrottle {
	return &MemoryThrottle{
		limit:   limit,
		window:  window,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

func (t *MemoryThrottle) Allow(ctx context.Context, key string) (bool, error) {
	if throttleDisabled(t.limit, t.window) {
		return true, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.evictIdle(now)

	cl, ok := t.clients[key]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(t.window/time.Duration(t.limit)), t.limit),
		}
		t.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1), nil
}

// evictIdle drops clients whose bucket has fully refilled
func (t *MemoryThrottle) evictIdle(now time.Time) {
	if now.Sub(t.lastScan) < t.window {
		return
	}
	t.lastScan = now
	for key, cl := range t.clients {
		if now.Sub(cl.lastSeen) >= t.window {
			delete(t.clients, key)
		}
	}
}

// RedisThrottle counts requests per client in fixed windows shared by every instance
type RedisThrottle struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewRedisThrottle allows limit requests per window for each client.
// A limit below 1 or a non-positive window disables throttling.
func NewRedisThrottle(client *redis.Client, prefix string, limit int, window time.Duration) *RedisThrottle {
	return &RedisThrottle{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (t *RedisThrottle) Allow(ctx context.Context, key string) (bool, error) {
	if throttleDisabled(t.limit, t.window) {
		return true, nil
	}

	redisKey := fmt.Sprintf("%s:%s", t.prefix, key)

	count, err := t.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment throttle counter: %w", err)
	}
	if count == 1 {
		if err := t.client.Expire(ctx, redisKey, t.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set throttle window: %w", err)
		}
	}
	return count <= int64(t.limit), nil
}

func throttleDisabled(limit int, window time.Duration) bool {
	return limit < 1 || window <= 0
}

// ContactThrottle limits contact submissions per client IP.
// A throttle backend error lets the request through so the form keeps working.
func ContactThrottle(throttle Throttle) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := logging.GetGlobalLogger()
		clientIP := utils.GetRealIP(c)

		allowed, err := throttle.Allow(c.Request.Context(), clientIP)
		if err != nil {
			logger.Warn("Contact throttle unavailable, allowing request from %s: %v", clientIP, err)
			c.Next()
			return
		}
		if !allowed {
			logger.Warn("Contact throttle exceeded for %s", clientIP)
			utils.HandleContactReply(c, http.StatusTooManyRequests, false, common.MessageContactThrottled)
			c.Abort()
			return
		}
		c.Next()
	}
}
