package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/osa911/portfolio/internal/api/constants"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ok(c *gin.Context) { c.String(http.StatusOK, "ok") }

func TestMemoryThrottle(t *testing.T) {
	throttle := NewMemoryThrottle(2, time.Hour)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	throttle.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		allowed, err := throttle.Allow(ctx, "1.1.1.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, _ := throttle.Allow(ctx, "1.1.1.1")
	assert.False(t, allowed)

	// other clients are unaffected
	allowed, _ = throttle.Allow(ctx, "2.2.2.2")
	assert.True(t, allowed)

	// half a window refills one token
	now = now.Add(30 * time.Minute)
	allowed, _ = throttle.Allow(ctx, "1.1.1.1")
	assert.True(t, allowed)
}

func TestMemoryThrottleEvictsIdleClients(t *testing.T) {
	throttle := NewMemoryThrottle(1, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	throttle.now = func() time.Time { return now }

	_, _ = throttle.Allow(context.Background(), "1.1.1.1")
	now = now.Add(2 * time.Minute)
	_, _ = throttle.Allow(context.Background(), "2.2.2.2")

	assert.Len(t, throttle.clients, 1)
	assert.Contains(t, throttle.clients, "2.2.2.2")
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestRedisThrottle(t *testing.T) {
	client, mr := setupTestRedis(t)
	throttle := NewRedisThrottle(client, "portfolio:contact", 2, time.Hour)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := throttle.Allow(ctx, "1.1.1.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := throttle.Allow(ctx, "1.1.1.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	assert.Equal(t, time.Hour, mr.TTL("portfolio:contact:1.1.1.1"))

	mr.FastForward(time.Hour + time.Second)
	allowed, err = throttle.Allow(ctx, "1.1.1.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisThrottleError(t *testing.T) {
	client, mr := setupTestRedis(t)
	mr.Close()

	_, err := NewRedisThrottle(client, "p", 1, time.Minute).Allow(context.Background(), "k")
	assert.Error(t, err)
}

func TestThrottleDisabledByNonPositiveSettings(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		throttle Throttle
	}{
		{"memory zero limit", NewMemoryThrottle(0, time.Hour)},
		{"memory zero window", NewMemoryThrottle(5, 0)},
		{"memory zero both", NewMemoryThrottle(0, 0)},
		{"redis zero limit", NewRedisThrottle(client, "p", 0, time.Hour)},
		{"redis zero window", NewRedisThrottle(client, "p", 5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				allowed, err := tt.throttle.Allow(ctx, "1.2.3.4")
				require.NoError(t, err)
				assert.True(t, allowed)
			}
		})
	}
}

type throttleFunc func() (bool, error)

func (f throttleFunc) Allow(ctx context.Context, key string) (bool, error) { return f() }

func TestContactThrottle(t *testing.T) {
	tests := []struct {
		name     string
		throttle Throttle
		status   int
	}{
		{"allowed", throttleFunc(func() (bool, error) { return true, nil }), http.StatusOK},
		{"blocked", throttleFunc(func() (bool, error) { return false, nil }), http.StatusTooManyRequests},
		{"backend down fails open", throttleFunc(func() (bool, error) { return false, errors.New("redis down") }), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/api/contact", ContactThrottle(tt.throttle), ok)

			w := serve(router, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"success":false,"message":"Too many messages. Please try again later."}`, w.Body.String())
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(RateLimitConfig{RPS: 1, Burst: 1}))
	router.GET("/", ok)

	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(constants.HeaderRequestID), 36)
	assert.Equal(t, w.Header().Get(constants.HeaderRequestID), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderRequestID, "abc-123")
	w = serve(router, req)
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/", func(c *gin.Context) { panic("boom") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server Error"}`, w.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders(true))
	router.GET("/", ok)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "https://www.gstatic.com")
}

func TestCORS(t *testing.T) {
	preflight := func(router http.Handler, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		return serve(router, req)
	}
	newRouter := func(production bool, origins []string) *gin.Engine {
		router := gin.New()
		router.Use(CORS(production, origins))
		router.POST("/api/contact", ok)
		return router
	}

	t.Run("development allows the local client", func(t *testing.T) {
		router := newRouter(false, nil)
		w := preflight(router, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

		w = preflight(router, "https://evil.example")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("production uses the allowlist only", func(t *testing.T) {
		router := newRouter(true, []string{"https://portfolio.example", "portfolio.example"})
		w := preflight(router, "https://portfolio.example")
		assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))

		w = preflight(router, "http://localhost:3000")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("production without allowlist is same-origin", func(t *testing.T) {
		router := newRouter(true, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.Header.Set("Origin", "https://portfolio.example")
		w := serve(router, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

type fakeVerifier map[string]string

func (f fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if uid, ok := f[idToken]; ok {
		return uid, nil
	}
	return "", errors.New("invalid token")
}

func TestRequireAdmin(t *testing.T) {
	config := AdminConfig{
		Verifier:    fakeVerifier{"owner-token": "owner", "guest-token": "guest"},
		AdminUIDs:   []string{"owner"},
		StaticToken: "s3cret",
	}
	router := gin.New()
	router.POST("/api/projects", RequireAdmin(config), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyAdminUID))
	})

	tests := []struct {
		name    string
		headers map[string]string
		status  int
		uid     string
	}{
		{"no credentials", nil, http.StatusUnauthorized, ""},
		{"static header", map[string]string{constants.HeaderAdminKey: "s3cret"}, http.StatusOK, "static-token"},
		{"static bearer", map[string]string{"Authorization": "Bearer s3cret"}, http.StatusOK, "static-token"},
		{"wrong static", map[string]string{constants.HeaderAdminKey: "nope"}, http.StatusUnauthorized, ""},
		{"admin id token", map[string]string{"Authorization": "Bearer owner-token"}, http.StatusOK, "owner"},
		{"non-admin id token", map[string]string{"Authorization": "Bearer guest-token"}, http.StatusForbidden, ""},
		{"invalid id token", map[string]string{"Authorization": "Bearer forged"}, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/projects", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := serve(router, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.uid, w.Body.String())
			}
		})
	}
}

func TestRequireAdminDisabled(t *testing.T) {
	router := gin.New()
	router.POST("/api/projects", RequireAdmin(AdminConfig{}), ok)

	w := serve(router, httptest.NewRequest(http.MethodPost, "/api/projects", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
