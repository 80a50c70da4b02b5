package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/models"
	"github.com/osa911/portfolio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubStore struct{}

func (stubStore) Ping(ctx context.Context) error { return nil }
func (stubStore) Backend() string                { return "postgres" }

type stubContact struct{ calls int }

func (s *stubContact) Submit(ctx context.Context, input service.ContactInput) (*models.ContactMessage, error) {
	s.calls++
	return &models.ContactMessage{ID: "1", Name: input.Name}, nil
}

type stubProjects struct{}

func (stubProjects) List(ctx context.Context) ([]*models.Project, error) {
	return []*models.Project{{ID: "1", Title: "A"}}, nil
}

func (stubProjects) ListFeatured(ctx context.Context) ([]*models.Project, error) {
	return nil, nil
}

func (stubProjects) Create(ctx context.Context, input service.ProjectInput) (*models.Project, error) {
	return &models.Project{ID: "2", Title: input.Title}, nil
}

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *stubContact) {
	contact := &stubContact{}
	if cfg.ContactRateLimit == 0 {
		cfg.ContactRateLimit = 5
		cfg.ContactRateWindow = time.Hour
	}
	if cfg.Port == "" {
		cfg.Port = "0"
	}
	return NewServer(Dependencies{
		Config:   cfg,
		Store:    stubStore{},
		Contact:  contact,
		Projects: stubProjects{},
	}), contact
}

func do(s *Server, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	s, _ := newTestServer(t, &config.Config{Environment: "development"})

	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/api/projects", "").Code)
	assert.Equal(t, http.StatusCreated, do(s, http.MethodPost, "/api/projects", `{"title":"t","description":"d"}`).Code)

	w := do(s, http.MethodGet, "/api/projects/featured", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(s, http.MethodPost, "/api/contact", `{"name":"Ana","email":"ana@x.com","message":"Hello"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestTrailingSlash(t *testing.T) {
	s, _ := newTestServer(t, &config.Config{Environment: "development"})

	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/api/projects/", "").Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodPost, "/api/contact/", `{"name":"Ana","email":"ana@x.com","message":"Hello"}`).Code)
}

func TestUnknownAPIRoute(t *testing.T) {
	s, _ := newTestServer(t, &config.Config{Environment: "development"})

	w := do(s, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, w.Body.String())
}

func TestContactThrottled(t *testing.T) {
	s, contact := newTestServer(t, &config.Config{
		Environment:       "development",
		ContactRateLimit:  1,
		ContactRateWindow: time.Hour,
	})

	body := `{"name":"Ana","email":"ana@x.com","message":"Hello"}`
	assert.Equal(t, http.StatusOK, do(s, http.MethodPost, "/api/contact", body).Code)

	w := do(s, http.MethodPost, "/api/contact", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Too many messages. Please try again later."}`, w.Body.String())
	assert.Equal(t, 1, contact.calls)
}

func TestStaticSPA(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "main.js"), []byte("console.log(1)"), 0o644))

	s, _ := newTestServer(t, &config.Config{Environment: "production", StaticDir: dir})

	w := do(s, http.MethodGet, "/static/main.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())

	w = do(s, http.MethodGet, "/projects/portfolio", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "app")

	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/api/unknown", "").Code)
}

func TestStaticDisabledInDevelopment(t *testing.T) {
	s, _ := newTestServer(t, &config.Config{Environment: "development", StaticDir: t.TempDir()})
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/about", "").Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _ := newTestServer(t, &config.Config{Environment: "development", Port: "0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestAPIRateLimitSkipsStaticAndHealth(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.js"), []byte("console.log(1)"), 0o644))

	s, _ := newTestServer(t, &config.Config{Environment: "production", StaticDir: dir})

	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, do(s, http.MethodGet, "/main.js", "").Code)
		require.Equal(t, http.StatusOK, do(s, http.MethodGet, "/about", "").Code)
		require.Equal(t, http.StatusOK, do(s, http.MethodGet, "/health", "").Code)
	}

	limited := false
	for i := 0; i < 50 && !limited; i++ {
		limited = do(s, http.MethodGet, "/api/projects", "").Code == http.StatusTooManyRequests
	}
	assert.True(t, limited)
}
