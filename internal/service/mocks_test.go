package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/osa911/portfolio/internal/mailer"
	"github.com/osa911/portfolio/internal/models"
	"github.com/osa911/portfolio/internal/repository"
)

// Mock ContactRepository
type mockContactRepository struct {
	repository.ContactRepository
	mu         sync.Mutex
	createFunc func(ctx context.Context, contact *models.ContactMessage) (*models.ContactMessage, error)
	stored     []*models.ContactMessage
	calls      int
}

func (m *mockContactRepository) Create(ctx context.Context, contact *models.ContactMessage) (*models.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.createFunc != nil {
		return m.createFunc(ctx, contact)
	}
	saved := *contact
	saved.ID = fmt.Sprintf("contact-%d", len(m.stored)+1)
	m.stored = append(m.stored, &saved)
	return &saved, nil
}

// Mock Notifier
type mockNotifier struct {
	verifyErr   error
	sendErr     error
	verifyCalls int
	sent        []mailer.Message
	sendCalls   int
}

func (m *mockNotifier) Verify(ctx context.Context) error {
	m.verifyCalls++
	return m.verifyErr
}

func (m *mockNotifier) Send(ctx context.Context, msg mailer.Message) error {
	m.sendCalls++
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

// Mock ChatNotifier
type mockChat struct {
	err   error
	calls int
}

func (m *mockChat) SendContactMessage(ctx context.Context, contact *models.ContactMessage) error {
	m.calls++
	return m.err
}

// Mock CaptchaVerifier
type mockCaptcha struct {
	ok    bool
	err   error
	calls int
}

func (m *mockCaptcha) VerifyToken(ctx context.Context, token string, minScore float64) (bool, error) {
	m.calls++
	return m.ok, m.err
}

// Mock ProjectRepository
type mockProjectRepository struct {
	repository.ProjectRepository
	createFunc       func(ctx context.Context, project *models.Project) (*models.Project, error)
	listFunc         func(ctx context.Context) ([]*models.Project, error)
	listFeaturedFunc func(ctx context.Context) ([]*models.Project, error)
	created          []*models.Project
}

func (m *mockProjectRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, project)
	}
	saved := *project
	saved.ID = fmt.Sprintf("project-%d", len(m.created)+1)
	m.created = append(m.created, &saved)
	return &saved, nil
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*models.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return m.created, nil
}

func (m *mockProjectRepository) ListFeatured(ctx context.Context) ([]*models.Project, error) {
	if m.listFeaturedFunc != nil {
		return m.listFeaturedFunc(ctx)
	}
	return []*models.Project{}, nil
}
