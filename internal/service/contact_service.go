package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/mailer"
	"github.com/osa911/portfolio/internal/models"
	"github.com/osa911/portfolio/internal/repository"
	"github.com/osa911/portfolio/internal/validation"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer trace.Tracer = otel.Tracer("github.com/osa911/portfolio/internal/service")

// Notifier delivers operator notifications through the mail relay
type Notifier interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg mailer.Message) error
}

// ChatNotifier is a secondary, best-effort notification channel
type ChatNotifier interface {
	SendContactMessage(ctx context.Context, contact *models.ContactMessage) error
}

// CaptchaVerifier checks a client-side bot challenge token
type CaptchaVerifier interface {
	VerifyToken(ctx context.Context, token string, minScore float64) (bool, error)
}

// ContactInput is one inbound contact form submission
type ContactInput struct {
	Name           string `validate:"notblank"`
	Email          string `validate:"notblank"`
	Subject        string
	Message        string `validate:"notblank"`
	RecaptchaToken string
	ClientIP       string
}

func (in ContactInput) trimmed() ContactInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	return in
}

// ContactServiceConfig holds the injected settings of the contact pipeline
type ContactServiceConfig struct {
	// Recipient is the operator address notified of every submission
	Recipient    string
	StoreTimeout time.Duration
	MailTimeout  time.Duration
}

// ContactOption customises a ContactService
type ContactOption func(*ContactService)

// WithChatNotifier adds a secondary notification channel
func WithChatNotifier(chat ChatNotifier) ContactOption {
	return func(s *ContactService) { s.chat = chat }
}

// WithCaptcha requires a passing bot check before anything is stored or sent
func WithCaptcha(captcha CaptchaVerifier, minScore float64) ContactOption {
	return func(s *ContactService) {
		s.captcha = captcha
		s.captchaMinScore = minScore
	}
}

// WithClock overrides the time source used for CreatedAt
func WithClock(now func() time.Time) ContactOption {
	return func(s *ContactService) { s.now = now }
}

// WithLogger overrides the global logger
func WithLogger(logger *logging.Logger) ContactOption {
	return func(s *ContactService) { s.logger = logger }
}

// ContactService runs the validate, persist, notify pipeline for contact submissions.
//
// Outcome policy: a submission succeeds once it passed validation and the
// operator email went out. The stored copy is an audit trail; losing it is
// logged but does not fail the request. A failed email always fails the
// request, whatever happened to the stored copy, which is never rolled back.
type ContactService struct {
	repo            repository.ContactRepository
	notifier        Notifier
	chat            ChatNotifier
	captcha         CaptchaVerifier
	captchaMinScore float64
	config          ContactServiceConfig
	validate        *validator.Validate
	logger          *logging.Logger
	now             func() time.Time
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactRepository, notifier Notifier, config ContactServiceConfig, opts ...ContactOption) *ContactService {
	if config.StoreTimeout <= 0 {
		config.StoreTimeout = 5 * time.Second
	}
	if config.MailTimeout <= 0 {
		config.MailTimeout = 15 * time.Second
	}

	s := &ContactService{
		repo:     repo,
		notifier: notifier,
		config:   config,
		validate: validation.New(),
		logger:   logging.GetGlobalLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates, stores and forwards one submission.
// The returned record carries the store-assigned ID when persistence worked.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*models.ContactMessage, error) {
	ctx, span := tracer.Start(ctx, "ContactService.Submit")
	defer span.End()

	input = input.trimmed()
	s.logger.Info("Contact form submission received from %s (ip=%s)", input.Email, input.ClientIP)

	if err := s.validate.Struct(input); err != nil {
		s.logger.Warn("Contact form validation failed: %v", err)
		span.SetStatus(codes.Error, "validation failed")
		fields := validation.FailedFields(err)
		for i, field := range fields {
			fields[i] = strings.ToLower(field)
		}
		return nil, &ValidationError{Fields: fields}
	}

	if s.captcha != nil {
		ok, err := s.captcha.VerifyToken(ctx, input.RecaptchaToken, s.captchaMinScore)
		if err != nil || !ok {
			s.logger.Warn("Contact form captcha rejected for %s: %v", input.Email, err)
			span.SetStatus(codes.Error, "captcha rejected")
			return nil, stepError(ErrCaptcha, err)
		}
	}

	contact := &models.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: s.now().UTC(),
	}

	if saved, err := s.persist(ctx, contact); err != nil {
		s.logger.Error("Failed to save contact to database, continuing with notification: %v", err)
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("contact.persisted", false))
	} else {
		contact = saved
		s.logger.Info("Contact saved to database: %s", contact.ID)
		span.SetAttributes(attribute.Bool("contact.persisted", true))
	}

	notifyErr := s.notify(ctx, contact)
	s.notifyChat(ctx, contact)

	if notifyErr != nil {
		span.RecordError(notifyErr)
		span.SetStatus(codes.Error, "notification failed")
		return nil, notifyErr
	}
	return contact, nil
}

func (s *ContactService) persist(ctx context.Context, contact *models.ContactMessage) (*models.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	saved, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, stepError(ErrPersistence, err)
	}
	return saved, nil
}

func (s *ContactService) notify(ctx context.Context, contact *models.ContactMessage) error {
	if s.config.Recipient == "" {
		s.logger.Error("Contact notification skipped: no recipient configured")
		return stepError(ErrNotificationTransport, errors.New("no recipient configured"))
	}

	verifyCtx, cancel := context.WithTimeout(ctx, s.config.MailTimeout)
	defer cancel()
	if err := s.notifier.Verify(verifyCtx); err != nil {
		s.logger.Error("Email verification failed: %v", err)
		return stepError(ErrNotificationTransport, err)
	}
	s.logger.Info("Email transporter verified successfully")

	msg, err := ComposeContactEmail(contact, s.config.Recipient)
	if err != nil {
		s.logger.Error("Failed to compose contact email: %v", err)
		return stepError(ErrNotificationSend, err)
	}

	sendCtx, cancelSend := context.WithTimeout(ctx, s.config.MailTimeout)
	defer cancelSend()
	if err := s.notifier.Send(sendCtx, msg); err != nil {
		s.logger.Error("Email sending failed: %v", err)
		return stepError(ErrNotificationSend, err)
	}
	s.logger.Info("Contact notification sent to %s", s.config.Recipient)
	return nil
}

func (s *ContactService) notifyChat(ctx context.Context, contact *models.ContactMessage) {
	if s.chat == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.config.MailTimeout)
	defer cancel()
	if err := s.chat.SendContactMessage(ctx, contact); err != nil {
		s.logger.Warn("Telegram notification failed: %v", err)
	}
}

var contactEmailTemplate = template.Must(template.New("contact").Parse(`<h3>New Contact Message</h3>
<p>You have received a new message from your portfolio contact form:</p>
<ul>
  <li><strong>Name:</strong> {{.Name}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Subject:</strong> {{.SubjectOrDefault}}</li>
</ul>
<h3>Message:</h3>
<p style="white-space: pre-wrap">{{.Message}}</p>
<p><small>Received {{.CreatedAt.Format "2006-01-02 15:04:05 MST"}}</small></p>
`))

// ComposeContactEmail renders the operator notification for one submission
func ComposeContactEmail(contact *models.ContactMessage, recipient string) (mailer.Message, error) {
	var html bytes.Buffer
	if err := contactEmailTemplate.Execute(&html, contact); err != nil {
		return mailer.Message{}, fmt.Errorf("failed to render contact email: %w", err)
	}

	text := fmt.Sprintf(
		"New Contact Message\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		contact.Name,
		contact.Email,
		contact.SubjectOrDefault(),
		contact.Message,
	)

	return mailer.Message{
		FromName: "Portfolio Contact Form",
		To:       recipient,
		ReplyTo:  contact.Email,
		Subject:  fmt.Sprintf("Portfolio Contact: %s - %s", contact.Name, contact.SubjectOrDefault()),
		HTML:     html.String(),
		Text:     text,
	}, nil
}
