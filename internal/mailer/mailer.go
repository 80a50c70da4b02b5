package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osa911/portfolio/internal/logging"

	"github.com/wneessen/go-mail"
)

var (
	// ErrTransport means the relay could not be reached or rejected the credentials
	ErrTransport = errors.New("mail transport unavailable")
	// ErrSend means the relay accepted the connection but the message was not delivered
	ErrSend = errors.New("mail send failed")
)

// Message is one outbound email
type Message struct {
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	HTML     string
	Text     string
}

// Config holds relay settings
type Config struct {
	Service  string
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// smtpClient is the subset of *mail.Client the mailer uses
type smtpClient interface {
	DialWithContext(ctx context.Context) error
	Send(messages ...*mail.Msg) error
	Close() error
}

// Mailer sends mail through an authenticated SMTP relay.
// It holds no connection between calls, so one instance is shared process-wide.
type Mailer struct {
	config    Config
	newClient func() (smtpClient, error)
}

// New resolves the relay address and returns a mailer.
// An explicit host wins over the well-known service table.
func New(config Config) (*Mailer, error) {
	if config.Host == "" {
		service, ok := LookupService(config.Service)
		if !ok {
			return nil, fmt.Errorf("%w: unknown mail service %q and no SMTP host set", logging.ErrInvalidConfig, config.Service)
		}
		config.Host = service.Host
		if config.Port == 0 {
			config.Port = service.Port
		}
	}
	if config.Port == 0 {
		config.Port = 587
	}
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}

	m := &Mailer{config: config}
	m.newClient = m.dialer
	return m, nil
}

// Address returns host:port of the relay
func (m *Mailer) Address() string {
	return fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)
}

// Sender returns the account address mail is sent from
func (m *Mailer) Sender() string {
	return m.config.Username
}

func (m *Mailer) dialer() (smtpClient, error) {
	opts := []mail.Option{
		mail.WithPort(m.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.Username),
		mail.WithPassword(m.config.Password),
		mail.WithTimeout(m.config.Timeout),
	}
	if m.config.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	return mail.NewClient(m.config.Host, opts...)
}

// connect opens an authenticated session with the relay
func (m *Mailer) connect(ctx context.Context) (smtpClient, error) {
	if m.config.Username == "" || m.config.Password == "" {
		return nil, fmt.Errorf("%w: mail credentials not configured", ErrTransport)
	}

	client, err := m.newClient()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()
	if err := client.DialWithContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return client, nil
}

// Verify checks the relay is reachable and accepts the credentials
func (m *Mailer) Verify(ctx context.Context) error {
	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	return client.Close()
}

// Send delivers msg over a fresh connection
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	built, err := m.build(msg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Send(built); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	return nil
}

func (m *Mailer) build(msg Message) (*mail.Msg, error) {
	built := mail.NewMsg()

	if msg.FromName != "" {
		if err := built.FromFormat(msg.FromName, m.config.Username); err != nil {
			return nil, fmt.Errorf("invalid sender: %w", err)
		}
	} else if err := built.From(m.config.Username); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}

	if err := built.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}

	// The submitter address is opaque input; a malformed one only loses Reply-To
	if replyTo := strings.TrimSpace(msg.ReplyTo); replyTo != "" {
		_ = built.ReplyTo(replyTo)
	}

	built.Subject(msg.Subject)
	if msg.Text != "" {
		built.SetBodyString(mail.TypeTextPlain, msg.Text)
		if msg.HTML != "" {
			built.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
		}
	} else {
		built.SetBodyString(mail.TypeTextHTML, msg.HTML)
	}
	return built, nil
}
