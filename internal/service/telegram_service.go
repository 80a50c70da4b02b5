package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/osa911/portfolio/internal/models"
)

// DefaultTelegramAPI is the public Bot API endpoint
const DefaultTelegramAPI = "https://api.telegram.org"

// TelegramService forwards contact submissions to a Telegram chat
type TelegramService struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

// NewTelegramService creates a new Telegram service.
// An empty apiBase selects DefaultTelegramAPI.
func NewTelegramService(botToken, chatID, apiBase string) *TelegramService {
	if apiBase == "" {
		apiBase = DefaultTelegramAPI
	}
	return &TelegramService{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  strings.TrimRight(apiBase, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether both the bot token and chat are configured
func (s *TelegramService) Enabled() bool {
	return s.botToken != "" && s.chatID != ""
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// SendContactMessage sends a contact form message to Telegram
func (s *TelegramService) SendContactMessage(ctx context.Context, contact *models.ContactMessage) error {
	if !s.Enabled() {
		return fmt.Errorf("telegram bot token or chat ID not configured")
	}

	text := fmt.Sprintf(
		"🆕 <b>New Contact Form Submission</b>\n\n"+
			"<b>Name:</b> %s\n"+
			"<b>Email:</b> %s\n"+
			"<b>Subject:</b> %s\n"+
			"<b>Message:</b>\n%s",
		html.EscapeString(contact.Name),
		html.EscapeString(contact.Email),
		html.EscapeString(contact.SubjectOrDefault()),
		html.EscapeString(contact.Message),
	)

	jsonData, err := json.Marshal(telegramMessage{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}
	return nil
}
