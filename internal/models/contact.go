package models

import "time"

// DefaultSubject labels notifications for submissions without a subject
const DefaultSubject = "No Subject"

// ContactMessage is one persisted contact form submission.
// Records are append-only: there is no update or delete path.
type ContactMessage struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	Subject   string    `json:"subject,omitempty" yaml:"subject,omitempty"`
	Message   string    `json:"message" yaml:"message"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// SubjectOrDefault returns the subject, or DefaultSubject when it is empty
func (m *ContactMessage) SubjectOrDefault() string {
	if m.Subject == "" {
		return DefaultSubject
	}
	return m.Subject
}
