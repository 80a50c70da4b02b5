package contact

// ContactRequest represents a contact form submission.
// Required fields are checked by the contact service so that whitespace-only
// values and missing values are rejected alike.
type ContactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptcha_token"`
}
