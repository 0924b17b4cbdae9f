package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/models"
)

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from the Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ContactNotifier emails the site owner when a new contact-form submission
// arrives. It is inactive unless RESEND_API_KEY, RESEND_FROM_EMAIL and
// CONTACT_NOTIFY_EMAIL are all configured.
type ContactNotifier struct {
	apiURL    string
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

func NewContactNotifier(cfg map[string]string) *ContactNotifier {
	return &ContactNotifier{
		apiURL:    config.GetString(cfg, "RESEND_API_URL", "https://api.resend.com/emails"),
		apiKey:    config.GetString(cfg, "RESEND_API_KEY", ""),
		fromEmail: config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		toEmail:   config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", ""),
		client:    &http.Client{},
	}
}

// Enabled reports whether the notifier has everything it needs to send.
func (n *ContactNotifier) Enabled() bool {
	return n.apiKey != "" && n.fromEmail != "" && n.toEmail != ""
}

// Notify sends the notification email for a submission. Failures are the
// caller's to log; a failed notification never fails the submission itself.
func (n *ContactNotifier) Notify(contact models.Contact) error {
	if !n.Enabled() {
		return nil
	}

	subject := fmt.Sprintf("New contact from %s: %s", contact.Name, contact.Subject)
	body := fmt.Sprintf(
		"<p><b>From:</b> %s &lt;%s&gt;</p><p><b>Subject:</b> %s</p><p>%s</p>",
		contact.Name, contact.Email, contact.Subject, contact.Message,
	)

	payload := ResendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: subject,
		Html:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, n.apiURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Sent contact notification email")
	}

	return nil
}
