// Package mailer submits contact-form messages through the EmailJS REST
// endpoint. One attempt per submission; the only outcome the caller sees is
// success or failure.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.emailjs.com/api/v1.0/email/send"

// Submission carries the three visitor-typed fields. Validation is
// presence-only, matching the form's required attributes.
type Submission struct {
	Name    string `json:"user_name" validate:"required"`
	Email   string `json:"user_email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Subject derives the fixed subject line for a submission.
func Subject(s Submission) string {
	return fmt.Sprintf("Portfolio Message from: %s (%s)", s.Email, s.Name)
}

// Client posts submissions to EmailJS.
type Client struct {
	// BaseURL is overridable for tests; defaults to the EmailJS endpoint.
	BaseURL    string
	httpClient *http.Client
	serviceID  string
	templateID string
	publicKey  string
}

func New(serviceID, templateID, publicKey string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
	}
}

// Configured reports whether all three EmailJS credentials are present.
func (c *Client) Configured() bool {
	return c.serviceID != "" && c.templateID != "" && c.publicKey != ""
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Message   string `json:"message"`
	Subject   string `json:"subject"`
	ReplyTo   string `json:"reply_to"`
}

// Send posts one submission. Missing credentials fail immediately without
// I/O; any transport error or non-2xx status is a failure. No retry.
func (c *Client) Send(ctx context.Context, s Submission) error {
	if !c.Configured() {
		return fmt.Errorf("mailer: emailjs credentials not configured")
	}

	id := uuid.NewString()
	payload := sendRequest{
		ServiceID:  c.serviceID,
		TemplateID: c.templateID,
		UserID:     c.publicKey,
		TemplateParams: templateParams{
			UserName:  s.Name,
			UserEmail: s.Email,
			Message:   s.Message,
			Subject:   Subject(s),
			ReplyTo:   s.Email,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mailer: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailer: submission %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mailer: submission %s rejected: %s: %s", id, resp.Status, detail)
	}

	log.Printf("mailer: submission %s delivered for %s", id, s.Email)
	return nil
}
