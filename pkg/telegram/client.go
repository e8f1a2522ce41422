// Package telegram sends chat notifications through the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-lawfirm-backend/internal/domain"
)

const defaultBaseURL = "https://api.telegram.org"

// Client posts sendMessage calls for a single bot/chat pair. It implements
// domain.NotificationSink.
type Client struct {
	token      string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(token, chatID string) *Client {
	return &Client{
		token:   token,
		chatID:  chatID,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(token, chatID, baseURL string) *Client {
	c := NewClient(token, chatID)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// IsConfigured reports whether both the bot token and chat ID are set.
func (c *Client) IsConfigured() bool {
	return c.token != "" && c.chatID != ""
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notify formats the submission and dispatches it to the configured chat.
func (c *Client) Notify(ctx context.Context, rec *domain.SubmissionRecord) error {
	if !c.IsConfigured() {
		return fmt.Errorf("telegram: bot token or chat ID not configured")
	}
	return c.SendMessage(ctx, FormatSubmission(rec))
}

// SendMessage posts a plain-text message to the configured chat.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID: c.chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("telegram: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiResp sendMessageResponse
	if err := json.Unmarshal(body, &apiResp); err != nil || !apiResp.OK {
		if apiResp.Description != "" {
			return fmt.Errorf("telegram: API error (status %d): %s", resp.StatusCode, apiResp.Description)
		}
		return fmt.Errorf("telegram: API error (status %d)", resp.StatusCode)
	}
	return nil
}

// FormatSubmission renders the human-readable notification text.
func FormatSubmission(rec *domain.SubmissionRecord) string {
	var b strings.Builder
	b.WriteString("New contact form submission\n\n")
	fmt.Fprintf(&b, "Name: %s %s\n", rec.FirstName, rec.LastName)
	fmt.Fprintf(&b, "Email: %s\n", rec.Email)
	if rec.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", rec.Phone)
	}
	if rec.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", rec.Subject)
	}
	fmt.Fprintf(&b, "\n%s\n", rec.Body)
	fmt.Fprintf(&b, "\nReceived: %s\n", rec.Client.ReceivedAt.Format(time.RFC3339))
	if rec.Client.IP != "" {
		fmt.Fprintf(&b, "IP: %s\n", rec.Client.IP)
	}
	return b.String()
}
