package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/telegram"

	"github.com/stretchr/testify/assert"
)

func testRecord() *domain.SubmissionRecord {
	return &domain.SubmissionRecord{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+1 (212) 555-0100",
		Subject:   "Inquiry",
		Body:      "I would like to discuss a potential case.",
		Client: domain.ClientMeta{
			IP:         "203.0.113.10",
			ReceivedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestNotifySendsMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	client := telegram.NewClientWithBaseURL("bot-token", "-100123", srv.URL)

	err := client.Notify(context.Background(), testRecord())
	assert.NoError(t, err)

	assert.Equal(t, "/botbot-token/sendMessage", gotPath)
	assert.Equal(t, "-100123", gotBody["chat_id"])
	assert.Contains(t, gotBody["text"], "Ada Lovelace")
	assert.Contains(t, gotBody["text"], "ada@example.com")
	assert.Contains(t, gotBody["text"], "+1 (212) 555-0100")
	assert.Contains(t, gotBody["text"], "Inquiry")
	assert.Contains(t, gotBody["text"], "potential case")
	assert.Contains(t, gotBody["text"], "203.0.113.10")
}

func TestNotifyAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":          false,
			"description": "Bad Request: chat not found",
		})
	}))
	defer srv.Close()

	client := telegram.NewClientWithBaseURL("bot-token", "wrong-chat", srv.URL)

	err := client.Notify(context.Background(), testRecord())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestNotifyUnconfigured(t *testing.T) {
	client := telegram.NewClient("", "")
	assert.False(t, client.IsConfigured())

	err := client.Notify(context.Background(), testRecord())
	assert.Error(t, err)
}

func TestFormatSubmissionOmitsEmptyOptionalFields(t *testing.T) {
	rec := testRecord()
	rec.Phone = ""

	text := telegram.FormatSubmission(rec)
	assert.NotContains(t, text, "Phone:")
	assert.Contains(t, text, "Subject: Inquiry")
	assert.Contains(t, text, "Received: 2024-06-01T12:00:00Z")
}
