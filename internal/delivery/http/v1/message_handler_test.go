package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-lawfirm-backend/internal/delivery/http/middleware"
	v1 "go-lawfirm-backend/internal/delivery/http/v1"
	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubIntake records the last submission and returns a canned result.
type stubIntake struct {
	lastRecord *domain.SubmissionRecord
	receipt    *domain.SubmissionReceipt
	err        error
}

func (s *stubIntake) Submit(ctx context.Context, rec *domain.SubmissionRecord) (*domain.SubmissionReceipt, error) {
	s.lastRecord = rec
	if s.err != nil {
		return nil, s.err
	}
	return s.receipt, nil
}

func newTestRouter(intake domain.IntakeUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	api := r.Group("/api")
	passthrough := func(c *gin.Context) { c.Next() }
	v1.NewMessageHandler(api, intake, passthrough)
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Referer", "https://www.example.com/contact")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitMessageSuccess(t *testing.T) {
	intake := &stubIntake{receipt: &domain.SubmissionReceipt{ID: "f3b9c9a2-0000-4000-8000-000000000000", Status: domain.StatusNew}}
	r := newTestRouter(intake)

	w := postJSON(r, `{
		"firstName": "Ada",
		"lastName": "Lovelace",
		"email": "ada@example.com",
		"subject": "Inquiry",
		"message": "I would like to discuss a potential case regarding an estate matter."
	}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "f3b9c9a2-0000-4000-8000-000000000000", resp.Data.ID)
}

func TestSubmitMessageNormalizesTolerantShapes(t *testing.T) {
	intake := &stubIntake{receipt: &domain.SubmissionReceipt{ID: "x", Status: domain.StatusNew}}
	r := newTestRouter(intake)

	// Older form variants send a combined name and "content" for the body.
	w := postJSON(r, `{
		"name": "Ada Lovelace King",
		"email": "ada@example.com",
		"subject": "Inquiry",
		"content": "I would like to discuss a potential case regarding an estate matter."
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	rec := intake.lastRecord
	assert.Equal(t, "Ada", rec.FirstName)
	assert.Equal(t, "Lovelace King", rec.LastName)
	assert.Contains(t, rec.Body, "potential case")
	assert.Equal(t, "test-agent", rec.Client.UserAgent)
	assert.Equal(t, "https://www.example.com/contact", rec.Client.Referrer)
	assert.False(t, rec.Client.ReceivedAt.IsZero())
}

func TestSubmitMessageValidationFailure(t *testing.T) {
	intake := &stubIntake{err: apperror.Validation([]apperror.FieldError{
		{Field: "email", Message: "Must be a valid email address"},
		{Field: "message", Message: "This field is required"},
	})}
	r := newTestRouter(intake)

	w := postJSON(r, `{"firstName": "Ada"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Code    string                `json:"code"`
		Errors  []apperror.FieldError `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, apperror.CodeValidation, resp.Code)
	assert.Len(t, resp.Errors, 2)
}

func TestSubmitMessageDuplicate(t *testing.T) {
	intake := &stubIntake{err: apperror.Duplicate()}
	r := newTestRouter(intake)

	w := postJSON(r, `{"firstName": "Ada", "email": "ada@example.com"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeDuplicate)
}

func TestSubmitMessageDeliveryFailure(t *testing.T) {
	intake := &stubIntake{err: apperror.Delivery(assert.AnError)}
	r := newTestRouter(intake)

	w := postJSON(r, `{"firstName": "Ada", "email": "ada@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeDelivery)
}

func TestSubmitMessageMalformedJSON(t *testing.T) {
	intake := &stubIntake{receipt: &domain.SubmissionReceipt{}}
	r := newTestRouter(intake)

	w := postJSON(r, `{"firstName": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, intake.lastRecord)
}
