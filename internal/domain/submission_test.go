package domain_test

import (
	"testing"
	"time"

	"go-lawfirm-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSubmissionSplitsCombinedName(t *testing.T) {
	rec := domain.NormalizeSubmission(domain.SubmissionInput{
		Name:    "  Ada Lovelace King ",
		Email:   "ada@example.com",
		Message: "Some message body here.",
	}, domain.ClientMeta{})

	assert.Equal(t, "Ada", rec.FirstName)
	assert.Equal(t, "Lovelace King", rec.LastName)
}

func TestNormalizeSubmissionPrefersExplicitNames(t *testing.T) {
	rec := domain.NormalizeSubmission(domain.SubmissionInput{
		Name:      "Ignored Name",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}, domain.ClientMeta{})

	assert.Equal(t, "Ada", rec.FirstName)
	assert.Equal(t, "Lovelace", rec.LastName)
}

func TestNormalizeSubmissionContentFallback(t *testing.T) {
	rec := domain.NormalizeSubmission(domain.SubmissionInput{
		Content: "Body sent under the legacy field name.",
	}, domain.ClientMeta{})

	assert.Equal(t, "Body sent under the legacy field name.", rec.Body)

	// "message" wins when both are present.
	rec = domain.NormalizeSubmission(domain.SubmissionInput{
		Message: "Canonical body.",
		Content: "Legacy body.",
	}, domain.ClientMeta{})
	assert.Equal(t, "Canonical body.", rec.Body)
}

func TestNormalizeSubmissionCarriesMetadata(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	meta := domain.ClientMeta{IP: "203.0.113.10", UserAgent: "ua", ReceivedAt: now}

	rec := domain.NormalizeSubmission(domain.SubmissionInput{Website: "filled"}, meta)

	assert.Equal(t, meta, rec.Client)
	assert.Equal(t, now, rec.CreatedAt)
	assert.Equal(t, domain.StatusNew, rec.Status)
	assert.True(t, rec.IsAutomated())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, domain.ValidStatus(domain.StatusNew))
	assert.True(t, domain.ValidStatus(domain.StatusSpam))
	assert.False(t, domain.ValidStatus("archived"))
	assert.False(t, domain.ValidStatus(""))
}
