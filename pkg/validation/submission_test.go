package validation_test

import (
	"strings"
	"testing"

	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func validRecord() *domain.SubmissionRecord {
	return &domain.SubmissionRecord{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Inquiry",
		Body:      "I would like to discuss a potential case regarding an estate matter.",
	}
}

func TestValidSubmissionPasses(t *testing.T) {
	sv := validation.NewSubmissionValidator(validation.DefaultSubmissionPolicy())
	assert.Empty(t, sv.Validate(validRecord()))
}

func TestAllMissingFieldsReported(t *testing.T) {
	sv := validation.NewSubmissionValidator(validation.DefaultSubmissionPolicy())

	fields := sv.Validate(&domain.SubmissionRecord{})

	got := map[string]bool{}
	for _, f := range fields {
		got[f.Field] = true
	}
	for _, want := range []string{"firstName", "lastName", "email", "subject", "message"} {
		assert.True(t, got[want], "expected error for field %s", want)
	}
	assert.Len(t, fields, 5)
}

func TestValidationIdempotent(t *testing.T) {
	sv := validation.NewSubmissionValidator(validation.DefaultSubmissionPolicy())

	rec := &domain.SubmissionRecord{Email: "not-an-email", Phone: "abc"}
	first := sv.Validate(rec)
	second := sv.Validate(rec)
	assert.Equal(t, first, second)
}

func TestPhoneValidation(t *testing.T) {
	sv := validation.NewSubmissionValidator(validation.DefaultSubmissionPolicy())

	rec := validRecord()
	rec.Phone = "+1 (212) 555-0100"
	assert.Empty(t, sv.Validate(rec))

	rec.Phone = "abc"
	fields := sv.Validate(rec)
	assert.Len(t, fields, 1)
	assert.Equal(t, "phone", fields[0].Field)

	// Optional: absent phone is fine.
	rec.Phone = ""
	assert.Empty(t, sv.Validate(rec))
}

func TestNameLengthBounds(t *testing.T) {
	sv := validation.NewSubmissionValidator(validation.DefaultSubmissionPolicy())

	rec := validRecord()
	rec.FirstName = "A"
	fields := sv.Validate(rec)
	assert.Len(t, fields, 1)
	assert.Equal(t, "firstName", fields[0].Field)

	rec.FirstName = strings.Repeat("a", 51)
	fields = sv.Validate(rec)
	assert.Len(t, fields, 1)
	assert.Equal(t, "firstName", fields[0].Field)
}

func TestSubjectPolicy(t *testing.T) {
	t.Run("Required by default", func(t *testing.T) {
		sv := validation.NewSubmissionValidator(validation.DefaultSubmissionPolicy())
		rec := validRecord()
		rec.Subject = ""
		fields := sv.Validate(rec)
		assert.Len(t, fields, 1)
		assert.Equal(t, "subject", fields[0].Field)
	})

	t.Run("Optional when configured", func(t *testing.T) {
		policy := validation.DefaultSubmissionPolicy()
		policy.SubjectRequired = false
		sv := validation.NewSubmissionValidator(policy)
		rec := validRecord()
		rec.Subject = ""
		assert.Empty(t, sv.Validate(rec))
	})

	t.Run("Too long", func(t *testing.T) {
		sv := validation.NewSubmissionValidator(validation.DefaultSubmissionPolicy())
		rec := validRecord()
		rec.Subject = strings.Repeat("s", 101)
		fields := sv.Validate(rec)
		assert.Len(t, fields, 1)
		assert.Equal(t, "subject", fields[0].Field)
	})
}

func TestBodyBounds(t *testing.T) {
	sv := validation.NewSubmissionValidator(validation.DefaultSubmissionPolicy())

	rec := validRecord()
	rec.Body = "too short"
	fields := sv.Validate(rec)
	assert.Len(t, fields, 1)
	assert.Equal(t, "message", fields[0].Field)

	rec.Body = strings.Repeat("m", 2001)
	fields = sv.Validate(rec)
	assert.Len(t, fields, 1)
	assert.Equal(t, "message", fields[0].Field)
}
