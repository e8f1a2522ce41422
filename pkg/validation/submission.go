package validation

import (
	"fmt"
	"unicode/utf8"

	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// SubmissionPolicy holds the deployment-configurable validation bounds.
// Struct-tag rules cover the fixed fields; subject and body limits vary per
// deployment and are enforced here.
type SubmissionPolicy struct {
	SubjectRequired  bool
	SubjectMinLength int
	SubjectMaxLength int
	BodyMinLength    int
	BodyMaxLength    int
}

// DefaultSubmissionPolicy returns the canonical bounds: subject required,
// 2-100 characters; body 10-2000 characters.
func DefaultSubmissionPolicy() SubmissionPolicy {
	return SubmissionPolicy{
		SubjectRequired:  true,
		SubjectMinLength: 2,
		SubjectMaxLength: 100,
		BodyMinLength:    10,
		BodyMaxLength:    2000,
	}
}

// SubmissionValidator schema-checks a normalized submission. It is a pure
// function of its input: no side effects, identical input yields identical
// error sets.
type SubmissionValidator struct {
	validate *validator.Validate
	policy   SubmissionPolicy
}

func NewSubmissionValidator(policy SubmissionPolicy) *SubmissionValidator {
	if policy.SubjectMinLength == 0 {
		policy.SubjectMinLength = 2
	}
	if policy.SubjectMaxLength == 0 {
		policy.SubjectMaxLength = 100
	}
	if policy.BodyMinLength == 0 {
		policy.BodyMinLength = 10
	}
	if policy.BodyMaxLength == 0 {
		policy.BodyMaxLength = 2000
	}

	v := validator.New()
	RegisterValidators(v)

	return &SubmissionValidator{validate: v, policy: policy}
}

// Validate evaluates every rule and returns one error per failing field.
// An empty result means the record passed.
func (sv *SubmissionValidator) Validate(rec *domain.SubmissionRecord) []apperror.FieldError {
	var fields []apperror.FieldError

	if err := sv.validate.Struct(rec); err != nil {
		fields = append(fields, FormatValidationErrors(err)...)
	}

	fields = append(fields, sv.checkSubject(rec.Subject)...)
	fields = append(fields, sv.checkBody(rec.Body)...)

	return fields
}

func (sv *SubmissionValidator) checkSubject(subject string) []apperror.FieldError {
	length := utf8.RuneCountInString(subject)
	if length == 0 {
		if sv.policy.SubjectRequired {
			return []apperror.FieldError{{Field: "subject", Message: "This field is required"}}
		}
		return nil
	}
	if length < sv.policy.SubjectMinLength {
		return []apperror.FieldError{{
			Field:   "subject",
			Message: fmt.Sprintf("Must be at least %d characters", sv.policy.SubjectMinLength),
		}}
	}
	if length > sv.policy.SubjectMaxLength {
		return []apperror.FieldError{{
			Field:   "subject",
			Message: fmt.Sprintf("Must be at most %d characters", sv.policy.SubjectMaxLength),
		}}
	}
	return nil
}

func (sv *SubmissionValidator) checkBody(body string) []apperror.FieldError {
	length := utf8.RuneCountInString(body)
	if length == 0 {
		return []apperror.FieldError{{Field: "message", Message: "This field is required"}}
	}
	if length < sv.policy.BodyMinLength {
		return []apperror.FieldError{{
			Field:   "message",
			Message: fmt.Sprintf("Must be at least %d characters", sv.policy.BodyMinLength),
		}}
	}
	if length > sv.policy.BodyMaxLength {
		return []apperror.FieldError{{
			Field:   "message",
			Message: fmt.Sprintf("Must be at most %d characters", sv.policy.BodyMaxLength),
		}}
	}
	return nil
}
