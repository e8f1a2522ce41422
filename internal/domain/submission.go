package domain

import (
	"strings"
	"time"
)

// MessageStatus tracks triage state of a persisted submission.
type MessageStatus string

const (
	StatusNew        MessageStatus = "new"
	StatusInProgress MessageStatus = "in_progress"
	StatusResolved   MessageStatus = "resolved"
	StatusSpam       MessageStatus = "spam"
)

// ValidStatus reports whether s is one of the known triage states.
func ValidStatus(s MessageStatus) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved, StatusSpam:
		return true
	}
	return false
}

// ClientMeta carries request metadata captured at the HTTP boundary.
type ClientMeta struct {
	IP         string    `json:"ip"`
	UserAgent  string    `json:"userAgent"`
	Referrer   string    `json:"referrer"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// SubmissionRecord is the canonical contact/careers form submission.
// It is immutable once it passes validation; only Status changes afterwards
// (admin triage).
type SubmissionRecord struct {
	ID        string        `json:"id"`
	FirstName string        `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string        `json:"lastName" validate:"required,min=2,max=50"`
	Email     string        `json:"email" validate:"required,email,max=255"`
	Phone     string        `json:"phone,omitempty" validate:"omitempty,valid_phone"`
	Subject   string        `json:"subject"`
	Body      string        `json:"message"`
	Honeypot  string        `json:"-"`
	Client    ClientMeta    `json:"client"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// IsAutomated reports whether the hidden honeypot field was filled in,
// which only automated senders do.
func (r *SubmissionRecord) IsAutomated() bool {
	return strings.TrimSpace(r.Honeypot) != ""
}

// SubmissionInput is the tolerant wire shape of the public form endpoint.
// Deployed form variants disagree on field names (`name` vs
// `firstName`/`lastName`, `content` vs `message`); all accepted shapes are
// normalized here, before validation ever sees them. Unknown extra fields
// are ignored by JSON binding.
type SubmissionInput struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Content   string `json:"content"`
	Website   string `json:"website"` // honeypot, must stay empty
}

// NormalizeSubmission maps any accepted input shape to one canonical record.
// A combined "name" is split on whitespace into first name + remainder.
func NormalizeSubmission(in SubmissionInput, meta ClientMeta) *SubmissionRecord {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" && last == "" {
		parts := strings.Fields(in.Name)
		if len(parts) > 0 {
			first = parts[0]
			last = strings.Join(parts[1:], " ")
		}
	}

	body := in.Message
	if strings.TrimSpace(body) == "" {
		body = in.Content
	}

	return &SubmissionRecord{
		FirstName: first,
		LastName:  last,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Subject:   strings.TrimSpace(in.Subject),
		Body:      strings.TrimSpace(body),
		Honeypot:  in.Website,
		Client:    meta,
		Status:    StatusNew,
		CreatedAt: meta.ReceivedAt,
	}
}

// SubmissionReceipt is returned to the client on successful intake.
type SubmissionReceipt struct {
	ID     string        `json:"id,omitempty"`
	Status MessageStatus `json:"status"`
}
