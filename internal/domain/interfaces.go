package domain

import "context"

// MessageRepository persists submissions for later triage.
type MessageRepository interface {
	Create(ctx context.Context, rec *SubmissionRecord) error
	Fetch(ctx context.Context, status MessageStatus, limit, offset int) ([]SubmissionRecord, int64, error)
	GetByID(ctx context.Context, id string) (*SubmissionRecord, error)
	UpdateStatus(ctx context.Context, id string, status MessageStatus) error
}

// NotificationSink forwards an accepted submission to a chat channel.
// Delivery is best-effort; failures never fail the request.
type NotificationSink interface {
	Notify(ctx context.Context, rec *SubmissionRecord) error
}

// DuplicateGuard decides whether a submission is a rapid repeat.
// Implementations must fail open: on store errors the submission is admitted.
type DuplicateGuard interface {
	// Admit reports whether the record may proceed. false means an
	// unexpired identical submission was already seen.
	Admit(ctx context.Context, rec *SubmissionRecord) (bool, error)
}

// IntakeUsecase runs a submission through the full guard/validation/delivery
// pipeline.
type IntakeUsecase interface {
	Submit(ctx context.Context, rec *SubmissionRecord) (*SubmissionReceipt, error)
}

// AdminUsecase exposes message triage to authenticated staff.
type AdminUsecase interface {
	ListMessages(ctx context.Context, status MessageStatus, limit, offset int) ([]SubmissionRecord, int64, error)
	GetMessage(ctx context.Context, id string) (*SubmissionRecord, error)
	UpdateMessageStatus(ctx context.Context, id string, status MessageStatus) error
}
