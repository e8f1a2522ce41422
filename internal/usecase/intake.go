package usecase

import (
	"context"
	"log/slog"

	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/apperror"
	"go-lawfirm-backend/pkg/logger"
	"go-lawfirm-backend/pkg/validation"

	"github.com/google/uuid"
)

type intakeUsecase struct {
	repo      domain.MessageRepository // nil when no database is configured
	sink      domain.NotificationSink  // nil when Telegram is not configured
	guard     domain.DuplicateGuard
	validator *validation.SubmissionValidator
	// permissive mode (development): persistence failure degrades to a
	// logged warning instead of failing the request
	permissive bool
	log        *slog.Logger
}

// NewIntakeUsecase wires the submission pipeline. Persistence is the
// primary delivery path: when a repository is configured and not in
// permissive mode, a failed insert fails the request. The notification sink
// is always best-effort.
func NewIntakeUsecase(
	repo domain.MessageRepository,
	sink domain.NotificationSink,
	guard domain.DuplicateGuard,
	validator *validation.SubmissionValidator,
	permissive bool,
) domain.IntakeUsecase {
	return &intakeUsecase{
		repo:       repo,
		sink:       sink,
		guard:      guard,
		validator:  validator,
		permissive: permissive,
		log:        logger.L(),
	}
}

// Submit runs the guard/validation/delivery pipeline, short-circuiting on
// the first rejection.
func (uc *intakeUsecase) Submit(ctx context.Context, rec *domain.SubmissionRecord) (*domain.SubmissionReceipt, error) {
	// Honeypot: acknowledge as success and drop, so automated senders get
	// no signal that they were detected. The receipt is indistinguishable
	// from a real one.
	if rec.IsAutomated() {
		uc.log.Info("honeypot field filled, dropping submission",
			"ip", rec.Client.IP, "email", rec.Email)
		return &domain.SubmissionReceipt{ID: uuid.NewString(), Status: domain.StatusNew}, nil
	}

	admitted, _ := uc.guard.Admit(ctx, rec)
	if !admitted {
		uc.log.Info("duplicate submission rejected", "ip", rec.Client.IP, "email", rec.Email)
		return nil, apperror.Duplicate()
	}

	if fields := uc.validator.Validate(rec); len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}

	rec.ID = uuid.NewString()

	if uc.repo != nil {
		if err := uc.repo.Create(ctx, rec); err != nil {
			if !uc.permissive {
				uc.log.Error("failed to persist submission", "error", err, "id", rec.ID)
				return nil, apperror.Delivery(err)
			}
			uc.log.Warn("failed to persist submission, continuing in permissive mode",
				"error", err, "id", rec.ID)
		}
	}

	// Notification is dispatched after persistence; a failure here is
	// logged and never fails an already-accepted submission.
	if uc.sink != nil {
		if err := uc.sink.Notify(ctx, rec); err != nil {
			uc.log.Error("notification dispatch failed", "error", err, "id", rec.ID)
		}
	}

	return &domain.SubmissionReceipt{ID: rec.ID, Status: rec.Status}, nil
}
