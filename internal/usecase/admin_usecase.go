package usecase

import (
	"context"
	"errors"

	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/internal/repository/postgres"
	"go-lawfirm-backend/pkg/apperror"
)

type adminUsecase struct {
	repo domain.MessageRepository
}

func NewAdminUsecase(repo domain.MessageRepository) domain.AdminUsecase {
	return &adminUsecase{repo: repo}
}

// requireAdmin checks the role claim placed in the context by the auth
// middleware. Fails safe when the claim is missing.
func (u *adminUsecase) requireAdmin(ctx context.Context) error {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != "admin" {
		return apperror.Forbidden("Only admins can manage messages")
	}
	return nil
}

func (u *adminUsecase) ListMessages(ctx context.Context, status domain.MessageStatus, limit, offset int) ([]domain.SubmissionRecord, int64, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if status != "" && !domain.ValidStatus(status) {
		return nil, 0, apperror.BadRequest("Unknown status filter")
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	messages, total, err := u.repo.Fetch(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return messages, total, nil
}

func (u *adminUsecase) GetMessage(ctx context.Context, id string) (*domain.SubmissionRecord, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, apperror.NotFound("Message not found")
		}
		return nil, apperror.Internal(err)
	}
	return rec, nil
}

func (u *adminUsecase) UpdateMessageStatus(ctx context.Context, id string, status domain.MessageStatus) error {
	if err := u.requireAdmin(ctx); err != nil {
		return err
	}
	if !domain.ValidStatus(status) {
		return apperror.BadRequest("Unknown status")
	}

	if err := u.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return apperror.NotFound("Message not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
