package postgres

import (
	"context"
	"errors"

	"go-lawfirm-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("message not found")

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, rec *domain.SubmissionRecord) error {
	query := `INSERT INTO contact_messages (id, first_name, last_name, email, phone, subject, body, client_ip, user_agent, referrer, status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.FirstName, rec.LastName, rec.Email, rec.Phone, rec.Subject, rec.Body,
		rec.Client.IP, rec.Client.UserAgent, rec.Client.Referrer,
		rec.Status, rec.CreatedAt,
	)
	return err
}

func (r *messageRepo) Fetch(ctx context.Context, status domain.MessageStatus, limit, offset int) ([]domain.SubmissionRecord, int64, error) {
	query := `SELECT id, first_name, last_name, email, phone, subject, body, client_ip, user_agent, referrer, status, created_at
              FROM contact_messages
              WHERE ($1 = '' OR status = $1)
              ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []domain.SubmissionRecord
	for rows.Next() {
		var rec domain.SubmissionRecord
		if err := rows.Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Email, &rec.Phone, &rec.Subject, &rec.Body,
			&rec.Client.IP, &rec.Client.UserAgent, &rec.Client.Referrer, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, 0, err
		}
		rec.Client.ReceivedAt = rec.CreatedAt
		messages = append(messages, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM contact_messages WHERE ($1 = '' OR status = $1)`
	if err := r.db.QueryRow(ctx, countQuery, string(status)).Scan(&total); err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *messageRepo) GetByID(ctx context.Context, id string) (*domain.SubmissionRecord, error) {
	query := `SELECT id, first_name, last_name, email, phone, subject, body, client_ip, user_agent, referrer, status, created_at
              FROM contact_messages WHERE id = $1`
	var rec domain.SubmissionRecord
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.FirstName, &rec.LastName, &rec.Email, &rec.Phone, &rec.Subject, &rec.Body,
		&rec.Client.IP, &rec.Client.UserAgent, &rec.Client.Referrer, &rec.Status, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rec.Client.ReceivedAt = rec.CreatedAt
	return &rec, nil
}

func (r *messageRepo) UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE contact_messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
