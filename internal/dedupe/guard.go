// Package dedupe rejects rapid repeat submissions via a short-TTL content
// hash cache.
package dedupe

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"go-lawfirm-backend/internal/domain"
)

// Store is the injected cache behind the guard. A single-process deployment
// uses MemoryStore; a multi-instance deployment swaps in the Redis store
// without touching pipeline logic.
type Store interface {
	// Add records key with the given TTL if no unexpired entry exists.
	// It reports whether the key was added (true = first sighting).
	Add(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Guard computes a deterministic hash over client address, email, subject
// and body, and admits a submission only when that hash has not been seen
// within the TTL window. Two senders with coincidentally identical
// email+subject+body within the window are treated as duplicates; that
// false positive is accepted for spam suppression.
type Guard struct {
	store Store
	ttl   time.Duration
	log   *slog.Logger
}

func NewGuard(store Store, ttl time.Duration, log *slog.Logger) *Guard {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = slog.Default()
	}
	return &Guard{store: store, ttl: ttl, log: log}
}

// Key returns the hex SHA-256 digest of the duplicate-identity fields.
func Key(rec *domain.SubmissionRecord) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%s|%s",
		rec.Client.IP, rec.Email, rec.Subject, rec.Body))
	return hex.EncodeToString(sum[:])
}

// Admit implements domain.DuplicateGuard. Store errors fail open: the
// submission is admitted and the error logged, so a broken cache never
// blocks legitimate traffic.
func (g *Guard) Admit(ctx context.Context, rec *domain.SubmissionRecord) (bool, error) {
	added, err := g.store.Add(ctx, Key(rec), g.ttl)
	if err != nil {
		g.log.Warn("duplicate guard store failed, admitting submission", "error", err)
		return true, err
	}
	return added, nil
}
