// Package service orchestrates receipt submission and points queries. It
// keeps orchestration out of handlers and domain logic thin.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"tally/internal/receipt"
	"tally/internal/receipt/metrics"
	dErrors "tally/pkg/domain-errors"
	"tally/pkg/platform/sentinel"
)

// Store is the subset of the store the service depends on.
type Store interface {
	Insert(ctx context.Context, rec receipt.Receipt) (string, error)
	Find(ctx context.Context, id string) (receipt.Receipt, error)
}

// Service validates, stores, and scores receipts. Stateless apart from the
// injected store; safe for concurrent use.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(store Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		logger:  logger,
		metrics: m,
	}
}

// Process validates a submitted receipt and stores it, returning the new
// identifier. Validation failures come back as a bad_request domain error
// carrying the rule messages joined in rule order.
func (s *Service) Process(ctx context.Context, rec receipt.Receipt) (string, error) {
	if msgs := receipt.Validate(rec); len(msgs) > 0 {
		s.metrics.IncrementRejected()
		return "", dErrors.New(dErrors.CodeBadRequest, strings.Join(msgs, ", "))
	}

	id, err := s.store.Insert(ctx, rec)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to store receipt", "error", err)
		return "", dErrors.New(dErrors.CodeInternal, "failed to store receipt")
	}

	s.metrics.IncrementProcessed()
	return id, nil
}

// Points looks up a stored receipt and computes its reward score. An unknown
// identifier is a not_found domain error with the fixed external message.
func (s *Service) Points(ctx context.Context, id string) (int64, error) {
	rec, err := s.store.Find(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementPointsQuery("miss")
			return 0, dErrors.New(dErrors.CodeNotFound, "Invalid Receipt ID.")
		}
		s.logger.ErrorContext(ctx, "failed to load receipt", "receipt_id", id, "error", err)
		return 0, dErrors.New(dErrors.CodeInternal, "failed to load receipt")
	}

	points, err := receipt.Points(rec)
	if err != nil {
		// A stored receipt that cannot be scored means validation let bad
		// data through; log it loudly instead of swallowing it.
		s.logger.ErrorContext(ctx, "stored receipt failed scoring",
			"receipt_id", id,
			"error", err,
		)
		return 0, dErrors.New(dErrors.CodeInternal, "failed to compute points")
	}

	s.metrics.IncrementPointsQuery("hit")
	return points, nil
}
