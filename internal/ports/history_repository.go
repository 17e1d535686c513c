package ports

import (
	"context"
	"route-weather-service/internal/domain"
)

// Port: a boundary for storing and listing route query history.
type HistoryRepository interface {
	// Append one answer to a user's history.
	Record(ctx context.Context, userID string, answer domain.CombinedAnswer) error
	// List a user's most recent records, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.HistoryRecord, error)
}
