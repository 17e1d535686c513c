package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-weather-service/internal/domain"
	"route-weather-service/internal/platform/obs"
	"strings"
)

// Postgres-backed implementation of the HistoryRepository port.
type PostgresHistoryRepository struct{ DB *sql.DB }

func NewPostgresHistoryRepository(db *sql.DB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{DB: db}
}

// Append one combined answer to a user's history.
func (p *PostgresHistoryRepository) Record(ctx context.Context, userID string, answer domain.CombinedAnswer) (err error) {
	defer obs.Time(ctx, "history.Record")(&err)

	if p.DB == nil {
		return errors.New("postgres history repository: DB is nil")
	}
	if strings.TrimSpace(userID) == "" {
		return errors.New("record history: userID must be non-empty")
	}

	query := `
	INSERT INTO route_queries (
		user_id,
		origin,
		destination,
		mode,
		distance_meters,
		duration_seconds,
		temperature_celsius,
		weather_summary,
		observed_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err = p.DB.ExecContext(
		ctx,
		query,
		userID,
		answer.Origin,
		answer.Destination,
		string(answer.Mode),
		answer.DistanceMeters,
		answer.DurationSeconds,
		answer.Weather.TemperatureCelsius,
		answer.Weather.Summary,
		answer.Weather.ObservedAt,
	)
	if err != nil {
		return fmt.Errorf("record history: insert user_id=%q: %w", userID, err)
	}

	return nil
}

// Return a user's most recent records, newest first.
func (p *PostgresHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) (_ []domain.HistoryRecord, err error) {
	defer obs.Time(ctx, "history.ListByUser")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres history repository: DB is nil")
	}
	if limit <= 0 {
		limit = 50
	}

	query := `
	SELECT
		id,
		user_id,
		origin,
		destination,
		mode,
		distance_meters,
		duration_seconds,
		temperature_celsius,
		weather_summary,
		observed_at,
		created_at
	FROM route_queries
	WHERE user_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2;
	`
	rows, err := p.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: query route_queries table: %w", err)
	}
	defer rows.Close()

	records := make([]domain.HistoryRecord, 0, limit)
	for rows.Next() {
		var (
			rec  domain.HistoryRecord
			mode string
		)
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Answer.Origin,
			&rec.Answer.Destination,
			&mode,
			&rec.Answer.DistanceMeters,
			&rec.Answer.DurationSeconds,
			&rec.Answer.Weather.TemperatureCelsius,
			&rec.Answer.Weather.Summary,
			&rec.Answer.Weather.ObservedAt,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list history: scan row: %w", err)
		}
		rec.Answer.Mode = domain.TravelMode(mode)
		rec.Answer.Weather.Place = rec.Answer.Destination
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list history: row iteration: %w", err)
	}

	return records, nil
}
