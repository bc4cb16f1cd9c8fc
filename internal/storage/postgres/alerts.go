package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lifesaver/internal/domain"
	"lifesaver/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const alertColumns = `
	id, user_id, type, description, location_lat, location_lng,
	location_description, status, responder_id, created_at, updated_at
`

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

func scanAlert(row pgx.Row, a *domain.EmergencyAlert) error {
	return row.Scan(
		&a.ID,
		&a.UserID,
		&a.Type,
		&a.Description,
		&a.LocationLat,
		&a.LocationLng,
		&a.LocationDescription,
		&a.Status,
		&a.ResponderID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

// ListByResponder returns every alert assigned to responderID, newest first.
func (p *AlertRepo) ListByResponder(ctx context.Context, responderID uuid.UUID) ([]domain.EmergencyAlert, error) {
	const op = "postgres.Alert.ListByResponder"

	query := `SELECT ` + alertColumns + `
		FROM emergency_alerts
		WHERE responder_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, responderID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.String("responder_id", responderID.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	alerts := make([]domain.EmergencyAlert, 0, 16)
	for rows.Next() {
		var a domain.EmergencyAlert
		if err := scanAlert(rows, &a); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return alerts, nil
}

func (p *AlertRepo) Get(ctx context.Context, id uuid.UUID) (*domain.EmergencyAlert, error) {
	const op = "postgres.Alert.Get"

	query := `SELECT ` + alertColumns + ` FROM emergency_alerts WHERE id = $1`

	var a domain.EmergencyAlert
	if err := scanAlert(p.pool.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &a, nil
}

// UpdateStatus sets the status and, when responderID is non-nil, claims the
// alert for that responder. A nil responderID leaves the column untouched.
func (p *AlertRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AlertStatus, responderID *uuid.UUID) error {
	const op = "postgres.Alert.UpdateStatus"

	const query = `
		UPDATE emergency_alerts
		SET status = $2,
			responder_id = COALESCE($3, responder_id),
			updated_at = NOW()
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, status, responderID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
