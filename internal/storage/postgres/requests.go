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

const requestColumns = `
	id, user_id, user_name, user_phone, latitude, longitude,
	emergency_type, description, user_address, status,
	assigned_hospital_id, created_at, updated_at
`

type RequestRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRequestRepo(pool *pgxpool.Pool, logger *slog.Logger) *RequestRepo {
	return &RequestRepo{pool: pool, logger: logger}
}

func scanRequest(row pgx.Row, r *domain.EmergencyRequest) error {
	return row.Scan(
		&r.ID,
		&r.UserID,
		&r.UserName,
		&r.UserPhone,
		&r.Latitude,
		&r.Longitude,
		&r.EmergencyType,
		&r.Description,
		&r.UserAddress,
		&r.Status,
		&r.AssignedHospitalID,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
}

func (p *RequestRepo) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]domain.EmergencyRequest, error) {
	const op = "postgres.Request.ListByHospital"

	query := `SELECT ` + requestColumns + `
		FROM sos_requests
		WHERE assigned_hospital_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, hospitalID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	requests := make([]domain.EmergencyRequest, 0, 16)
	for rows.Next() {
		var r domain.EmergencyRequest
		if err := scanRequest(rows, &r); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return requests, nil
}

func (p *RequestRepo) Get(ctx context.Context, id uuid.UUID) (*domain.EmergencyRequest, error) {
	const op = "postgres.Request.Get"

	query := `SELECT ` + requestColumns + ` FROM sos_requests WHERE id = $1`

	var r domain.EmergencyRequest
	if err := scanRequest(p.pool.QueryRow(ctx, query, id), &r); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &r, nil
}

func (p *RequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	const op = "postgres.Request.UpdateStatus"

	const query = `
		UPDATE sos_requests
		SET status = $2,
			updated_at = NOW()
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, status)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
