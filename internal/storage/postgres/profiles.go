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

type ProfileRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewProfileRepo(pool *pgxpool.Pool, logger *slog.Logger) *ProfileRepo {
	return &ProfileRepo{pool: pool, logger: logger}
}

func (p *ProfileRepo) Get(ctx context.Context, id uuid.UUID) (*domain.RequesterProfile, error) {
	const op = "postgres.Profile.Get"

	const query = `
		SELECT id,
			   COALESCE(first_name, ''),
			   COALESCE(last_name, ''),
			   COALESCE(phone, '')
		FROM profiles
		WHERE id = $1
	`

	var prof domain.RequesterProfile
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&prof.ID,
		&prof.FirstName,
		&prof.LastName,
		&prof.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &prof, nil
}
