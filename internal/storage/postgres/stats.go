package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"lifesaver/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) CountHospitalRequests(ctx context.Context, minutes int) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM sos_requests
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`
	return p.count(ctx, "postgres.Stats.CountHospitalRequests", query, minutes)
}

func (p *StatsRepo) CountResponderAlerts(ctx context.Context, minutes int) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM emergency_alerts
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`
	return p.count(ctx, "postgres.Stats.CountResponderAlerts", query, minutes)
}

// CountUniqueRequesters counts distinct users across both assignment tables.
func (p *StatsRepo) CountUniqueRequesters(ctx context.Context, minutes int) (int64, error) {
	const query = `
		SELECT COUNT(DISTINCT user_id)
		FROM (
			SELECT user_id FROM sos_requests
			WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
			UNION ALL
			SELECT user_id FROM emergency_alerts
			WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
		) AS recent
	`
	return p.count(ctx, "postgres.Stats.CountUniqueRequesters", query, minutes)
}

func (p *StatsRepo) count(ctx context.Context, op, query string, minutes int) (int64, error) {
	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
