package postgres

import (
	"context"
	"log/slog"

	"lifesaver/internal/domain"
	"lifesaver/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProviderRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewProviderRepo(pool *pgxpool.Pool, logger *slog.Logger) *ProviderRepo {
	return &ProviderRepo{pool: pool, logger: logger}
}

// ListAvailableHospitals returns available hospitals with both coordinates
// set, oldest registration first.
func (p *ProviderRepo) ListAvailableHospitals(ctx context.Context) ([]domain.HospitalCandidate, error) {
	const op = "postgres.Provider.ListAvailableHospitals"

	const query = `
		SELECT id, hospital_name, latitude, longitude
		FROM hospital_profiles
		WHERE is_available = true
		  AND latitude IS NOT NULL
		  AND longitude IS NOT NULL
		ORDER BY created_at, id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	hospitals := make([]domain.HospitalCandidate, 0, 16)
	for rows.Next() {
		var (
			h        domain.HospitalCandidate
			lat, lng float64
		)
		if err := rows.Scan(&h.ID, &h.Name, &lat, &lng); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		h.Coordinate = &domain.Coordinate{Latitude: lat, Longitude: lng}
		hospitals = append(hospitals, h)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return hospitals, nil
}

// ListOnDutyResponders returns verified on-duty responders with their raw
// current_location, unparsed, oldest registration first.
func (p *ProviderRepo) ListOnDutyResponders(ctx context.Context) ([]domain.ResponderCandidate, error) {
	const op = "postgres.Provider.ListOnDutyResponders"

	const query = `
		SELECT id, current_location
		FROM responder_details
		WHERE is_verified = true
		  AND is_on_duty = true
		ORDER BY created_at, id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	responders := make([]domain.ResponderCandidate, 0, 16)
	for rows.Next() {
		var r domain.ResponderCandidate
		if err := rows.Scan(&r.ID, &r.RawLocation); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		responders = append(responders, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return responders, nil
}

// CreateHospitalRequest inserts a pending sos_requests row for the hospital.
func (p *ProviderRepo) CreateHospitalRequest(ctx context.Context, rec domain.AssignmentRecord) error {
	const op = "postgres.Provider.CreateHospitalRequest"

	const query = `
		INSERT INTO sos_requests (
			user_id, user_name, user_phone, latitude, longitude,
			emergency_type, description, user_address, status, assigned_hospital_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := p.pool.Exec(ctx, query,
		rec.Requester.ID,
		rec.Requester.DisplayName(),
		rec.Requester.ContactPhone(),
		rec.Coordinate.Latitude,
		rec.Coordinate.Longitude,
		rec.EmergencyType,
		rec.Description,
		domain.CurrentLocation,
		domain.RequestPending,
		rec.ProviderID,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("hospital_id", rec.ProviderID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

// CreateResponderAlert inserts an active emergency_alerts row for the responder.
func (p *ProviderRepo) CreateResponderAlert(ctx context.Context, rec domain.AssignmentRecord) error {
	const op = "postgres.Provider.CreateResponderAlert"

	const query = `
		INSERT INTO emergency_alerts (
			user_id, type, description, location_lat, location_lng,
			location_description, status, responder_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := p.pool.Exec(ctx, query,
		rec.Requester.ID,
		rec.EmergencyType,
		rec.Description,
		rec.Coordinate.Latitude,
		rec.Coordinate.Longitude,
		domain.CurrentLocation,
		domain.AlertActive,
		rec.ProviderID,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("responder_id", rec.ProviderID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}
