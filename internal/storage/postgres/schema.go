package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id         uuid PRIMARY KEY,
	first_name text,
	last_name  text,
	phone      text,
	created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS hospital_profiles (
	id            uuid PRIMARY KEY,
	hospital_name text NOT NULL DEFAULT '',
	latitude      double precision,
	longitude     double precision,
	is_available  boolean NOT NULL DEFAULT true,
	created_at    timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS responder_details (
	id               uuid PRIMARY KEY,
	is_verified      boolean NOT NULL DEFAULT false,
	is_on_duty       boolean NOT NULL DEFAULT false,
	current_location text,
	created_at       timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sos_requests (
	id                   uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id              uuid NOT NULL,
	user_name            text NOT NULL,
	user_phone           text NOT NULL,
	latitude             double precision NOT NULL,
	longitude            double precision NOT NULL,
	emergency_type       text NOT NULL CHECK (emergency_type IN ('medical', 'safety', 'general')),
	description          text NOT NULL,
	user_address         text NOT NULL,
	status               text NOT NULL DEFAULT 'pending'
		CHECK (status IN ('pending', 'acknowledged', 'resolved', 'dismissed')),
	assigned_hospital_id uuid NOT NULL,
	created_at           timestamptz NOT NULL DEFAULT NOW(),
	updated_at           timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS sos_requests_hospital_created_idx
	ON sos_requests (assigned_hospital_id, created_at DESC);

CREATE TABLE IF NOT EXISTS emergency_alerts (
	id                   uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id              uuid NOT NULL,
	type                 text NOT NULL CHECK (type IN ('medical', 'safety', 'general')),
	description          text NOT NULL,
	location_lat         double precision NOT NULL,
	location_lng         double precision NOT NULL,
	location_description text NOT NULL,
	status               text NOT NULL DEFAULT 'active'
		CHECK (status IN ('active', 'acknowledged', 'responding', 'completed')),
	responder_id         uuid,
	created_at           timestamptz NOT NULL DEFAULT NOW(),
	updated_at           timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS emergency_alerts_status_idx ON emergency_alerts (status);

CREATE INDEX IF NOT EXISTS emergency_alerts_responder_created_idx
	ON emergency_alerts (responder_id, created_at DESC);
`

// Migrate creates the tables the dispatcher reads and writes. It is
// idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
