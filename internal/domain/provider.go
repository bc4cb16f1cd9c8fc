package domain

import "github.com/google/uuid"

type ProviderKind string

const (
	ProviderHospital  ProviderKind = "hospital"
	ProviderResponder ProviderKind = "responder"
)

// HospitalCandidate is an available hospital as returned by storage.
// Coordinate is nil when the row has no usable position.
type HospitalCandidate struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"hospital_name"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

// ResponderCandidate is a verified on-duty responder. RawLocation is the
// stored current_location text, whose shape varies between rows.
type ResponderCandidate struct {
	ID          uuid.UUID `json:"id"`
	RawLocation *string   `json:"current_location,omitempty"`
}

type LocationState int

const (
	LocationResolved LocationState = iota
	LocationUnparseable
)

// Candidate is a provider normalized for ranking. Only candidates in
// LocationResolved carry a meaningful Coordinate.
type Candidate struct {
	ID         uuid.UUID
	Kind       ProviderKind
	Coordinate Coordinate
	Location   LocationState
}

func (c Candidate) Eligible() bool { return c.Location == LocationResolved }

type RankedCandidate struct {
	Candidate
	DistanceKm float64
}
