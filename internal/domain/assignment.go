package domain

import "github.com/google/uuid"

type EmergencyType string

const (
	EmergencyMedical EmergencyType = "medical"
	EmergencySafety  EmergencyType = "safety"
	EmergencyGeneral EmergencyType = "general"
)

func (t EmergencyType) Valid() bool {
	switch t {
	case EmergencyMedical, EmergencySafety, EmergencyGeneral:
		return true
	}
	return false
}

const (
	DefaultDescription = "Emergency SOS request from mobile app."
	CurrentLocation    = "Current Location"
)

type DecisionKind string

const (
	DecisionHospital  DecisionKind = "hospital"
	DecisionResponder DecisionKind = "responder"
	DecisionNone      DecisionKind = "none"
)

type AssignmentDecision struct {
	Kind        DecisionKind `json:"kind"`
	CandidateID uuid.UUID    `json:"candidate_id,omitempty"`
	DistanceKm  float64      `json:"distance_km,omitempty"`
}

func (d AssignmentDecision) Assigned() bool { return d.Kind != DecisionNone && d.Kind != "" }

// AssignmentRecord is everything storage needs to persist one assignment.
type AssignmentRecord struct {
	Requester     RequesterProfile
	Coordinate    Coordinate
	EmergencyType EmergencyType
	Description   string
	ProviderID    uuid.UUID
}
