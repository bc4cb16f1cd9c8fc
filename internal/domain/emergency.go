package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending      RequestStatus = "pending"
	RequestAcknowledged RequestStatus = "acknowledged"
	RequestResolved     RequestStatus = "resolved"
	RequestDismissed    RequestStatus = "dismissed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestAcknowledged, RequestResolved, RequestDismissed:
		return true
	}
	return false
}

// Closed statuses move a request to the hospital history.
func (s RequestStatus) Closed() bool {
	return s == RequestResolved || s == RequestDismissed
}

// EmergencyRequest is an SOS assigned to a hospital (sos_requests).
type EmergencyRequest struct {
	ID                 uuid.UUID     `json:"id"`
	UserID             uuid.UUID     `json:"user_id"`
	UserName           string        `json:"user_name"`
	UserPhone          string        `json:"user_phone"`
	Latitude           float64       `json:"latitude"`
	Longitude          float64       `json:"longitude"`
	EmergencyType      EmergencyType `json:"emergency_type"`
	Description        string        `json:"description"`
	UserAddress        string        `json:"user_address"`
	Status             RequestStatus `json:"status"`
	AssignedHospitalID uuid.UUID     `json:"assigned_hospital_id"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

type AlertStatus string

const (
	AlertActive       AlertStatus = "active"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertResponding   AlertStatus = "responding"
	AlertCompleted    AlertStatus = "completed"
)

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertActive, AlertAcknowledged, AlertResponding, AlertCompleted:
		return true
	}
	return false
}

// ClaimsResponder reports whether moving to s stamps the acting responder on
// the alert.
func (s AlertStatus) ClaimsResponder() bool {
	return s == AlertAcknowledged || s == AlertResponding
}

// EmergencyAlert is an SOS assigned to a responder (emergency_alerts).
type EmergencyAlert struct {
	ID                  uuid.UUID     `json:"id"`
	UserID              uuid.UUID     `json:"user_id"`
	Type                EmergencyType `json:"type"`
	Description         string        `json:"description"`
	LocationLat         float64       `json:"location_lat"`
	LocationLng         float64       `json:"location_lng"`
	LocationDescription string        `json:"location_description"`
	Status              AlertStatus   `json:"status"`
	ResponderID         *uuid.UUID    `json:"responder_id,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

type NearbyAlert struct {
	EmergencyAlert
	DistanceKm float64 `json:"distance_km"`
}
