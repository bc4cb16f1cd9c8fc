package domain

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentNotification struct {
	UserID        uuid.UUID     `json:"user_id"`
	Kind          DecisionKind  `json:"kind"`
	ProviderID    uuid.UUID     `json:"provider_id"`
	EmergencyType EmergencyType `json:"emergency_type"`
	Latitude      float64       `json:"latitude"`
	Longitude     float64       `json:"longitude"`
	DistanceKm    float64       `json:"distance_km"`
	AssignedAt    time.Time     `json:"assigned_at"`
}
