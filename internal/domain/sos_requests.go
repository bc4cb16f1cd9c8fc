package domain

type SOSRequest struct {
	EmergencyType EmergencyType `json:"emergency_type" validate:"omitempty,emergency_type"`
	Latitude      float64       `json:"latitude" validate:"lat"`
	Longitude     float64       `json:"longitude" validate:"lng"`
	Description   string        `json:"description,omitempty" validate:"max=1000"`
}

func (r SOSRequest) Coordinate() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// SOSResult is the boundary shape returned to callers of the SOS flow.
type SOSResult struct {
	Success bool         `json:"success"`
	Type    DecisionKind `json:"type,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type UpdateRequestStatus struct {
	Status RequestStatus `json:"status" validate:"required,oneof=pending acknowledged resolved dismissed"`
}

type UpdateAlertStatus struct {
	Status AlertStatus `json:"status" validate:"required,oneof=active acknowledged responding completed"`
}

type RequestScope string

const (
	ScopeActive  RequestScope = "active"
	ScopeHistory RequestScope = "history"
)

type ListHospitalRequests struct {
	Requests []EmergencyRequest `json:"requests"`
	Scope    RequestScope       `json:"scope"`
}
