package domain

type DispatchStats struct {
	HospitalRequests int64 `json:"hospital_requests"`
	ResponderAlerts  int64 `json:"responder_alerts"`
	UniqueRequesters int64 `json:"unique_requesters"`
	Minutes          int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"`
}
