package domain

type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
}

// Valid reports whether the coordinate lies in [-90,90] x [-180,180].
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}
