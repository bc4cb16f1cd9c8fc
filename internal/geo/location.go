package geo

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"lifesaver/internal/domain"
)

var (
	// "(lng,lat)" anywhere in the string, longitude first.
	tupleRe = regexp.MustCompile(`\(([^,]+),([^)]+)\)`)
	// leading decimal literal, as accepted by a lenient float parse
	numberPrefixRe = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
)

// ParseLocation normalizes a stored responder location. Accepted shapes, in
// order: JSON {"lat","lng"}, JSON {"latitude","longitude"}, and the textual
// "(lng,lat)" tuple. It never fails loudly: anything else reports ok=false.
//
// The JSON forms require both values to be non-zero, so a point lying exactly
// on the equator or the prime meridian is only recognized in tuple form.
func ParseLocation(raw *string) (domain.Coordinate, bool) {
	if raw == nil {
		return domain.Coordinate{}, false
	}
	return ParseLocationString(*raw)
}

func ParseLocationString(s string) (domain.Coordinate, bool) {
	if s == "" {
		return domain.Coordinate{}, false
	}

	if p, ok := parseJSONLocation(s); ok {
		return p, true
	}

	m := tupleRe.FindStringSubmatch(s)
	if m == nil {
		return domain.Coordinate{}, false
	}
	lng, okLng := parseLeadingFloat(m[1])
	lat, okLat := parseLeadingFloat(m[2])
	if !okLng || !okLat {
		return domain.Coordinate{}, false
	}
	return domain.Coordinate{Latitude: lat, Longitude: lng}, true
}

func parseJSONLocation(s string) (domain.Coordinate, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return domain.Coordinate{}, false
	}

	lat, okLat := truthyNumber(obj["lat"])
	lng, okLng := truthyNumber(obj["lng"])
	if okLat && okLng {
		return domain.Coordinate{Latitude: lat, Longitude: lng}, true
	}

	lat, okLat = truthyNumber(obj["latitude"])
	lng, okLng = truthyNumber(obj["longitude"])
	if okLat && okLng {
		return domain.Coordinate{Latitude: lat, Longitude: lng}, true
	}
	return domain.Coordinate{}, false
}

// truthyNumber accepts non-zero numbers and non-empty numeric strings.
func truthyNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if n == 0 || math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case string:
		if n == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func parseLeadingFloat(s string) (float64, bool) {
	lit := numberPrefixRe.FindString(strings.TrimLeft(s, " \t\r\n\v\f"))
	if lit == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
