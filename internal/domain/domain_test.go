package domain

import "testing"

func TestRequesterProfile_DisplayName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		p    RequesterProfile
		want string
	}{
		{"full", RequesterProfile{FirstName: "Asha", LastName: "Rao"}, "Asha Rao"},
		{"no_last", RequesterProfile{FirstName: "Asha"}, "Asha"},
		{"no_first", RequesterProfile{LastName: "Rao"}, "User Rao"},
		{"empty", RequesterProfile{}, "User"},
	}
	for _, c := range cases {
		if got := c.p.DisplayName(); got != c.want {
			t.Fatalf("%s: expected %q got %q", c.name, c.want, got)
		}
	}
}

func TestRequesterProfile_ContactPhone(t *testing.T) {
	if got := (RequesterProfile{}).ContactPhone(); got != "Not provided" {
		t.Fatalf("unexpected default phone %q", got)
	}
	if got := (RequesterProfile{Phone: "+91 98450 00000"}).ContactPhone(); got != "+91 98450 00000" {
		t.Fatalf("unexpected phone %q", got)
	}
}

func TestCoordinate_Valid(t *testing.T) {
	if !(Coordinate{Latitude: -90, Longitude: 180}).Valid() {
		t.Fatalf("boundary coordinate must be valid")
	}
	if (Coordinate{Latitude: 90.0001, Longitude: 0}).Valid() {
		t.Fatalf("lat > 90 must be invalid")
	}
	if (Coordinate{Latitude: 0, Longitude: -180.5}).Valid() {
		t.Fatalf("lng < -180 must be invalid")
	}
}

func TestStatuses(t *testing.T) {
	if !RequestResolved.Closed() || !RequestDismissed.Closed() || RequestAcknowledged.Closed() {
		t.Fatalf("closed request statuses mismatch")
	}
	if RequestStatus("done").Valid() {
		t.Fatalf("unknown request status must be invalid")
	}
	if !AlertAcknowledged.ClaimsResponder() || !AlertResponding.ClaimsResponder() || AlertCompleted.ClaimsResponder() {
		t.Fatalf("responder claim statuses mismatch")
	}
	if EmergencyType("fire").Valid() || !EmergencySafety.Valid() {
		t.Fatalf("emergency type validity mismatch")
	}
}
