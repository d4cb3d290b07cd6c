package parser

import (
	"math"
	"testing"
)

func TestParseNMEACoordLat(t *testing.T) {
	got, err := ParseNMEACoord("4144.1030", "N")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if math.Abs(got-41.735050) > 1e-6 {
		t.Fatalf("got %v, want 41.735050", got)
	}
}

func TestParseNMEACoordWestIsNegative(t *testing.T) {
	got, err := ParseNMEACoord("07119.1400", "W")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if math.Abs(got-(-71.319)) > 1e-6 {
		t.Fatalf("got %v, want -71.319", got)
	}
}

func TestParseNMEACoordRejectsGarbage(t *testing.T) {
	cases := []struct{ value, dir string }{
		{"", "N"},
		{"41", "N"},
		{"abcd.123", "N"},
		{"4144.1030", "X"},
	}
	for _, c := range cases {
		if _, err := ParseNMEACoord(c.value, c.dir); err == nil {
			t.Fatalf("ParseNMEACoord(%q,%q) accepted garbage", c.value, c.dir)
		}
	}
}

func TestNMEACoordRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		dec   float64
		isLat bool
	}{
		{41.73505, true},
		{-71.319, false},
		{-33.8568, true},
		{151.2153, false},
	} {
		value, dir := ToNMEACoord(tc.dec, tc.isLat)
		back, err := ParseNMEACoord(value, dir)
		if err != nil {
			t.Fatalf("round trip parse %q %q: %v", value, dir, err)
		}
		// ToNMEACoord keeps 3 decimal places of minutes (~2m of latitude)
		if math.Abs(back-tc.dec) > 1e-4 {
			t.Fatalf("round trip %v -> %q,%q -> %v", tc.dec, value, dir, back)
		}
	}
}
