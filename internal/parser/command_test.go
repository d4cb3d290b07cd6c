package parser

import (
	"testing"

	"AquaRover/internal/model"
)

func TestParseCommandCSV(t *testing.T) {
	got, err := ParseCommandCSV("CMD,0.500,-0.250,0.100")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Surge != 0.5 || got.Lateral != -0.25 || got.Yaw != 0.1 {
		t.Fatalf("got %+v, want 0.5/-0.25/0.1", got)
	}
	if !got.Stamp.IsZero() {
		t.Fatal("parser stamped the command; stamping is the loop's job")
	}
}

func TestParseCommandCSVRejectsMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"CMD,0.5,0.0",
		"CMD,0.5,0.0,0.1,extra",
		"TEL,0.5,0.0,0.1",
		"CMD,x,0.0,0.1",
		"CMD,0.5,x,0.1",
		"CMD,0.5,0.0,x",
	} {
		if _, err := ParseCommandCSV(line); err == nil {
			t.Fatalf("ParseCommandCSV(%q) accepted malformed line", line)
		}
	}
}

func TestCommandRoundTrip(t *testing.T) {
	c := model.Command{Surge: 0.5, Lateral: -0.25, Yaw: 0.125}
	back, err := ParseCommandCSV(CommandToCSV(c))
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if back.Surge != c.Surge || back.Lateral != c.Lateral || back.Yaw != c.Yaw {
		t.Fatalf("round trip %+v -> %+v", c, back)
	}
}

func TestThrusterToCSV(t *testing.T) {
	if got := ThrusterToCSV("f", 12.5); got != "MTR,f,12.50" {
		t.Fatalf("got %q, want MTR,f,12.50", got)
	}
	if got := ThrusterToCSV("b", -20); got != "MTR,b,-20.00" {
		t.Fatalf("got %q, want MTR,b,-20.00", got)
	}
}

func TestIsAck(t *testing.T) {
	if !IsAck("ACK,MTR\r\n") {
		t.Fatal("valid ack rejected")
	}
	if IsAck("ACK,CAL") || IsAck("MTR,f,0.00") || IsAck("") {
		t.Fatal("non-ack line accepted")
	}
}
