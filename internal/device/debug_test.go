package device

import "testing"

func TestDebugSinkRecordsAndStops(t *testing.T) {
	d := NewDebugSink()
	if err := d.SetPower(Front, 12.5); err != nil {
		t.Fatalf("SetPower: %v", err)
	}
	if err := d.SetPower(Back, -20); err != nil {
		t.Fatalf("SetPower: %v", err)
	}

	last := d.Last()
	if last[Front] != 12.5 || last[Back] != -20 {
		t.Fatalf("Last = %v, want f=12.5 b=-20", last)
	}

	if err := d.StopAll(); err != nil {
		t.Fatalf("StopAll: %v", err)
	}
	for _, ch := range Channels {
		if p := d.Last()[ch]; p != 0 {
			t.Fatalf("channel %s at %v after StopAll, want 0", ch, p)
		}
	}
}

func TestDebugSinkLastIsSnapshot(t *testing.T) {
	d := NewDebugSink()
	snap := d.Last()
	snap[Front] = 99
	if d.Last()[Front] != 0 {
		t.Fatal("mutating the snapshot leaked into the sink")
	}
}
