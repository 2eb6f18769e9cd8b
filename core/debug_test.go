package core

import "testing"

func TestDiagnosticsEventRingWraps(t *testing.T) {
	d := NewDiagnostics(nil, nil)
	for i := uint32(0); i < EventRingSize+4; i++ {
		d.Record(EvtTempoChange, i, 0, i)
	}

	events := d.Events()
	if len(events) != EventRingSize {
		t.Fatalf("Expected %d events, got %d", EventRingSize, len(events))
	}
	if events[0].Cycle != 4 {
		t.Errorf("Expected oldest event from cycle 4, got %d", events[0].Cycle)
	}
	if last := events[len(events)-1]; last.Cycle != EventRingSize+3 {
		t.Errorf("Expected newest event from cycle %d, got %d", EventRingSize+3, last.Cycle)
	}
}

func TestDiagnosticsDumpEvents(t *testing.T) {
	var lines []string
	d := NewDiagnostics(func(s string) { lines = append(lines, s) }, nil)
	d.Record(EvtFreezeToggle, 7, 1234, 1)

	d.DumpEvents()

	if len(lines) != 3 {
		t.Fatalf("Expected header, one event and footer, got %v", lines)
	}
	if want := "[EVENTS] FREEZE cycle=7 poll=1234 value=1"; lines[1] != want {
		t.Errorf("Expected %q, got %q", want, lines[1])
	}
}

func TestDiagnosticsNilSinks(t *testing.T) {
	d := NewDiagnostics(nil, nil)
	// Must not panic
	d.Println("dropped")
	d.Report(Snapshot{})
	d.DumpEvents()
}

func TestFormatSnapshot(t *testing.T) {
	s := Snapshot{Cycle: 42, Index: 7, Freeze: true, ShortMode: false, Tempo: 256}
	want := "cycle=42 index=7 freeze=1 short=0 tempo=256"
	if got := FormatSnapshot(s); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestUtoa(t *testing.T) {
	testCases := map[uint32]string{
		0:          "0",
		9:          "9",
		10:         "10",
		131072:     "131072",
		4294967295: "4294967295",
	}
	for in, want := range testCases {
		if got := utoa(in); got != want {
			t.Errorf("utoa(%d) = %q, want %q", in, got, want)
		}
	}
}
