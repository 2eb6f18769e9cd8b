package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// StatusWriter receives a snapshot whenever the visible state changes
// in a way worth reporting (mode toggles, tempo moves)
type StatusWriter func(Snapshot)

// Snapshot is the reportable state of the controller
type Snapshot struct {
	Cycle     uint32
	Index     uint8
	Freeze    bool
	ShortMode bool
	Tempo     TempoUnits
}

// EventType codes recorded in the event ring
const (
	EvtFreezeToggle = 1 // freeze edge applied, Value = new state
	EvtShortToggle  = 2 // short-mode edge applied, Value = new state
	EvtTempoChange  = 3 // tempo moved beyond hysteresis, Value = tempo
	EvtSampleError  = 4 // ADC read failed, previous tempo kept
	EvtDriverError  = 5 // output or input driver returned an error
)

// Event captures a state change for post-mortem analysis
type Event struct {
	Type  uint8
	Cycle uint32
	Poll  uint32 // inner iteration within the cycle
	Value uint32
}

// EventRingSize is the number of events kept
const EventRingSize = 16

// Diagnostics collects the controller's debug output and event history.
// All methods are safe on a zero value; nil writers drop output.
type Diagnostics struct {
	debug  DebugWriter
	status StatusWriter

	ring [EventRingSize]Event
	head uint8
}

// NewDiagnostics creates diagnostics with the given sinks (either may be nil)
func NewDiagnostics(debug DebugWriter, status StatusWriter) *Diagnostics {
	return &Diagnostics{debug: debug, status: status}
}

// Println writes a debug message
func (d *Diagnostics) Println(msg string) {
	if d.debug != nil {
		d.debug(msg)
	}
}

// Report forwards a snapshot to the status sink
func (d *Diagnostics) Report(s Snapshot) {
	if d.status != nil {
		d.status(s)
	}
}

// Record appends an event to the ring, overwriting the oldest
func (d *Diagnostics) Record(eventType uint8, cycle, poll, value uint32) {
	idx := d.head
	d.ring[idx] = Event{Type: eventType, Cycle: cycle, Poll: poll, Value: value}
	d.head = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first
func (d *Diagnostics) Events() []Event {
	out := make([]Event, 0, EventRingSize)
	for i := uint8(0); i < EventRingSize; i++ {
		evt := d.ring[(d.head+i)%EventRingSize]
		if evt.Type == 0 {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// DumpEvents writes the event ring through the debug writer
func (d *Diagnostics) DumpEvents() {
	if d.debug == nil {
		return
	}
	d.debug("[EVENTS] === Event Ring Dump ===")
	for _, evt := range d.Events() {
		d.debug("[EVENTS] " + eventName(evt.Type) +
			" cycle=" + utoa(evt.Cycle) +
			" poll=" + utoa(evt.Poll) +
			" value=" + utoa(evt.Value))
	}
	d.debug("[EVENTS] === End Dump ===")
}

func eventName(t uint8) string {
	switch t {
	case EvtFreezeToggle:
		return "FREEZE"
	case EvtShortToggle:
		return "SHORT"
	case EvtTempoChange:
		return "TEMPO"
	case EvtSampleError:
		return "SAMPLE_ERR"
	case EvtDriverError:
		return "DRIVER_ERR"
	default:
		return "UNKNOWN"
	}
}
