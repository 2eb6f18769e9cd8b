package monitor

import (
	"encoding/json"
	"fmt"
	"strings"

	"chaser/protocol"
)

// Record is the JSON form of a message, one object per line
type Record struct {
	Type string `json:"type"`

	Cycle     uint32 `json:"cycle,omitempty"`
	Index     uint8  `json:"index"`
	Freeze    bool   `json:"freeze"`
	ShortMode bool   `json:"short"`
	Tempo     uint16 `json:"tempo"`

	Version        string `json:"version,omitempty"`
	RingSize       uint8  `json:"ring_size,omitempty"`
	ShortThreshold uint8  `json:"short_threshold,omitempty"`
}

// ToRecord converts a decoded message to its JSON record
func ToRecord(msg protocol.Message) Record {
	switch msg.ID {
	case protocol.MsgBanner:
		return Record{
			Type:           "banner",
			Version:        msg.Banner.Version,
			RingSize:       msg.Banner.RingSize,
			ShortThreshold: msg.Banner.ShortThreshold,
		}
	default:
		return Record{
			Type:      "status",
			Cycle:     msg.Status.Cycle,
			Index:     msg.Status.Index,
			Freeze:    msg.Status.Freeze,
			ShortMode: msg.Status.ShortMode,
			Tempo:     msg.Status.Tempo,
		}
	}
}

// MarshalLine renders msg as a single JSON line
func MarshalLine(msg protocol.Message) ([]byte, error) {
	data, err := json.Marshal(ToRecord(msg))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return append(data, '\n'), nil
}

// FormatMessage renders msg for a terminal
func FormatMessage(msg protocol.Message) string {
	if msg.ID == protocol.MsgBanner {
		return fmt.Sprintf("chaser %s ring=%d short=%d",
			msg.Banner.Version, msg.Banner.RingSize, msg.Banner.ShortThreshold)
	}

	s := msg.Status
	var flags []string
	if s.Freeze {
		flags = append(flags, "FREEZE")
	}
	if s.ShortMode {
		flags = append(flags, "SHORT")
	}
	if len(flags) == 0 {
		flags = append(flags, "-")
	}
	return fmt.Sprintf("cycle=%-8d index=%-2d tempo=%-3d %s",
		s.Cycle, s.Index, s.Tempo, strings.Join(flags, ","))
}

// FormatStats renders the stream counters
func FormatStats(s Stats) string {
	return fmt.Sprintf("frames=%d dropped=%d missed=%d undecodable=%d",
		s.Frames, s.Dropped, s.Missed, s.Undecodable)
}
