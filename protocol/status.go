package protocol

import "errors"

// Message IDs carried as the first VLQ of each payload
const (
	MsgStatus = 1 // cycle=%u index=%c flags=%c tempo=%hu
	MsgBanner = 2 // version=%s ring=%c short=%c
)

// Status flag bits
const (
	StatusFreeze = 1 << 0
	StatusShort  = 1 << 1
)

var ErrUnknownMessage = errors.New("unknown message id")

// Status is the controller state as seen by the host
type Status struct {
	Cycle     uint32
	Index     uint8
	Freeze    bool
	ShortMode bool
	Tempo     uint16
}

// Banner is sent once at startup
type Banner struct {
	Version        string
	RingSize       uint8
	ShortThreshold uint8
}

// Message is a decoded payload; exactly one of Status/Banner is meaningful
// depending on ID
type Message struct {
	ID     uint32
	Status Status
	Banner Banner
}

// EncodeStatus writes a status message payload
func EncodeStatus(output OutputBuffer, s Status) {
	var flags uint32
	if s.Freeze {
		flags |= StatusFreeze
	}
	if s.ShortMode {
		flags |= StatusShort
	}
	EncodeVLQUint(output, MsgStatus)
	EncodeVLQUint(output, s.Cycle)
	EncodeVLQUint(output, uint32(s.Index))
	EncodeVLQUint(output, flags)
	EncodeVLQUint(output, uint32(s.Tempo))
}

// EncodeBanner writes a banner message payload
func EncodeBanner(output OutputBuffer, b Banner) {
	EncodeVLQUint(output, MsgBanner)
	EncodeVLQString(output, b.Version)
	EncodeVLQUint(output, uint32(b.RingSize))
	EncodeVLQUint(output, uint32(b.ShortThreshold))
}

// DecodeMessage parses one payload produced by EncodeStatus or EncodeBanner
func DecodeMessage(payload []byte) (Message, error) {
	id, err := DecodeVLQUint(&payload)
	if err != nil {
		return Message{}, err
	}
	msg := Message{ID: id}

	switch id {
	case MsgStatus:
		var fields [4]uint32
		for i := range fields {
			if fields[i], err = DecodeVLQUint(&payload); err != nil {
				return Message{}, err
			}
		}
		msg.Status = Status{
			Cycle:     fields[0],
			Index:     uint8(fields[1]),
			Freeze:    fields[2]&StatusFreeze != 0,
			ShortMode: fields[2]&StatusShort != 0,
			Tempo:     uint16(fields[3]),
		}
	case MsgBanner:
		version, err := DecodeVLQString(&payload)
		if err != nil {
			return Message{}, err
		}
		ring, err := DecodeVLQUint(&payload)
		if err != nil {
			return Message{}, err
		}
		short, err := DecodeVLQUint(&payload)
		if err != nil {
			return Message{}, err
		}
		msg.Banner = Banner{Version: version, RingSize: uint8(ring), ShortThreshold: uint8(short)}
	default:
		return Message{}, ErrUnknownMessage
	}
	return msg, nil
}
