// Package protocol frames the chaser's status telemetry.
//
// Frames use the Klipper block layout so existing serial tooling can
// synchronise on them:
//
//	[len][0x10|seq][payload ...][crc16 hi][crc16 lo][0x7E]
//
// len counts the whole block. Payloads are VLQ-encoded messages (see status.go).
package protocol

// Protocol constants
const (
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessageMax         = 256 // Scratch buffer size, room for several frames
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E
	MessageDest        = 0x10
	MessageSeqMask     = 0x0F
)
