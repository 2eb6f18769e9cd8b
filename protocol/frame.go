package protocol

// Framer wraps payloads into sequenced blocks on an output buffer
type Framer struct {
	output  OutputBuffer
	seq     uint8
	started bool
}

// NewFramer creates a framer writing to output
func NewFramer(output OutputBuffer) *Framer {
	return &Framer{output: output}
}

// EncodeFrame writes one block whose payload is produced by frameData.
// The sequence number advances by one per block, modulo 16. The first
// block is preceded by a sync byte so a listening decoder can lock on
// without losing it.
func (f *Framer) EncodeFrame(frameData func(output OutputBuffer)) {
	if !f.started {
		f.output.Output([]byte{MessageValueSync})
		f.started = true
	}
	cursor := f.output.CurPosition()

	// Write header (length placeholder and sequence)
	f.output.Output([]byte{0, MessageDest | (f.seq & MessageSeqMask)})

	// Write frame contents
	frameData(f.output)

	// Update length field
	changed := len(f.output.DataSince(cursor))
	f.output.Update(cursor, uint8(changed+MessageTrailerSize))

	// Calculate and write CRC
	crc := CRC16(f.output.DataSince(cursor))
	f.output.Output([]byte{
		uint8((crc & 0xFF00) >> 8),
		uint8(crc & 0xFF),
		MessageValueSync,
	})

	f.seq = (f.seq + 1) & MessageSeqMask
}

// FrameHandler receives the sequence number and payload of a valid block.
// payload is only valid for the duration of the call.
type FrameHandler func(seq uint8, payload []byte)

// FrameDecoder extracts blocks from a byte stream that may start mid-frame
// and may contain corrupted bytes. It starts unsynchronised and skips to
// the first sync byte.
type FrameDecoder struct {
	fifo     *FifoBuffer
	synced   bool
	expected uint8
	started  bool

	// Dropped counts desynchronisations (bad length, bad CRC, missing sync)
	Dropped uint32
	// Missed counts blocks lost according to sequence numbers
	Missed uint32
}

// NewFrameDecoder creates a decoder
func NewFrameDecoder() *FrameDecoder {
	return &FrameDecoder{fifo: NewFifoBuffer(4 * MessageLengthMax)}
}

// Feed pushes received bytes through the decoder, calling handle once per
// valid block
func (d *FrameDecoder) Feed(data []byte, handle FrameHandler) {
	for len(data) > 0 {
		n := d.fifo.Write(data)
		data = data[n:]
		d.parse(handle)
	}
}

func (d *FrameDecoder) parse(handle FrameHandler) {
	buf := d.fifo.Data()
	consumed := 0

	for consumed < len(buf) {
		data := buf[consumed:]

		if !d.synced {
			// Look for sync byte to resynchronize
			syncPos := -1
			for i, b := range data {
				if b == MessageValueSync {
					syncPos = i
					break
				}
			}
			if syncPos < 0 {
				consumed = len(buf)
				break
			}
			consumed += syncPos + 1
			d.synced = true
			continue
		}

		// Skip leading sync bytes
		if data[0] == MessageValueSync {
			consumed++
			continue
		}

		// Need at least minimum message length
		if len(data) < MessageLengthMin {
			break
		}

		msgLen := int(data[MessagePositionLen])
		if msgLen < MessageLengthMin || msgLen > MessageLengthMax {
			d.desync()
			continue
		}

		seq := data[MessagePositionSeq]
		if seq&^MessageSeqMask != MessageDest {
			d.desync()
			continue
		}

		// Wait for full message
		if len(data) < msgLen {
			break
		}

		if data[msgLen-MessageTrailerSync] != MessageValueSync {
			d.desync()
			continue
		}

		frameCRC := uint16(data[msgLen-MessageTrailerCRC])<<8 |
			uint16(data[msgLen-MessageTrailerCRC+1])
		if frameCRC != CRC16(data[:msgLen-MessageTrailerSize]) {
			d.desync()
			continue
		}

		seq &= MessageSeqMask
		if d.started && seq != d.expected {
			d.Missed += uint32((seq - d.expected) & MessageSeqMask)
		}
		d.started = true
		d.expected = (seq + 1) & MessageSeqMask

		handle(seq, data[MessageHeaderSize:msgLen-MessageTrailerSize])
		consumed += msgLen
	}

	d.fifo.Pop(consumed)
}

func (d *FrameDecoder) desync() {
	d.synced = false
	d.Dropped++
}
