package dbn

import "encoding/binary"

// Record is the marker interface implemented by every decoded record type.
type Record interface {
	Header() *RHeader
}

// RecordPtr constrains a type parameter to *T where T implements Record and
// exposes the fixed-layout hooks the generic reader/writer need. Go methods
// cannot be generic, so the free functions in typed_reader.go take RP as
// an explicit type parameter instead.
type RecordPtr[T any] interface {
	*T
	Record
	RType() RType
	RSize() int
	FillRaw(b []byte) error
}

// RHeader is the 16-byte header prefixed to every DBN record.
type RHeader struct {
	Length       uint8  // record length in 32-bit words, including this header
	RType        RType  // the record's tag
	PublisherID  uint16 // publisher ID assigned by Databento; denotes dataset and venue
	InstrumentID uint32 // the numeric instrument ID
	TsEvent      uint64 // matching-engine-received timestamp, ns since UNIX epoch
}

// RHeaderSize is the fixed size of RHeader on the wire.
const RHeaderSize = 16

// ByteSize returns the record's total size in bytes, derived from Length.
func (h *RHeader) ByteSize() int {
	return 4 * int(h.Length)
}

// FillRHeaderRaw decodes an RHeader from its 16-byte wire layout.
func FillRHeaderRaw(b []byte, h *RHeader) error {
	if len(b) < RHeaderSize {
		return unexpectedBytesError(len(b), RHeaderSize)
	}
	h.Length = b[0]
	h.RType = RType(b[1])
	h.PublisherID = binary.LittleEndian.Uint16(b[2:4])
	h.InstrumentID = binary.LittleEndian.Uint32(b[4:8])
	h.TsEvent = binary.LittleEndian.Uint64(b[8:16])
	return nil
}

// WriteRHeaderRaw encodes an RHeader to its 16-byte wire layout.
func WriteRHeaderRaw(b []byte, h *RHeader) {
	b[0] = h.Length
	b[1] = uint8(h.RType)
	binary.LittleEndian.PutUint16(b[2:4], h.PublisherID)
	binary.LittleEndian.PutUint32(b[4:8], h.InstrumentID)
	binary.LittleEndian.PutUint64(b[8:16], h.TsEvent)
}

// SkippedRecord is the sentinel yielded by the dispatcher for a record
// whose RType this codec has no layout for. It is not an error: the
// caller is expected to ignore it and keep reading. Raw carries the
// record's undecoded bytes, header included, in case the caller wants to
// re-dispatch against a newer schema version.
type SkippedRecord struct {
	Hd  RHeader
	Raw []byte
}

func (r *SkippedRecord) Header() *RHeader { return &r.Hd }
