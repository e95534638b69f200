package dbn

import "encoding/binary"

// ErrMsgCstrLen is the fixed width, including the null terminator, of the
// Err field in ErrorMsg.
const ErrMsgCstrLen = 64

// ErrorMsg is an error response from the Databento gateway.
type ErrorMsg struct {
	Hd     RHeader
	Err    string // the error message
	Code   uint8  // the error code, introduced in DBN version 2; 0xFF if unset
	IsLast uint8  // 1 if this is the last error in a chain, introduced in DBN version 2
}

// ErrorMsgSize is the fixed wire size of ErrorMsg.
const ErrorMsgSize = RHeaderSize + ErrMsgCstrLen + 4

func (r *ErrorMsg) Header() *RHeader { return &r.Hd }
func (*ErrorMsg) RType() RType       { return RType_Error }
func (*ErrorMsg) RSize() int         { return ErrorMsgSize }

func (r *ErrorMsg) FillRaw(b []byte) error {
	if len(b) < ErrorMsgSize {
		return unexpectedBytesError(len(b), ErrorMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.Err = TrimNullBytes(body[0:ErrMsgCstrLen])
	r.Code = body[ErrMsgCstrLen]
	r.IsLast = body[ErrMsgCstrLen+1]
	return nil
}

func (r *ErrorMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	putCString(body[0:ErrMsgCstrLen], r.Err)
	body[ErrMsgCstrLen] = r.Code
	body[ErrMsgCstrLen+1] = r.IsLast
	body[ErrMsgCstrLen+2] = 0
	body[ErrMsgCstrLen+3] = 0
}

// ErrorMsgV1Size is the fixed wire size of ErrorMsg on a version-1 stream,
// which has no Code/IsLast trailer.
const ErrorMsgV1Size = RHeaderSize + ErrMsgCstrLen

// fillVersioned decodes an ErrorMsg whose trailer depends on the DBN
// version: version 1 has no Code/IsLast fields at all.
func (r *ErrorMsg) fillVersioned(b []byte, version uint8) error {
	if version == HeaderVersion1 {
		if len(b) < ErrorMsgV1Size {
			return unexpectedBytesError(len(b), ErrorMsgV1Size)
		}
		if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
			return err
		}
		r.Err = TrimNullBytes(b[RHeaderSize : RHeaderSize+ErrMsgCstrLen])
		r.Code = 0xFF
		r.IsLast = 0
		return nil
	}
	return r.FillRaw(b)
}

///////////////////////////////////////////////////////////////////////////////

// SystemMsgCstrLen is the fixed width, including the null terminator, of the
// Msg field in SystemMsg.
const SystemMsgCstrLen = 64

// SystemMsg is a non-error message from the Databento gateway, including
// heartbeats sent to keep a live session open.
type SystemMsg struct {
	Hd   RHeader
	Msg  string // the message from the gateway
	Code uint8  // the system code, introduced in DBN version 2; 0xFF if unset
}

// SystemMsgSize is the fixed wire size of SystemMsg.
const SystemMsgSize = RHeaderSize + SystemMsgCstrLen + 4

func (r *SystemMsg) Header() *RHeader { return &r.Hd }
func (*SystemMsg) RType() RType       { return RType_System }
func (*SystemMsg) RSize() int         { return SystemMsgSize }

// IsHeartbeat reports whether this message is a keep-alive heartbeat rather
// than an informational status update.
func (r *SystemMsg) IsHeartbeat() bool {
	return r.Msg == "Heartbeat"
}

func (r *SystemMsg) FillRaw(b []byte) error {
	if len(b) < SystemMsgSize {
		return unexpectedBytesError(len(b), SystemMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.Msg = TrimNullBytes(body[0:SystemMsgCstrLen])
	r.Code = body[SystemMsgCstrLen]
	return nil
}

func (r *SystemMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	putCString(body[0:SystemMsgCstrLen], r.Msg)
	body[SystemMsgCstrLen] = r.Code
	body[SystemMsgCstrLen+1] = 0
	body[SystemMsgCstrLen+2] = 0
	body[SystemMsgCstrLen+3] = 0
}

// SystemMsgV1Size is the fixed wire size of SystemMsg on a version-1
// stream, which has no Code trailer.
const SystemMsgV1Size = RHeaderSize + SystemMsgCstrLen

// fillVersioned decodes a SystemMsg whose trailer depends on the DBN
// version: version 1 has no Code field at all.
func (r *SystemMsg) fillVersioned(b []byte, version uint8) error {
	if version == HeaderVersion1 {
		if len(b) < SystemMsgV1Size {
			return unexpectedBytesError(len(b), SystemMsgV1Size)
		}
		if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
			return err
		}
		r.Msg = TrimNullBytes(b[RHeaderSize : RHeaderSize+SystemMsgCstrLen])
		r.Code = 0xFF
		return nil
	}
	return r.FillRaw(b)
}

///////////////////////////////////////////////////////////////////////////////

// SymbolMappingMsg maps a symbol from one SType to another over an interval,
// e.g. resolving a raw venue symbol to Databento's internal instrument ID.
type SymbolMappingMsg struct {
	Hd             RHeader
	StypeIn        uint8
	StypeInSymbol  string
	StypeOut       uint8
	StypeOutSymbol string
	StartTs        uint64 // start of the mapping interval, ns since UNIX epoch
	EndTs          uint64 // end of the mapping interval, ns since UNIX epoch
}

const (
	symbolMappingStypeInSymbolOff  = 4
	symbolMappingStypeOutOff       = symbolMappingStypeInSymbolOff + MetadataV2_SymbolCstrLen
	symbolMappingStypeOutSymbolOff = symbolMappingStypeOutOff + 4
	symbolMappingStartTsOff        = symbolMappingStypeOutSymbolOff + MetadataV2_SymbolCstrLen + 4
	symbolMappingEndTsOff          = symbolMappingStartTsOff + 8
)

// SymbolMappingMsgSize is the fixed wire size of SymbolMappingMsg.
const SymbolMappingMsgSize = RHeaderSize + symbolMappingEndTsOff + 8

func (r *SymbolMappingMsg) Header() *RHeader { return &r.Hd }
func (*SymbolMappingMsg) RType() RType       { return RType_SymbolMapping }
func (*SymbolMappingMsg) RSize() int         { return SymbolMappingMsgSize }

// FillRaw decodes a SymbolMappingMsg assuming the version-2/3 symbol
// width (MetadataV2_SymbolCstrLen). It satisfies RecordPtr for callers
// that don't have a Metadata on hand; dispatch.go instead calls
// FillRawCstrLen with the stream's actual SymbolCstrLen, since this
// record's width is dynamic on the wire (mirroring the teacher's
// Fill_Raw(b, symbolCstrLen) signature).
func (r *SymbolMappingMsg) FillRaw(b []byte) error {
	return r.FillRawCstrLen(b, MetadataV2_SymbolCstrLen)
}

// FillRawCstrLen decodes a SymbolMappingMsg whose StypeInSymbol/
// StypeOutSymbol fields are each cstrLen bytes wide, per the stream's
// Metadata.SymbolCstrLen.
func (r *SymbolMappingMsg) FillRawCstrLen(b []byte, cstrLen uint16) error {
	stypeOutOff := symbolMappingStypeInSymbolOff + int(cstrLen)
	stypeOutSymbolOff := stypeOutOff + 4
	startTsOff := stypeOutSymbolOff + int(cstrLen) + 4
	endTsOff := startTsOff + 8
	size := RHeaderSize + endTsOff + 8
	if len(b) < size {
		return unexpectedBytesError(len(b), size)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.StypeIn = body[0]
	r.StypeInSymbol = TrimNullBytes(body[symbolMappingStypeInSymbolOff:stypeOutOff])
	r.StypeOut = body[stypeOutOff]
	r.StypeOutSymbol = TrimNullBytes(body[stypeOutSymbolOff:startTsOff])
	r.StartTs = binary.LittleEndian.Uint64(body[startTsOff:endTsOff])
	r.EndTs = binary.LittleEndian.Uint64(body[endTsOff : endTsOff+8])
	return nil
}

func (r *SymbolMappingMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	body[0] = r.StypeIn
	body[1], body[2], body[3] = 0, 0, 0
	putCString(body[symbolMappingStypeInSymbolOff:symbolMappingStypeOutOff], r.StypeInSymbol)
	body[symbolMappingStypeOutOff] = r.StypeOut
	body[symbolMappingStypeOutOff+1] = 0
	body[symbolMappingStypeOutOff+2] = 0
	body[symbolMappingStypeOutOff+3] = 0
	putCString(body[symbolMappingStypeOutSymbolOff:symbolMappingStartTsOff], r.StypeOutSymbol)
	binary.LittleEndian.PutUint64(body[symbolMappingStartTsOff:symbolMappingEndTsOff], r.StartTs)
	binary.LittleEndian.PutUint64(body[symbolMappingEndTsOff:symbolMappingEndTsOff+8], r.EndTs)
}
