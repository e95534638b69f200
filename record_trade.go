package dbn

import "encoding/binary"

// Mbp0Msg is a market-by-price record with a book depth of 0, used for the
// Trades schema: one decoded event per trade execution.
type Mbp0Msg struct {
	Hd        RHeader
	TsRecv    uint64 // capture-server-received timestamp, ns since UNIX epoch
	Price     int64  // order price, scale 1e-9
	Size      uint32 // order quantity
	Action    uint8  // the event action; always Action_Trade in the Trades schema
	Side      uint8  // the aggressor side
	Flags     uint8  // bit field of packet end/quality flags, see RFlag_*
	Depth     uint8  // the book level where the update occurred
	TsInDelta int32  // matching-engine-sending timestamp, ns before TsRecv
	Sequence  uint32 // message sequence number assigned at the venue
}

// Mbp0MsgSize is the fixed wire size of Mbp0Msg.
const Mbp0MsgSize = RHeaderSize + 32

func (r *Mbp0Msg) Header() *RHeader { return &r.Hd }
func (*Mbp0Msg) RType() RType       { return RType_Mbp0 }
func (*Mbp0Msg) RSize() int         { return Mbp0MsgSize }

func (r *Mbp0Msg) FillRaw(b []byte) error {
	if len(b) < Mbp0MsgSize {
		return unexpectedBytesError(len(b), Mbp0MsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Action = body[20]
	r.Side = body[21]
	r.Flags = body[22]
	r.Depth = body[23]
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.Sequence = binary.LittleEndian.Uint32(body[28:32])
	return nil
}

func (r *Mbp0Msg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Action
	body[21] = r.Side
	body[22] = r.Flags
	body[23] = r.Depth
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[28:32], r.Sequence)
}

///////////////////////////////////////////////////////////////////////////////

// MboMsg is a market-by-order record: a single order book delta.
type MboMsg struct {
	Hd        RHeader
	OrderID   uint64 // the venue-assigned order ID
	Price     int64  // the order price, scale 1e-9
	Size      uint32 // the order quantity
	Flags     uint8  // bit field of packet end/quality flags, see RFlag_*
	ChannelID uint8  // the channel ID assigned by Databento
	Action    uint8  // the event action, see Action_*
	Side      uint8  // the side of the order
	TsRecv    uint64 // capture-server-received timestamp, ns since UNIX epoch
	TsInDelta int32  // matching-engine-sending timestamp, ns before TsRecv
	Sequence  uint32 // message sequence number assigned at the venue
}

// MboMsgSize is the fixed wire size of MboMsg.
const MboMsgSize = RHeaderSize + 40

func (r *MboMsg) Header() *RHeader { return &r.Hd }
func (*MboMsg) RType() RType       { return RType_Mbo }
func (*MboMsg) RSize() int         { return MboMsgSize }

func (r *MboMsg) FillRaw(b []byte) error {
	if len(b) < MboMsgSize {
		return unexpectedBytesError(len(b), MboMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.OrderID = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Flags = body[20]
	r.ChannelID = body[21]
	r.Action = body[22]
	r.Side = body[23]
	r.TsRecv = binary.LittleEndian.Uint64(body[24:32])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[32:36]))
	r.Sequence = binary.LittleEndian.Uint32(body[36:40])
	return nil
}

func (r *MboMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], r.OrderID)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Flags
	body[21] = r.ChannelID
	body[22] = r.Action
	body[23] = r.Side
	binary.LittleEndian.PutUint64(body[24:32], r.TsRecv)
	binary.LittleEndian.PutUint32(body[32:36], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[36:40], r.Sequence)
}
