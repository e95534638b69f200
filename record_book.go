package dbn

import "encoding/binary"

// Mbp1Msg is a market-by-price record with a book depth of 1 (also used for
// the Tbbo schema): a trade event plus the top of book immediately before
// the trade's effect.
type Mbp1Msg struct {
	Hd        RHeader
	TsRecv    uint64
	Price     int64
	Size      uint32
	Action    uint8
	Side      uint8
	Flags     uint8
	Depth     uint8
	TsInDelta int32
	Sequence  uint32
	Level     BidAskPair
}

// Mbp1MsgSize is the fixed wire size of Mbp1Msg.
const Mbp1MsgSize = RHeaderSize + 32 + BidAskPairSize

func (r *Mbp1Msg) Header() *RHeader { return &r.Hd }
func (*Mbp1Msg) RType() RType       { return RType_Mbp1 }
func (*Mbp1Msg) RSize() int         { return Mbp1MsgSize }

func (r *Mbp1Msg) FillRaw(b []byte) error {
	if len(b) < Mbp1MsgSize {
		return unexpectedBytesError(len(b), Mbp1MsgSize)
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
	fillBidAskPairRaw(body[32:32+BidAskPairSize], &r.Level)
	return nil
}

func (r *Mbp1Msg) WriteRaw(b []byte) {
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
	writeBidAskPairRaw(body[32:32+BidAskPairSize], &r.Level)
}

///////////////////////////////////////////////////////////////////////////////

// Mbp10Msg is a market-by-price record with a book depth of 10.
type Mbp10Msg struct {
	Hd        RHeader
	TsRecv    uint64
	Price     int64
	Size      uint32
	Action    uint8
	Side      uint8
	Flags     uint8
	Depth     uint8
	TsInDelta int32
	Sequence  uint32
	Levels    [10]BidAskPair
}

// Mbp10MsgSize is the fixed wire size of Mbp10Msg.
const Mbp10MsgSize = RHeaderSize + 32 + 10*BidAskPairSize

func (r *Mbp10Msg) Header() *RHeader { return &r.Hd }
func (*Mbp10Msg) RType() RType       { return RType_Mbp10 }
func (*Mbp10Msg) RSize() int         { return Mbp10MsgSize }

func (r *Mbp10Msg) FillRaw(b []byte) error {
	if len(b) < Mbp10MsgSize {
		return unexpectedBytesError(len(b), Mbp10MsgSize)
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
	for i := 0; i < 10; i++ {
		off := 32 + i*BidAskPairSize
		fillBidAskPairRaw(body[off:off+BidAskPairSize], &r.Levels[i])
	}
	return nil
}

func (r *Mbp10Msg) WriteRaw(b []byte) {
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
	for i := 0; i < 10; i++ {
		off := 32 + i*BidAskPairSize
		writeBidAskPairRaw(body[off:off+BidAskPairSize], &r.Levels[i])
	}
}

///////////////////////////////////////////////////////////////////////////////

// Cmbp1Msg is a consolidated market-by-price record with a book depth of 1,
// aggregating the best quotes across the venues of a publisher group.
type Cmbp1Msg struct {
	Hd        RHeader
	TsRecv    uint64
	Price     int64
	Size      uint32
	Action    uint8
	Side      uint8
	Flags     uint8
	Reserved  uint8
	TsInDelta int32
	Level     ConsolidatedBidAskPair
}

// Cmbp1MsgSize is the fixed wire size of Cmbp1Msg.
const Cmbp1MsgSize = RHeaderSize + 28 + ConsolidatedBidAskPairSize

func (r *Cmbp1Msg) Header() *RHeader { return &r.Hd }
func (*Cmbp1Msg) RType() RType       { return RType_Cmbp1 }
func (*Cmbp1Msg) RSize() int         { return Cmbp1MsgSize }

func (r *Cmbp1Msg) FillRaw(b []byte) error {
	if len(b) < Cmbp1MsgSize {
		return unexpectedBytesError(len(b), Cmbp1MsgSize)
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
	r.Reserved = body[23]
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[24:28]))
	fillConsolidatedBidAskPairRaw(body[28:28+ConsolidatedBidAskPairSize], &r.Level)
	return nil
}

func (r *Cmbp1Msg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Action
	body[21] = r.Side
	body[22] = r.Flags
	body[23] = r.Reserved
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.TsInDelta))
	writeConsolidatedBidAskPairRaw(body[28:28+ConsolidatedBidAskPairSize], &r.Level)
}

///////////////////////////////////////////////////////////////////////////////

// BboMsg is a best-bid-and-offer record sampled at a fixed cadence
// (BBO-1s/BBO-1m), carrying the top of book as of that sample.
type BboMsg struct {
	Hd       RHeader
	TsRecv   uint64
	Price    int64
	Size     uint32
	Side     uint8
	Flags    uint8
	Sequence uint32
	Level    BidAskPair
}

// BboMsgSize is the fixed wire size of BboMsg.
const BboMsgSize = RHeaderSize + 24 + BidAskPairSize

func (r *BboMsg) Header() *RHeader { return &r.Hd }
func (*BboMsg) RType() RType       { return RType_Bbo1S }
func (*BboMsg) RSize() int         { return BboMsgSize }

func (r *BboMsg) FillRaw(b []byte) error {
	if len(b) < BboMsgSize {
		return unexpectedBytesError(len(b), BboMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Side = body[20]
	r.Flags = body[21]
	// body[22:24] reserved for alignment
	r.Sequence = binary.LittleEndian.Uint32(body[24:28])
	fillBidAskPairRaw(body[28:28+BidAskPairSize], &r.Level)
	return nil
}

func (r *BboMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Side
	body[21] = r.Flags
	body[22] = 0
	body[23] = 0
	binary.LittleEndian.PutUint32(body[24:28], r.Sequence)
	writeBidAskPairRaw(body[28:28+BidAskPairSize], &r.Level)
}

///////////////////////////////////////////////////////////////////////////////

// CbboMsg is the consolidated analogue of BboMsg: best bid and offer
// aggregated across a publisher group's venues, also used for the CBBO-1s,
// CBBO-1m, and TCBBO schemas.
type CbboMsg struct {
	Hd       RHeader
	TsRecv   uint64
	Price    int64
	Size     uint32
	Side     uint8
	Flags    uint8
	Sequence uint32
	Level    ConsolidatedBidAskPair
}

// CbboMsgSize is the fixed wire size of CbboMsg.
const CbboMsgSize = RHeaderSize + 24 + ConsolidatedBidAskPairSize

func (r *CbboMsg) Header() *RHeader { return &r.Hd }
func (*CbboMsg) RType() RType       { return RType_Cbbo1S }
func (*CbboMsg) RSize() int         { return CbboMsgSize }

func (r *CbboMsg) FillRaw(b []byte) error {
	if len(b) < CbboMsgSize {
		return unexpectedBytesError(len(b), CbboMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Side = body[20]
	r.Flags = body[21]
	r.Sequence = binary.LittleEndian.Uint32(body[24:28])
	fillConsolidatedBidAskPairRaw(body[28:28+ConsolidatedBidAskPairSize], &r.Level)
	return nil
}

func (r *CbboMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Side
	body[21] = r.Flags
	body[22] = 0
	body[23] = 0
	binary.LittleEndian.PutUint32(body[24:28], r.Sequence)
	writeConsolidatedBidAskPairRaw(body[28:28+ConsolidatedBidAskPairSize], &r.Level)
}
