package dbn

import "encoding/binary"

// StatMsg is a summary statistic published by the venue (not calculated by
// Databento), e.g. open interest, settlement price, or a high/low limit.
type StatMsg struct {
	Hd           RHeader
	TsRecv       uint64 // capture-server-received timestamp, ns since UNIX epoch
	TsRef        uint64 // reference timestamp of the statistic value, ns since UNIX epoch
	Price        int64  // the statistic's value, scale 1e-9; UNDEF_PRICE if not applicable
	Quantity     int32  // the statistic's value, when the statistic is a quantity
	Sequence     uint32 // message sequence number assigned at the venue
	TsInDelta    int32  // matching-engine-sending timestamp, ns before TsRecv
	StatType     uint16 // the type of statistic, see StatType_*
	ChannelID    uint16 // the channel ID assigned by Databento
	UpdateAction uint8  // whether this is a new, delete, or update, see StatUpdateAction_*
	StatFlags    uint8  // additional flags associated with the statistic
}

// StatMsgSize is the fixed wire size of StatMsg.
const StatMsgSize = RHeaderSize + 44

func (r *StatMsg) Header() *RHeader { return &r.Hd }
func (*StatMsg) RType() RType       { return RType_Statistics }
func (*StatMsg) RSize() int         { return StatMsgSize }

func (r *StatMsg) FillRaw(b []byte) error {
	if len(b) < StatMsgSize {
		return unexpectedBytesError(len(b), StatMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.TsRef = binary.LittleEndian.Uint64(body[8:16])
	r.Price = int64(binary.LittleEndian.Uint64(body[16:24]))
	r.Quantity = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.Sequence = binary.LittleEndian.Uint32(body[28:32])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[32:36]))
	r.StatType = binary.LittleEndian.Uint16(body[36:38])
	r.ChannelID = binary.LittleEndian.Uint16(body[38:40])
	r.UpdateAction = body[40]
	r.StatFlags = body[41]
	return nil
}

func (r *StatMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], r.TsRef)
	binary.LittleEndian.PutUint64(body[16:24], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.Quantity))
	binary.LittleEndian.PutUint32(body[28:32], r.Sequence)
	binary.LittleEndian.PutUint32(body[32:36], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint16(body[36:38], r.StatType)
	binary.LittleEndian.PutUint16(body[38:40], r.ChannelID)
	body[40] = r.UpdateAction
	body[41] = r.StatFlags
	body[42] = 0
	body[43] = 0
}

///////////////////////////////////////////////////////////////////////////////

// ImbalanceMsg is an order imbalance record published ahead of an auction.
type ImbalanceMsg struct {
	Hd                   RHeader
	TsRecv               uint64 // capture-server-received timestamp, ns since UNIX epoch
	RefPrice             int64  // the reference price, scale 1e-9
	AuctionTime          uint64 // the auction time, ns since UNIX epoch
	ContBookClrPrice     int64  // the continuous book clearing price, scale 1e-9
	AuctInterestClrPrice int64  // the auction-interest-clearing price, scale 1e-9
	SsrFillingPrice      int64  // the short-sale restriction filling price, scale 1e-9
	IndMatchPrice        int64  // the indicative match price, scale 1e-9
	UpperCollar          int64  // the upper collar price, scale 1e-9
	LowerCollar          int64  // the lower collar price, scale 1e-9
	PairedQty            uint32 // the quantity paired at the indicative match price
	TotalImbalanceQty    uint32 // the total imbalance quantity
	MarketImbalanceQty   uint32 // the market (unpriced) imbalance quantity
	UnpairedQty          int32  // the unpaired quantity
	AuctionType          uint8  // the venue-specific character code for the auction type
	Side                 uint8  // the side with the imbalance, see Side_*
	AuctionStatus        uint8  // the venue-specific auction status code
	FreezeStatus         uint8  // the venue-specific freeze status code
	NumExtensions        uint8  // the number of extensions to the auction
	UnpairedSide         uint8  // the venue-specific unpaired side code
	SignificantImbalance uint8  // the venue-specific significant-imbalance code
}

// ImbalanceMsgSize is the fixed wire size of ImbalanceMsg.
const ImbalanceMsgSize = RHeaderSize + 96

func (r *ImbalanceMsg) Header() *RHeader { return &r.Hd }
func (*ImbalanceMsg) RType() RType       { return RType_Imbalance }
func (*ImbalanceMsg) RSize() int         { return ImbalanceMsgSize }

func (r *ImbalanceMsg) FillRaw(b []byte) error {
	if len(b) < ImbalanceMsgSize {
		return unexpectedBytesError(len(b), ImbalanceMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.RefPrice = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.AuctionTime = binary.LittleEndian.Uint64(body[16:24])
	r.ContBookClrPrice = int64(binary.LittleEndian.Uint64(body[24:32]))
	r.AuctInterestClrPrice = int64(binary.LittleEndian.Uint64(body[32:40]))
	r.SsrFillingPrice = int64(binary.LittleEndian.Uint64(body[40:48]))
	r.IndMatchPrice = int64(binary.LittleEndian.Uint64(body[48:56]))
	r.UpperCollar = int64(binary.LittleEndian.Uint64(body[56:64]))
	r.LowerCollar = int64(binary.LittleEndian.Uint64(body[64:72]))
	r.PairedQty = binary.LittleEndian.Uint32(body[72:76])
	r.TotalImbalanceQty = binary.LittleEndian.Uint32(body[76:80])
	r.MarketImbalanceQty = binary.LittleEndian.Uint32(body[80:84])
	r.UnpairedQty = int32(binary.LittleEndian.Uint32(body[84:88]))
	r.AuctionType = body[88]
	r.Side = body[89]
	r.AuctionStatus = body[90]
	r.FreezeStatus = body[91]
	r.NumExtensions = body[92]
	r.UnpairedSide = body[93]
	r.SignificantImbalance = body[94]
	return nil
}

func (r *ImbalanceMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.RefPrice))
	binary.LittleEndian.PutUint64(body[16:24], r.AuctionTime)
	binary.LittleEndian.PutUint64(body[24:32], uint64(r.ContBookClrPrice))
	binary.LittleEndian.PutUint64(body[32:40], uint64(r.AuctInterestClrPrice))
	binary.LittleEndian.PutUint64(body[40:48], uint64(r.SsrFillingPrice))
	binary.LittleEndian.PutUint64(body[48:56], uint64(r.IndMatchPrice))
	binary.LittleEndian.PutUint64(body[56:64], uint64(r.UpperCollar))
	binary.LittleEndian.PutUint64(body[64:72], uint64(r.LowerCollar))
	binary.LittleEndian.PutUint32(body[72:76], r.PairedQty)
	binary.LittleEndian.PutUint32(body[76:80], r.TotalImbalanceQty)
	binary.LittleEndian.PutUint32(body[80:84], r.MarketImbalanceQty)
	binary.LittleEndian.PutUint32(body[84:88], uint32(r.UnpairedQty))
	body[88] = r.AuctionType
	body[89] = r.Side
	body[90] = r.AuctionStatus
	body[91] = r.FreezeStatus
	body[92] = r.NumExtensions
	body[93] = r.UnpairedSide
	body[94] = r.SignificantImbalance
	body[95] = 0
}

///////////////////////////////////////////////////////////////////////////////

// StatusMsg is an exchange status record describing the trading state of an
// instrument or venue.
type StatusMsg struct {
	Hd                    RHeader
	TsRecv                uint64 // capture-server-received timestamp, ns since UNIX epoch
	Action                uint16 // the status action, see StatusAction_*
	Reason                uint16 // the reason for the status change, see StatusReason_*
	TradingEvent          uint16 // further information about the status change, see TradingEvent_*
	IsTrading             uint8  // TriState_* for the "is trading" state
	IsQuoting             uint8  // TriState_* for the "is quoting" state
	IsShortSellRestricted uint8  // TriState_* for the "is short-sell restricted" state
}

// StatusMsgSize is the fixed wire size of StatusMsg.
const StatusMsgSize = RHeaderSize + 20

func (r *StatusMsg) Header() *RHeader { return &r.Hd }
func (*StatusMsg) RType() RType       { return RType_Status }
func (*StatusMsg) RSize() int         { return StatusMsgSize }

func (r *StatusMsg) FillRaw(b []byte) error {
	if len(b) < StatusMsgSize {
		return unexpectedBytesError(len(b), StatusMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Action = binary.LittleEndian.Uint16(body[8:10])
	r.Reason = binary.LittleEndian.Uint16(body[10:12])
	r.TradingEvent = binary.LittleEndian.Uint16(body[12:14])
	r.IsTrading = body[14]
	r.IsQuoting = body[15]
	r.IsShortSellRestricted = body[16]
	return nil
}

func (r *StatusMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint16(body[8:10], r.Action)
	binary.LittleEndian.PutUint16(body[10:12], r.Reason)
	binary.LittleEndian.PutUint16(body[12:14], r.TradingEvent)
	body[14] = r.IsTrading
	body[15] = r.IsQuoting
	body[16] = r.IsShortSellRestricted
	body[17] = 0
	body[18] = 0
	body[19] = 0
}
