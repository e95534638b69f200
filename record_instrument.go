package dbn

import "encoding/binary"

// InstrumentDefMsg is a definition record describing the static reference
// data for an instrument, e.g. tick size, symbol, and expiration.
//
// The v1/v2 wire layout and the v3 layout share a common prefix; v3 appends
// a handful of strategy/leg fields used for spread instruments. FillRaw
// dispatches on the decoded body size (see InstrumentDefMsgV2Size and
// InstrumentDefMsgV3Size) rather than on the DBN version alone, since a v3
// reader may still encounter v1/v2 archives.
type InstrumentDefMsg struct {
	Hd                      RHeader
	TsRecv                  uint64
	MinPriceIncrement       int64
	DisplayFactor           int64
	Expiration              uint64
	Activation              uint64
	HighLimitPrice          int64
	LowLimitPrice           int64
	MaxPriceVariation       int64
	TradingReferencePrice   int64
	UnitOfMeasureQty        int64
	MinPriceIncrementAmount int64
	PriceRatio              int64
	StrikePrice             int64
	InstAttribValue         int32
	UnderlyingID            uint32
	RawInstrumentID         uint32
	MarketDepthImplied      int32
	MarketDepth             int32
	MarketSegmentID         uint32
	MaxTradeVol             uint32
	MinLotSize              int32
	MinLotSizeBlock         int32
	MinLotSizeRoundLot      int32
	MinTradeVol             uint32
	ContractMultiplier      int32
	DecayQuantity           int32
	OriginalContractSize    int32
	TradingReferenceDate    uint16
	ApplID                  int16
	MaturityYear            uint16
	DecayStartDate          uint16
	ChannelID               uint16
	Currency                [4]byte
	SettlCurrency           [4]byte
	Secsubtype              [6]byte
	RawSymbol               [MetadataV2_SymbolCstrLen]byte
	Group                   [21]byte
	Exchange                [5]byte
	Asset                   [7]byte
	Cfi                     [7]byte
	SecurityType            [7]byte
	UnitOfMeasure           [31]byte
	Underlying              [21]byte
	StrikePriceCurrency     [4]byte
	InstrumentClass         uint8
	MatchAlgorithm          uint8
	MdSecurityTradingStatus uint8
	MainFraction            uint8
	PriceDisplayFormat      uint8
	SettlPriceType          uint8
	SubFraction             uint8
	UnderlyingProduct       uint8
	SecurityUpdateAction    uint8
	MaturityMonth           uint8
	MaturityDay             uint8
	MaturityWeek            uint8
	UserDefinedInstrument   UserDefinedInstrument
	ContractMultiplierUnit  int8
	FlowScheduleType        int8
	TickRule                uint8

	// v3-only strategy/leg fields; zero-valued when decoded from a v1/v2 body.
	// LegInstrumentClass and LegSide lie outside the 24-byte trailer FillRaw
	// reads and are always left zero.
	LegCount                 uint16
	LegIndex                 uint16
	LegInstrumentID          uint32
	LegRatioPriceNumerator   int32
	LegRatioPriceDenominator int32
	LegRatioQtyNumerator     int32
	LegRatioQtyDenominator   int32
	LegInstrumentClass       uint8
	LegSide                  uint8
}

// InstrumentDefMsgV2Size is the fixed wire size of a v1/v2 InstrumentDefMsg,
// header included (a 384-byte body).
const InstrumentDefMsgV2Size = RHeaderSize + 384

// InstrumentDefMsgV3Size is the fixed wire size of a v3 InstrumentDefMsg,
// header included, which appends the strategy/leg fields to the v2 layout.
const InstrumentDefMsgV3Size = InstrumentDefMsgV2Size + 24

func (r *InstrumentDefMsg) Header() *RHeader { return &r.Hd }
func (*InstrumentDefMsg) RType() RType       { return RType_InstrumentDef }
func (*InstrumentDefMsg) RSize() int         { return InstrumentDefMsgV2Size }

func (r *InstrumentDefMsg) FillRaw(b []byte) error {
	if len(b) < InstrumentDefMsgV2Size {
		return unexpectedBytesError(len(b), InstrumentDefMsgV2Size)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.MinPriceIncrement = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.DisplayFactor = int64(binary.LittleEndian.Uint64(body[16:24]))
	r.Expiration = binary.LittleEndian.Uint64(body[24:32])
	r.Activation = binary.LittleEndian.Uint64(body[32:40])
	r.HighLimitPrice = int64(binary.LittleEndian.Uint64(body[40:48]))
	r.LowLimitPrice = int64(binary.LittleEndian.Uint64(body[48:56]))
	r.MaxPriceVariation = int64(binary.LittleEndian.Uint64(body[56:64]))
	r.TradingReferencePrice = int64(binary.LittleEndian.Uint64(body[64:72]))
	r.UnitOfMeasureQty = int64(binary.LittleEndian.Uint64(body[72:80]))
	r.MinPriceIncrementAmount = int64(binary.LittleEndian.Uint64(body[80:88]))
	r.PriceRatio = int64(binary.LittleEndian.Uint64(body[88:96]))
	r.StrikePrice = int64(binary.LittleEndian.Uint64(body[96:104]))
	r.InstAttribValue = int32(binary.LittleEndian.Uint32(body[104:108]))
	r.UnderlyingID = binary.LittleEndian.Uint32(body[108:112])
	r.RawInstrumentID = binary.LittleEndian.Uint32(body[112:116])
	r.MarketDepthImplied = int32(binary.LittleEndian.Uint32(body[116:120]))
	r.MarketDepth = int32(binary.LittleEndian.Uint32(body[120:124]))
	r.MarketSegmentID = binary.LittleEndian.Uint32(body[124:128])
	r.MaxTradeVol = binary.LittleEndian.Uint32(body[128:132])
	r.MinLotSize = int32(binary.LittleEndian.Uint32(body[132:136]))
	r.MinLotSizeBlock = int32(binary.LittleEndian.Uint32(body[136:140]))
	r.MinLotSizeRoundLot = int32(binary.LittleEndian.Uint32(body[140:144]))
	r.MinTradeVol = binary.LittleEndian.Uint32(body[144:148])
	r.ContractMultiplier = int32(binary.LittleEndian.Uint32(body[148:152]))
	r.DecayQuantity = int32(binary.LittleEndian.Uint32(body[152:156]))
	r.OriginalContractSize = int32(binary.LittleEndian.Uint32(body[156:160]))
	r.TradingReferenceDate = binary.LittleEndian.Uint16(body[160:162])
	r.ApplID = int16(binary.LittleEndian.Uint16(body[162:164]))
	r.MaturityYear = binary.LittleEndian.Uint16(body[164:166])
	r.DecayStartDate = binary.LittleEndian.Uint16(body[166:168])
	r.ChannelID = binary.LittleEndian.Uint16(body[168:170])

	off := 170
	off = copyFixed(body, off, r.Currency[:])
	off = copyFixed(body, off, r.SettlCurrency[:])
	off = copyFixed(body, off, r.Secsubtype[:])
	off = copyFixed(body, off, r.RawSymbol[:])
	off = copyFixed(body, off, r.Group[:])
	off = copyFixed(body, off, r.Exchange[:])
	off = copyFixed(body, off, r.Asset[:])
	off = copyFixed(body, off, r.Cfi[:])
	off = copyFixed(body, off, r.SecurityType[:])
	off = copyFixed(body, off, r.UnitOfMeasure[:])
	off = copyFixed(body, off, r.Underlying[:])
	off = copyFixed(body, off, r.StrikePriceCurrency[:])

	r.InstrumentClass = body[off]
	r.MatchAlgorithm = body[off+1]
	r.MdSecurityTradingStatus = body[off+2]
	r.MainFraction = body[off+3]
	r.PriceDisplayFormat = body[off+4]
	r.SettlPriceType = body[off+5]
	r.SubFraction = body[off+6]
	r.UnderlyingProduct = body[off+7]
	r.SecurityUpdateAction = body[off+8]
	r.MaturityMonth = body[off+9]
	r.MaturityDay = body[off+10]
	r.MaturityWeek = body[off+11]
	r.UserDefinedInstrument = UserDefinedInstrument(body[off+12])
	r.ContractMultiplierUnit = int8(body[off+13])
	r.FlowScheduleType = int8(body[off+14])
	r.TickRule = body[off+15]

	if len(b) >= InstrumentDefMsgV3Size {
		leg := b[InstrumentDefMsgV2Size:]
		r.LegCount = binary.LittleEndian.Uint16(leg[0:2])
		r.LegIndex = binary.LittleEndian.Uint16(leg[2:4])
		r.LegInstrumentID = binary.LittleEndian.Uint32(leg[4:8])
		r.LegRatioPriceNumerator = int32(binary.LittleEndian.Uint32(leg[8:12]))
		r.LegRatioPriceDenominator = int32(binary.LittleEndian.Uint32(leg[12:16]))
		r.LegRatioQtyNumerator = int32(binary.LittleEndian.Uint32(leg[16:20]))
		r.LegRatioQtyDenominator = int32(binary.LittleEndian.Uint32(leg[20:24]))
	}
	return nil
}

func copyFixed(body []byte, off int, dst []byte) int {
	copy(dst, body[off:off+len(dst)])
	return off + len(dst)
}

// WriteRaw encodes the v2 layout; v3's leg fields are not emitted since the
// writer only ever produces the canonical v2 definition record.
func (r *InstrumentDefMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.MinPriceIncrement))
	binary.LittleEndian.PutUint64(body[16:24], uint64(r.DisplayFactor))
	binary.LittleEndian.PutUint64(body[24:32], r.Expiration)
	binary.LittleEndian.PutUint64(body[32:40], r.Activation)
	binary.LittleEndian.PutUint64(body[40:48], uint64(r.HighLimitPrice))
	binary.LittleEndian.PutUint64(body[48:56], uint64(r.LowLimitPrice))
	binary.LittleEndian.PutUint64(body[56:64], uint64(r.MaxPriceVariation))
	binary.LittleEndian.PutUint64(body[64:72], uint64(r.TradingReferencePrice))
	binary.LittleEndian.PutUint64(body[72:80], uint64(r.UnitOfMeasureQty))
	binary.LittleEndian.PutUint64(body[80:88], uint64(r.MinPriceIncrementAmount))
	binary.LittleEndian.PutUint64(body[88:96], uint64(r.PriceRatio))
	binary.LittleEndian.PutUint64(body[96:104], uint64(r.StrikePrice))
	binary.LittleEndian.PutUint32(body[104:108], uint32(r.InstAttribValue))
	binary.LittleEndian.PutUint32(body[108:112], r.UnderlyingID)
	binary.LittleEndian.PutUint32(body[112:116], r.RawInstrumentID)
	binary.LittleEndian.PutUint32(body[116:120], uint32(r.MarketDepthImplied))
	binary.LittleEndian.PutUint32(body[120:124], uint32(r.MarketDepth))
	binary.LittleEndian.PutUint32(body[124:128], r.MarketSegmentID)
	binary.LittleEndian.PutUint32(body[128:132], r.MaxTradeVol)
	binary.LittleEndian.PutUint32(body[132:136], uint32(r.MinLotSize))
	binary.LittleEndian.PutUint32(body[136:140], uint32(r.MinLotSizeBlock))
	binary.LittleEndian.PutUint32(body[140:144], uint32(r.MinLotSizeRoundLot))
	binary.LittleEndian.PutUint32(body[144:148], r.MinTradeVol)
	binary.LittleEndian.PutUint32(body[148:152], uint32(r.ContractMultiplier))
	binary.LittleEndian.PutUint32(body[152:156], uint32(r.DecayQuantity))
	binary.LittleEndian.PutUint32(body[156:160], uint32(r.OriginalContractSize))
	binary.LittleEndian.PutUint16(body[160:162], r.TradingReferenceDate)
	binary.LittleEndian.PutUint16(body[162:164], uint16(r.ApplID))
	binary.LittleEndian.PutUint16(body[164:166], r.MaturityYear)
	binary.LittleEndian.PutUint16(body[166:168], r.DecayStartDate)
	binary.LittleEndian.PutUint16(body[168:170], r.ChannelID)

	off := 170
	off = writeFixed(body, off, r.Currency[:])
	off = writeFixed(body, off, r.SettlCurrency[:])
	off = writeFixed(body, off, r.Secsubtype[:])
	off = writeFixed(body, off, r.RawSymbol[:])
	off = writeFixed(body, off, r.Group[:])
	off = writeFixed(body, off, r.Exchange[:])
	off = writeFixed(body, off, r.Asset[:])
	off = writeFixed(body, off, r.Cfi[:])
	off = writeFixed(body, off, r.SecurityType[:])
	off = writeFixed(body, off, r.UnitOfMeasure[:])
	off = writeFixed(body, off, r.Underlying[:])
	off = writeFixed(body, off, r.StrikePriceCurrency[:])

	body[off] = r.InstrumentClass
	body[off+1] = r.MatchAlgorithm
	body[off+2] = r.MdSecurityTradingStatus
	body[off+3] = r.MainFraction
	body[off+4] = r.PriceDisplayFormat
	body[off+5] = r.SettlPriceType
	body[off+6] = r.SubFraction
	body[off+7] = r.UnderlyingProduct
	body[off+8] = r.SecurityUpdateAction
	body[off+9] = r.MaturityMonth
	body[off+10] = r.MaturityDay
	body[off+11] = r.MaturityWeek
	body[off+12] = byte(r.UserDefinedInstrument)
	body[off+13] = byte(r.ContractMultiplierUnit)
	body[off+14] = byte(r.FlowScheduleType)
	body[off+15] = r.TickRule
	for i := off + 16; i < 384; i++ {
		body[i] = 0
	}
}

func writeFixed(body []byte, off int, src []byte) int {
	copy(body[off:off+len(src)], src)
	return off + len(src)
}
