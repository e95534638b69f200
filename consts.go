// Adapted from Databento's DBN:
//   https://github.com/databento/dbn/blob/main/rust/dbn/src/enums.rs
//

package dbn

// Side of a market event.
type Side uint8

const (
	// A sell order or sell aggressor in a trade.
	Side_Ask Side = 'A'
	// A buy order or a buy aggressor in a trade.
	Side_Bid Side = 'B'
	// No side specified by the original source.
	Side_None Side = 'N'
)

// Action of an MBO or MBP event.
type Action uint8

const (
	// An existing order was modified.
	Action_Modify Action = 'M'
	// A trade executed.
	Action_Trade Action = 'T'
	// An existing order was filled.
	Action_Fill Action = 'F'
	// An order was cancelled.
	Action_Cancel Action = 'C'
	// A new order was added.
	Action_Add Action = 'A'
	// Reset the book; clear all orders for an instrument.
	Action_Clear Action = 'R'
)

// InstrumentClass of an instrument.
type InstrumentClass uint8

const (
	// A bond.
	InstrumentClass_Bond InstrumentClass = 'B'
	// A call option.
	InstrumentClass_Call InstrumentClass = 'C'
	// A future.
	InstrumentClass_Future InstrumentClass = 'F'
	// A stock.
	InstrumentClass_Stock InstrumentClass = 'K'
	// A spread composed of multiple instrument classes.
	InstrumentClass_MixedSpread InstrumentClass = 'M'
	// A put option.
	InstrumentClass_Put InstrumentClass = 'P'
	// A spread composed of futures.
	InstrumentClass_FutureSpread InstrumentClass = 'S'
	// A spread composed of options.
	InstrumentClass_OptionSpread InstrumentClass = 'T'
	// A foreign exchange spot.
	InstrumentClass_FxSpot InstrumentClass = 'X'
)

// MatchAlgorithm used by the venue to match orders.
type MatchAlgorithm uint8

const (
	// First-in-first-out matching.
	MatchAlgorithm_Fifo MatchAlgorithm = 'F'
	// A configurable match algorithm.
	MatchAlgorithm_Configurable MatchAlgorithm = 'K'
	// Trade quantity is allocated to resting orders based on a pro-rata percentage.
	MatchAlgorithm_ProRata MatchAlgorithm = 'C'
	// Like Fifo but with LMM allocations prior to FIFO allocations.
	MatchAlgorithm_FifoLmm MatchAlgorithm = 'T'
	// Like ProRata but includes a configurable allocation to the first order that improves the market.
	MatchAlgorithm_ThresholdProRata MatchAlgorithm = 'O'
	// Like FifoLmm but includes a configurable allocation to the first order that improves the market.
	MatchAlgorithm_FifoTopLmm MatchAlgorithm = 'S'
	// Like ThresholdProRata but includes a special priority to LMMs.
	MatchAlgorithm_ThresholdProRataLmm MatchAlgorithm = 'Q'
	// Special variant used only for Eurodollar futures on CME.
	MatchAlgorithm_EurodollarFutures MatchAlgorithm = 'Y'
)

// UserDefinedInstrument flag.
type UserDefinedInstrument uint8

const (
	// The instrument is not user-defined.
	UserDefinedInstrument_No UserDefinedInstrument = 'N'
	// The instrument is user-defined.
	UserDefinedInstrument_Yes UserDefinedInstrument = 'Y'
)

// SType is a symbology type.
type SType uint8

const (
	// Symbology using a unique numeric ID.
	SType_InstrumentId SType = 0
	// Symbology using the original symbols provided by the publisher.
	SType_RawSymbol SType = 1
	// Deprecated: a set of Databento-specific symbologies for referring to groups of symbols.
	SType_Smart SType = 2
	// A Databento-specific symbology where one symbol may point to different
	// instruments at different points in time, e.g. to always refer to the
	// front month future.
	SType_Continuous SType = 3
	// A Databento-specific symbology for referring to a group of symbols by
	// one "parent" symbol, e.g. ES.FUT to refer to all ES futures.
	SType_Parent SType = 4
	// Symbology for US equities using NASDAQ Integrated suffix conventions.
	SType_Nasdaq SType = 5
	// Symbology for US equities using CMS suffix conventions.
	SType_Cms SType = 6
)

// RType tags the layout of a record.
type RType uint8

const (
	// Market-by-price with a book depth of 0 (the Trades schema).
	RType_Mbp0 RType = 0x00
	// Market-by-price with a book depth of 1 (also used for Tbbo).
	RType_Mbp1 RType = 0x01
	// Consolidated market-by-price with a book depth of 1.
	RType_Cmbp1 RType = 0xB1
	// Consolidated best bid and offer at a 1-second cadence.
	RType_Cbbo1S RType = 0xC2
	// Consolidated best bid and offer at a 1-minute cadence.
	RType_Cbbo1M RType = 0xC6
	// Consolidated best bid and offer, generic/mixed cadence.
	RType_Cbbo RType = 0xC1
	// Every consolidated trade event with the consolidated BBO immediately
	// before the effect of the trade.
	RType_Tcbbo RType = 0xC0
	// Best bid and offer at a 1-second cadence.
	RType_Bbo1S RType = 0xC3
	// Best bid and offer at a 1-minute cadence.
	RType_Bbo1M RType = 0xC4
	// Market-by-price with a book depth of 10.
	RType_Mbp10 RType = 0x0A
	// Deprecated in 0.4.0. An open, high, low, close, and volume record at an
	// unspecified cadence.
	RType_OhlcvDeprecated RType = 0x11
	// Open, high, low, close, and volume at a 1-second cadence.
	RType_Ohlcv1S RType = 0x20
	// Open, high, low, close, and volume at a 1-minute cadence.
	RType_Ohlcv1M RType = 0x21
	// Open, high, low, close, and volume at an hourly cadence.
	RType_Ohlcv1H RType = 0x22
	// Open, high, low, close, and volume at a daily cadence based on the UTC date.
	RType_Ohlcv1D RType = 0x23
	// Open, high, low, close, and volume at a daily cadence based on the end of the trading session.
	RType_OhlcvEod RType = 0x24
	// An exchange status record.
	RType_Status RType = 0x12
	// An instrument definition record.
	RType_InstrumentDef RType = 0x13
	// An order imbalance record.
	RType_Imbalance RType = 0x14
	// An error from the gateway.
	RType_Error RType = 0x15
	// A symbol mapping record.
	RType_SymbolMapping RType = 0x16
	// A non-error message from the gateway. Also used for heartbeats.
	RType_System RType = 0x17
	// A statistics record from the publisher (not calculated by Databento).
	RType_Statistics RType = 0x18
	// A market-by-order record.
	RType_Mbo RType = 0xA0
	// Golang-only: unknown or unrecognized record type.
	RType_Unknown RType = 0xFF
)

// IsCandle reports whether the RType denotes one of the OHLCV cadences.
func (rtype RType) IsCandle() bool {
	switch rtype {
	case RType_Ohlcv1S, RType_Ohlcv1M, RType_Ohlcv1H, RType_Ohlcv1D, RType_OhlcvEod, RType_OhlcvDeprecated:
		return true
	default:
		return false
	}
}

// IsConsolidatedBbo reports whether the RType denotes a consolidated BBO variant.
func (rtype RType) IsConsolidatedBbo() bool {
	switch rtype {
	case RType_Cmbp1, RType_Cbbo, RType_Cbbo1S, RType_Cbbo1M, RType_Tcbbo:
		return true
	default:
		return false
	}
}

// IsBbo reports whether the RType denotes a plain (non-consolidated) BBO variant.
func (rtype RType) IsBbo() bool {
	switch rtype {
	case RType_Bbo1S, RType_Bbo1M:
		return true
	default:
		return false
	}
}

// IsCompatibleWith reports whether a decoded tag is an acceptable stand-in
// for the tag a typed reader asked for: exact match, or both candle cadences.
func (rtype RType) IsCompatibleWith(want RType) bool {
	if rtype == want {
		return true
	}
	return rtype.IsCandle() && want.IsCandle()
}

// Schema names a record layout's data schema.
type Schema uint16

const (
	// u16::MAX indicates a potential mix of schemas and record types, which
	// will always be the case for live data.
	Schema_Mixed Schema = 0xFFFF
	// Market by order.
	Schema_Mbo Schema = 0
	// Market by price with a book depth of 1.
	Schema_Mbp1 Schema = 1
	// Market by price with a book depth of 10.
	Schema_Mbp10 Schema = 2
	// All trade events with the BBO immediately before the effect of the trade.
	Schema_Tbbo Schema = 3
	// All trade events.
	Schema_Trades Schema = 4
	// Open, high, low, close, and volume at a one-second interval.
	Schema_Ohlcv1S Schema = 5
	// Open, high, low, close, and volume at a one-minute interval.
	Schema_Ohlcv1M Schema = 6
	// Open, high, low, close, and volume at an hourly interval.
	Schema_Ohlcv1H Schema = 7
	// Open, high, low, close, and volume at a daily interval based on the UTC date.
	Schema_Ohlcv1D Schema = 8
	// Instrument definitions.
	Schema_Definition Schema = 9
	// Additional data disseminated by publishers.
	Schema_Statistics Schema = 10
	// Trading status events.
	Schema_Status Schema = 11
	// Auction imbalance events.
	Schema_Imbalance Schema = 12
	// Open, high, low, close, and volume at a daily cadence based on the end of the trading session.
	Schema_OhlcvEod Schema = 13
	// Consolidated best bid and offer subsampled at a one-second interval.
	Schema_Cbbo1S Schema = 14
	// Consolidated best bid and offer subsampled at a one-minute interval.
	Schema_Cbbo1M Schema = 15
	// All consolidated trade events with the consolidated BBO immediately before the effect of the trade.
	Schema_Tcbbo Schema = 16
	// Best bid and offer subsampled at a one-second interval.
	Schema_Bbo1S Schema = 17
	// Best bid and offer subsampled at a one-minute interval.
	Schema_Bbo1M Schema = 18
)

// Encoding is a data encoding format.
type Encoding uint8

const (
	// Databento Binary Encoding.
	Encoding_Dbn Encoding = 0
	// Comma-separated values.
	Encoding_Csv Encoding = 1
	// JavaScript object notation.
	Encoding_Json Encoding = 2
)

// Compression format, or none if uncompressed.
type Compression uint8

const (
	// Uncompressed.
	Compression_None Compression = 0
	// Zstandard compressed.
	Compression_ZStd Compression = 1
)

// RFlag constants for the bit flag record fields.
const (
	// Indicates it's the last message in the packet from the venue for a
	// given instrument_id.
	RFlag_LAST uint8 = 1 << 7
	// Indicates a top-of-book message, not an individual order.
	RFlag_TOB uint8 = 1 << 6
	// Indicates the message was sourced from a replay, such as a snapshot server.
	RFlag_SNAPSHOT uint8 = 1 << 5
	// Indicates an aggregated price level message, not an individual order.
	RFlag_MBP uint8 = 1 << 4
	// Indicates the ts_recv value is inaccurate due to clock issues or packet reordering.
	RFlag_BAD_TS_RECV uint8 = 1 << 3
	// Indicates an unrecoverable gap was detected in the channel.
	RFlag_MAYBE_BAD_BOOK uint8 = 1 << 2
)

// SecurityUpdateAction is the type of InstrumentDefMsg update.
type SecurityUpdateAction uint8

const (
	// A new instrument definition.
	SecurityUpdateAction_Add SecurityUpdateAction = 'A'
	// A modified instrument definition of an existing one.
	SecurityUpdateAction_Modify SecurityUpdateAction = 'M'
	// Removal of an instrument definition.
	SecurityUpdateAction_Delete SecurityUpdateAction = 'D'
	// Deprecated: still present in legacy files.
	SecurityUpdateAction_Invalid SecurityUpdateAction = '~'
)

// StatType is the type of statistic contained in a StatMsg.
type StatType uint16

const (
	// The price of the first trade of an instrument. `Price` will be set.
	StatType_OpeningPrice StatType = 1
	// The probable price of the first trade, published during pre-open.
	// Both `Price` and `Quantity` will be set.
	StatType_IndicativeOpeningPrice StatType = 2
	// The settlement price of an instrument. `Price` will be set and
	// `StatFlags` indicates whether the price is final/preliminary,
	// actual/theoretical. `TsRef` indicates the trading date.
	StatType_SettlementPrice StatType = 3
	// The lowest trade price of an instrument during the trading session.
	StatType_TradingSessionLowPrice StatType = 4
	// The highest trade price of an instrument during the trading session.
	StatType_TradingSessionHighPrice StatType = 5
	// The number of contracts cleared for an instrument on the previous trading date.
	StatType_ClearedVolume StatType = 6
	// The lowest offer price for an instrument during the trading session.
	StatType_LowestOffer StatType = 7
	// The highest bid price for an instrument during the trading session.
	StatType_HighestBid StatType = 8
	// The current number of outstanding contracts of an instrument.
	StatType_OpenInterest StatType = 9
	// The volume-weighted average price (VWAP) for a fixing period.
	StatType_FixingPrice StatType = 10
	// The last trade price during a trading session.
	StatType_ClosePrice StatType = 11
	// The change in price from the close of the previous session.
	StatType_NetChange StatType = 12
	// The VWAP during the trading session.
	StatType_Vwap StatType = 13
)

// StatUpdateAction is the type of StatMsg update.
type StatUpdateAction uint8

const (
	// A new statistic.
	StatUpdateAction_New StatUpdateAction = 1
	// A removal of a statistic.
	StatUpdateAction_Delete StatUpdateAction = 2
)

// StatusAction is the primary enum for the type of StatusMsg update.
type StatusAction uint16

const (
	// No change.
	StatusAction_None StatusAction = 0
	// The instrument is in a pre-open period.
	StatusAction_PreOpen StatusAction = 1
	// The instrument is in a pre-cross period.
	StatusAction_PreCross StatusAction = 2
	// The instrument is quoting but not trading.
	StatusAction_Quoting StatusAction = 3
	// The instrument is in a cross/auction.
	StatusAction_Cross StatusAction = 4
	// The instrument is being opened through a trading rotation.
	StatusAction_Rotation StatusAction = 5
	// A new price indication is available for the instrument.
	StatusAction_NewPriceIndication StatusAction = 6
	// The instrument is trading.
	StatusAction_Trading StatusAction = 7
	// Trading in the instrument has been halted.
	StatusAction_Halt StatusAction = 8
	// Trading in the instrument has been paused.
	StatusAction_Pause StatusAction = 9
	// Trading in the instrument has been suspended.
	StatusAction_Suspend StatusAction = 10
	// The instrument is in a pre-close period.
	StatusAction_PreClose StatusAction = 11
	// Trading in the instrument has closed.
	StatusAction_Close StatusAction = 12
	// The instrument is in a post-close period.
	StatusAction_PostClose StatusAction = 13
	// A change in short-selling restrictions.
	StatusAction_SsrChange StatusAction = 14
	// The instrument is not available for trading, either closed or halted.
	StatusAction_NotAvailableForTrading StatusAction = 15
)

// StatusReason is the secondary enum for a StatusMsg update, explaining the
// cause of a halt or other change in Action.
type StatusReason uint16

const (
	// No reason is given.
	StatusReason_None StatusReason = 0
	// The change in status occurred as scheduled.
	StatusReason_Scheduled StatusReason = 1
	// The instrument stopped due to a market surveillance intervention.
	StatusReason_SurveillanceIntervention StatusReason = 2
	// The status changed due to activity in the market.
	StatusReason_MarketEvent StatusReason = 3
	// The derivative instrument began trading.
	StatusReason_InstrumentActivation StatusReason = 4
	// The derivative instrument expired.
	StatusReason_InstrumentExpiration StatusReason = 5
	// Recovery in progress.
	StatusReason_RecoveryInProcess StatusReason = 6
	// The status change was caused by a regulatory action.
	StatusReason_Regulatory StatusReason = 10
	// The status change was caused by an administrative action.
	StatusReason_Administrative StatusReason = 11
	// The status change was caused by the issuer not being in regulatory compliance.
	StatusReason_NonCompliance StatusReason = 12
	// Trading halted because the issuer's filings are not current.
	StatusReason_FilingsNotCurrent StatusReason = 13
	// Trading halted due to an SEC trading suspension.
	StatusReason_SecTradingSuspension StatusReason = 14
	// The status changed because a new issue is available.
	StatusReason_NewIssue StatusReason = 15
	// The status changed because an issue is available.
	StatusReason_IssueAvailable StatusReason = 16
	// The status changed because the issue was reviewed.
	StatusReason_IssuesReviewed StatusReason = 17
	// The status changed because the filing requirements were satisfied.
	StatusReason_FilingReqsSatisfied StatusReason = 18
	// Relevant news is pending.
	StatusReason_NewsPending StatusReason = 30
	// Relevant news was released.
	StatusReason_NewsReleased StatusReason = 31
	// The news has been fully disseminated and times are available for resumption.
	StatusReason_NewsAndResumptionTimes StatusReason = 32
	// The relevant news was not forthcoming.
	StatusReason_NewsNotForthcoming StatusReason = 33
	// Halted for order imbalance.
	StatusReason_OrderImbalance StatusReason = 40
	// The instrument hit limit up or limit down.
	StatusReason_LuldPause StatusReason = 50
	// An operational issue occurred with the venue.
	StatusReason_Operational StatusReason = 60
	// The status changed until the exchange receives additional information.
	StatusReason_AdditionalInformationRequested StatusReason = 70
	// Trading halted due to a merger becoming effective.
	StatusReason_MergerEffective StatusReason = 80
	// Trading is halted in an ETF due to conditions with the component securities.
	StatusReason_Etf StatusReason = 90
	// Trading is halted for a corporate action.
	StatusReason_CorporateAction StatusReason = 100
	// Trading is halted because the instrument is a new offering.
	StatusReason_NewSecurityOffering StatusReason = 110
	// Halted due to the market-wide circuit breaker level 1.
	StatusReason_MarketWideHaltLevel1 StatusReason = 120
	// Halted due to the market-wide circuit breaker level 2.
	StatusReason_MarketWideHaltLevel2 StatusReason = 121
	// Halted due to the market-wide circuit breaker level 3.
	StatusReason_MarketWideHaltLevel3 StatusReason = 122
	// Halted due to the carryover of a market-wide circuit breaker from the previous trading day.
	StatusReason_MarketWideHaltCarryover StatusReason = 123
	// Resumption due to the end of a market-wide circuit breaker halt.
	StatusReason_MarketWideHaltResumption StatusReason = 124
	// Halted because quotation is not available.
	StatusReason_QuotationNotAvailable StatusReason = 130
)

// TradingEvent carries further information about a status update.
type TradingEvent uint16

const (
	// No additional information given.
	TradingEvent_None TradingEvent = 0
	// Order entry and modification are not allowed.
	TradingEvent_NoCancel TradingEvent = 1
	// A change of trading session occurred. Daily statistics are reset.
	TradingEvent_ChangeTradingSession TradingEvent = 2
	// Implied matching is available.
	TradingEvent_ImpliedMatchingOn TradingEvent = 3
	// Implied matching is not available.
	TradingEvent_ImpliedMatchingOff TradingEvent = 4
)

// TriState represents an unknown, true, or false value. Equivalent to
// Option<bool> but with a human-readable representation.
type TriState uint8

const (
	// The value is not applicable or not known.
	TriState_NotAvailable TriState = '~'
	// False.
	TriState_No TriState = 'N'
	// True.
	TriState_Yes TriState = 'Y'
)

// VersionUpgradePolicy controls how to handle decoding DBN data from a prior version.
type VersionUpgradePolicy uint8

const (
	// Decode data from previous versions as-is.
	VersionUpgradePolicy_AsIs VersionUpgradePolicy = 0
	// Decode data from previous versions, converting it to the latest version.
	VersionUpgradePolicy_Upgrade VersionUpgradePolicy = 1
)
