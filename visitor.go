// Copyright (c) 2024 Neomantra Corp

package dbn

// Visitor receives decoded records from a Reader one at a time, in the
// order they appear on the wire. Implementations that only care about a
// subset of schemas can embed NullVisitor and override the methods they
// need.
type Visitor interface {
	OnMbp0(record *Mbp0Msg) error
	OnMbp1(record *Mbp1Msg) error
	OnMbp10(record *Mbp10Msg) error
	OnCmbp1(record *Cmbp1Msg) error
	OnMbo(record *MboMsg) error

	OnBbo(record *BboMsg) error
	OnCbbo(record *CbboMsg) error

	OnOhlcv(record *OhlcvMsg) error
	OnImbalance(record *ImbalanceMsg) error
	OnStatMsg(record *StatMsg) error
	OnStatusMsg(record *StatusMsg) error
	OnInstrumentDef(record *InstrumentDefMsg) error

	OnErrorMsg(record *ErrorMsg) error
	OnSystemMsg(record *SystemMsg) error
	OnSymbolMappingMsg(record *SymbolMappingMsg) error

	// OnSkipped is called for a record whose RType this codec doesn't
	// recognize. It is not an error; see SkippedRecord.
	OnSkipped(record *SkippedRecord) error

	OnStreamEnd() error
}
