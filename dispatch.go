// Copyright (c) 2025 Neomantra Corp

package dbn

// decodeRecord decodes a single record body (header included, per the
// tag/body slicing the rest of the codec uses) into its concrete Msg
// type. An rtype this codec has no layout for is not an error: it yields
// a *SkippedRecord carrying the raw bytes, per the unknown-tag skip
// contract every Reader honors. version and symbolCstrLen come from the
// stream's Metadata: version is consulted only by ErrorMsg and SystemMsg,
// symbolCstrLen only by SymbolMappingMsg. InstrumentDefMsg forks on the
// record's own length instead.
//
// Grounded on dbn_scanner.go's Visit switch and json_scanner.go's
// dispatchJsonVisitor switch, generalized away from the visitor-callback
// shape into a plain decode-and-return function so Reader, TypedReader,
// and Visit-style consumers can all share it.
func decodeRecord(tag RType, raw []byte, version uint8, symbolCstrLen uint16) (Record, error) {
	switch tag {
	case RType_Mbp0:
		r := &Mbp0Msg{}
		return r, r.FillRaw(raw)
	case RType_Mbp1:
		r := &Mbp1Msg{}
		return r, r.FillRaw(raw)
	case RType_Mbp10:
		r := &Mbp10Msg{}
		return r, r.FillRaw(raw)
	case RType_Cmbp1:
		r := &Cmbp1Msg{}
		return r, r.FillRaw(raw)
	case RType_Mbo:
		r := &MboMsg{}
		return r, r.FillRaw(raw)

	case RType_Bbo1S, RType_Bbo1M:
		r := &BboMsg{}
		return r, r.FillRaw(raw)
	case RType_Cbbo, RType_Cbbo1S, RType_Cbbo1M, RType_Tcbbo:
		r := &CbboMsg{}
		return r, r.FillRaw(raw)

	case RType_Ohlcv1S, RType_Ohlcv1M, RType_Ohlcv1H, RType_Ohlcv1D, RType_OhlcvEod, RType_OhlcvDeprecated:
		r := &OhlcvMsg{}
		return r, r.FillRaw(raw)

	case RType_Status:
		r := &StatusMsg{}
		return r, r.FillRaw(raw)
	case RType_InstrumentDef:
		r := &InstrumentDefMsg{}
		return r, r.FillRaw(raw)
	case RType_Imbalance:
		r := &ImbalanceMsg{}
		return r, r.FillRaw(raw)
	case RType_Statistics:
		r := &StatMsg{}
		return r, r.FillRaw(raw)

	case RType_Error:
		r := &ErrorMsg{}
		return r, r.fillVersioned(raw, version)
	case RType_System:
		r := &SystemMsg{}
		return r, r.fillVersioned(raw, version)
	case RType_SymbolMapping:
		r := &SymbolMappingMsg{}
		return r, r.FillRawCstrLen(raw, symbolCstrLen)

	default:
		var hd RHeader
		if err := FillRHeaderRaw(raw[:RHeaderSize], &hd); err != nil {
			return nil, err
		}
		return &SkippedRecord{Hd: hd, Raw: raw}, nil
	}
}

