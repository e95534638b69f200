// Copyright (c) 2025 Neomantra Corp

package dbn_test

import (
	dbn "github.com/dbncodec/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// roundTrip writes rec, re-decodes it, and returns the freshly decoded
// value so the caller can assert against its fields. It is the generic
// shape every record variant's test below follows: build a value with
// known fields, encode it, decode it back, and check nothing was lost.
func roundTrip[T any, RP interface {
	*T
	dbn.Record
	RSize() int
	FillRaw([]byte) error
	WriteRaw([]byte)
}](rec RP) *T {
	b := make([]byte, rec.RSize())
	rec.WriteRaw(b)
	var out T
	var op RP = &out
	ExpectWithOffset(1, op.FillRaw(b)).To(Succeed())
	return &out
}

var _ = Describe("Record variants", func() {
	Context("Mbp0Msg", func() {
		It("round trips", func() {
			in := &dbn.Mbp0Msg{
				Hd:        dbn.RHeader{Length: uint8(dbn.Mbp0MsgSize / 4), RType: dbn.RType_Mbp0, PublisherID: 1, InstrumentID: 5482, TsEvent: 123},
				TsRecv:    456,
				Price:     3720500000000,
				Size:      1,
				Action:    'T',
				Side:      'A',
				Flags:     128,
				Depth:     0,
				TsInDelta: 17214,
				Sequence:  1170362,
			}
			out := roundTrip[dbn.Mbp0Msg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("Mbp1Msg", func() {
		It("round trips with a bid/ask level", func() {
			in := &dbn.Mbp1Msg{
				Hd:        dbn.RHeader{Length: uint8(dbn.Mbp1MsgSize / 4), RType: dbn.RType_Mbp1, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400006001487},
				TsRecv:    1609160400006136329,
				Price:     3720500000000,
				Size:      1,
				Action:    'A',
				Side:      'A',
				Flags:     128,
				Depth:     0,
				TsInDelta: 17214,
				Sequence:  1170362,
				Level: dbn.BidAskPair{
					BidPx: 3720250000000, AskPx: 3720500000000,
					BidSz: 24, AskSz: 11, BidCt: 15, AskCt: 9,
				},
			}
			out := roundTrip[dbn.Mbp1Msg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("Mbp10Msg", func() {
		It("round trips all ten levels", func() {
			in := &dbn.Mbp10Msg{
				Hd:       dbn.RHeader{Length: uint8(dbn.Mbp10MsgSize / 4), RType: dbn.RType_Mbp10, InstrumentID: 5482},
				TsRecv:   1,
				Price:    2,
				Size:     3,
				Sequence: 4,
			}
			for i := range in.Levels {
				in.Levels[i] = dbn.BidAskPair{BidPx: int64(i), AskPx: int64(i + 1), BidSz: uint32(i), AskSz: uint32(i), BidCt: uint32(i), AskCt: uint32(i)}
			}
			out := roundTrip[dbn.Mbp10Msg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("Cmbp1Msg", func() {
		It("round trips a consolidated level", func() {
			in := &dbn.Cmbp1Msg{
				Hd:        dbn.RHeader{Length: uint8(dbn.Cmbp1MsgSize / 4), RType: dbn.RType_Cmbp1},
				TsRecv:    1,
				Price:     2,
				Size:      3,
				Action:    'A',
				Side:      'B',
				Flags:     0,
				Reserved:  0,
				TsInDelta: 5,
				Level: dbn.ConsolidatedBidAskPair{
					BidPx: 10, AskPx: 20, BidSz: 1, AskSz: 2, BidPb: 3, AskPb: 4,
				},
			}
			out := roundTrip[dbn.Cmbp1Msg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("MboMsg", func() {
		It("round trips", func() {
			in := &dbn.MboMsg{
				Hd:        dbn.RHeader{Length: uint8(dbn.MboMsgSize / 4), RType: dbn.RType_Mbo},
				OrderID:   1,
				Price:     2,
				Size:      3,
				Flags:     4,
				ChannelID: 5,
				Action:    'A',
				Side:      'B',
				TsRecv:    6,
				TsInDelta: 7,
				Sequence:  8,
			}
			out := roundTrip[dbn.MboMsg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("BboMsg", func() {
		It("round trips", func() {
			in := &dbn.BboMsg{
				Hd:       dbn.RHeader{Length: uint8(dbn.BboMsgSize / 4), RType: dbn.RType_Bbo1S},
				TsRecv:   1,
				Price:    2,
				Size:     3,
				Side:     'A',
				Flags:    0,
				Sequence: 4,
				Level:    dbn.BidAskPair{BidPx: 5, AskPx: 6, BidSz: 7, AskSz: 8, BidCt: 9, AskCt: 10},
			}
			out := roundTrip[dbn.BboMsg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("CbboMsg", func() {
		It("round trips", func() {
			in := &dbn.CbboMsg{
				Hd:       dbn.RHeader{Length: uint8(dbn.CbboMsgSize / 4), RType: dbn.RType_Cbbo1S},
				TsRecv:   1,
				Price:    2,
				Size:     3,
				Side:     'A',
				Sequence: 4,
				Level:    dbn.ConsolidatedBidAskPair{BidPx: 5, AskPx: 6, BidSz: 7, AskSz: 8, BidPb: 9, AskPb: 10},
			}
			out := roundTrip[dbn.CbboMsg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("OhlcvMsg", func() {
		It("round trips", func() {
			in := &dbn.OhlcvMsg{
				Hd:     dbn.RHeader{Length: uint8(dbn.OhlcvMsgSize / 4), RType: dbn.RType_Ohlcv1S},
				Open:   1, High: 2, Low: 3, Close: 4, Volume: 5,
			}
			out := roundTrip[dbn.OhlcvMsg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("StatMsg", func() {
		It("round trips", func() {
			in := &dbn.StatMsg{
				Hd:           dbn.RHeader{Length: uint8(dbn.StatMsgSize / 4), RType: dbn.RType_Statistics},
				TsRecv:       1,
				TsRef:        2,
				Price:        3,
				Quantity:     4,
				Sequence:     5,
				TsInDelta:    6,
				StatType:     7,
				ChannelID:    8,
				UpdateAction: 9,
				StatFlags:    10,
			}
			out := roundTrip[dbn.StatMsg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("ImbalanceMsg", func() {
		It("round trips every field, including the negative UnpairedQty case", func() {
			in := &dbn.ImbalanceMsg{
				Hd:                   dbn.RHeader{Length: uint8(dbn.ImbalanceMsgSize / 4), RType: dbn.RType_Imbalance},
				TsRecv:               1,
				RefPrice:             2,
				AuctionTime:          3,
				ContBookClrPrice:     4,
				AuctInterestClrPrice: 5,
				SsrFillingPrice:      6,
				IndMatchPrice:        7,
				UpperCollar:          8,
				LowerCollar:          9,
				PairedQty:            10,
				TotalImbalanceQty:    11,
				MarketImbalanceQty:   12,
				UnpairedQty:          -1,
				AuctionType:          'A',
				Side:                 'B',
				AuctionStatus:        1,
				FreezeStatus:         2,
				NumExtensions:        3,
				UnpairedSide:         'N',
				SignificantImbalance: 'L',
			}
			out := roundTrip[dbn.ImbalanceMsg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("StatusMsg", func() {
		It("round trips", func() {
			in := &dbn.StatusMsg{
				Hd:                    dbn.RHeader{Length: uint8(dbn.StatusMsgSize / 4), RType: dbn.RType_Status},
				TsRecv:                1,
				Action:                2,
				Reason:                3,
				TradingEvent:          4,
				IsTrading:             'Y',
				IsQuoting:             'Y',
				IsShortSellRestricted: 'N',
			}
			out := roundTrip[dbn.StatusMsg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("ErrorMsg", func() {
		It("round trips", func() {
			in := &dbn.ErrorMsg{
				Hd:     dbn.RHeader{Length: uint8(dbn.ErrorMsgSize / 4), RType: dbn.RType_Error},
				Err:    "boom",
				Code:   3,
				IsLast: 1,
			}
			out := roundTrip[dbn.ErrorMsg](in)
			Expect(*out).To(Equal(*in))
		})
	})

	Context("SystemMsg", func() {
		It("round trips and recognizes a heartbeat", func() {
			in := &dbn.SystemMsg{
				Hd:   dbn.RHeader{Length: uint8(dbn.SystemMsgSize / 4), RType: dbn.RType_System},
				Msg:  "Heartbeat",
				Code: 1,
			}
			out := roundTrip[dbn.SystemMsg](in)
			Expect(*out).To(Equal(*in))
			Expect(out.IsHeartbeat()).To(BeTrue())
		})
	})

	Context("SymbolMappingMsg", func() {
		It("round trips at the v2 symbol width", func() {
			in := &dbn.SymbolMappingMsg{
				Hd:             dbn.RHeader{Length: uint8(dbn.SymbolMappingMsgSize / 4), RType: dbn.RType_SymbolMapping},
				StypeIn:        uint8(dbn.SType_RawSymbol),
				StypeInSymbol:  "ESH1",
				StypeOut:       uint8(dbn.SType_InstrumentId),
				StypeOutSymbol: "5482",
				StartTs:        1,
				EndTs:          2,
			}
			b := make([]byte, in.RSize())
			in.WriteRaw(b)
			var out dbn.SymbolMappingMsg
			Expect(out.FillRawCstrLen(b, dbn.MetadataV2_SymbolCstrLen)).To(Succeed())
			Expect(out).To(Equal(*in))
		})
	})
})
