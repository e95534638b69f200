// Copyright (c) 2025 Neomantra Corp

package dbn_test

import (
	dbn "github.com/dbncodec/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InstrumentDefMsg", func() {
	sample := func() *dbn.InstrumentDefMsg {
		r := &dbn.InstrumentDefMsg{
			Hd:                      dbn.RHeader{RType: dbn.RType_InstrumentDef, InstrumentID: 5482},
			TsRecv:                  1,
			MinPriceIncrement:       2,
			DisplayFactor:           3,
			Expiration:              4,
			Activation:              5,
			HighLimitPrice:          6,
			LowLimitPrice:           7,
			UserDefinedInstrument:   dbn.UserDefinedInstrument_No,
			ContractMultiplierUnit:  1,
			FlowScheduleType:        2,
			TickRule:                3,
		}
		copy(r.RawSymbol[:], "ESH1")
		copy(r.Exchange[:], "XCME")
		return r
	}

	It("round trips the v2 body", func() {
		in := sample()
		b := make([]byte, dbn.InstrumentDefMsgV2Size)
		in.WriteRaw(b)

		var out dbn.InstrumentDefMsg
		Expect(out.FillRaw(b)).To(Succeed())
		Expect(out.TsRecv).To(Equal(in.TsRecv))
		Expect(out.MinPriceIncrement).To(Equal(in.MinPriceIncrement))
		Expect(out.RawSymbol).To(Equal(in.RawSymbol))
		Expect(out.Exchange).To(Equal(in.Exchange))
		Expect(out.UserDefinedInstrument).To(Equal(dbn.UserDefinedInstrument_No))
		Expect(out.LegCount).To(Equal(uint16(0)))
	})

	It("decodes the v3 leg fields when the body carries them", func() {
		in := sample()
		b := make([]byte, dbn.InstrumentDefMsgV3Size)
		in.WriteRaw(b[:dbn.InstrumentDefMsgV2Size])
		leg := b[dbn.InstrumentDefMsgV2Size:]
		leg[0], leg[1] = 2, 0   // LegCount = 2
		leg[2], leg[3] = 1, 0   // LegIndex = 1
		leg[4] = 0xAD // LegInstrumentID low byte, rest left zero

		var out dbn.InstrumentDefMsg
		Expect(out.FillRaw(b)).To(Succeed())
		Expect(out.LegCount).To(Equal(uint16(2)))
		Expect(out.LegIndex).To(Equal(uint16(1)))
		Expect(out.LegInstrumentID).To(Equal(uint32(0xAD)))
	})
})
