// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"time"

	dbn "github.com/dbncodec/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Helpers", func() {
	Context("conversion", func() {
		It("converts fixed9 to float correctly", func() {
			Expect(dbn.Fixed9ToFloat64(1234567890123456789)).To(Equal(float64(1234567890.123456789)))
		})
		It("round-trips float64 to fixed9", func() {
			Expect(dbn.Float64ToFixed9(1.5)).To(Equal(int64(1500000000)))
			Expect(dbn.Float64ToFixed9(dbn.Fixed9ToFloat64(dbn.UNDEF_PRICE))).To(Equal(dbn.UNDEF_PRICE))
		})
		It("converts timestamp to sec, nanos correctly", func() {
			sec, nanos := dbn.TimestampToSecNanos(1234567890123456789)
			Expect(sec).To(Equal(int64(1234567890)))
			Expect(nanos).To(Equal(int64(123456789)))
		})
		It("converts Times to Time correctly", func() {
			Expect(dbn.TimestampToTime(0).UTC()).To(Equal(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
			Expect(dbn.TimestampToTime(1234567890123456789).UTC()).To(Equal(time.Date(2009, 02, 13, 23, 31, 30, 123456789, time.UTC)))
		})
		It("converts Times to YMD correctly", func() {
			Expect(dbn.TimeToYMD(time.Time{})).To(Equal(uint32(0)))
			Expect(dbn.TimeToYMD(time.Date(2024, 04, 12, 0, 0, 0, 0, time.UTC))).To(Equal(uint32(20240412)))
		})
		It("round-trips YMD to Time and back", func() {
			Expect(dbn.YMDToTime(0, time.UTC)).To(Equal(time.Time{}))
			t := dbn.YMDToTime(20240412, time.UTC)
			Expect(dbn.TimeToYMD(t)).To(Equal(uint32(20240412)))
		})
	})
	Context("modification", func() {
		It("trims null bytes correctly", func() {
			Expect(dbn.TrimNullBytes([]byte("hello\x00\x00\x00\x00"))).To(Equal("hello"))
		})
		It("does not malform regular strings", func() {
			Expect(dbn.TrimNullBytes([]byte("hello"))).To(Equal("hello"))
		})
	})
})
