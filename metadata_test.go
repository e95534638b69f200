// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"bytes"
	"unsafe"

	dbn "github.com/dbncodec/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func sampleMetadata(version uint8) *dbn.Metadata {
	return &dbn.Metadata{
		VersionNum: version,
		Schema:     dbn.Schema_Ohlcv1S,
		Start:      1609160400000000000,
		End:        1609200000000000000,
		Limit:      2,
		StypeIn:    dbn.SType_RawSymbol,
		StypeOut:   dbn.SType_InstrumentId,
		TsOut:      0,
		Dataset:    "GLBX.MDP3",
		Symbols:    []string{"ESH1"},
		Mappings: []dbn.SymbolMapping{
			{
				RawSymbol: "ESH1",
				Intervals: []dbn.MappingInterval{
					{StartDate: 20201228, EndDate: 20201229, Symbol: "5482"},
				},
			},
		},
	}
}

var _ = Describe("Metadata", func() {
	Context("correctness", func() {
		It("metadata sizes should be correct", func() {
			Expect(unsafe.Sizeof(dbn.RType_Error)).To(Equal(uintptr(1)))
			Expect(unsafe.Sizeof(dbn.SType_RawSymbol)).To(Equal(uintptr(1)))
			Expect(unsafe.Sizeof(dbn.Schema_Mixed)).To(Equal(uintptr(2)))
			Expect(unsafe.Sizeof(dbn.MetadataPrefix{})).To(Equal(uintptr(dbn.Metadata_PrefixSize)))
			Expect(unsafe.Sizeof(dbn.MetadataHeaderV1{})).To(Equal(uintptr(dbn.MetadataHeaderV1_Size + dbn.MetadataHeaderV1_SizeFuzz)))
			Expect(unsafe.Sizeof(dbn.MetadataHeaderV2{})).To(Equal(uintptr(dbn.MetadataHeaderV2_Size + dbn.MetadataHeaderV2_SizeFuzz)))

			// If this changes, we need to update offsets in metadata.go
			Expect(dbn.Metadata_DatasetCstrLen).To(Equal(16))
		})
	})
	Context("round trip", func() {
		It("writes and reads back v1 metadata", func() {
			m1 := sampleMetadata(dbn.HeaderVersion1)
			var buf bytes.Buffer
			Expect(m1.Write(&buf)).To(Succeed())

			got, err := dbn.ReadMetadata(&buf)
			Expect(err).To(BeNil())
			Expect(got).ToNot(BeNil())
			Expect(got.VersionNum).To(Equal(uint8(1)))
			Expect(got.Schema).To(Equal(dbn.Schema_Ohlcv1S))
			Expect(got.Start).To(Equal(uint64(1609160400000000000)))
			Expect(got.End).To(Equal(uint64(1609200000000000000)))
			Expect(got.Limit).To(Equal(uint64(2)))
			Expect(got.StypeIn).To(Equal(dbn.SType_RawSymbol))
			Expect(got.StypeOut).To(Equal(dbn.SType_InstrumentId))
			Expect(got.Dataset).To(Equal("GLBX.MDP3"))
			Expect(got.SymbolCstrLen).To(Equal(uint16(dbn.MetadataV1_SymbolCstrLen)))
			Expect(got.Symbols).To(Equal([]string{"ESH1"}))
			Expect(got.Mappings).To(HaveLen(1))
			Expect(got.Mappings[0].RawSymbol).To(Equal("ESH1"))
			intervals := got.Mappings[0].Intervals
			Expect(intervals).To(HaveLen(1))
			Expect(intervals[0].StartDate).To(Equal(uint32(20201228)))
			Expect(intervals[0].EndDate).To(Equal(uint32(20201229)))
			Expect(intervals[0].Symbol).To(Equal("5482"))
		})
		It("writes and reads back v2 metadata", func() {
			m2 := sampleMetadata(dbn.HeaderVersion2)
			var buf bytes.Buffer
			Expect(m2.Write(&buf)).To(Succeed())

			got, err := dbn.ReadMetadata(&buf)
			Expect(err).To(BeNil())
			Expect(got.VersionNum).To(Equal(uint8(2)))
			Expect(got.SymbolCstrLen).To(Equal(uint16(dbn.MetadataV2_SymbolCstrLen)))
			Expect(got.Symbols).To(Equal([]string{"ESH1"}))
		})
		It("writes and reads back v3 metadata via the v2 header shape", func() {
			m3 := sampleMetadata(dbn.HeaderVersion3)
			var buf bytes.Buffer
			Expect(m3.Write(&buf)).To(Succeed())

			got, err := dbn.ReadMetadata(&buf)
			Expect(err).To(BeNil())
			Expect(got.VersionNum).To(Equal(uint8(3)))
			Expect(got.SymbolCstrLen).To(Equal(uint16(dbn.MetadataV2_SymbolCstrLen)))
		})
		It("rejects a stream missing the DBN magic", func() {
			_, err := dbn.ReadMetadata(bytes.NewReader([]byte("XXX\x02\x00\x00\x00\x00")))
			Expect(err).To(Equal(dbn.ErrInvalidMagic))
		})
	})
})
