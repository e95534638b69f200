// Copyright (c) 2025 Neomantra Corp

package dbn_test

import (
	"bytes"
	"io"

	dbn "github.com/dbncodec/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// A seekable in-memory buffer, so Sink.PatchAt and Writer.Close's
// back-patch path can be exercised without touching the filesystem.
type seekBuffer struct {
	bytes.Buffer
	pos int64
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		s.pos = offset
	case io.SeekCurrent:
		s.pos += offset
	case io.SeekEnd:
		s.pos = int64(s.Buffer.Len()) + offset
	}
	return s.pos, nil
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	buf := s.Buffer.Bytes()
	if end > int64(len(buf)) {
		grown := make([]byte, end)
		copy(grown, buf)
		buf = grown
	}
	copy(buf[s.pos:end], p)
	s.Buffer.Reset()
	s.Buffer.Write(buf)
	s.pos = end
	return len(p), nil
}

var _ = Describe("Transport", func() {
	It("round trips primitive widths through a Source/Sink pair", func() {
		var buf bytes.Buffer
		sink, err := dbn.NewSink(&buf, false)
		Expect(err).To(BeNil())
		Expect(sink.WriteUint8(7)).To(Succeed())
		Expect(sink.WriteUint16(1234)).To(Succeed())
		Expect(sink.WriteUint32(123456)).To(Succeed())
		Expect(sink.WriteUint64(1234567890123)).To(Succeed())
		Expect(sink.Finalize()).To(Succeed())

		src, err := dbn.NewSource(&buf, false)
		Expect(err).To(BeNil())
		v8, err := src.ReadUint8()
		Expect(err).To(BeNil())
		Expect(v8).To(Equal(uint8(7)))
		v16, err := src.ReadUint16()
		Expect(err).To(BeNil())
		Expect(v16).To(Equal(uint16(1234)))
		v32, err := src.ReadUint32()
		Expect(err).To(BeNil())
		Expect(v32).To(Equal(uint32(123456)))
		v64, err := src.ReadUint64()
		Expect(err).To(BeNil())
		Expect(v64).To(Equal(uint64(1234567890123)))
		Expect(src.AtEOF()).To(BeTrue())
	})

	It("detects HasZstdSuffix by filename", func() {
		Expect(dbn.HasZstdSuffix("foo.dbn.zst")).To(BeTrue())
		Expect(dbn.HasZstdSuffix("foo.dbn.zstd")).To(BeTrue())
		Expect(dbn.HasZstdSuffix("foo.dbn")).To(BeFalse())
	})

	It("refuses PatchAt on a non-seekable sink", func() {
		var buf bytes.Buffer
		sink, err := dbn.NewSink(&buf, false)
		Expect(err).To(BeNil())
		Expect(sink.PatchAt(0, []byte{0})).To(Equal(dbn.ErrPatchUnsupported))
	})

	It("back-patches a seekable sink in place", func() {
		sb := &seekBuffer{}
		sink, err := dbn.NewSink(sb, false)
		Expect(err).To(BeNil())
		Expect(sink.WriteBytes([]byte{0, 0, 0, 0})).To(Succeed())
		Expect(sink.PatchAt(1, []byte{0xAA, 0xBB})).To(Succeed())
		Expect(sink.Finalize()).To(Succeed())
		Expect(sb.Buffer.Bytes()).To(Equal([]byte{0, 0xAA, 0xBB, 0}))
	})
})

var _ = Describe("Reader/Writer pipeline", func() {
	buildStream := func() []byte {
		var buf bytes.Buffer
		meta := sampleMetadata(dbn.HeaderVersion2)
		wr, err := dbn.NewWriter(&buf, meta, false)
		Expect(err).To(BeNil())

		rec := &dbn.OhlcvMsg{
			Hd:     dbn.RHeader{Length: uint8(dbn.OhlcvMsgSize / 4), RType: dbn.RType_Ohlcv1S, InstrumentID: 5482, TsEvent: 100},
			Open:   1, High: 2, Low: 3, Close: 4, Volume: 5,
		}
		Expect(dbn.WriteRecord[dbn.OhlcvMsg](wr, rec)).To(Succeed())

		rec2 := &dbn.OhlcvMsg{
			Hd:     dbn.RHeader{Length: uint8(dbn.OhlcvMsgSize / 4), RType: dbn.RType_Ohlcv1S, InstrumentID: 5482, TsEvent: 200},
			Open:   6, High: 7, Low: 8, Close: 9, Volume: 10,
		}
		Expect(dbn.WriteRecord[dbn.OhlcvMsg](wr, rec2)).To(Succeed())
		Expect(wr.Stats().RecordCount).To(Equal(int64(2)))
		Expect(wr.Close()).To(Succeed())
		return buf.Bytes()
	}

	It("reads back every record written, in order", func() {
		data := buildStream()
		rd, err := dbn.NewReader(bytes.NewReader(data))
		Expect(err).To(BeNil())

		meta, err := rd.Metadata()
		Expect(err).To(BeNil())
		Expect(meta.Schema).To(Equal(dbn.Schema_Ohlcv1S))

		var seen []uint64
		for rd.Next() {
			seen = append(seen, rd.Record().Header().TsEvent)
		}
		Expect(rd.Error()).To(Equal(io.EOF))
		Expect(seen).To(Equal([]uint64{100, 200}))
		Expect(rd.Stats().RecordCount).To(Equal(int64(2)))
	})

	It("dispatches to a Visitor's OnOhlcv for each record", func() {
		data := buildStream()
		rd, err := dbn.NewReader(bytes.NewReader(data))
		Expect(err).To(BeNil())
		_, err = rd.Metadata()
		Expect(err).To(BeNil())

		var v countingVisitor
		for rd.Next() {
			Expect(rd.Visit(&v)).To(Succeed())
		}
		Expect(v.ohlcv).To(Equal(2))
	})

	It("ReadAll collects every record and the metadata together", func() {
		data := buildStream()
		records, meta, err := dbn.ReadAll(bytes.NewReader(data))
		Expect(err).To(BeNil())
		Expect(meta).ToNot(BeNil())
		Expect(records).To(HaveLen(2))
	})

	It("TypedReader decodes only the requested schema via ForEach", func() {
		data := buildStream()
		var total uint64
		err := dbn.ForEach[dbn.OhlcvMsg, *dbn.OhlcvMsg](bytes.NewReader(data), func(r *dbn.OhlcvMsg) error {
			total += r.Volume
			return nil
		})
		Expect(err).To(BeNil())
		Expect(total).To(Equal(uint64(15)))
	})

	It("TypedReader reports a SchemaMismatchError for the wrong schema", func() {
		data := buildStream()
		tr, err := dbn.NewTypedReader[dbn.Mbp0Msg, *dbn.Mbp0Msg](bytes.NewReader(data))
		Expect(err).To(BeNil())
		_, err = tr.Metadata()
		Expect(err).To(BeNil())
		_, err = tr.Next()
		var mismatch *dbn.SchemaMismatchError
		Expect(err).To(HaveOccurred())
		ok := false
		if e, isErr := err.(*dbn.SchemaMismatchError); isErr {
			ok = true
			mismatch = e
		}
		Expect(ok).To(BeTrue())
		Expect(mismatch.Got).To(Equal(dbn.RType_Ohlcv1S))
		Expect(mismatch.Want).To(Equal(dbn.RType_Mbp0))
	})

	It("back-patches Start/End on Close when the caller left them zero", func() {
		sb := &seekBuffer{}
		meta := sampleMetadata(dbn.HeaderVersion2)
		meta.Start = 0
		meta.End = 0
		wr, err := dbn.NewWriter(sb, meta, false)
		Expect(err).To(BeNil())

		rec := &dbn.OhlcvMsg{Hd: dbn.RHeader{Length: uint8(dbn.OhlcvMsgSize / 4), RType: dbn.RType_Ohlcv1S, TsEvent: 50}}
		Expect(dbn.WriteRecord[dbn.OhlcvMsg](wr, rec)).To(Succeed())
		rec2 := &dbn.OhlcvMsg{Hd: dbn.RHeader{Length: uint8(dbn.OhlcvMsgSize / 4), RType: dbn.RType_Ohlcv1S, TsEvent: 999}}
		Expect(dbn.WriteRecord[dbn.OhlcvMsg](wr, rec2)).To(Succeed())
		Expect(wr.Close()).To(Succeed())

		got, err := dbn.ReadMetadata(bytes.NewReader(sb.Buffer.Bytes()))
		Expect(err).To(BeNil())
		Expect(got.Start).To(Equal(uint64(50)))
		Expect(got.End).To(Equal(uint64(999)))
	})

	It("logs skipped records at Debug without surfacing an error", func() {
		var buf bytes.Buffer
		meta := sampleMetadata(dbn.HeaderVersion2)
		Expect(meta.Write(&buf)).To(Succeed())
		// A record with an rtype this codec has no layout for: header
		// only, length-in-words = 4 (16 bytes).
		hdr := dbn.RHeader{Length: 4, RType: 0x7E, InstrumentID: 1}
		raw := make([]byte, dbn.RHeaderSize)
		dbn.WriteRHeaderRaw(raw, &hdr)
		buf.Write(raw)

		rd, err := dbn.NewReader(bytes.NewReader(buf.Bytes()))
		Expect(err).To(BeNil())
		rd.SetLogger(nil) // falls back to slog.Default(), must not panic
		_, err = rd.Metadata()
		Expect(err).To(BeNil())
		Expect(rd.Next()).To(BeTrue())
		_, isSkipped := rd.Record().(*dbn.SkippedRecord)
		Expect(isSkipped).To(BeTrue())
	})

	It("rejects WriteRecord after Close", func() {
		var buf bytes.Buffer
		meta := sampleMetadata(dbn.HeaderVersion2)
		wr, err := dbn.NewWriter(&buf, meta, false)
		Expect(err).To(BeNil())
		Expect(wr.Close()).To(Succeed())
		rec := &dbn.OhlcvMsg{Hd: dbn.RHeader{Length: uint8(dbn.OhlcvMsgSize / 4), RType: dbn.RType_Ohlcv1S}}
		Expect(dbn.WriteRecord[dbn.OhlcvMsg](wr, rec)).To(Equal(dbn.ErrWriterClosed))
	})
})

// countingVisitor tallies OnOhlcv calls; every other callback is a no-op
// inherited from NullVisitor.
type countingVisitor struct {
	dbn.NullVisitor
	ohlcv int
}

func (v *countingVisitor) OnOhlcv(*dbn.OhlcvMsg) error {
	v.ohlcv++
	return nil
}
