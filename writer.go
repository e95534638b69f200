// Copyright (c) 2025 Neomantra Corp

package dbn

import (
	"bytes"
	"encoding/binary"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// writerStart/writerEnd are the absolute byte offsets of the Start/End
// query-range fields within a v2/v3 metadata header, used to back-patch
// the header once the actual ts_event bounds of the written records are
// known. Grounded on MetadataHeaderV2.FillFixed_Raw's offsets (18/26 into
// the header body) plus Metadata_PrefixSize (the 8-byte MetadataPrefix
// ahead of it).
const (
	writerStartOffset = Metadata_PrefixSize + 18
	writerEndOffset   = Metadata_PrefixSize + 26
)

// RecordWriter constrains a type parameter to *T where T is an encodable
// record: Record plus the fixed-layout write hooks.
type RecordWriter[T any] interface {
	*T
	Record
	RSize() int
	WriteRaw(b []byte)
}

// Writer encodes a Metadata header followed by a stream of records.
// The teacher has no writer at all, only MakeCompressedWriter's
// whole-stream helper; this is built from the teacher's own encode-side
// idioms (metadata.go's length-prefix-then-backfill pattern,
// compressed_io.go's zstd setup) generalized to a three-state lifecycle:
// header-not-yet-emitted, streaming, and closed.
type Writer struct {
	sink     *Sink
	meta     *Metadata
	scratch  []byte
	wroteHdr bool
	closed   bool
	tsMin    uint64
	tsMax    uint64
	sawAny   bool

	recordCount int64
	byteCount   int64
	logger      *slog.Logger
}

// WriterStats reports how much a Writer has emitted so far.
type WriterStats struct {
	RecordCount int64
	ByteCount   int64
}

// String renders a human-readable summary, e.g. "12,345 records (1.2 MB)".
func (s WriterStats) String() string {
	return humanize.Comma(s.RecordCount) + " records (" + humanize.Bytes(uint64(s.ByteCount)) + ")"
}

// Stats returns the records and bytes written so far, not counting the
// metadata header.
func (wr *Writer) Stats() WriterStats {
	return WriterStats{RecordCount: wr.recordCount, ByteCount: wr.byteCount}
}

// NewWriter wraps w, deferring the metadata header's emission until the
// first WriteRecord call so ts_event bounds can be back-patched on Close
// for a seekable, uncompressed sink. meta.Start/meta.End are used as-is
// (and never back-patched) for a compressed sink, since a zstd frame
// can't be rewritten in place once written.
func NewWriter(w io.Writer, meta *Metadata, useZstd bool) (*Writer, error) {
	sink, err := NewSink(w, useZstd)
	if err != nil {
		return nil, err
	}
	return &Writer{
		sink:    sink,
		meta:    meta,
		scratch: make([]byte, DefaultScratchBufferSize),
		tsMin:   ^uint64(0),
		logger:  slog.Default(),
	}, nil
}

// SetLogger overrides the Writer's logger, which otherwise defaults to
// slog.Default(). A failure to back-patch Start/End on Close is logged at
// Warn before FinalizeFailedError is returned.
func (wr *Writer) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	wr.logger = logger
}

func (wr *Writer) writeHeaderIfNeeded() error {
	if wr.wroteHdr {
		return nil
	}
	var buf bytes.Buffer
	if err := wr.meta.Write(&buf); err != nil {
		return err
	}
	if err := wr.sink.WriteBytes(buf.Bytes()); err != nil {
		return err
	}
	wr.wroteHdr = true
	return nil
}

// WriteRecord encodes a single record of type T. The first call on a
// Writer emits the metadata header.
func WriteRecord[T any, RP RecordWriter[T]](wr *Writer, rec RP) error {
	if wr.closed {
		return ErrWriterClosed
	}
	if err := wr.writeHeaderIfNeeded(); err != nil {
		return err
	}
	size := rec.RSize()
	if cap(wr.scratch) < size {
		wr.scratch = make([]byte, size)
	}
	b := wr.scratch[:size]
	rec.WriteRaw(b)
	if err := wr.sink.WriteBytes(b); err != nil {
		return err
	}
	ts := rec.Header().TsEvent
	if ts < wr.tsMin {
		wr.tsMin = ts
	}
	if ts > wr.tsMax {
		wr.tsMax = ts
	}
	wr.sawAny = true
	wr.recordCount++
	wr.byteCount += int64(size)
	return nil
}

// Close flushes and finalizes the sink. For a seekable, uncompressed
// sink whose Metadata didn't already carry explicit Start/End bounds
// (left at their zero value by the caller), Close back-patches them
// with the ts_event range actually observed across written records,
// wrapping any back-patch failure in FinalizeFailedError.
func (wr *Writer) Close() error {
	if wr.closed {
		return nil
	}
	wr.closed = true
	if err := wr.writeHeaderIfNeeded(); err != nil {
		return &FinalizeFailedError{Cause: err}
	}
	var patchErr error
	if wr.sawAny && wr.meta.Start == 0 && wr.meta.End == 0 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], wr.tsMin)
		patchErr = wr.sink.PatchAt(writerStartOffset, b[:])
		if patchErr == nil {
			binary.LittleEndian.PutUint64(b[:], wr.tsMax)
			patchErr = wr.sink.PatchAt(writerEndOffset, b[:])
		}
		if patchErr == ErrPatchUnsupported {
			// a compressed or non-seekable sink is not back-patched
			patchErr = nil
		}
	}
	if err := wr.sink.Finalize(); err != nil {
		return &FinalizeFailedError{Cause: err}
	}
	if patchErr != nil {
		wr.logger.Warn("failed to back-patch metadata start/end", "error", patchErr)
		return &FinalizeFailedError{Cause: patchErr}
	}
	return nil
}
