// Copyright (c) 2025 Neomantra Corp

package dbn

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// DefaultScratchBufferSize is bigger than the largest fixed-size record
// (InstrumentDefMsg's v3 body), mirroring the teacher's
// DEFAULT_SCRATCH_BUFFER_SIZE.
const DefaultScratchBufferSize = 512

// Reader scans a raw DBN stream (metadata header followed by records) and
// decodes each record into its concrete Msg type. Grounded on the
// teacher's DbnScanner, but re-architected so Next returns a decoded
// Record directly instead of a raw-bytes handle requiring a second
// generic decode call.
type Reader struct {
	src         *Source
	metadata    *Metadata
	scratch     []byte
	lastSize    int
	lastErr     error
	curRecord   Record
	recordCount int64
	byteCount   int64
	logger      *slog.Logger
}

// NewReader wraps r, sniffing zstd compression from the leading magic
// bytes.
func NewReader(r io.Reader) (*Reader, error) {
	src, err := NewSource(r, false)
	if err != nil {
		return nil, err
	}
	return &Reader{
		src:     src,
		scratch: make([]byte, DefaultScratchBufferSize),
		logger:  slog.Default(),
	}, nil
}

// SetLogger overrides the Reader's logger, which otherwise defaults to
// slog.Default(). Decode-time non-fatal events (an unrecognized record
// tag skipped) are logged at Debug level.
func (rd *Reader) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	rd.logger = logger
}

// Metadata returns the stream's Metadata, reading it on first call.
func (rd *Reader) Metadata() (*Metadata, error) {
	if rd.metadata != nil {
		return rd.metadata, nil
	}
	if err := rd.readMetadata(); err != nil {
		return nil, err
	}
	return rd.metadata, nil
}

func (rd *Reader) readMetadata() error {
	if rd.metadata != nil {
		return nil
	}
	m, err := ReadMetadata(metadataReaderAdapter{rd.src})
	if err != nil {
		rd.lastErr = err
		return err
	}
	rd.metadata = m
	return nil
}

// metadataReaderAdapter lets ReadMetadata, which wants a plain io.Reader,
// consume bytes through a Source.
type metadataReaderAdapter struct {
	src *Source
}

func (a metadataReaderAdapter) Read(p []byte) (int, error) {
	if err := a.src.ReadExact(p); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}
	return len(p), nil
}

// Next reads and decodes the next record from the stream. It returns
// false on EOF or error; check Error() to distinguish the two.
func (rd *Reader) Next() bool {
	if rd.metadata == nil {
		if err := rd.readMetadata(); err != nil {
			return false
		}
	}
	lenByte, err := rd.src.ReadByte()
	if err != nil {
		rd.lastErr = err
		return false
	}
	need := 4 * int(lenByte)
	if need < RHeaderSize {
		rd.lastErr = malformedAt(-1, "record length-in-words %d yields %d bytes, shorter than the 16-byte header", lenByte, need)
		return false
	}
	if cap(rd.scratch) < need {
		rd.scratch = make([]byte, need)
	}
	rd.scratch[0] = lenByte
	if err := rd.src.ReadExact(rd.scratch[1:need]); err != nil {
		rd.lastErr = err
		return false
	}
	rd.lastSize = need

	tag := RType(rd.scratch[1])
	rec, err := decodeRecord(tag, rd.scratch[:need], rd.metadata.VersionNum, rd.metadata.SymbolCstrLen)
	if err != nil {
		rd.lastErr = err
		return false
	}
	if skipped, ok := rec.(*SkippedRecord); ok {
		rd.logger.Debug("skipped unrecognized record", "rtype", skipped.Hd.RType, "instrument_id", skipped.Hd.InstrumentID)
	}
	rd.curRecord = rec
	rd.lastErr = nil
	rd.recordCount++
	rd.byteCount += int64(need)
	return true
}

// ReaderStats reports how much the Reader has consumed so far: record count
// and record bytes (not counting the metadata header), formatted for a log
// line the way a long-running ingest job would report progress.
type ReaderStats struct {
	RecordCount int64
	ByteCount   int64
}

// String renders a human-readable summary, e.g. "12,345 records (1.2 MB)".
func (s ReaderStats) String() string {
	return fmt.Sprintf("%s records (%s)", humanize.Comma(s.RecordCount), humanize.Bytes(uint64(s.ByteCount)))
}

// Stats returns the records decoded and record bytes consumed so far.
func (rd *Reader) Stats() ReaderStats {
	return ReaderStats{RecordCount: rd.recordCount, ByteCount: rd.byteCount}
}

// Record returns the record decoded by the last successful Next call.
func (rd *Reader) Record() Record {
	return rd.curRecord
}

// Error returns the error that stopped the last Next call, which may be
// io.EOF for a clean end of stream.
func (rd *Reader) Error() error {
	return rd.lastErr
}

// Visit dispatches the current record (decoded by Next) to the matching
// Visitor callback.
func (rd *Reader) Visit(v Visitor) error {
	if rd.curRecord == nil {
		return ErrNoRecord
	}
	return visitRecord(rd.curRecord, v)
}

// visitRecord routes an already-decoded record to its Visitor callback.
func visitRecord(rec Record, v Visitor) error {
	switch r := rec.(type) {
	case *Mbp0Msg:
		return v.OnMbp0(r)
	case *Mbp1Msg:
		return v.OnMbp1(r)
	case *Mbp10Msg:
		return v.OnMbp10(r)
	case *Cmbp1Msg:
		return v.OnCmbp1(r)
	case *MboMsg:
		return v.OnMbo(r)
	case *BboMsg:
		return v.OnBbo(r)
	case *CbboMsg:
		return v.OnCbbo(r)
	case *OhlcvMsg:
		return v.OnOhlcv(r)
	case *StatusMsg:
		return v.OnStatusMsg(r)
	case *InstrumentDefMsg:
		return v.OnInstrumentDef(r)
	case *ImbalanceMsg:
		return v.OnImbalance(r)
	case *StatMsg:
		return v.OnStatMsg(r)
	case *ErrorMsg:
		return v.OnErrorMsg(r)
	case *SystemMsg:
		return v.OnSystemMsg(r)
	case *SymbolMappingMsg:
		return v.OnSymbolMappingMsg(r)
	case *SkippedRecord:
		return v.OnSkipped(r)
	default:
		return ErrUnknownRType
	}
}

// ReadAll reads every record from r's stream into a slice, along with the
// stream's Metadata. Pre-sizes the slice from Metadata.Limit when it is
// nonzero and below 1<<20, falling back to no pre-sizing otherwise.
func ReadAll(r io.Reader) ([]Record, *Metadata, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	meta, err := rd.Metadata()
	if err != nil {
		return nil, nil, err
	}
	var records []Record
	if meta.Limit > 0 && meta.Limit < 1<<20 {
		records = make([]Record, 0, meta.Limit)
	}
	for rd.Next() {
		records = append(records, rd.Record())
	}
	if err := rd.Error(); err != nil && err != io.EOF {
		return records, meta, err
	}
	return records, meta, nil
}
