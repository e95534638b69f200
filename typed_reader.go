// Copyright (c) 2025 Neomantra Corp

package dbn

import (
	"io"
	"log/slog"
)

// TypedReader decodes only records of a single schema, failing fast with a
// SchemaMismatchError the first time the stream yields a different tag.
// Grounded on the teacher's generic DbnScannerDecode[R, RP], but dedicated
// to one type for the whole stream's lifetime instead of re-checking
// compatibility record by record without reporting where it diverged.
type TypedReader[T any, RP RecordPtr[T]] struct {
	rd     *Reader
	offset int64
}

// NewTypedReader wraps r, restricting decoding to the schema RP names.
func NewTypedReader[T any, RP RecordPtr[T]](r io.Reader) (*TypedReader[T, RP], error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	return &TypedReader[T, RP]{rd: rd}, nil
}

// Metadata returns the stream's Metadata.
func (tr *TypedReader[T, RP]) Metadata() (*Metadata, error) {
	return tr.rd.Metadata()
}

// SetLogger overrides the logger used by the underlying Reader.
func (tr *TypedReader[T, RP]) SetLogger(logger *slog.Logger) {
	tr.rd.SetLogger(logger)
}

// Next decodes the next record, returning it typed as *T. Returns
// (nil, io.EOF) at a clean end of stream and a *SchemaMismatchError if
// the decoded record is not a *T (any tag that decodes to T is accepted,
// e.g. every OHLCV cadence for OhlcvMsg). The error's Offset is where the
// offending record starts, counted from the first record after the
// metadata header.
func (tr *TypedReader[T, RP]) Next() (*T, error) {
	if !tr.rd.Next() {
		if err := tr.rd.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	rec := tr.rd.Record()
	var want RP = new(T)
	start := tr.offset
	tr.offset += int64(rec.Header().ByteSize())
	typed, ok := rec.(RP)
	if !ok {
		return nil, &SchemaMismatchError{Got: rec.Header().RType, Want: want.RType(), Offset: start}
	}
	return typed, nil
}

// ForEach decodes every record of type T from r's stream, calling fn for
// each. It stops and returns fn's error immediately if fn returns one,
// and returns nil at a clean end of stream. This is the
// zero-materialization counterpart to ReadAll for a single schema.
func ForEach[T any, RP RecordPtr[T]](r io.Reader, fn func(*T) error) error {
	tr, err := NewTypedReader[T, RP](r)
	if err != nil {
		return err
	}
	for {
		rec, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
