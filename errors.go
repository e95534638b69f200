package dbn

import "fmt"

var (
	// ErrInvalidMagic is returned when a stream does not begin with the "DBN" magic bytes.
	ErrInvalidMagic = fmt.Errorf("invalid DBN magic bytes")
	// ErrUnsupportedVersion is returned for a DBN version byte this codec doesn't know.
	ErrUnsupportedVersion = fmt.Errorf("unsupported DBN version")
	// ErrHeaderTooShort is returned when a metadata header is shorter than its fixed layout.
	ErrHeaderTooShort = fmt.Errorf("metadata header shorter than expected")
	// ErrUnexpectedCStrLength is returned when a v2/v3 header's symbol_cstr_len doesn't match the expected constant.
	ErrUnexpectedCStrLength = fmt.Errorf("unexpected symbol cstr length")
	// ErrNoRecord is returned when a decode is attempted with no record staged.
	ErrNoRecord = fmt.Errorf("no record scanned")
	// ErrCompressionError names a failure from the zstd layer. No function in
	// this package returns it: zstd errors are propagated as the zstd package
	// reports them.
	ErrCompressionError = fmt.Errorf("compression error")
	// ErrUnknownRType marks a record tag this codec has no layout for; non-fatal, see SkippedRecord.
	ErrUnknownRType = fmt.Errorf("unknown rtype")
	// ErrDateOutsideQueryRange is returned by PitSymbolMap when a timestamp falls outside metadata's range.
	ErrDateOutsideQueryRange = fmt.Errorf("date outside the query range")
	// ErrWrongStypesForMapping is returned when neither stype is SType_InstrumentId.
	ErrWrongStypesForMapping = fmt.Errorf("wrong stypes for mapping")
	// ErrNoMetadata names an operation that needs metadata that hasn't been read yet.
	// No function in this package returns it: Reader reads the metadata on demand.
	ErrNoMetadata = fmt.Errorf("no metadata")
	// ErrWriterClosed is returned by Writer methods called after Close.
	ErrWriterClosed = fmt.Errorf("writer is closed")
	// ErrHeaderAlreadyWritten names metadata fields mutated after the header was emitted.
	// No function in this package returns it: Writer does not check for such mutation.
	ErrHeaderAlreadyWritten = fmt.Errorf("metadata header already written")
	// ErrPatchUnsupported is returned by Sink.PatchAt for a compressed or non-seekable sink.
	ErrPatchUnsupported = fmt.Errorf("back-patching unsupported for this sink")
)

// MalformedError reports a structurally invalid record or header, carrying
// the byte offset into the stream (or buffer) where the problem was found.
type MalformedError struct {
	Offset int64
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed DBN data at offset %d: %s", e.Offset, e.Reason)
}

func malformedAt(offset int64, format string, args ...any) error {
	return &MalformedError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

// SchemaMismatchError is returned by a TypedReader when the decoded tag
// doesn't match the type it was constructed for.
type SchemaMismatchError struct {
	Got, Want RType
	Offset    int64
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch at offset %d: got rtype 0x%02x, want 0x%02x", e.Offset, uint8(e.Got), uint8(e.Want))
}

// FinalizeFailedError wraps a failure to back-patch or flush a Writer's
// trailing state on Close.
type FinalizeFailedError struct {
	Cause error
}

func (e *FinalizeFailedError) Error() string {
	return fmt.Sprintf("failed to finalize writer: %v", e.Cause)
}

func (e *FinalizeFailedError) Unwrap() error {
	return e.Cause
}

func unexpectedBytesError(got int, want int) error {
	return fmt.Errorf("expected %d bytes, got %d", want, got)
}

func unexpectedRTypeError(got RType, want RType) error {
	return fmt.Errorf("expected RType 0x%02x, got 0x%02x", uint8(want), uint8(got))
}
