// Copyright (c) 2025 Neomantra Corp

package dbn

import (
	"bufio"
	"encoding/binary"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// DefaultSourceBufferSize is the default bufio.Reader size for a Source,
// generalized from the teacher's DbnScanner, which buffers at 16 KiB.
const DefaultSourceBufferSize = 64 * 1024

// zstdMagic is the four leading bytes of every zstd frame.
var zstdMagic = [4]byte{0x28, 0xB5, 0x2F, 0xFD}

// HasZstdSuffix reports whether filename carries a zstd-compressed
// extension, mirroring compressed_io.go's suffix check.
func HasZstdSuffix(filename string) bool {
	return strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd")
}

// Source is a buffered, optionally zstd-decompressing reader over a DBN
// stream. It is the primitive every higher-level reader is built on.
type Source struct {
	br   *bufio.Reader
	zr   *zstd.Decoder
	scr8 [8]byte
}

// NewSource wraps r in a Source, auto-detecting zstd compression by
// sniffing the leading magic bytes when useZstd is false.
func NewSource(r io.Reader, useZstd bool) (*Source, error) {
	br := bufio.NewReaderSize(r, DefaultSourceBufferSize)
	if !useZstd {
		magic, err := br.Peek(4)
		if err == nil && magic[0] == zstdMagic[0] && magic[1] == zstdMagic[1] &&
			magic[2] == zstdMagic[2] && magic[3] == zstdMagic[3] {
			useZstd = true
		}
	}
	s := &Source{br: br}
	if useZstd {
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		s.zr = zr
	}
	return s, nil
}

func (s *Source) reader() io.Reader {
	if s.zr != nil {
		return s.zr
	}
	return s.br
}

// ReadExact reads exactly len(b) bytes into b.
func (s *Source) ReadExact(b []byte) error {
	_, err := io.ReadFull(s.reader(), b)
	return err
}

// ReadByte reads a single byte.
func (s *Source) ReadByte() (byte, error) {
	var b [1]byte
	if err := s.ReadExact(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint8 reads a uint8.
func (s *Source) ReadUint8() (uint8, error) { return s.ReadByte() }

// ReadUint16 reads a little-endian uint16.
func (s *Source) ReadUint16() (uint16, error) {
	if err := s.ReadExact(s.scr8[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(s.scr8[:2]), nil
}

// ReadUint32 reads a little-endian uint32.
func (s *Source) ReadUint32() (uint32, error) {
	if err := s.ReadExact(s.scr8[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(s.scr8[:4]), nil
}

// ReadUint64 reads a little-endian uint64.
func (s *Source) ReadUint64() (uint64, error) {
	if err := s.ReadExact(s.scr8[:8]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(s.scr8[:8]), nil
}

// Skip discards n bytes.
func (s *Source) Skip(n int) error {
	_, err := io.CopyN(io.Discard, s.reader(), int64(n))
	return err
}

// AtEOF reports whether the underlying buffered reader has no more
// buffered or readable bytes. Only meaningful when not zstd-wrapped,
// since the zstd.Decoder doesn't expose a peek.
func (s *Source) AtEOF() bool {
	if s.zr != nil {
		return false
	}
	_, err := s.br.Peek(1)
	return err != nil
}

// Close releases the zstd decoder, if any.
func (s *Source) Close() {
	if s.zr != nil {
		s.zr.Close()
	}
}

///////////////////////////////////////////////////////////////////////////////

// Sink is a buffered, optionally zstd-compressing writer for a DBN stream.
type Sink struct {
	w      io.Writer
	bw     *bufio.Writer
	zw     *zstd.Encoder
	seeker io.WriteSeeker
	scr8   [8]byte
}

// NewSink wraps w in a Sink. When useZstd is true the stream is wrapped in
// a zstd.Encoder and PatchAt is unavailable (compressed streams can't be
// back-patched in place).
func NewSink(w io.Writer, useZstd bool) (*Sink, error) {
	s := &Sink{w: w}
	if seeker, ok := w.(io.WriteSeeker); ok && !useZstd {
		s.seeker = seeker
	}
	if useZstd {
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		s.zw = zw
		s.bw = bufio.NewWriter(zw)
	} else {
		s.bw = bufio.NewWriter(w)
	}
	return s, nil
}

// WriteBytes writes b verbatim.
func (s *Sink) WriteBytes(b []byte) error {
	_, err := s.bw.Write(b)
	return err
}

// WriteUint8 writes a uint8.
func (s *Sink) WriteUint8(v uint8) error {
	return s.bw.WriteByte(v)
}

// WriteUint16 writes a little-endian uint16.
func (s *Sink) WriteUint16(v uint16) error {
	binary.LittleEndian.PutUint16(s.scr8[:2], v)
	return s.WriteBytes(s.scr8[:2])
}

// WriteUint32 writes a little-endian uint32.
func (s *Sink) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(s.scr8[:4], v)
	return s.WriteBytes(s.scr8[:4])
}

// WriteUint64 writes a little-endian uint64.
func (s *Sink) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(s.scr8[:8], v)
	return s.WriteBytes(s.scr8[:8])
}

// Flush flushes the buffered writer (but not the zstd frame).
func (s *Sink) Flush() error {
	return s.bw.Flush()
}

// PatchAt overwrites len(b) bytes at offset in the underlying stream. Only
// available for an uncompressed sink over an io.WriteSeeker; used by
// Writer.Close to back-patch the metadata header's Start/End once the
// ts_event bounds are known; the record count is not back-patched.
func (s *Sink) PatchAt(offset int64, b []byte) error {
	if s.seeker == nil {
		return ErrPatchUnsupported
	}
	if err := s.Flush(); err != nil {
		return err
	}
	cur, err := s.seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err := s.seeker.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	if _, err := s.seeker.Write(b); err != nil {
		return err
	}
	_, err = s.seeker.Seek(cur, io.SeekStart)
	return err
}

// Finalize flushes all buffered data and closes the zstd encoder, if any.
func (s *Sink) Finalize() error {
	if err := s.bw.Flush(); err != nil {
		return err
	}
	if s.zw != nil {
		return s.zw.Close()
	}
	return nil
}
