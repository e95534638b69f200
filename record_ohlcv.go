package dbn

import "encoding/binary"

// OhlcvMsg is an open, high, low, close, and volume bar. The same layout
// serves every cadence: 1s, 1m, 1h, 1d, the deprecated unspecified-cadence
// tag, and the end-of-day/session variant; the cadence is recoverable only
// from Hd.RType.
type OhlcvMsg struct {
	Hd     RHeader
	Open   int64  // the open price for the bar, scale 1e-9
	High   int64  // the highest price during the bar, scale 1e-9
	Low    int64  // the lowest price during the bar, scale 1e-9
	Close  int64  // the close price for the bar, scale 1e-9
	Volume uint64 // the total volume traded during the bar
}

// OhlcvMsgSize is the fixed wire size of OhlcvMsg.
const OhlcvMsgSize = RHeaderSize + 40

func (r *OhlcvMsg) Header() *RHeader { return &r.Hd }
func (*OhlcvMsg) RType() RType       { return RType_Ohlcv1S }
func (*OhlcvMsg) RSize() int         { return OhlcvMsgSize }

func (r *OhlcvMsg) FillRaw(b []byte) error {
	if len(b) < OhlcvMsgSize {
		return unexpectedBytesError(len(b), OhlcvMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Hd); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.Open = int64(binary.LittleEndian.Uint64(body[0:8]))
	r.High = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Low = int64(binary.LittleEndian.Uint64(body[16:24]))
	r.Close = int64(binary.LittleEndian.Uint64(body[24:32]))
	r.Volume = binary.LittleEndian.Uint64(body[32:40])
	return nil
}

func (r *OhlcvMsg) WriteRaw(b []byte) {
	WriteRHeaderRaw(b[0:RHeaderSize], &r.Hd)
	body := b[RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], uint64(r.Open))
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.High))
	binary.LittleEndian.PutUint64(body[16:24], uint64(r.Low))
	binary.LittleEndian.PutUint64(body[24:32], uint64(r.Close))
	binary.LittleEndian.PutUint64(body[32:40], r.Volume)
}
