package dbn

import (
	"bytes"
	"math"
	"time"
)

// FIXED_PRICE_SCALE is the denominator of fixed prices in DBN.
const FIXED_PRICE_SCALE float64 = 1000000000.0

// UNDEF_PRICE is the i64 sentinel for an unset/NaN price.
const UNDEF_PRICE int64 = math.MinInt64

// Fixed9ToFloat64 converts a fixed-point price (scale 1e-9) to a float64.
// Returns math.NaN() for the UNDEF_PRICE sentinel.
func Fixed9ToFloat64(fixed int64) float64 {
	if fixed == UNDEF_PRICE {
		return math.NaN()
	}
	return float64(fixed) / FIXED_PRICE_SCALE
}

// Float64ToFixed9 converts a float64 to a fixed-point price (scale 1e-9).
// Returns UNDEF_PRICE for NaN.
func Float64ToFixed9(f float64) int64 {
	if math.IsNaN(f) {
		return UNDEF_PRICE
	}
	return int64(f * FIXED_PRICE_SCALE)
}

// TrimNullBytes removes trailing nulls from a byte slice and returns a string.
func TrimNullBytes(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}

// putCString writes s into dst, null-padding (or truncating) to len(dst).
func putCString(dst []byte, s string) {
	fill(dst, 0)
	copy(dst, s)
}

// TimestampToSecNanos converts a DBN timestamp to seconds and nanoseconds.
func TimestampToSecNanos(dbnTimestamp uint64) (int64, int64) {
	secs := int64(dbnTimestamp / 1e9)
	nano := int64(dbnTimestamp) - int64(secs*1e9)
	return secs, nano
}

// TimestampToTime converts a DBN timestamp to a time.Time.
func TimestampToTime(dbnTimestamp uint64) time.Time {
	secs := int64(dbnTimestamp / 1e9)
	nano := int64(dbnTimestamp) - int64(secs*1e9)
	return time.Unix(secs, nano)
}

// TimeToTimestamp converts a time.Time to a DBN timestamp (ns since epoch).
func TimeToTimestamp(t time.Time) uint64 {
	return uint64(t.UnixNano())
}

// TimeToYMD returns the YYYYMMDD for the time.Time in that Time's location.
// A zero time returns a 0 value.
func TimeToYMD(t time.Time) uint32 {
	if t.IsZero() {
		return 0
	}
	return uint32(10000*t.Year() + 100*int(t.Month()) + t.Day())
}

// YMDToTime parses a YYYYMMDD int into a time.Time at midnight in loc.
// A zero ymd returns the zero time.Time.
func YMDToTime(ymd int, loc *time.Location) time.Time {
	if ymd == 0 {
		return time.Time{}
	}
	year := ymd / 10000
	month := (ymd / 100) % 100
	day := ymd % 100
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}
