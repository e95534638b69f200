package dbn

import "encoding/binary"

// BidAskPair is one price level of a book, with per-side price, size, and
// order count. Used by Mbp1Msg, Mbp10Msg, and BboMsg.
type BidAskPair struct {
	BidPx int64  // the bid price, scale 1e-9
	AskPx int64  // the ask price, scale 1e-9
	BidSz uint32 // the bid size
	AskSz uint32 // the ask size
	BidCt uint32 // the bid order count
	AskCt uint32 // the ask order count
}

// BidAskPairSize is the fixed wire size of a BidAskPair.
const BidAskPairSize = 32

func fillBidAskPairRaw(b []byte, p *BidAskPair) {
	p.BidPx = int64(binary.LittleEndian.Uint64(b[0:8]))
	p.AskPx = int64(binary.LittleEndian.Uint64(b[8:16]))
	p.BidSz = binary.LittleEndian.Uint32(b[16:20])
	p.AskSz = binary.LittleEndian.Uint32(b[20:24])
	p.BidCt = binary.LittleEndian.Uint32(b[24:28])
	p.AskCt = binary.LittleEndian.Uint32(b[28:32])
}

func writeBidAskPairRaw(b []byte, p *BidAskPair) {
	binary.LittleEndian.PutUint64(b[0:8], uint64(p.BidPx))
	binary.LittleEndian.PutUint64(b[8:16], uint64(p.AskPx))
	binary.LittleEndian.PutUint32(b[16:20], p.BidSz)
	binary.LittleEndian.PutUint32(b[20:24], p.AskSz)
	binary.LittleEndian.PutUint32(b[24:28], p.BidCt)
	binary.LittleEndian.PutUint32(b[28:32], p.AskCt)
}

// ConsolidatedBidAskPair is one price level of a consolidated (cross-venue)
// book: the order count fields are replaced with the publisher ID that
// contributed the winning quote on each side. Used by Cmbp1Msg and CbboMsg.
type ConsolidatedBidAskPair struct {
	BidPx int64  // the bid price, scale 1e-9
	AskPx int64  // the ask price, scale 1e-9
	BidSz uint32 // the bid size
	AskSz uint32 // the ask size
	BidPb uint16 // the publisher ID of the bid
	AskPb uint16 // the publisher ID of the ask
}

// ConsolidatedBidAskPairSize is the fixed wire size of a ConsolidatedBidAskPair.
const ConsolidatedBidAskPairSize = 28

func fillConsolidatedBidAskPairRaw(b []byte, p *ConsolidatedBidAskPair) {
	p.BidPx = int64(binary.LittleEndian.Uint64(b[0:8]))
	p.AskPx = int64(binary.LittleEndian.Uint64(b[8:16]))
	p.BidSz = binary.LittleEndian.Uint32(b[16:20])
	p.AskSz = binary.LittleEndian.Uint32(b[20:24])
	p.BidPb = binary.LittleEndian.Uint16(b[24:26])
	p.AskPb = binary.LittleEndian.Uint16(b[26:28])
}

func writeConsolidatedBidAskPairRaw(b []byte, p *ConsolidatedBidAskPair) {
	binary.LittleEndian.PutUint64(b[0:8], uint64(p.BidPx))
	binary.LittleEndian.PutUint64(b[8:16], uint64(p.AskPx))
	binary.LittleEndian.PutUint32(b[16:20], p.BidSz)
	binary.LittleEndian.PutUint32(b[20:24], p.AskSz)
	binary.LittleEndian.PutUint16(b[24:26], p.BidPb)
	binary.LittleEndian.PutUint16(b[26:28], p.AskPb)
}
