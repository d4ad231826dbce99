package dexengine

import (
	"bytes"

	"github.com/gagliardetto/solana-go"
)

// PumpFun event discriminators: the leading 8 bytes of a decoded
// "Program data: " payload that select which event struct follows (spec
// §4.2 step 4). These are the protocol-defined constants for this engine;
// see DESIGN.md for provenance notes.
var (
	pumpFunTradeDiscriminator  = [8]byte{0xbd, 0xdb, 0x7f, 0xd3, 0x4e, 0xe6, 0x61, 0xee}
	pumpFunCreateDiscriminator = [8]byte{0x1b, 0x72, 0xa9, 0x4d, 0xdf, 0xab, 0xb0, 0x43}
)

// PumpFunTradeEvent is the hot path named in spec invariant 3: decoding it
// must never allocate on the heap.
type PumpFunTradeEvent struct {
	meta                 EventMetadata
	Mint                 solana.PublicKey
	User                 solana.PublicKey
	IsBuy                bool
	SolAmount            uint64
	TokenAmount          uint64
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
	Timestamp            int64
	IsCreatedBuy         bool
}

func (e *PumpFunTradeEvent) Kind() EventKind         { return PumpFunTrade }
func (e *PumpFunTradeEvent) Meta() EventMetadata     { return e.meta }

// PumpFunCreateEvent carries the bounded name/symbol/uri strings (the one
// place this decoder allocates: three small, capped strings).
type PumpFunCreateEvent struct {
	meta         EventMetadata
	Mint         solana.PublicKey
	Creator      solana.PublicKey
	BondingCurve solana.PublicKey
	Name         string
	Symbol       string
	URI          string
}

func (e *PumpFunCreateEvent) Kind() EventKind     { return PumpFunCreate }
func (e *PumpFunCreateEvent) Meta() EventMetadata { return e.meta }

// DecodePumpFunLog implements spec §4.2 for the PumpFun protocol. forced,
// when not EventUnknown, is the §4.4 single-kind fast path: the caller
// already knows the only requested kind, so discriminator comparison is
// skipped and decoding goes straight to that kind's field layout.
func DecodePumpFunLog(line []byte, meta EventMetadata, filter EventTypeFilter, isCreatedBuy bool, forced EventKind) (DexEvent, bool) {
	tail, ok := extractProgramDataTail(line)
	if !ok {
		return nil, false
	}

	var buf [pumpFunBufCap]byte
	n, ok := decodeBase64Into(buf[:], tail)
	if !ok {
		return nil, false
	}
	payload := buf[:n]
	if len(payload) < 8 {
		return nil, false
	}

	if forced == PumpFunTrade {
		return decodePumpFunTrade(payload[8:], meta, isCreatedBuy)
	}
	if forced == PumpFunCreate {
		return decodePumpFunCreate(payload[8:], meta)
	}

	switch {
	case bytes.Equal(payload[:8], pumpFunTradeDiscriminator[:]):
		if !filter.Allows(PumpFunTrade) {
			return nil, false
		}
		return decodePumpFunTrade(payload[8:], meta, isCreatedBuy)
	case bytes.Equal(payload[:8], pumpFunCreateDiscriminator[:]):
		if !filter.Allows(PumpFunCreate) {
			return nil, false
		}
		return decodePumpFunCreate(payload[8:], meta)
	default:
		return nil, false
	}
}

func decodePumpFunTrade(b []byte, meta EventMetadata, isCreatedBuy bool) (DexEvent, bool) {
	mint, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	user, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	isBuy, ok := readBool(b)
	if !ok {
		return nil, false
	}
	b = b[1:]
	solAmount, ok := readU64LE(b)
	if !ok {
		return nil, false
	}
	b = b[8:]
	tokenAmount, ok := readU64LE(b)
	if !ok {
		return nil, false
	}
	b = b[8:]
	virtualSol, ok := readU64LE(b)
	if !ok {
		return nil, false
	}
	b = b[8:]
	virtualToken, ok := readU64LE(b)
	if !ok {
		return nil, false
	}
	b = b[8:]
	timestamp, ok := readI64LE(b)
	if !ok {
		return nil, false
	}

	return &PumpFunTradeEvent{
		meta:                 meta,
		Mint:                 mint,
		User:                 user,
		IsBuy:                isBuy,
		SolAmount:            solAmount,
		TokenAmount:          tokenAmount,
		VirtualSolReserves:   virtualSol,
		VirtualTokenReserves: virtualToken,
		Timestamp:            timestamp,
		IsCreatedBuy:         isCreatedBuy,
	}, true
}

func decodePumpFunCreate(b []byte, meta EventMetadata) (DexEvent, bool) {
	mint, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	creator, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	bondingCurve, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]

	name, adv, ok := readCappedString(b, maxShortStringLen)
	if !ok {
		return nil, false
	}
	b = b[adv:]
	symbol, adv, ok := readCappedString(b, maxShortStringLen)
	if !ok {
		return nil, false
	}
	b = b[adv:]
	uri, _, ok := readCappedString(b, maxURILen)
	if !ok {
		return nil, false
	}

	return &PumpFunCreateEvent{
		meta:         meta,
		Mint:         mint,
		Creator:      creator,
		BondingCurve: bondingCurve,
		Name:         name,
		Symbol:       symbol,
		URI:          uri,
	}, true
}
