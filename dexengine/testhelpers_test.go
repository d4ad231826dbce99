package dexengine

import (
	"encoding/base64"

	"github.com/gagliardetto/solana-go"
)

// putU64LE appends a little-endian uint64, mirroring the on-chain layout
// every decoder in this package reads (spec §4.2: "all on-chain integers
// are little-endian").
func putU64LE(buf []byte, v uint64) []byte {
	for i := 0; i < 8; i++ {
		buf = append(buf, byte(v>>(8*i)))
	}
	return buf
}

func putI64LE(buf []byte, v int64) []byte {
	return putU64LE(buf, uint64(v))
}

func putU32LE(buf []byte, v uint32) []byte {
	for i := 0; i < 4; i++ {
		buf = append(buf, byte(v>>(8*i)))
	}
	return buf
}

func putPubkey(buf []byte, pk solana.PublicKey) []byte {
	return append(buf, pk[:]...)
}

func putCappedString(buf []byte, s string) []byte {
	buf = putU32LE(buf, uint32(len(s)))
	return append(buf, s...)
}

// programDataLine wraps a raw event payload as the "Program data: <base64>"
// log line every decoder in this package expects (spec §4.2 step 1/2).
func programDataLine(payload []byte) []byte {
	return []byte("Program data: " + base64.StdEncoding.EncodeToString(payload))
}

// genericSwapPayload builds the shared-prefix bytes readGenericSwapFields
// expects, after an 8-byte discriminator, with extra tail bytes appended.
func genericSwapPayload(disc [8]byte, f genericSwapFields, extra []byte) []byte {
	buf := make([]byte, 0, 8+genericSwapFieldsSize+len(extra))
	buf = append(buf, disc[:]...)
	buf = putPubkey(buf, f.Pool)
	buf = putPubkey(buf, f.Trader)
	buf = putU64LE(buf, f.AmountIn)
	buf = putU64LE(buf, f.AmountOut)
	buf = putPubkey(buf, f.TokenInMint)
	buf = putPubkey(buf, f.TokenOutMint)
	buf = putI64LE(buf, f.Timestamp)
	buf = append(buf, extra...)
	return buf
}

func pumpFunTradePayload(mint, user solana.PublicKey, isBuy bool, solAmount, tokenAmount, vSol, vToken uint64, ts int64) []byte {
	buf := make([]byte, 0, 8+32+32+1+8+8+8+8+8)
	buf = append(buf, pumpFunTradeDiscriminator[:]...)
	buf = putPubkey(buf, mint)
	buf = putPubkey(buf, user)
	if isBuy {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = putU64LE(buf, solAmount)
	buf = putU64LE(buf, tokenAmount)
	buf = putU64LE(buf, vSol)
	buf = putU64LE(buf, vToken)
	buf = putI64LE(buf, ts)
	return buf
}

func pumpFunCreatePayload(mint, creator, bondingCurve solana.PublicKey, name, symbol, uri string) []byte {
	buf := make([]byte, 0, 128)
	buf = append(buf, pumpFunCreateDiscriminator[:]...)
	buf = putPubkey(buf, mint)
	buf = putPubkey(buf, creator)
	buf = putPubkey(buf, bondingCurve)
	buf = putCappedString(buf, name)
	buf = putCappedString(buf, symbol)
	buf = putCappedString(buf, uri)
	return buf
}

// pumpFunCreatePayloadOversizeName builds a Create payload whose name field
// carries a length prefix above maxShortStringLen, the way a corrupt or
// hostile log line would (spec §4.2 step 5's oversize-string DecodeSkip
// case). The prefix is written on its own, with no matching body bytes,
// since readCappedString must reject on the length check before it ever
// tries to slice the body.
func pumpFunCreatePayloadOversizeName(mint, creator, bondingCurve solana.PublicKey) []byte {
	buf := make([]byte, 0, 96)
	buf = append(buf, pumpFunCreateDiscriminator[:]...)
	buf = putPubkey(buf, mint)
	buf = putPubkey(buf, creator)
	buf = putPubkey(buf, bondingCurve)
	buf = putU32LE(buf, maxShortStringLen+1)
	return buf
}

// pumpFunCreatePayloadOversizeURI is the same as above but for the uri
// field, whose cap (maxURILen) is an order of magnitude larger than the
// name/symbol cap.
func pumpFunCreatePayloadOversizeURI(mint, creator, bondingCurve solana.PublicKey, name, symbol string) []byte {
	buf := make([]byte, 0, 96+len(name)+len(symbol))
	buf = append(buf, pumpFunCreateDiscriminator[:]...)
	buf = putPubkey(buf, mint)
	buf = putPubkey(buf, creator)
	buf = putPubkey(buf, bondingCurve)
	buf = putCappedString(buf, name)
	buf = putCappedString(buf, symbol)
	buf = putU32LE(buf, maxURILen+1)
	return buf
}

func testPubkey(seed byte) solana.PublicKey {
	var pk solana.PublicKey
	for i := range pk {
		pk[i] = seed
	}
	return pk
}
