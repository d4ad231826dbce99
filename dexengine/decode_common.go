package dexengine

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

// programDataMarker is the exact byte sequence spec §4.2 step 1 looks for.
var programDataMarker = []byte("Program data: ")

// maxShortStringLen / maxURILen enforce spec §4.2 step 5's caps.
const (
	maxShortStringLen = 256
	maxURILen         = 4096
)

// pumpFunBufCap is the PumpFun hot-path stack buffer size (spec invariant 3:
// >= 512 bytes, never heap-allocated for this path).
const pumpFunBufCap = 512

// genericBufCap is the per-protocol cap used by every other decoder (spec
// §4.2: "per-protocol caps otherwise, never unbounded").
const genericBufCap = 1024

// extractProgramDataTail locates "Program data: " and returns the trimmed
// tail bytes (to end of line), or false if the marker is absent. Leading
// and trailing whitespace on the tail is ignored, matching spec §8.1's
// round-trip property.
func extractProgramDataTail(line []byte) ([]byte, bool) {
	idx := bytes.Index(line, programDataMarker)
	if idx < 0 {
		return nil, false
	}
	tail := line[idx+len(programDataMarker):]
	if nl := bytes.IndexByte(tail, '\n'); nl >= 0 {
		tail = tail[:nl]
	}
	tail = bytes.TrimSpace(tail)
	if len(tail) == 0 {
		return nil, false
	}
	return tail, true
}

// decodeBase64Into base64-decodes src into buf (a fixed-capacity stack
// array view), returning the decoded length. It never allocates: buf is
// sized by the caller and decoding fails closed if the payload would
// overflow it (spec §4.2 step 3).
func decodeBase64Into(buf []byte, src []byte) (int, bool) {
	enc := base64.StdEncoding
	declen := enc.DecodedLen(len(src))
	if declen > len(buf) {
		return 0, false
	}
	n, err := enc.Decode(buf[:declen], src)
	if err != nil {
		return 0, false
	}
	return n, true
}

// readU64LE / readI64LE / readU32LE read fixed-offset little-endian
// scalars (spec §4.2: "all on-chain integers are little-endian").
func readU64LE(b []byte) (uint64, bool) {
	if len(b) < 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b[:8]), true
}

func readI64LE(b []byte) (int64, bool) {
	v, ok := readU64LE(b)
	return int64(v), ok
}

func readU32LE(b []byte) (uint32, bool) {
	if len(b) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b[:4]), true
}

func readBool(b []byte) (bool, bool) {
	if len(b) < 1 {
		return false, false
	}
	return b[0] != 0, true
}

func readPubkey(b []byte) (solana.PublicKey, bool) {
	if len(b) < 32 {
		return solana.PublicKey{}, false
	}
	var pk solana.PublicKey
	copy(pk[:], b[:32])
	return pk, true
}

// genericSwapFields is the field layout shared by the non-hot-path AMM
// swap decoders (PumpSwap, Bonk, Raydium, Orca, Meteora): pool, trader,
// in/out amounts, in/out mints, timestamp. Protocol-specific decoders read
// this block first, then any extra fields their program appends (spec
// §4.2 step 5: fixed-offset fields after the shared prefix).
type genericSwapFields struct {
	Pool         solana.PublicKey
	Trader       solana.PublicKey
	AmountIn     uint64
	AmountOut    uint64
	TokenInMint  solana.PublicKey
	TokenOutMint solana.PublicKey
	Timestamp    int64
}

const genericSwapFieldsSize = 32 + 32 + 8 + 8 + 32 + 32 + 8

func readGenericSwapFields(b []byte) (genericSwapFields, []byte, bool) {
	var f genericSwapFields
	if len(b) < genericSwapFieldsSize {
		return f, nil, false
	}
	f.Pool, _ = readPubkey(b)
	b = b[32:]
	f.Trader, _ = readPubkey(b)
	b = b[32:]
	f.AmountIn, _ = readU64LE(b)
	b = b[8:]
	f.AmountOut, _ = readU64LE(b)
	b = b[8:]
	f.TokenInMint, _ = readPubkey(b)
	b = b[32:]
	f.TokenOutMint, _ = readPubkey(b)
	b = b[32:]
	f.Timestamp, _ = readI64LE(b)
	b = b[8:]
	return f, b, true
}

// readCappedString reads a u32 length-prefixed UTF-8 string and enforces
// cap (spec §4.2 step 5: reject > 256 for short strings, > 4096 for URIs).
// It returns the string, the number of bytes consumed, and ok.
func readCappedString(b []byte, cap int) (string, int, bool) {
	length, ok := readU32LE(b)
	if !ok {
		return "", 0, false
	}
	n := int(length)
	if n < 0 || n > cap {
		return "", 0, false
	}
	if len(b) < 4+n {
		return "", 0, false
	}
	return string(b[4 : 4+n]), 4 + n, true
}
