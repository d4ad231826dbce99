package dexengine

import "bytes"

// decodeGenericProgramDataEvent implements the common §4.2 shape used by
// every non-PumpFun log decoder in this package: locate the marker, base64-decode
// into a per-protocol-capped stack buffer, match an 8-byte discriminator,
// and hand the remaining bytes to build. build returns the typed event or
// false on truncated/malformed input (never panics — spec §4.2 edge cases).
func decodeGenericProgramDataEvent(
	line []byte,
	disc [8]byte,
	build func(body []byte) (DexEvent, bool),
) (DexEvent, bool) {
	tail, ok := extractProgramDataTail(line)
	if !ok {
		return nil, false
	}
	var buf [genericBufCap]byte
	n, ok := decodeBase64Into(buf[:], tail)
	if !ok {
		return nil, false
	}
	payload := buf[:n]
	if len(payload) < 8 || !bytes.Equal(payload[:8], disc[:]) {
		return nil, false
	}
	return build(payload[8:])
}
