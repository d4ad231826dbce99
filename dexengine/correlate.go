package dexengine

import "encoding/base64"

// pumpFunCreateMarker is the fixed base64-text prefix that a PumpFun Create
// event's discriminator (pumpFunCreateDiscriminator) always produces at the
// start of its "Program data: " payload. Only the first 10 characters are
// kept: they carry 60 of the discriminator's 64 bits, so they never depend
// on the bytes that follow it. The correlation scan therefore never needs
// to decode the payload, just find this literal byte sequence in the raw
// log text (one extra SIMD-style pass per transaction, per spec's cost note).
var pumpFunCreateMarker = []byte(base64.StdEncoding.EncodeToString(pumpFunCreateDiscriminator[:])[:10])

// DetectPumpFunCreateThenBuy reports whether a transaction's log set
// contains a PumpFun Create event, cheaply, before per-line decoding of
// that transaction's Trade events. The caller passes the result into every
// PumpFun Trade decode for the same transaction (spec §4.5: "orderings are
// not otherwise preserved between correlated events; each is published
// independently").
func DetectPumpFunCreateThenBuy(logs [][]byte) bool {
	for _, line := range logs {
		if containsMarker(line, pumpFunCreateMarker) {
			return true
		}
	}
	return false
}
