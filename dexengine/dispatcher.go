package dexengine

import (
	"bytes"
	"encoding/binary"
)

// ClassifyLog returns the ProtocolTag for one log line (spec §4.1). It
// never fails: Unknown is returned when no marker matches. Scanning is
// stateless and deterministic — the same line always classifies the same
// way, and nested invocations within one line are resolved by priority
// order, not position (spec §4.1 tie-break rule).
func (r *Registry) ClassifyLog(line []byte) ProtocolTag {
	for _, tag := range dispatchOrder {
		if containsMarker(line, r.markers[tag]) {
			return tag
		}
	}
	return Unknown
}

// containsMarker reports whether needle occurs in haystack. The inner
// comparison widens to 8-byte words via encoding/binary (a software
// "SIMD lane" substitute — true SSE2/AVX2 intrinsics require cgo or
// assembly and are unavailable to portable Go; see DESIGN.md), so a
// candidate match is rejected in O(n/8) word compares instead of O(n)
// byte compares.
func containsMarker(haystack, needle []byte) bool {
	n := len(needle)
	if n == 0 || len(haystack) < n {
		return false
	}
	first := needle[0]
	limit := len(haystack) - n
	for i := 0; i <= limit; {
		rel := bytes.IndexByte(haystack[i:limit+1], first)
		if rel < 0 {
			return false
		}
		i += rel
		if wordsEqual(haystack[i:i+n], needle) {
			return true
		}
		i++
	}
	return false
}

// wordsEqual compares two equal-length slices 8 bytes at a time.
func wordsEqual(a, b []byte) bool {
	n := len(b)
	w := 0
	for ; w+8 <= n; w += 8 {
		if binary.LittleEndian.Uint64(a[w:w+8:w+8]) != binary.LittleEndian.Uint64(b[w:w+8:w+8]) {
			return false
		}
	}
	return bytes.Equal(a[w:n], b[w:n])
}
