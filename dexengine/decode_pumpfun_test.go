package dexengine

import (
	"testing"
)

func TestDecodePumpFunLogTrade(t *testing.T) {
	mint := testPubkey(1)
	user := testPubkey(2)
	line := programDataLine(pumpFunTradePayload(mint, user, true, 1_000_000, 2_000_000, 3_000_000, 4_000_000, 1_700_000_000))

	ev, ok := DecodePumpFunLog(line, EventMetadata{Slot: 7}, EventTypeFilter{}, false, EventUnknown)
	if !ok {
		t.Fatalf("expected successful decode")
	}
	trade, ok := ev.(*PumpFunTradeEvent)
	if !ok {
		t.Fatalf("expected *PumpFunTradeEvent, got %T", ev)
	}
	if trade.Mint != mint || trade.User != user {
		t.Fatalf("mint/user mismatch: %+v", trade)
	}
	if !trade.IsBuy || trade.SolAmount != 1_000_000 || trade.TokenAmount != 2_000_000 {
		t.Fatalf("unexpected fields: %+v", trade)
	}
	if trade.Meta().Slot != 7 {
		t.Fatalf("metadata not threaded through: %+v", trade.Meta())
	}
	if trade.Kind() != PumpFunTrade {
		t.Fatalf("expected PumpFunTrade kind, got %v", trade.Kind())
	}
}

func TestDecodePumpFunLogTradeCarriesCorrelationFlag(t *testing.T) {
	line := programDataLine(pumpFunTradePayload(testPubkey(1), testPubkey(2), false, 1, 2, 3, 4, 5))
	ev, ok := DecodePumpFunLog(line, EventMetadata{}, EventTypeFilter{}, true, EventUnknown)
	if !ok {
		t.Fatalf("expected successful decode")
	}
	trade := ev.(*PumpFunTradeEvent)
	if !trade.IsCreatedBuy {
		t.Fatalf("expected IsCreatedBuy to propagate from the correlation scan")
	}
}

func TestDecodePumpFunLogCreate(t *testing.T) {
	mint, creator, curve := testPubkey(1), testPubkey(2), testPubkey(3)
	line := programDataLine(pumpFunCreatePayload(mint, creator, curve, "Dogwifhat", "WIF", "https://example.com/m.json"))

	ev, ok := DecodePumpFunLog(line, EventMetadata{}, EventTypeFilter{}, false, EventUnknown)
	if !ok {
		t.Fatalf("expected successful decode")
	}
	create, ok := ev.(*PumpFunCreateEvent)
	if !ok {
		t.Fatalf("expected *PumpFunCreateEvent, got %T", ev)
	}
	if create.Name != "Dogwifhat" || create.Symbol != "WIF" || create.URI != "https://example.com/m.json" {
		t.Fatalf("unexpected string fields: %+v", create)
	}
	if create.Mint != mint || create.Creator != creator || create.BondingCurve != curve {
		t.Fatalf("unexpected key fields: %+v", create)
	}
}

func TestDecodePumpFunLogRejectsOversizeName(t *testing.T) {
	mint, creator, curve := testPubkey(1), testPubkey(2), testPubkey(3)
	line := programDataLine(pumpFunCreatePayloadOversizeName(mint, creator, curve))
	if _, ok := DecodePumpFunLog(line, EventMetadata{}, EventTypeFilter{}, false, EventUnknown); ok {
		t.Fatalf("expected rejection when the name length prefix exceeds maxShortStringLen")
	}
}

func TestDecodePumpFunLogRejectsOversizeURI(t *testing.T) {
	mint, creator, curve := testPubkey(1), testPubkey(2), testPubkey(3)
	line := programDataLine(pumpFunCreatePayloadOversizeURI(mint, creator, curve, "Dogwifhat", "WIF"))
	if _, ok := DecodePumpFunLog(line, EventMetadata{}, EventTypeFilter{}, false, EventUnknown); ok {
		t.Fatalf("expected rejection when the uri length prefix exceeds maxURILen")
	}
}

func TestDecodePumpFunLogForcedFastPathSkipsDiscriminatorCheck(t *testing.T) {
	payload := pumpFunTradePayload(testPubkey(1), testPubkey(2), true, 1, 2, 3, 4, 5)
	// Zero the discriminator: only the forced kind can make this decode.
	copy(payload[:8], make([]byte, 8))
	line := programDataLine(payload)
	ev, ok := DecodePumpFunLog(line, EventMetadata{}, EventTypeFilter{}, false, PumpFunTrade)
	if !ok || ev.Kind() != PumpFunTrade {
		t.Fatalf("expected forced fast path to decode as PumpFunTrade")
	}
}

func TestDecodePumpFunLogRespectsFilter(t *testing.T) {
	line := programDataLine(pumpFunTradePayload(testPubkey(1), testPubkey(2), true, 1, 2, 3, 4, 5))
	filter := NewExcludeFilter(PumpFunTrade)
	if _, ok := DecodePumpFunLog(line, EventMetadata{}, filter, false, EventUnknown); ok {
		t.Fatalf("expected excluded kind to be rejected")
	}
}

func TestDecodePumpFunLogRejectsMissingMarker(t *testing.T) {
	if _, ok := DecodePumpFunLog([]byte("no program data here"), EventMetadata{}, EventTypeFilter{}, false, EventUnknown); ok {
		t.Fatalf("expected rejection when the Program data marker is absent")
	}
}

func TestDecodePumpFunLogRejectsTruncatedPayload(t *testing.T) {
	full := pumpFunTradePayload(testPubkey(1), testPubkey(2), true, 1, 2, 3, 4, 5)
	truncated := full[:20]
	line := programDataLine(truncated)
	if _, ok := DecodePumpFunLog(line, EventMetadata{}, EventTypeFilter{}, false, EventUnknown); ok {
		t.Fatalf("expected rejection on truncated payload, never a panic")
	}
}

func TestDecodePumpFunLogRejectsGarbageBase64(t *testing.T) {
	line := []byte("Program data: not-valid-base64!!!")
	if _, ok := DecodePumpFunLog(line, EventMetadata{}, EventTypeFilter{}, false, EventUnknown); ok {
		t.Fatalf("expected rejection on undecodable base64")
	}
}

func TestDecodePumpFunLogRejectsUnknownDiscriminator(t *testing.T) {
	payload := append([]byte{0, 0, 0, 0, 0, 0, 0, 0}, make([]byte, 64)...)
	line := programDataLine(payload)
	if _, ok := DecodePumpFunLog(line, EventMetadata{}, EventTypeFilter{}, false, EventUnknown); ok {
		t.Fatalf("expected rejection for an unrecognized discriminator")
	}
}
