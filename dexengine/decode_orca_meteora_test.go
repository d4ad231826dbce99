package dexengine

import "testing"

func TestDecodeOrcaWhirlpoolLogSwap(t *testing.T) {
	fields := sampleSwapFields()
	extra := make([]byte, 0, 24)
	extra = putU64LE(extra, 123456)
	extra = putI64LE(extra, -5)
	extra = putU64LE(extra, 9999)
	line := programDataLine(genericSwapPayload(orcaWhirlpoolSwapDiscriminator, fields, extra))

	ev, ok := DecodeOrcaWhirlpoolLog(line, EventMetadata{}, EventTypeFilter{})
	if !ok {
		t.Fatalf("expected successful decode")
	}
	swap := ev.(*OrcaWhirlpoolSwapEvent)
	if swap.SqrtPrice != 123456 || swap.TickCurrent != -5 || swap.Liquidity != 9999 {
		t.Fatalf("unexpected fields: %+v", swap)
	}
}

func TestDecodeOrcaWhirlpoolLogInitialize(t *testing.T) {
	whirlpool, mintA, mintB := testPubkey(1), testPubkey(2), testPubkey(3)
	buf := make([]byte, 0, 8+32*3+4+8)
	buf = append(buf, orcaWhirlpoolInitializeDiscriminator[:]...)
	buf = putPubkey(buf, whirlpool)
	buf = putPubkey(buf, mintA)
	buf = putPubkey(buf, mintB)
	buf = putU32LE(buf, 64)
	buf = putI64LE(buf, 1_600_000_000)
	line := programDataLine(buf)

	ev, ok := DecodeOrcaWhirlpoolLog(line, EventMetadata{}, EventTypeFilter{})
	if !ok {
		t.Fatalf("expected successful decode")
	}
	init := ev.(*OrcaWhirlpoolInitializeEvent)
	if init.Whirlpool != whirlpool || init.TokenMintA != mintA || init.TokenMintB != mintB || init.TickSpacing != 64 {
		t.Fatalf("unexpected fields: %+v", init)
	}
}

func TestDecodeOrcaWhirlpoolLogFilterExcludesSwapButAllowsInitialize(t *testing.T) {
	whirlpool := testPubkey(1)
	buf := make([]byte, 0, 8+32*3+4+8)
	buf = append(buf, orcaWhirlpoolInitializeDiscriminator[:]...)
	buf = putPubkey(buf, whirlpool)
	buf = putPubkey(buf, testPubkey(2))
	buf = putPubkey(buf, testPubkey(3))
	buf = putU32LE(buf, 64)
	buf = putI64LE(buf, 1)
	line := programDataLine(buf)

	filter := NewExcludeFilter(OrcaWhirlpoolSwap)
	ev, ok := DecodeOrcaWhirlpoolLog(line, EventMetadata{}, filter)
	if !ok || ev.Kind() != OrcaWhirlpoolInitialize {
		t.Fatalf("expected Initialize to still decode when only Swap is excluded")
	}
}

func TestDecodeMeteoraDlmmLogAddsBinFields(t *testing.T) {
	fields := sampleSwapFields()
	extra := make([]byte, 0, 8)
	extra = putU32LE(extra, 25)
	extra = putU32LE(extra, uint32(int32(-100)))
	line := programDataLine(genericSwapPayload(meteoraDlmmSwapDiscriminator, fields, extra))

	ev, ok := DecodeMeteoraDlmmLog(line, EventMetadata{}, EventTypeFilter{})
	if !ok {
		t.Fatalf("expected successful decode")
	}
	dlmm := ev.(*MeteoraDlmmSwapEvent)
	if dlmm.BinStep != 25 || dlmm.ActiveID != -100 {
		t.Fatalf("unexpected fields: %+v", dlmm)
	}
}

func TestDecodeMeteoraAmmAndDammRoundTrip(t *testing.T) {
	fields := sampleSwapFields()

	ammLine := programDataLine(genericSwapPayload(meteoraAmmSwapDiscriminator, fields, nil))
	if ev, ok := DecodeMeteoraAmmLog(ammLine, EventMetadata{}, EventTypeFilter{}); !ok || ev.Kind() != MeteoraAmmSwap {
		t.Fatalf("expected MeteoraAmmSwap")
	}

	dammLine := programDataLine(genericSwapPayload(meteoraDammSwapDiscriminator, fields, nil))
	if ev, ok := DecodeMeteoraDammLog(dammLine, EventMetadata{}, EventTypeFilter{}); !ok || ev.Kind() != MeteoraDammSwap {
		t.Fatalf("expected MeteoraDammSwap")
	}
}
