package dexengine

import "github.com/gagliardetto/solana-go"

var (
	orcaWhirlpoolSwapDiscriminator       = [8]byte{0xf8, 0x1e, 0x3c, 0x6d, 0x22, 0x5b, 0x70, 0x94}
	orcaWhirlpoolInitializeDiscriminator = [8]byte{0x3d, 0xa5, 0x0c, 0x11, 0x8e, 0x49, 0x2f, 0x06}
)

// OrcaWhirlpoolSwapEvent's field naming for sqrt price / tick / liquidity
// is grounded on other_examples' orcaWhirlpool.go protocol layout.
type OrcaWhirlpoolSwapEvent struct {
	meta EventMetadata
	genericSwapFields
	SqrtPrice   uint64
	TickCurrent int64
	Liquidity   uint64
}

func (e *OrcaWhirlpoolSwapEvent) Kind() EventKind     { return OrcaWhirlpoolSwap }
func (e *OrcaWhirlpoolSwapEvent) Meta() EventMetadata { return e.meta }

type OrcaWhirlpoolInitializeEvent struct {
	meta      EventMetadata
	Whirlpool solana.PublicKey
	TokenMintA solana.PublicKey
	TokenMintB solana.PublicKey
	TickSpacing uint32
	Timestamp int64
}

func (e *OrcaWhirlpoolInitializeEvent) Kind() EventKind     { return OrcaWhirlpoolInitialize }
func (e *OrcaWhirlpoolInitializeEvent) Meta() EventMetadata { return e.meta }

func DecodeOrcaWhirlpoolLog(line []byte, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	if filter.Allows(OrcaWhirlpoolSwap) {
		if ev, ok := decodeGenericProgramDataEvent(line, orcaWhirlpoolSwapDiscriminator, func(body []byte) (DexEvent, bool) {
			fields, rest, ok := readGenericSwapFields(body)
			if !ok {
				return nil, false
			}
			sqrtPrice, ok := readU64LE(rest)
			if !ok {
				return nil, false
			}
			rest = rest[8:]
			tick, ok := readI64LE(rest)
			if !ok {
				return nil, false
			}
			rest = rest[8:]
			liquidity, ok := readU64LE(rest)
			if !ok {
				return nil, false
			}
			return &OrcaWhirlpoolSwapEvent{
				meta:              meta,
				genericSwapFields: fields,
				SqrtPrice:         sqrtPrice,
				TickCurrent:       tick,
				Liquidity:         liquidity,
			}, true
		}); ok {
			return ev, true
		}
	}
	if filter.Allows(OrcaWhirlpoolInitialize) {
		if ev, ok := decodeGenericProgramDataEvent(line, orcaWhirlpoolInitializeDiscriminator, func(body []byte) (DexEvent, bool) {
			return decodeOrcaWhirlpoolInitialize(body, meta)
		}); ok {
			return ev, true
		}
	}
	return nil, false
}

func decodeOrcaWhirlpoolInitialize(b []byte, meta EventMetadata) (DexEvent, bool) {
	whirlpool, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	mintA, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	mintB, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	tickSpacing, ok := readU32LE(b)
	if !ok {
		return nil, false
	}
	b = b[4:]
	timestamp, ok := readI64LE(b)
	if !ok {
		return nil, false
	}
	return &OrcaWhirlpoolInitializeEvent{
		meta:        meta,
		Whirlpool:   whirlpool,
		TokenMintA:  mintA,
		TokenMintB:  mintB,
		TickSpacing: tickSpacing,
		Timestamp:   timestamp,
	}, true
}
