package dexengine

import "github.com/gagliardetto/solana-go"

var (
	bonkTradeDiscriminator      = [8]byte{0x8a, 0x11, 0xc0, 0x42, 0x5e, 0x4d, 0x33, 0x07}
	bonkPoolCreateDiscriminator = [8]byte{0x2f, 0x6b, 0x91, 0x5a, 0xd4, 0x19, 0x77, 0xc2}
)

type BonkTradeEvent struct {
	meta EventMetadata
	genericSwapFields
}

func (e *BonkTradeEvent) Kind() EventKind     { return BonkTrade }
func (e *BonkTradeEvent) Meta() EventMetadata { return e.meta }

type BonkPoolCreateEvent struct {
	meta      EventMetadata
	Pool      solana.PublicKey
	BaseMint  solana.PublicKey
	QuoteMint solana.PublicKey
	Creator   solana.PublicKey
	Timestamp int64
}

func (e *BonkPoolCreateEvent) Kind() EventKind     { return BonkPoolCreate }
func (e *BonkPoolCreateEvent) Meta() EventMetadata { return e.meta }

func DecodeBonkLog(line []byte, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	if filter.Allows(BonkTrade) {
		if ev, ok := decodeGenericProgramDataEvent(line, bonkTradeDiscriminator, func(body []byte) (DexEvent, bool) {
			fields, _, ok := readGenericSwapFields(body)
			if !ok {
				return nil, false
			}
			return &BonkTradeEvent{meta: meta, genericSwapFields: fields}, true
		}); ok {
			return ev, true
		}
	}
	if filter.Allows(BonkPoolCreate) {
		if ev, ok := decodeGenericProgramDataEvent(line, bonkPoolCreateDiscriminator, func(body []byte) (DexEvent, bool) {
			return decodeBonkPoolCreate(body, meta)
		}); ok {
			return ev, true
		}
	}
	return nil, false
}

func decodeBonkPoolCreate(b []byte, meta EventMetadata) (DexEvent, bool) {
	pool, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	baseMint, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	quoteMint, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	creator, ok := readPubkey(b)
	if !ok {
		return nil, false
	}
	b = b[32:]
	timestamp, ok := readI64LE(b)
	if !ok {
		return nil, false
	}
	return &BonkPoolCreateEvent{
		meta:      meta,
		Pool:      pool,
		BaseMint:  baseMint,
		QuoteMint: quoteMint,
		Creator:   creator,
		Timestamp: timestamp,
	}, true
}
