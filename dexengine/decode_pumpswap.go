package dexengine

var pumpSwapSwapDiscriminator = [8]byte{0x44, 0x9e, 0x3a, 0x5a, 0xb6, 0x2a, 0x7d, 0x91}

// PumpSwapSwapEvent is PumpSwap's AMM swap leg, decoded with the same
// fixed-offset discipline as the PumpFun hot path but without the stack
// buffer size constraint of invariant 3 (spec: "Other protocols MAY
// allocate but bounded").
type PumpSwapSwapEvent struct {
	meta EventMetadata
	genericSwapFields
}

func (e *PumpSwapSwapEvent) Kind() EventKind     { return PumpSwapSwap }
func (e *PumpSwapSwapEvent) Meta() EventMetadata { return e.meta }

func DecodePumpSwapLog(line []byte, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	if !filter.Allows(PumpSwapSwap) {
		return nil, false
	}
	return decodeGenericProgramDataEvent(line, pumpSwapSwapDiscriminator, func(body []byte) (DexEvent, bool) {
		fields, _, ok := readGenericSwapFields(body)
		if !ok {
			return nil, false
		}
		return &PumpSwapSwapEvent{meta: meta, genericSwapFields: fields}, true
	})
}
