package dexengine

var (
	meteoraAmmSwapDiscriminator  = [8]byte{0x4c, 0x7a, 0x92, 0x1d, 0xf3, 0x08, 0x5b, 0x2e}
	meteoraDammSwapDiscriminator = [8]byte{0x91, 0x2e, 0x6a, 0x4f, 0xc8, 0x1d, 0x3b, 0x57}
	meteoraDlmmSwapDiscriminator = [8]byte{0xe3, 0x0b, 0x5d, 0x97, 0x2a, 0x44, 0x1f, 0x68}
)

type MeteoraAmmSwapEvent struct {
	meta EventMetadata
	genericSwapFields
}

func (e *MeteoraAmmSwapEvent) Kind() EventKind     { return MeteoraAmmSwap }
func (e *MeteoraAmmSwapEvent) Meta() EventMetadata { return e.meta }

type MeteoraDammSwapEvent struct {
	meta EventMetadata
	genericSwapFields
}

func (e *MeteoraDammSwapEvent) Kind() EventKind     { return MeteoraDammSwap }
func (e *MeteoraDammSwapEvent) Meta() EventMetadata { return e.meta }

// MeteoraDlmmSwapEvent adds the bin-step/active-id fields named in
// other_examples' meteora_dlmm.go protocol layout.
type MeteoraDlmmSwapEvent struct {
	meta EventMetadata
	genericSwapFields
	BinStep  uint32
	ActiveID int32
}

func (e *MeteoraDlmmSwapEvent) Kind() EventKind     { return MeteoraDlmmSwap }
func (e *MeteoraDlmmSwapEvent) Meta() EventMetadata { return e.meta }

func DecodeMeteoraAmmLog(line []byte, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	if !filter.Allows(MeteoraAmmSwap) {
		return nil, false
	}
	return decodeGenericProgramDataEvent(line, meteoraAmmSwapDiscriminator, func(body []byte) (DexEvent, bool) {
		fields, _, ok := readGenericSwapFields(body)
		if !ok {
			return nil, false
		}
		return &MeteoraAmmSwapEvent{meta: meta, genericSwapFields: fields}, true
	})
}

func DecodeMeteoraDammLog(line []byte, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	if !filter.Allows(MeteoraDammSwap) {
		return nil, false
	}
	return decodeGenericProgramDataEvent(line, meteoraDammSwapDiscriminator, func(body []byte) (DexEvent, bool) {
		fields, _, ok := readGenericSwapFields(body)
		if !ok {
			return nil, false
		}
		return &MeteoraDammSwapEvent{meta: meta, genericSwapFields: fields}, true
	})
}

func DecodeMeteoraDlmmLog(line []byte, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	if !filter.Allows(MeteoraDlmmSwap) {
		return nil, false
	}
	return decodeGenericProgramDataEvent(line, meteoraDlmmSwapDiscriminator, func(body []byte) (DexEvent, bool) {
		fields, rest, ok := readGenericSwapFields(body)
		if !ok {
			return nil, false
		}
		binStep, ok := readU32LE(rest)
		if !ok {
			return nil, false
		}
		rest = rest[4:]
		activeID, ok := readU32LE(rest)
		if !ok {
			return nil, false
		}
		return &MeteoraDlmmSwapEvent{
			meta:              meta,
			genericSwapFields: fields,
			BinStep:           binStep,
			ActiveID:          int32(activeID),
		}, true
	})
}
