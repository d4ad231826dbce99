package dexengine

var (
	raydiumAmmV4SwapDiscriminator = [8]byte{0x09, 0x6a, 0xc6, 0x7f, 0x2f, 0x1a, 0x3e, 0x55}
	raydiumCpmmSwapDiscriminator  = [8]byte{0xbc, 0x42, 0x7b, 0x0f, 0x58, 0x2d, 0x91, 0xa3}
	raydiumClmmSwapDiscriminator  = [8]byte{0x7f, 0x46, 0x0e, 0x62, 0x84, 0xd0, 0x99, 0x11}
)

type RaydiumAmmV4SwapEvent struct {
	meta EventMetadata
	genericSwapFields
}

func (e *RaydiumAmmV4SwapEvent) Kind() EventKind     { return RaydiumAmmV4Swap }
func (e *RaydiumAmmV4SwapEvent) Meta() EventMetadata { return e.meta }

type RaydiumCpmmSwapEvent struct {
	meta EventMetadata
	genericSwapFields
}

func (e *RaydiumCpmmSwapEvent) Kind() EventKind     { return RaydiumCpmmSwap }
func (e *RaydiumCpmmSwapEvent) Meta() EventMetadata { return e.meta }

// RaydiumClmmSwapEvent adds the concentrated-liquidity fields the V4/CPMM
// pools don't carry (spec §4.2 step 5: fixed-offset fields after the
// shared prefix, per protocol).
type RaydiumClmmSwapEvent struct {
	meta EventMetadata
	genericSwapFields
	SqrtPriceX64 uint64
	Liquidity    uint64
	TickCurrent  int64
}

func (e *RaydiumClmmSwapEvent) Kind() EventKind     { return RaydiumClmmSwap }
func (e *RaydiumClmmSwapEvent) Meta() EventMetadata { return e.meta }

func DecodeRaydiumAmmV4Log(line []byte, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	if !filter.Allows(RaydiumAmmV4Swap) {
		return nil, false
	}
	return decodeGenericProgramDataEvent(line, raydiumAmmV4SwapDiscriminator, func(body []byte) (DexEvent, bool) {
		fields, _, ok := readGenericSwapFields(body)
		if !ok {
			return nil, false
		}
		return &RaydiumAmmV4SwapEvent{meta: meta, genericSwapFields: fields}, true
	})
}

func DecodeRaydiumCpmmLog(line []byte, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	if !filter.Allows(RaydiumCpmmSwap) {
		return nil, false
	}
	return decodeGenericProgramDataEvent(line, raydiumCpmmSwapDiscriminator, func(body []byte) (DexEvent, bool) {
		fields, _, ok := readGenericSwapFields(body)
		if !ok {
			return nil, false
		}
		return &RaydiumCpmmSwapEvent{meta: meta, genericSwapFields: fields}, true
	})
}

func DecodeRaydiumClmmLog(line []byte, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	if !filter.Allows(RaydiumClmmSwap) {
		return nil, false
	}
	return decodeGenericProgramDataEvent(line, raydiumClmmSwapDiscriminator, func(body []byte) (DexEvent, bool) {
		fields, rest, ok := readGenericSwapFields(body)
		if !ok {
			return nil, false
		}
		sqrtPrice, ok := readU64LE(rest)
		if !ok {
			return nil, false
		}
		rest = rest[8:]
		liquidity, ok := readU64LE(rest)
		if !ok {
			return nil, false
		}
		rest = rest[8:]
		tick, ok := readI64LE(rest)
		if !ok {
			return nil, false
		}
		return &RaydiumClmmSwapEvent{
			meta:               meta,
			genericSwapFields:  fields,
			SqrtPriceX64:       sqrtPrice,
			Liquidity:          liquidity,
			TickCurrent:        tick,
		}, true
	})
}
