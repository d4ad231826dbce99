package dexengine

import (
	"bytes"

	"github.com/gagliardetto/solana-go"
)

// instructionDecoder decodes one protocol's instruction payload. accounts
// is the instruction's resolved account key list; per spec §4.3's
// out-of-scope note, full account *resolution* for non-hot protocols is a
// transport/indexer concern — this router only reads the handful of
// positional accounts (pool, trader) a swap instruction always carries.
type instructionDecoder func(data []byte, accounts []solana.PublicKey, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool)

// InstructionRouter implements spec §4.3: dispatch on a 32-byte program ID
// via direct equality against the compile-time registry, never base58.
type InstructionRouter struct {
	reg      *Registry
	decoders map[ProtocolTag]instructionDecoder
}

func NewInstructionRouter(reg *Registry) *InstructionRouter {
	return &InstructionRouter{
		reg: reg,
		decoders: map[ProtocolTag]instructionDecoder{
			PumpFun:       decodePumpFunInstruction,
			PumpSwap:      decodeInstructionSwap(pumpSwapSwapDiscriminator, func(f genericSwapFields, m EventMetadata) DexEvent { return &PumpSwapSwapEvent{meta: m, genericSwapFields: f} }, PumpSwapSwap),
			Bonk:          decodeInstructionSwap(bonkTradeDiscriminator, func(f genericSwapFields, m EventMetadata) DexEvent { return &BonkTradeEvent{meta: m, genericSwapFields: f} }, BonkTrade),
			RaydiumAmmV4:  decodeInstructionSwap(raydiumAmmV4SwapDiscriminator, func(f genericSwapFields, m EventMetadata) DexEvent { return &RaydiumAmmV4SwapEvent{meta: m, genericSwapFields: f} }, RaydiumAmmV4Swap),
			RaydiumCpmm:   decodeInstructionSwap(raydiumCpmmSwapDiscriminator, func(f genericSwapFields, m EventMetadata) DexEvent { return &RaydiumCpmmSwapEvent{meta: m, genericSwapFields: f} }, RaydiumCpmmSwap),
			RaydiumClmm:   decodeInstructionSwap(raydiumClmmSwapDiscriminator, func(f genericSwapFields, m EventMetadata) DexEvent { return &RaydiumClmmSwapEvent{meta: m, genericSwapFields: f} }, RaydiumClmmSwap),
			OrcaWhirlpool: decodeInstructionSwap(orcaWhirlpoolSwapDiscriminator, func(f genericSwapFields, m EventMetadata) DexEvent { return &OrcaWhirlpoolSwapEvent{meta: m, genericSwapFields: f} }, OrcaWhirlpoolSwap),
			MeteoraAmm:    decodeInstructionSwap(meteoraAmmSwapDiscriminator, func(f genericSwapFields, m EventMetadata) DexEvent { return &MeteoraAmmSwapEvent{meta: m, genericSwapFields: f} }, MeteoraAmmSwap),
			MeteoraDamm:   decodeInstructionSwap(meteoraDammSwapDiscriminator, func(f genericSwapFields, m EventMetadata) DexEvent { return &MeteoraDammSwapEvent{meta: m, genericSwapFields: f} }, MeteoraDammSwap),
			MeteoraDlmm:   decodeInstructionSwap(meteoraDlmmSwapDiscriminator, func(f genericSwapFields, m EventMetadata) DexEvent { return &MeteoraDlmmSwapEvent{meta: m, genericSwapFields: f} }, MeteoraDlmmSwap),
		},
	}
}

// Decode dispatches a RawInstruction to its protocol decoder. Unknown
// program IDs and malformed data both collapse to (nil, false) — §4.3's
// failure semantics, no retries, no logging beyond an optional counter.
func (r *InstructionRouter) Decode(ri RawInstruction, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	tag := r.reg.ProtocolForID(ri.ProgramID)
	if tag == Unknown {
		return nil, false
	}
	dec, ok := r.decoders[tag]
	if !ok {
		return nil, false
	}
	return dec(ri.Data, ri.Accounts, meta, filter)
}

// decodeInstructionSwap builds an instructionDecoder for the common
// generic-swap-fields layout shared by every protocol but PumpFun's hot
// path (which keeps its own decoder below for the stack-buffer contract).
func decodeInstructionSwap(disc [8]byte, build func(genericSwapFields, EventMetadata) DexEvent, kind EventKind) instructionDecoder {
	return func(data []byte, accounts []solana.PublicKey, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
		if !filter.Allows(kind) {
			return nil, false
		}
		if len(data) < 8 || !bytes.Equal(data[:8], disc[:]) {
			return nil, false
		}
		fields, _, ok := readGenericSwapFields(data[8:])
		if !ok {
			return nil, false
		}
		if fields.Pool == (solana.PublicKey{}) && len(accounts) > 0 {
			fields.Pool = accounts[0]
		}
		if fields.Trader == (solana.PublicKey{}) && len(accounts) > 1 {
			fields.Trader = accounts[1]
		}
		return build(fields, meta), true
	}
}

// decodePumpFunInstruction keeps the PumpFun Trade/Create field layout
// (the zero-copy stack buffer rule of invariant 3 binds the log-line path;
// the instruction path reuses the same reader functions without a base64
// step since instruction data arrives already decoded).
func decodePumpFunInstruction(data []byte, accounts []solana.PublicKey, meta EventMetadata, filter EventTypeFilter) (DexEvent, bool) {
	if len(data) < 8 {
		return nil, false
	}
	switch {
	case bytes.Equal(data[:8], pumpFunTradeDiscriminator[:]):
		if !filter.Allows(PumpFunTrade) {
			return nil, false
		}
		return decodePumpFunTrade(data[8:], meta, false)
	case bytes.Equal(data[:8], pumpFunCreateDiscriminator[:]):
		if !filter.Allows(PumpFunCreate) {
			return nil, false
		}
		return decodePumpFunCreate(data[8:], meta)
	default:
		return nil, false
	}
}
