// Package dexengine decodes Solana DEX program logs and instructions into
// typed events. It has no knowledge of gRPC transport, reconnects, or
// delivery; see the orchestrator and queue packages for those.
package dexengine

import "github.com/gagliardetto/solana-go"

// ProtocolTag identifies which DEX program a log line or instruction
// belongs to.
type ProtocolTag int

const (
	Unknown ProtocolTag = iota
	PumpFun
	PumpSwap
	Bonk
	RaydiumAmmV4
	RaydiumCpmm
	RaydiumClmm
	OrcaWhirlpool
	MeteoraAmm
	MeteoraDamm
	MeteoraDlmm
)

func (t ProtocolTag) String() string {
	switch t {
	case PumpFun:
		return "PumpFun"
	case PumpSwap:
		return "PumpSwap"
	case Bonk:
		return "Bonk"
	case RaydiumAmmV4:
		return "RaydiumAmmV4"
	case RaydiumCpmm:
		return "RaydiumCpmm"
	case RaydiumClmm:
		return "RaydiumClmm"
	case OrcaWhirlpool:
		return "OrcaWhirlpool"
	case MeteoraAmm:
		return "MeteoraAmm"
	case MeteoraDamm:
		return "MeteoraDamm"
	case MeteoraDlmm:
		return "MeteoraDlmm"
	default:
		return "Unknown"
	}
}

// EventKind is the closed set of fully-qualified event kinds this engine
// can produce. Adding a protocol means adding entries here, not registering
// a handler at runtime (spec REDESIGN FLAGS: dispatcher stays branch-predictable).
type EventKind int

const (
	EventUnknown EventKind = iota
	PumpFunTrade
	PumpFunCreate
	PumpSwapSwap
	BonkTrade
	BonkPoolCreate
	RaydiumAmmV4Swap
	RaydiumCpmmSwap
	RaydiumClmmSwap
	OrcaWhirlpoolSwap
	OrcaWhirlpoolInitialize
	MeteoraAmmSwap
	MeteoraDammSwap
	MeteoraDlmmSwap
)

// protocolOf maps each EventKind to the ProtocolTag that owns it, used by
// the filter's protocol-level fast path (spec §4.4).
var protocolOf = map[EventKind]ProtocolTag{
	PumpFunTrade:            PumpFun,
	PumpFunCreate:           PumpFun,
	PumpSwapSwap:            PumpSwap,
	BonkTrade:               Bonk,
	BonkPoolCreate:          Bonk,
	RaydiumAmmV4Swap:        RaydiumAmmV4,
	RaydiumCpmmSwap:         RaydiumCpmm,
	RaydiumClmmSwap:         RaydiumClmm,
	OrcaWhirlpoolSwap:       OrcaWhirlpool,
	OrcaWhirlpoolInitialize: OrcaWhirlpool,
	MeteoraAmmSwap:          MeteoraAmm,
	MeteoraDammSwap:         MeteoraDamm,
	MeteoraDlmmSwap:         MeteoraDlmm,
}

// ProtocolOf returns the ProtocolTag that owns kind, or Unknown for
// EventUnknown. Exported for the orchestrator's single-kind fast path
// (spec §4.4), which needs to know which protocol's lines to even scan
// once the only admitted kind is known statically.
func ProtocolOf(kind EventKind) ProtocolTag {
	return protocolOf[kind]
}

// kindsByProtocol is the reverse index, used to answer "are all of this
// protocol's kinds excluded" without scanning the whole map per call.
var kindsByProtocol = func() map[ProtocolTag][]EventKind {
	m := make(map[ProtocolTag][]EventKind, len(protocolOf))
	for k, p := range protocolOf {
		m[p] = append(m[p], k)
	}
	return m
}()

// EventMetadata is carried through decoding unchanged (spec invariant 5):
// GrpcRecvUs is stamped once, by the orchestrator, before parsing begins.
type EventMetadata struct {
	Signature  solana.Signature
	Slot       uint64
	BlockTime  *int64 // unix seconds, nil if absent; never fabricated
	GrpcRecvUs int64
}

// DexEvent is the tagged union of decoded events. One concrete struct per
// EventKind implements it; payloads are flat scalars/fixed arrays only
// (spec §6.4 — no nested heap structures beyond owned, capped strings).
type DexEvent interface {
	Kind() EventKind
	Meta() EventMetadata
}

// RawInstruction is the instruction-level input to §4.3's router: a
// program ID, its instruction data, and the account keys it references.
// Borrowed for the duration of one decode call, never retained.
type RawInstruction struct {
	ProgramID solana.PublicKey
	Data      []byte
	Accounts  []solana.PublicKey
}

// RawUpdate is the transport-produced input to the orchestrator (spec
// §3.1). The engine never constructs one; apart from the orchestrator
// stamping GrpcRecvUs on receipt, it only reads from it.
type RawUpdate struct {
	Slot         uint64
	Signature    solana.Signature
	BlockTime    *int64
	Logs         [][]byte
	Instructions []RawInstruction
	GrpcRecvUs   int64
}
