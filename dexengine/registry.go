package dexengine

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// Registry is the compile-time program-ID table from spec §6.5. Changing
// it is an API change, not a runtime registration (REDESIGN FLAGS).
type Registry struct {
	byProtocol map[ProtocolTag]solana.PublicKey
	byID       map[solana.PublicKey]ProtocolTag
	markers    map[ProtocolTag][]byte // base58 bytes, used only for log-line matching
}

// Program IDs, grounded on the teacher's RAYDIUM_V4_PROGRAM_ID /
// ORCA_PROGRAM_ID / METEORA_*_PROGRAM_ID constants (solanaswap-go/parser.go)
// and the compile-time-constant table mandated by spec §6.5/§9.
var (
	pumpFunProgramID      = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
	pumpSwapProgramID     = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")
	bonkProgramID         = solana.MustPublicKeyFromBase58("LanMV9sAd7wArD4vJFi2qDdfnVhFxYSUg6eADduJ3uj")
	raydiumAmmV4ProgramID = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")
	raydiumCpmmProgramID  = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")
	orcaWhirlpoolProgramID = solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
	meteoraAmmProgramID    = solana.MustPublicKeyFromBase58("Eo7WjKq67rjJQSZxS6z3YkapzY3eMj6Xy8X5EQVn5UaB")
	meteoraDammProgramID   = solana.MustPublicKeyFromBase58("cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG")
	meteoraDlmmProgramID   = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")
)

// raydiumClmmProgramIDBase58 is kept as a named, fallible entry rather than
// a Must* panic per spec §9's open question: the source's CLMM ID appeared
// edited to satisfy base58 length, so a bad value here fails NewRegistry
// instead of crashing at package init.
const raydiumClmmProgramIDBase58 = "CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK"

// NewRegistry builds the program-ID table. It is the one place a malformed
// program ID surfaces as a ConfigError (spec §7), at construction time.
func NewRegistry() (*Registry, error) {
	raydiumClmmProgramID, err := solana.PublicKeyFromBase58(raydiumClmmProgramIDBase58)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("invalid Raydium CLMM program id: %v", err)}
	}

	r := &Registry{
		byProtocol: map[ProtocolTag]solana.PublicKey{
			PumpFun:       pumpFunProgramID,
			PumpSwap:      pumpSwapProgramID,
			Bonk:          bonkProgramID,
			RaydiumAmmV4:  raydiumAmmV4ProgramID,
			RaydiumCpmm:   raydiumCpmmProgramID,
			RaydiumClmm:   raydiumClmmProgramID,
			OrcaWhirlpool: orcaWhirlpoolProgramID,
			MeteoraAmm:    meteoraAmmProgramID,
			MeteoraDamm:   meteoraDammProgramID,
			MeteoraDlmm:   meteoraDlmmProgramID,
		},
		byID:    make(map[solana.PublicKey]ProtocolTag, 10),
		markers: make(map[ProtocolTag][]byte, 10),
	}
	for tag, id := range r.byProtocol {
		r.byID[id] = tag
		r.markers[tag] = []byte(base58.Encode(id[:]))
	}
	return r, nil
}

// ProgramID returns the registered program ID for tag, or the zero key if
// the tag is Unknown or unregistered.
func (r *Registry) ProgramID(tag ProtocolTag) solana.PublicKey {
	return r.byProtocol[tag]
}

// ProtocolForID performs 32-byte equality lookup (spec §4.3/§9: never
// stringified base58 on this path).
func (r *Registry) ProtocolForID(id solana.PublicKey) ProtocolTag {
	if tag, ok := r.byID[id]; ok {
		return tag
	}
	return Unknown
}

// Marker returns the base58 program-ID bytes used only to recognise
// "Program <id> invoke" lines in raw logs (spec §4.1).
func (r *Registry) Marker(tag ProtocolTag) []byte {
	return r.markers[tag]
}

// dispatchOrder is the fixed priority order from spec §4.1: most frequent
// protocol first, so the common case exits the scan earliest.
var dispatchOrder = []ProtocolTag{
	PumpFun,
	PumpSwap,
	RaydiumAmmV4,
	RaydiumCpmm,
	RaydiumClmm,
	OrcaWhirlpool,
	MeteoraAmm,
	MeteoraDamm,
	MeteoraDlmm,
	Bonk,
}
