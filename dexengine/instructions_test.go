package dexengine

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestInstructionRouterDecodesPumpFunTrade(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	router := NewInstructionRouter(reg)

	data := pumpFunTradePayload(testPubkey(1), testPubkey(2), true, 10, 20, 30, 40, 50)
	ri := RawInstruction{ProgramID: reg.ProgramID(PumpFun), Data: data}

	ev, ok := router.Decode(ri, EventMetadata{}, EventTypeFilter{})
	require.True(t, ok, "expected successful decode")
	require.Equal(t, PumpFunTrade, ev.Kind())
}

func TestInstructionRouterUnknownProgramID(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	router := NewInstructionRouter(reg)

	ri := RawInstruction{ProgramID: testPubkey(0xEE), Data: []byte{1, 2, 3}}
	_, ok := router.Decode(ri, EventMetadata{}, EventTypeFilter{})
	require.False(t, ok, "expected rejection for an unregistered program id")
}

func TestInstructionRouterGenericSwapFillsAccountsWhenFieldsZero(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	router := NewInstructionRouter(reg)

	fields := genericSwapFields{
		AmountIn:     100,
		AmountOut:    200,
		TokenInMint:  testPubkey(5),
		TokenOutMint: testPubkey(6),
		Timestamp:    1,
	}
	data := genericSwapPayload(bonkTradeDiscriminator, fields, nil)
	pool, trader := testPubkey(20), testPubkey(21)
	ri := RawInstruction{
		ProgramID: reg.ProgramID(Bonk),
		Data:      data,
		Accounts:  []solana.PublicKey{pool, trader},
	}

	ev, ok := router.Decode(ri, EventMetadata{}, EventTypeFilter{})
	require.True(t, ok, "expected successful decode")
	trade, ok := ev.(*BonkTradeEvent)
	require.True(t, ok)
	require.Equal(t, pool, trade.Pool)
	require.Equal(t, trader, trade.Trader)
}

func TestInstructionRouterRejectsFilteredKind(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	router := NewInstructionRouter(reg)

	data := pumpFunTradePayload(testPubkey(1), testPubkey(2), true, 1, 2, 3, 4, 5)
	ri := RawInstruction{ProgramID: reg.ProgramID(PumpFun), Data: data}
	filter := NewExcludeFilter(PumpFunTrade)

	_, ok := router.Decode(ri, EventMetadata{}, filter)
	require.False(t, ok, "expected excluded kind to be rejected")
}
