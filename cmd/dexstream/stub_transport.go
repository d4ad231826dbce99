package main

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/P-HOW/solana-dex-engine/dexengine"
)

// stubTransport synthesizes a PumpFun invoke line followed by a PumpFun
// Trade "Program data: " line every tick. It stands
// in for a real Yellowstone gRPC client, which sits outside this repo's
// scope; swap it for a real implementation of orchestrator.Transport to
// point dexstream at a live stream.
type stubTransport struct {
	ticker *time.Ticker
	slot   uint64
	mint   solana.PublicKey
	user   solana.PublicKey
}

func newStubTransport() *stubTransport {
	return &stubTransport{
		mint: solana.NewWallet().PublicKey(),
		user: solana.NewWallet().PublicKey(),
	}
}

func (s *stubTransport) Connect(ctx context.Context) error {
	s.ticker = time.NewTicker(200 * time.Millisecond)
	return nil
}

func (s *stubTransport) Recv(ctx context.Context) (*dexengine.RawUpdate, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.ticker.C:
		s.slot++
		return &dexengine.RawUpdate{
			Slot:      s.slot,
			Signature: solana.Signature{},
			Logs: [][]byte{
				[]byte("Program 6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P invoke [1]"),
				s.pumpFunTradeLog(),
			},
		}, nil
	}
}

func (s *stubTransport) UpdateFilters(tx dexengine.TransactionFilter, acct dexengine.AccountFilter) error {
	return nil
}

func (s *stubTransport) Close() error {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	return nil
}

// pumpFunTradeLog builds a well-formed "Program data: " line carrying a
// PumpFun Trade event payload, matching the field layout decode_pumpfun.go
// expects: discriminator, mint, user, isBuy, solAmount, tokenAmount,
// virtualSolReserves, virtualTokenReserves, timestamp.
func (s *stubTransport) pumpFunTradeLog() []byte {
	payload := make([]byte, 8+32+32+1+8+8+8+8+8)
	copy(payload[0:8], []byte{0xbd, 0xdb, 0x7f, 0xd3, 0x4e, 0xe6, 0x61, 0xee})
	off := 8
	copy(payload[off:off+32], s.mint[:])
	off += 32
	copy(payload[off:off+32], s.user[:])
	off += 32
	payload[off] = 1
	off++
	putU64 := func(v uint64) {
		for i := 0; i < 8; i++ {
			payload[off+i] = byte(v >> (8 * i))
		}
		off += 8
	}
	putU64(1_000_000)
	putU64(2_000_000)
	putU64(3_000_000)
	putU64(4_000_000)
	putU64(uint64(time.Now().Unix()))

	return []byte("Program data: " + base64.StdEncoding.EncodeToString(payload))
}
