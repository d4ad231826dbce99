// Command dexstream wires a Transport, Registry, EventTypeFilter, and
// delivery Queue into a running Orchestrator and logs every decoded event.
// The Transport here is an in-memory generator standing in for a real
// Yellowstone gRPC client, which sits outside this repo's scope.
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/P-HOW/solana-dex-engine/dexengine"
	"github.com/P-HOW/solana-dex-engine/orchestrator"
	"github.com/P-HOW/solana-dex-engine/queue"
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	return log
}

func envOrDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func main() {
	log := newLogger()

	preset := envOrDefault("DEXSTREAM_PRESET", "high-throughput")
	cfg := dexengine.HighThroughputPreset()
	if preset == "low-latency" {
		cfg = dexengine.LowLatencyPreset()
	}
	if v := strings.TrimSpace(os.Getenv("DEXSTREAM_QUEUE_CAPACITY")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.QueueCapacity = n
		}
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid client config")
	}

	reg, err := dexengine.NewRegistry()
	if err != nil {
		log.WithError(err).Fatal("failed to build program-id registry")
	}

	filter := dexengine.EventTypeFilter{}
	if v := strings.TrimSpace(os.Getenv("DEXSTREAM_INCLUDE_ONLY")); v != "" {
		filter = dexengine.NewIncludeOnlyFilter(parseKinds(v)...)
	}

	q := queue.New[dexengine.DexEvent](cfg.QueueCapacity)
	transport := newStubTransport()
	orch := orchestrator.New(transport, reg, filter, q, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go consumeAndLog(ctx, q, log, cfg.ConsumerSpinPolls)

	log.WithFields(logrus.Fields{
		"preset":         preset,
		"queue_capacity": q.Cap(),
	}).Info("dexstream starting")

	if err := orch.Run(ctx); err != nil {
		log.WithError(err).Fatal("orchestrator exited with error")
	}
	log.WithField("decode_skipped", orch.DecodeSkipped()).Info("dexstream stopped")
}

func consumeAndLog(ctx context.Context, q *queue.Queue[dexengine.DexEvent], log *logrus.Logger, spinPolls int) {
	for {
		ev, ok := q.Pop(ctx, spinPolls)
		if !ok {
			return
		}
		meta := ev.Meta()
		log.WithFields(logrus.Fields{
			"kind":         ev.Kind(),
			"slot":         meta.Slot,
			"signature":    meta.Signature.String(),
			"recv_unix_us": meta.GrpcRecvUs,
			"decode_lag_us": time.Now().UnixMicro() - meta.GrpcRecvUs,
		}).Info("event")
	}
}

func parseKinds(csv string) []dexengine.EventKind {
	names := strings.Split(csv, ",")
	kinds := make([]dexengine.EventKind, 0, len(names))
	for _, n := range names {
		if k, ok := eventKindByName[strings.TrimSpace(n)]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

var eventKindByName = map[string]dexengine.EventKind{
	"pumpfun_trade":       dexengine.PumpFunTrade,
	"pumpfun_create":      dexengine.PumpFunCreate,
	"pumpswap_swap":       dexengine.PumpSwapSwap,
	"bonk_trade":          dexengine.BonkTrade,
	"bonk_pool_create":    dexengine.BonkPoolCreate,
	"raydium_ammv4_swap":  dexengine.RaydiumAmmV4Swap,
	"raydium_cpmm_swap":   dexengine.RaydiumCpmmSwap,
	"raydium_clmm_swap":   dexengine.RaydiumClmmSwap,
	"orca_whirlpool_swap": dexengine.OrcaWhirlpoolSwap,
	"orca_whirlpool_init": dexengine.OrcaWhirlpoolInitialize,
	"meteora_amm_swap":    dexengine.MeteoraAmmSwap,
	"meteora_damm_swap":   dexengine.MeteoraDammSwap,
	"meteora_dlmm_swap":   dexengine.MeteoraDlmmSwap,
}
