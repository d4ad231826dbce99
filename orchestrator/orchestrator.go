package orchestrator

import (
	"bytes"
	"context"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/P-HOW/solana-dex-engine/dexengine"
	"github.com/P-HOW/solana-dex-engine/queue"
)

// reconnectMaxElapsed bounds how long one reconnect keeps retrying Connect
// with exponential backoff, per spec §4.7 ("capped exponential backoff,
// 30s ceiling"), grounded on steveyegge-beads' newEmbeddedOpenBackoff
// (steveyegge-beads/internal/storage/dolt/store_embedded.go): a fresh
// backoff.BackOff per reconnect, MaxElapsedTime set, nothing fancier.
const reconnectMaxElapsed = 30 * time.Second

// Orchestrator drives one Transport end to end: receive, classify, decode,
// filter, correlate, and enqueue, reconnecting on transport failure without
// ever blocking a producer on a full queue (spec §4.6/§4.7).
type Orchestrator struct {
	transport   Transport
	reg         *dexengine.Registry
	instrRouter *dexengine.InstructionRouter
	filter      dexengine.EventTypeFilter
	q           *queue.Queue[dexengine.DexEvent]
	log         *logrus.Logger

	decodeSkipped atomic.Uint64
}

// New builds an Orchestrator. filter may be replaced later via
// SetFilter; reg and q are fixed for the orchestrator's lifetime.
func New(transport Transport, reg *dexengine.Registry, filter dexengine.EventTypeFilter, q *queue.Queue[dexengine.DexEvent], log *logrus.Logger) *Orchestrator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Orchestrator{
		transport:   transport,
		reg:         reg,
		instrRouter: dexengine.NewInstructionRouter(reg),
		filter:      filter,
		q:           q,
		log:         log,
	}
}

// SetFilter swaps the active EventTypeFilter. Safe to call only between
// Run invocations or from the same goroutine driving Run; the filter is
// read, not synchronized, on the hot path (spec §4.4 assumes a single
// consumer of filter state per orchestrator instance).
func (o *Orchestrator) SetFilter(filter dexengine.EventTypeFilter) {
	o.filter = filter
}

// DecodeSkipped returns the running count of "Program data: " lines
// attributed to a protocol that did not decode, plus instructions that did
// not decode (malformed payloads, filtered-out kinds that still required a
// discriminator check). Spec §7's decode-failure counter.
func (o *Orchestrator) DecodeSkipped() uint64 {
	return o.decodeSkipped.Load()
}

// UpdateSubscription pushes a new filter set to the live transport (spec
// §4.7). It does not touch the local EventTypeFilter; that is a separate
// axis (what to decode) from the transport's (what to stream).
func (o *Orchestrator) UpdateSubscription(tx dexengine.TransactionFilter, acct dexengine.AccountFilter) error {
	return o.transport.UpdateFilters(tx, acct)
}

// Run connects, then loops receiving updates until ctx is done or a
// (re)connect fails. It returns nil on clean shutdown and a non-nil error
// only when connecting fails: either ctx is cancelled while connecting, or
// Connect keeps failing for reconnectMaxElapsed.
func (o *Orchestrator) Run(ctx context.Context) error {
	if err := o.connectWithBackoff(ctx); err != nil {
		return err
	}
	defer o.transport.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		update, err := o.transport.Recv(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			o.log.WithError(err).Warn("orchestrator: transport recv failed, reconnecting")
			if rerr := o.connectWithBackoff(ctx); rerr != nil {
				return rerr
			}
			continue
		}

		// Stamp as early as possible after the transport hands the update
		// back (spec invariant 5: GrpcRecvUs is set once, here, and never
		// touched again downstream).
		update.GrpcRecvUs = time.Now().UnixMicro()
		o.handleUpdate(update)
	}
}

func (o *Orchestrator) connectWithBackoff(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = reconnectMaxElapsed
	bctx := backoff.WithContext(bo, ctx)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := o.transport.Connect(ctx)
		if err != nil {
			o.log.WithFields(logrus.Fields{
				"attempt": attempt,
				"error":   err,
			}).Warn("orchestrator: connect attempt failed")
		}
		return err
	}, bctx)
}

func (o *Orchestrator) handleUpdate(update *dexengine.RawUpdate) {
	meta := dexengine.EventMetadata{
		Signature:  update.Signature,
		Slot:       update.Slot,
		BlockTime:  update.BlockTime,
		GrpcRecvUs: update.GrpcRecvUs,
	}

	forcedKind, hasFastPath := o.filter.SingleKindFastPath()
	var fastProtocol dexengine.ProtocolTag
	if hasFastPath {
		fastProtocol = dexengine.ProtocolOf(forcedKind)
	}

	isCreatedBuy := dexengine.DetectPumpFunCreateThenBuy(update.Logs)

	// A "Program data: " line carries no program ID of its own; it is
	// attributed to the protocol of the most recent line that classified
	// (normally that program's "Program <id> invoke" line).
	current := dexengine.Unknown
	for _, line := range update.Logs {
		if tag := o.reg.ClassifyLog(line); tag != dexengine.Unknown {
			current = tag
		}
		if current == dexengine.Unknown || !bytes.Contains(line, []byte("Program data: ")) {
			continue
		}
		tag := current
		if !o.filter.AllowsProtocol(tag) {
			continue
		}

		forced := dexengine.EventUnknown
		if hasFastPath && tag == fastProtocol {
			forced = forcedKind
		}

		ev, ok := o.decodeLog(tag, line, meta, isCreatedBuy, forced)
		if !ok {
			o.decodeSkipped.Add(1)
			continue
		}
		o.q.Push(ev)
	}

	for _, ins := range update.Instructions {
		ev, ok := o.instrRouter.Decode(ins, meta, o.filter)
		if !ok {
			o.decodeSkipped.Add(1)
			continue
		}
		o.q.Push(ev)
	}
}

// decodeLog dispatches one classified line to its protocol decoder (spec
// §4.2). PumpFun alone threads isCreatedBuy/forced through to its decoder;
// every other protocol's decoder takes the uniform (line, meta, filter)
// shape.
func (o *Orchestrator) decodeLog(tag dexengine.ProtocolTag, line []byte, meta dexengine.EventMetadata, isCreatedBuy bool, forced dexengine.EventKind) (dexengine.DexEvent, bool) {
	switch tag {
	case dexengine.PumpFun:
		return dexengine.DecodePumpFunLog(line, meta, o.filter, isCreatedBuy, forced)
	case dexengine.PumpSwap:
		return dexengine.DecodePumpSwapLog(line, meta, o.filter)
	case dexengine.Bonk:
		return dexengine.DecodeBonkLog(line, meta, o.filter)
	case dexengine.RaydiumAmmV4:
		return dexengine.DecodeRaydiumAmmV4Log(line, meta, o.filter)
	case dexengine.RaydiumCpmm:
		return dexengine.DecodeRaydiumCpmmLog(line, meta, o.filter)
	case dexengine.RaydiumClmm:
		return dexengine.DecodeRaydiumClmmLog(line, meta, o.filter)
	case dexengine.OrcaWhirlpool:
		return dexengine.DecodeOrcaWhirlpoolLog(line, meta, o.filter)
	case dexengine.MeteoraAmm:
		return dexengine.DecodeMeteoraAmmLog(line, meta, o.filter)
	case dexengine.MeteoraDamm:
		return dexengine.DecodeMeteoraDammLog(line, meta, o.filter)
	case dexengine.MeteoraDlmm:
		return dexengine.DecodeMeteoraDlmmLog(line, meta, o.filter)
	default:
		return nil, false
	}
}
