package dexengine

// TransactionFilter and AccountFilter are opaque configuration passed
// through to the transport unchanged (spec §3.1/§6.2); the core never
// interprets their contents.
type TransactionFilter struct {
	AccountInclude []string
	AccountExclude []string
	AccountRequire []string
}

type AccountFilter struct {
	Account []string
	Owner   []string
	Filters []string
}

// ClientConfig is spec §6.2's construction-time configuration. Presets set
// internal buffer sizes and yield thresholds, grounded on the teacher's
// env-with-fallback-default constructor idiom (spltoken/price/config.go:
// mustStableMintsFromEnv) generalized from "read a mint from env" to
// "pick a tuned default."
type ClientConfig struct {
	EnableMetrics       bool
	ConnectionTimeoutMs uint32
	UseTLS              bool

	// QueueCapacity is the DeliveryQueue's bounded size (spec §3.1: "capacity
	// >= 100,000").
	QueueCapacity int
	// ConsumerSpinPolls is the number of empty-poll spins a consumer
	// performs before yielding to the runtime (spec §4.6 hybrid wait).
	ConsumerSpinPolls int
}

// LowLatencyPreset favors a smaller queue and a longer spin budget, for
// deployments where a consumer goroutine is dedicated and CPU burn is an
// acceptable trade for lower p99 pop latency.
func LowLatencyPreset() ClientConfig {
	return ClientConfig{
		EnableMetrics:       true,
		ConnectionTimeoutMs: 5_000,
		UseTLS:              true,
		QueueCapacity:       100_000,
		ConsumerSpinPolls:   4_000,
	}
}

// HighThroughputPreset favors a larger queue and the spec-default spin
// budget (~1,000 polls), trading a little tail latency for better
// burst absorption under shared/multi-tenant consumers.
func HighThroughputPreset() ClientConfig {
	return ClientConfig{
		EnableMetrics:       true,
		ConnectionTimeoutMs: 5_000,
		UseTLS:              true,
		QueueCapacity:       500_000,
		ConsumerSpinPolls:   1_000,
	}
}

// Validate surfaces a ConfigError synchronously at construction time (spec
// §7: "invalid filter set or malformed endpoint at construction time").
func (c ClientConfig) Validate() error {
	if c.QueueCapacity <= 0 {
		return &ConfigError{Reason: "queue capacity must be positive"}
	}
	if c.ConsumerSpinPolls < 0 {
		return &ConfigError{Reason: "consumer spin polls must not be negative"}
	}
	return nil
}
