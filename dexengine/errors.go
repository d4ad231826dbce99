package dexengine

// ConfigError is the only error class in this package that is surfaced to
// the caller (spec §7): an invalid ClientConfig (ClientConfig.Validate) or
// a malformed registry entry (NewRegistry) at construction time. Every other failure mode collapses to "no event
// produced" (DecodeSkip) and is never returned as a Go error.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "dexengine: config error: " + e.Reason
}
