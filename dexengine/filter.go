package dexengine

// filterMode distinguishes the two mutually exclusive EventTypeFilter forms
// (spec §3.1, Open Question resolved in §9: the source never defined what
// happens if both are set, so this implementation makes the two forms
// impossible to combine by construction).
type filterMode int

const (
	filterNone filterMode = iota
	filterIncludeOnly
	filterExclude
)

// EventTypeFilter is the cheap predicate from spec §4.4. The zero value
// (filterNone) allows everything, matching "None/absent: always allowed."
type EventTypeFilter struct {
	mode filterMode
	set  map[EventKind]struct{}
}

// NewIncludeOnlyFilter allows only the given kinds.
func NewIncludeOnlyFilter(kinds ...EventKind) EventTypeFilter {
	return EventTypeFilter{mode: filterIncludeOnly, set: toSet(kinds)}
}

// NewExcludeFilter allows everything except the given kinds.
func NewExcludeFilter(kinds ...EventKind) EventTypeFilter {
	return EventTypeFilter{mode: filterExclude, set: toSet(kinds)}
}

func toSet(kinds []EventKind) map[EventKind]struct{} {
	set := make(map[EventKind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}

// Allows reports whether kind may be enqueued under this filter (invariant 4).
func (f EventTypeFilter) Allows(kind EventKind) bool {
	switch f.mode {
	case filterIncludeOnly:
		_, ok := f.set[kind]
		return ok
	case filterExclude:
		_, excluded := f.set[kind]
		return !excluded
	default:
		return true
	}
}

// AllowsProtocol reports whether any EventKind belonging to tag could still
// pass this filter. The orchestrator uses this to skip §4.2 decoding
// entirely when every kind of a classified protocol is already excluded
// (spec §4.4's "consulted before expensive decoding" constraint).
func (f EventTypeFilter) AllowsProtocol(tag ProtocolTag) bool {
	kinds := kindsByProtocol[tag]
	if len(kinds) == 0 {
		return f.mode != filterIncludeOnly
	}
	for _, k := range kinds {
		if f.Allows(k) {
			return true
		}
	}
	return false
}

// SingleKindFastPath reports the lone EventKind this filter admits, if
// IncludeOnly holds exactly one kind. The orchestrator uses this to skip
// discriminator lookup in the decoder when the kind is already known
// statically (spec §4.4 fast path).
func (f EventTypeFilter) SingleKindFastPath() (EventKind, bool) {
	if f.mode != filterIncludeOnly || len(f.set) != 1 {
		return EventUnknown, false
	}
	for k := range f.set {
		return k, true
	}
	return EventUnknown, false
}
