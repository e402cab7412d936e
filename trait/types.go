package trait

// StoppingReason classifies why a trait's done flag became true. A
// non-done trait reports StoppingReasonNone.
type StoppingReason string

const (
	// StoppingReasonNone means the trait is not yet done.
	StoppingReasonNone StoppingReason = ""
	// StoppingReasonSEThreshold means se dropped below the configured
	// SE_THRESHOLD before the item cap was reached.
	StoppingReasonSEThreshold StoppingReason = "se_threshold"
	// StoppingReasonMaxItems means the trait reached MAX_ITEMS_PER_TRAIT
	// without se crossing SE_THRESHOLD.
	StoppingReasonMaxItems StoppingReason = "max_items"
)

// Snapshot is a read-only view of a TraitState's estimate, safe to copy and
// return across API boundaries.
type Snapshot struct {
	Theta          float64
	SE             float64
	ItemsCount     int
	Done           bool
	StoppingReason StoppingReason
}
