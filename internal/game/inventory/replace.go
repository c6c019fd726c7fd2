package inventory

// ReplacementKind selects how a Replacement is applied.
type ReplacementKind string

// Replacement kinds.
const (
	// ReplaceEquip moves Source into Equipped at ConflictIndex and sends the
	// conflicting item back to Source.
	ReplaceEquip ReplacementKind = "equip"
	// ReplaceViaSwap exchanges the equipped Source with the wearable Target,
	// then evicts the item at ConflictIndex into Target's collection.
	ReplaceViaSwap ReplacementKind = "swap"
)

// Replacement is the immutable description of a pending conflict resolution,
// captured at the moment the conflict was detected. Applying it re-validates
// every captured position against live state.
type Replacement struct {
	Kind          ReplacementKind `json:"kind"`
	Source        Location        `json:"source"`
	SourceItem    string          `json:"sourceItem"`
	Target        Location        `json:"target"`
	TargetItem    string          `json:"targetItem"`
	ConflictIndex int             `json:"conflictIndex"`
	ConflictItem  string          `json:"conflictItem"`
}
