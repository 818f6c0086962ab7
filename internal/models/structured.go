package models

// EntityKind identifies one of the typed span categories extracted from text.
type EntityKind string

const (
	EntityDate   EntityKind = "date"
	EntityEmail  EntityKind = "email"
	EntityAmount EntityKind = "amount"
	EntityPhone  EntityKind = "phone"
)

// EntityKinds lists all kinds in their fixed comparison order.
var EntityKinds = []EntityKind{EntityDate, EntityEmail, EntityAmount, EntityPhone}

// EntityBag maps an entity kind to the values extracted for it. Duplicates
// are retained as separate occurrences; ordering is the extraction order and
// is irrelevant for comparison.
type EntityBag map[EntityKind][]string

// Mismatch records a value whose occurrence counts differ between the two
// documents for a given kind.
type Mismatch struct {
	Kind     EntityKind `json:"kind"`
	Value    string     `json:"value"`
	CountInA int        `json:"count_in_a"`
	CountInB int        `json:"count_in_b"`
}

// StructuredResult holds the outcome of the structured entity layer.
type StructuredResult struct {
	MatchPercent int        `json:"match_percent"`
	Mismatches   []Mismatch `json:"mismatches"`
}
