package models

// MetadataDiff is a human-readable row explaining one failed metadata check.
type MetadataDiff struct {
	Key    string `json:"key"`
	ValueA string `json:"value_a"`
	ValueB string `json:"value_b"`
}

// MetadataResult holds the outcome of the metadata layer. A failed declared
// type check lowers MatchPercent but emits no diff row.
type MetadataResult struct {
	MatchPercent int            `json:"match_percent"`
	Diffs        []MetadataDiff `json:"diffs"`
}
